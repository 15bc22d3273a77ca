package services

import (
	"context"

	appauth "github.com/campushire/placementhub/internal/app/auth"
	"github.com/campushire/placementhub/internal/app/models"
	"github.com/campushire/placementhub/internal/app/models/dto"
	"github.com/campushire/placementhub/internal/app/repositories"
)

// CommentService handles journey comments
type CommentService struct {
	comments repositories.CommentRepository
	journeys repositories.JourneyRepository
}

// NewCommentService creates a new comment service
func NewCommentService(comments repositories.CommentRepository, journeys repositories.JourneyRepository) *CommentService {
	return &CommentService{comments: comments, journeys: journeys}
}

// GetByJourney lists the comments of a journey, oldest first
func (s *CommentService) GetByJourney(ctx context.Context, journeyID int64) ([]models.Comment, error) {
	if _, err := s.journeys.GetByID(ctx, journeyID); err != nil {
		return nil, err
	}

	comments, err := s.comments.GetByJourney(ctx, journeyID)
	if err != nil {
		return nil, err
	}
	if comments == nil {
		comments = []models.Comment{}
	}
	return comments, nil
}

// Create posts a comment on an existing journey. Any authenticated actor
// may comment, students and admins alike.
func (s *CommentService) Create(ctx context.Context, actor appauth.Actor, journeyID int64, req *dto.CreateCommentRequest) (*models.Comment, error) {
	if _, err := s.journeys.GetByID(ctx, journeyID); err != nil {
		return nil, err
	}

	comment := &models.Comment{
		JourneyID: journeyID,
		UserID:    actor.ID,
		Content:   req.Content,
	}

	if err := s.comments.Create(ctx, comment); err != nil {
		return nil, err
	}

	return s.comments.GetByID(ctx, comment.ID)
}

// Update merges content onto a comment and stamps the moderating admin.
// Admin only.
func (s *CommentService) Update(ctx context.Context, actor appauth.Actor, commentID int64, req *dto.UpdateCommentRequest) (*models.Comment, error) {
	comment, err := s.comments.GetByID(ctx, commentID)
	if err != nil {
		return nil, err
	}

	if err := appauth.RequireAdmin(actor); err != nil {
		return nil, err
	}

	if req.Content != nil {
		comment.Content = *req.Content
	}
	adminID := actor.ID
	comment.ModeratedBy = &adminID

	if err := s.comments.Update(ctx, comment); err != nil {
		return nil, err
	}

	return s.comments.GetByID(ctx, commentID)
}

// Delete removes a comment. The owning student or any admin may delete.
func (s *CommentService) Delete(ctx context.Context, actor appauth.Actor, commentID int64) error {
	comment, err := s.comments.GetByID(ctx, commentID)
	if err != nil {
		return err
	}

	if err := appauth.RequireOwnerOrAdmin(actor, comment.UserID); err != nil {
		return err
	}

	return s.comments.Delete(ctx, commentID)
}
