package services

import (
	"context"

	appauth "github.com/campushire/placementhub/internal/app/auth"
	"github.com/campushire/placementhub/internal/app/models"
	"github.com/campushire/placementhub/internal/app/models/dto"
	"github.com/campushire/placementhub/internal/app/repositories"
	"github.com/campushire/placementhub/internal/pkg/logger"
)

// QueryService handles drive queries and their answer lifecycle
type QueryService struct {
	queries repositories.QueryRepository
	drives  repositories.DriveRepository
}

// NewQueryService creates a new query service
func NewQueryService(queries repositories.QueryRepository, drives repositories.DriveRepository) *QueryService {
	return &QueryService{queries: queries, drives: drives}
}

// GetByDrive lists the queries of a drive with the requested visibility.
// Students only ever see the published rows; the private listing is
// reserved for admins.
func (s *QueryService) GetByDrive(ctx context.Context, actor appauth.Actor, driveID int64, public bool) ([]models.Query, error) {
	if _, err := s.drives.GetByID(ctx, driveID); err != nil {
		return nil, err
	}

	if !public {
		if err := appauth.RequireAdmin(actor); err != nil {
			return nil, err
		}
	}

	queries, err := s.queries.GetByDrive(ctx, driveID, public)
	if err != nil {
		return nil, err
	}
	if queries == nil {
		queries = []models.Query{}
	}
	return queries, nil
}

// Create raises a query against an existing drive. The row always starts
// private and unanswered no matter what the body carries.
func (s *QueryService) Create(ctx context.Context, actor appauth.Actor, driveID int64, req *dto.CreateQueryRequest) (*models.Query, error) {
	if err := appauth.RequireStudent(actor); err != nil {
		return nil, err
	}

	if _, err := s.drives.GetByID(ctx, driveID); err != nil {
		return nil, err
	}

	query := &models.Query{
		DriveID: driveID,
		UserID:  actor.ID,
		Content: req.Content,
	}

	if err := s.queries.Create(ctx, query); err != nil {
		return nil, err
	}

	return s.queries.GetByID(ctx, query.ID)
}

// Update merges answer and visibility onto a query and stamps the responding
// admin. Admin only.
func (s *QueryService) Update(ctx context.Context, actor appauth.Actor, queryID int64, req *dto.UpdateQueryRequest) (*models.Query, error) {
	query, err := s.queries.GetByID(ctx, queryID)
	if err != nil {
		return nil, err
	}

	if err := appauth.RequireAdmin(actor); err != nil {
		return nil, err
	}

	if req.Answer != nil {
		query.Answer = req.Answer
	}
	if req.Public != nil {
		query.Public = *req.Public
	}
	adminID := actor.ID
	query.AnsweredBy = &adminID

	if err := s.queries.Update(ctx, query); err != nil {
		return nil, err
	}

	logger.Info().Int64("query_id", queryID).Int64("admin_id", actor.ID).Msg("Query updated")
	return s.queries.GetByID(ctx, queryID)
}

// Delete removes a query. The owning student or any admin may delete.
func (s *QueryService) Delete(ctx context.Context, actor appauth.Actor, queryID int64) error {
	query, err := s.queries.GetByID(ctx, queryID)
	if err != nil {
		return err
	}

	if err := appauth.RequireOwnerOrAdmin(actor, query.UserID); err != nil {
		return err
	}

	return s.queries.Delete(ctx, queryID)
}
