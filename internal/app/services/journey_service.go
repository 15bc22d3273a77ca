package services

import (
	"context"

	appauth "github.com/campushire/placementhub/internal/app/auth"
	"github.com/campushire/placementhub/internal/app/models"
	"github.com/campushire/placementhub/internal/app/models/dto"
	"github.com/campushire/placementhub/internal/app/repositories"
	"github.com/campushire/placementhub/internal/pkg/logger"
)

// JourneyService handles interview journeys and their approval lifecycle
type JourneyService struct {
	journeys repositories.JourneyRepository
	drives   repositories.DriveRepository
}

// NewJourneyService creates a new journey service
func NewJourneyService(journeys repositories.JourneyRepository, drives repositories.DriveRepository) *JourneyService {
	return &JourneyService{journeys: journeys, drives: drives}
}

// GetByDrive lists the approved journeys of a drive
func (s *JourneyService) GetByDrive(ctx context.Context, driveID int64) ([]models.Journey, error) {
	if _, err := s.drives.GetByID(ctx, driveID); err != nil {
		return nil, err
	}

	journeys, err := s.journeys.GetByDrive(ctx, driveID, true)
	if err != nil {
		return nil, err
	}
	if journeys == nil {
		journeys = []models.Journey{}
	}
	return journeys, nil
}

// GetAllByDrive lists every journey of a drive, unapproved ones included.
// Admin only; this is the moderation queue.
func (s *JourneyService) GetAllByDrive(ctx context.Context, actor appauth.Actor, driveID int64) ([]models.Journey, error) {
	if _, err := s.drives.GetByID(ctx, driveID); err != nil {
		return nil, err
	}

	if err := appauth.RequireAdmin(actor); err != nil {
		return nil, err
	}

	journeys, err := s.journeys.GetByDrive(ctx, driveID, false)
	if err != nil {
		return nil, err
	}
	if journeys == nil {
		journeys = []models.Journey{}
	}
	return journeys, nil
}

// Create records a journey against an existing drive. The row always starts
// unapproved no matter what the body carries.
func (s *JourneyService) Create(ctx context.Context, actor appauth.Actor, driveID int64, req *dto.CreateJourneyRequest) (*models.Journey, error) {
	if err := appauth.RequireStudent(actor); err != nil {
		return nil, err
	}

	if _, err := s.drives.GetByID(ctx, driveID); err != nil {
		return nil, err
	}

	journey := &models.Journey{
		DriveID:           driveID,
		StudentID:         actor.ID,
		Rounds:            req.Rounds,
		OverallExperience: req.OverallExperience,
		TipsForJuniors:    req.TipsForJuniors,
	}

	if err := s.journeys.Create(ctx, journey); err != nil {
		return nil, err
	}

	return s.journeys.GetByID(ctx, journey.ID)
}

// Update merges the provided fields onto a journey. The owning student may
// edit content; approval changes are honored only for admins, and any admin
// update stamps the acting admin as the approver.
func (s *JourneyService) Update(ctx context.Context, actor appauth.Actor, journeyID int64, req *dto.UpdateJourneyRequest) (*models.Journey, error) {
	journey, err := s.journeys.GetByID(ctx, journeyID)
	if err != nil {
		return nil, err
	}

	if err := appauth.RequireOwnerOrAdmin(actor, journey.StudentID); err != nil {
		return nil, err
	}

	if req.Rounds != nil {
		journey.Rounds = req.Rounds
	}
	if req.OverallExperience != nil {
		journey.OverallExperience = req.OverallExperience
	}
	if req.TipsForJuniors != nil {
		journey.TipsForJuniors = req.TipsForJuniors
	}
	if actor.IsAdmin() {
		adminID := actor.ID
		journey.ApprovedBy = &adminID
		if req.Approved != nil {
			journey.Approved = *req.Approved
			logger.Info().Int64("journey_id", journeyID).Int64("admin_id", actor.ID).
				Bool("approved", *req.Approved).Msg("Journey approval changed")
		}
	}

	if err := s.journeys.Update(ctx, journey); err != nil {
		return nil, err
	}

	return s.journeys.GetByID(ctx, journeyID)
}

// Delete removes a journey together with its comments. The owning student
// or any admin may delete.
func (s *JourneyService) Delete(ctx context.Context, actor appauth.Actor, journeyID int64) error {
	journey, err := s.journeys.GetByID(ctx, journeyID)
	if err != nil {
		return err
	}

	if err := appauth.RequireOwnerOrAdmin(actor, journey.StudentID); err != nil {
		return err
	}

	return s.journeys.Delete(ctx, journeyID)
}
