package services

import (
	"context"

	"golang.org/x/sync/errgroup"

	appauth "github.com/campushire/placementhub/internal/app/auth"
	"github.com/campushire/placementhub/internal/app/models"
	"github.com/campushire/placementhub/internal/app/models/dto"
	"github.com/campushire/placementhub/internal/app/repositories"
)

const dashboardFeedLimit = 5

// StudentService handles the student landing page
type StudentService struct {
	drives   repositories.DriveRepository
	queries  repositories.QueryRepository
	journeys repositories.JourneyRepository
}

// NewStudentService creates a new student service
func NewStudentService(
	drives repositories.DriveRepository,
	queries repositories.QueryRepository,
	journeys repositories.JourneyRepository,
) *StudentService {
	return &StudentService{drives: drives, queries: queries, journeys: journeys}
}

// Dashboard returns the student landing-page feeds in parallel reads
func (s *StudentService) Dashboard(ctx context.Context, actor appauth.Actor) (*dto.StudentDashboard, error) {
	if err := appauth.RequireStudent(actor); err != nil {
		return nil, err
	}

	dashboard := &dto.StudentDashboard{}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		drives, err := s.drives.GetUpcoming(gctx, dashboardFeedLimit)
		dashboard.UpcomingDrives = drives
		return err
	})
	g.Go(func() error {
		queries, err := s.queries.GetRecentPublic(gctx, dashboardFeedLimit)
		dashboard.RecentPublicQueries = queries
		return err
	})
	g.Go(func() error {
		journeys, err := s.journeys.GetRecentApproved(gctx, dashboardFeedLimit)
		dashboard.RecentJourneys = journeys
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	if dashboard.UpcomingDrives == nil {
		dashboard.UpcomingDrives = []models.PlacementDrive{}
	}
	if dashboard.RecentPublicQueries == nil {
		dashboard.RecentPublicQueries = []models.Query{}
	}
	if dashboard.RecentJourneys == nil {
		dashboard.RecentJourneys = []models.Journey{}
	}

	return dashboard, nil
}
