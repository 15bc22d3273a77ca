package services

import (
	"context"
	"time"

	gocache "github.com/patrickmn/go-cache"
	"golang.org/x/sync/errgroup"

	appauth "github.com/campushire/placementhub/internal/app/auth"
	"github.com/campushire/placementhub/internal/app/models"
	"github.com/campushire/placementhub/internal/app/models/dto"
	"github.com/campushire/placementhub/internal/app/repositories"
)

const (
	dashboardCacheKey = "admin:dashboard"
	dashboardCacheTTL = 30 * time.Second
)

// AdminService handles the admin dashboard and the student roster
type AdminService struct {
	students repositories.StudentRepository
	drives   repositories.DriveRepository
	queries  repositories.QueryRepository
	journeys repositories.JourneyRepository
	cache    *gocache.Cache
}

// NewAdminService creates a new admin service
func NewAdminService(
	students repositories.StudentRepository,
	drives repositories.DriveRepository,
	queries repositories.QueryRepository,
	journeys repositories.JourneyRepository,
) *AdminService {
	return &AdminService{
		students: students,
		drives:   drives,
		queries:  queries,
		journeys: journeys,
		cache:    gocache.New(dashboardCacheTTL, 2*dashboardCacheTTL),
	}
}

// Dashboard returns the landing-page counters. The counts run in parallel
// and the result is cached briefly; moderation queues do not need to be
// read-after-write fresh.
func (s *AdminService) Dashboard(ctx context.Context, actor appauth.Actor) (*dto.AdminDashboard, error) {
	if err := appauth.RequireAdmin(actor); err != nil {
		return nil, err
	}

	if cached, found := s.cache.Get(dashboardCacheKey); found {
		return cached.(*dto.AdminDashboard), nil
	}

	dashboard := &dto.AdminDashboard{}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		count, err := s.drives.Count(gctx)
		dashboard.Drives = count
		return err
	})
	g.Go(func() error {
		count, err := s.queries.CountPending(gctx)
		dashboard.PendingQueries = count
		return err
	})
	g.Go(func() error {
		count, err := s.journeys.CountPending(gctx)
		dashboard.PendingJourneys = count
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	s.cache.Set(dashboardCacheKey, dashboard, dashboardCacheTTL)
	return dashboard, nil
}

// FilterStudents returns the roster matching the given filter. Admin only.
func (s *AdminService) FilterStudents(ctx context.Context, actor appauth.Actor, filter dto.StudentFilter) ([]models.Student, error) {
	if err := appauth.RequireAdmin(actor); err != nil {
		return nil, err
	}

	students, err := s.students.Filter(ctx, filter)
	if err != nil {
		return nil, err
	}
	if students == nil {
		students = []models.Student{}
	}
	return students, nil
}
