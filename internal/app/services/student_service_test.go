package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/campushire/placementhub/internal/app/models"
	"github.com/campushire/placementhub/internal/pkg/apperrors"
)

func TestStudentDashboard(t *testing.T) {
	drives := newMockDriveRepo()
	queries := newMockQueryRepo()
	journeys := newMockJourneyRepo(newMockCommentRepo())
	svc := NewStudentService(drives, queries, journeys)
	ctx := context.Background()

	past := time.Now().Add(-24 * time.Hour)
	future := time.Now().Add(24 * time.Hour)
	drives.drives[1] = &models.PlacementDrive{ID: 1, CompanyID: 1, RegistrationDeadline: &past}
	drives.drives[2] = &models.PlacementDrive{ID: 2, CompanyID: 1, RegistrationDeadline: &future}
	drives.nextID = 3

	public := &models.Query{DriveID: 2, UserID: 10, Content: "q"}
	if err := queries.Create(ctx, public); err != nil {
		t.Fatal(err)
	}
	public.Public = true
	if err := queries.Update(ctx, public); err != nil {
		t.Fatal(err)
	}
	if err := queries.Create(ctx, &models.Query{DriveID: 2, UserID: 10, Content: "private"}); err != nil {
		t.Fatal(err)
	}

	approved := &models.Journey{DriveID: 2, StudentID: 10}
	if err := journeys.Create(ctx, approved); err != nil {
		t.Fatal(err)
	}
	approved.Approved = true
	if err := journeys.Update(ctx, approved); err != nil {
		t.Fatal(err)
	}
	if err := journeys.Create(ctx, &models.Journey{DriveID: 2, StudentID: 11}); err != nil {
		t.Fatal(err)
	}

	dashboard, err := svc.Dashboard(ctx, studentActor)
	if err != nil {
		t.Fatalf("dashboard failed: %v", err)
	}

	if len(dashboard.UpcomingDrives) != 1 || dashboard.UpcomingDrives[0].ID != 2 {
		t.Errorf("expired drive in the upcoming feed: %+v", dashboard.UpcomingDrives)
	}
	if len(dashboard.RecentPublicQueries) != 1 {
		t.Errorf("private query leaked into the feed: %+v", dashboard.RecentPublicQueries)
	}
	if len(dashboard.RecentJourneys) != 1 {
		t.Errorf("unapproved journey leaked into the feed: %+v", dashboard.RecentJourneys)
	}
}

func TestStudentDashboardAdminDenied(t *testing.T) {
	svc := NewStudentService(newMockDriveRepo(), newMockQueryRepo(), newMockJourneyRepo(newMockCommentRepo()))

	_, err := svc.Dashboard(context.Background(), adminActor)
	if !errors.Is(err, apperrors.ErrPermissionDenied) {
		t.Errorf("admin must not use the student dashboard, got %v", err)
	}
}
