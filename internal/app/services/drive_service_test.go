package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/campushire/placementhub/internal/app/models"
	"github.com/campushire/placementhub/internal/app/models/dto"
	"github.com/campushire/placementhub/internal/pkg/apperrors"
)

func newTestDriveService() (*DriveService, *mockDriveRepo, *mockCompanyRepo) {
	drives := newMockDriveRepo()
	companies := newMockCompanyRepo()
	companies.companies[1] = &models.Company{ID: 1, Name: "Acme Corp"}
	companies.nextID = 2
	comments := newMockCommentRepo()
	svc := NewDriveService(drives, companies, newMockQueryRepo(), newMockJourneyRepo(comments))
	return svc, drives, companies
}

func TestCreateDriveStampsCreator(t *testing.T) {
	svc, _, _ := newTestDriveService()

	drive, err := svc.Create(context.Background(), adminActor, &dto.CreateDriveRequest{
		CompanyID:            1,
		Batch:                strPtr("2026"),
		RegistrationDeadline: strPtr("2026-09-15"),
		Mode:                 strPtr("online"),
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if drive.CreatedBy != adminActor.ID {
		t.Errorf("creator not stamped, got %d", drive.CreatedBy)
	}
	if drive.Mode != models.DriveModeOnline {
		t.Errorf("mode not applied: %s", drive.Mode)
	}
	if drive.RegistrationDeadline == nil || drive.RegistrationDeadline.Format("2006-01-02") != "2026-09-15" {
		t.Errorf("deadline not parsed: %v", drive.RegistrationDeadline)
	}
}

func TestCreateDriveStudentDenied(t *testing.T) {
	svc, _, _ := newTestDriveService()

	_, err := svc.Create(context.Background(), studentActor, &dto.CreateDriveRequest{CompanyID: 1})
	if !errors.Is(err, apperrors.ErrPermissionDenied) {
		t.Errorf("student create must be denied, got %v", err)
	}
}

func TestCreateDriveBadDate(t *testing.T) {
	svc, _, _ := newTestDriveService()

	_, err := svc.Create(context.Background(), adminActor, &dto.CreateDriveRequest{
		CompanyID:            1,
		RegistrationDeadline: strPtr("15/09/2026"),
	})
	if !errors.Is(err, apperrors.ErrBadRequest) {
		t.Errorf("expected bad request for a malformed date, got %v", err)
	}
}

func TestCreateDriveUnknownCompany(t *testing.T) {
	svc, _, _ := newTestDriveService()

	_, err := svc.Create(context.Background(), adminActor, &dto.CreateDriveRequest{CompanyID: 99})
	if !errors.Is(err, apperrors.ErrCompanyNotFound) {
		t.Errorf("expected company not found, got %v", err)
	}
}

func TestGetAllOrderedByDeadline(t *testing.T) {
	svc, drives, _ := newTestDriveService()

	later := time.Now().Add(72 * time.Hour)
	sooner := time.Now().Add(24 * time.Hour)
	drives.drives[1] = &models.PlacementDrive{ID: 1, CompanyID: 1, RegistrationDeadline: &later}
	drives.drives[2] = &models.PlacementDrive{ID: 2, CompanyID: 1, RegistrationDeadline: &sooner}
	drives.nextID = 3

	all, err := svc.GetAll(context.Background())
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(all) != 2 || all[0].ID != 2 {
		t.Errorf("drives not ordered soonest deadline first: %+v", all)
	}
}

func TestDriveDetailAssembly(t *testing.T) {
	svc, drives, _ := newTestDriveService()

	deadline := time.Now().Add(24 * time.Hour)
	drives.drives[1] = &models.PlacementDrive{ID: 1, CompanyID: 1, RegistrationDeadline: &deadline}
	drives.nextID = 2

	detail, err := svc.GetDetail(context.Background(), 1)
	if err != nil {
		t.Fatalf("detail failed: %v", err)
	}
	if detail.CompanyFull == nil || detail.CompanyFull.Name != "Acme Corp" {
		t.Errorf("company not attached: %+v", detail.CompanyFull)
	}
	if detail.Queries == nil || detail.Journeys == nil {
		t.Error("empty sub-resources must serialize as [], not null")
	}
}

func TestUpdateDriveMergesFields(t *testing.T) {
	svc, drives, _ := newTestDriveService()

	deadline := time.Now().Add(24 * time.Hour)
	drives.drives[1] = &models.PlacementDrive{
		ID: 1, CompanyID: 1, Batch: strPtr("2025"),
		RegistrationDeadline: &deadline, Mode: models.DriveModeOffline,
	}
	drives.nextID = 2

	updated, err := svc.Update(context.Background(), adminActor, 1, &dto.UpdateDriveRequest{
		Location: strPtr("Main auditorium"),
	})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.Location == nil || *updated.Location != "Main auditorium" {
		t.Errorf("location not merged: %v", updated.Location)
	}
	if updated.Batch == nil || *updated.Batch != "2025" {
		t.Errorf("untouched field lost: %v", updated.Batch)
	}
}

func TestDeleteDriveStudentDenied(t *testing.T) {
	svc, drives, _ := newTestDriveService()

	deadline := time.Now().Add(24 * time.Hour)
	drives.drives[1] = &models.PlacementDrive{ID: 1, CompanyID: 1, RegistrationDeadline: &deadline}
	drives.nextID = 2

	err := svc.Delete(context.Background(), studentActor, 1)
	if !errors.Is(err, apperrors.ErrPermissionDenied) {
		t.Errorf("student delete must be denied, got %v", err)
	}
}
