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

func newTestJourneyService() (*JourneyService, *mockJourneyRepo, *mockCommentRepo) {
	comments := newMockCommentRepo()
	journeys := newMockJourneyRepo(comments)
	drives := newMockDriveRepo()
	deadline := time.Now().Add(48 * time.Hour)
	drives.drives[1] = &models.PlacementDrive{ID: 1, CompanyID: 1, RegistrationDeadline: &deadline}
	drives.nextID = 2
	return NewJourneyService(journeys, drives), journeys, comments
}

func sampleRounds() []models.JourneyRound {
	return []models.JourneyRound{
		{Round: "Online Test", Description: "90 minutes, two coding problems"},
		{Round: "Technical Interview", Description: "DSA and one project deep dive"},
	}
}

func TestCreateJourneyStartsUnapproved(t *testing.T) {
	svc, _, _ := newTestJourneyService()

	j, err := svc.Create(context.Background(), studentActor, 1, &dto.CreateJourneyRequest{
		Rounds: sampleRounds(),
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if j.Approved {
		t.Error("new journey must start unapproved")
	}
	if j.ApprovedBy != nil {
		t.Error("new journey must have no approver")
	}
	if j.StudentID != studentActor.ID {
		t.Errorf("author taken from token, got student_id=%d", j.StudentID)
	}
}

func TestJourneyApprovalStrippedForNonAdmins(t *testing.T) {
	svc, _, _ := newTestJourneyService()
	ctx := context.Background()

	j, err := svc.Create(ctx, studentActor, 1, &dto.CreateJourneyRequest{Rounds: sampleRounds()})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	// the owner trying to self-approve edits content only
	updated, err := svc.Update(ctx, studentActor, j.ID, &dto.UpdateJourneyRequest{
		TipsForJuniors: strPtr("Practice graphs"),
		Approved:       boolPtr(true),
	})
	if err != nil {
		t.Fatalf("owner update failed: %v", err)
	}
	if updated.Approved {
		t.Error("owner must not be able to approve their own journey")
	}
	if updated.ApprovedBy != nil {
		t.Error("approver stamped on a non-admin update")
	}
	if updated.TipsForJuniors == nil || *updated.TipsForJuniors != "Practice graphs" {
		t.Errorf("content edit lost: %+v", updated.TipsForJuniors)
	}
}

func TestJourneyApprovalStampsAdmin(t *testing.T) {
	svc, _, _ := newTestJourneyService()
	ctx := context.Background()

	j, err := svc.Create(ctx, studentActor, 1, &dto.CreateJourneyRequest{Rounds: sampleRounds()})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	updated, err := svc.Update(ctx, adminActor, j.ID, &dto.UpdateJourneyRequest{Approved: boolPtr(true)})
	if err != nil {
		t.Fatalf("admin update failed: %v", err)
	}
	if !updated.Approved {
		t.Error("admin approval not applied")
	}
	if updated.ApprovedBy == nil || *updated.ApprovedBy != adminActor.ID {
		t.Errorf("approver not stamped: %v", updated.ApprovedBy)
	}
}

func TestJourneyAdminContentUpdateStampsReviewer(t *testing.T) {
	svc, _, _ := newTestJourneyService()
	ctx := context.Background()

	j, err := svc.Create(ctx, studentActor, 1, &dto.CreateJourneyRequest{Rounds: sampleRounds()})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	updated, err := svc.Update(ctx, adminActor, j.ID, &dto.UpdateJourneyRequest{
		TipsForJuniors: strPtr("Revise OS basics before the technical round."),
	})
	if err != nil {
		t.Fatalf("admin update failed: %v", err)
	}
	if updated.Approved {
		t.Error("approval must not flip without the flag in the body")
	}
	if updated.ApprovedBy == nil || *updated.ApprovedBy != adminActor.ID {
		t.Errorf("admin update must stamp the acting admin: %v", updated.ApprovedBy)
	}
}

func TestJourneyUpdateForeignStudentDenied(t *testing.T) {
	svc, _, _ := newTestJourneyService()
	ctx := context.Background()

	j, err := svc.Create(ctx, studentActor, 1, &dto.CreateJourneyRequest{Rounds: sampleRounds()})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	_, err = svc.Update(ctx, otherStudent, j.ID, &dto.UpdateJourneyRequest{
		TipsForJuniors: strPtr("hijack"),
	})
	if !errors.Is(err, apperrors.ErrPermissionDenied) {
		t.Errorf("foreign student update must be denied, got %v", err)
	}
}

func TestJourneyDeleteCascadesComments(t *testing.T) {
	svc, journeys, comments := newTestJourneyService()
	ctx := context.Background()

	j, err := svc.Create(ctx, studentActor, 1, &dto.CreateJourneyRequest{Rounds: sampleRounds()})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	for i := 0; i < 3; i++ {
		if err := comments.Create(ctx, &models.Comment{JourneyID: j.ID, UserID: 11, Content: "nice"}); err != nil {
			t.Fatalf("comment create failed: %v", err)
		}
	}

	if err := svc.Delete(ctx, adminActor, j.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}

	if _, ok := journeys.journeys[j.ID]; ok {
		t.Error("journey row survived delete")
	}
	left, _ := comments.GetByJourney(ctx, j.ID)
	if len(left) != 0 {
		t.Errorf("comments survived journey delete: %d left", len(left))
	}
}

func TestAllJourneysListingIsAdminOnly(t *testing.T) {
	svc, _, _ := newTestJourneyService()
	ctx := context.Background()

	if _, err := svc.Create(ctx, studentActor, 1, &dto.CreateJourneyRequest{Rounds: sampleRounds()}); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	_, err := svc.GetAllByDrive(ctx, studentActor, 1)
	if !errors.Is(err, apperrors.ErrPermissionDenied) {
		t.Errorf("student asking for the moderation queue must be denied, got %v", err)
	}

	all, err := svc.GetAllByDrive(ctx, adminActor, 1)
	if err != nil {
		t.Fatalf("admin listing failed: %v", err)
	}
	if len(all) != 1 {
		t.Errorf("admin should see the unapproved row, got %d", len(all))
	}

	approved, err := svc.GetByDrive(ctx, 1)
	if err != nil {
		t.Fatalf("approved listing failed: %v", err)
	}
	if len(approved) != 0 {
		t.Errorf("unapproved journey leaked into the approved listing: %d", len(approved))
	}
}
