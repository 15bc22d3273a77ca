package services

import (
	"context"
	"errors"
	"testing"

	"github.com/campushire/placementhub/internal/app/models"
	"github.com/campushire/placementhub/internal/app/models/dto"
	"github.com/campushire/placementhub/internal/pkg/apperrors"
)

func newTestSkillService() (*SkillService, *mockSkillRepo, *mockStudentSkillRepo) {
	skills := newMockSkillRepo()
	claims := newMockStudentSkillRepo()
	return NewSkillService(skills, claims), skills, claims
}

func TestSkillCatalogAdminOnlyWrites(t *testing.T) {
	svc, _, _ := newTestSkillService()
	ctx := context.Background()

	_, err := svc.Create(ctx, studentActor, &dto.AddSkillRequest{Name: "Go"})
	if !errors.Is(err, apperrors.ErrPermissionDenied) {
		t.Fatalf("student catalog write must be denied, got %v", err)
	}

	skill, err := svc.Create(ctx, adminActor, &dto.AddSkillRequest{Name: "Go"})
	if err != nil {
		t.Fatalf("admin create failed: %v", err)
	}

	_, err = svc.Create(ctx, adminActor, &dto.AddSkillRequest{Name: "Go"})
	if !errors.Is(err, apperrors.ErrSkillAlreadyExists) {
		t.Errorf("duplicate name must conflict, got %v", err)
	}

	if err := svc.Delete(ctx, adminActor, skill.ID); err != nil {
		t.Errorf("admin delete failed: %v", err)
	}
}

func TestBulkAddSkipsExisting(t *testing.T) {
	svc, _, _ := newTestSkillService()
	ctx := context.Background()

	if _, err := svc.Create(ctx, adminActor, &dto.AddSkillRequest{Name: "Go"}); err != nil {
		t.Fatal(err)
	}

	inserted, err := svc.CreateBulk(ctx, adminActor, []dto.AddSkillRequest{
		{Name: "Go"}, {Name: "SQL"}, {Name: "Docker"},
	})
	if err != nil {
		t.Fatalf("bulk add failed: %v", err)
	}
	if len(inserted) != 2 {
		t.Errorf("expected 2 new rows, got %d", len(inserted))
	}
}

func TestClaimSkillScopedToToken(t *testing.T) {
	svc, skills, _ := newTestSkillService()
	ctx := context.Background()

	skills.skills[1] = &models.Skill{ID: 1, Name: "Go"}
	skills.nextID = 2

	claim, err := svc.ClaimSkill(ctx, studentActor, &dto.CreateStudentSkillRequest{
		SkillID:  1,
		ProofURL: strPtr("https://github.com/asha/sample"),
	})
	if err != nil {
		t.Fatalf("claim failed: %v", err)
	}
	if claim.StudentID != studentActor.ID {
		t.Errorf("claim owner taken from token, got %d", claim.StudentID)
	}
}

func TestClaimSkillUnknownSkill(t *testing.T) {
	svc, _, _ := newTestSkillService()

	_, err := svc.ClaimSkill(context.Background(), studentActor, &dto.CreateStudentSkillRequest{SkillID: 99})
	if !errors.Is(err, apperrors.ErrSkillNotFound) {
		t.Errorf("expected skill not found, got %v", err)
	}
}

func TestUpdateClaimOwnerOrAdmin(t *testing.T) {
	svc, skills, claims := newTestSkillService()
	ctx := context.Background()

	skills.skills[1] = &models.Skill{ID: 1, Name: "Go"}
	skills.nextID = 2
	claims.claims[1] = &models.StudentSkill{ID: 1, StudentID: studentActor.ID, SkillID: 1}
	claims.nextID = 2

	_, err := svc.UpdateClaim(ctx, otherStudent, 1, &dto.UpdateStudentSkillRequest{
		Description: strPtr("hijack"),
	})
	if !errors.Is(err, apperrors.ErrPermissionDenied) {
		t.Fatalf("foreign student update must be denied, got %v", err)
	}

	updated, err := svc.UpdateClaim(ctx, studentActor, 1, &dto.UpdateStudentSkillRequest{
		Description: strPtr("three course projects"),
	})
	if err != nil {
		t.Fatalf("owner update failed: %v", err)
	}
	if updated.Description == nil || *updated.Description != "three course projects" {
		t.Errorf("description not merged: %v", updated.Description)
	}

	if err := svc.DeleteClaim(ctx, adminActor, 1); err != nil {
		t.Errorf("admin delete failed: %v", err)
	}
}
