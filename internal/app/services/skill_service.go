package services

import (
	"context"

	appauth "github.com/campushire/placementhub/internal/app/auth"
	"github.com/campushire/placementhub/internal/app/models"
	"github.com/campushire/placementhub/internal/app/models/dto"
	"github.com/campushire/placementhub/internal/app/repositories"
)

// SkillService handles the skill catalog and student skill claims
type SkillService struct {
	skills        repositories.SkillRepository
	studentSkills repositories.StudentSkillRepository
}

// NewSkillService creates a new skill service
func NewSkillService(skills repositories.SkillRepository, studentSkills repositories.StudentSkillRepository) *SkillService {
	return &SkillService{skills: skills, studentSkills: studentSkills}
}

// GetAll lists the skill catalog
func (s *SkillService) GetAll(ctx context.Context) ([]models.Skill, error) {
	skills, err := s.skills.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	if skills == nil {
		skills = []models.Skill{}
	}
	return skills, nil
}

// Create adds a catalog entry. Admin only.
func (s *SkillService) Create(ctx context.Context, actor appauth.Actor, req *dto.AddSkillRequest) (*models.Skill, error) {
	if err := appauth.RequireAdmin(actor); err != nil {
		return nil, err
	}

	skill := &models.Skill{Name: req.Name, Category: req.Category}
	if err := s.skills.Create(ctx, skill); err != nil {
		return nil, err
	}

	return skill, nil
}

// CreateBulk adds many catalog entries, skipping existing names. Admin only.
func (s *SkillService) CreateBulk(ctx context.Context, actor appauth.Actor, reqs []dto.AddSkillRequest) ([]models.Skill, error) {
	if err := appauth.RequireAdmin(actor); err != nil {
		return nil, err
	}

	skills := make([]models.Skill, len(reqs))
	for i, r := range reqs {
		skills[i] = models.Skill{Name: r.Name, Category: r.Category}
	}

	inserted, err := s.skills.CreateBulk(ctx, skills)
	if err != nil {
		return nil, err
	}
	if inserted == nil {
		inserted = []models.Skill{}
	}
	return inserted, nil
}

// Delete removes a catalog entry. Admin only.
func (s *SkillService) Delete(ctx context.Context, actor appauth.Actor, id int64) error {
	if _, err := s.skills.GetByID(ctx, id); err != nil {
		return err
	}

	if err := appauth.RequireAdmin(actor); err != nil {
		return err
	}

	return s.skills.Delete(ctx, id)
}

// ClaimSkill attaches a catalog skill to the calling student
func (s *SkillService) ClaimSkill(ctx context.Context, actor appauth.Actor, req *dto.CreateStudentSkillRequest) (*models.StudentSkill, error) {
	if err := appauth.RequireStudent(actor); err != nil {
		return nil, err
	}

	if _, err := s.skills.GetByID(ctx, req.SkillID); err != nil {
		return nil, err
	}

	claim := &models.StudentSkill{
		StudentID:   actor.ID,
		SkillID:     req.SkillID,
		ProofURL:    req.ProofURL,
		Description: req.Description,
	}

	if err := s.studentSkills.Create(ctx, claim); err != nil {
		return nil, err
	}

	return s.studentSkills.GetByID(ctx, claim.ID)
}

// UpdateClaim merges the provided fields onto a claim. The owning student
// or any admin may update.
func (s *SkillService) UpdateClaim(ctx context.Context, actor appauth.Actor, id int64, req *dto.UpdateStudentSkillRequest) (*models.StudentSkill, error) {
	claim, err := s.studentSkills.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := appauth.RequireOwnerOrAdmin(actor, claim.StudentID); err != nil {
		return nil, err
	}

	if req.SkillID != nil {
		if _, err := s.skills.GetByID(ctx, *req.SkillID); err != nil {
			return nil, err
		}
		claim.SkillID = *req.SkillID
	}
	if req.ProofURL != nil {
		claim.ProofURL = req.ProofURL
	}
	if req.Description != nil {
		claim.Description = req.Description
	}

	if err := s.studentSkills.Update(ctx, claim); err != nil {
		return nil, err
	}

	return s.studentSkills.GetByID(ctx, id)
}

// DeleteClaim removes a claim. The owning student or any admin may delete.
func (s *SkillService) DeleteClaim(ctx context.Context, actor appauth.Actor, id int64) error {
	claim, err := s.studentSkills.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := appauth.RequireOwnerOrAdmin(actor, claim.StudentID); err != nil {
		return err
	}

	return s.studentSkills.Delete(ctx, id)
}
