package services

import (
	"context"

	appauth "github.com/campushire/placementhub/internal/app/auth"
	"github.com/campushire/placementhub/internal/app/models"
	"github.com/campushire/placementhub/internal/app/models/dto"
	"github.com/campushire/placementhub/internal/app/repositories"
	"github.com/campushire/placementhub/internal/pkg/logger"
)

// PortfolioService handles student profiles and their skill annotations
type PortfolioService struct {
	students repositories.StudentRepository
}

// NewPortfolioService creates a new portfolio service
func NewPortfolioService(students repositories.StudentRepository) *PortfolioService {
	return &PortfolioService{students: students}
}

// GetOwn retrieves the calling student's profile with skills
func (s *PortfolioService) GetOwn(ctx context.Context, actor appauth.Actor) (*models.Student, error) {
	if err := appauth.RequireStudent(actor); err != nil {
		return nil, err
	}

	return s.students.GetWithSkills(ctx, actor.ID)
}

// GetByID retrieves any student's profile with skills. Open to every
// authenticated caller.
func (s *PortfolioService) GetByID(ctx context.Context, studentID int64) (*models.Student, error) {
	return s.students.GetWithSkills(ctx, studentID)
}

// UpdateOwn merges the allow-listed profile fields onto the calling
// student's row. Identity and account fields in the body are ignored.
func (s *PortfolioService) UpdateOwn(ctx context.Context, actor appauth.Actor, req *dto.UpdateProfileRequest) (*models.Student, error) {
	if err := appauth.RequireStudent(actor); err != nil {
		return nil, err
	}

	student, err := s.students.GetByID(ctx, actor.ID)
	if err != nil {
		return nil, err
	}

	if req.RegNo != nil {
		student.RegNo = *req.RegNo
	}
	if req.Name != nil {
		student.Name = *req.Name
	}
	if req.Gender != nil {
		student.Gender = req.Gender
	}
	if req.FathersName != nil {
		student.FathersName = req.FathersName
	}
	if req.DateOfBirth != nil {
		dob, err := parseDate(req.DateOfBirth)
		if err != nil {
			return nil, err
		}
		student.DateOfBirth = dob
	}
	if req.ResidentialAddress != nil {
		student.ResidentialAddress = req.ResidentialAddress
	}
	if req.Mobile != nil {
		student.Mobile = req.Mobile
	}
	if req.ParentsMobileNo != nil {
		student.ParentsMobileNo = req.ParentsMobileNo
	}
	if req.AadharCardNo != nil {
		student.AadharCardNo = req.AadharCardNo
	}
	if req.Department != nil {
		student.Department = req.Department
	}
	if req.Year != nil {
		student.Year = req.Year
	}
	if req.Section != nil {
		student.Section = req.Section
	}
	if req.CGPA != nil {
		student.CGPA = req.CGPA
	}
	if req.Bio != nil {
		student.Bio = req.Bio
	}
	if req.Portfolio != nil {
		student.Portfolio = req.Portfolio
	}
	if req.GithubProfile != nil {
		student.GithubProfile = req.GithubProfile
	}
	if req.LinkedinProfile != nil {
		student.LinkedinProfile = req.LinkedinProfile
	}
	if req.ProfilePicture != nil {
		student.ProfilePicture = req.ProfilePicture
	}

	if err := s.students.Update(ctx, student); err != nil {
		return nil, err
	}

	return s.students.GetWithSkills(ctx, actor.ID)
}

// Delete removes a student account. The owner or any admin may delete.
func (s *PortfolioService) Delete(ctx context.Context, actor appauth.Actor, studentID int64) error {
	if _, err := s.students.GetByID(ctx, studentID); err != nil {
		return err
	}

	if err := appauth.RequireOwnerOrAdmin(actor, studentID); err != nil {
		return err
	}

	logger.Info().Int64("student_id", studentID).Int64("actor_id", actor.ID).
		Msg("Student account deleted")
	return s.students.Delete(ctx, studentID)
}
