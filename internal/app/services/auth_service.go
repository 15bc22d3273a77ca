package services

import (
	"context"
	"errors"

	"github.com/campushire/placementhub/internal/app/models"
	"github.com/campushire/placementhub/internal/app/models/dto"
	"github.com/campushire/placementhub/internal/app/repositories"
	"github.com/campushire/placementhub/internal/pkg/apperrors"
	pkgauth "github.com/campushire/placementhub/internal/pkg/auth"
	"github.com/campushire/placementhub/internal/pkg/logger"
)

// AuthService handles registration and login for both roles
type AuthService struct {
	students   repositories.StudentRepository
	admins     repositories.AdminRepository
	jwtService *pkgauth.JWTService
}

// NewAuthService creates a new auth service
func NewAuthService(
	students repositories.StudentRepository,
	admins repositories.AdminRepository,
	jwtService *pkgauth.JWTService,
) *AuthService {
	return &AuthService{students: students, admins: admins, jwtService: jwtService}
}

// RegisterStudent creates a student account with a hashed password
func (s *AuthService) RegisterStudent(ctx context.Context, req *dto.RegisterStudentRequest) (*models.Student, error) {
	hash, err := pkgauth.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	student := &models.Student{
		RegNo:    req.RegNo,
		Name:     req.Name,
		Email:    req.Email,
		Password: hash,
	}

	if err := s.students.Create(ctx, student); err != nil {
		return nil, err
	}

	logger.Info().Int64("student_id", student.ID).Msg("Student registered")
	return student, nil
}

// RegisterAdmin creates an admin account. The endpoint is open, matching the
// source system, so every use is logged at warn level.
func (s *AuthService) RegisterAdmin(ctx context.Context, req *dto.RegisterAdminRequest) (*models.Admin, error) {
	hash, err := pkgauth.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	admin := &models.Admin{
		Name:     req.Name,
		Email:    req.Email,
		Password: hash,
	}

	if err := s.admins.Create(ctx, admin); err != nil {
		return nil, err
	}

	logger.Warn().Int64("admin_id", admin.ID).Str("email", admin.Email).
		Msg("Admin account created through open registration")
	return admin, nil
}

// LoginStudent verifies student credentials and issues a token
func (s *AuthService) LoginStudent(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	student, err := s.students.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, apperrors.ErrStudentNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if !pkgauth.CheckPassword(student.Password, req.Password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	token, expiresIn, err := s.jwtService.GenerateToken(student.ID, models.RoleStudent)
	if err != nil {
		return nil, err
	}

	summary := &dto.ActorSummary{
		ID:    student.ID,
		RegNo: student.RegNo,
		Name:  student.Name,
		Email: student.Email,
	}

	return &dto.LoginResponse{
		Message:   "Login successful",
		Token:     "Bearer " + token,
		ExpiresIn: expiresIn,
		Student:   summary,
	}, nil
}

// LoginAdmin verifies admin credentials and issues a token
func (s *AuthService) LoginAdmin(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	admin, err := s.admins.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, apperrors.ErrAdminNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if !pkgauth.CheckPassword(admin.Password, req.Password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	token, expiresIn, err := s.jwtService.GenerateToken(admin.ID, models.RoleAdmin)
	if err != nil {
		return nil, err
	}

	return &dto.LoginResponse{
		Message:   "Login successful",
		Token:     "Bearer " + token,
		ExpiresIn: expiresIn,
		Admin:     &dto.ActorSummary{ID: admin.ID, Name: admin.Name, Email: admin.Email},
	}, nil
}
