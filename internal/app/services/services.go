// Package services contains the business logic layer
package services

import (
	"github.com/campushire/placementhub/internal/app/repositories"
	pkgauth "github.com/campushire/placementhub/internal/pkg/auth"
)

// Services holds one instance of every service
type Services struct {
	Auth      *AuthService
	Admin     *AdminService
	Student   *StudentService
	Company   *CompanyService
	Drive     *DriveService
	Query     *QueryService
	Journey   *JourneyService
	Comment   *CommentService
	Portfolio *PortfolioService
	Skill     *SkillService
}

// NewServices wires all services over the shared repositories
func NewServices(repos *repositories.Repositories, jwtService *pkgauth.JWTService) *Services {
	return &Services{
		Auth:      NewAuthService(repos.Students, repos.Admins, jwtService),
		Admin:     NewAdminService(repos.Students, repos.Drives, repos.Queries, repos.Journeys),
		Student:   NewStudentService(repos.Drives, repos.Queries, repos.Journeys),
		Company:   NewCompanyService(repos.Companies),
		Drive:     NewDriveService(repos.Drives, repos.Companies, repos.Queries, repos.Journeys),
		Query:     NewQueryService(repos.Queries, repos.Drives),
		Journey:   NewJourneyService(repos.Journeys, repos.Drives),
		Comment:   NewCommentService(repos.Comments, repos.Journeys),
		Portfolio: NewPortfolioService(repos.Students),
		Skill:     NewSkillService(repos.Skills, repos.StudentSkills),
	}
}
