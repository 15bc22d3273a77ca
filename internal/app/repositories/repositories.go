// Package repositories contains the data access layer
package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories holds one instance of every repository
type Repositories struct {
	Students      StudentRepository
	Admins        AdminRepository
	Companies     CompanyRepository
	Drives        DriveRepository
	Queries       QueryRepository
	Journeys      JourneyRepository
	Comments      CommentRepository
	Skills        SkillRepository
	StudentSkills StudentSkillRepository
}

// NewRepositories creates all repositories over one shared pool
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		Students:      NewStudentRepository(db),
		Admins:        NewAdminRepository(db),
		Companies:     NewCompanyRepository(db),
		Drives:        NewDriveRepository(db),
		Queries:       NewQueryRepository(db),
		Journeys:      NewJourneyRepository(db),
		Comments:      NewCommentRepository(db),
		Skills:        NewSkillRepository(db),
		StudentSkills: NewStudentSkillRepository(db),
	}
}
