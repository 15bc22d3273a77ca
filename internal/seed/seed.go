// Package seed creates the default data the portal needs on first boot
package seed

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	appModels "github.com/campushire/placementhub/internal/app/models"
	appRepos "github.com/campushire/placementhub/internal/app/repositories"
	"github.com/campushire/placementhub/internal/pkg/apperrors"
	pkgauth "github.com/campushire/placementhub/internal/pkg/auth"
)

const (
	defaultAdminName     = "Placement Cell"
	defaultAdminEmail    = "placement@campushire.edu"
	defaultAdminPassword = "ChangeMe123!"
)

func starterSkills() []appModels.Skill {
	category := func(s string) *string { return &s }
	return []appModels.Skill{
		{Name: "C", Category: category("programming")},
		{Name: "C++", Category: category("programming")},
		{Name: "Java", Category: category("programming")},
		{Name: "Python", Category: category("programming")},
		{Name: "Go", Category: category("programming")},
		{Name: "JavaScript", Category: category("programming")},
		{Name: "SQL", Category: category("database")},
		{Name: "PostgreSQL", Category: category("database")},
		{Name: "MongoDB", Category: category("database")},
		{Name: "React", Category: category("web")},
		{Name: "Node.js", Category: category("web")},
		{Name: "Docker", Category: category("devops")},
		{Name: "Kubernetes", Category: category("devops")},
		{Name: "AWS", Category: category("cloud")},
		{Name: "Data Structures", Category: category("fundamentals")},
		{Name: "System Design", Category: category("fundamentals")},
	}
}

// CreateDefaultData seeds a default admin account and the starter skill
// catalog. Rows that already exist are left untouched; individual failures
// are collected so startup can decide whether to proceed.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	adminRepo := appRepos.NewAdminRepository(dbPool)
	skillRepo := appRepos.NewSkillRepository(dbPool)

	lgr.Info().Msg("Checking/Creating default data...")
	var finalErr error

	// --- Default admin account --- //
	if _, err := adminRepo.GetByEmail(ctx, defaultAdminEmail); err != nil {
		if !errors.Is(err, apperrors.ErrAdminNotFound) {
			lgr.Error().Err(err).Msg("Error checking for default admin")
			finalErr = errors.Join(finalErr, err)
		} else {
			lgr.Info().Msg("Creating default admin account...")
			hashed, hashErr := pkgauth.HashPassword(defaultAdminPassword)
			if hashErr != nil {
				lgr.Error().Err(hashErr).Msg("Error hashing default admin password")
				finalErr = errors.Join(finalErr, hashErr)
			} else {
				admin := &appModels.Admin{
					Name:     defaultAdminName,
					Email:    defaultAdminEmail,
					Password: hashed,
				}
				if createErr := adminRepo.Create(ctx, admin); createErr != nil && !errors.Is(createErr, apperrors.ErrEmailAlreadyExists) {
					lgr.Error().Err(createErr).Msg("Error creating default admin")
					finalErr = errors.Join(finalErr, createErr)
				} else if createErr == nil {
					lgr.Info().Int64("adminID", admin.ID).Msg("Default admin account created")
				}
			}
		}
	} else {
		lgr.Info().Msg("Default admin already exists, skipping creation")
	}

	// --- Starter skill catalog --- //
	created, err := skillRepo.CreateBulk(ctx, starterSkills())
	if err != nil {
		lgr.Error().Err(err).Msg("Error seeding skill catalog")
		finalErr = errors.Join(finalErr, err)
	} else if len(created) > 0 {
		lgr.Info().Int("count", len(created)).Msg("Starter skills added to catalog")
	}

	lgr.Info().Msg("Default data check/creation finished.")
	return finalErr
}
