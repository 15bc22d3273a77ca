package services

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	appauth "github.com/campushire/placementhub/internal/app/auth"
	"github.com/campushire/placementhub/internal/app/models"
	"github.com/campushire/placementhub/internal/app/models/dto"
	"github.com/campushire/placementhub/internal/app/repositories"
	"github.com/campushire/placementhub/internal/pkg/apperrors"
	"github.com/campushire/placementhub/internal/pkg/logger"
)

// dateLayout is the wire format of drive and profile dates
const dateLayout = "2006-01-02"

func parseDate(value *string) (*time.Time, error) {
	if value == nil || *value == "" {
		return nil, nil
	}
	t, err := time.Parse(dateLayout, *value)
	if err != nil {
		return nil, apperrors.NewBadRequestError("invalid date, expected YYYY-MM-DD")
	}
	return &t, nil
}

// DriveService handles placement drives
type DriveService struct {
	drives    repositories.DriveRepository
	companies repositories.CompanyRepository
	queries   repositories.QueryRepository
	journeys  repositories.JourneyRepository
}

// NewDriveService creates a new drive service
func NewDriveService(
	drives repositories.DriveRepository,
	companies repositories.CompanyRepository,
	queries repositories.QueryRepository,
	journeys repositories.JourneyRepository,
) *DriveService {
	return &DriveService{drives: drives, companies: companies, queries: queries, journeys: journeys}
}

// GetAll lists drives with company summaries, soonest deadline first
func (s *DriveService) GetAll(ctx context.Context) ([]models.PlacementDrive, error) {
	return s.drives.GetAll(ctx)
}

// GetDetail assembles a drive with its company, the public queries and the
// approved journeys in parallel reads
func (s *DriveService) GetDetail(ctx context.Context, driveID int64) (*models.DriveDetail, error) {
	drive, err := s.drives.GetByID(ctx, driveID)
	if err != nil {
		return nil, err
	}

	detail := &models.DriveDetail{PlacementDrive: *drive}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		company, err := s.companies.GetByID(gctx, drive.CompanyID)
		if err != nil {
			return err
		}
		detail.CompanyFull = company
		return nil
	})
	g.Go(func() error {
		queries, err := s.queries.GetByDrive(gctx, driveID, true)
		if err != nil {
			return err
		}
		detail.Queries = queries
		return nil
	})
	g.Go(func() error {
		journeys, err := s.journeys.GetByDrive(gctx, driveID, true)
		if err != nil {
			return err
		}
		detail.Journeys = journeys
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	if detail.Queries == nil {
		detail.Queries = []models.Query{}
	}
	if detail.Journeys == nil {
		detail.Journeys = []models.Journey{}
	}

	return detail, nil
}

// Create opens a drive for an existing company, stamped with the creating admin
func (s *DriveService) Create(ctx context.Context, actor appauth.Actor, req *dto.CreateDriveRequest) (*models.PlacementDrive, error) {
	if err := appauth.RequireAdmin(actor); err != nil {
		return nil, err
	}

	if _, err := s.companies.GetByID(ctx, req.CompanyID); err != nil {
		return nil, err
	}

	drive := &models.PlacementDrive{
		CompanyID: req.CompanyID,
		Batch:     req.Batch,
		Location:  req.Location,
		Mode:      models.DriveModeOffline,
		CreatedBy: actor.ID,
	}
	if req.Mode != nil {
		drive.Mode = models.DriveMode(*req.Mode)
	}

	var err error
	if drive.RegistrationDeadline, err = parseDate(req.RegistrationDeadline); err != nil {
		return nil, err
	}
	if drive.TestDate, err = parseDate(req.TestDate); err != nil {
		return nil, err
	}
	if drive.InterviewDate, err = parseDate(req.InterviewDate); err != nil {
		return nil, err
	}

	if err := s.drives.Create(ctx, drive); err != nil {
		return nil, err
	}

	logger.Info().Int64("drive_id", drive.ID).Int64("company_id", drive.CompanyID).
		Msg("Placement drive created")
	return s.drives.GetByID(ctx, drive.ID)
}

// Update merges the provided fields onto an existing drive
func (s *DriveService) Update(ctx context.Context, actor appauth.Actor, driveID int64, req *dto.UpdateDriveRequest) (*models.PlacementDrive, error) {
	drive, err := s.drives.GetByID(ctx, driveID)
	if err != nil {
		return nil, err
	}

	if err := appauth.RequireAdmin(actor); err != nil {
		return nil, err
	}

	if req.CompanyID != nil {
		if _, err := s.companies.GetByID(ctx, *req.CompanyID); err != nil {
			return nil, err
		}
		drive.CompanyID = *req.CompanyID
	}
	if req.Batch != nil {
		drive.Batch = req.Batch
	}
	if req.Location != nil {
		drive.Location = req.Location
	}
	if req.Mode != nil {
		drive.Mode = models.DriveMode(*req.Mode)
	}
	if req.RegistrationDeadline != nil {
		if drive.RegistrationDeadline, err = parseDate(req.RegistrationDeadline); err != nil {
			return nil, err
		}
	}
	if req.TestDate != nil {
		if drive.TestDate, err = parseDate(req.TestDate); err != nil {
			return nil, err
		}
	}
	if req.InterviewDate != nil {
		if drive.InterviewDate, err = parseDate(req.InterviewDate); err != nil {
			return nil, err
		}
	}

	if err := s.drives.Update(ctx, drive); err != nil {
		return nil, err
	}

	return s.drives.GetByID(ctx, driveID)
}

// Delete removes a drive
func (s *DriveService) Delete(ctx context.Context, actor appauth.Actor, driveID int64) error {
	if _, err := s.drives.GetByID(ctx, driveID); err != nil {
		return err
	}

	if err := appauth.RequireAdmin(actor); err != nil {
		return err
	}

	return s.drives.Delete(ctx, driveID)
}
