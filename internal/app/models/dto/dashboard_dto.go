package dto

import "github.com/campushire/placementhub/internal/app/models"

// AdminDashboard holds the admin landing-page counters.
// The counts are independent parallel reads; no snapshot consistency is implied.
type AdminDashboard struct {
	Drives          int64 `json:"drives"`
	PendingQueries  int64 `json:"pendingQueries"`
	PendingJourneys int64 `json:"pendingJourneys"`
}

// StudentDashboard holds the student landing-page aggregates
type StudentDashboard struct {
	UpcomingDrives      []models.PlacementDrive `json:"upcomingDrives"`
	RecentPublicQueries []models.Query          `json:"recentPublicQueries"`
	RecentJourneys      []models.Journey        `json:"recentJourneys"`
}
