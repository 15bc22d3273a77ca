package dto

import "github.com/campushire/placementhub/internal/app/models"

// CreateJourneyRequest is the body of POST /journeys/drives/:driveId/journeys.
// Approval fields are server-controlled and never read from the body.
type CreateJourneyRequest struct {
	Rounds            []models.JourneyRound `json:"rounds_json" binding:"required"`
	OverallExperience *string               `json:"overall_experience,omitempty"`
	TipsForJuniors    *string               `json:"tips_for_juniors,omitempty"`
}

// UpdateJourneyRequest is the body of PUT /journeys/journeys/:journeyId.
// Approved is honored only for admins; owners may edit the content fields.
type UpdateJourneyRequest struct {
	Rounds            []models.JourneyRound `json:"rounds_json,omitempty"`
	OverallExperience *string               `json:"overall_experience,omitempty"`
	TipsForJuniors    *string               `json:"tips_for_juniors,omitempty"`
	Approved          *bool                 `json:"approved,omitempty"`
}
