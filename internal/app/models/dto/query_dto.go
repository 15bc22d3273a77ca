package dto

// CreateQueryRequest is the body of POST /queries/drives/:driveId/queries.
// Answer/public/answered_by are server-controlled and never read from the body.
type CreateQueryRequest struct {
	Content string `json:"content" binding:"required"`
}

// UpdateQueryRequest is the body of PUT /queries/queries/:queryId (admin only)
type UpdateQueryRequest struct {
	Answer *string `json:"answer,omitempty"`
	Public *bool   `json:"public,omitempty"`
}
