package dto

// CreateCommentRequest is the body of POST /comments/journeys/:journeyId/comments
type CreateCommentRequest struct {
	Content string `json:"content" binding:"required"`
}

// UpdateCommentRequest is the body of PUT /comments/comments/:commentId (admin only)
type UpdateCommentRequest struct {
	Content *string `json:"content,omitempty"`
}
