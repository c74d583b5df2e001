package dto

import (
	"time"

	"mediavault/internal/models"
)

// CreateCommentRequest: payload for authoring a comment
type CreateCommentRequest struct {
	Comment string `json:"comment" binding:"required"`
}

// CommentResponse: one comment joined with its author's username
type CommentResponse struct {
	ID        int64     `json:"id"`
	VideoID   int64     `json:"videoId"`
	UserID    int64     `json:"userId"`
	Username  string    `json:"username"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"createdAt"`
}

// FromModelToCommentResponse converts a Comment model (with User preloaded)
// to its response projection
func FromModelToCommentResponse(comment *models.Comment) *CommentResponse {
	return &CommentResponse{
		ID:        comment.ID,
		VideoID:   comment.VideoID,
		UserID:    comment.UserID,
		Username:  comment.User.Username,
		Comment:   comment.Comment,
		CreatedAt: comment.CreatedAt,
	}
}
