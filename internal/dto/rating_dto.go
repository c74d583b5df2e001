package dto

import (
	"time"

	"mediavault/internal/models"
)

// CreateRatingRequest: payload for submitting or revising a rating
type CreateRatingRequest struct {
	Rating int `json:"rating" binding:"required,min=1,max=5"`
}

// RatingResponse: one rating joined with the rater's username
type RatingResponse struct {
	ID        int64     `json:"id"`
	VideoID   int64     `json:"videoId"`
	UserID    int64     `json:"userId"`
	Username  string    `json:"username"`
	Rating    int       `json:"rating"`
	CreatedAt time.Time `json:"createdAt"`
}

// FromModelToRatingResponse converts a Rating model (with User preloaded)
// to its response projection
func FromModelToRatingResponse(rating *models.Rating) *RatingResponse {
	return &RatingResponse{
		ID:        rating.ID,
		VideoID:   rating.VideoID,
		UserID:    rating.UserID,
		Username:  rating.User.Username,
		Rating:    rating.Rating,
		CreatedAt: rating.CreatedAt,
	}
}
