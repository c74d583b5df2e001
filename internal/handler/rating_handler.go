package handler

import (
	"errors"
	"net/http"

	"mediavault/internal/dto"
	"mediavault/internal/middleware"
	"mediavault/internal/service"

	"github.com/gin-gonic/gin"
)

type RatingHandler struct {
	ratingService service.RatingService
}

func NewRatingHandler(ratingService service.RatingService) *RatingHandler {
	return &RatingHandler{ratingService: ratingService}
}

// List returns all ratings on a video, newest first
// GET /videos/:id/ratings
func (h *RatingHandler) List(c *gin.Context) {
	videoID, ok := videoIDParam(c)
	if !ok {
		return
	}

	ratings, err := h.ratingService.ListByVideo(c.Request.Context(), videoID)
	if err != nil {
		if errors.Is(err, service.ErrVideoNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "video not found"})
			return
		}
		internalError(c, "failed to list ratings", err)
		return
	}

	c.JSON(http.StatusOK, ratings)
}

// Create submits or revises the authenticated user's rating
// POST /videos/:id/ratings
func (h *RatingHandler) Create(c *gin.Context) {
	videoID, ok := videoIDParam(c)
	if !ok {
		return
	}

	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	var req dto.CreateRatingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "rating must be between 1 and 5"})
		return
	}

	rating, err := h.ratingService.Submit(c.Request.Context(), userID, videoID, req.Rating)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidRating):
			c.JSON(http.StatusBadRequest, gin.H{"error": "rating must be between 1 and 5"})
		case errors.Is(err, service.ErrVideoNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "video not found"})
		default:
			internalError(c, "failed to submit rating", err)
		}
		return
	}

	c.JSON(http.StatusCreated, rating)
}
