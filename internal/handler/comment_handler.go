package handler

import (
	"errors"
	"net/http"

	"mediavault/internal/dto"
	"mediavault/internal/middleware"
	"mediavault/internal/service"

	"github.com/gin-gonic/gin"
)

type CommentHandler struct {
	commentService service.CommentService
}

func NewCommentHandler(commentService service.CommentService) *CommentHandler {
	return &CommentHandler{commentService: commentService}
}

// List returns all comments on a video, newest first
// GET /videos/:id/comments
func (h *CommentHandler) List(c *gin.Context) {
	videoID, ok := videoIDParam(c)
	if !ok {
		return
	}

	comments, err := h.commentService.ListByVideo(c.Request.Context(), videoID)
	if err != nil {
		if errors.Is(err, service.ErrVideoNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "video not found"})
			return
		}
		internalError(c, "failed to list comments", err)
		return
	}

	c.JSON(http.StatusOK, comments)
}

// Create adds a comment by the authenticated user
// POST /videos/:id/comments
func (h *CommentHandler) Create(c *gin.Context) {
	videoID, ok := videoIDParam(c)
	if !ok {
		return
	}

	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	var req dto.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	comment, err := h.commentService.Create(c.Request.Context(), userID, videoID, req.Comment)
	if err != nil {
		if errors.Is(err, service.ErrVideoNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "video not found"})
			return
		}
		internalError(c, "failed to add comment", err)
		return
	}

	c.JSON(http.StatusCreated, comment)
}
