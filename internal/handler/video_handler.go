package handler

import (
	"errors"
	"net/http"

	"mediavault/internal/dto"
	"mediavault/internal/middleware"
	"mediavault/internal/service"

	"github.com/gin-gonic/gin"
)

type VideoHandler struct {
	videoService service.VideoService
}

func NewVideoHandler(videoService service.VideoService) *VideoHandler {
	return &VideoHandler{videoService: videoService}
}

// List returns the catalog, or the search results when ?q= is present
// GET /videos
// GET /videos?q=term
func (h *VideoHandler) List(c *gin.Context) {
	query, hasQuery := c.GetQuery("q")

	var (
		videos []dto.VideoSummary
		err    error
	)
	if hasQuery {
		videos, err = h.videoService.Search(c.Request.Context(), query)
	} else {
		videos, err = h.videoService.ListAll(c.Request.Context())
	}
	if err != nil {
		internalError(c, "failed to list videos", err)
		return
	}

	c.JSON(http.StatusOK, videos)
}

// GetByID returns the aggregate detail view for one video
// GET /videos/:id
func (h *VideoHandler) GetByID(c *gin.Context) {
	id, ok := videoIDParam(c)
	if !ok {
		return
	}

	detail, err := h.videoService.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrVideoNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "video not found"})
			return
		}
		internalError(c, "failed to fetch video", err)
		return
	}

	c.JSON(http.StatusOK, detail)
}

// ListByGenre returns videos whose genre contains the given term
// GET /videos/genre/:genre
func (h *VideoHandler) ListByGenre(c *gin.Context) {
	videos, err := h.videoService.ListByGenre(c.Request.Context(), c.Param("genre"))
	if err != nil {
		internalError(c, "failed to list videos by genre", err)
		return
	}

	c.JSON(http.StatusOK, videos)
}

// Upload stores the file in the blob store and inserts the catalog row.
// The route is gated to creator/admin before this handler runs.
// POST /videos (multipart: videoFile + metadata fields)
func (h *VideoHandler) Upload(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	var req dto.UploadVideoRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	fileHeader, err := c.FormFile("videoFile")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "video file is required"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		internalError(c, "failed to read uploaded file", err)
		return
	}
	defer file.Close()

	resp, err := h.videoService.Upload(c.Request.Context(), userID, &req, file, fileHeader.Filename)
	if err != nil {
		internalError(c, "upload failed", err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}
