package dto

import (
	"time"

	"mediavault/internal/models"
)

// UploadVideoRequest: multipart form fields accompanying the video file.
// Only the title is mandatory; the rest default to empty strings, matching
// the catalog contract.
type UploadVideoRequest struct {
	Title     string `form:"title" binding:"required"`
	Publisher string `form:"publisher"`
	Producer  string `form:"producer"`
	Genre     string `form:"genre"`
	AgeRating string `form:"ageRating"`
}

// UploadVideoResponse: returned after a successful upload
type UploadVideoResponse struct {
	ID      int64  `json:"id"`
	BlobURL string `json:"blobUrl"`
	Message string `json:"message"`
}

// VideoSummary: one catalog row, joined with the uploader's username
type VideoSummary struct {
	ID           int64     `json:"id"`
	Title        string    `json:"title"`
	Publisher    string    `json:"publisher"`
	Producer     string    `json:"producer"`
	Genre        string    `json:"genre"`
	AgeRating    string    `json:"ageRating"`
	BlobURL      string    `json:"blobUrl"`
	UploaderID   int64     `json:"uploaderId"`
	UploaderName string    `json:"uploaderName"`
	UploadDate   time.Time `json:"uploadDate"`
}

// VideoDetail: the aggregate read for a single video page. One call returns
// the metadata, every comment and the rating statistics.
type VideoDetail struct {
	VideoSummary
	Comments      []CommentResponse `json:"comments"`
	AverageRating float64           `json:"averageRating"`
	RatingCount   int64             `json:"ratingCount"`
}

// FromModelToVideoSummary converts a Video model (with Uploader preloaded)
// to its summary projection
func FromModelToVideoSummary(video *models.Video) *VideoSummary {
	return &VideoSummary{
		ID:           video.ID,
		Title:        video.Title,
		Publisher:    video.Publisher,
		Producer:     video.Producer,
		Genre:        video.Genre,
		AgeRating:    video.AgeRating,
		BlobURL:      video.BlobURL,
		UploaderID:   video.UploaderID,
		UploaderName: video.Uploader.Username,
		UploadDate:   video.UploadDate,
	}
}
