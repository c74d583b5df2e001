package service

import (
	"context"
	"errors"
	"fmt"
	"io"

	"mediavault/internal/cache"
	"mediavault/internal/dto"
	"mediavault/internal/models"
	"mediavault/internal/repository"
	"mediavault/internal/storage"

	"gorm.io/gorm"
)

var ErrVideoNotFound = errors.New("video not found")

const catalogCacheKey = "videos:all"

func videoDetailCacheKey(id int64) string {
	return fmt.Sprintf("videos:detail:%d", id)
}

type VideoService interface {
	ListAll(ctx context.Context) ([]dto.VideoSummary, error)
	Search(ctx context.Context, query string) ([]dto.VideoSummary, error)
	ListByGenre(ctx context.Context, genre string) ([]dto.VideoSummary, error)
	GetByID(ctx context.Context, id int64) (*dto.VideoDetail, error)
	Upload(ctx context.Context, uploaderID int64, req *dto.UploadVideoRequest, file io.Reader, fileName string) (*dto.UploadVideoResponse, error)
}

type videoService struct {
	videoRepo   repository.VideoRepository
	commentRepo repository.CommentRepository
	ratingRepo  repository.RatingRepository
	blob        storage.BlobStorage
	cache       *cache.Cache
}

func NewVideoService(
	videoRepo repository.VideoRepository,
	commentRepo repository.CommentRepository,
	ratingRepo repository.RatingRepository,
	blob storage.BlobStorage,
	c *cache.Cache,
) VideoService {
	return &videoService{
		videoRepo:   videoRepo,
		commentRepo: commentRepo,
		ratingRepo:  ratingRepo,
		blob:        blob,
		cache:       c,
	}
}

// ListAll returns the catalog newest-first. The result is cached until the
// next upload invalidates it.
func (s *videoService) ListAll(ctx context.Context) ([]dto.VideoSummary, error) {
	var cached []dto.VideoSummary
	if hit, err := s.cache.GetJSON(ctx, catalogCacheKey, &cached); err == nil && hit {
		return cached, nil
	}

	videos, err := s.videoRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	summaries := toSummaries(videos)
	// Best effort; a cache fault never fails the read
	_ = s.cache.SetJSON(ctx, catalogCacheKey, summaries)
	return summaries, nil
}

// Search matches the query as a case-insensitive substring of title,
// publisher, producer or genre. An empty query returns the whole catalog.
func (s *videoService) Search(ctx context.Context, query string) ([]dto.VideoSummary, error) {
	videos, err := s.videoRepo.Search(ctx, query)
	if err != nil {
		return nil, err
	}
	return toSummaries(videos), nil
}

func (s *videoService) ListByGenre(ctx context.Context, genre string) ([]dto.VideoSummary, error) {
	videos, err := s.videoRepo.SearchByGenre(ctx, genre)
	if err != nil {
		return nil, err
	}
	return toSummaries(videos), nil
}

// GetByID is the aggregate read for the video page: metadata, uploader name,
// all comments newest-first and the rating statistics in one response. A
// video with no ratings reports average 0 and count 0.
func (s *videoService) GetByID(ctx context.Context, id int64) (*dto.VideoDetail, error) {
	key := videoDetailCacheKey(id)
	var cached dto.VideoDetail
	if hit, err := s.cache.GetJSON(ctx, key, &cached); err == nil && hit {
		return &cached, nil
	}

	video, err := s.videoRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrVideoNotFound
		}
		return nil, err
	}

	comments, err := s.commentRepo.GetByVideo(ctx, id)
	if err != nil {
		return nil, err
	}

	average, count, err := s.ratingRepo.Stats(ctx, id)
	if err != nil {
		return nil, err
	}

	detail := &dto.VideoDetail{
		VideoSummary:  *dto.FromModelToVideoSummary(video),
		Comments:      make([]dto.CommentResponse, 0, len(comments)),
		AverageRating: average,
		RatingCount:   count,
	}
	for i := range comments {
		detail.Comments = append(detail.Comments, *dto.FromModelToCommentResponse(&comments[i]))
	}

	_ = s.cache.SetJSON(ctx, key, detail)
	return detail, nil
}

// Upload stores the bytes in the blob store first, then inserts the catalog
// row pointing at the returned URL. The two writes are not transactional: a
// crash in between leaves an orphaned blob, never a row with a dangling URL.
func (s *videoService) Upload(ctx context.Context, uploaderID int64, req *dto.UploadVideoRequest, file io.Reader, fileName string) (*dto.UploadVideoResponse, error) {
	blobURL, err := s.blob.Upload(ctx, file, fileName)
	if err != nil {
		return nil, fmt.Errorf("store video bytes: %w", err)
	}

	video := &models.Video{
		Title:      req.Title,
		Publisher:  req.Publisher,
		Producer:   req.Producer,
		Genre:      req.Genre,
		AgeRating:  req.AgeRating,
		BlobURL:    blobURL,
		UploaderID: uploaderID,
	}

	if err := s.videoRepo.Create(ctx, video); err != nil {
		return nil, err
	}

	_ = s.cache.Delete(ctx, catalogCacheKey)

	return &dto.UploadVideoResponse{
		ID:      video.ID,
		BlobURL: blobURL,
		Message: "Video uploaded successfully",
	}, nil
}

func toSummaries(videos []models.Video) []dto.VideoSummary {
	summaries := make([]dto.VideoSummary, 0, len(videos))
	for i := range videos {
		summaries = append(summaries, *dto.FromModelToVideoSummary(&videos[i]))
	}
	return summaries
}
