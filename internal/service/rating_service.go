package service

import (
	"context"
	"errors"

	"mediavault/internal/cache"
	"mediavault/internal/dto"
	"mediavault/internal/models"
	"mediavault/internal/repository"

	"gorm.io/gorm"
)

var ErrInvalidRating = errors.New("rating must be between 1 and 5")

type RatingService interface {
	Submit(ctx context.Context, userID, videoID int64, value int) (*dto.RatingResponse, error)
	ListByVideo(ctx context.Context, videoID int64) ([]dto.RatingResponse, error)
}

type ratingService struct {
	ratingRepo repository.RatingRepository
	videoRepo  repository.VideoRepository
	cache      *cache.Cache
}

func NewRatingService(ratingRepo repository.RatingRepository, videoRepo repository.VideoRepository, c *cache.Cache) RatingService {
	return &ratingService{
		ratingRepo: ratingRepo,
		videoRepo:  videoRepo,
		cache:      c,
	}
}

// Submit records the user's rating for a video. Repeated submissions from
// the same user converge to a single stored row holding the last value; the
// upsert is atomic on the (video, user) natural key.
func (s *ratingService) Submit(ctx context.Context, userID, videoID int64, value int) (*dto.RatingResponse, error) {
	if value < 1 || value > 5 {
		return nil, ErrInvalidRating
	}

	if _, err := s.videoRepo.GetByID(ctx, videoID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrVideoNotFound
		}
		return nil, err
	}

	rating := &models.Rating{
		VideoID: videoID,
		UserID:  userID,
		Rating:  value,
	}

	if err := s.ratingRepo.Upsert(ctx, rating); err != nil {
		return nil, err
	}

	// Reload with the rater for the response projection
	stored, err := s.ratingRepo.GetByUserAndVideo(ctx, userID, videoID)
	if err != nil {
		return nil, err
	}

	// The detail aggregate embeds the rating stats; drop its cached copy
	_ = s.cache.Delete(ctx, videoDetailCacheKey(videoID))

	return dto.FromModelToRatingResponse(stored), nil
}

// ListByVideo returns a video's ratings, newest first. An existing video
// with no ratings yields an empty list, not an error.
func (s *ratingService) ListByVideo(ctx context.Context, videoID int64) ([]dto.RatingResponse, error) {
	if _, err := s.videoRepo.GetByID(ctx, videoID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrVideoNotFound
		}
		return nil, err
	}

	ratings, err := s.ratingRepo.GetByVideo(ctx, videoID)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.RatingResponse, 0, len(ratings))
	for i := range ratings {
		responses = append(responses, *dto.FromModelToRatingResponse(&ratings[i]))
	}
	return responses, nil
}
