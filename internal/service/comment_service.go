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

type CommentService interface {
	Create(ctx context.Context, userID, videoID int64, text string) (*dto.CommentResponse, error)
	ListByVideo(ctx context.Context, videoID int64) ([]dto.CommentResponse, error)
}

type commentService struct {
	commentRepo repository.CommentRepository
	videoRepo   repository.VideoRepository
	cache       *cache.Cache
}

func NewCommentService(commentRepo repository.CommentRepository, videoRepo repository.VideoRepository, c *cache.Cache) CommentService {
	return &commentService{
		commentRepo: commentRepo,
		videoRepo:   videoRepo,
		cache:       c,
	}
}

// Create inserts a comment by the given user on the given video. Comments
// are never edited or deleted, so this is the whole write surface.
func (s *commentService) Create(ctx context.Context, userID, videoID int64, text string) (*dto.CommentResponse, error) {
	if _, err := s.videoRepo.GetByID(ctx, videoID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrVideoNotFound
		}
		return nil, err
	}

	comment := &models.Comment{
		VideoID: videoID,
		UserID:  userID,
		Comment: text,
	}

	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, err
	}

	// Reload with the author for the response projection
	comment, err := s.commentRepo.GetByID(ctx, comment.ID)
	if err != nil {
		return nil, err
	}

	// The detail aggregate embeds comments; drop its cached copy
	_ = s.cache.Delete(ctx, videoDetailCacheKey(videoID))

	return dto.FromModelToCommentResponse(comment), nil
}

// ListByVideo returns a video's comments, newest first. An existing video
// with no comments yields an empty list, not an error.
func (s *commentService) ListByVideo(ctx context.Context, videoID int64) ([]dto.CommentResponse, error) {
	if _, err := s.videoRepo.GetByID(ctx, videoID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrVideoNotFound
		}
		return nil, err
	}

	comments, err := s.commentRepo.GetByVideo(ctx, videoID)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.CommentResponse, 0, len(comments))
	for i := range comments {
		responses = append(responses, *dto.FromModelToCommentResponse(&comments[i]))
	}
	return responses, nil
}
