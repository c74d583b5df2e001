package repository

import (
	"context"

	"mediavault/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type RatingRepository interface {
	Upsert(ctx context.Context, rating *models.Rating) error
	GetByUserAndVideo(ctx context.Context, userID, videoID int64) (*models.Rating, error)
	GetByVideo(ctx context.Context, videoID int64) ([]models.Rating, error)
	Stats(ctx context.Context, videoID int64) (average float64, count int64, err error)
}

type ratingRepository struct {
	db *gorm.DB
}

func NewRatingRepository(db *gorm.DB) RatingRepository {
	return &ratingRepository{db: db}
}

// Upsert inserts the rating or, when the (video_id, user_id) pair already
// exists, updates the stored value in place. One statement, so two
// concurrent submissions from the same user cannot produce duplicate rows or
// a lost update.
func (r *ratingRepository) Upsert(ctx context.Context, rating *models.Rating) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "video_id"}, {Name: "user_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"rating":     rating.Rating,
			"updated_at": gorm.Expr("CURRENT_TIMESTAMP"),
		}),
	}).Create(rating).Error
}

func (r *ratingRepository) GetByUserAndVideo(ctx context.Context, userID, videoID int64) (*models.Rating, error) {
	var rating models.Rating
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND video_id = ?", userID, videoID).
		Preload("User").
		First(&rating).Error; err != nil {
		return nil, err
	}
	return &rating, nil
}

// GetByVideo returns all ratings on a video, newest first, with the rater
// joined for the username projection.
func (r *ratingRepository) GetByVideo(ctx context.Context, videoID int64) ([]models.Rating, error) {
	var ratings []models.Rating
	if err := r.db.WithContext(ctx).
		Where("video_id = ?", videoID).
		Preload("User").
		Order("created_at DESC").
		Find(&ratings).Error; err != nil {
		return nil, err
	}
	return ratings, nil
}

// Stats computes the rating mean and count in one query. COALESCE keeps the
// unrated case at 0 instead of NULL.
func (r *ratingRepository) Stats(ctx context.Context, videoID int64) (float64, int64, error) {
	var result struct {
		Average float64
		Count   int64
	}

	err := r.db.WithContext(ctx).Model(&models.Rating{}).
		Select("COALESCE(AVG(rating), 0) as average, COUNT(*) as count").
		Where("video_id = ?", videoID).
		Scan(&result).Error
	if err != nil {
		return 0, 0, err
	}

	return result.Average, result.Count, nil
}
