package repository

import (
	"context"
	"fmt"

	"mediavault/internal/models"

	"gorm.io/gorm"
)

type VideoRepository interface {
	Create(ctx context.Context, video *models.Video) error
	GetAll(ctx context.Context) ([]models.Video, error)
	GetByID(ctx context.Context, id int64) (*models.Video, error)
	Search(ctx context.Context, query string) ([]models.Video, error)
	SearchByGenre(ctx context.Context, genre string) ([]models.Video, error)
}

type videoRepository struct {
	db *gorm.DB
}

func NewVideoRepository(db *gorm.DB) VideoRepository {
	return &videoRepository{db: db}
}

func (r *videoRepository) Create(ctx context.Context, video *models.Video) error {
	if err := r.db.WithContext(ctx).Create(video).Error; err != nil {
		return fmt.Errorf("create video: %w", err)
	}
	// GORM populates video.ID and video.UploadDate
	return nil
}

// GetAll returns the whole catalog, newest upload first, with the uploader
// joined for the username projection.
func (r *videoRepository) GetAll(ctx context.Context) ([]models.Video, error) {
	var list []models.Video
	if err := r.db.WithContext(ctx).
		Preload("Uploader").
		Order("upload_date DESC").
		Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

func (r *videoRepository) GetByID(ctx context.Context, id int64) (*models.Video, error) {
	var v models.Video
	if err := r.db.WithContext(ctx).Preload("Uploader").First(&v, id).Error; err != nil {
		return nil, err
	}
	return &v, nil
}

// Search performs a case-insensitive substring match across title, publisher,
// producer and genre. An empty query matches everything.
func (r *videoRepository) Search(ctx context.Context, query string) ([]models.Video, error) {
	var list []models.Video
	p := "%" + query + "%"
	if err := r.db.WithContext(ctx).
		Preload("Uploader").
		Where("title ILIKE ? OR publisher ILIKE ? OR producer ILIKE ? OR genre ILIKE ?", p, p, p, p).
		Order("upload_date DESC").
		Find(&list).Error; err != nil {
		return nil, fmt.Errorf("search videos: %w", err)
	}
	return list, nil
}

// SearchByGenre is a case-insensitive "contains" match on the genre column,
// not an exact match.
func (r *videoRepository) SearchByGenre(ctx context.Context, genre string) ([]models.Video, error) {
	var list []models.Video
	if err := r.db.WithContext(ctx).
		Preload("Uploader").
		Where("genre ILIKE ?", "%"+genre+"%").
		Order("upload_date DESC").
		Find(&list).Error; err != nil {
		return nil, fmt.Errorf("search videos by genre: %w", err)
	}
	return list, nil
}
