package models

import "time"

// Rating holds one row per (video, user) pair. The composite unique index is
// the natural key the upsert conflicts on; it is what keeps concurrent
// duplicate submissions from producing two rows.
type Rating struct {
	ID        int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	VideoID   int64     `json:"video_id" gorm:"not null;uniqueIndex:idx_ratings_video_user"`
	UserID    int64     `json:"user_id" gorm:"not null;uniqueIndex:idx_ratings_video_user"`
	Rating    int       `json:"rating" gorm:"not null;check:rating >= 1 AND rating <= 5"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`

	// Associations
	User  User  `json:"user,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE;"`
	Video Video `json:"video,omitempty" gorm:"foreignKey:VideoID;constraint:OnDelete:CASCADE;"`
}

func (Rating) TableName() string {
	return "ratings"
}
