package models

import "time"

// Video is the catalog entity. Rows are immutable after upload: there is no
// edit or delete operation, so no soft-delete columns either.
type Video struct {
	ID         int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	Title      string    `json:"title" gorm:"not null"`
	Publisher  string    `json:"publisher"`
	Producer   string    `json:"producer"`
	Genre      string    `json:"genre"`
	AgeRating  string    `json:"age_rating"`
	BlobURL    string    `json:"blob_url" gorm:"not null"`
	UploaderID int64     `json:"uploader_id" gorm:"not null;index"`
	UploadDate time.Time `json:"upload_date" gorm:"autoCreateTime"`

	// Associations
	Uploader User `json:"uploader,omitempty" gorm:"foreignKey:UploaderID"`
}

func (Video) TableName() string {
	return "videos"
}
