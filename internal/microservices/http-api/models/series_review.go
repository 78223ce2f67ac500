package models

import "time"

// SeriesReview is free text only; series carry no user-entered numeric
// score, their averages are always derived from season effective scores.
type SeriesReview struct {
	ID        int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	UserID    string    `json:"user_id" gorm:"type:uuid;not null;index;uniqueIndex:uniq_user_series"`
	SeriesID  int64     `json:"series_id" gorm:"not null;index;uniqueIndex:uniq_user_series"`
	Review    string    `json:"review" gorm:"type:text;not null"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`

	// Associations
	User   User   `json:"user,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE;"`
	Series Series `json:"series,omitempty" gorm:"foreignKey:SeriesID;constraint:OnDelete:CASCADE;"`
}

func (SeriesReview) TableName() string {
	return "series_reviews"
}
