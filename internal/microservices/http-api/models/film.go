package models

import "time"

type Film struct {
	ID            int64      `json:"id" gorm:"primaryKey;autoIncrement"`
	Slug          *string    `json:"slug,omitempty" gorm:"uniqueIndex;size:200"`
	Title         string     `json:"title" gorm:"not null"`
	ReleaseDate   *time.Time `json:"release_date,omitempty"`
	Franchise     *string    `json:"franchise,omitempty" gorm:"index;size:100"`
	Description   *string    `json:"description,omitempty"`
	AverageRating *float64   `json:"average_rating,omitempty" gorm:"type:decimal(4,2)"`
	RatingCount   int        `json:"rating_count" gorm:"default:0"`
	PosterURL     *string    `json:"poster_url,omitempty"`
	CreatedAt     *time.Time `json:"created_at,omitempty" gorm:"autoCreateTime"`
}

func (Film) TableName() string {
	return "films"
}
