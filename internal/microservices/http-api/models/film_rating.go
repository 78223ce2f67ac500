package models

import "time"

// FilmRating is a whole-number 0-10 rating. Films deliberately use a
// coarser granularity than episodes; there is no quarter-step rule here.
type FilmRating struct {
	ID        int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	UserID    string    `json:"user_id" gorm:"type:uuid;not null;index;uniqueIndex:uniq_user_film"`
	FilmID    int64     `json:"film_id" gorm:"not null;index;uniqueIndex:uniq_user_film"`
	Score     int       `json:"score" gorm:"not null;check:score >= 0 AND score <= 10"`
	Review    *string   `json:"review,omitempty" gorm:"type:text"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`

	// Associations
	User User `json:"user,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE;"`
	Film Film `json:"film,omitempty" gorm:"foreignKey:FilmID;constraint:OnDelete:CASCADE;"`
}

func (FilmRating) TableName() string {
	return "film_ratings"
}
