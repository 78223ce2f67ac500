package models

import "time"

// EpisodeRating stores a quarter-aligned score in [0, 10]. Quarter-step
// and range validation happens in the service layer before any write.
type EpisodeRating struct {
	ID        int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	UserID    string    `json:"user_id" gorm:"type:uuid;not null;index;uniqueIndex:uniq_user_episode"`
	EpisodeID int64     `json:"episode_id" gorm:"not null;index;uniqueIndex:uniq_user_episode"`
	Score     float64   `json:"score" gorm:"type:decimal(4,2);not null;check:score >= 0 AND score <= 10"`
	Review    *string   `json:"review,omitempty" gorm:"type:text"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`

	// Associations
	User    User    `json:"user,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE;"`
	Episode Episode `json:"episode,omitempty" gorm:"foreignKey:EpisodeID;constraint:OnDelete:CASCADE;"`
}

func (EpisodeRating) TableName() string {
	return "episode_ratings"
}
