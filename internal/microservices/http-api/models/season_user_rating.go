package models

import "time"

// SeasonUserRating is a user's season-level row: an optional manual score
// that overrides the episode average, a bounded adjustment on top of it,
// and an optional review. A row where all three are neutral must not
// exist; writers collapse it to a delete instead.
type SeasonUserRating struct {
	ID          int64    `json:"id" gorm:"primaryKey;autoIncrement"`
	UserID      string   `json:"user_id" gorm:"type:uuid;not null;index;uniqueIndex:uniq_user_season"`
	SeasonID    int64    `json:"season_id" gorm:"not null;index;uniqueIndex:uniq_user_season"`
	ManualScore *float64 `json:"manual_score,omitempty" gorm:"type:decimal(4,2);check:manual_score IS NULL OR (manual_score >= 0 AND manual_score <= 10)"`
	Adjustment  float64  `json:"adjustment" gorm:"type:decimal(4,2);default:0;check:adjustment >= -2 AND adjustment <= 2"`
	Review      *string  `json:"review,omitempty" gorm:"type:text"`
	CreatedAt   time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt   time.Time `json:"updated_at" gorm:"autoUpdateTime"`

	// Associations
	User   User   `json:"user,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE;"`
	Season Season `json:"season,omitempty" gorm:"foreignKey:SeasonID;constraint:OnDelete:CASCADE;"`
}

func (SeasonUserRating) TableName() string {
	return "season_user_ratings"
}
