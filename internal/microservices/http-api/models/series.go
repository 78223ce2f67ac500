package models

import "time"

type Series struct {
	ID          int64      `json:"id" gorm:"primaryKey;autoIncrement"`
	Slug        *string    `json:"slug,omitempty" gorm:"uniqueIndex;size:200"`
	Title       string     `json:"title" gorm:"not null"`
	Franchise   *string    `json:"franchise,omitempty" gorm:"index;size:100"`
	Description *string    `json:"description,omitempty"`
	PosterURL   *string    `json:"poster_url,omitempty"`
	CreatedAt   *time.Time `json:"created_at,omitempty" gorm:"autoCreateTime"`

	// Associations
	Seasons []Season `json:"seasons,omitempty" gorm:"foreignKey:SeriesID;constraint:OnDelete:CASCADE;"`
}

func (Series) TableName() string {
	return "series"
}

type Season struct {
	ID           int64      `json:"id" gorm:"primaryKey;autoIncrement"`
	SeriesID     int64      `json:"series_id" gorm:"not null;index;uniqueIndex:uniq_series_season"`
	SeasonNumber int        `json:"season_number" gorm:"not null;uniqueIndex:uniq_series_season"`
	StartDate    *time.Time `json:"start_date,omitempty"`
	// Phase is an optional franchise-wide grouping tag spanning seasons
	// of different series (e.g. "phase one" of a shared universe).
	Phase     *string    `json:"phase,omitempty" gorm:"index;size:100"`
	CreatedAt *time.Time `json:"created_at,omitempty" gorm:"autoCreateTime"`

	// Associations
	Series   Series    `json:"series,omitempty" gorm:"foreignKey:SeriesID"`
	Episodes []Episode `json:"episodes,omitempty" gorm:"foreignKey:SeasonID;constraint:OnDelete:CASCADE;"`
}

func (Season) TableName() string {
	return "seasons"
}

type Episode struct {
	ID            int64      `json:"id" gorm:"primaryKey;autoIncrement"`
	SeasonID      int64      `json:"season_id" gorm:"not null;index;uniqueIndex:uniq_season_episode"`
	EpisodeNumber int        `json:"episode_number" gorm:"not null;uniqueIndex:uniq_season_episode"`
	Title         *string    `json:"title,omitempty"`
	AirDate       *time.Time `json:"air_date,omitempty"`

	// Associations
	Season Season `json:"season,omitempty" gorm:"foreignKey:SeasonID"`
}

func (Episode) TableName() string {
	return "episodes"
}
