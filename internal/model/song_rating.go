package model

import (
	"time"
)

type SongRating struct {
	ID        uint64    `gorm:"primaryKey" json:"id"`
	SongIndex uint64    `gorm:"not null;index:idx_song_index" json:"song_index"`
	Rating    int       `gorm:"not null" json:"rating"`
	CreatedAt time.Time `json:"created_at"`
}

func (SongRating) TableName() string {
	return "song_ratings"
}
