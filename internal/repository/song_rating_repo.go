package repository

import (
	"Songboard/internal/model"
	"context"

	"gorm.io/gorm"
)

type SongRatingRepo interface {
	Create(ctx context.Context, rating *model.SongRating) error
}

type songRatingRepoImpl struct {
	db *gorm.DB
}

func NewSongRatingRepo(db *gorm.DB) SongRatingRepo {
	return &songRatingRepoImpl{db: db}
}

// Create 插入一条评分，gorm 会回填自增 id
func (s *songRatingRepoImpl) Create(ctx context.Context, rating *model.SongRating) error {
	return s.db.WithContext(ctx).Create(rating).Error
}
