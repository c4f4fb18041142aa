package service

import (
	"Songboard/internal/model"
	"Songboard/internal/repository"
	"context"
	"time"
)

const (
	MinRating = 1
	MaxRating = 5
)

type RatingService interface {
	RateSong(ctx context.Context, songIndex uint64, rating int) (*model.SongRating, error)
}

type ratingServiceImpl struct {
	songRepo   repository.SongRepo
	ratingRepo repository.SongRatingRepo
}

func NewRatingService(songRepo repository.SongRepo, ratingRepo repository.SongRatingRepo) RatingService {
	return &ratingServiceImpl{
		songRepo:   songRepo,
		ratingRepo: ratingRepo,
	}
}

// RateSong 校验评分区间和歌曲存在性后追加一条评分记录
func (s *ratingServiceImpl) RateSong(ctx context.Context, songIndex uint64, rating int) (*model.SongRating, error) {
	if rating < MinRating || rating > MaxRating {
		return nil, ErrRatingOutOfRange
	}

	song, err := s.songRepo.GetByID(ctx, songIndex)
	if err != nil {
		return nil, err
	}
	if song == nil {
		return nil, ErrSongNotFound
	}

	songRating := &model.SongRating{
		SongIndex: songIndex,
		Rating:    rating,
		CreatedAt: time.Now(),
	}
	if err = s.ratingRepo.Create(ctx, songRating); err != nil {
		return nil, err
	}
	return songRating, nil
}
