package service

import (
	"Songboard/internal/api/dto"
	"Songboard/internal/model"
	"Songboard/internal/repository"
	"context"

	"github.com/jinzhu/copier"
)

type SongService interface {
	ListSongs(ctx context.Context, skip, limit int) ([]*dto.SongRowDTO, error)
	SearchSongs(ctx context.Context, title string) ([]*dto.SongRowDTO, error)
}

type songServiceImpl struct {
	songRepo repository.SongRepo
}

func NewSongService(songRepo repository.SongRepo) SongService {
	return &songServiceImpl{songRepo: songRepo}
}

func (s *songServiceImpl) ListSongs(ctx context.Context, skip, limit int) ([]*dto.SongRowDTO, error) {
	rows, err := s.songRepo.ListWithLatestRating(ctx, skip, limit)
	if err != nil {
		return nil, err
	}
	return s.toSongRowDTOs(rows)
}

func (s *songServiceImpl) SearchSongs(ctx context.Context, title string) ([]*dto.SongRowDTO, error) {
	rows, err := s.songRepo.SearchByTitle(ctx, title)
	if err != nil {
		return nil, err
	}
	return s.toSongRowDTOs(rows)
}

// toSongRowDTOs 将读模型行转换为返回给前端的 DTO
func (s *songServiceImpl) toSongRowDTOs(rows []*model.SongRow) ([]*dto.SongRowDTO, error) {
	out := make([]*dto.SongRowDTO, 0, len(rows))
	if err := copier.Copy(&out, &rows); err != nil {
		return nil, err
	}
	return out, nil
}
