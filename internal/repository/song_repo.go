package repository

import (
	"Songboard/internal/model"
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"
)

// songRowSelect 读模型列：对外暴露的歌曲字段 + 关联出的最新评分
const songRowSelect = "songs.id, songs.song_id, songs.title, songs.danceability, songs.energy, songs.mode, " +
	"songs.acousticness, songs.tempo, songs.duration_ms, songs.num_sections, songs.num_segments, " +
	"r.rating AS latest_rating"

type SongRepo interface {
	ListWithLatestRating(ctx context.Context, offset, limit int) ([]*model.SongRow, error)
	SearchByTitle(ctx context.Context, title string) ([]*model.SongRow, error)
	GetByID(ctx context.Context, id uint64) (*model.Song, error)
}

type songRepoImpl struct {
	db *gorm.DB
}

func NewSongRepo(db *gorm.DB) SongRepo {
	return &songRepoImpl{db: db}
}

// withLatestRating 只关联每首歌 id 最大的一条评分，
// 多条评分在分页/排序前就被收敛成一行，没有评分的歌曲保留为 NULL
func (s *songRepoImpl) withLatestRating(ctx context.Context) *gorm.DB {
	latest := s.db.Table("song_ratings").Select("MAX(id)").Where("song_index = songs.id")
	return s.db.WithContext(ctx).
		Table("songs").
		Select(songRowSelect).
		Joins("LEFT JOIN song_ratings r ON r.song_index = songs.id AND r.id = (?)", latest)
}

func (s *songRepoImpl) ListWithLatestRating(ctx context.Context, offset, limit int) ([]*model.SongRow, error) {
	rows := make([]*model.SongRow, 0, limit)
	err := s.withLatestRating(ctx).
		Order("songs.id ASC").
		Offset(offset).
		Limit(limit).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (s *songRepoImpl) SearchByTitle(ctx context.Context, title string) ([]*model.SongRow, error) {
	rows := make([]*model.SongRow, 0)
	err := s.withLatestRating(ctx).
		Where("LOWER(songs.title) LIKE ?", "%"+strings.ToLower(title)+"%").
		Order("songs.id ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (s *songRepoImpl) GetByID(ctx context.Context, id uint64) (*model.Song, error) {
	var song model.Song
	err := s.db.WithContext(ctx).First(&song, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &song, nil
}
