package handler

import (
	"Songboard/internal/api/dto"
	"Songboard/internal/pkg/response"
	"Songboard/internal/service"

	"github.com/gin-gonic/gin"
)

type SongHandler struct {
	songSvc   service.SongService
	ratingSvc service.RatingService
}

func NewSongHandler(songSvc service.SongService, ratingSvc service.RatingService) *SongHandler {
	return &SongHandler{
		songSvc:   songSvc,
		ratingSvc: ratingSvc,
	}
}

func (s *SongHandler) ListSongs(c *gin.Context) {
	var listDTO dto.SongListDTO
	if err := c.ShouldBindQuery(&listDTO); err != nil {
		response.Error(c, err)
		return
	}

	songs, err := s.songSvc.ListSongs(c.Request.Context(), listDTO.Skip, listDTO.Limit)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, songs)
}

func (s *SongHandler) SearchSongs(c *gin.Context) {
	var searchDTO dto.SongSearchDTO
	if err := c.ShouldBindQuery(&searchDTO); err != nil {
		response.Error(c, err)
		return
	}

	songs, err := s.songSvc.SearchSongs(c.Request.Context(), searchDTO.Title)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, songs)
}

func (s *SongHandler) RateSong(c *gin.Context) {
	var rateDTO dto.RateSongDTO
	if err := c.ShouldBindJSON(&rateDTO); err != nil {
		response.Error(c, err)
		return
	}

	rating, err := s.ratingSvc.RateSong(c.Request.Context(), *rateDTO.SongIndex, rateDTO.Rating)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, rating)
}
