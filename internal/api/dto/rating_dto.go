package dto

// RateSongDTO 提交评分请求体
// Rating 不做 binding 校验，区间检查放在 service 里以返回固定文案
type RateSongDTO struct {
	SongIndex *uint64 `json:"song_index" binding:"required"`
	Rating    int     `json:"rating"`
}
