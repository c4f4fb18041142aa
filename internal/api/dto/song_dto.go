package dto

// SongRowDTO 歌曲列表/搜索返回行
type SongRowDTO struct {
	ID           uint64  `json:"id"`
	SongID       string  `json:"song_id"`
	Title        string  `json:"title"`
	Danceability float64 `json:"danceability"`
	Energy       float64 `json:"energy"`
	Mode         int     `json:"mode"`
	Acousticness float64 `json:"acousticness"`
	Tempo        float64 `json:"tempo"`
	DurationMs   int     `json:"duration_ms"`
	NumSections  int     `json:"num_sections"`
	NumSegments  int     `json:"num_segments"`
	LatestRating *int    `json:"latest_rating"`
}

// SongListDTO 列表查询参数
type SongListDTO struct {
	Skip  int `form:"skip,default=0" binding:"gte=0"`
	Limit int `form:"limit,default=10" binding:"gt=0"`
}

// SongSearchDTO 搜索查询参数
type SongSearchDTO struct {
	Title string `form:"title" binding:"required"`
}
