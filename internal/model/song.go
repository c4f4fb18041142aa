package model

type Song struct {
	ID     uint64 `gorm:"primaryKey" json:"id"`
	SongID string `gorm:"type:varchar(64);uniqueIndex:idx_song_id" json:"song_id"`
	Title  string `gorm:"type:varchar(255);index:idx_title" json:"title"`

	Danceability     float64 `json:"danceability"`
	Energy           float64 `json:"energy"`
	Key              int     `json:"key"`
	Loudness         float64 `json:"loudness"`
	Mode             int     `json:"mode"`
	Acousticness     float64 `json:"acousticness"`
	Instrumentalness float64 `json:"instrumentalness"`
	Liveness         float64 `json:"liveness"`
	Valence          float64 `json:"valence"`
	Tempo            float64 `json:"tempo"`
	DurationMs       int     `json:"duration_ms"`
	TimeSignature    int     `json:"time_signature"`
	NumBars          int     `json:"num_bars"`
	NumSections      int     `json:"num_sections"`
	NumSegments      int     `json:"num_segments"`
	ClassLabel       int     `json:"class_label"`
}

func (Song) TableName() string {
	return "songs"
}

// SongRow 列表/搜索读模型的一行：歌曲展示字段 + 最新评分
type SongRow struct {
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
