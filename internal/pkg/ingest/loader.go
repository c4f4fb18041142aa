package ingest

import (
	"Songboard/internal/model"
	"os"
	"strconv"

	"github.com/goccy/go-json"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

const DefaultBatchSize = 500

// playlistColumns 列式导出的歌单文件：每列是 "行号字符串 -> 值" 的映射
type playlistColumns struct {
	ID               map[string]string  `json:"id"`
	Title            map[string]string  `json:"title"`
	Danceability     map[string]float64 `json:"danceability"`
	Energy           map[string]float64 `json:"energy"`
	Key              map[string]int     `json:"key"`
	Loudness         map[string]float64 `json:"loudness"`
	Mode             map[string]int     `json:"mode"`
	Acousticness     map[string]float64 `json:"acousticness"`
	Instrumentalness map[string]float64 `json:"instrumentalness"`
	Liveness         map[string]float64 `json:"liveness"`
	Valence          map[string]float64 `json:"valence"`
	Tempo            map[string]float64 `json:"tempo"`
	DurationMs       map[string]int     `json:"duration_ms"`
	TimeSignature    map[string]int     `json:"time_signature"`
	NumBars          map[string]int     `json:"num_bars"`
	NumSections      map[string]int     `json:"num_sections"`
	NumSegments      map[string]int     `json:"num_segments"`
	Class            map[string]int     `json:"class"`
}

// Run 建表并把歌单文件整体导入 songs 表，返回导入的行数。
// 主键按行号顺序分配（从 1 开始），服务运行期间不再调用。
func Run(db *gorm.DB, path string, batchSize int) (int, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return 0, errors.Wrap(err, "read playlist file")
	}

	var cols playlistColumns
	if err = json.Unmarshal(raw, &cols); err != nil {
		return 0, errors.Wrap(err, "decode playlist file")
	}

	if err = db.AutoMigrate(&model.Song{}, &model.SongRating{}); err != nil {
		return 0, errors.Wrap(err, "migrate schema")
	}

	songs, err := toSongs(&cols)
	if err != nil {
		return 0, err
	}

	if batchSize <= 0 {
		batchSize = DefaultBatchSize
	}
	if err = db.CreateInBatches(songs, batchSize).Error; err != nil {
		return 0, errors.Wrap(err, "insert songs")
	}
	return len(songs), nil
}

func toSongs(cols *playlistColumns) ([]*model.Song, error) {
	size := len(cols.ID)
	songs := make([]*model.Song, 0, size)

	for i := 0; i < size; i++ {
		key := strconv.Itoa(i)
		songID, ok := cols.ID[key]
		if !ok {
			return nil, errors.Errorf("playlist file is not a dense sequence: missing row %d", i)
		}

		songs = append(songs, &model.Song{
			ID:               uint64(i) + 1,
			SongID:           songID,
			Title:            cols.Title[key],
			Danceability:     cols.Danceability[key],
			Energy:           cols.Energy[key],
			Key:              cols.Key[key],
			Loudness:         cols.Loudness[key],
			Mode:             cols.Mode[key],
			Acousticness:     cols.Acousticness[key],
			Instrumentalness: cols.Instrumentalness[key],
			Liveness:         cols.Liveness[key],
			Valence:          cols.Valence[key],
			Tempo:            cols.Tempo[key],
			DurationMs:       cols.DurationMs[key],
			TimeSignature:    cols.TimeSignature[key],
			NumBars:          cols.NumBars[key],
			NumSections:      cols.NumSections[key],
			NumSegments:      cols.NumSegments[key],
			ClassLabel:       cols.Class[key],
		})
	}
	return songs, nil
}
