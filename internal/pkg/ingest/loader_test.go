package ingest

import (
	"Songboard/internal/model"
	"os"
	"path/filepath"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const samplePlaylist = `{
	"id":               {"0": "6I9VzXrHxO9rA9A5euc8Ak", "1": "0qYTZCo5Bwh1nsUFGZP3zn"},
	"title":            {"0": "Toxic", "1": "Crazy in Love"},
	"danceability":     {"0": 0.774, "1": 0.664},
	"energy":           {"0": 0.838, "1": 0.758},
	"key":              {"0": 5, "1": 2},
	"loudness":         {"0": -3.914, "1": -6.583},
	"mode":             {"0": 0, "1": 0},
	"acousticness":     {"0": 0.0249, "1": 0.00238},
	"instrumentalness": {"0": 0.025, "1": 0},
	"liveness":         {"0": 0.242, "1": 0.0598},
	"valence":          {"0": 0.924, "1": 0.701},
	"tempo":            {"0": 143.04, "1": 99.259},
	"duration_ms":      {"0": 198800, "1": 235933},
	"time_signature":   {"0": 4, "1": 4},
	"num_bars":         {"0": 71, "1": 58},
	"num_sections":     {"0": 9, "1": 10},
	"num_segments":     {"0": 726, "1": 862},
	"class":            {"0": 1, "1": 1}
}`

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("underlying db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	return db
}

func writePlaylist(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "playlist.json")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write playlist: %v", err)
	}
	return path
}

func TestRun(t *testing.T) {
	db := openTestDB(t)
	path := writePlaylist(t, samplePlaylist)

	count, err := Run(db, path, 0)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if count != 2 {
		t.Fatalf("count: got %d, want 2", count)
	}

	var songs []*model.Song
	if err = db.Order("id ASC").Find(&songs).Error; err != nil {
		t.Fatalf("load songs: %v", err)
	}
	if len(songs) != 2 {
		t.Fatalf("songs stored: got %d, want 2", len(songs))
	}

	first := songs[0]
	if first.ID != 1 || first.SongID != "6I9VzXrHxO9rA9A5euc8Ak" || first.Title != "Toxic" {
		t.Fatalf("first song wrong: %+v", first)
	}
	if first.Key != 5 || first.DurationMs != 198800 || first.NumSegments != 726 || first.ClassLabel != 1 {
		t.Fatalf("first song features wrong: %+v", first)
	}

	second := songs[1]
	if second.ID != 2 || second.Title != "Crazy in Love" {
		t.Fatalf("second song wrong: %+v", second)
	}
}

func TestRun_SparseRowsRejected(t *testing.T) {
	db := openTestDB(t)
	// 行号跳号：0 和 2，缺 1
	path := writePlaylist(t, `{"id": {"0": "a", "2": "b"}, "title": {"0": "A", "2": "B"}}`)

	if _, err := Run(db, path, 0); err == nil {
		t.Fatalf("expected error for sparse rows")
	}
}

func TestRun_MissingFile(t *testing.T) {
	db := openTestDB(t)
	if _, err := Run(db, filepath.Join(t.TempDir(), "nope.json"), 0); err == nil {
		t.Fatalf("expected error for missing file")
	}
}
