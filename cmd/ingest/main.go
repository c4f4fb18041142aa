package main

import (
	"Songboard/internal/api/config"
	"Songboard/internal/pkg/database"
	"Songboard/internal/pkg/ingest"
	"Songboard/internal/pkg/logger"
	"flag"
	log "log/slog"
)

// 一次性导入工具：在 api 启动前运行，把歌单文件灌进 songs 表
func main() {
	path := flag.String("data", "", "playlist json path, overrides config")
	flag.Parse()

	if err := config.LoadConfig(); err != nil {
		log.Error("Fatal error: failed to load configuration", "err", err)
		panic(err)
	}
	cfg := config.Cfg

	logger.InitLogger()

	db, err := database.NewGormDB(&cfg.DB)
	if err != nil {
		log.Error("Fatal error: failed to create database connection", "err", err)
		panic(err)
	}

	dataPath := cfg.Ingest.DataPath
	if *path != "" {
		dataPath = *path
	}
	if dataPath == "" {
		dataPath = "data/playlist.json"
	}

	count, err := ingest.Run(db, dataPath, cfg.Ingest.BatchSize)
	if err != nil {
		log.Error("Fatal error: ingest failed", "err", err)
		panic(err)
	}
	log.Info("Ingest finished.", "songs", count, "path", dataPath)
}
