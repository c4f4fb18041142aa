package wire

import (
	"Songboard/internal/api"
	"Songboard/internal/api/config"
	"Songboard/internal/api/handler"
	"Songboard/internal/repository"
	"Songboard/internal/service"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ApplicationContainer 封装了应用运行所需的所有顶级组件
type ApplicationContainer struct {
	Router *gin.Engine
	DB     *gorm.DB
}

func BuildApplication(db *gorm.DB, cfg *config.Config) (*ApplicationContainer, error) {
	songRepo := repository.NewSongRepo(db)
	ratingRepo := repository.NewSongRatingRepo(db)

	songService := service.NewSongService(songRepo)
	ratingService := service.NewRatingService(songRepo, ratingRepo)

	handlers := &api.HandlersGroup{
		SongHandler: handler.NewSongHandler(songService, ratingService),
	}

	router := api.SetupRouter(handlers)

	return &ApplicationContainer{
		Router: router,
		DB:     db,
	}, nil
}
