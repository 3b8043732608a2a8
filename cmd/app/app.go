package app

import (
	"github.com/rs/zerolog/log"

	"photofolio/internal/config"
	"photofolio/internal/database"
	"photofolio/internal/repository"
	"photofolio/internal/service"
	"photofolio/internal/storage"
)

// App wires the database, object storage, repositories and services.
func App(cfg *config.Config) (*database.DB, *repository.Repository, *service.Service) {
	db, err := database.ConnectDB(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}

	minioClient, err := storage.NewMinIOClient(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize object storage")
	}

	repo := repository.NewRepository(db.DB)
	services := service.NewService(repo, cfg, minioClient)

	return db, repo, services
}
