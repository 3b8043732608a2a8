package main

import (
	"context"
	"errors"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"photofolio/cmd/app"
	"photofolio/internal/config"
	"photofolio/internal/models"
	"photofolio/internal/repository"
)

func strPtr(s string) *string { return &s }

// Seeds the admin user and the default home/exhibition pages so a fresh
// deployment serves something.
func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	cfg := config.LoadConfig()
	db, repo, _ := app.App(cfg)
	defer db.CloseDB()

	ctx := context.Background()

	adminEmail := os.Getenv("ADMIN_EMAIL")
	adminPassword := os.Getenv("ADMIN_PASSWORD")
	if adminEmail == "" || adminPassword == "" {
		log.Fatal().Msg("ADMIN_EMAIL and ADMIN_PASSWORD must be set")
	}

	if _, err := repo.User.GetByEmail(ctx, adminEmail); errors.Is(err, repository.ErrNotFound) {
		user := &models.User{
			Email: adminEmail,
			Name:  strPtr("Admin"),
			Role:  "admin",
		}
		if err := repo.User.Create(ctx, user, adminPassword); err != nil {
			log.Fatal().Err(err).Msg("failed to create admin user")
		}
		log.Info().Str("email", adminEmail).Msg("created admin user")
	} else if err != nil {
		log.Fatal().Err(err).Msg("failed to check admin user")
	} else {
		log.Info().Str("email", adminEmail).Msg("admin user already exists")
	}

	defaultPages := []models.Page{
		{
			Title:      "Home",
			Slug:       "home",
			Content:    strPtr("Welcome to my photography collection"),
			PageType:   models.PageTypeHome,
			ShowInMenu: true,
			MenuOrder:  "1",
			Published:  true,
		},
		{
			Title:      "Exhibition",
			Slug:       "exhibition",
			Content:    strPtr("Explore our curated exhibitions and collections"),
			PageType:   models.PageTypeStandard,
			ShowInMenu: true,
			MenuOrder:  "2",
			Published:  true,
		},
	}

	for i := range defaultPages {
		page := defaultPages[i]
		if _, err := repo.Page.GetBySlug(ctx, page.Slug); err == nil {
			log.Info().Str("slug", page.Slug).Msg("page already exists")
			continue
		} else if !errors.Is(err, repository.ErrNotFound) {
			log.Fatal().Err(err).Msg("failed to check page")
		}

		if err := repo.Page.Create(ctx, &page); err != nil {
			log.Fatal().Err(err).Msg("failed to create page")
		}
		log.Info().Str("title", page.Title).Msg("created page")
	}
}
