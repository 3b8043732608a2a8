package main

import (
	"fmt"
	"net/http"
	"os"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"photofolio/cmd/app"
	"photofolio/internal/config"
	handlers "photofolio/internal/handler"
	"photofolio/internal/mailer"
	"photofolio/internal/middleware"
)

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	cfg := config.LoadConfig()

	if cfg.JWTSecretKey == "" {
		log.Fatal().Msg("JWT_SECRET_KEY is not set")
	}

	db, _, services := app.App(cfg)
	defer db.CloseDB()

	handler := handlers.NewHandlers(services, mailer.NewResendMailer(cfg))

	router := mux.NewRouter()

	router.HandleFunc("/health", handler.Health).Methods(http.MethodGet)
	router.HandleFunc("/auth/login", handler.Login).Methods(http.MethodPost)
	router.HandleFunc("/contact", handler.Contact).Methods(http.MethodPost)

	public := router.PathPrefix("/public").Subrouter()
	public.HandleFunc("/pages", handler.PublicPages).Methods(http.MethodGet)
	public.HandleFunc("/blog", handler.PublicBlog).Methods(http.MethodGet)
	public.HandleFunc("/category/{slug}", handler.PublicCategory).Methods(http.MethodGet)
	public.HandleFunc("/home", handler.PublicHome).Methods(http.MethodGet)

	admin := router.PathPrefix("/admin").Subrouter()
	admin.Use(mux.MiddlewareFunc(middleware.Auth(services.Auth)))
	admin.HandleFunc("/categories", handler.ListCategories).Methods(http.MethodGet)
	admin.HandleFunc("/categories", handler.CreateCategory).Methods(http.MethodPost)
	admin.HandleFunc("/categories", handler.DeleteCategory).Methods(http.MethodDelete)
	admin.HandleFunc("/files", handler.ListFiles).Methods(http.MethodGet)
	admin.HandleFunc("/files", handler.CreateFile).Methods(http.MethodPost)
	admin.HandleFunc("/files", handler.DeleteFile).Methods(http.MethodDelete)
	admin.HandleFunc("/files/{id}", handler.GetFile).Methods(http.MethodGet)
	admin.HandleFunc("/files/{id}", handler.UpdateFile).Methods(http.MethodPatch)
	admin.HandleFunc("/files/{id}", handler.DeleteFile).Methods(http.MethodDelete)
	admin.HandleFunc("/pages", handler.ListPages).Methods(http.MethodGet)
	admin.HandleFunc("/pages", handler.CreatePage).Methods(http.MethodPost)
	admin.HandleFunc("/pages", handler.UpdatePage).Methods(http.MethodPut)
	admin.HandleFunc("/pages", handler.DeletePage).Methods(http.MethodDelete)
	admin.HandleFunc("/blog", handler.ListPosts).Methods(http.MethodGet)
	admin.HandleFunc("/blog", handler.CreatePost).Methods(http.MethodPost)
	admin.HandleFunc("/blog", handler.UpdatePost).Methods(http.MethodPut)
	admin.HandleFunc("/blog", handler.DeletePost).Methods(http.MethodDelete)

	upload := router.PathPrefix("/upload").Subrouter()
	upload.Use(mux.MiddlewareFunc(middleware.Auth(services.Auth)))
	upload.HandleFunc("/presigned-url", handler.PresignedURL).Methods(http.MethodPost)

	handlerChain := middleware.Chain(
		router,
		middleware.CORS,
		middleware.Logging(log.Logger),
	)

	addr := fmt.Sprintf(":%d", cfg.ServerPort)
	log.Info().Str("addr", addr).Msg("server started")

	if err := http.ListenAndServe(addr, handlerChain); err != nil {
		log.Fatal().Err(err).Msg("server failed")
	}
}
