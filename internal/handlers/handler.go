package handlers

import (
	"log/slog"

	"github.com/wasishah33/Subscene-Clone/internal/auth"
	"github.com/wasishah33/Subscene-Clone/internal/config"
	"github.com/wasishah33/Subscene-Clone/internal/services"
)

type Handler struct {
	cfg            config.Config
	logger         *slog.Logger
	issuer         *auth.Issuer
	accountService *services.AccountService
	searchService  *services.SearchService
	uploadService  *services.UploadService
	tmdbService    *services.TMDBService
}

func NewHandler(
	cfg config.Config,
	logger *slog.Logger,
	issuer *auth.Issuer,
	accountService *services.AccountService,
	searchService *services.SearchService,
	uploadService *services.UploadService,
	tmdbService *services.TMDBService,
) *Handler {
	return &Handler{
		cfg:            cfg,
		logger:         logger,
		issuer:         issuer,
		accountService: accountService,
		searchService:  searchService,
		uploadService:  uploadService,
		tmdbService:    tmdbService,
	}
}
