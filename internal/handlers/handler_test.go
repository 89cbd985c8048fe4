package handlers

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/wasishah33/Subscene-Clone/internal/auth"
	"github.com/wasishah33/Subscene-Clone/internal/config"
	"github.com/wasishah33/Subscene-Clone/internal/models"
	"github.com/wasishah33/Subscene-Clone/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

// Each test file gets its own named in-memory database. cache=shared keeps
// the pooled connections (and the search service's concurrent queries) on
// the same store.
func setupTestHandler(dbName string, uploadDir string) (*Handler, *gorm.DB) {
	db, _ := gorm.Open(sqlite.Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", dbName)), &gorm.Config{})
	db.AutoMigrate(&models.User{}, &models.Upload{}, &models.Subtitle{})

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	cfg := config.Config{
		AppEnv:    "local",
		JWTSecret: "test-secret-12345678901234567890123456789012",
		UploadDir: uploadDir,
	}

	issuer := auth.NewIssuer(cfg.JWTSecret)
	accounts := services.NewAccountService(db, issuer, logger)
	search := services.NewSearchService(db, logger)
	uploads := services.NewUploadService(db, logger, cfg.UploadDir)
	tmdb := services.NewTMDBService(cfg.TMDBAPIKey, logger)

	h := NewHandler(cfg, logger, issuer, accounts, search, uploads, tmdb)
	return h, db
}

func setupTestRouter(h *Handler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	return h.SetupRouter(nil)
}
