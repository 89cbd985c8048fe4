package handlers

import (
	"errors"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/wasishah33/Subscene-Clone/internal/services"
	"github.com/wasishah33/Subscene-Clone/pkg/utils"

	"github.com/gin-gonic/gin"
)

const maxUploadSize = 10 << 20 // 10MB

// UploadSubtitle accepts a multipart form with the subtitle archive and its
// metadata. The file is validated before anything touches disk and stored
// under a generated name so the client-supplied name never hits the
// filesystem.
func (h *Handler) UploadSubtitle(c *gin.Context) {
	userID := c.GetUint("user_id")

	title := strings.TrimSpace(c.PostForm("title"))
	imdb := strings.TrimSpace(c.PostForm("imdb"))
	lang := strings.TrimSpace(c.PostForm("lang"))
	if title == "" || imdb == "" || lang == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Title, IMDb ID, and language are required"})
		return
	}

	file, err := c.FormFile("subtitle")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Subtitle file is required"})
		return
	}

	if file.Size > maxUploadSize {
		c.JSON(http.StatusBadRequest, gin.H{"error": "File exceeds the 10MB limit"})
		return
	}

	contentType := file.Header.Get("Content-Type")
	if !strings.Contains(contentType, "zip") && !strings.EqualFold(filepath.Ext(file.Filename), ".zip") {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Only ZIP files are accepted"})
		return
	}

	if err := os.MkdirAll(h.cfg.UploadDir, 0o755); err != nil {
		h.logger.Error("Failed to create upload directory", "dir", h.cfg.UploadDir, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Upload failed. Please try again."})
		return
	}

	storedName := utils.StoredFilename(file.Filename)
	dst := filepath.Join(h.cfg.UploadDir, storedName)

	if err := c.SaveUploadedFile(file, dst); err != nil {
		h.logger.Error("Failed to store uploaded file", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Upload failed. Please try again."})
		return
	}

	upload, err := h.uploadService.Save(services.UploadDTO{
		Title:            title,
		Imdb:             imdb,
		Lang:             lang,
		AuthorName:       c.PostForm("authorName"),
		Comment:          c.PostForm("comment"),
		Releases:         c.PostForm("releases"),
		FilePath:         "/uploads/" + storedName,
		OriginalFilename: file.Filename,
		FileSize:         file.Size,
	}, userID)
	if err != nil {
		// The row is the source of truth; without it the stored file is junk.
		if rmErr := os.Remove(dst); rmErr != nil {
			h.logger.Warn("Failed to remove orphaned upload file", "path", dst, "error", rmErr)
		}
		h.logger.Error("Failed to save upload", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save upload"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"upload": upload})
}

func (h *Handler) ListMyUploads(c *gin.Context) {
	userID := c.GetUint("user_id")

	uploads, err := h.uploadService.ListByOwner(userID)
	if err != nil {
		h.logger.Error("Failed to list uploads", "user_id", userID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"uploads": uploads})
}

func (h *Handler) DeleteUpload(c *gin.Context) {
	userID := c.GetUint("user_id")

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Upload ID is required"})
		return
	}

	upload, err := h.uploadService.Delete(uint(id), userID)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrUploadNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Upload not found"})
		case errors.Is(err, services.ErrNotOwner):
			c.JSON(http.StatusUnauthorized, gin.H{"error": "You do not own this upload"})
		default:
			h.logger.Error("Failed to delete upload", "id", id, "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"upload": upload})
}

// CountDownload bumps the public download counter. Rate limiting at the
// router is its only abuse protection.
func (h *Handler) CountDownload(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Upload ID is required"})
		return
	}

	upload, err := h.uploadService.IncrementDownloadCount(uint(id))
	if err != nil {
		if errors.Is(err, services.ErrUploadNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Upload not found"})
			return
		}
		h.logger.Error("Failed to count download", "id", id, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"upload": upload})
}
