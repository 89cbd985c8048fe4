package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/wasishah33/Subscene-Clone/internal/services"

	"github.com/gin-gonic/gin"
)

// SearchSubtitles runs the paginated catalog search. Bad numeric input is
// not an error, it just falls back to the defaults before clamping.
func (h *Handler) SearchSubtitles(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	result, err := h.searchService.Search(services.SearchParams{
		SearchTerm: c.Query("search"),
		Lang:       c.Query("lang"),
		Page:       page,
		Limit:      limit,
		SortBy:     c.DefaultQuery("sortBy", "date"),
		SortOrder:  c.DefaultQuery("sortOrder", "desc"),
	})
	if err != nil {
		h.logger.Error("Subtitle search failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *Handler) GetSubtitle(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Subtitle ID is required"})
		return
	}

	subtitle, err := h.searchService.GetByID(uint(id))
	if err != nil {
		if errors.Is(err, services.ErrSubtitleNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Subtitle not found"})
			return
		}
		h.logger.Error("Failed to fetch subtitle", "id", id, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, subtitle)
}

// GetSubtitleMetadata enriches a catalog row with movie-database details.
// "No data" and "upstream down" look identical to the caller: metadata null.
func (h *Handler) GetSubtitleMetadata(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Subtitle ID is required"})
		return
	}

	subtitle, err := h.searchService.GetByID(uint(id))
	if err != nil {
		if errors.Is(err, services.ErrSubtitleNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Subtitle not found"})
			return
		}
		h.logger.Error("Failed to fetch subtitle", "id", id, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	metadata := h.tmdbService.Lookup(c.Request.Context(), subtitle.Imdb)

	c.JSON(http.StatusOK, gin.H{
		"imdb":     subtitle.Imdb,
		"metadata": metadata,
	})
}

func (h *Handler) ListLanguages(c *gin.Context) {
	languages, err := h.searchService.Languages()
	if err != nil {
		h.logger.Error("Failed to list languages", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"languages": languages})
}
