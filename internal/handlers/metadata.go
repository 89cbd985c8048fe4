package handlers

import (
	"net/http"
	"net/url"
	"strconv"

	"github.com/gin-gonic/gin"
)

// TMDBProxy forwards a raw request to the movie database so the browser
// never sees the API key. This is the one place upstream failures surface
// as 500 instead of degrading.
func (h *Handler) TMDBProxy(c *gin.Context) {
	endpoint := c.Query("endpoint")
	if endpoint == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Endpoint parameter is required"})
		return
	}

	params := url.Values{}
	for key, values := range c.Request.URL.Query() {
		if key != "endpoint" {
			params[key] = values
		}
	}

	data, err := h.tmdbService.Proxy(c.Request.Context(), endpoint, params)
	if err != nil {
		h.logger.Error("TMDB proxy request failed", "endpoint", endpoint, "error", err)
		resp := gin.H{"error": "Error fetching data from TMDB"}
		if !h.cfg.IsProduction() {
			resp["details"] = err.Error()
		}
		c.JSON(http.StatusInternalServerError, resp)
		return
	}

	c.JSON(http.StatusOK, data)
}

func (h *Handler) LatestMovies(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	results := h.tmdbService.LatestMovies(c.Request.Context(), page, limit)

	c.JSON(http.StatusOK, gin.H{"results": results})
}
