package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"time"
)

const tmdbBaseURL = "https://api.themoviedb.org/3"

var ErrTMDBKeyMissing = errors.New("TMDB API key not configured")

// Legacy catalog rows carry IMDb ids in every shape imaginable. The pattern
// is only used for a warning; lookups proceed regardless.
var imdbIDPattern = regexp.MustCompile(`^tt\d{6,9}$`)

// NormalizeIMDbID trims the raw identifier and prepends the tt prefix when
// it is missing. Empty input stays empty.
func NormalizeIMDbID(raw string) string {
	id := strings.TrimSpace(raw)
	if id == "" {
		return ""
	}
	if !strings.HasPrefix(id, "tt") {
		id = "tt" + id
	}
	return id
}

// TMDBService is a pass-through gateway to the movie database. Every lookup
// degrades to nil on upstream failure; only the raw proxy surfaces errors.
type TMDBService struct {
	apiKey  string
	baseURL string
	client  *http.Client
	logger  *slog.Logger
}

func NewTMDBService(apiKey string, logger *slog.Logger) *TMDBService {
	return &TMDBService{
		apiKey:  apiKey,
		baseURL: tmdbBaseURL,
		client:  &http.Client{Timeout: 10 * time.Second},
		logger:  logger,
	}
}

func (s *TMDBService) get(ctx context.Context, endpoint string, params url.Values) (map[string]interface{}, error) {
	if s.apiKey == "" {
		return nil, ErrTMDBKeyMissing
	}

	if params == nil {
		params = url.Values{}
	}
	params.Set("api_key", s.apiKey)

	reqURL := fmt.Sprintf("%s/%s?%s", s.baseURL, endpoint, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, err
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("upstream returned status %d", resp.StatusCode)
	}

	var data map[string]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return nil, err
	}

	return data, nil
}

// Proxy forwards an arbitrary endpoint to the upstream API. Unlike the
// lookup helpers this one reports failures so the proxy route can answer 500.
func (s *TMDBService) Proxy(ctx context.Context, endpoint string, params url.Values) (map[string]interface{}, error) {
	return s.get(ctx, endpoint, params)
}

// Lookup resolves an IMDb id to full movie or TV details. A missing id, an
// upstream failure and a genuine no-match all come back as nil.
func (s *TMDBService) Lookup(ctx context.Context, imdbID string) map[string]interface{} {
	id := NormalizeIMDbID(imdbID)
	if id == "" {
		s.logger.Warn("No IMDb identifier on record, skipping metadata lookup")
		return nil
	}
	if !imdbIDPattern.MatchString(id) {
		s.logger.Warn("IMDb id does not match the expected format", "id", id)
	}

	data, err := s.get(ctx, "find/"+id, url.Values{"external_source": {"imdb_id"}})
	if err != nil {
		s.logger.Warn("Metadata lookup failed", "id", id, "error", err)
		return nil
	}

	if movie := firstResult(data, "movie_results"); movie != nil {
		if details := s.MovieDetails(ctx, mediaID(movie)); details != nil {
			details["media_type"] = "movie"
			return details
		}
		movie["media_type"] = "movie"
		return movie
	}

	if tv := firstResult(data, "tv_results"); tv != nil {
		if details := s.TVDetails(ctx, mediaID(tv)); details != nil {
			details["media_type"] = "tv"
			return details
		}
		tv["media_type"] = "tv"
		return tv
	}

	return nil
}

func (s *TMDBService) MovieDetails(ctx context.Context, id string) map[string]interface{} {
	if id == "" {
		return nil
	}
	data, err := s.get(ctx, "movie/"+id, url.Values{"append_to_response": {"credits,videos,images"}})
	if err != nil {
		s.logger.Warn("Movie details lookup failed", "id", id, "error", err)
		return nil
	}
	return data
}

func (s *TMDBService) TVDetails(ctx context.Context, id string) map[string]interface{} {
	if id == "" {
		return nil
	}
	data, err := s.get(ctx, "tv/"+id, url.Values{"append_to_response": {"credits,videos,images"}})
	if err != nil {
		s.logger.Warn("TV details lookup failed", "id", id, "error", err)
		return nil
	}
	return data
}

// LatestMovies returns a slice of the discover feed sorted by release date.
func (s *TMDBService) LatestMovies(ctx context.Context, page int, limit int) []interface{} {
	if page < 1 {
		page = 1
	}
	data, err := s.get(ctx, "discover/movie", url.Values{
		"sort_by":        {"release_date.desc"},
		"include_adult":  {"false"},
		"include_video":  {"false"},
		"page":           {strconv.Itoa(page)},
		"vote_count.gte": {"100"},
	})
	if err != nil {
		s.logger.Warn("Latest movies lookup failed", "error", err)
		return []interface{}{}
	}

	results, _ := data["results"].([]interface{})
	if limit > 0 && len(results) > limit {
		results = results[:limit]
	}
	return results
}

func firstResult(data map[string]interface{}, key string) map[string]interface{} {
	results, ok := data[key].([]interface{})
	if !ok || len(results) == 0 {
		return nil
	}
	first, _ := results[0].(map[string]interface{})
	return first
}

func mediaID(entry map[string]interface{}) string {
	id, ok := entry["id"].(float64)
	if !ok {
		return ""
	}
	return strconv.FormatInt(int64(id), 10)
}
