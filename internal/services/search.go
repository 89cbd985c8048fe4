package services

import (
	"errors"
	"log/slog"
	"math"
	"strings"
	"sync"

	"github.com/wasishah33/Subscene-Clone/internal/models"

	"gorm.io/gorm"
)

var ErrSubtitleNotFound = errors.New("subtitle not found")

const (
	defaultLimit = 20
	maxLimit     = 100
)

// sortColumns is the only path from a user-supplied sort key to query text.
// Anything not in this map falls back to the date column.
var sortColumns = map[string]string{
	"id":          "id",
	"title":       "title",
	"date":        "date",
	"author_name": "author_name",
	"lang":        "lang",
}

type SearchParams struct {
	SearchTerm string
	Lang       string
	Page       int
	Limit      int
	SortBy     string
	SortOrder  string
}

type Pagination struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"totalPages"`
	HasMore    bool  `json:"hasMore"`
	HasPrev    bool  `json:"hasPrev"`
}

type SearchResult struct {
	Data       []models.Subtitle `json:"data"`
	Pagination Pagination        `json:"pagination"`
}

type SearchService struct {
	db     *gorm.DB
	logger *slog.Logger
}

func NewSearchService(db *gorm.DB, logger *slog.Logger) *SearchService {
	return &SearchService{db: db, logger: logger}
}

// Search runs a paginated filter over the catalog. The count and the page
// slice share one predicate and run concurrently since neither depends on
// the other.
func (s *SearchService) Search(params SearchParams) (*SearchResult, error) {
	page := params.Page
	if page < 1 {
		page = 1
	}
	limit := params.Limit
	if limit < 1 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}
	offset := (page - 1) * limit

	query := s.db.Model(&models.Subtitle{})

	if term := strings.TrimSpace(params.SearchTerm); term != "" {
		pattern := "%" + strings.ToLower(term) + "%"
		query = query.Where(
			"LOWER(title) LIKE ? OR LOWER(CAST(imdb AS TEXT)) LIKE ? OR LOWER(author_name) LIKE ? OR LOWER(COALESCE(releases, '')) LIKE ?",
			pattern, pattern, pattern, pattern,
		)
	}

	if lang := strings.TrimSpace(params.Lang); lang != "" {
		query = query.Where("lang = ?", lang)
	}

	column, ok := sortColumns[params.SortBy]
	if !ok {
		column = "date"
	}
	order := strings.ToLower(params.SortOrder)
	if order != "asc" && order != "desc" {
		order = "desc"
	}

	tx := query.Session(&gorm.Session{})

	var (
		total    int64
		rows     []models.Subtitle
		countErr error
		dataErr  error
		wg       sync.WaitGroup
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		countErr = tx.Count(&total).Error
	}()
	go func() {
		defer wg.Done()
		dataErr = tx.Order(column + " " + order).Limit(limit).Offset(offset).Find(&rows).Error
	}()
	wg.Wait()

	if countErr != nil {
		return nil, countErr
	}
	if dataErr != nil {
		return nil, dataErr
	}

	totalPages := int(math.Ceil(float64(total) / float64(limit)))

	return &SearchResult{
		Data: rows,
		Pagination: Pagination{
			Page:       page,
			Limit:      limit,
			Total:      total,
			TotalPages: totalPages,
			HasMore:    page < totalPages,
			HasPrev:    page > 1,
		},
	}, nil
}

// GetByID fetches a single catalog row. Legacy rows may carry a bare numeric
// IMDb id, so it is normalized before being handed to callers.
func (s *SearchService) GetByID(id uint) (*models.Subtitle, error) {
	var subtitle models.Subtitle
	if err := s.db.First(&subtitle, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSubtitleNotFound
		}
		return nil, err
	}

	subtitle.Imdb = NormalizeIMDbID(subtitle.Imdb)
	return &subtitle, nil
}

// Languages lists the distinct language codes in the catalog, ascending.
func (s *SearchService) Languages() ([]string, error) {
	var langs []string
	err := s.db.Model(&models.Subtitle{}).
		Distinct("lang").
		Order("lang asc").
		Pluck("lang", &langs).Error
	if err != nil {
		return nil, err
	}
	return langs, nil
}
