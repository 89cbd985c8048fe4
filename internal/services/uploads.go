package services

import (
	"errors"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/wasishah33/Subscene-Clone/internal/models"

	"gorm.io/gorm"
)

var (
	ErrUploadNotFound = errors.New("upload not found")
	ErrNotOwner       = errors.New("you do not own this upload")
)

type UploadDTO struct {
	Title            string
	Imdb             string
	Lang             string
	AuthorName       string
	Comment          string
	Releases         string
	FilePath         string
	OriginalFilename string
	FileSize         int64
}

type UploadService struct {
	db        *gorm.DB
	logger    *slog.Logger
	uploadDir string
}

func NewUploadService(db *gorm.DB, logger *slog.Logger, uploadDir string) *UploadService {
	return &UploadService{db: db, logger: logger, uploadDir: uploadDir}
}

// Save records an uploaded subtitle for its owner. Duplicate titles and
// IMDb ids are allowed.
func (s *UploadService) Save(dto UploadDTO, userID uint) (*models.Upload, error) {
	upload := models.Upload{
		UserID:           userID,
		Title:            dto.Title,
		Imdb:             dto.Imdb,
		Lang:             dto.Lang,
		AuthorName:       dto.AuthorName,
		Comment:          dto.Comment,
		Releases:         dto.Releases,
		FilePath:         dto.FilePath,
		OriginalFilename: dto.OriginalFilename,
		FileSize:         dto.FileSize,
	}

	if err := s.db.Create(&upload).Error; err != nil {
		return nil, err
	}

	return &upload, nil
}

// ListByOwner returns a user's uploads, most recent first.
func (s *UploadService) ListByOwner(userID uint) ([]models.Upload, error) {
	var uploads []models.Upload
	err := s.db.Where("user_id = ?", userID).Order("created_at desc").Find(&uploads).Error
	if err != nil {
		return nil, err
	}
	return uploads, nil
}

func (s *UploadService) GetByID(id uint) (*models.Upload, error) {
	var upload models.Upload
	if err := s.db.First(&upload, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUploadNotFound
		}
		return nil, err
	}
	return &upload, nil
}

// Delete removes an upload after an ownership check. The database row is
// the source of truth: the backing file is removed best-effort afterwards
// and a failure there is logged, never propagated.
func (s *UploadService) Delete(id uint, requesterID uint) (*models.Upload, error) {
	upload, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	if upload.UserID != requesterID {
		return nil, ErrNotOwner
	}

	if err := s.db.Delete(&models.Upload{}, upload.ID).Error; err != nil {
		return nil, err
	}

	diskPath := filepath.Join(s.uploadDir, filepath.Base(upload.FilePath))
	if err := os.Remove(diskPath); err != nil {
		s.logger.Warn("Failed to remove upload file", "path", diskPath, "error", err)
	}

	return upload, nil
}

// IncrementDownloadCount bumps the download counter atomically and returns
// the updated row. The counter is public, no authorization applies.
func (s *UploadService) IncrementDownloadCount(id uint) (*models.Upload, error) {
	result := s.db.Model(&models.Upload{}).
		Where("id = ?", id).
		UpdateColumn("download_count", gorm.Expr("download_count + 1"))
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ErrUploadNotFound
	}

	return s.GetByID(id)
}
