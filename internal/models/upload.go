package models

import (
	"time"
)

type Upload struct {
	ID               uint      `gorm:"primaryKey" json:"id"`
	UserID           uint      `gorm:"not null;index" json:"user_id"`
	User             *User     `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"user,omitempty"`
	Title            string    `gorm:"not null;size:255" json:"title"`
	Imdb             string    `gorm:"size:20" json:"imdb"`
	Lang             string    `gorm:"not null;size:50" json:"lang"`
	AuthorName       string    `gorm:"size:100" json:"author_name"`
	Comment          string    `gorm:"type:text" json:"comment,omitempty"`
	Releases         string    `gorm:"type:text" json:"releases,omitempty"`
	FilePath         string    `gorm:"not null;size:255" json:"file_path"`
	OriginalFilename string    `gorm:"not null;size:255" json:"original_filename"`
	FileSize         int64     `gorm:"not null" json:"file_size"`
	DownloadCount    int       `gorm:"default:0" json:"download_count"`
	CreatedAt        time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt        time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"updated_at"`
}

// TableName overrides the table name used by Upload to `subtitle_uploads`
func (Upload) TableName() string {
	return "subtitle_uploads"
}
