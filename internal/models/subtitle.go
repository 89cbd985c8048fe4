package models

import (
	"time"
)

// Subtitle maps the externally-owned catalog table. This service only ever
// reads from it; writes go through the uploads table instead.
type Subtitle struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Title        string    `gorm:"size:255" json:"title"`
	Imdb         string    `gorm:"size:20" json:"imdb"` // May be numeric or missing the tt prefix in legacy rows
	Lang         string    `gorm:"size:50;index" json:"lang"`
	AuthorName   string    `gorm:"column:author_name;size:100" json:"author_name"`
	Comment      string    `gorm:"type:text" json:"comment"`
	Releases     string    `gorm:"type:text" json:"releases"`
	Date         time.Time `json:"date"`
	DownloadLink string    `gorm:"column:download_link;type:text" json:"download_link"`
}

// TableName points Subtitle at the legacy catalog table
func (Subtitle) TableName() string {
	return "all_subs"
}
