package utils

import (
	"path/filepath"

	"github.com/google/uuid"
)

// StoredFilename generates a collision-resistant name for an uploaded file,
// keeping only the extension of the client-supplied name. The original name
// is stored in the database, never on disk.
func StoredFilename(originalFilename string) string {
	return uuid.NewString() + filepath.Ext(originalFilename)
}
