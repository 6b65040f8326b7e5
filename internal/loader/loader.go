package loader

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/vk/courseplan/internal/catalog"
)

// Loader is the interface for a format-specific catalog source. A loader
// performs all file I/O and field trimming itself and hands the core fully
// parsed records; the catalog never touches the filesystem.
type Loader interface {
	// Load reads course records from the given path. Records are returned
	// in file order; the caller decides how to handle insertion failures.
	Load(ctx context.Context, path string) ([]*catalog.Course, error)
}

// ForPath picks a loader for the given path: a directory or a ".hcl" file
// selects the HCL loader, anything else the CSV loader.
func ForPath(path string) Loader {
	if info, err := os.Stat(path); err == nil && info.IsDir() {
		return NewHCLLoader()
	}
	if strings.EqualFold(filepath.Ext(path), ".hcl") {
		return NewHCLLoader()
	}
	return NewCSVLoader()
}
