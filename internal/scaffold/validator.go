package scaffold

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/dyluth/roads/internal/config"
)

// CheckExisting returns an error if dir already holds a roads.yml.
func CheckExisting(dir string) error {
	path := filepath.Join(dir, config.DefaultFileName)
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("project already initialized\n\nFound existing: %s\n\nUse 'roads init --force' to reinitialize (this will overwrite existing configuration)", config.DefaultFileName)
	}
	return nil
}
