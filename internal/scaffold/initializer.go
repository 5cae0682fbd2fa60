package scaffold

import (
	"bytes"
	"embed"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"text/template"

	"github.com/dyluth/roads/internal/config"
	"github.com/dyluth/roads/pkg/road"
)

//go:embed templates/*
var templatesFS embed.FS

// Options fills the roads.yml template
type Options struct {
	TableName  string
	Height     int
	Width      int
	RedisURL   string
	HealthAddr string
}

// DefaultOptions returns the values written by a plain `roads init`.
func DefaultOptions() Options {
	return Options{
		TableName:  config.DefaultTableName,
		Height:     road.DefaultHeight,
		Width:      road.DefaultWidth,
		RedisURL:   config.DefaultRedisURL,
		HealthAddr: config.DefaultHealthAddr,
	}
}

// Initialize writes roads.yml into dir and returns its path.
// If force is true an existing roads.yml is replaced.
func Initialize(dir string, opts Options, force bool) (string, error) {
	path := filepath.Join(dir, config.DefaultFileName)

	if force {
		if err := handleForce(path); err != nil {
			return "", err
		}
	} else if err := CheckExisting(dir); err != nil {
		return "", err
	}

	content, err := renderConfig(opts)
	if err != nil {
		return "", err
	}

	if err := os.WriteFile(path, content, 0644); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", path, err)
	}

	// Validate created file
	if _, err := config.Load(path); err != nil {
		return "", fmt.Errorf("created %s is not valid: %w", config.DefaultFileName, err)
	}

	return path, nil
}

// handleForce removes an existing roads.yml
func handleForce(path string) error {
	if _, err := os.Stat(path); err == nil {
		if err := os.Remove(path); err != nil {
			return fmt.Errorf("failed to remove %s: %w", path, err)
		}
	}
	return nil
}

func renderConfig(opts Options) ([]byte, error) {
	raw, err := templatesFS.ReadFile("templates/roads.yml.tmpl")
	if err != nil {
		return nil, fmt.Errorf("failed to read roads.yml template: %w", err)
	}

	tmpl, err := template.New("roads.yml").Parse(string(raw))
	if err != nil {
		return nil, fmt.Errorf("failed to parse roads.yml template: %w", err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, opts); err != nil {
		return nil, fmt.Errorf("failed to render roads.yml: %w", err)
	}
	return buf.Bytes(), nil
}

// PrintSuccess prints the success message with next steps
func PrintSuccess(w io.Writer, path string) {
	fmt.Fprintln(w, "\n✅ Successfully initialized roads configuration!")
	fmt.Fprintln(w, "\nCreated:")
	fmt.Fprintf(w, "  ✓ %s\n", path)
	fmt.Fprintln(w, "\nNext steps:")
	fmt.Fprintln(w, "  1. Run 'roads play 9P B P 6B' to try the boards offline")
	fmt.Fprintln(w, "  2. Start Redis and the scoreboard daemon for live tables")
	fmt.Fprintln(w, "  3. Run 'roads shoe' then 'roads deal B' to record hands")
}
