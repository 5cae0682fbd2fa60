package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/dyluth/roads/pkg/road"
	"github.com/redis/go-redis/v9"
	"gopkg.in/yaml.v3"
)

const (
	// DefaultFileName is the config file looked up in the working directory
	DefaultFileName = "roads.yml"

	// DefaultTableName namespaces the feed when no table is configured
	DefaultTableName = "baccarat-1"

	// DefaultRedisURL points at a local Redis
	DefaultRedisURL = "redis://localhost:6379/0"

	// DefaultHealthAddr is where the scoreboard serves /healthz and /roads
	DefaultHealthAddr = ":8080"

	MinHeight = 1
	MaxHeight = 20
	MinWidth  = 10
	MaxWidth  = 200
)

// RoadsConfig represents the top-level roads.yml configuration
type RoadsConfig struct {
	Version    string            `yaml:"version"`
	Table      TableConfig       `yaml:"table"`
	Redis      *RedisConfig      `yaml:"redis,omitempty"`
	Display    *DisplayConfig    `yaml:"display,omitempty"`
	Scoreboard *ScoreboardConfig `yaml:"scoreboard,omitempty"`
}

// TableConfig names the table and sizes its boards
type TableConfig struct {
	Name   string `yaml:"name"`             // Redis namespace for the feed
	Height int    `yaml:"height,omitempty"` // Rows per board (default 6)
	Width  int    `yaml:"width,omitempty"`  // Writable columns per board (default 60)
}

// RedisConfig locates the Redis server that carries the feed
type RedisConfig struct {
	URL string `yaml:"url"`
}

// DisplayConfig controls terminal output
type DisplayConfig struct {
	Color *bool `yaml:"color,omitempty"` // Colour board glyphs (default true)
	Peek  *bool `yaml:"peek,omitempty"`  // Print the Banker/Player preview line (default true)
}

// ScoreboardConfig holds daemon settings
type ScoreboardConfig struct {
	HealthAddr string `yaml:"health_addr,omitempty"`
}

// Default returns the configuration used when no roads.yml exists.
func Default() *RoadsConfig {
	c := &RoadsConfig{
		Version: "1.0",
		Table:   TableConfig{Name: DefaultTableName},
	}
	// defaults cannot fail validation
	_ = c.Validate()
	return c
}

// Validate applies defaults for omitted fields and checks every value.
func (c *RoadsConfig) Validate() error {
	// Required: version
	if c.Version != "1.0" {
		return fmt.Errorf("unsupported version: %s (expected: 1.0)", c.Version)
	}

	// Required: table name, used verbatim in Redis keys
	if c.Table.Name == "" {
		return fmt.Errorf("table.name is required")
	}
	if strings.ContainsAny(c.Table.Name, ": \t\n") {
		return fmt.Errorf("table.name %q must not contain ':' or whitespace", c.Table.Name)
	}

	if c.Table.Height == 0 {
		c.Table.Height = road.DefaultHeight
	}
	if c.Table.Height < MinHeight || c.Table.Height > MaxHeight {
		return fmt.Errorf("table.height must be between %d and %d, got %d", MinHeight, MaxHeight, c.Table.Height)
	}

	if c.Table.Width == 0 {
		c.Table.Width = road.DefaultWidth
	}
	if c.Table.Width < MinWidth || c.Table.Width > MaxWidth {
		return fmt.Errorf("table.width must be between %d and %d, got %d", MinWidth, MaxWidth, c.Table.Width)
	}

	if c.Redis == nil {
		c.Redis = &RedisConfig{}
	}
	if c.Redis.URL == "" {
		c.Redis.URL = DefaultRedisURL
	}
	if _, err := redis.ParseURL(c.Redis.URL); err != nil {
		return fmt.Errorf("invalid redis.url: %w", err)
	}

	if c.Display == nil {
		c.Display = &DisplayConfig{}
	}
	if c.Display.Color == nil {
		enabled := true
		c.Display.Color = &enabled
	}
	if c.Display.Peek == nil {
		enabled := true
		c.Display.Peek = &enabled
	}

	if c.Scoreboard == nil {
		c.Scoreboard = &ScoreboardConfig{}
	}
	if c.Scoreboard.HealthAddr == "" {
		c.Scoreboard.HealthAddr = DefaultHealthAddr
	}

	return nil
}

// Size returns the board dimensions. Only meaningful after Validate.
func (c *RoadsConfig) Size() road.Size {
	return road.Size{Height: c.Table.Height, Width: c.Table.Width}
}

// RedisOptions parses the configured Redis URL.
func (c *RoadsConfig) RedisOptions() (*redis.Options, error) {
	return redis.ParseURL(c.Redis.URL)
}

// ColorEnabled reports whether board glyphs should be coloured.
func (c *RoadsConfig) ColorEnabled() bool {
	return c.Display != nil && c.Display.Color != nil && *c.Display.Color
}

// PeekEnabled reports whether the preview line should be printed.
func (c *RoadsConfig) PeekEnabled() bool {
	return c.Display != nil && c.Display.Peek != nil && *c.Display.Peek
}

// Load reads and validates roads.yml from the specified path
func Load(path string) (*RoadsConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var config RoadsConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// LoadOrDefault loads path, falling back to Default when the file does not exist.
// The bool result reports whether the file was found.
func LoadOrDefault(path string) (*RoadsConfig, bool, error) {
	config, err := Load(path)
	if err == nil {
		return config, true, nil
	}
	if errors.Is(err, os.ErrNotExist) {
		return Default(), false, nil
	}
	return nil, false, err
}
