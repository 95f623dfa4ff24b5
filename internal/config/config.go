// Package config loads the batch configuration for a grid run: cell and
// page geometry, the logo source, styling, and the ordered list of items
// to encode.
package config

import (
	"encoding/json"
	"fmt"
	"os"
)

// Item is one requested QR code: an optional label and the URL to
// encode. Items are immutable once read.
type Item struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// Config is the batch configuration. Dimensions are pixels. Page
// defaults correspond to A4 at 96 dpi.
type Config struct {
	CellWidth   int    `json:"cell_width"`
	CellHeight  int    `json:"cell_height"`
	LabelHeight int    `json:"label_height"`
	LogoWidth   int    `json:"logo_width"`
	LogoHeight  int    `json:"logo_height"`
	PageWidth   int    `json:"page_width"`
	PageHeight  int    `json:"page_height"`
	Margin      int    `json:"margin"`
	Logo        string `json:"logo"`
	ModuleShape string `json:"module_shape"` // "square" or "rounded"
	ColorMode   string `json:"color_mode"`   // "solid" or "radial"
	Items       []Item `json:"items"`

	// Legacy keys from the original flat config format.
	XSize     int      `json:"xsize"`
	YSize     int      `json:"ysize"`
	ImageURLs []string `json:"image_urls"`
}

// Default page canvas: A4 at 96 dpi.
const (
	DefaultPageWidth  = 794
	DefaultPageHeight = 1123
	DefaultMargin     = 24
)

// Load reads and normalizes a JSON configuration file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	return Parse(data)
}

// Parse decodes raw JSON configuration bytes, applies defaults and legacy
// key mapping, and validates the result.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	cfg.normalize()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// normalize maps legacy fields onto the canonical ones and fills
// defaults. A bare image_urls list becomes items with empty names; the
// logo defaults to a fifth of the cell's linear size.
func (c *Config) normalize() {
	if c.CellWidth == 0 {
		c.CellWidth = c.XSize
	}
	if c.CellHeight == 0 {
		c.CellHeight = c.YSize
	}
	if len(c.Items) == 0 {
		for _, u := range c.ImageURLs {
			c.Items = append(c.Items, Item{URL: u})
		}
	}
	if c.PageWidth == 0 {
		c.PageWidth = DefaultPageWidth
	}
	if c.PageHeight == 0 {
		c.PageHeight = DefaultPageHeight
	}
	if c.Margin == 0 {
		c.Margin = DefaultMargin
	}
	if c.LogoWidth == 0 {
		c.LogoWidth = c.CellWidth / 5
	}
	if c.LogoHeight == 0 {
		c.LogoHeight = c.CellHeight / 5
	}
}

// Validate rejects configurations that cannot produce a document. Grid
// arithmetic is checked again by the layout engine; this catches the
// obviously broken inputs before any network or raster work.
func (c *Config) Validate() error {
	if c.CellWidth <= 0 || c.CellHeight <= 0 {
		return fmt.Errorf("config: cell dimensions must be positive, got %dx%d", c.CellWidth, c.CellHeight)
	}
	if c.LabelHeight < 0 {
		return fmt.Errorf("config: label height must not be negative, got %d", c.LabelHeight)
	}
	if c.Logo == "" {
		return fmt.Errorf("config: logo source is required")
	}
	if c.LogoWidth <= 0 || c.LogoHeight <= 0 {
		return fmt.Errorf("config: logo dimensions must be positive, got %dx%d", c.LogoWidth, c.LogoHeight)
	}
	for i, it := range c.Items {
		if it.URL == "" {
			return fmt.Errorf("config: item %d (%q) has no URL", i, it.Name)
		}
	}
	return nil
}
