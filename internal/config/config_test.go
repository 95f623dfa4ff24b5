package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseCanonical(t *testing.T) {
	cfg, err := Parse([]byte(`{
		"cell_width": 300,
		"cell_height": 300,
		"label_height": 40,
		"logo": "https://example.com/logo.png",
		"items": [
			{"name": "front door", "url": "https://example.com/a"},
			{"name": "", "url": "https://example.com/b"}
		]
	}`))
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	if cfg.CellWidth != 300 || cfg.CellHeight != 300 {
		t.Errorf("cell = %dx%d, want 300x300", cfg.CellWidth, cfg.CellHeight)
	}
	if cfg.PageWidth != DefaultPageWidth || cfg.PageHeight != DefaultPageHeight || cfg.Margin != DefaultMargin {
		t.Errorf("page defaults not applied: %dx%d margin %d", cfg.PageWidth, cfg.PageHeight, cfg.Margin)
	}
	// Logo defaults to a fifth of the cell.
	if cfg.LogoWidth != 60 || cfg.LogoHeight != 60 {
		t.Errorf("logo = %dx%d, want 60x60", cfg.LogoWidth, cfg.LogoHeight)
	}
	if len(cfg.Items) != 2 || cfg.Items[0].Name != "front door" {
		t.Errorf("items = %+v", cfg.Items)
	}
}

func TestParseLegacyKeys(t *testing.T) {
	cfg, err := Parse([]byte(`{
		"xsize": 250,
		"ysize": 260,
		"logo": "https://example.com/logo.png",
		"image_urls": ["https://example.com/a", "https://example.com/b", "https://example.com/c"]
	}`))
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	if cfg.CellWidth != 250 || cfg.CellHeight != 260 {
		t.Errorf("legacy sizes not mapped: %dx%d", cfg.CellWidth, cfg.CellHeight)
	}
	if len(cfg.Items) != 3 {
		t.Fatalf("got %d items, want 3", len(cfg.Items))
	}
	for i, it := range cfg.Items {
		if it.Name != "" {
			t.Errorf("item %d: bare URL list must yield empty names, got %q", i, it.Name)
		}
	}
}

func TestParseInvalid(t *testing.T) {
	tests := []struct {
		name string
		json string
		want string
	}{
		{"missing logo", `{"cell_width": 300, "cell_height": 300}`, "logo source"},
		{"zero cell", `{"logo": "x", "cell_width": 0, "cell_height": 300}`, "cell dimensions"},
		{"negative label", `{"logo": "x", "cell_width": 300, "cell_height": 300, "label_height": -1}`, "label height"},
		{"item without url", `{"logo": "x", "cell_width": 300, "cell_height": 300, "items": [{"name": "a"}]}`, "no URL"},
		{"not json", `{`, "parse config"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.json))
			if err == nil {
				t.Fatal("Parse() succeeded, want error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q does not mention %q", err, tt.want)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "urls.json")
	data := `{"cell_width": 300, "cell_height": 300, "logo": "https://example.com/l.png", "items": []}`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if len(cfg.Items) != 0 {
		t.Errorf("got %d items, want 0", len(cfg.Items))
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("Load() of missing file succeeded, want error")
	}
}
