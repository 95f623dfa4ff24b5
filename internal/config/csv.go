package config

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"
)

// ImportItemsFile replaces the configured item list with the rows of a
// two-column CSV file.
func (c *Config) ImportItemsFile(path string) error {
	fp, err := os.Open(path)
	if err != nil {
		return err
	}
	defer fp.Close()
	if err := c.ImportItems(fp); err != nil {
		return fmt.Errorf("import %s: %w", path, err)
	}
	return nil
}

// ImportItems reads a labeled (name, url) table and overwrites any prior
// item list. Column names are matched case-insensitively and a leading
// BOM on the first header is stripped.
func (c *Config) ImportItems(r io.Reader) error {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	rows, err := cr.ReadAll()
	if err != nil {
		return err
	}
	if len(rows) < 1 {
		return fmt.Errorf("csv has no header row")
	}

	nameIdx, urlIdx := -1, -1
	for i, h := range rows[0] {
		h = strings.TrimPrefix(h, "\ufeff")
		switch {
		case strings.EqualFold(h, "name"):
			nameIdx = i
		case strings.EqualFold(h, "url"):
			urlIdx = i
		}
	}
	if urlIdx < 0 {
		return fmt.Errorf("csv is missing a url column")
	}
	if nameIdx < 0 {
		return fmt.Errorf("csv is missing a name column")
	}

	get := func(row []string, idx int) string {
		if idx < len(row) {
			return strings.TrimSpace(row[idx])
		}
		return ""
	}

	items := []Item{}
	for _, row := range rows[1:] {
		u := get(row, urlIdx)
		if u == "" {
			continue
		}
		items = append(items, Item{Name: get(row, nameIdx), URL: u})
	}
	c.Items = items
	return nil
}
