package doc

import (
	"bytes"
	"fmt"
	"image"
	"strings"
	"testing"

	"github.com/youruser/qrgrid/internal/layout"
)

// 3 columns x 4 rows per page.
var (
	testCell = layout.CellSpec{Width: 300, Height: 300, LabelHeight: 40}
	testPage = layout.PageSpec{Width: 1000, Height: 1500, Margin: 50}
)

func emit(t *testing.T, n int) string {
	t.Helper()
	cells := make([]layout.Cell, n)
	for i := range cells {
		cells[i] = layout.Cell{
			Image: image.NewNRGBA(image.Rect(0, 0, 2, 2)),
			Label: fmt.Sprintf("label %02d", i),
		}
	}
	d, err := layout.Paginate(cells, testCell, testPage)
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if err := Emit(&buf, d); err != nil {
		t.Fatalf("Emit() error: %v", err)
	}
	return buf.String()
}

func TestEmitPageBlocks(t *testing.T) {
	html := emit(t, 13)
	if got := strings.Count(html, `<div class="page">`); got != 2 {
		t.Errorf("document has %d page blocks, want 2", got)
	}
	if got := strings.Count(html, "data:image/png;base64,"); got != 13 {
		t.Errorf("document embeds %d images, want 13", got)
	}
	// 24 slots over two pages, 13 populated.
	if got := strings.Count(html, "<td></td>"); got != 11 {
		t.Errorf("document has %d placeholder cells, want 11", got)
	}
	if strings.Contains(html, "<img src=\"http") {
		t.Error("document references an external image; it must be self-contained")
	}
}

func TestEmitPreservesOrder(t *testing.T) {
	html := emit(t, 7)
	last := -1
	for i := 0; i < 7; i++ {
		pos := strings.Index(html, fmt.Sprintf("label %02d", i))
		if pos < 0 {
			t.Fatalf("label %02d missing from output", i)
		}
		if pos < last {
			t.Errorf("label %02d appears before its predecessor", i)
		}
		last = pos
	}
}

func TestEmitEscapesLabels(t *testing.T) {
	cells := []layout.Cell{{
		Image: image.NewNRGBA(image.Rect(0, 0, 2, 2)),
		Label: `<script>&"`,
	}}
	d, err := layout.Paginate(cells, testCell, testPage)
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if err := Emit(&buf, d); err != nil {
		t.Fatalf("Emit() error: %v", err)
	}
	html := buf.String()
	if strings.Contains(html, "<script>") {
		t.Error("label markup was not escaped")
	}
	if !strings.Contains(html, "&lt;script&gt;") {
		t.Error("escaped label text missing from output")
	}
}

func TestEmitEmptyDocument(t *testing.T) {
	d, err := layout.Paginate(nil, testCell, testPage)
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if err := Emit(&buf, d); err != nil {
		t.Fatalf("Emit() error: %v", err)
	}
	if strings.Contains(buf.String(), `<div class="page">`) {
		t.Error("zero cells must produce zero page blocks")
	}
}
