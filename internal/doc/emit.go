// Package doc serializes a paginated layout into a single self-contained
// HTML document. All sizing and ordering decisions were made upstream;
// the emitter never reorders or resizes content.
package doc

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"html/template"
	"image/png"
	"io"

	"github.com/youruser/qrgrid/internal/layout"
)

var tmpl = template.Must(template.New("grid").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<style>
  .page {
    width: {{.PageW}}px;
    height: {{.PageH}}px;
    padding: {{.Margin}}px;
    box-sizing: border-box;
    page-break-after: always;
  }
  table { border-collapse: collapse; }
  td { width: {{.CellW}}px; text-align: center; vertical-align: top; }
  img { width: {{.CellW}}px; height: {{.CellH}}px; display: block; }
  .label {
    height: {{.LabelH}}px;
    overflow: hidden;
    font-family: sans-serif;
    font-size: 12px;
  }
</style>
</head>
<body>
{{range .Pages}}<div class="page"><table>
{{range .Rows}}<tr>{{range .Cells}}{{if .Empty}}<td></td>{{else}}<td><img src="{{.Src}}" alt="QR code">{{if .Label}}<div class="label">{{.Label}}</div>{{end}}</td>{{end}}{{end}}</tr>
{{end}}</table></div>
{{end}}</body>
</html>
`))

type docView struct {
	PageW, PageH, Margin int
	CellW, CellH, LabelH int
	Pages                []pageView
}

type pageView struct {
	Rows []rowView
}

type rowView struct {
	Cells []cellView
}

type cellView struct {
	Empty bool
	Src   template.URL
	Label string
}

// Emit writes d to w as HTML, one page-sized block per page, each block a
// grid of image+label cells in document order. Populated cells embed
// their raster as a base64 PNG data URI so the file has no external
// references.
func Emit(w io.Writer, d layout.Document) error {
	v := docView{
		PageW:  d.Page.Width,
		PageH:  d.Page.Height,
		Margin: d.Page.Margin,
		CellW:  d.Cell.Width,
		CellH:  d.Cell.Height,
		LabelH: d.Cell.LabelHeight,
	}
	for _, p := range d.Pages {
		pv := pageView{}
		for _, r := range p.Rows {
			rv := rowView{}
			for _, c := range r.Cells {
				cv := cellView{Empty: c.Empty(), Label: c.Label}
				if !c.Empty() {
					src, err := dataURI(c)
					if err != nil {
						return err
					}
					cv.Src = src
				}
				rv.Cells = append(rv.Cells, cv)
			}
			pv.Rows = append(pv.Rows, rv)
		}
		v.Pages = append(v.Pages, pv)
	}
	return tmpl.Execute(w, v)
}

func dataURI(c layout.Cell) (template.URL, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, c.Image); err != nil {
		return "", fmt.Errorf("encode cell image: %w", err)
	}
	enc := base64.StdEncoding.EncodeToString(buf.Bytes())
	return template.URL("data:image/png;base64," + enc), nil
}
