package imagepkg

import (
	"fmt"
	"image"
	"image/color"

	"github.com/fogleman/gg"
)

// ModuleShape selects how individual dark modules are drawn.
type ModuleShape int

const (
	ShapeSquare ModuleShape = iota
	ShapeRounded
)

// ColorMode selects how dark modules are colored.
type ColorMode int

const (
	ColorSolid ColorMode = iota
	ColorRadial
)

// Style holds the cosmetic rendering options for a symbol. Shape and color
// affect pixels only; the module matrix itself is never altered by styling.
// There is deliberately no error-correction knob here.
type Style struct {
	Shape      ModuleShape
	Color      ColorMode
	Foreground color.Color // solid fill, or gradient center
	Edge       color.Color // gradient edge, ignored in solid mode
	Border     int         // quiet zone in modules, raised to MinQuietZone if below
}

// DefaultStyle matches the historical output: rounded modules with a
// radial gradient from black to a blue-violet edge.
func DefaultStyle() Style {
	return Style{
		Shape:      ShapeRounded,
		Color:      ColorRadial,
		Foreground: color.Black,
		Edge:       color.NRGBA{R: 110, G: 108, B: 228, A: 255},
		Border:     MinQuietZone,
	}
}

// ParseShape maps a config string to a ModuleShape.
func ParseShape(s string) (ModuleShape, error) {
	switch s {
	case "", "rounded":
		return ShapeRounded, nil
	case "square":
		return ShapeSquare, nil
	}
	return 0, fmt.Errorf("unknown module shape %q", s)
}

// ParseColorMode maps a config string to a ColorMode.
func ParseColorMode(s string) (ColorMode, error) {
	switch s {
	case "", "radial":
		return ColorRadial, nil
	case "solid":
		return ColorSolid, nil
	}
	return 0, fmt.Errorf("unknown color mode %q", s)
}

func (s Style) border() int {
	if s.Border < MinQuietZone {
		return MinQuietZone
	}
	return s.Border
}

func (s Style) foreground() color.Color {
	if s.Foreground == nil {
		return color.Black
	}
	return s.Foreground
}

func (s Style) edge() color.Color {
	if s.Edge == nil {
		return color.NRGBA{R: 110, G: 108, B: 228, A: 255}
	}
	return s.Edge
}

// RasterWidth reports the pixel width (and height) Render produces for m.
func (s Style) RasterWidth(m Matrix) int {
	return (len(m) + 2*s.border()) * ModulePx
}

// Render rasterizes the matrix on a white canvas at ModulePx per module,
// surrounded by the quiet zone.
func (s Style) Render(m Matrix) image.Image {
	border := s.border()
	px := s.RasterWidth(m)
	dc := gg.NewContext(px, px)
	dc.SetColor(color.White)
	dc.Clear()

	var grad gg.Gradient
	if s.Color == ColorRadial {
		c := float64(px) / 2
		grad = gg.NewRadialGradient(c, c, 0, c, c, c)
		grad.AddColorStop(0, s.foreground())
		grad.AddColorStop(1, s.edge())
	}

	size := float64(ModulePx)
	for y, row := range m {
		for x, dark := range row {
			if !dark {
				continue
			}
			ox := float64((x + border) * ModulePx)
			oy := float64((y + border) * ModulePx)
			if grad != nil {
				dc.SetColor(grad.ColorAt(int(ox)+ModulePx/2, int(oy)+ModulePx/2))
			} else {
				dc.SetColor(s.foreground())
			}
			if s.Shape == ShapeRounded {
				dc.DrawRoundedRectangle(ox, oy, size, size, size*0.35)
			} else {
				dc.DrawRectangle(ox, oy, size, size)
			}
			dc.Fill()
		}
	}
	return dc.Image()
}
