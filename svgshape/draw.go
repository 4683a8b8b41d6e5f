package svgshape

import (
	"image/color"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

// Paint backends implement Driver. Drivers receive the leaf shapes
// of a chart in serialization order, with coordinates already in
// pixel space, and do not need any SVG knowledge.
type Driver interface {
	// DrawLine paints a straight segment.
	DrawLine(start, end Point, styles *Styles)

	// DrawCircle paints a circle.
	DrawCircle(center Point, radius float64, styles *Styles)

	// DrawText paints a text run. Backends without text support
	// may ignore the call.
	DrawText(position Point, content string, styles *Styles)

	// DrawPath paints an open polyline through the points.
	DrawPath(points []Point, styles *Styles)
}

// Draw sends every leaf shape of elements to the driver, expanding
// composites first. Elements outside the closed shape set are skipped.
func Draw(d Driver, elements []Element) {
	for _, e := range Flatten(elements) {
		switch e := e.(type) {
		case *Line:
			d.DrawLine(e.Start, e.End, e.Styles)
		case *Circle:
			d.DrawCircle(e.Center, e.Radius, e.Styles)
		case *Text:
			d.DrawText(e.Position, e.Content, e.Styles)
		case *Path:
			d.DrawPath(e.Points, e.Styles)
		}
	}
}

// ParseColor resolves a #rgb or #rrggbb hex value, or an SVG color
// name. The second return is false for "none", the empty string and
// unknown values.
func ParseColor(v string) (color.RGBA, bool) {
	v = strings.ToLower(strings.TrimSpace(v))
	if v == "" || v == "none" {
		return color.RGBA{}, false
	}
	if strings.HasPrefix(v, "#") {
		hex := v[1:]
		if len(hex) == 3 {
			hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
		}
		if len(hex) != 6 {
			return color.RGBA{}, false
		}
		n, err := strconv.ParseUint(hex, 16, 32)
		if err != nil {
			return color.RGBA{}, false
		}
		return color.RGBA{R: uint8(n >> 16), G: uint8(n >> 8), B: uint8(n), A: 0xff}, true
	}
	c, ok := colornames.Map[v]
	return c, ok
}

// StrokeColor resolves the stroke attribute of a style map.
func StrokeColor(s *Styles) (color.RGBA, bool) {
	v, ok := s.Get("stroke")
	if !ok {
		return color.RGBA{}, false
	}
	return ParseColor(v)
}

// FillColor resolves the fill attribute of a style map. Shapes
// without an explicit fill default to black, following SVG.
func FillColor(s *Styles) (color.RGBA, bool) {
	v, ok := s.Get("fill")
	if !ok {
		return color.RGBA{0, 0, 0, 0xff}, true
	}
	return ParseColor(v)
}

// StrokeWidth returns the stroke-width attribute, or def when the
// attribute is absent or malformed.
func StrokeWidth(s *Styles, def float64) float64 {
	v, ok := s.Get("stroke-width")
	if !ok {
		return def
	}
	w, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
	if err != nil || w <= 0 {
		return def
	}
	return w
}

// DashPattern parses the stroke-dasharray attribute. It returns nil
// for solid strokes.
func DashPattern(s *Styles) []float64 {
	v, ok := s.Get("stroke-dasharray")
	if !ok || strings.TrimSpace(v) == "none" {
		return nil
	}
	fields := strings.FieldsFunc(v, func(r rune) bool { return r == ',' || r == ' ' })
	var dashes []float64
	for _, f := range fields {
		d, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil
		}
		dashes = append(dashes, d)
	}
	return dashes
}
