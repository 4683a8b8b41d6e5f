// Implements the drawable primitives charts are assembled from:
// lines, circles, text and polyline paths. Shapes serialize
// themselves to SVG fragments, and can also be painted through
// a backend Driver (see draw.go).
package svgshape

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Point is a position in pixel space.
type Point struct {
	X, Y float64
}

// Element is the capability shared by every drawable node: it
// yields the SVG fragments of the node, in order. The closed set
// of leaf shapes is Line, Circle, Text and Path; everything else
// is a Composite built from them.
type Element interface {
	ElementList() []string
}

// Composite is an element assembled from other elements. Shapes
// exposes the leaves in serialization order, so paint backends can
// walk a whole chart without knowing its structure.
type Composite interface {
	Element
	Shapes() []Element
}

// Fragment templates. These are a compatibility surface: they must
// match the historical output byte for byte.
const (
	lineTemplate   = `<line x1="%s" y1="%s" x2="%s" y2="%s" %s/>`
	circleTemplate = `<circle cx="%s" cy="%s" r="%s" %s/>`
	textTemplate   = `<text x="%s" y="%s" %s>%s</text>`
	pathTemplate   = `<path d="%s" fill="none" %s/>`
)

// FormatNumber renders a coordinate the shortest way that round-trips.
func FormatNumber(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// Line is a straight segment between two points.
type Line struct {
	Start, End Point
	Styles     *Styles
}

// NewLine builds a line from an origin and a width/height extent,
// which is how axis, tick and grid segments are laid out.
func NewLine(x, y, width, height float64, styles *Styles) *Line {
	return &Line{Start: Point{X: x, Y: y}, End: Point{X: x + width, Y: y + height}, Styles: styles}
}

func (l *Line) ElementList() []string {
	return []string{fmt.Sprintf(lineTemplate,
		FormatNumber(l.Start.X), FormatNumber(l.Start.Y),
		FormatNumber(l.End.X), FormatNumber(l.End.Y),
		l.Styles.Render())}
}

// Circle is a circle around a center point.
type Circle struct {
	Center Point
	Radius float64
	Styles *Styles
}

func NewCircle(x, y, radius float64, styles *Styles) *Circle {
	return &Circle{Center: Point{X: x, Y: y}, Radius: radius, Styles: styles}
}

func (c *Circle) ElementList() []string {
	return []string{fmt.Sprintf(circleTemplate,
		FormatNumber(c.Center.X), FormatNumber(c.Center.Y),
		FormatNumber(c.Radius), c.Styles.Render())}
}

// Text is a text run anchored at a position. Content is emitted
// verbatim.
type Text struct {
	Position Point
	Content  string
	Styles   *Styles
}

func NewText(x, y float64, content string, styles *Styles) *Text {
	return &Text{Position: Point{X: x, Y: y}, Content: content, Styles: styles}
}

func (t *Text) ElementList() []string {
	return []string{fmt.Sprintf(textTemplate,
		FormatNumber(t.Position.X), FormatNumber(t.Position.Y),
		t.Styles.Render(), t.Content)}
}

// Path is a polyline through a sequence of points, in data order:
// a move-to followed by line-to commands.
type Path struct {
	Points []Point
	Styles *Styles
}

func NewPath(points []Point, styles *Styles) *Path {
	return &Path{Points: points, Styles: styles}
}

func (p *Path) ElementList() []string {
	chunks := make([]string, len(p.Points))
	for i, pt := range p.Points {
		cmd := "L"
		if i == 0 {
			cmd = "M"
		}
		chunks[i] = cmd + " " + FormatNumber(pt.X) + " " + FormatNumber(pt.Y)
	}
	return []string{fmt.Sprintf(pathTemplate, strings.Join(chunks, " "), p.Styles.Render())}
}

// Length is the fitted length of the polyline: the sum of the
// Euclidean segment distances. Paths with fewer than three points
// report 0.
func (p *Path) Length() float64 {
	if len(p.Points) < 3 {
		return 0
	}
	var total float64
	for i := 1; i < len(p.Points); i++ {
		dx := p.Points[i].X - p.Points[i-1].X
		dy := p.Points[i].Y - p.Points[i-1].Y
		total += math.Sqrt(dx*dx + dy*dy)
	}
	return total
}

// Collapse concatenates the fragments of the given elements, in order.
// Nil elements are skipped.
func Collapse(elements []Element) []string {
	var list []string
	for _, e := range elements {
		if e == nil {
			continue
		}
		list = append(list, e.ElementList()...)
	}
	return list
}

// Flatten expands composites into their leaf shapes, in
// serialization order.
func Flatten(elements []Element) []Element {
	var out []Element
	for _, e := range elements {
		if e == nil {
			continue
		}
		if c, ok := e.(Composite); ok {
			out = append(out, Flatten(c.Shapes())...)
			continue
		}
		out = append(out, e)
	}
	return out
}
