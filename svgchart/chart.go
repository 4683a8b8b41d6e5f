// Assembles axes, data series and decorations into a complete SVG
// document. Charts are built once, optionally decorated (grids,
// legend, custom elements), then rendered; rendering is a pure
// serialization step with no side effects.
package svgchart

import (
	"fmt"
	"strings"

	"github.com/arowley-ai/go-svg-chart/svgscale"
	"github.com/arowley-ai/go-svg-chart/svgshape"
)

const (
	svgHeaderTemplate = `<svg viewBox="0 0 %s %s" xmlns="http://www.w3.org/2000/svg">`
	svgFooter         = `</svg>`
)

var (
	defaultMajorGridStyles = svgshape.NewStyles("stroke", "#2e2e2c")
	defaultMinorGridStyles = svgshape.NewStyles("stroke", "#2e2e2c", "stroke-width", "0.4")

	// default stroke colors assigned to series, cycling
	defaultPalette = []string{"green", "red", "blue"}
)

// assert interface conformance
var _ svgshape.Composite = (*Chart)(nil)

// Chart owns one x axis, one y axis, an optional legend, the named
// series and any custom elements. Serialization order is fixed:
// x axis, y axis, legend, series in insertion order, then custom
// elements in insertion order.
type Chart struct {
	Width, Height float64
	XAxis         *svgscale.XAxis
	YAxis         *svgscale.YAxis
	Legend        *Legend

	seriesOrder []string
	series      map[string]*svgshape.Path
	custom      []svgshape.Element
}

// Series returns the named path, or nil. The path's style map is
// live: mutating it restyles the rendered line (and its legend
// swatch, which shares the map).
func (c *Chart) Series(name string) *svgshape.Path {
	return c.series[name]
}

// SeriesNames returns the series names in insertion order.
func (c *Chart) SeriesNames() []string {
	return append([]string(nil), c.seriesOrder...)
}

// SetSeries stores a path under a name. Reusing a name overwrites
// the path but keeps its original position in the render order.
func (c *Chart) SetSeries(name string, path *svgshape.Path) {
	if c.series == nil {
		c.series = make(map[string]*svgshape.Path)
	}
	if _, ok := c.series[name]; !ok {
		c.seriesOrder = append(c.seriesOrder, name)
	}
	c.series[name] = path
}

// AddElement appends a custom element, rendered after everything else.
func (c *Chart) AddElement(e svgshape.Element) {
	c.custom = append(c.custom, e)
}

func (c *Chart) targets() []svgshape.Element {
	var els []svgshape.Element
	if c.XAxis != nil {
		els = append(els, c.XAxis)
	}
	if c.YAxis != nil {
		els = append(els, c.YAxis)
	}
	if c.Legend != nil {
		els = append(els, c.Legend)
	}
	for _, name := range c.seriesOrder {
		els = append(els, c.series[name])
	}
	els = append(els, c.custom...)
	return els
}

// ElementList returns the chart's fragments in serialization order.
func (c *Chart) ElementList() []string {
	return svgshape.Collapse(c.targets())
}

// Shapes returns the chart's leaf shapes in serialization order.
func (c *Chart) Shapes() []svgshape.Element {
	return svgshape.Flatten(c.targets())
}

// Render serializes the chart to a complete SVG document.
func (c *Chart) Render() string {
	return renderDocument(c.Width, c.Height, c.ElementList())
}

func renderDocument(width, height float64, fragments []string) string {
	parts := make([]string, 0, len(fragments)+2)
	parts = append(parts, fmt.Sprintf(svgHeaderTemplate, svgshape.FormatNumber(width), svgshape.FormatNumber(height)))
	parts = append(parts, fragments...)
	parts = append(parts, svgFooter)
	return strings.Join(parts, "\n")
}

// AddGrids adds both grids. Nil styles select the defaults.
func (c *Chart) AddGrids(minorXTicks, minorYTicks int, major, minor *svgshape.Styles) {
	c.AddYGrid(minorYTicks, major, minor)
	c.AddXGrid(minorXTicks, major, minor)
}

// AddYGrid adds a vertical gridline at every x tick beyond the
// first, plus minorTicks evenly spaced minor lines subdividing the
// interval back to the previous tick. The lines are appended to the
// y axis's grid list; tick marks are untouched.
func (c *Chart) AddYGrid(minorTicks int, major, minor *svgshape.Styles) {
	majorStyle := gridStyle(major, defaultMajorGridStyles)
	minorStyle := gridStyle(minor, defaultMinorGridStyles)
	n := c.XAxis.Limits.Len()
	step := c.XAxis.Length / float64(n-1)
	top := c.XAxis.Origin.Y - c.YAxis.Length
	for i := 1; i < n; i++ {
		x := c.YAxis.Origin.X + float64(i)*step
		c.YAxis.GridLines = append(c.YAxis.GridLines,
			svgshape.NewLine(x, top, 0, c.YAxis.Length, majorStyle))
		minorStep := step / float64(minorTicks+1)
		for j := 1; j <= minorTicks; j++ {
			c.YAxis.GridLines = append(c.YAxis.GridLines,
				svgshape.NewLine(x-float64(j)*minorStep, top, 0, c.YAxis.Length, minorStyle))
		}
	}
}

// AddXGrid adds a horizontal gridline at every y tick beyond the
// first, plus minorTicks minor lines subdividing the interval down
// to the previous tick. The lines are appended to the x axis's
// grid list.
func (c *Chart) AddXGrid(minorTicks int, major, minor *svgshape.Styles) {
	majorStyle := gridStyle(major, defaultMajorGridStyles)
	minorStyle := gridStyle(minor, defaultMinorGridStyles)
	n := c.YAxis.Limits.Len()
	step := c.YAxis.Length / float64(n-1)
	left := c.YAxis.Origin.X
	for i := 1; i < n; i++ {
		y := c.XAxis.Origin.Y - float64(i)*step
		c.XAxis.GridLines = append(c.XAxis.GridLines,
			svgshape.NewLine(left, y, c.XAxis.Length, 0, majorStyle))
		minorStep := step / float64(minorTicks+1)
		for j := 1; j <= minorTicks; j++ {
			c.XAxis.GridLines = append(c.XAxis.GridLines,
				svgshape.NewLine(left, y+float64(j)*minorStep, c.XAxis.Length, 0, minorStyle))
		}
	}
}

func gridStyle(s, def *svgshape.Styles) *svgshape.Styles {
	if s != nil {
		return s.Clone()
	}
	return def.Clone()
}
