package svgchart

import (
	"math"

	"github.com/arowley-ai/go-svg-chart/svgscale"
	"github.com/arowley-ai/go-svg-chart/svgshape"
)

var _ svgshape.Composite = (*DonutChart)(nil)

// DonutChart is a minimal ring chart: each value owns a share of
// the ring, drawn as a circle segment through a stroke-dasharray
// covering that share of the circumference. Segments start at
// twelve o'clock and run clockwise.
type DonutChart struct {
	Width, Height float64
	Segments      []*svgshape.Circle
}

// DonutOptions configures the ring geometry. The zero value (or
// nil) selects the defaults.
type DonutOptions struct {
	Width, Height float64 // canvas size, default 400x400
	Radius        float64 // ring radius, default 120
	StrokeWidth   float64 // ring thickness, default 60
}

func (o *DonutOptions) resolved() DonutOptions {
	var r DonutOptions
	if o != nil {
		r = *o
	}
	if r.Width == 0 {
		r.Width = 400
	}
	if r.Height == 0 {
		r.Height = 400
	}
	if r.Radius == 0 {
		r.Radius = 120
	}
	if r.StrokeWidth == 0 {
		r.StrokeWidth = 60
	}
	return r
}

// NewDonutChart builds a donut from a list of positive values.
func NewDonutChart(values []float64, opts *DonutOptions) (*DonutChart, error) {
	o := opts.resolved()
	var total float64
	for _, v := range values {
		total += v
	}
	if len(values) == 0 || total <= 0 {
		return nil, svgscale.InvalidDomainError("donut values must sum to a positive total")
	}

	c := &DonutChart{Width: o.Width, Height: o.Height}
	circumference := 2 * math.Pi * o.Radius
	offset := circumference / 4 // rotate the dash origin from three o'clock up to twelve
	for i, v := range values {
		segment := circumference * v / total
		styles := svgshape.NewStyles(
			"fill", "none",
			"stroke", defaultPalette[i%len(defaultPalette)],
			"stroke-width", svgshape.FormatNumber(o.StrokeWidth),
			"stroke-dasharray", svgshape.FormatNumber(segment)+" "+svgshape.FormatNumber(circumference-segment),
			"stroke-dashoffset", svgshape.FormatNumber(offset),
		)
		c.Segments = append(c.Segments, svgshape.NewCircle(o.Width/2, o.Height/2, o.Radius, styles))
		offset -= segment
	}
	return c, nil
}

// ElementList returns one circle fragment per segment, in value order.
func (c *DonutChart) ElementList() []string {
	return svgshape.Collapse(c.Shapes())
}

// Shapes returns the segment circles in value order.
func (c *DonutChart) Shapes() []svgshape.Element {
	els := make([]svgshape.Element, len(c.Segments))
	for i, s := range c.Segments {
		els[i] = s
	}
	return els
}

// Render serializes the donut to a complete SVG document.
func (c *DonutChart) Render() string {
	return renderDocument(c.Width, c.Height, c.ElementList())
}
