package svgchart

import (
	"github.com/arowley-ai/go-svg-chart/svgshape"
)

var _ svgshape.Composite = (*Legend)(nil)

// Legend is one line swatch plus label per series, stacked by a
// per-item offset. Each swatch shares the live style map of its
// series, so swatch and line always match.
type Legend struct {
	Lines []*svgshape.Line
	Texts []*svgshape.Text
}

// LegendOptions positions the legend. The zero value (or nil)
// selects the defaults.
type LegendOptions struct {
	X, Y         float64 // position of the first swatch, default (500, 60)
	StepX, StepY float64 // per-item offset, default (100, 0)
	LineLength   float64 // swatch length, default 20
	Gap          float64 // gap between swatch and label, default 5
}

func (o *LegendOptions) resolved() LegendOptions {
	var r LegendOptions
	if o != nil {
		r = *o
	}
	if r.X == 0 {
		r.X = 500
	}
	if r.Y == 0 {
		r.Y = 60
	}
	if r.StepX == 0 && r.StepY == 0 {
		r.StepX = 100
	}
	if r.LineLength == 0 {
		r.LineLength = 20
	}
	if r.Gap == 0 {
		r.Gap = 5
	}
	return r
}

// AddLegend lays out a legend over the chart's series, in insertion
// order, and attaches it to the chart.
func (c *Chart) AddLegend(opts *LegendOptions) {
	o := opts.resolved()
	lg := &Legend{}
	x, y := o.X, o.Y
	for _, name := range c.seriesOrder {
		path := c.series[name]
		lg.Lines = append(lg.Lines, svgshape.NewLine(x, y, o.LineLength, 0, path.Styles))
		lg.Texts = append(lg.Texts, svgshape.NewText(x+o.LineLength+o.Gap, y, name,
			svgshape.NewStyles("alignment-baseline", "middle")))
		x += o.StepX
		y += o.StepY
	}
	c.Legend = lg
}

// ElementList serializes the legend: all swatches first, then all
// labels.
func (l *Legend) ElementList() []string {
	return svgshape.Collapse(l.Shapes())
}

// Shapes returns the legend primitives in serialization order.
func (l *Legend) Shapes() []svgshape.Element {
	var els []svgshape.Element
	for _, ln := range l.Lines {
		els = append(els, ln)
	}
	for _, t := range l.Texts {
		els = append(els, t)
	}
	return els
}
