package svgscale

import (
	"time"

	"github.com/arowley-ai/go-svg-chart/svgshape"
)

// assert interface conformance
var (
	_ svgshape.Composite = (*XAxis)(nil)
	_ svgshape.Composite = (*YAxis)(nil)
)

// Options configures axis construction. The zero value (or nil)
// selects the defaults.
type Options struct {
	MaxTicks   int                    // tick budget, default 10
	TickLength float64                // tick mark length in pixels, default 5
	Styles     *svgshape.Styles       // baseline and tick stroke, default stroke #2e2e2c
	Format     func(float64) string   // numeric label format, default thousands-separated
	TimeFormat func(time.Time) string // calendar label format, default ISO date
}

func (o *Options) resolved() Options {
	var r Options
	if o != nil {
		r = *o
	}
	if r.MaxTicks == 0 {
		r.MaxTicks = 10
	}
	if r.TickLength == 0 {
		r.TickLength = 5
	}
	if r.Styles == nil {
		r.Styles = svgshape.NewStyles("stroke", "#2e2e2c")
	}
	if r.Format == nil {
		r.Format = DefaultFormat
	}
	if r.TimeFormat == nil {
		r.TimeFormat = DefaultTimeFormat
	}
	return r
}

func (o Options) label(limits Domain, i int) string {
	if limits.IsTime() {
		return o.TimeFormat(limits.TimeAt(i))
	}
	return o.Format(limits.NumberAt(i))
}

// Axis is the state shared by the two axis orientations: the
// computed limits, the pixel geometry, and the primitives the axis
// owns. The baseline and tick fields may be replaced or cleared
// after construction; grid lines are appended by the chart layer.
type Axis struct {
	Origin svgshape.Point
	Length float64
	Limits Domain

	AxisLine  *svgshape.Line
	TickLines []*svgshape.Line
	TickTexts []*svgshape.Text
	GridLines []*svgshape.Line
}

// Proportion returns the position of a value within the limit
// range: 0 at the first limit, 1 at the last. Out-of-range values
// extrapolate beyond [0,1].
func (a *Axis) Proportion(v float64) float64 {
	lo := a.Limits.NumberAt(0)
	hi := a.Limits.NumberAt(a.Limits.Len() - 1)
	return (v - lo) / (hi - lo)
}

// ProportionTime is Proportion for calendar limits.
func (a *Axis) ProportionTime(t time.Time) float64 {
	lo := a.Limits.TimeAt(0)
	hi := a.Limits.TimeAt(a.Limits.Len() - 1)
	return float64(t.Sub(lo)) / float64(hi.Sub(lo))
}

// ElementList serializes the axis: baseline first, then tick marks,
// then tick labels, then grid lines.
func (a *Axis) ElementList() []string {
	return svgshape.Collapse(a.Shapes())
}

// Shapes returns the owned primitives in serialization order.
func (a *Axis) Shapes() []svgshape.Element {
	var els []svgshape.Element
	if a.AxisLine != nil {
		els = append(els, a.AxisLine)
	}
	for _, l := range a.TickLines {
		els = append(els, l)
	}
	for _, t := range a.TickTexts {
		els = append(els, t)
	}
	for _, g := range a.GridLines {
		els = append(els, g)
	}
	return els
}

// XAxis is a horizontal axis. Its baseline runs right from the
// origin; tick labels hang below it.
type XAxis struct {
	Axis
}

// NewXAxis builds a horizontal axis of the given pixel length whose
// baseline starts at (x, y). The tick budget and label formats come
// from opts. Tick marks and labels are evenly spaced, one pair per
// limit entry.
func NewXAxis(x, y float64, data Domain, length float64, opts *Options) (*XAxis, error) {
	o := opts.resolved()
	limits, err := data.Limits(o.MaxTicks)
	if err != nil {
		return nil, err
	}
	a := &XAxis{Axis{Origin: svgshape.Point{X: x, Y: y}, Length: length, Limits: limits}}
	styles := o.Styles.Clone()
	a.AxisLine = svgshape.NewLine(x, y, length, 0, styles)
	n := limits.Len()
	for i := 0; i < n; i++ {
		offset := x + float64(i)*length/float64(n-1)
		a.TickLines = append(a.TickLines, svgshape.NewLine(offset, y, 0, o.TickLength, styles))
		a.TickTexts = append(a.TickTexts, svgshape.NewText(offset, y+2*o.TickLength, o.label(limits, i),
			svgshape.NewStyles("text-anchor", "middle", "dominant-baseline", "hanging")))
	}
	return a, nil
}

// Positions maps data values to pixel x coordinates through the
// proportion of the limit range.
func (a *XAxis) Positions(values []float64) []float64 {
	out := make([]float64, len(values))
	for i, v := range values {
		out[i] = a.Origin.X + a.Proportion(v)*a.Length
	}
	return out
}

// TimePositions is Positions for calendar values.
func (a *XAxis) TimePositions(values []time.Time) []float64 {
	out := make([]float64, len(values))
	for i, t := range values {
		out[i] = a.Origin.X + a.ProportionTime(t)*a.Length
	}
	return out
}

// IndexPositions spaces n values evenly along the axis, ignoring
// their magnitudes: the i-th of n sits at i/(n−1) of the length.
// This is the mapping used when x values should be uniformly
// spaced regardless of their gaps, such as calendar dates.
func (a *XAxis) IndexPositions(n int) []float64 {
	out := make([]float64, n)
	for i := 0; i < n; i++ {
		out[i] = a.Origin.X + float64(i)*a.Length/float64(n-1)
	}
	return out
}

// YAxis is a vertical axis. Its baseline runs down from the origin;
// tick labels sit to its left. Pixel y grows downward while data y
// grows upward, so position mapping is inverted.
type YAxis struct {
	Axis
}

// NewYAxis builds a vertical axis of the given pixel length whose
// baseline starts at (x, y) and runs down.
func NewYAxis(x, y float64, data Domain, length float64, opts *Options) (*YAxis, error) {
	o := opts.resolved()
	limits, err := data.Limits(o.MaxTicks)
	if err != nil {
		return nil, err
	}
	a := &YAxis{Axis{Origin: svgshape.Point{X: x, Y: y}, Length: length, Limits: limits}}
	styles := o.Styles.Clone()
	a.AxisLine = svgshape.NewLine(x, y, 0, length, styles)
	n := limits.Len()
	for i := 0; i < n; i++ {
		offset := y + float64(n-1-i)*length/float64(n-1)
		a.TickLines = append(a.TickLines, svgshape.NewLine(x-o.TickLength, offset, o.TickLength, 0, styles))
		a.TickTexts = append(a.TickTexts, svgshape.NewText(x-2*o.TickLength, offset, o.label(limits, i),
			svgshape.NewStyles("text-anchor", "end", "dominant-baseline", "middle")))
	}
	return a, nil
}

// Positions maps data values to pixel y coordinates, inverted so
// larger values sit higher on the canvas.
func (a *YAxis) Positions(values []float64) []float64 {
	out := make([]float64, len(values))
	for i, v := range values {
		out[i] = a.Origin.Y + a.Length*(1-a.Proportion(v))
	}
	return out
}
