package svgchart

import (
	"fmt"
	"time"

	"github.com/arowley-ai/go-svg-chart/svgscale"
	"github.com/arowley-ai/go-svg-chart/svgshape"
)

// Options configures line chart construction. The zero value (or
// nil) selects the defaults.
type Options struct {
	Width, Height    float64 // canvas size in pixels, default 800x600
	XMargin, YMargin float64 // inset of the plot area, default 100 each

	XMaxTicks, YMaxTicks int // tick budgets, default 12 each

	XFormat     func(float64) string   // numeric x label format
	XTimeFormat func(time.Time) string // calendar x label format
	YFormat     func(float64) string   // y label format
}

func (o *Options) resolved() Options {
	var r Options
	if o != nil {
		r = *o
	}
	if r.Width == 0 {
		r.Width = 800
	}
	if r.Height == 0 {
		r.Height = 600
	}
	if r.XMargin == 0 {
		r.XMargin = 100
	}
	if r.YMargin == 0 {
		r.YMargin = 100
	}
	if r.XMaxTicks == 0 {
		r.XMaxTicks = 12
	}
	if r.YMaxTicks == 0 {
		r.YMaxTicks = 12
	}
	return r
}

// SeriesData is one named collection of y values, aligned with the
// chart's x values.
type SeriesData struct {
	Name   string
	Values []float64
}

// NewLineChart builds a line chart from numeric x values and one or
// more series. The y axis is computed from the pooled values of
// every series, so all series share one vertical scale. Points are
// spaced uniformly along the x axis.
func NewLineChart(x []float64, series []SeriesData, opts *Options) (*Chart, error) {
	return newLineChart(svgscale.Numbers(x), len(x), series, opts)
}

// NewTimeLineChart is NewLineChart for calendar x values. Ticks are
// month aligned and points are spaced uniformly regardless of the
// calendar gaps between them.
func NewTimeLineChart(x []time.Time, series []SeriesData, opts *Options) (*Chart, error) {
	return newLineChart(svgscale.Dates(x), len(x), series, opts)
}

func newLineChart(x svgscale.Domain, n int, series []SeriesData, opts *Options) (*Chart, error) {
	o := opts.resolved()

	var pooled []float64
	for _, s := range series {
		pooled = append(pooled, s.Values...)
	}
	yAxis, err := svgscale.NewYAxis(o.XMargin, o.YMargin, svgscale.Numbers(pooled), o.Height-2*o.YMargin,
		&svgscale.Options{MaxTicks: o.YMaxTicks, Format: o.YFormat})
	if err != nil {
		return nil, err
	}
	xAxis, err := svgscale.NewXAxis(o.XMargin, o.Height-o.YMargin, x, o.Width-2*o.XMargin,
		&svgscale.Options{MaxTicks: o.XMaxTicks, Format: o.XFormat, TimeFormat: o.XTimeFormat})
	if err != nil {
		return nil, err
	}

	c := &Chart{Width: o.Width, Height: o.Height, XAxis: xAxis, YAxis: yAxis}
	xs := xAxis.IndexPositions(n)
	for i, s := range series {
		ys := yAxis.Positions(s.Values)
		count := len(xs)
		if len(ys) < count {
			count = len(ys)
		}
		points := make([]svgshape.Point, count)
		for j := 0; j < count; j++ {
			points[j] = svgshape.Point{X: xs[j], Y: ys[j]}
		}
		styles := svgshape.NewStyles("stroke-width", "2", "stroke", defaultPalette[i%len(defaultPalette)])
		name := s.Name
		if name == "" {
			name = fmt.Sprintf("Series %d", i+1)
		}
		c.SetSeries(name, svgshape.NewPath(points, styles))
	}
	return c, nil
}
