// Computes axis limits — the ordered tick values bracketing a data
// range — and maps data values to pixel positions along an axis.
// Both numeric and calendar domains are supported.
package svgscale

import (
	"math"
	"time"
)

// InvalidDomainError reports a value collection no tick sequence can
// be derived from: empty input, fewer than two distinct values, or a
// non-positive calendar span. It is the only failure the scale layer
// produces, and it is raised before any pixel coordinate is computed.
type InvalidDomainError string

func (e InvalidDomainError) Error() string {
	return "svgscale: invalid domain: " + string(e)
}

// Domain is a set of axis values, either numeric or calendar based.
// The choice is made once, by the constructor, never per element.
// Limits return the same kind as their input.
type Domain struct {
	numbers []float64
	times   []time.Time
}

// Numbers returns a numeric domain.
func Numbers(values []float64) Domain {
	return Domain{numbers: values}
}

// Dates returns a calendar domain.
func Dates(values []time.Time) Domain {
	return Domain{times: values}
}

// IsTime reports whether the domain is calendar based.
func (d Domain) IsTime() bool {
	return d.times != nil
}

// Len returns the number of values.
func (d Domain) Len() int {
	if d.IsTime() {
		return len(d.times)
	}
	return len(d.numbers)
}

// NumberAt returns the i-th value of a numeric domain.
func (d Domain) NumberAt(i int) float64 {
	return d.numbers[i]
}

// TimeAt returns the i-th value of a calendar domain.
func (d Domain) TimeAt(i int) time.Time {
	return d.times[i]
}

// Limits computes the axis ticks covering the domain: a strictly
// increasing sequence of at least two values of the same kind as
// the input, always bracketing the data with a safety margin.
func (d Domain) Limits(maxTicks int) (Domain, error) {
	if d.IsTime() {
		ticks, err := TimeLimits(d.times, maxTicks)
		return Domain{times: ticks}, err
	}
	ticks, err := NumberLimits(d.numbers, maxTicks)
	return Domain{numbers: ticks}, err
}

// NumberLimits implements the classic nice-number tick rule. The raw
// step (1.2·max − 0.95·min)/maxTicks is snapped to the nearest of
// {2,5,10}·10^k, and the tick range extends from floor(0.95·min/step)
// to ceil(1.2·max/step) steps. The asymmetric padding (5% below, 20%
// above) leaves headroom over the maximum, where line charts need it.
// For negative values the padded window falls inside the data (or
// inverts entirely), so the range is widened until the ticks bracket
// every input value.
func NumberLimits(values []float64, maxTicks int) ([]float64, error) {
	if len(values) == 0 {
		return nil, InvalidDomainError("no values")
	}
	lo, hi := values[0], values[0]
	for _, v := range values[1:] {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	if lo == hi {
		return nil, InvalidDomainError("need at least two distinct values")
	}
	if maxTicks < 1 {
		maxTicks = 1
	}

	rawStep := (1.2*hi - 0.95*lo) / float64(maxTicks)
	if rawStep == 0 {
		// the padded bounds coincide (1.2·hi == 0.95·lo); size the
		// step from the unpadded range instead
		rawStep = (hi - lo) / float64(maxTicks)
	}
	magnitude := math.Floor(math.Log10(math.Abs(rawStep)))
	remainder := math.Log10(math.Abs(rawStep)) - magnitude
	leader := 10.0
	switch {
	case remainder < 0.301: // log10(2)
		leader = 2
	case remainder < 0.698: // log10(5)
		leader = 5
	}
	step := leader * math.Pow(10, magnitude)

	start := int(math.Floor(0.95 * lo / step))
	end := int(math.Ceil(1.2 * hi / step))
	// widen until the ticks cover the raw data, not just the padded
	// window, which sits inside the data for negative values
	if s := int(math.Floor(lo / step)); s < start {
		start = s
	}
	if e := int(math.Ceil(hi / step)); e > end {
		end = e
	}
	if end <= start {
		end = start + 1
	}
	ticks := make([]float64, 0, end-start+1)
	for i := start; i <= end; i++ {
		ticks = append(ticks, float64(i)*step)
	}
	return ticks, nil
}

// TimeLimits returns month-aligned ticks covering the dates. The
// interval is the smallest of 1, 2, 3, 6 or 12 months that keeps the
// tick count within budget, anchored on the first day of the earliest
// date's month and running to the first day of the month after the
// latest date. Every tick is the first of a month; there is no
// day-of-month granularity.
func TimeLimits(dates []time.Time, maxTicks int) ([]time.Time, error) {
	if len(dates) == 0 {
		return nil, InvalidDomainError("no values")
	}
	lo, hi := dates[0], dates[0]
	for _, d := range dates[1:] {
		if d.Before(lo) {
			lo = d
		}
		if d.After(hi) {
			hi = d
		}
	}
	totalDays := hi.Sub(lo).Hours() / 24
	if totalDays <= 0 {
		return nil, InvalidDomainError("dates must span a positive range")
	}
	if maxTicks < 1 {
		maxTicks = 1
	}

	rawInterval := totalDays / 30 / float64(maxTicks)
	var interval int
	switch {
	case rawInterval <= 1:
		interval = 1
	case rawInterval <= 2:
		interval = 2
	case rawInterval <= 3:
		interval = 3
	case rawInterval <= 6:
		interval = 6
	default:
		interval = 12
	}

	start := time.Date(lo.Year(), lo.Month(), 1, 0, 0, 0, 0, lo.Location())
	end := time.Date(hi.Year(), hi.Month(), 1, 0, 0, 0, 0, hi.Location()).AddDate(0, 1, 0)
	var ticks []time.Time
	for cur := start; !cur.After(end); cur = cur.AddDate(0, interval, 0) {
		ticks = append(ticks, cur)
	}
	return ticks, nil
}
