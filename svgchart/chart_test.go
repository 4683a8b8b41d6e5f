package svgchart

import (
	"encoding/xml"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"golang.org/x/net/html/charset"

	"github.com/arowley-ai/go-svg-chart/svgscale"
	"github.com/arowley-ai/go-svg-chart/svgshape"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func newTestChart(t *testing.T) *Chart {
	t.Helper()
	c, err := NewLineChart(
		[]float64{0, 1, 2, 3, 4, 5},
		[]SeriesData{
			{Name: "alpha", Values: []float64{100, 250, 400, 320, 180, 90}},
			{Name: "beta", Values: []float64{40, 80, 120, 160, 200, 240}},
		},
		nil,
	)
	if err != nil {
		t.Fatal(err)
	}
	return c
}

func TestRenderDocumentShape(t *testing.T) {
	c := newTestChart(t)
	doc := c.Render()
	if !strings.HasPrefix(doc, `<svg viewBox="0 0 800 600" xmlns="http://www.w3.org/2000/svg">`) {
		t.Errorf("unexpected header: %q", strings.SplitN(doc, "\n", 2)[0])
	}
	if !strings.HasSuffix(doc, "</svg>") {
		t.Error("document does not end with the closing tag")
	}
	if got := strings.Count(doc, "<path"); got != 2 {
		t.Errorf("got %d path fragments, want 2", got)
	}
	wantTexts := c.XAxis.Limits.Len() + c.YAxis.Limits.Len()
	if got := strings.Count(doc, "<text"); got != wantTexts {
		t.Errorf("got %d text fragments, want %d", got, wantTexts)
	}
	if err := Verify(strings.NewReader(doc)); err != nil {
		t.Errorf("rendered document is not well formed: %v", err)
	}
}

func TestRenderIsIdempotent(t *testing.T) {
	c := newTestChart(t)
	if c.Render() != c.Render() {
		t.Error("two renders of the same chart differ")
	}
}

func TestShapesMatchFragments(t *testing.T) {
	c := newTestChart(t)
	c.AddGrids(0, 2, nil, nil)
	c.AddLegend(nil)
	// every leaf shape serializes to exactly one fragment
	if shapes, frags := len(c.Shapes()), len(c.ElementList()); shapes != frags {
		t.Errorf("%d shapes but %d fragments", shapes, frags)
	}
}

func TestSharedVerticalScale(t *testing.T) {
	c, err := NewLineChart(
		[]float64{0, 1, 2},
		[]SeriesData{
			{Name: "small", Values: []float64{1, 5, 10}},
			{Name: "large", Values: []float64{200, 600, 1000}},
		},
		nil,
	)
	if err != nil {
		t.Fatal(err)
	}
	limits := c.YAxis.Limits
	if first := limits.NumberAt(0); first > 0.95*1 {
		t.Errorf("first y limit %v does not cover the smallest value", first)
	}
	if last := limits.NumberAt(limits.Len() - 1); last < 1.2*1000 {
		t.Errorf("last y limit %v does not cover the largest value", last)
	}
}

func TestSeriesOverwriteKeepsOrder(t *testing.T) {
	c := &Chart{}
	first := svgshape.NewPath(nil, nil)
	second := svgshape.NewPath(nil, nil)
	replacement := svgshape.NewPath(nil, nil)
	c.SetSeries("a", first)
	c.SetSeries("b", second)
	c.SetSeries("a", replacement)

	names := c.SeriesNames()
	if len(names) != 2 || names[0] != "a" || names[1] != "b" {
		t.Errorf("series order %v, want [a b]", names)
	}
	if c.Series("a") != replacement {
		t.Error("overwrite did not replace the path")
	}
}

func TestUnnamedSeriesGetDefaults(t *testing.T) {
	c, err := NewLineChart([]float64{0, 1, 2},
		[]SeriesData{{Values: []float64{1, 2, 3}}, {Values: []float64{3, 2, 1}}}, nil)
	if err != nil {
		t.Fatal(err)
	}
	names := c.SeriesNames()
	if len(names) != 2 || names[0] != "Series 1" || names[1] != "Series 2" {
		t.Errorf("series names %v, want [Series 1 Series 2]", names)
	}
}

func TestGridCounts(t *testing.T) {
	c := newTestChart(t)
	nx := c.XAxis.Limits.Len()
	ny := c.YAxis.Limits.Len()

	c.AddYGrid(2, nil, nil)
	if got, want := len(c.YAxis.GridLines), (nx-1)*3; got != want {
		t.Errorf("y grid has %d lines, want %d", got, want)
	}
	c.AddXGrid(0, nil, nil)
	if got, want := len(c.XAxis.GridLines), ny-1; got != want {
		t.Errorf("x grid has %d lines, want %d", got, want)
	}

	// horizontal gridlines climb from the baseline in axis steps
	step := c.YAxis.Length / float64(ny-1)
	first := c.XAxis.GridLines[0]
	if want := c.XAxis.Origin.Y - step; first.Start.Y != want {
		t.Errorf("first x gridline at y=%v, want %v", first.Start.Y, want)
	}
	if first.End.X-first.Start.X != c.XAxis.Length {
		t.Error("x gridline does not span the plot width")
	}
}

func TestLegendSharesSeriesStyles(t *testing.T) {
	c := newTestChart(t)
	c.AddLegend(nil)

	if len(c.Legend.Lines) != 2 || len(c.Legend.Texts) != 2 {
		t.Fatalf("legend has %d swatches and %d labels, want 2 each",
			len(c.Legend.Lines), len(c.Legend.Texts))
	}
	if c.Legend.Lines[0].Styles != c.Series("alpha").Styles {
		t.Error("swatch does not share the series style map")
	}
	if got := c.Legend.Texts[1].Content; got != "beta" {
		t.Errorf("second label %q, want beta", got)
	}
	if got := c.Legend.Lines[1].Start.X; got != 600 {
		t.Errorf("second swatch at x=%v, want 600", got)
	}

	// restyling the series restyles the already-built swatch
	c.Series("alpha").Styles.Set("stroke", "orange")
	if !strings.Contains(c.Legend.Lines[0].ElementList()[0], `stroke="orange"`) {
		t.Error("swatch did not pick up the series restyle")
	}
}

func TestCustomElementsRenderLast(t *testing.T) {
	c := newTestChart(t)
	marker := svgshape.NewCircle(400, 300, 4, svgshape.NewStyles("fill", "red"))
	c.AddElement(marker)

	lines := strings.Split(c.Render(), "\n")
	if got, want := lines[len(lines)-2], marker.ElementList()[0]; got != want {
		t.Errorf("second-to-last line %q, want the custom element %q", got, want)
	}
}

func TestRoundTripAttributeOrder(t *testing.T) {
	c := newTestChart(t)
	decoder := xml.NewDecoder(strings.NewReader(c.Render()))
	decoder.CharsetReader = charset.NewReaderLabel

	var attrs []xml.Attr
	for {
		tok, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatal(err)
		}
		if start, ok := tok.(xml.StartElement); ok && start.Name.Local == "path" {
			attrs = start.Attr
			break
		}
	}
	if attrs == nil {
		t.Fatal("no path element decoded")
	}
	wantNames := []string{"d", "fill", "stroke-width", "stroke"}
	if len(attrs) != len(wantNames) {
		t.Fatalf("got %d attributes, want %d", len(attrs), len(wantNames))
	}
	for i, name := range wantNames {
		if attrs[i].Name.Local != name {
			t.Errorf("attribute %d is %q, want %q", i, attrs[i].Name.Local, name)
		}
	}
	if attrs[3].Value != "green" {
		t.Errorf("first series stroke %q, want green", attrs[3].Value)
	}
}

func TestTimeLineChart(t *testing.T) {
	x := []time.Time{
		date(2024, 1, 15), date(2024, 2, 15), date(2024, 3, 15),
		date(2024, 4, 15), date(2024, 5, 15), date(2024, 6, 15),
	}
	c, err := NewTimeLineChart(x,
		[]SeriesData{{Name: "visits", Values: []float64{10, 40, 25, 60, 55, 80}}}, nil)
	if err != nil {
		t.Fatal(err)
	}
	if !c.XAxis.Limits.IsTime() {
		t.Fatal("x axis should carry calendar limits")
	}
	doc := c.Render()
	if !strings.Contains(doc, ">2024-01-01</text>") {
		t.Error("first month tick label missing from document")
	}
	if err := Verify(strings.NewReader(doc)); err != nil {
		t.Errorf("rendered document is not well formed: %v", err)
	}
}

func TestLineChartErrors(t *testing.T) {
	var domErr svgscale.InvalidDomainError
	_, err := NewLineChart(nil, []SeriesData{{Values: []float64{1, 2}}}, nil)
	if !errors.As(err, &domErr) {
		t.Errorf("empty x values: got %v, want InvalidDomainError", err)
	}
	_, err = NewLineChart([]float64{0, 1, 2}, []SeriesData{{Values: []float64{7, 7, 7}}}, nil)
	if !errors.As(err, &domErr) {
		t.Errorf("flat series: got %v, want InvalidDomainError", err)
	}
}

func TestDonutChart(t *testing.T) {
	c, err := NewDonutChart([]float64{10, 20, 30, 40}, nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(c.Segments) != 4 {
		t.Fatalf("got %d segments, want 4", len(c.Segments))
	}
	doc := c.Render()
	if got := strings.Count(doc, "<circle"); got != 4 {
		t.Errorf("got %d circle fragments, want 4", got)
	}
	if !strings.HasPrefix(doc, `<svg viewBox="0 0 400 400"`) {
		t.Errorf("unexpected header: %q", strings.SplitN(doc, "\n", 2)[0])
	}
	first := c.Segments[0].Styles
	if v, _ := first.Get("fill"); v != "none" {
		t.Errorf("segment fill %q, want none", v)
	}
	if v, ok := first.Get("stroke-dasharray"); !ok || v == "" {
		t.Error("segment has no dash pattern")
	}
	if err := Verify(strings.NewReader(doc)); err != nil {
		t.Errorf("rendered document is not well formed: %v", err)
	}
}

func TestDonutChartErrors(t *testing.T) {
	var domErr svgscale.InvalidDomainError
	for _, values := range [][]float64{nil, {0, 0}, {-5, 5}} {
		_, err := NewDonutChart(values, nil)
		if !errors.As(err, &domErr) {
			t.Errorf("%v: got %v, want InvalidDomainError", values, err)
		}
	}
}

func TestVerifyRejectsMalformed(t *testing.T) {
	if err := Verify(strings.NewReader("<svg><line></svg>")); err == nil {
		t.Error("mismatched tags should fail verification")
	}
}
