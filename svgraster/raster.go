// Implements a raster backend to paint charts into images,
// by wrapping rasterx.
package svgraster

import (
	"image"

	"github.com/arowley-ai/go-svg-chart/svgchart"
	"github.com/arowley-ai/go-svg-chart/svgshape"
	"github.com/srwiley/rasterx"
	"golang.org/x/image/math/fixed"
)

var _ svgshape.Driver = (*Renderer)(nil) // assert interface conformance

// Renderer paints chart shapes with rasterx scanline rasterization.
// Text elements are skipped: rasterization covers geometry only.
type Renderer struct {
	dasher *rasterx.Dasher // strokes, including dashed ones
	filler *rasterx.Filler // separate instance, no shared state
}

// NewRenderer returns a renderer drawing through the given scanner.
func NewRenderer(width, height int, scanner rasterx.Scanner) *Renderer {
	return &Renderer{
		dasher: rasterx.NewDasher(width, height, scanner),
		filler: rasterx.NewFiller(width, height, scanner),
	}
}

// RasterChart paints the chart into a fresh RGBA image of the
// chart's pixel size using a ScannerGV instance.
func RasterChart(c *svgchart.Chart) *image.RGBA {
	return rasterShapes(int(c.Width), int(c.Height), c.Shapes())
}

// RasterDonut is RasterChart for donut charts.
func RasterDonut(c *svgchart.DonutChart) *image.RGBA {
	return rasterShapes(int(c.Width), int(c.Height), c.Shapes())
}

func rasterShapes(w, h int, shapes []svgshape.Element) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	scanner := rasterx.NewScannerGV(w, h, img, img.Bounds())
	svgshape.Draw(NewRenderer(w, h, scanner), shapes)
	return img
}

func toFixed(p svgshape.Point) fixed.Point26_6 {
	return fixed.Point26_6{X: fixed.Int26_6(p.X * 64), Y: fixed.Int26_6(p.Y * 64)}
}

func (rd *Renderer) setStroke(styles *svgshape.Styles) bool {
	col, ok := svgshape.StrokeColor(styles)
	if !ok {
		return false
	}
	width := svgshape.StrokeWidth(styles, 1)
	rd.dasher.SetStroke(
		fixed.Int26_6(width*64), fixed.Int26_6(4*64),
		rasterx.ButtCap, rasterx.ButtCap, rasterx.FlatGap, rasterx.Miter,
		svgshape.DashPattern(styles), 0,
	)
	rd.dasher.Scanner.SetColor(col)
	return true
}

func (rd *Renderer) DrawLine(start, end svgshape.Point, styles *svgshape.Styles) {
	if !rd.setStroke(styles) {
		return
	}
	rd.dasher.Start(toFixed(start))
	rd.dasher.Line(toFixed(end))
	rd.dasher.Stop(false)
	rd.dasher.Draw()
	rd.dasher.Clear()
}

func (rd *Renderer) DrawCircle(center svgshape.Point, radius float64, styles *svgshape.Styles) {
	if col, ok := svgshape.FillColor(styles); ok {
		rasterx.AddCircle(center.X, center.Y, radius, rd.filler)
		rd.filler.Scanner.SetColor(col)
		rd.filler.Draw()
		rd.filler.Clear()
	}
	if rd.setStroke(styles) {
		rasterx.AddCircle(center.X, center.Y, radius, rd.dasher)
		rd.dasher.Draw()
		rd.dasher.Clear()
	}
}

// DrawText is a no-op: the raster backend does not shape fonts.
func (rd *Renderer) DrawText(position svgshape.Point, content string, styles *svgshape.Styles) {}

func (rd *Renderer) DrawPath(points []svgshape.Point, styles *svgshape.Styles) {
	if len(points) == 0 || !rd.setStroke(styles) {
		return
	}
	rd.dasher.Start(toFixed(points[0]))
	for _, p := range points[1:] {
		rd.dasher.Line(toFixed(p))
	}
	rd.dasher.Stop(false)
	rd.dasher.Draw()
	rd.dasher.Clear()
}
