// Implements a PDF backend to render charts,
// by wrapping github.com/jung-kurt/gofpdf.
package svgpdf

import (
	"io"

	"github.com/arowley-ai/go-svg-chart/svgchart"
	"github.com/arowley-ai/go-svg-chart/svgshape"
	"github.com/jung-kurt/gofpdf"
)

var _ svgshape.Driver = (*Renderer)(nil) // assert interface conformance

// Renderer writes chart shapes to a gofpdf document, one point per
// pixel.
type Renderer struct {
	pdf *gofpdf.Fpdf
}

// NewRenderer returns a renderer which will write to the given pdf.
func NewRenderer(pdf *gofpdf.Fpdf) *Renderer {
	return &Renderer{pdf: pdf}
}

func newDocument(width, height float64) *gofpdf.Fpdf {
	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		UnitStr: "pt",
		Size:    gofpdf.SizeType{Wd: width, Ht: height},
	})
	pdf.AddPage()
	pdf.SetFont("Helvetica", "", 12)
	return pdf
}

// RenderChart writes the chart as a single-page PDF to w.
func RenderChart(c *svgchart.Chart, w io.Writer) error {
	pdf := newDocument(c.Width, c.Height)
	svgshape.Draw(NewRenderer(pdf), c.Shapes())
	return pdf.Output(w)
}

// RenderChartToFile writes the chart as a single-page PDF file.
func RenderChartToFile(c *svgchart.Chart, filename string) error {
	pdf := newDocument(c.Width, c.Height)
	svgshape.Draw(NewRenderer(pdf), c.Shapes())
	return pdf.OutputFileAndClose(filename)
}

func (rd *Renderer) DrawLine(start, end svgshape.Point, styles *svgshape.Styles) {
	col, ok := svgshape.StrokeColor(styles)
	if !ok {
		return
	}
	rd.pdf.SetDrawColor(int(col.R), int(col.G), int(col.B))
	rd.pdf.SetLineWidth(svgshape.StrokeWidth(styles, 1))
	rd.pdf.Line(start.X, start.Y, end.X, end.Y)
}

func (rd *Renderer) DrawCircle(center svgshape.Point, radius float64, styles *svgshape.Styles) {
	fill, hasFill := svgshape.FillColor(styles)
	stroke, hasStroke := svgshape.StrokeColor(styles)
	if !hasFill && !hasStroke {
		return
	}
	style := ""
	if hasFill {
		rd.pdf.SetFillColor(int(fill.R), int(fill.G), int(fill.B))
		style += "F"
	}
	if hasStroke {
		rd.pdf.SetDrawColor(int(stroke.R), int(stroke.G), int(stroke.B))
		rd.pdf.SetLineWidth(svgshape.StrokeWidth(styles, 1))
		style += "D"
	}
	rd.pdf.Circle(center.X, center.Y, radius, style)
}

func (rd *Renderer) DrawText(position svgshape.Point, content string, styles *svgshape.Styles) {
	if col, ok := svgshape.FillColor(styles); ok {
		rd.pdf.SetTextColor(int(col.R), int(col.G), int(col.B))
	}
	rd.pdf.Text(position.X, position.Y, content)
}

func (rd *Renderer) DrawPath(points []svgshape.Point, styles *svgshape.Styles) {
	col, ok := svgshape.StrokeColor(styles)
	if !ok || len(points) == 0 {
		return
	}
	rd.pdf.SetDrawColor(int(col.R), int(col.G), int(col.B))
	rd.pdf.SetLineWidth(svgshape.StrokeWidth(styles, 1))
	rd.pdf.MoveTo(points[0].X, points[0].Y)
	for _, p := range points[1:] {
		rd.pdf.LineTo(p.X, p.Y)
	}
	rd.pdf.DrawPath("D")
}
