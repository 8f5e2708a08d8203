// Package chart implementa charts.Renderer.
//
// Barras y línea se dibujan con gonum/plot (soporta barras horizontales y
// marcas de eje nominales); la torta con go-chart, que etiqueta cada porción.
// Todas las imágenes son PNG.
package chart

import (
	"fmt"
	"image/color"
	"io"
	"strconv"

	gochart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"github.com/jhoicas/meganium-report/internal/application/dto"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorBar  = color.RGBA{R: 59, G: 82, B: 139, A: 255}  // viridis medio
	colorLine = color.RGBA{R: 65, G: 105, B: 225, A: 255} // royalblue
	colorGrid = color.RGBA{R: 176, G: 176, B: 176, A: 255}
	pieColors = []drawing.Color{
		{R: 161, G: 201, B: 244, A: 255},
		{R: 255, G: 180, B: 130, A: 255},
		{R: 141, G: 229, B: 161, A: 255},
		{R: 255, G: 159, B: 155, A: 255},
		{R: 208, G: 187, B: 255, A: 255},
	}
)

// Renderer dibuja los gráficos con la resolución configurada.
type Renderer struct {
	dpi float64
}

// NewRenderer construye el renderer; dpi <= 0 usa 150.
func NewRenderer(dpi float64) *Renderer {
	if dpi <= 0 {
		dpi = 150
	}
	return &Renderer{dpi: dpi}
}

// RenderBar barras horizontales; la primera barra recibida queda arriba.
func (r *Renderer) RenderBar(w io.Writer, spec dto.BarChartSpec) error {
	if len(spec.Bars) == 0 {
		return fmt.Errorf("chart: barras: sin datos")
	}

	// gonum dibuja el índice 0 abajo: se invierte para que el mayor quede arriba.
	n := len(spec.Bars)
	values := make(plotter.Values, n)
	labels := make([]string, n)
	for i, b := range spec.Bars {
		values[n-1-i] = b.Value
		labels[n-1-i] = b.Label
	}

	p := plot.New()
	p.Title.Text = spec.Title
	p.Title.Padding = vg.Points(12)
	p.X.Label.Text = spec.XLabel
	p.X.Min = 0

	bars, err := plotter.NewBarChart(values, vg.Points(18))
	if err != nil {
		return fmt.Errorf("chart: barras: %w", err)
	}
	bars.Horizontal = true
	bars.Color = colorBar
	bars.LineStyle.Width = 0
	p.Add(bars)
	p.NominalY(labels...)

	return r.save(w, p, 10*vg.Inch, 6*vg.Inch)
}

// RenderLine serie temporal con marcadores y grilla punteada; eje X 1–12.
func (r *Renderer) RenderLine(w io.Writer, spec dto.LineChartSpec) error {
	if len(spec.Points) == 0 {
		return fmt.Errorf("chart: línea: sin datos")
	}

	xys := make(plotter.XYs, len(spec.Points))
	for i, pt := range spec.Points {
		xys[i].X = pt.X
		xys[i].Y = pt.Y
	}

	p := plot.New()
	p.Title.Text = spec.Title
	p.Title.Padding = vg.Points(12)
	p.X.Label.Text = spec.XLabel
	p.Y.Label.Text = spec.YLabel
	p.X.Min, p.X.Max = 0.5, 12.5
	p.X.Tick.Marker = monthTicks()

	grid := plotter.NewGrid()
	grid.Vertical.Color = colorGrid
	grid.Vertical.Dashes = []vg.Length{vg.Points(4), vg.Points(2)}
	grid.Horizontal.Color = colorGrid
	grid.Horizontal.Dashes = []vg.Length{vg.Points(4), vg.Points(2)}
	p.Add(grid)

	line, points, err := plotter.NewLinePoints(xys)
	if err != nil {
		return fmt.Errorf("chart: línea: %w", err)
	}
	line.Color = colorLine
	line.Width = vg.Points(2.5)
	points.Shape = draw.CircleGlyph{}
	points.Color = colorLine
	points.Radius = vg.Points(3.5)
	p.Add(line, points)

	return r.save(w, p, 12*vg.Inch, 6*vg.Inch)
}

// RenderPie torta con etiqueta "País 12.3%" por porción.
func (r *Renderer) RenderPie(w io.Writer, spec dto.PieChartSpec) error {
	if len(spec.Slices) == 0 {
		return fmt.Errorf("chart: torta: sin datos")
	}

	values := make([]gochart.Value, 0, len(spec.Slices))
	for i, s := range spec.Slices {
		values = append(values, gochart.Value{
			Value: s.Value,
			Label: fmt.Sprintf("%s %.1f%%", s.Label, s.Percent),
			Style: gochart.Style{
				FillColor:   pieColors[i%len(pieColors)],
				StrokeColor: drawing.ColorWhite,
				StrokeWidth: 1,
				FontSize:    11,
			},
		})
	}

	size := int(8 * r.dpi)
	pie := gochart.PieChart{
		Title:  spec.Title,
		Width:  size,
		Height: size,
		DPI:    r.dpi,
		Values: values,
	}
	if err := pie.Render(gochart.PNG, w); err != nil {
		return fmt.Errorf("chart: torta: %w", err)
	}
	return nil
}

// save rasteriza el plot a PNG con el DPI configurado.
func (r *Renderer) save(w io.Writer, p *plot.Plot, width, height vg.Length) error {
	c := vgimg.NewWith(vgimg.UseWH(width, height), vgimg.UseDPI(int(r.dpi)))
	p.Draw(draw.New(c))
	if _, err := (vgimg.PngCanvas{Canvas: c}).WriteTo(w); err != nil {
		return fmt.Errorf("chart: codificar png: %w", err)
	}
	return nil
}

// monthTicks marca los doce meses en el eje X.
func monthTicks() plot.ConstantTicks {
	ticks := make(plot.ConstantTicks, 12)
	for m := 1; m <= 12; m++ {
		ticks[m-1] = plot.Tick{Value: float64(m), Label: strconv.Itoa(m)}
	}
	return ticks
}
