// Package pdf arma el reporte de ventas con Maroto v2.
//
// Composición de páginas (cada una es una función plantilla):
//
//	┌─────────────────────────────────────────────┐
//	│ HEADER: título del reporte (todas las págs.) │
//	│ PORTADA: título, subtítulo, fecha            │
//	├─────────────────────────────────────────────┤
//	│ INSIGHTS: "- etiqueta: valor" por línea      │
//	├─────────────────────────────────────────────┤
//	│ GRÁFICO: leyenda + imagen (una por página)   │
//	│ FOOTER: Página N de M                        │
//	└─────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"os"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/image"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/page"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/extension"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/meganium-report/internal/application/dto"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoReportGenerator implementa report.PDFGenerator usando Maroto v2.
type MarotoReportGenerator struct{}

// NewMarotoReportGenerator construye el generador.
func NewMarotoReportGenerator() *MarotoReportGenerator { return &MarotoReportGenerator{} }

// GenerateReportPDF genera el PDF completo en memoria y devuelve sus bytes.
func (g *MarotoReportGenerator) GenerateReportPDF(ctx context.Context, doc *dto.ReportDocument) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(15).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 12}).
		WithPageNumber(props.PageNumber{
			Pattern: "Página {current} de {total}",
			Place:   props.Bottom,
			Size:    8,
			Style:   fontstyle.Italic,
			Color:   colorGray,
		}).
		WithTitle(doc.Title, true).
		WithAuthor(doc.Company, true).
		WithSubject("Corrida "+doc.RunID, true).
		WithCreationDate(doc.GeneratedAt).
		Build()

	m := maroto.New(cfg)
	if err := m.RegisterHeader(headerRows(doc)...); err != nil {
		return nil, fmt.Errorf("pdf: registrar encabezado: %w", err)
	}

	m.AddPages(coverPage(doc), insightsPage(doc.Insights))
	for _, img := range doc.Images {
		pg, err := imagePage(img)
		if err != nil {
			return nil, err
		}
		m.AddPages(pg)
	}

	out, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return out.GetBytes(), nil
}

// ── Plantillas de página ──────────────────────────────────────────────────────

// headerRows: título del reporte centrado en cada página.
func headerRows(doc *dto.ReportDocument) []core.Row {
	return []core.Row{
		text.NewRow(10, "Reporte de Ventas - "+doc.Company, props.Text{
			Style: fontstyle.Bold, Size: 15, Align: align.Center, Color: colorPrimary, Top: 2,
		}),
		line.NewRow(5, props.Line{Color: colorPrimary, Thickness: 0.3}),
	}
}

// coverPage: título, subtítulo y fecha de generación.
func coverPage(doc *dto.ReportDocument) core.Page {
	return page.New().Add(
		row.New(40),
		text.NewRow(10, doc.Title, props.Text{
			Style: fontstyle.Bold, Size: 16, Align: align.Center,
		}),
		text.NewRow(10, doc.Subtitle, props.Text{
			Size: 12, Align: align.Center, Color: colorGray,
		}),
		text.NewRow(10, doc.GeneratedAt.Format("02/01/2006"), props.Text{
			Size: 12, Align: align.Center, Color: colorGray,
		}),
	)
}

// insightsPage: una línea "- etiqueta: valor" por insight.
func insightsPage(items []dto.InsightItem) core.Page {
	rows := []core.Row{
		text.NewRow(10, "Principales Insights", props.Text{
			Style: fontstyle.Bold, Size: 12, Top: 2,
		}),
	}
	for _, it := range items {
		rows = append(rows, text.NewRow(6, fmt.Sprintf("- %s: %s", it.Label, it.Value), props.Text{
			Size: 10, Left: 2,
		}))
	}
	return page.New().Add(rows...)
}

// imagePage: leyenda + imagen a lo ancho de la página.
// La imagen se lee aquí para que un archivo ausente falle en vez de quedar como texto de error en el PDF.
func imagePage(img dto.ReportImage) (core.Page, error) {
	data, err := os.ReadFile(img.Path)
	if err != nil {
		return nil, fmt.Errorf("pdf: leer imagen %s: %w", img.Path, err)
	}
	return page.New().Add(
		text.NewRow(10, img.Caption, props.Text{
			Style: fontstyle.Bold, Size: 12, Top: 2,
		}),
		image.NewFromBytesRow(150, data, extension.Png, props.Rect{
			Center:  true,
			Percent: 100,
		}),
	), nil
}
