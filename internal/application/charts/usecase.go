// Package charts arma los datasets de los tres gráficos del reporte y los
// persiste como imágenes PNG en el directorio de salida.
package charts

import (
	"context"
	"fmt"
	"io"
	"path/filepath"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/meganium-report/internal/application/dto"
	"github.com/jhoicas/meganium-report/internal/domain"
	"github.com/jhoicas/meganium-report/internal/domain/entity"
	"github.com/jhoicas/meganium-report/internal/domain/sales"
	"github.com/jhoicas/meganium-report/pkg/logger"
)

// Nombres fijos de las imágenes dentro del directorio de salida.
const (
	FileTopProducts    = "top_produtos.png"
	FileCountryShare   = "vendas_paises.png"
	FileMonthlyRevenue = "vendas_mes.png"
)

const (
	topProducts  = 10
	topCountries = 5
)

// UseCase genera los tres gráficos. Cualquier fallo aborta la corrida.
type UseCase struct {
	renderer Renderer
	store    ArtifactStore
	outDir   string
	log      *logger.Logger
}

// NewUseCase construye el caso de uso inyectando renderer y store.
func NewUseCase(renderer Renderer, store ArtifactStore, outDir string, log *logger.Logger) *UseCase {
	return &UseCase{renderer: renderer, store: store, outDir: outDir, log: log}
}

// Generate crea el directorio de salida si no existe y escribe las tres imágenes.
func (uc *UseCase) Generate(ctx context.Context, table *entity.SalesTable) (*dto.ChartFiles, error) {
	uc.log.Info().Str("dir", uc.outDir).Msg("Creando visualizaciones...")

	if table.Len() == 0 {
		return nil, fmt.Errorf("charts: %w", domain.ErrEmptyDataset)
	}
	if err := uc.store.EnsureDir(uc.outDir); err != nil {
		return nil, uc.fail("directorio de salida", err)
	}

	files := &dto.ChartFiles{
		TopProducts:    filepath.Join(uc.outDir, FileTopProducts),
		CountryShare:   filepath.Join(uc.outDir, FileCountryShare),
		MonthlyRevenue: filepath.Join(uc.outDir, FileMonthlyRevenue),
	}

	bar := TopProducts(table.Sales)
	if err := uc.write(ctx, files.TopProducts, func(w io.Writer) error {
		return uc.renderer.RenderBar(w, bar)
	}); err != nil {
		return nil, uc.fail("top productos", err)
	}

	pie := CountryShare(table.Sales)
	if err := uc.write(ctx, files.CountryShare, func(w io.Writer) error {
		return uc.renderer.RenderPie(w, pie)
	}); err != nil {
		return nil, uc.fail("ventas por país", err)
	}

	line := MonthlyRevenue(table.Sales)
	if err := uc.write(ctx, files.MonthlyRevenue, func(w io.Writer) error {
		return uc.renderer.RenderLine(w, line)
	}); err != nil {
		return nil, uc.fail("ventas mensuales", err)
	}

	uc.log.Info().Msg("Visualizaciones creadas con éxito")
	return files, nil
}

func (uc *UseCase) write(ctx context.Context, path string, render func(io.Writer) error) error {
	if err := uc.store.WriteAtomic(ctx, path, render); err != nil {
		return err
	}
	uc.log.Debug().Str("path", path).Msg("imagen guardada")
	return nil
}

func (uc *UseCase) fail(step string, err error) error {
	uc.log.Error().Err(err).Str("step", step).Msg("Error al crear visualizaciones")
	return fmt.Errorf("%w: charts: %s: %w", domain.ErrRender, step, err)
}

// ── Datasets ──────────────────────────────────────────────────────────────────

// TopProducts los diez productos con más ventas (filas), descendente.
func TopProducts(rows []*entity.Sale) dto.BarChartSpec {
	spec := dto.BarChartSpec{Title: dto.TitleTopProducts, XLabel: "Cantidad Vendida"}
	for _, c := range sales.TopN(rows, sales.ByProduct, topProducts) {
		spec.Bars = append(spec.Bars, dto.ChartBar{Label: c.Key, Value: float64(c.Count)})
	}
	return spec
}

// CountryShare los cinco países con más ventas; Percent sobre el total de esos cinco.
func CountryShare(rows []*entity.Sale) dto.PieChartSpec {
	top := sales.TopN(rows, sales.ByCountry, topCountries)
	total := 0
	for _, c := range top {
		total += c.Count
	}

	spec := dto.PieChartSpec{Title: dto.TitleCountryShare}
	for _, c := range top {
		pct := 0.0
		if total > 0 {
			pct = float64(c.Count) / float64(total) * 100
		}
		spec.Slices = append(spec.Slices, dto.ChartSlice{Label: c.Key, Value: float64(c.Count), Percent: pct})
	}
	return spec
}

// MonthlyRevenue ingresos por mes calendario en orden 1–12.
// Solo aparecen los meses con ventas; el eje X siempre muestra los doce.
func MonthlyRevenue(rows []*entity.Sale) dto.LineChartSpec {
	var byMonth [12]*decimal.Decimal
	for _, s := range sales.SumBy(rows, sales.ByMonth, sales.Revenue) {
		sum := s.Sum
		byMonth[s.Key-1] = &sum
	}

	spec := dto.LineChartSpec{Title: dto.TitleMonthlyRevenue, XLabel: "Mes", YLabel: "Ingresos Totales"}
	for i, v := range byMonth {
		if v == nil {
			continue
		}
		spec.Points = append(spec.Points, dto.ChartPoint{X: float64(i + 1), Y: v.InexactFloat64()})
	}
	return spec
}
