package report_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/meganium-report/internal/application/charts"
	"github.com/jhoicas/meganium-report/internal/application/dto"
	"github.com/jhoicas/meganium-report/internal/application/insights"
	"github.com/jhoicas/meganium-report/internal/application/report"
	"github.com/jhoicas/meganium-report/internal/domain"
	"github.com/jhoicas/meganium-report/internal/domain/entity"
	"github.com/jhoicas/meganium-report/internal/infrastructure/chart"
	"github.com/jhoicas/meganium-report/internal/infrastructure/dataset"
	"github.com/jhoicas/meganium-report/internal/infrastructure/pdf"
	"github.com/jhoicas/meganium-report/internal/infrastructure/storage"
	"github.com/jhoicas/meganium-report/pkg/logger"
)

const salesCSV = `product_sold,date,quantity,total_price,currency,site,discount_value,delivery_country
Zelda,2023-01-05,2,120.00,BRL,loja.com,10.00,Brazil
Mario,2023-02-11,1,80.00,BRL,app,0,Portugal
Zelda,2023-02-12,1,60.00,BRL,loja.com,5.00,Brazil
Kirby,fecha-rota,1,30.00,BRL,app,0,Chile
Metroid,2024-03-20,3,210.00,BRL,loja.com,0,Brazil
Mario,2024-12-24,1,75.50,BRL,marketplace,2.50,Angola
`

// buildPipeline arma el pipeline con los componentes reales sobre un directorio temporal.
func buildPipeline(t *testing.T, dir, input, reportPath string) *report.Pipeline {
	t.Helper()
	log := logger.Nop()
	store := storage.NewFileStore()
	return report.NewPipeline(
		dataset.NewCSVSalesRepository(input, ',', log),
		insights.NewUseCase(log),
		charts.NewUseCase(chart.NewRenderer(60), store, filepath.Join(dir, "output"), log),
		report.NewUseCase(pdf.NewMarotoReportGenerator(), store, reportPath, "Meganium Games", log),
		log,
	)
}

func TestPipeline_CorridaCompleta(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "ventas.csv")
	require.NoError(t, os.WriteFile(input, []byte(salesCSV), 0o644))
	reportPath := filepath.Join(dir, "Meganium_Sales_Report.pdf")

	res, err := buildPipeline(t, dir, input, reportPath).Run(context.Background())
	require.NoError(t, err)

	assert.NotEmpty(t, res.RunID)
	assert.Equal(t, 5, res.Rows)
	assert.Equal(t, 1, res.Dropped)
	assert.Equal(t, "Zelda", res.Insights.TopProduct)
	assert.Equal(t, "Brazil", res.Insights.TopCountry)
	assert.Equal(t, 2024, res.Insights.BestYear)

	assert.DirExists(t, filepath.Join(dir, "output"))
	for _, img := range res.Charts.Sections() {
		assert.FileExists(t, img.Path)
	}

	data, err := os.ReadFile(reportPath)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "%PDF"), "el documento es un PDF")
}

func TestPipeline_Idempotente(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "ventas.csv")
	require.NoError(t, os.WriteFile(input, []byte(salesCSV), 0o644))
	p := buildPipeline(t, dir, input, filepath.Join(dir, "reporte.pdf"))

	first, err := p.Run(context.Background())
	require.NoError(t, err)
	second, err := p.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, first.Insights, second.Insights)
	assert.NotEqual(t, first.RunID, second.RunID)
}

func TestPipeline_RutaDeReporteNoEscribible(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "ventas.csv")
	require.NoError(t, os.WriteFile(input, []byte(salesCSV), 0o644))
	reportPath := filepath.Join(dir, "no-existe", "reporte.pdf")

	_, err := buildPipeline(t, dir, input, reportPath).Run(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrRender)
	assert.NoFileExists(t, reportPath)
}

func TestPipeline_ColumnasFaltantesAbortaAntesDeGraficar(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "ventas.csv")
	require.NoError(t, os.WriteFile(input, []byte("product_sold,date\nZelda,2023-01-05\n"), 0o644))

	_, err := buildPipeline(t, dir, input, filepath.Join(dir, "reporte.pdf")).Run(context.Background())
	require.ErrorIs(t, err, domain.ErrMissingColumns)
	assert.NoDirExists(t, filepath.Join(dir, "output"))
}

// ── Orden de etapas con dobles ────────────────────────────────────────────────

type stubRepo struct{ table *entity.SalesTable }

func (s stubRepo) Load(context.Context) (*entity.SalesTable, error) { return s.table, nil }

type mockStage struct{ mock.Mock }

func (m *mockStage) Generate(ctx context.Context, table *entity.SalesTable) (*dto.ChartFiles, error) {
	args := m.Called(ctx, table)
	files, _ := args.Get(0).(*dto.ChartFiles)
	return files, args.Error(1)
}

type mockRenderer struct{ mock.Mock }

func (m *mockRenderer) Render(ctx context.Context, runID string, set *dto.InsightSet, files *dto.ChartFiles) (string, error) {
	args := m.Called(ctx, runID, set, files)
	return args.String(0), args.Error(1)
}

func TestPipeline_FalloEnGraficosNoRenderizaDocumento(t *testing.T) {
	table := &entity.SalesTable{Sales: sampleSales()}
	chartsStage := new(mockStage)
	chartsStage.On("Generate", mock.Anything, table).Return(nil, errors.New("sin fuentes"))
	doc := new(mockRenderer)

	p := report.NewPipeline(stubRepo{table}, insights.NewUseCase(logger.Nop()), chartsStage, doc, logger.Nop())
	_, err := p.Run(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "sin fuentes")
	doc.AssertNotCalled(t, "Render", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func sampleSales() []*entity.Sale {
	date := time.Date(2023, time.January, 5, 0, 0, 0, 0, time.UTC)
	return []*entity.Sale{
		entity.NewSale("Zelda", date, 2, decimal.NewFromInt(120), "BRL", "loja.com", decimal.Zero, "Brazil"),
		entity.NewSale("Mario", date, 1, decimal.NewFromInt(80), "BRL", "app", decimal.Zero, "Portugal"),
	}
}
