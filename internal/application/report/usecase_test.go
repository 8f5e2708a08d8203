package report_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/meganium-report/internal/application/dto"
	"github.com/jhoicas/meganium-report/internal/application/report"
	"github.com/jhoicas/meganium-report/internal/domain"
	"github.com/jhoicas/meganium-report/internal/infrastructure/storage"
	"github.com/jhoicas/meganium-report/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

type mockPDF struct{ mock.Mock }

func (m *mockPDF) GenerateReportPDF(ctx context.Context, doc *dto.ReportDocument) ([]byte, error) {
	args := m.Called(ctx, doc)
	data, _ := args.Get(0).([]byte)
	return data, args.Error(1)
}

func insightSet() *dto.InsightSet {
	return &dto.InsightSet{
		TopProduct:    "A",
		TotalQuantity: 3,
		TotalRevenue:  decimal.NewFromInt(35),
		AverageTicket: decimal.RequireFromString("11.6666666666666667"),
		TotalDiscount: decimal.Zero,
		Currency:      "BRL",
		TopCountry:    "US",
		TopSite:       "web",
		BestMonth:     1,
		BestWeekday:   "Monday",
		BestYear:      2023,
	}
}

func chartFiles(dir string) *dto.ChartFiles {
	return &dto.ChartFiles{
		TopProducts:    filepath.Join(dir, "top_produtos.png"),
		CountryShare:   filepath.Join(dir, "vendas_paises.png"),
		MonthlyRevenue: filepath.Join(dir, "vendas_mes.png"),
	}
}

var fixedNow = time.Date(2026, time.October, 17, 9, 0, 0, 0, time.UTC)

// ── Render ────────────────────────────────────────────────────────────────────

func TestRender_ComponeDocumentoYLoEscribe(t *testing.T) {
	out := filepath.Join(t.TempDir(), "Meganium_Sales_Report.pdf")
	gen := new(mockPDF)
	gen.On("GenerateReportPDF", mock.Anything, mock.MatchedBy(func(doc *dto.ReportDocument) bool {
		return doc.RunID == "run-1" &&
			doc.Company == "Meganium Games" &&
			doc.Subtitle == "Meganium Games - Análisis de Datos" &&
			doc.GeneratedAt.Equal(fixedNow) &&
			len(doc.Insights) == 10 &&
			len(doc.Images) == 3 &&
			doc.Images[0].Caption == dto.TitleTopProducts &&
			doc.Images[1].Caption == dto.CaptionCountryShare
	})).Return([]byte("%PDF-1.3 ok"), nil).Once()

	uc := report.NewUseCase(gen, storage.NewFileStore(), out, "Meganium Games", logger.Nop()).
		WithClock(func() time.Time { return fixedNow })

	path, err := uc.Render(context.Background(), "run-1", insightSet(), chartFiles(t.TempDir()))
	require.NoError(t, err)
	assert.Equal(t, out, path)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "%PDF-1.3 ok", string(data))
	gen.AssertExpectations(t)
}

func TestRender_FalloDelGeneradorNoDejaDocumento(t *testing.T) {
	out := filepath.Join(t.TempDir(), "reporte.pdf")
	gen := new(mockPDF)
	gen.On("GenerateReportPDF", mock.Anything, mock.Anything).Return(nil, errors.New("fuente corrupta"))

	uc := report.NewUseCase(gen, storage.NewFileStore(), out, "Meganium Games", logger.Nop())
	_, err := uc.Render(context.Background(), "run-1", insightSet(), chartFiles(t.TempDir()))

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrRender)
	assert.NoFileExists(t, out)
}

func TestRender_RutaNoEscribible(t *testing.T) {
	out := filepath.Join(t.TempDir(), "no-existe", "reporte.pdf")
	gen := new(mockPDF)
	gen.On("GenerateReportPDF", mock.Anything, mock.Anything).Return([]byte("%PDF"), nil)

	uc := report.NewUseCase(gen, storage.NewFileStore(), out, "Meganium Games", logger.Nop())
	_, err := uc.Render(context.Background(), "run-1", insightSet(), chartFiles(t.TempDir()))

	assert.ErrorIs(t, err, domain.ErrRender)
	assert.NoFileExists(t, out)
}
