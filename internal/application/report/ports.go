package report

import (
	"context"

	"github.com/jhoicas/meganium-report/internal/application/dto"
	"github.com/jhoicas/meganium-report/internal/domain/entity"
)

// PDFGenerator arma el documento completo en memoria.
type PDFGenerator interface {
	GenerateReportPDF(ctx context.Context, doc *dto.ReportDocument) ([]byte, error)
}

// DocumentStore publica el documento final; no debe dejar archivos parciales.
type DocumentStore interface {
	WriteFile(ctx context.Context, path string, data []byte) error
}

// Etapas del pipeline, implementadas por insights.UseCase, charts.UseCase y UseCase.

type InsightGenerator interface {
	Generate(ctx context.Context, table *entity.SalesTable) (*dto.InsightSet, error)
}

type ChartGenerator interface {
	Generate(ctx context.Context, table *entity.SalesTable) (*dto.ChartFiles, error)
}

type DocumentRenderer interface {
	Render(ctx context.Context, runID string, set *dto.InsightSet, files *dto.ChartFiles) (string, error)
}
