// Package report arma el documento final y orquesta el pipeline completo
// carga → insights → gráficos → PDF.
package report

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/meganium-report/internal/application/dto"
	"github.com/jhoicas/meganium-report/internal/domain"
	"github.com/jhoicas/meganium-report/pkg/logger"
)

// UseCase compone el ReportDocument y lo publica en outputPath.
type UseCase struct {
	generator  PDFGenerator
	store      DocumentStore
	outputPath string
	company    string
	log        *logger.Logger
	now        func() time.Time
}

// NewUseCase construye el caso de uso inyectando todas sus dependencias.
func NewUseCase(generator PDFGenerator, store DocumentStore, outputPath, company string, log *logger.Logger) *UseCase {
	return &UseCase{
		generator:  generator,
		store:      store,
		outputPath: outputPath,
		company:    company,
		log:        log,
		now:        time.Now,
	}
}

// WithClock fija la fecha de generación (tests).
func (uc *UseCase) WithClock(now func() time.Time) *UseCase {
	uc.now = now
	return uc
}

// Render genera el PDF y lo escribe en la ruta configurada.
// Retorna la ruta del documento; ante cualquier error no queda documento parcial.
func (uc *UseCase) Render(ctx context.Context, runID string, set *dto.InsightSet, files *dto.ChartFiles) (string, error) {
	uc.log.Info().Str("path", uc.outputPath).Msg("Generando reporte PDF...")

	doc := &dto.ReportDocument{
		RunID:       runID,
		Company:     uc.company,
		Title:       "Reporte Completo de Ventas",
		Subtitle:    uc.company + " - Análisis de Datos",
		GeneratedAt: uc.now(),
		Insights:    set.Items(),
		Images:      files.Sections(),
	}

	data, err := uc.generator.GenerateReportPDF(ctx, doc)
	if err != nil {
		return "", uc.fail(err)
	}
	if err := uc.store.WriteFile(ctx, uc.outputPath, data); err != nil {
		return "", uc.fail(err)
	}

	uc.log.Info().Str("path", uc.outputPath).Int("bytes", len(data)).Msg("Reporte PDF generado con éxito")
	return uc.outputPath, nil
}

func (uc *UseCase) fail(err error) error {
	uc.log.Error().Err(err).Msg("Error al generar PDF")
	return fmt.Errorf("%w: report: %w", domain.ErrRender, err)
}
