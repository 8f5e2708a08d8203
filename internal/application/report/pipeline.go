package report

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/meganium-report/internal/application/dto"
	"github.com/jhoicas/meganium-report/internal/domain/repository"
	"github.com/jhoicas/meganium-report/pkg/logger"
)

// RunResult salida de una corrida completa.
type RunResult struct {
	RunID      string
	Insights   *dto.InsightSet
	Charts     *dto.ChartFiles
	ReportPath string
	Rows       int
	Dropped    int
}

// Pipeline ejecuta las cuatro etapas una sola vez y en orden fijo:
//  1. Carga de la tabla       (repository.SalesRepository)
//  2. Insights                 (InsightGenerator)
//  3. Gráficos                 (ChartGenerator)
//  4. Documento PDF            (DocumentRenderer)
//
// Sin reintentos: el primer error aborta la corrida y se devuelve tal cual.
type Pipeline struct {
	sales    repository.SalesRepository
	insights InsightGenerator
	charts   ChartGenerator
	document DocumentRenderer
	log      *logger.Logger
}

// NewPipeline construye el orquestador.
func NewPipeline(
	sales repository.SalesRepository,
	insights InsightGenerator,
	charts ChartGenerator,
	document DocumentRenderer,
	log *logger.Logger,
) *Pipeline {
	return &Pipeline{sales: sales, insights: insights, charts: charts, document: document, log: log}
}

// Run ejecuta la corrida completa.
func (p *Pipeline) Run(ctx context.Context) (*RunResult, error) {
	res := &RunResult{RunID: uuid.NewString()}
	log := p.log.Child(p.log.With().Str("run_id", res.RunID))
	start := time.Now()

	log.Info().Msg("Iniciando análisis de ventas")

	// ── 1. Cargar tabla ───────────────────────────────────────────────────────
	table, err := p.sales.Load(ctx)
	if err != nil {
		log.Error().Err(err).Msg("Error al cargar datos")
		return nil, fmt.Errorf("pipeline: cargar datos: %w", err)
	}
	res.Rows, res.Dropped = table.Len(), table.DroppedDates

	// ── 2. Insights ───────────────────────────────────────────────────────────
	res.Insights, err = p.insights.Generate(ctx, table)
	if err != nil {
		log.Error().Err(err).Msg("Error al generar insights")
		return nil, fmt.Errorf("pipeline: insights: %w", err)
	}

	// ── 3. Gráficos ───────────────────────────────────────────────────────────
	res.Charts, err = p.charts.Generate(ctx, table)
	if err != nil {
		return nil, fmt.Errorf("pipeline: visualizaciones: %w", err)
	}

	// ── 4. Documento ──────────────────────────────────────────────────────────
	res.ReportPath, err = p.document.Render(ctx, res.RunID, res.Insights, res.Charts)
	if err != nil {
		return nil, fmt.Errorf("pipeline: reporte: %w", err)
	}

	log.Info().
		Str("report", res.ReportPath).
		Dur("elapsed", time.Since(start)).
		Msg("Análisis concluido con éxito")
	return res, nil
}
