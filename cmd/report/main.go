package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/jhoicas/meganium-report/internal/application/charts"
	"github.com/jhoicas/meganium-report/internal/application/insights"
	"github.com/jhoicas/meganium-report/internal/application/report"
	infrachart "github.com/jhoicas/meganium-report/internal/infrastructure/chart"
	"github.com/jhoicas/meganium-report/internal/infrastructure/dataset"
	infrapdf "github.com/jhoicas/meganium-report/internal/infrastructure/pdf"
	"github.com/jhoicas/meganium-report/internal/infrastructure/storage"
	"github.com/jhoicas/meganium-report/pkg/config"
	"github.com/jhoicas/meganium-report/pkg/logger"
)

func main() {
	os.Exit(run(os.Stdout))
}

// run arma las dependencias, ejecuta el pipeline y devuelve el código de salida.
func run(stdout io.Writer) int {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error al cargar la configuración:", err)
		return 2
	}

	log, err := logger.New(logger.Config{
		Env:      cfg.App.Env,
		Level:    cfg.Log.Level,
		Name:     cfg.App.Name,
		FilePath: cfg.Log.File,
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error al abrir el archivo de log:", err)
		return 2
	}
	defer log.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store := storage.NewFileStore()
	pipeline := report.NewPipeline(
		dataset.NewSalesRepository(cfg.Input, log),
		insights.NewUseCase(log),
		charts.NewUseCase(infrachart.NewRenderer(cfg.Output.ChartDPI), store, cfg.Output.ChartDir, log),
		report.NewUseCase(infrapdf.NewMarotoReportGenerator(), store, cfg.Output.ReportPath, cfg.Output.Company, log),
		log,
	)

	res, err := pipeline.Run(ctx)
	if err != nil {
		log.Error().Err(err).Msg("Falla en la ejecución del análisis")
		fmt.Fprintf(stdout, "Ocurrió un error durante el análisis. Revise el archivo de log para más detalles: %s\n", cfg.Log.File)
		return 1
	}

	printSummary(stdout, res)
	return 0
}

// printSummary muestra el resumen en consola al final de la corrida.
func printSummary(w io.Writer, res *report.RunResult) {
	fmt.Fprintln(w, "\n=== RESUMEN DEL ANÁLISIS ===")
	for _, it := range res.Insights.Items() {
		fmt.Fprintf(w, "%s: %s\n", it.Label, it.Value)
	}
	fmt.Fprintf(w, "\nReporte completo generado en: %s\n", res.ReportPath)
}
