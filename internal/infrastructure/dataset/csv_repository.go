package dataset

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/jhoicas/meganium-report/internal/domain"
	"github.com/jhoicas/meganium-report/internal/domain/entity"
	"github.com/jhoicas/meganium-report/pkg/logger"
)

// CSVSalesRepository lee la tabla de ventas desde un archivo delimitado.
type CSVSalesRepository struct {
	path      string
	delimiter rune
	log       *logger.Logger
}

// NewCSVSalesRepository construye el lector; delimiter 0 equivale a ','.
func NewCSVSalesRepository(path string, delimiter rune, log *logger.Logger) *CSVSalesRepository {
	if delimiter == 0 {
		delimiter = ','
	}
	return &CSVSalesRepository{path: path, delimiter: delimiter, log: log}
}

// Load abre el archivo, valida la cabecera y parsea cada fila.
func (r *CSVSalesRepository) Load(ctx context.Context) (*entity.SalesTable, error) {
	r.log.Info().Str("path", r.path).Msg("Cargando datos del archivo CSV...")

	f, err := os.Open(r.path)
	if err != nil {
		return nil, fmt.Errorf("dataset: abrir csv: %w", err)
	}
	defer f.Close()

	return r.read(ctx, f)
}

func (r *CSVSalesRepository) read(ctx context.Context, in io.Reader) (*entity.SalesTable, error) {
	cr := csv.NewReader(in)
	cr.Comma = r.delimiter
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: %s está vacío", domain.ErrInvalidInput, r.path)
	}
	if err != nil {
		return nil, fmt.Errorf("dataset: leer cabecera: %w", err)
	}

	b, err := newTableBuilder(r.path, header, r.log)
	if err != nil {
		return nil, err
	}

	r.log.Info().Msg("Convirtiendo datos de fecha...")
	for line := 2; ; line++ {
		if err := checkContext(ctx, line); err != nil {
			return nil, err
		}
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("dataset: leer fila %d: %w", line, err)
		}
		if isBlank(rec) {
			continue
		}
		if err := b.add(line, rec); err != nil {
			return nil, err
		}
	}
	return b.finish(), nil
}

func isBlank(rec []string) bool {
	for _, v := range rec {
		if v != "" {
			return false
		}
	}
	return true
}
