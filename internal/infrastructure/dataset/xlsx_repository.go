package dataset

import (
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/jhoicas/meganium-report/internal/domain"
	"github.com/jhoicas/meganium-report/internal/domain/entity"
	"github.com/jhoicas/meganium-report/pkg/logger"
)

// XLSXSalesRepository lee la tabla de ventas desde una hoja de un libro Excel.
// La primera fila de la hoja es la cabecera.
type XLSXSalesRepository struct {
	path  string
	sheet string
	log   *logger.Logger
}

// NewXLSXSalesRepository construye el lector; sheet vacío = primera hoja del libro.
func NewXLSXSalesRepository(path, sheet string, log *logger.Logger) *XLSXSalesRepository {
	return &XLSXSalesRepository{path: path, sheet: sheet, log: log}
}

// rawCells lee el valor almacenado y no el texto con formato de visualización:
// una celda fecha llega como número de serie y un monto "#,##0.00" sin separadores.
var rawCells = excelize.Options{RawCellValue: true}

// Load recorre la hoja en streaming con excelize.Rows.
func (r *XLSXSalesRepository) Load(ctx context.Context) (*entity.SalesTable, error) {
	r.log.Info().Str("path", r.path).Msg("Cargando datos del libro XLSX...")

	f, err := excelize.OpenFile(r.path)
	if err != nil {
		return nil, fmt.Errorf("dataset: abrir xlsx: %w", err)
	}
	defer f.Close()

	sheet := r.sheet
	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, fmt.Errorf("%w: %s no tiene hojas", domain.ErrInvalidInput, r.path)
		}
		sheet = sheets[0]
	}

	rows, err := f.Rows(sheet)
	if err != nil {
		return nil, fmt.Errorf("dataset: hoja %q: %w", sheet, err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Error(); err != nil {
			return nil, fmt.Errorf("dataset: leer cabecera: %w", err)
		}
		return nil, fmt.Errorf("%w: la hoja %q está vacía", domain.ErrInvalidInput, sheet)
	}
	header, err := rows.Columns(rawCells)
	if err != nil {
		return nil, fmt.Errorf("dataset: leer cabecera: %w", err)
	}

	b, err := newTableBuilder(r.path, header, r.log)
	if err != nil {
		return nil, err
	}
	b.excelSerials = true

	r.log.Info().Str("sheet", sheet).Msg("Convirtiendo datos de fecha...")
	for line := 2; rows.Next(); line++ {
		if err := checkContext(ctx, line); err != nil {
			return nil, err
		}
		rec, err := rows.Columns(rawCells)
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
	if err := rows.Error(); err != nil {
		return nil, fmt.Errorf("dataset: recorrer hoja %q: %w", sheet, err)
	}
	return b.finish(), nil
}
