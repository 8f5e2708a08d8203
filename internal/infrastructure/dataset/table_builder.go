// Package dataset implementa repository.SalesRepository sobre archivos locales.
//
// Ambos lectores (CSV y XLSX) comparten tableBuilder: mapeo de cabecera,
// validación de columnas obligatorias, parseo de fecha y campos numéricos, y
// descarte de filas con fecha inválida. No se hace otra limpieza.
package dataset

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/araddon/dateparse"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"github.com/jhoicas/meganium-report/internal/domain"
	"github.com/jhoicas/meganium-report/internal/domain/entity"
	"github.com/jhoicas/meganium-report/pkg/logger"
)

const maxExcelSerial = 2958465 // 9999-12-31

var (
	maxQuantity = decimal.NewFromInt(math.MaxInt64)
	minQuantity = decimal.NewFromInt(math.MinInt64)
)

// tableBuilder acumula filas de una fuente tabular ya abierta.
type tableBuilder struct {
	source string
	index  map[string]int
	log    *logger.Logger
	table  *entity.SalesTable

	// excelSerials acepta fechas como número de serie de Excel (celdas sin formato en XLSX).
	excelSerials bool
}

// newTableBuilder valida la cabecera; falla con *domain.MissingColumnsError si falta alguna obligatoria.
func newTableBuilder(source string, header []string, log *logger.Logger) (*tableBuilder, error) {
	index := make(map[string]int, len(header))
	for i, h := range header {
		h = strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))
		if _, dup := index[h]; !dup {
			index[h] = i
		}
	}

	var missing []string
	for _, col := range entity.RequiredColumns {
		if _, ok := index[col]; !ok {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return nil, &domain.MissingColumnsError{Columns: missing}
	}

	return &tableBuilder{
		source: source,
		index:  index,
		log:    log,
		table:  &entity.SalesTable{Source: source},
	}, nil
}

// add parsea un registro. line es el número de fila en la fuente (1 = cabecera).
func (b *tableBuilder) add(line int, rec []string) error {
	b.table.RowsRead++

	date, ok := parseDate(b.cell(rec, entity.ColDate), b.excelSerials)
	if !ok {
		b.table.DroppedDates++
		b.log.Debug().Int("line", line).Str("value", b.cell(rec, entity.ColDate)).Msg("fecha inválida, fila descartada")
		return nil
	}

	qty, err := b.quantity(line, rec)
	if err != nil {
		return err
	}
	total, err := b.amount(line, rec, entity.ColPrice, false)
	if err != nil {
		return err
	}
	discount, err := b.amount(line, rec, entity.ColDiscount, true)
	if err != nil {
		return err
	}

	b.table.Sales = append(b.table.Sales, entity.NewSale(
		b.cell(rec, entity.ColProduct),
		date,
		qty,
		total,
		b.cell(rec, entity.ColCurrency),
		b.cell(rec, entity.ColSite),
		discount,
		b.cell(rec, entity.ColCountry),
	))
	return nil
}

// finish registra el resumen de la carga y devuelve la tabla.
func (b *tableBuilder) finish() *entity.SalesTable {
	if b.table.DroppedDates > 0 {
		b.log.Warn().
			Int("dropped", b.table.DroppedDates).
			Str("source", b.source).
			Msgf("Removiendo %d registros con fechas inválidas", b.table.DroppedDates)
	}
	b.log.Info().
		Int("rows", b.table.Len()).
		Int("rows_read", b.table.RowsRead).
		Msgf("Datos cargados con éxito. Total de registros: %d", b.table.Len())
	return b.table
}

func (b *tableBuilder) cell(rec []string, col string) string {
	i := b.index[col]
	if i >= len(rec) {
		return ""
	}
	return strings.TrimSpace(rec[i])
}

func (b *tableBuilder) quantity(line int, rec []string) (int64, error) {
	raw := b.cell(rec, entity.ColQuantity)
	d, err := decimal.NewFromString(raw)
	if err != nil || !d.Equal(d.Truncate(0)) {
		return 0, fmt.Errorf("%w: fila %d, columna %s: %q no es un entero",
			domain.ErrInvalidInput, line, entity.ColQuantity, raw)
	}
	if d.GreaterThan(maxQuantity) || d.LessThan(minQuantity) {
		return 0, fmt.Errorf("%w: fila %d, columna %s: %q fuera de rango",
			domain.ErrInvalidInput, line, entity.ColQuantity, raw)
	}
	return d.IntPart(), nil
}

// amount parsea un monto; si optional, la celda vacía vale cero.
func (b *tableBuilder) amount(line int, rec []string, col string, optional bool) (decimal.Decimal, error) {
	raw := b.cell(rec, col)
	if raw == "" && optional {
		return decimal.Zero, nil
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: fila %d, columna %s: %q no es numérico",
			domain.ErrInvalidInput, line, col, raw)
	}
	return d, nil
}

// parseDate acepta los formatos habituales (ISO, con hora, mm/dd/yyyy) y,
// si excelSerials, números de serie de Excel.
func parseDate(raw string, excelSerials bool) (time.Time, bool) {
	if raw == "" {
		return time.Time{}, false
	}
	if excelSerials {
		if serial, err := strconv.ParseFloat(raw, 64); err == nil {
			if serial <= 0 || serial > maxExcelSerial {
				return time.Time{}, false
			}
			t, err := excelize.ExcelDateToTime(serial, false)
			return t, err == nil
		}
	}
	t, err := dateparse.ParseIn(raw, time.UTC)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// checkContext corta la lectura si el contexto fue cancelado.
func checkContext(ctx context.Context, line int) error {
	if line%1024 != 0 {
		return nil
	}
	return ctx.Err()
}
