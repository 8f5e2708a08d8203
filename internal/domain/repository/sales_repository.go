package repository

import (
	"context"

	"github.com/jhoicas/meganium-report/internal/domain/entity"
)

// SalesRepository fuente de la tabla de ventas (CSV, XLSX).
// Load valida columnas, parsea fechas y descarta filas con fecha inválida.
type SalesRepository interface {
	Load(ctx context.Context) (*entity.SalesTable, error)
}
