package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrMissingColumns = errors.New("columnas obligatorias faltantes")
	ErrInvalidInput   = errors.New("entrada inválida")
	ErrEmptyDataset   = errors.New("la tabla de ventas no tiene registros válidos")
	ErrRender         = errors.New("error de renderizado")
)

// MissingColumnsError nombra exactamente las columnas obligatorias ausentes.
// errors.Is(err, ErrMissingColumns) es verdadero.
type MissingColumnsError struct {
	Columns []string
}

func (e *MissingColumnsError) Error() string {
	return fmt.Sprintf("%s: [%s]", ErrMissingColumns.Error(), strings.Join(e.Columns, ", "))
}

func (e *MissingColumnsError) Unwrap() error { return ErrMissingColumns }
