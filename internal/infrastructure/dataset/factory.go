package dataset

import (
	"path/filepath"
	"strings"

	"github.com/jhoicas/meganium-report/internal/domain/repository"
	"github.com/jhoicas/meganium-report/pkg/config"
	"github.com/jhoicas/meganium-report/pkg/logger"
)

// NewSalesRepository elige el lector según la extensión del archivo de entrada.
func NewSalesRepository(cfg config.InputConfig, log *logger.Logger) repository.SalesRepository {
	switch strings.ToLower(filepath.Ext(cfg.Path)) {
	case ".xlsx", ".xlsm":
		return NewXLSXSalesRepository(cfg.Path, cfg.Sheet, log)
	default:
		return NewCSVSalesRepository(cfg.Path, cfg.DelimiterRune(), log)
	}
}
