package logger_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/meganium-report/pkg/logger"
)

func TestNew_EscribeEnConsolaYArchivo(t *testing.T) {
	var console bytes.Buffer
	path := filepath.Join(t.TempDir(), "logs", "analysis.log")

	log, err := logger.New(logger.Config{
		Env:      "production",
		Level:    "info",
		Name:     "meganium_analysis",
		FilePath: path,
		Console:  &console,
	})
	require.NoError(t, err)

	log.Info().Int("rows", 3).Msg("datos cargados")
	log.Debug().Msg("no debe aparecer")
	require.NoError(t, log.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	assert.Contains(t, string(data), `"message":"datos cargados"`)
	assert.Contains(t, string(data), `"logger":"meganium_analysis"`)
	assert.NotContains(t, string(data), "no debe aparecer")
	assert.Equal(t, string(data), console.String(), "consola y archivo reciben las mismas entradas JSON")
}

func TestNew_DevelopmentConsolaLegible(t *testing.T) {
	var console bytes.Buffer
	log, err := logger.New(logger.Config{Env: "development", Console: &console})
	require.NoError(t, err)

	log.Warn().Int("dropped", 2).Msg("fechas inválidas")

	assert.Contains(t, console.String(), "fechas inválidas")
	assert.Contains(t, console.String(), "dropped=")
	assert.NoError(t, log.Close(), "sin archivo Close no falla")
}

func TestNew_ArchivoNoEscribible(t *testing.T) {
	dir := t.TempDir()
	_, err := logger.New(logger.Config{FilePath: dir}) // un directorio no se puede abrir como archivo
	assert.Error(t, err)
}
