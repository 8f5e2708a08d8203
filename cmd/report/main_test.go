package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const salesCSV = `product_sold,date,quantity,total_price,currency,site,discount_value,delivery_country
Zelda,2023-01-05,2,120.00,BRL,loja.com,10.00,Brazil
Mario,2023-02-11,1,80.00,BRL,app,0,Portugal
Zelda,2023-02-12,1,60.00,BRL,loja.com,5.00,Brazil
`

// setupEnv apunta toda la configuración a un directorio temporal.
func setupEnv(t *testing.T, input string) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("APP_ENV", "production")
	t.Setenv("LOG_FILE", filepath.Join(dir, "meganium_analysis.log"))
	t.Setenv("REPORT_INPUT_PATH", input)
	t.Setenv("REPORT_OUTPUT_DIR", filepath.Join(dir, "output"))
	t.Setenv("REPORT_OUTPUT_PATH", filepath.Join(dir, "Meganium_Sales_Report.pdf"))
	t.Setenv("REPORT_CHART_DPI", "60")
	return dir
}

func TestRun_Exito(t *testing.T) {
	input := filepath.Join(t.TempDir(), "ventas.csv")
	require.NoError(t, os.WriteFile(input, []byte(salesCSV), 0o644))
	dir := setupEnv(t, input)

	var out bytes.Buffer
	code := run(&out)

	require.Equal(t, 0, code, out.String())
	assert.Contains(t, out.String(), "=== RESUMEN DEL ANÁLISIS ===")
	assert.Contains(t, out.String(), "Producto más vendido: Zelda")
	assert.Contains(t, out.String(), "Ingresos totales: 260.00 BRL")
	assert.FileExists(t, filepath.Join(dir, "Meganium_Sales_Report.pdf"))
	assert.FileExists(t, filepath.Join(dir, "output", "vendas_mes.png"))
	assert.FileExists(t, filepath.Join(dir, "meganium_analysis.log"))
}

func TestRun_FallaReportadaSinPanico(t *testing.T) {
	dir := setupEnv(t, filepath.Join(t.TempDir(), "no-existe.csv"))

	var out bytes.Buffer
	code := run(&out)

	assert.Equal(t, 1, code)
	assert.Contains(t, out.String(), "Revise el archivo de log")
	assert.NoFileExists(t, filepath.Join(dir, "Meganium_Sales_Report.pdf"))

	logData, err := os.ReadFile(filepath.Join(dir, "meganium_analysis.log"))
	require.NoError(t, err)
	assert.Contains(t, string(logData), "Falla en la ejecución del análisis")
}
