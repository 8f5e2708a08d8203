package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// Config agrupa la configuración del reporte (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App    AppConfig
	Log    LogConfig
	Input  InputConfig
	Output OutputConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env  string `validate:"required"` // development, production
	Name string `validate:"required"`
}

// LogConfig destino y nivel del log (consola + archivo persistente).
type LogConfig struct {
	Level string `validate:"omitempty,oneof=trace debug info warn error"`
	File  string `validate:"required"`
}

// InputConfig tabla de ventas de entrada.
// La extensión decide el lector: .xlsx → excelize; cualquier otra → CSV.
type InputConfig struct {
	Path      string `validate:"required"`
	Sheet     string // solo para .xlsx; vacío = primera hoja
	Delimiter string `validate:"required,len=1"`
}

// OutputConfig artefactos generados por la corrida.
type OutputConfig struct {
	ChartDir   string  `validate:"required"`
	ReportPath string  `validate:"required"`
	Company    string  `validate:"required"`
	ChartDPI   float64 `validate:"gte=50,lte=600"`
}

// DelimiterRune devuelve el separador como rune para encoding/csv.
func (c InputConfig) DelimiterRune() rune {
	if c.Delimiter == "" {
		return ','
	}
	return []rune(c.Delimiter)[0]
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, LOG_FILE, REPORT_INPUT_PATH, etc.
func Load() (*Config, error) {
	v := viper.New()

	// Opcional: archivo de configuración (.env o config.env)
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.SetConfigName("config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig()

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	return fromViper(v)
}

// fromViper construye y valida la configuración a partir de una instancia de Viper ya poblada.
func fromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		App: AppConfig{
			Env:  getString(v, "APP_ENV", "development"),
			Name: getString(v, "APP_NAME", "meganium-report"),
		},
		Log: LogConfig{
			Level: strings.ToLower(getString(v, "LOG_LEVEL", "info")),
			File:  getString(v, "LOG_FILE", "meganium_analysis.log"),
		},
		Input: InputConfig{
			Path:      getString(v, "REPORT_INPUT_PATH", "data/Meganium_Sales_Data.csv"),
			Sheet:     getString(v, "REPORT_INPUT_SHEET", ""),
			Delimiter: getString(v, "REPORT_CSV_DELIMITER", ","),
		},
		Output: OutputConfig{
			ChartDir:   getString(v, "REPORT_OUTPUT_DIR", "output"),
			ReportPath: getString(v, "REPORT_OUTPUT_PATH", "Meganium_Sales_Report.pdf"),
			Company:    getString(v, "REPORT_COMPANY", "Meganium Games"),
			ChartDPI:   getFloat(v, "REPORT_CHART_DPI", 150),
		},
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("config: configuración inválida: %w", err)
	}
	return cfg, nil
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getFloat(v *viper.Viper, key string, def float64) float64 {
	if v.IsSet(key) {
		switch v.Get(key).(type) {
		case float64:
			return v.GetFloat64(key)
		case string:
			n, err := strconv.ParseFloat(strings.TrimSpace(v.GetString(key)), 64)
			if err != nil {
				return 0 // el validador lo rechaza
			}
			return n
		default:
			return v.GetFloat64(key)
		}
	}
	return def
}
