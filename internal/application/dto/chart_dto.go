package dto

// ChartBar barra del ranking de productos.
type ChartBar struct {
	Label string
	Value float64
}

// ChartSlice porción del gráfico de torta; Percent sobre el total graficado.
type ChartSlice struct {
	Label   string
	Value   float64
	Percent float64
}

// ChartPoint punto de la serie temporal (X = mes 1–12).
type ChartPoint struct {
	X float64
	Y float64
}

// BarChartSpec gráfico de barras horizontales; Bars en orden descendente.
type BarChartSpec struct {
	Title  string
	XLabel string
	Bars   []ChartBar
}

// PieChartSpec gráfico de torta con porcentajes.
type PieChartSpec struct {
	Title  string
	Slices []ChartSlice
}

// LineChartSpec serie temporal con marcadores.
type LineChartSpec struct {
	Title  string
	XLabel string
	YLabel string
	Points []ChartPoint
}

// ChartFiles rutas de las tres imágenes generadas.
type ChartFiles struct {
	TopProducts    string
	CountryShare   string
	MonthlyRevenue string
}

// Sections pares título/imagen en el orden del reporte.
func (f ChartFiles) Sections() []ReportImage {
	return []ReportImage{
		{Caption: TitleTopProducts, Path: f.TopProducts},
		{Caption: CaptionCountryShare, Path: f.CountryShare},
		{Caption: TitleMonthlyRevenue, Path: f.MonthlyRevenue},
	}
}

// Títulos de los gráficos. Barras y línea reutilizan el título como leyenda en el PDF.
const (
	TitleTopProducts    = "Top 10 Productos Más Vendidos"
	TitleCountryShare   = "Distribución de Ventas por País (Top 5)"
	TitleMonthlyRevenue = "Ventas Mensuales"

	// CaptionCountryShare leyenda de la página de la torta; el recorte Top 5 ya figura en el gráfico.
	CaptionCountryShare = "Distribución de Ventas por País"
)
