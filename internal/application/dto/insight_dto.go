package dto

import (
	"strconv"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Etiquetas de los diez insights, en el orden en que se reportan.
const (
	LabelTopProduct    = "Producto más vendido"
	LabelTotalQuantity = "Cantidad total vendida"
	LabelTotalRevenue  = "Ingresos totales"
	LabelAverageTicket = "Ticket promedio"
	LabelTotalDiscount = "Total de descuentos"
	LabelTopCountry    = "País con más ventas"
	LabelTopSite       = "Sitio con más ventas"
	LabelBestMonth     = "Mes con más ventas"
	LabelBestWeekday   = "Día de la semana con más ventas"
	LabelBestYear      = "Año con más ventas"
)

// numbers separadores de miles con coma y punto decimal (1,234.56).
var numbers = message.NewPrinter(language.English)

// InsightItem par etiqueta/valor ya formateado para mostrar.
type InsightItem struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// InsightSet resumen fijo de la tabla de ventas.
// Los campos conservan el valor crudo; Items() los formatea.
type InsightSet struct {
	TopProduct    string          `json:"top_product"`
	TotalQuantity int64           `json:"total_quantity"`
	TotalRevenue  decimal.Decimal `json:"total_revenue"`
	AverageTicket decimal.Decimal `json:"average_ticket"` // TotalRevenue / filas
	TotalDiscount decimal.Decimal `json:"total_discount"`
	Currency      string          `json:"currency"` // moneda de la primera fila
	TopCountry    string          `json:"top_country"`
	TopSite       string          `json:"top_site"`
	BestMonth     int             `json:"best_month"` // 1–12
	BestWeekday   string          `json:"best_weekday"`
	BestYear      int             `json:"best_year"`
}

// Items devuelve los diez insights en orden fijo.
func (s *InsightSet) Items() []InsightItem {
	return []InsightItem{
		{LabelTopProduct, s.TopProduct},
		{LabelTotalQuantity, numbers.Sprintf("%d unidades", s.TotalQuantity)},
		{LabelTotalRevenue, s.money(s.TotalRevenue)},
		{LabelAverageTicket, s.money(s.AverageTicket)},
		{LabelTotalDiscount, s.money(s.TotalDiscount)},
		{LabelTopCountry, s.TopCountry},
		{LabelTopSite, s.TopSite},
		{LabelBestMonth, strconv.Itoa(s.BestMonth)},
		{LabelBestWeekday, s.BestWeekday},
		{LabelBestYear, strconv.Itoa(s.BestYear)},
	}
}

// money formatea un monto con dos decimales y el código de moneda: "1,234.56 BRL".
func (s *InsightSet) money(d decimal.Decimal) string {
	return numbers.Sprintf("%.2f %s", d.Round(2).InexactFloat64(), s.Currency)
}
