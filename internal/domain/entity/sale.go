package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Columnas obligatorias de la tabla de ventas, en el orden en que se reportan si faltan.
const (
	ColProduct  = "product_sold"
	ColDate     = "date"
	ColQuantity = "quantity"
	ColPrice    = "total_price"
	ColCurrency = "currency"
	ColSite     = "site"
	ColDiscount = "discount_value"
	ColCountry  = "delivery_country"
)

// RequiredColumns lista las columnas que toda fuente debe traer.
var RequiredColumns = []string{
	ColProduct, ColDate, ColQuantity, ColPrice,
	ColCurrency, ColSite, ColDiscount, ColCountry,
}

// Sale representa una transacción de venta.
// Month, Year y Weekday se derivan de Date una sola vez al cargar.
type Sale struct {
	Product    string
	Date       time.Time
	Quantity   int64
	TotalPrice decimal.Decimal // monto total de la transacción
	Currency   string          // código ISO (BRL, USD...)
	Site       string
	Discount   decimal.Decimal
	Country    string // país de entrega

	Month   int // 1–12
	Year    int
	Weekday string // nombre en inglés: Monday, Tuesday...
}

// NewSale construye la venta y calcula los campos derivados.
func NewSale(product string, date time.Time, quantity int64, total decimal.Decimal,
	currency, site string, discount decimal.Decimal, country string) *Sale {
	return &Sale{
		Product:    product,
		Date:       date,
		Quantity:   quantity,
		TotalPrice: total,
		Currency:   currency,
		Site:       site,
		Discount:   discount,
		Country:    country,
		Month:      int(date.Month()),
		Year:       date.Year(),
		Weekday:    date.Weekday().String(),
	}
}

// SalesTable tabla en memoria; solo contiene filas con fecha válida.
type SalesTable struct {
	Sales        []*Sale
	RowsRead     int // filas de datos leídas de la fuente
	DroppedDates int // filas descartadas por fecha inválida
	Source       string
}

// Len número de filas utilizables.
func (t *SalesTable) Len() int {
	if t == nil {
		return 0
	}
	return len(t.Sales)
}
