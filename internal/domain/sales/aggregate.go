// Package sales contiene las agregaciones puras sobre la tabla de ventas
// (servicios de dominio sin dependencias de infraestructura).
//
// Desempate: en conteos o sumas iguales gana la clave que aparece primero
// en la tabla. TopN ordena por conteo descendente y, a igualdad, por orden
// de aparición.
//
// Los conteos (CountBy, MostFrequent, TopN) ignoran la clave vacía: una celda
// sin producto, país o sitio no compite por el primer lugar ni ocupa una barra.
package sales

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/meganium-report/internal/domain/entity"
)

// KeyCount conteo de filas por clave.
type KeyCount[K comparable] struct {
	Key   K
	Count int
}

// KeySum suma de un monto por clave.
type KeySum[K comparable] struct {
	Key K
	Sum decimal.Decimal
}

// CountBy cuenta filas por clave preservando el orden de primera aparición.
// Las filas con clave vacía (valor cero de K) no se cuentan.
func CountBy[K comparable](rows []*entity.Sale, key func(*entity.Sale) K) []KeyCount[K] {
	var zero K
	idx := make(map[K]int)
	var out []KeyCount[K]
	for _, r := range rows {
		k := key(r)
		if k == zero {
			continue
		}
		i, ok := idx[k]
		if !ok {
			i = len(out)
			idx[k] = i
			out = append(out, KeyCount[K]{Key: k})
		}
		out[i].Count++
	}
	return out
}

// SumBy suma un monto por clave preservando el orden de primera aparición.
func SumBy[K comparable](rows []*entity.Sale, key func(*entity.Sale) K, val func(*entity.Sale) decimal.Decimal) []KeySum[K] {
	idx := make(map[K]int)
	var out []KeySum[K]
	for _, r := range rows {
		k := key(r)
		i, ok := idx[k]
		if !ok {
			i = len(out)
			idx[k] = i
			out = append(out, KeySum[K]{Key: k, Sum: decimal.Zero})
		}
		out[i].Sum = out[i].Sum.Add(val(r))
	}
	return out
}

// MostFrequent devuelve la clave con más filas. ok=false si no hay filas con clave.
func MostFrequent[K comparable](rows []*entity.Sale, key func(*entity.Sale) K) (k K, ok bool) {
	best := -1
	for _, c := range CountBy(rows, key) {
		if c.Count > best {
			best = c.Count
			k = c.Key
			ok = true
		}
	}
	return k, ok
}

// HighestSum devuelve la clave con mayor suma. ok=false si no hay filas.
func HighestSum[K comparable](sums []KeySum[K]) (k K, ok bool) {
	var best decimal.Decimal
	for i, s := range sums {
		if i == 0 || s.Sum.GreaterThan(best) {
			best = s.Sum
			k = s.Key
			ok = true
		}
	}
	return k, ok
}

// TopN las n claves más frecuentes, conteo descendente.
func TopN[K comparable](rows []*entity.Sale, key func(*entity.Sale) K, n int) []KeyCount[K] {
	counts := CountBy(rows, key)
	sort.SliceStable(counts, func(i, j int) bool { return counts[i].Count > counts[j].Count })
	if n >= 0 && len(counts) > n {
		counts = counts[:n]
	}
	return counts
}

// Total suma un monto sobre todas las filas.
func Total(rows []*entity.Sale, val func(*entity.Sale) decimal.Decimal) decimal.Decimal {
	sum := decimal.Zero
	for _, r := range rows {
		sum = sum.Add(val(r))
	}
	return sum
}

// Campos de uso frecuente como selectores.

func ByProduct(s *entity.Sale) string         { return s.Product }
func ByCountry(s *entity.Sale) string         { return s.Country }
func BySite(s *entity.Sale) string            { return s.Site }
func ByMonth(s *entity.Sale) int              { return s.Month }
func ByYear(s *entity.Sale) int               { return s.Year }
func ByWeekday(s *entity.Sale) string         { return s.Weekday }
func Revenue(s *entity.Sale) decimal.Decimal  { return s.TotalPrice }
func Discount(s *entity.Sale) decimal.Decimal { return s.Discount }
