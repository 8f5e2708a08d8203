// Package insights calcula el conjunto fijo de estadísticas descriptivas
// de la tabla de ventas.
package insights

import (
	"context"
	"fmt"
	"math"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/meganium-report/internal/application/dto"
	"github.com/jhoicas/meganium-report/internal/domain"
	"github.com/jhoicas/meganium-report/internal/domain/entity"
	"github.com/jhoicas/meganium-report/internal/domain/sales"
	"github.com/jhoicas/meganium-report/pkg/logger"
)

// UseCase genera el InsightSet. No modifica la tabla.
type UseCase struct {
	log *logger.Logger
}

// NewUseCase construye el caso de uso.
func NewUseCase(log *logger.Logger) *UseCase {
	return &UseCase{log: log}
}

// Generate calcula los diez insights. Falla con domain.ErrEmptyDataset si no hay filas.
//
// Desempates (ver package sales): la clave que aparece primero en la tabla.
func (uc *UseCase) Generate(ctx context.Context, table *entity.SalesTable) (*dto.InsightSet, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	uc.log.Info().Msg("Generando insights de los datos...")

	if table.Len() == 0 {
		return nil, fmt.Errorf("insights: %w", domain.ErrEmptyDataset)
	}
	rows := table.Sales

	qty, err := totalQuantity(rows)
	if err != nil {
		return nil, err
	}
	revenue := sales.Total(rows, sales.Revenue)

	set := &dto.InsightSet{
		TotalQuantity: qty,
		TotalRevenue:  revenue,
		AverageTicket: revenue.Div(decimal.NewFromInt(int64(len(rows)))),
		TotalDiscount: sales.Total(rows, sales.Discount),
		Currency:      rows[0].Currency,
	}
	set.TopProduct, _ = sales.MostFrequent(rows, sales.ByProduct)
	set.TopCountry, _ = sales.MostFrequent(rows, sales.ByCountry)
	set.TopSite, _ = sales.MostFrequent(rows, sales.BySite)
	set.BestMonth, _ = sales.HighestSum(sales.SumBy(rows, sales.ByMonth, sales.Revenue))
	set.BestWeekday, _ = sales.HighestSum(sales.SumBy(rows, sales.ByWeekday, sales.Revenue))
	set.BestYear, _ = sales.HighestSum(sales.SumBy(rows, sales.ByYear, sales.Revenue))

	uc.log.Info().
		Str("top_product", set.TopProduct).
		Str("total_revenue", set.TotalRevenue.StringFixed(2)).
		Msg("Insights generados con éxito")
	return set, nil
}

// totalQuantity suma las cantidades; falla si el total no cabe en int64.
func totalQuantity(rows []*entity.Sale) (int64, error) {
	var qty int64
	for _, r := range rows {
		if (r.Quantity > 0 && qty > math.MaxInt64-r.Quantity) ||
			(r.Quantity < 0 && qty < math.MinInt64-r.Quantity) {
			return 0, fmt.Errorf("insights: %w: la cantidad total excede el rango", domain.ErrInvalidInput)
		}
		qty += r.Quantity
	}
	return qty, nil
}
