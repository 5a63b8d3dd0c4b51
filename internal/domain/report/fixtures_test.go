package report_test

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/reportes-ventas/internal/domain/entity"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

// scenarioSO001: un pedido de 10 unidades, total 500.00, con una entrega no cancelada que
// contiene un movimiento almacenable de 6 y un servicio de 1.
func scenarioSO001() entity.SaleOrder {
	return entity.SaleOrder{
		ID:           "1",
		Name:         "SO001",
		DateOrder:    time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC),
		CustomerName: "Acme SARL",
		AmountTotal:  dec("500.00"),
		State:        entity.SaleOrderStateSale,
		Lines: []entity.SaleOrderLine{
			{ID: "l1", ProductName: "Widget", ProductType: entity.ProductTypeStockable, Quantity: dec("10")},
		},
		Pickings: []entity.Picking{
			{
				ID: "p1", Name: "WH/OUT/00001", State: entity.PickingStateDone,
				Moves: []entity.StockMove{
					{ID: "m1", ProductName: "Widget", ProductType: entity.ProductTypeStockable, DeliveredQty: dec("6")},
					{ID: "m2", ProductName: "Installation", ProductType: entity.ProductTypeService, DeliveredQty: dec("1")},
				},
			},
		},
	}
}
