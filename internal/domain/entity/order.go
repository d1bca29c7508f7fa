package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order representa una orden de compra. TotalAmount se calcula una sola vez al crear
// (suma de los precios de los productos referenciados) y no se recalcula después.
// Los productos asociados viven en la tabla order_products y se resuelven bajo demanda.
type Order struct {
	ID          string
	CustomerID  string
	TotalAmount decimal.Decimal
	OrderDate   time.Time
	CreatedAt   time.Time
}
