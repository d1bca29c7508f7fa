package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateCustomerInput datos para crear un cliente (individual o en lote).
type CreateCustomerInput struct {
	Name  string
	Email string
	Phone string // opcional
}

// CreateProductInput datos para crear un producto. Stock por defecto es 0.
type CreateProductInput struct {
	Name  string
	Price decimal.Decimal
	Stock int
}

// CreateOrderInput datos para crear una orden. OrderDate nil = ahora.
type CreateOrderInput struct {
	CustomerID string
	ProductIDs []string
	OrderDate  *time.Time
}
