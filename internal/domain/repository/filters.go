package repository

import (
	"time"

	"github.com/shopspring/decimal"
)

// Filtros por entidad para los listados. Campos en cero/nil se ignoran.
// Contrato fijado aquí: *Icontains es coincidencia parcial sin distinguir mayúsculas,
// *Gte/*Lte son rangos inclusivos, PhonePattern es coincidencia de prefijo.

// CustomerFilter predicados para listar clientes.
type CustomerFilter struct {
	NameIcontains  string
	EmailIcontains string
	CreatedAtGte   *time.Time
	CreatedAtLte   *time.Time
	PhonePattern   string
}

// ProductFilter predicados para listar productos.
type ProductFilter struct {
	NameIcontains string
	PriceGte      *decimal.Decimal
	PriceLte      *decimal.Decimal
	StockGte      *int
	StockLte      *int
}

// OrderFilter predicados para listar órdenes. CustomerName y ProductName filtran por
// las entidades relacionadas; ProductID por pertenencia en order_products.
type OrderFilter struct {
	TotalAmountGte *decimal.Decimal
	TotalAmountLte *decimal.Decimal
	OrderDateGte   *time.Time
	OrderDateLte   *time.Time
	CustomerName   string
	ProductName    string
	ProductID      string
}
