package repository

import (
	"context"

	"github.com/bella-247/alx-backend-graphql-crm/internal/domain/entity"
)

// OrderRepository define el puerto de persistencia para Order.
// Create persiste la cabecera y las filas de asociación order_products.
type OrderRepository interface {
	Create(ctx context.Context, order *entity.Order, productIDs []string) error
	GetByID(ctx context.Context, id string) (*entity.Order, error)
	List(ctx context.Context, filter OrderFilter, orderBy []string) ([]*entity.Order, error)
	// ListProducts devuelve los productos asociados a una orden.
	ListProducts(ctx context.Context, orderID string) ([]*entity.Product, error)
}
