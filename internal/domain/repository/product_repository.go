package repository

import (
	"context"

	"github.com/bella-247/alx-backend-graphql-crm/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia para Product.
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	List(ctx context.Context, filter ProductFilter, orderBy []string) ([]*entity.Product, error)
	// ListBelowStock devuelve los productos con stock estrictamente menor al umbral,
	// bloqueados para actualización (FOR UPDATE) si se ejecuta dentro de una tx.
	ListBelowStock(ctx context.Context, threshold int) ([]*entity.Product, error)
	UpdateStock(ctx context.Context, id string, stock int) error
}
