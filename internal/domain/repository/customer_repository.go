package repository

import (
	"context"

	"github.com/bella-247/alx-backend-graphql-crm/internal/domain/entity"
)

// CustomerRepository define el puerto de persistencia para Customer.
// GetByID y GetByEmail devuelven (nil, nil) si no existe.
type CustomerRepository interface {
	Create(ctx context.Context, customer *entity.Customer) error
	GetByID(ctx context.Context, id string) (*entity.Customer, error)
	GetByEmail(ctx context.Context, email string) (*entity.Customer, error)
	List(ctx context.Context, filter CustomerFilter, orderBy []string) ([]*entity.Customer, error)
}
