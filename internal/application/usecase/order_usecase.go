package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/bella-247/alx-backend-graphql-crm/internal/application/dto"
	"github.com/bella-247/alx-backend-graphql-crm/internal/domain"
	"github.com/bella-247/alx-backend-graphql-crm/internal/domain/entity"
	"github.com/bella-247/alx-backend-graphql-crm/internal/domain/repository"
)

// OrderUseCase casos de uso para órdenes: creación transaccional y listado.
type OrderUseCase struct {
	repo     repository.OrderRepository
	txRunner TxRunner
}

// NewOrderUseCase construye el caso de uso.
func NewOrderUseCase(repo repository.OrderRepository, txRunner TxRunner) *OrderUseCase {
	return &OrderUseCase{repo: repo, txRunner: txRunner}
}

// Create crea una orden. Los IDs repetidos colapsan (semántica de conjunto), los
// restantes se resuelven en el orden recibido deteniéndose en el primero inexistente.
// TotalAmount es la suma decimal de los precios resueltos, evaluada una sola vez
// dentro de la transacción. OrderDate por defecto es ahora.
func (uc *OrderUseCase) Create(ctx context.Context, in dto.CreateOrderInput) (*entity.Order, error) {
	if len(in.ProductIDs) == 0 {
		return nil, domain.ErrEmptyProductList
	}
	seen := make(map[string]bool, len(in.ProductIDs))
	productIDs := make([]string, 0, len(in.ProductIDs))
	for _, pid := range in.ProductIDs {
		if !seen[pid] {
			seen[pid] = true
			productIDs = append(productIDs, pid)
		}
	}

	var order *entity.Order
	err := uc.txRunner.Run(ctx, func(
		customers repository.CustomerRepository,
		products repository.ProductRepository,
		orders repository.OrderRepository,
	) error {
		customer, err := customers.GetByID(ctx, in.CustomerID)
		if err != nil {
			return err
		}
		if customer == nil {
			return domain.ErrCustomerNotFound
		}

		total := decimal.Zero
		for _, pid := range productIDs {
			product, err := products.GetByID(ctx, pid)
			if err != nil {
				return err
			}
			if product == nil {
				return fmt.Errorf("%w: %s", domain.ErrProductNotFound, pid)
			}
			total = total.Add(product.Price)
		}

		now := time.Now()
		orderDate := now
		if in.OrderDate != nil {
			orderDate = *in.OrderDate
		}
		order = &entity.Order{
			ID:          uuid.New().String(),
			CustomerID:  customer.ID,
			TotalAmount: total,
			OrderDate:   orderDate,
			CreatedAt:   now,
		}
		return orders.Create(ctx, order, productIDs)
	})
	if err != nil {
		return nil, err
	}
	return order, nil
}

// List lista órdenes con filtro y ordenamiento opcionales.
func (uc *OrderUseCase) List(ctx context.Context, filter repository.OrderFilter, orderBy []string) ([]*entity.Order, error) {
	return uc.repo.List(ctx, filter, orderBy)
}

// ListProducts devuelve los productos asociados a una orden (resolución perezosa del campo anidado).
func (uc *OrderUseCase) ListProducts(ctx context.Context, orderID string) ([]*entity.Product, error) {
	return uc.repo.ListProducts(ctx, orderID)
}
