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

// ProductUseCase casos de uso para productos: creación, listado y reposición de stock bajo.
type ProductUseCase struct {
	repo     repository.ProductRepository
	txRunner TxRunner
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository, txRunner TxRunner) *ProductUseCase {
	return &ProductUseCase{repo: repo, txRunner: txRunner}
}

// Create crea un producto. Price debe ser > 0 y Stock >= 0 (Stock por defecto 0).
func (uc *ProductUseCase) Create(ctx context.Context, in dto.CreateProductInput) (*entity.Product, error) {
	if !in.Price.GreaterThan(decimal.Zero) {
		return nil, domain.ErrInvalidPrice
	}
	if in.Stock < 0 {
		return nil, domain.ErrInvalidStock
	}
	now := time.Now()
	product := &entity.Product{
		ID:        uuid.New().String(),
		Name:      in.Name,
		Price:     in.Price,
		Stock:     in.Stock,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

// GetByID obtiene un producto por ID. Devuelve (nil, nil) si no existe.
func (uc *ProductUseCase) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	return uc.repo.GetByID(ctx, id)
}

// List lista productos con filtro y ordenamiento opcionales.
func (uc *ProductUseCase) List(ctx context.Context, filter repository.ProductFilter, orderBy []string) ([]*entity.Product, error) {
	return uc.repo.List(ctx, filter, orderBy)
}

// UpdateLowStock repone los productos con stock < threshold sumando restockBy a cada
// uno, todo dentro de una transacción. El umbral no tiene valor por defecto: viene
// siempre explícito del llamador.
func (uc *ProductUseCase) UpdateLowStock(ctx context.Context, threshold, restockBy int) ([]*entity.Product, error) {
	if threshold <= 0 || restockBy <= 0 {
		return nil, fmt.Errorf("threshold and restock amount must be positive (got %d, %d)", threshold, restockBy)
	}
	var updated []*entity.Product
	err := uc.txRunner.Run(ctx, func(
		_ repository.CustomerRepository,
		products repository.ProductRepository,
		_ repository.OrderRepository,
	) error {
		low, err := products.ListBelowStock(ctx, threshold)
		if err != nil {
			return err
		}
		for _, p := range low {
			p.Stock += restockBy
			p.UpdatedAt = time.Now()
			if err := products.UpdateStock(ctx, p.ID, p.Stock); err != nil {
				return err
			}
			updated = append(updated, p)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}
