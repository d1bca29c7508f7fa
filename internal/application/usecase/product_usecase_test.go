package usecase_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bella-247/alx-backend-graphql-crm/internal/application/dto"
	"github.com/bella-247/alx-backend-graphql-crm/internal/application/usecase"
	"github.com/bella-247/alx-backend-graphql-crm/internal/domain"
	"github.com/bella-247/alx-backend-graphql-crm/internal/domain/repository"
	"github.com/bella-247/alx-backend-graphql-crm/internal/infrastructure/memory"
)

func newProductUC() (*usecase.ProductUseCase, *memory.Store) {
	store := memory.NewStore()
	return usecase.NewProductUseCase(store.Products(), store), store
}

func mustCreateProduct(t *testing.T, uc *usecase.ProductUseCase, name string, price float64, stock int) {
	t.Helper()
	_, err := uc.Create(context.Background(), dto.CreateProductInput{
		Name:  name,
		Price: decimal.NewFromFloat(price),
		Stock: stock,
	})
	require.NoError(t, err)
}

// ──────────────────────────────────────────────────────────────────────────────
// Create: price > 0, stock >= 0
// ──────────────────────────────────────────────────────────────────────────────

func TestCreateProduct_ValidacionDePrecioYStock(t *testing.T) {
	cases := []struct {
		name    string
		price   float64
		stock   int
		wantErr error
	}{
		{"precio positivo minimo", 0.01, 0, nil},
		{"precio cero", 0, 0, domain.ErrInvalidPrice},
		{"precio negativo", -1, 0, domain.ErrInvalidPrice},
		{"stock cero", 9.99, 0, nil},
		{"stock negativo", 9.99, -1, domain.ErrInvalidStock},
		{"stock positivo", 9.99, 100, nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			uc, _ := newProductUC()
			product, err := uc.Create(context.Background(), dto.CreateProductInput{
				Name:  "Widget",
				Price: decimal.NewFromFloat(tc.price),
				Stock: tc.stock,
			})
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				assert.Nil(t, product)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, product)
			assert.Equal(t, tc.stock, product.Stock)
		})
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// UpdateLowStock
// ──────────────────────────────────────────────────────────────────────────────

func TestUpdateLowStock_ReponeSoloBajoElUmbral(t *testing.T) {
	uc, _ := newProductUC()
	ctx := context.Background()

	mustCreateProduct(t, uc, "Escaso", 10, 2)
	mustCreateProduct(t, uc, "Justo", 10, 10) // stock == umbral, no aplica
	mustCreateProduct(t, uc, "Sobrado", 10, 50)

	updated, err := uc.UpdateLowStock(ctx, 10, 10)
	require.NoError(t, err)
	require.Len(t, updated, 1)
	assert.Equal(t, "Escaso", updated[0].Name)
	assert.Equal(t, 12, updated[0].Stock)

	// El stock nuevo queda persistido
	ten := 10
	list, err := uc.List(ctx, repository.ProductFilter{StockLte: &ten}, nil)
	require.NoError(t, err)
	assert.Len(t, list, 1) // solo "Justo" sigue <= 10
}

func TestUpdateLowStock_SinProductosBajoUmbral(t *testing.T) {
	uc, _ := newProductUC()
	mustCreateProduct(t, uc, "Sobrado", 10, 50)

	updated, err := uc.UpdateLowStock(context.Background(), 10, 10)
	require.NoError(t, err)
	assert.Empty(t, updated)
}

// El umbral nunca tiene valor por defecto: parámetros no positivos se rechazan.
func TestUpdateLowStock_ParametrosInvalidos(t *testing.T) {
	uc, _ := newProductUC()

	_, err := uc.UpdateLowStock(context.Background(), 0, 10)
	assert.Error(t, err)

	_, err = uc.UpdateLowStock(context.Background(), 10, 0)
	assert.Error(t, err)
}

// ──────────────────────────────────────────────────────────────────────────────
// List: filtros y ordenamiento
// ──────────────────────────────────────────────────────────────────────────────

func TestListProducts_FiltroYOrden(t *testing.T) {
	uc, _ := newProductUC()
	ctx := context.Background()

	mustCreateProduct(t, uc, "Laptop", 999.99, 4)
	mustCreateProduct(t, uc, "Mouse", 19.99, 40)
	mustCreateProduct(t, uc, "Monitor", 249.99, 12)

	hundred := decimal.NewFromInt(100)
	list, err := uc.List(ctx, repository.ProductFilter{PriceGte: &hundred}, []string{"-price"})
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Laptop", list[0].Name)
	assert.Equal(t, "Monitor", list[1].Name)

	list, err = uc.List(ctx, repository.ProductFilter{NameIcontains: "mo"}, []string{"name"})
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Monitor", list[0].Name)
	assert.Equal(t, "Mouse", list[1].Name)
}
