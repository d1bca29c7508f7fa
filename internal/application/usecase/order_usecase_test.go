package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bella-247/alx-backend-graphql-crm/internal/application/dto"
	"github.com/bella-247/alx-backend-graphql-crm/internal/application/usecase"
	"github.com/bella-247/alx-backend-graphql-crm/internal/domain"
	"github.com/bella-247/alx-backend-graphql-crm/internal/domain/entity"
	"github.com/bella-247/alx-backend-graphql-crm/internal/domain/repository"
	"github.com/bella-247/alx-backend-graphql-crm/internal/infrastructure/memory"
)

// fixture con un cliente y dos productos ya persistidos.
func newOrderFixture(t *testing.T) (*usecase.OrderUseCase, *memory.Store, *entity.Customer, *entity.Product, *entity.Product) {
	t.Helper()
	store := memory.NewStore()
	ctx := context.Background()

	customerUC := usecase.NewCustomerUseCase(store.Customers(), store)
	customer, err := customerUC.Create(ctx, dto.CreateCustomerInput{Name: "Alice", Email: "alice@example.com"})
	require.NoError(t, err)

	productUC := usecase.NewProductUseCase(store.Products(), store)
	p1, err := productUC.Create(ctx, dto.CreateProductInput{Name: "P1", Price: decimal.NewFromInt(10), Stock: 5})
	require.NoError(t, err)
	p2, err := productUC.Create(ctx, dto.CreateProductInput{Name: "P2", Price: decimal.NewFromInt(5), Stock: 5})
	require.NoError(t, err)

	return usecase.NewOrderUseCase(store.Orders(), store), store, customer, p1, p2
}

// total_amount == suma de los precios resueltos: [P1(10), P2(5)] -> 15.
func TestCreateOrder_TotalEsSumaDePrecios(t *testing.T) {
	uc, _, customer, p1, p2 := newOrderFixture(t)

	order, err := uc.Create(context.Background(), dto.CreateOrderInput{
		CustomerID: customer.ID,
		ProductIDs: []string{p1.ID, p2.ID},
	})
	require.NoError(t, err)
	require.NotNil(t, order)
	assert.True(t, order.TotalAmount.Equal(decimal.NewFromInt(15)),
		"total esperado 15, obtenido %s", order.TotalAmount)
	assert.Equal(t, customer.ID, order.CustomerID)
	assert.False(t, order.OrderDate.IsZero())
}

// Lista vacía de productos: siempre ErrEmptyProductList y ninguna orden persistida.
func TestCreateOrder_ListaVacia(t *testing.T) {
	uc, _, customer, _, _ := newOrderFixture(t)
	ctx := context.Background()

	order, err := uc.Create(ctx, dto.CreateOrderInput{CustomerID: customer.ID, ProductIDs: nil})
	require.ErrorIs(t, err, domain.ErrEmptyProductList)
	assert.Nil(t, order)

	list, err := uc.List(ctx, repository.OrderFilter{}, nil)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestCreateOrder_ClienteInexistente(t *testing.T) {
	uc, _, _, p1, _ := newOrderFixture(t)

	_, err := uc.Create(context.Background(), dto.CreateOrderInput{
		CustomerID: "no-existe",
		ProductIDs: []string{p1.ID},
	})
	assert.ErrorIs(t, err, domain.ErrCustomerNotFound)
}

// El primer ID no resuelto corta el procesamiento y aparece en el mensaje.
func TestCreateOrder_ProductoInexistente(t *testing.T) {
	uc, _, customer, p1, _ := newOrderFixture(t)
	ctx := context.Background()

	_, err := uc.Create(ctx, dto.CreateOrderInput{
		CustomerID: customer.ID,
		ProductIDs: []string{p1.ID, "fantasma"},
	})
	require.ErrorIs(t, err, domain.ErrProductNotFound)
	assert.Equal(t, "Invalid product ID: fantasma", err.Error())

	list, err := uc.List(ctx, repository.OrderFilter{}, nil)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestCreateOrder_FechaExplicita(t *testing.T) {
	uc, _, customer, p1, _ := newOrderFixture(t)

	when := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)
	order, err := uc.Create(context.Background(), dto.CreateOrderInput{
		CustomerID: customer.ID,
		ProductIDs: []string{p1.ID},
		OrderDate:  &when,
	})
	require.NoError(t, err)
	assert.True(t, order.OrderDate.Equal(when))
}

// Productos repetidos colapsan (semántica de conjunto): asociación única y el precio
// cuenta una sola vez en el total.
func TestCreateOrder_ProductosRepetidosColapsan(t *testing.T) {
	uc, _, customer, p1, _ := newOrderFixture(t)
	ctx := context.Background()

	order, err := uc.Create(ctx, dto.CreateOrderInput{
		CustomerID: customer.ID,
		ProductIDs: []string{p1.ID, p1.ID},
	})
	require.NoError(t, err)
	assert.True(t, order.TotalAmount.Equal(decimal.NewFromInt(10)),
		"total esperado 10, obtenido %s", order.TotalAmount)

	products, err := uc.ListProducts(ctx, order.ID)
	require.NoError(t, err)
	assert.Len(t, products, 1)
}

// La ventana orderDate_Gte de los recordatorios es un filtro de rango inclusivo.
func TestListOrders_VentanaPorFecha(t *testing.T) {
	uc, _, customer, p1, _ := newOrderFixture(t)
	ctx := context.Background()

	old := time.Now().AddDate(0, 0, -30)
	recent := time.Now().AddDate(0, 0, -2)
	for _, when := range []time.Time{old, recent} {
		w := when
		_, err := uc.Create(ctx, dto.CreateOrderInput{
			CustomerID: customer.ID,
			ProductIDs: []string{p1.ID},
			OrderDate:  &w,
		})
		require.NoError(t, err)
	}

	since := time.Now().AddDate(0, 0, -7)
	list, err := uc.List(ctx, repository.OrderFilter{OrderDateGte: &since}, nil)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.True(t, list[0].OrderDate.Equal(recent))
}
