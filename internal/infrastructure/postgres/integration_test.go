//go:build integration
// +build integration

package postgres_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/bella-247/alx-backend-graphql-crm/internal/application/dto"
	"github.com/bella-247/alx-backend-graphql-crm/internal/application/usecase"
	"github.com/bella-247/alx-backend-graphql-crm/internal/domain"
	"github.com/bella-247/alx-backend-graphql-crm/internal/domain/repository"
	"github.com/bella-247/alx-backend-graphql-crm/internal/infrastructure/postgres"
	"github.com/bella-247/alx-backend-graphql-crm/pkg/config"
)

// setupTestDB levanta un contenedor PostgreSQL, aplica el esquema y devuelve el pool.
func setupTestDB(t *testing.T) *pgxpool.Pool {
	t.Helper()
	ctx := context.Background()

	container, err := tcpostgres.Run(ctx,
		"postgres:alpine",
		tcpostgres.WithDatabase("crmtest"),
		tcpostgres.WithUsername("testuser"),
		tcpostgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second)),
	)
	require.NoError(t, err, "no se pudo iniciar el contenedor PostgreSQL")
	t.Cleanup(func() {
		if err := container.Terminate(ctx); err != nil {
			t.Logf("no se pudo terminar el contenedor: %v", err)
		}
	})

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	pool, err := postgres.NewPool(ctx, config.DBConfig{DatabaseURL: connStr})
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	schema, err := os.ReadFile("../../../migrations/001_init.sql")
	require.NoError(t, err)
	_, err = pool.Exec(ctx, string(schema))
	require.NoError(t, err)

	return pool
}

type integrationFixture struct {
	customers *usecase.CustomerUseCase
	products  *usecase.ProductUseCase
	orders    *usecase.OrderUseCase
}

func newIntegrationFixture(pool *pgxpool.Pool) *integrationFixture {
	txRunner := postgres.NewTxRunner(pool)
	return &integrationFixture{
		customers: usecase.NewCustomerUseCase(postgres.NewCustomerRepository(pool), txRunner),
		products:  usecase.NewProductUseCase(postgres.NewProductRepository(pool), txRunner),
		orders:    usecase.NewOrderUseCase(postgres.NewOrderRepository(pool), txRunner),
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Customers
// ──────────────────────────────────────────────────────────────────────────────

// El constraint único de email se traduce al error de dominio.
func TestIntegracion_ClienteEmailDuplicado(t *testing.T) {
	pool := setupTestDB(t)
	f := newIntegrationFixture(pool)
	ctx := context.Background()

	created, err := f.customers.Create(ctx, dto.CreateCustomerInput{
		Name:  "Alice",
		Email: "alice@example.com",
		Phone: "+1234567890",
	})
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)

	_, err = f.customers.Create(ctx, dto.CreateCustomerInput{
		Name:  "Alice bis",
		Email: "alice@example.com",
	})
	require.ErrorIs(t, err, domain.ErrEmailExists)

	found, err := f.customers.GetByID(ctx, created.ID)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "Alice", found.Name)
	assert.Equal(t, "+1234567890", found.Phone)
}

// El lote con duplicados conserva los válidos y reporta los demás, en una sola tx.
func TestIntegracion_LoteDeClientes(t *testing.T) {
	pool := setupTestDB(t)
	f := newIntegrationFixture(pool)
	ctx := context.Background()

	created, errs, err := f.customers.BulkCreate(ctx, []dto.CreateCustomerInput{
		{Name: "Ana", Email: "ana@example.com"},
		{Name: "Ana bis", Email: "ana@example.com"},
		{Name: "Beto", Email: "beto@example.com", Phone: "123-456-7890"},
	})
	require.NoError(t, err)
	assert.Len(t, created, 2)
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0], "ana@example.com")

	list, err := f.customers.List(ctx, repository.CustomerFilter{}, nil)
	require.NoError(t, err)
	assert.Len(t, list, 2)
}

// ──────────────────────────────────────────────────────────────────────────────
// Products
// ──────────────────────────────────────────────────────────────────────────────

func TestIntegracion_ListadoDeProductosConFiltroYOrden(t *testing.T) {
	pool := setupTestDB(t)
	f := newIntegrationFixture(pool)
	ctx := context.Background()

	for _, p := range []struct {
		name  string
		price string
		stock int
	}{
		{"Barato", "5.00", 100},
		{"Medio", "50.00", 10},
		{"Caro", "500.00", 1},
	} {
		_, err := f.products.Create(ctx, dto.CreateProductInput{
			Name:  p.name,
			Price: decimal.RequireFromString(p.price),
			Stock: p.stock,
		})
		require.NoError(t, err)
	}

	min := decimal.RequireFromString("10")
	list, err := f.products.List(ctx, repository.ProductFilter{PriceGte: &min}, []string{"-price"})
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Caro", list[0].Name)
	assert.Equal(t, "Medio", list[1].Name)
	assert.True(t, list[0].Price.Equal(decimal.RequireFromString("500.00")))
}

// La reposición corre en una sola transacción con FOR UPDATE sobre los afectados.
func TestIntegracion_ReposicionDeStockBajo(t *testing.T) {
	pool := setupTestDB(t)
	f := newIntegrationFixture(pool)
	ctx := context.Background()

	bajo, err := f.products.Create(ctx, dto.CreateProductInput{
		Name: "Bajo", Price: decimal.RequireFromString("1.00"), Stock: 3,
	})
	require.NoError(t, err)
	_, err = f.products.Create(ctx, dto.CreateProductInput{
		Name: "Sano", Price: decimal.RequireFromString("1.00"), Stock: 50,
	})
	require.NoError(t, err)

	updated, err := f.products.UpdateLowStock(ctx, 10, 10)
	require.NoError(t, err)
	require.Len(t, updated, 1)
	assert.Equal(t, bajo.ID, updated[0].ID)
	assert.Equal(t, 13, updated[0].Stock)

	// Segunda corrida: ya nadie por debajo del umbral.
	updated, err = f.products.UpdateLowStock(ctx, 10, 10)
	require.NoError(t, err)
	assert.Empty(t, updated)
}

// ──────────────────────────────────────────────────────────────────────────────
// Orders
// ──────────────────────────────────────────────────────────────────────────────

func TestIntegracion_OrdenCompleta(t *testing.T) {
	pool := setupTestDB(t)
	f := newIntegrationFixture(pool)
	ctx := context.Background()

	customer, err := f.customers.Create(ctx, dto.CreateCustomerInput{Name: "Ana", Email: "ana@example.com"})
	require.NoError(t, err)
	p1, err := f.products.Create(ctx, dto.CreateProductInput{Name: "Widget", Price: decimal.RequireFromString("10.00"), Stock: 5})
	require.NoError(t, err)
	p2, err := f.products.Create(ctx, dto.CreateProductInput{Name: "Gadget", Price: decimal.RequireFromString("5.50"), Stock: 5})
	require.NoError(t, err)

	order, err := f.orders.Create(ctx, dto.CreateOrderInput{
		CustomerID: customer.ID,
		ProductIDs: []string{p1.ID, p2.ID, p1.ID}, // duplicado: semántica de conjunto
	})
	require.NoError(t, err)
	assert.True(t, order.TotalAmount.Equal(decimal.RequireFromString("15.50")),
		"total %s", order.TotalAmount)

	products, err := f.orders.ListProducts(ctx, order.ID)
	require.NoError(t, err)
	assert.Len(t, products, 2)

	// Un fallo dentro de la tx no deja orden a medias.
	_, err = f.orders.Create(ctx, dto.CreateOrderInput{
		CustomerID: customer.ID,
		ProductIDs: []string{p1.ID, "00000000-0000-0000-0000-000000000000"},
	})
	require.ErrorIs(t, err, domain.ErrProductNotFound)

	list, err := f.orders.List(ctx, repository.OrderFilter{}, nil)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestIntegracion_VentanaDeOrdenesPorFecha(t *testing.T) {
	pool := setupTestDB(t)
	f := newIntegrationFixture(pool)
	ctx := context.Background()

	customer, err := f.customers.Create(ctx, dto.CreateCustomerInput{Name: "Ana", Email: "ana@example.com"})
	require.NoError(t, err)
	product, err := f.products.Create(ctx, dto.CreateProductInput{Name: "Widget", Price: decimal.RequireFromString("10.00"), Stock: 5})
	require.NoError(t, err)

	vieja := time.Now().AddDate(0, 0, -30)
	reciente := time.Now().AddDate(0, 0, -2)
	for _, d := range []time.Time{vieja, reciente} {
		fecha := d
		_, err := f.orders.Create(ctx, dto.CreateOrderInput{
			CustomerID: customer.ID,
			ProductIDs: []string{product.ID},
			OrderDate:  &fecha,
		})
		require.NoError(t, err)
	}

	since := time.Now().AddDate(0, 0, -7)
	list, err := f.orders.List(ctx, repository.OrderFilter{OrderDateGte: &since}, nil)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.WithinDuration(t, reciente, list[0].OrderDate, time.Second)

	// Filtro por nombre de producto vía EXISTS.
	list, err = f.orders.List(ctx, repository.OrderFilter{ProductName: "widg"}, nil)
	require.NoError(t, err)
	assert.Len(t, list, 2)
}
