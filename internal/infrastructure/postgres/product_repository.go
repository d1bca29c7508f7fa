package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/bella-247/alx-backend-graphql-crm/internal/domain/entity"
	"github.com/bella-247/alx-backend-graphql-crm/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// Columnas ordenables de products (nombre GraphQL -> columna SQL).
var productOrderColumns = map[string]string{
	"name":      "name",
	"price":     "price",
	"stock":     "stock",
	"createdAt": "created_at",
}

// ProductRepo implementación de ProductRepository (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// Create persiste un nuevo producto.
func (r *ProductRepo) Create(ctx context.Context, product *entity.Product) error {
	query := `
		INSERT INTO products (id, name, price, stock, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(ctx, query,
		product.ID, product.Name, product.Price, product.Stock,
		product.CreatedAt, product.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByID obtiene un producto por ID. Devuelve (nil, nil) si no existe.
func (r *ProductRepo) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	query := `
		SELECT id, name, price, stock, created_at, updated_at
		FROM products WHERE id = $1`
	var p entity.Product
	err := r.q.QueryRow(ctx, query, id).Scan(
		&p.ID, &p.Name, &p.Price, &p.Stock, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return &p, nil
}

// List lista productos aplicando filtro y ordenamiento.
func (r *ProductRepo) List(ctx context.Context, filter repository.ProductFilter, orderBy []string) ([]*entity.Product, error) {
	var where []string
	var args []any

	if filter.NameIcontains != "" {
		args = append(args, "%"+filter.NameIcontains+"%")
		where = append(where, fmt.Sprintf("name ILIKE $%d", len(args)))
	}
	if filter.PriceGte != nil {
		args = append(args, *filter.PriceGte)
		where = append(where, fmt.Sprintf("price >= $%d", len(args)))
	}
	if filter.PriceLte != nil {
		args = append(args, *filter.PriceLte)
		where = append(where, fmt.Sprintf("price <= $%d", len(args)))
	}
	if filter.StockGte != nil {
		args = append(args, *filter.StockGte)
		where = append(where, fmt.Sprintf("stock >= $%d", len(args)))
	}
	if filter.StockLte != nil {
		args = append(args, *filter.StockLte)
		where = append(where, fmt.Sprintf("stock <= $%d", len(args)))
	}

	query := `
		SELECT id, name, price, stock, created_at, updated_at
		FROM products`
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	query += orderByClause(orderBy, productOrderColumns, "created_at")

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	return scanProducts(rows)
}

// ListBelowStock devuelve los productos con stock < threshold. Bloquea las filas
// (FOR UPDATE) para que la reposición dentro de una tx no pierda escrituras.
func (r *ProductRepo) ListBelowStock(ctx context.Context, threshold int) ([]*entity.Product, error) {
	query := `
		SELECT id, name, price, stock, created_at, updated_at
		FROM products WHERE stock < $1 ORDER BY name FOR UPDATE`
	rows, err := r.q.Query(ctx, query, threshold)
	if err != nil {
		return nil, fmt.Errorf("list low stock products: %w", err)
	}
	defer rows.Close()
	return scanProducts(rows)
}

// UpdateStock fija el stock de un producto.
func (r *ProductRepo) UpdateStock(ctx context.Context, id string, stock int) error {
	query := `UPDATE products SET stock = $2, updated_at = now() WHERE id = $1`
	_, err := r.q.Exec(ctx, query, id, stock)
	if err != nil {
		return fmt.Errorf("update product stock: %w", err)
	}
	return nil
}

func scanProducts(rows pgx.Rows) ([]*entity.Product, error) {
	var list []*entity.Product
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Price, &p.Stock, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}
