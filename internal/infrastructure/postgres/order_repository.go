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

var _ repository.OrderRepository = (*OrderRepo)(nil)

// Columnas ordenables de orders (nombre GraphQL -> columna SQL).
var orderOrderColumns = map[string]string{
	"orderDate":   "o.order_date",
	"totalAmount": "o.total_amount",
	"createdAt":   "o.created_at",
}

// OrderRepo implementación de OrderRepository (usable con pool o tx).
type OrderRepo struct {
	q Querier
}

// NewOrderRepository construye el adaptador. Pasar pool o tx (Querier).
func NewOrderRepository(q Querier) *OrderRepo {
	return &OrderRepo{q: q}
}

// Create persiste la cabecera de la orden y sus asociaciones con productos.
// IDs de producto repetidos en la entrada colapsan en una sola fila (semántica de conjunto).
func (r *OrderRepo) Create(ctx context.Context, order *entity.Order, productIDs []string) error {
	query := `
		INSERT INTO orders (id, customer_id, total_amount, order_date, created_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(ctx, query,
		order.ID, order.CustomerID, order.TotalAmount, order.OrderDate, order.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert order: %w", err)
	}
	for _, pid := range productIDs {
		_, err := r.q.Exec(ctx, `
			INSERT INTO order_products (order_id, product_id)
			VALUES ($1, $2) ON CONFLICT DO NOTHING`, order.ID, pid)
		if err != nil {
			return fmt.Errorf("insert order product: %w", err)
		}
	}
	return nil
}

// GetByID obtiene una orden por ID. Devuelve (nil, nil) si no existe.
func (r *OrderRepo) GetByID(ctx context.Context, id string) (*entity.Order, error) {
	query := `
		SELECT o.id, o.customer_id, o.total_amount, o.order_date, o.created_at
		FROM orders o WHERE o.id = $1`
	var o entity.Order
	err := r.q.QueryRow(ctx, query, id).Scan(
		&o.ID, &o.CustomerID, &o.TotalAmount, &o.OrderDate, &o.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get order: %w", err)
	}
	return &o, nil
}

// List lista órdenes aplicando filtro y ordenamiento. Los filtros por cliente y
// producto se resuelven con subconsultas EXISTS sobre las tablas relacionadas.
func (r *OrderRepo) List(ctx context.Context, filter repository.OrderFilter, orderBy []string) ([]*entity.Order, error) {
	var where []string
	var args []any

	if filter.TotalAmountGte != nil {
		args = append(args, *filter.TotalAmountGte)
		where = append(where, fmt.Sprintf("o.total_amount >= $%d", len(args)))
	}
	if filter.TotalAmountLte != nil {
		args = append(args, *filter.TotalAmountLte)
		where = append(where, fmt.Sprintf("o.total_amount <= $%d", len(args)))
	}
	if filter.OrderDateGte != nil {
		args = append(args, *filter.OrderDateGte)
		where = append(where, fmt.Sprintf("o.order_date >= $%d", len(args)))
	}
	if filter.OrderDateLte != nil {
		args = append(args, *filter.OrderDateLte)
		where = append(where, fmt.Sprintf("o.order_date <= $%d", len(args)))
	}
	if filter.CustomerName != "" {
		args = append(args, "%"+filter.CustomerName+"%")
		where = append(where, fmt.Sprintf(
			"EXISTS (SELECT 1 FROM customers c WHERE c.id = o.customer_id AND c.name ILIKE $%d)", len(args)))
	}
	if filter.ProductName != "" {
		args = append(args, "%"+filter.ProductName+"%")
		where = append(where, fmt.Sprintf(
			"EXISTS (SELECT 1 FROM order_products op JOIN products p ON p.id = op.product_id WHERE op.order_id = o.id AND p.name ILIKE $%d)", len(args)))
	}
	if filter.ProductID != "" {
		args = append(args, filter.ProductID)
		where = append(where, fmt.Sprintf(
			"EXISTS (SELECT 1 FROM order_products op WHERE op.order_id = o.id AND op.product_id = $%d)", len(args)))
	}

	query := `
		SELECT o.id, o.customer_id, o.total_amount, o.order_date, o.created_at
		FROM orders o`
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	query += orderByClause(orderBy, orderOrderColumns, "o.order_date")

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	defer rows.Close()

	var list []*entity.Order
	for rows.Next() {
		var o entity.Order
		if err := rows.Scan(&o.ID, &o.CustomerID, &o.TotalAmount, &o.OrderDate, &o.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		list = append(list, &o)
	}
	return list, rows.Err()
}

// ListProducts devuelve los productos asociados a una orden.
func (r *OrderRepo) ListProducts(ctx context.Context, orderID string) ([]*entity.Product, error) {
	query := `
		SELECT p.id, p.name, p.price, p.stock, p.created_at, p.updated_at
		FROM products p
		JOIN order_products op ON op.product_id = p.id
		WHERE op.order_id = $1 ORDER BY p.name`
	rows, err := r.q.Query(ctx, query, orderID)
	if err != nil {
		return nil, fmt.Errorf("list order products: %w", err)
	}
	defer rows.Close()
	return scanProducts(rows)
}
