package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/bella-247/alx-backend-graphql-crm/internal/domain"
	"github.com/bella-247/alx-backend-graphql-crm/internal/domain/entity"
	"github.com/bella-247/alx-backend-graphql-crm/internal/domain/repository"
)

var _ repository.CustomerRepository = (*CustomerRepo)(nil)

// Columnas ordenables de customers (nombre GraphQL -> columna SQL).
var customerOrderColumns = map[string]string{
	"name":      "name",
	"email":     "email",
	"phone":     "phone",
	"createdAt": "created_at",
}

// CustomerRepo implementación de CustomerRepository (usable con pool o tx).
type CustomerRepo struct {
	q Querier
}

// NewCustomerRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCustomerRepository(q Querier) *CustomerRepo {
	return &CustomerRepo{q: q}
}

// Create persiste un nuevo cliente. Email duplicado -> domain.ErrEmailExists.
func (r *CustomerRepo) Create(ctx context.Context, customer *entity.Customer) error {
	query := `
		INSERT INTO customers (id, name, email, phone, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(ctx, query,
		customer.ID, customer.Name, customer.Email, customer.Phone,
		customer.CreatedAt, customer.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailExists
		}
		return fmt.Errorf("insert customer: %w", err)
	}
	return nil
}

// GetByID obtiene un cliente por ID. Devuelve (nil, nil) si no existe.
func (r *CustomerRepo) GetByID(ctx context.Context, id string) (*entity.Customer, error) {
	query := `
		SELECT id, name, email, phone, created_at, updated_at
		FROM customers WHERE id = $1`
	return r.scanOne(ctx, query, id)
}

// GetByEmail obtiene un cliente por email. Devuelve (nil, nil) si no existe.
func (r *CustomerRepo) GetByEmail(ctx context.Context, email string) (*entity.Customer, error) {
	query := `
		SELECT id, name, email, phone, created_at, updated_at
		FROM customers WHERE email = $1`
	return r.scanOne(ctx, query, email)
}

func (r *CustomerRepo) scanOne(ctx context.Context, query string, arg any) (*entity.Customer, error) {
	var c entity.Customer
	err := r.q.QueryRow(ctx, query, arg).Scan(
		&c.ID, &c.Name, &c.Email, &c.Phone, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get customer: %w", err)
	}
	return &c, nil
}

// List lista clientes aplicando filtro y ordenamiento.
func (r *CustomerRepo) List(ctx context.Context, filter repository.CustomerFilter, orderBy []string) ([]*entity.Customer, error) {
	var where []string
	var args []any

	if filter.NameIcontains != "" {
		args = append(args, "%"+filter.NameIcontains+"%")
		where = append(where, fmt.Sprintf("name ILIKE $%d", len(args)))
	}
	if filter.EmailIcontains != "" {
		args = append(args, "%"+filter.EmailIcontains+"%")
		where = append(where, fmt.Sprintf("email ILIKE $%d", len(args)))
	}
	if filter.PhonePattern != "" {
		args = append(args, filter.PhonePattern+"%")
		where = append(where, fmt.Sprintf("phone LIKE $%d", len(args)))
	}
	if filter.CreatedAtGte != nil {
		args = append(args, *filter.CreatedAtGte)
		where = append(where, fmt.Sprintf("created_at >= $%d", len(args)))
	}
	if filter.CreatedAtLte != nil {
		args = append(args, *filter.CreatedAtLte)
		where = append(where, fmt.Sprintf("created_at <= $%d", len(args)))
	}

	query := `
		SELECT id, name, email, phone, created_at, updated_at
		FROM customers`
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	query += orderByClause(orderBy, customerOrderColumns, "created_at")

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}
	defer rows.Close()

	var list []*entity.Customer
	for rows.Next() {
		var c entity.Customer
		if err := rows.Scan(&c.ID, &c.Name, &c.Email, &c.Phone, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan customer: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}
