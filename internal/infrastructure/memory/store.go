package memory

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/bella-247/alx-backend-graphql-crm/internal/application/usecase"
	"github.com/bella-247/alx-backend-graphql-crm/internal/domain"
	"github.com/bella-247/alx-backend-graphql-crm/internal/domain/entity"
	"github.com/bella-247/alx-backend-graphql-crm/internal/domain/repository"
)

var (
	_ repository.CustomerRepository = (*CustomerStore)(nil)
	_ repository.ProductRepository  = (*ProductStore)(nil)
	_ repository.OrderRepository    = (*OrderStore)(nil)
	_ usecase.TxRunner              = (*Store)(nil)
)

// Store almacén en memoria que respalda los tests y el trabajo local sin PostgreSQL.
// Expone un adaptador por repositorio sobre el mismo estado compartido. Run no
// implementa rollback: un callback que falla puede dejar escrituras parciales, lo
// que basta para tests que no ejercitan fallos de Commit.
type Store struct {
	mu            sync.Mutex
	customers     map[string]*entity.Customer
	products      map[string]*entity.Product
	orders        map[string]*entity.Order
	orderProducts map[string][]string // orderID -> productIDs (sin duplicados)
}

// NewStore construye el almacén vacío.
func NewStore() *Store {
	return &Store{
		customers:     make(map[string]*entity.Customer),
		products:      make(map[string]*entity.Product),
		orders:        make(map[string]*entity.Order),
		orderProducts: make(map[string][]string),
	}
}

// Customers devuelve el adaptador de CustomerRepository.
func (s *Store) Customers() *CustomerStore { return &CustomerStore{s: s} }

// Products devuelve el adaptador de ProductRepository.
func (s *Store) Products() *ProductStore { return &ProductStore{s: s} }

// Orders devuelve el adaptador de OrderRepository.
func (s *Store) Orders() *OrderStore { return &OrderStore{s: s} }

// Run ejecuta fn con los adaptadores del propio store.
func (s *Store) Run(ctx context.Context, fn func(
	customers repository.CustomerRepository,
	products repository.ProductRepository,
	orders repository.OrderRepository,
) error) error {
	return fn(s.Customers(), s.Products(), s.Orders())
}

// ── Customers ────────────────────────────────────────────────────────────────

// CustomerStore adaptador en memoria de CustomerRepository.
type CustomerStore struct {
	s *Store
}

// Create persiste un cliente; email duplicado -> domain.ErrEmailExists, igual que
// la violación del constraint único en PostgreSQL.
func (r *CustomerStore) Create(ctx context.Context, customer *entity.Customer) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, c := range r.s.customers {
		if c.Email == customer.Email {
			return domain.ErrEmailExists
		}
	}
	cp := *customer
	r.s.customers[customer.ID] = &cp
	return nil
}

// GetByID devuelve (nil, nil) si no existe.
func (r *CustomerStore) GetByID(ctx context.Context, id string) (*entity.Customer, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	c, ok := r.s.customers[id]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

// GetByEmail devuelve (nil, nil) si no existe.
func (r *CustomerStore) GetByEmail(ctx context.Context, email string) (*entity.Customer, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, c := range r.s.customers {
		if c.Email == email {
			cp := *c
			return &cp, nil
		}
	}
	return nil, nil
}

// List aplica filtro y ordenamiento.
func (r *CustomerStore) List(ctx context.Context, filter repository.CustomerFilter, orderBy []string) ([]*entity.Customer, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var list []*entity.Customer
	for _, c := range r.s.customers {
		if !matchCustomer(c, filter) {
			continue
		}
		cp := *c
		list = append(list, &cp)
	}
	sortSlice(list, orderBy, "createdAt", compareCustomers)
	return list, nil
}

func matchCustomer(c *entity.Customer, f repository.CustomerFilter) bool {
	if f.NameIcontains != "" && !containsFold(c.Name, f.NameIcontains) {
		return false
	}
	if f.EmailIcontains != "" && !containsFold(c.Email, f.EmailIcontains) {
		return false
	}
	if f.PhonePattern != "" && !strings.HasPrefix(c.Phone, f.PhonePattern) {
		return false
	}
	if f.CreatedAtGte != nil && c.CreatedAt.Before(*f.CreatedAtGte) {
		return false
	}
	if f.CreatedAtLte != nil && c.CreatedAt.After(*f.CreatedAtLte) {
		return false
	}
	return true
}

func compareCustomers(a, b *entity.Customer, field string) int {
	switch field {
	case "name":
		return strings.Compare(a.Name, b.Name)
	case "email":
		return strings.Compare(a.Email, b.Email)
	case "phone":
		return strings.Compare(a.Phone, b.Phone)
	case "createdAt":
		return a.CreatedAt.Compare(b.CreatedAt)
	default:
		return 0
	}
}

// ── Products ─────────────────────────────────────────────────────────────────

// ProductStore adaptador en memoria de ProductRepository.
type ProductStore struct {
	s *Store
}

// Create persiste un producto.
func (r *ProductStore) Create(ctx context.Context, product *entity.Product) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cp := *product
	r.s.products[product.ID] = &cp
	return nil
}

// GetByID devuelve (nil, nil) si no existe.
func (r *ProductStore) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	p, ok := r.s.products[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

// List aplica filtro y ordenamiento.
func (r *ProductStore) List(ctx context.Context, filter repository.ProductFilter, orderBy []string) ([]*entity.Product, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var list []*entity.Product
	for _, p := range r.s.products {
		if !matchProduct(p, filter) {
			continue
		}
		cp := *p
		list = append(list, &cp)
	}
	sortSlice(list, orderBy, "createdAt", compareProducts)
	return list, nil
}

// ListBelowStock devuelve productos con stock < threshold, ordenados por nombre.
func (r *ProductStore) ListBelowStock(ctx context.Context, threshold int) ([]*entity.Product, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var list []*entity.Product
	for _, p := range r.s.products {
		if p.Stock < threshold {
			cp := *p
			list = append(list, &cp)
		}
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Name < list[j].Name })
	return list, nil
}

// UpdateStock fija el stock de un producto existente.
func (r *ProductStore) UpdateStock(ctx context.Context, id string, stock int) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if p, ok := r.s.products[id]; ok {
		p.Stock = stock
	}
	return nil
}

func matchProduct(p *entity.Product, f repository.ProductFilter) bool {
	if f.NameIcontains != "" && !containsFold(p.Name, f.NameIcontains) {
		return false
	}
	if f.PriceGte != nil && p.Price.LessThan(*f.PriceGte) {
		return false
	}
	if f.PriceLte != nil && p.Price.GreaterThan(*f.PriceLte) {
		return false
	}
	if f.StockGte != nil && p.Stock < *f.StockGte {
		return false
	}
	if f.StockLte != nil && p.Stock > *f.StockLte {
		return false
	}
	return true
}

func compareProducts(a, b *entity.Product, field string) int {
	switch field {
	case "name":
		return strings.Compare(a.Name, b.Name)
	case "price":
		return a.Price.Cmp(b.Price)
	case "stock":
		return a.Stock - b.Stock
	case "createdAt":
		return a.CreatedAt.Compare(b.CreatedAt)
	default:
		return 0
	}
}

// ── Orders ───────────────────────────────────────────────────────────────────

// OrderStore adaptador en memoria de OrderRepository.
type OrderStore struct {
	s *Store
}

// Create persiste la orden y la asociación con productos (semántica de conjunto).
func (r *OrderStore) Create(ctx context.Context, order *entity.Order, productIDs []string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cp := *order
	r.s.orders[order.ID] = &cp
	seen := make(map[string]bool, len(productIDs))
	var ids []string
	for _, pid := range productIDs {
		if !seen[pid] {
			seen[pid] = true
			ids = append(ids, pid)
		}
	}
	r.s.orderProducts[order.ID] = ids
	return nil
}

// GetByID devuelve (nil, nil) si no existe.
func (r *OrderStore) GetByID(ctx context.Context, id string) (*entity.Order, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	o, ok := r.s.orders[id]
	if !ok {
		return nil, nil
	}
	cp := *o
	return &cp, nil
}

// List aplica filtro y ordenamiento.
func (r *OrderStore) List(ctx context.Context, filter repository.OrderFilter, orderBy []string) ([]*entity.Order, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var list []*entity.Order
	for _, o := range r.s.orders {
		if !matchOrder(r.s, o, filter) {
			continue
		}
		cp := *o
		list = append(list, &cp)
	}
	sortSlice(list, orderBy, "orderDate", compareOrders)
	return list, nil
}

// ListProducts devuelve los productos asociados a una orden, ordenados por nombre.
func (r *OrderStore) ListProducts(ctx context.Context, orderID string) ([]*entity.Product, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var list []*entity.Product
	for _, pid := range r.s.orderProducts[orderID] {
		if p, ok := r.s.products[pid]; ok {
			cp := *p
			list = append(list, &cp)
		}
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Name < list[j].Name })
	return list, nil
}

func matchOrder(s *Store, o *entity.Order, f repository.OrderFilter) bool {
	if f.TotalAmountGte != nil && o.TotalAmount.LessThan(*f.TotalAmountGte) {
		return false
	}
	if f.TotalAmountLte != nil && o.TotalAmount.GreaterThan(*f.TotalAmountLte) {
		return false
	}
	if f.OrderDateGte != nil && o.OrderDate.Before(*f.OrderDateGte) {
		return false
	}
	if f.OrderDateLte != nil && o.OrderDate.After(*f.OrderDateLte) {
		return false
	}
	if f.CustomerName != "" {
		c, ok := s.customers[o.CustomerID]
		if !ok || !containsFold(c.Name, f.CustomerName) {
			return false
		}
	}
	if f.ProductName != "" {
		found := false
		for _, pid := range s.orderProducts[o.ID] {
			if p, ok := s.products[pid]; ok && containsFold(p.Name, f.ProductName) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	if f.ProductID != "" {
		found := false
		for _, pid := range s.orderProducts[o.ID] {
			if pid == f.ProductID {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

func compareOrders(a, b *entity.Order, field string) int {
	switch field {
	case "orderDate":
		return a.OrderDate.Compare(b.OrderDate)
	case "totalAmount":
		return a.TotalAmount.Cmp(b.TotalAmount)
	case "createdAt":
		return a.CreatedAt.Compare(b.CreatedAt)
	default:
		return 0
	}
}

// ── Helpers ──────────────────────────────────────────────────────────────────

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

// sortSlice ordena con prioridad por campo, prefijo "-" para descendente; campos
// desconocidos se ignoran. Sin campos válidos se usa fallback ascendente.
func sortSlice[T any](list []T, orderBy []string, fallback string, cmp func(a, b T, field string) int) {
	fields := make([]string, 0, len(orderBy))
	for _, f := range orderBy {
		if f != "" {
			fields = append(fields, f)
		}
	}
	if len(fields) == 0 {
		fields = []string{fallback}
	}
	sort.SliceStable(list, func(i, j int) bool {
		for _, f := range fields {
			desc := strings.HasPrefix(f, "-")
			name := strings.TrimPrefix(f, "-")
			c := cmp(list[i], list[j], name)
			if c == 0 {
				continue
			}
			if desc {
				return c > 0
			}
			return c < 0
		}
		return false
	})
}
