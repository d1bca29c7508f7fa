package usecase

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	"github.com/google/uuid"

	"github.com/bella-247/alx-backend-graphql-crm/internal/application/dto"
	"github.com/bella-247/alx-backend-graphql-crm/internal/domain"
	"github.com/bella-247/alx-backend-graphql-crm/internal/domain/entity"
	"github.com/bella-247/alx-backend-graphql-crm/internal/domain/repository"
)

// phonePattern acepta "+<7-15 dígitos>" o "NNN-NNN-NNNN". Ambas alternativas van
// ancladas; cualquier otro formato se rechaza.
var phonePattern = regexp.MustCompile(`^\+?\d{7,15}$|^\d{3}-\d{3}-\d{4}$`)

// CustomerUseCase casos de uso para clientes: creación individual, creación en lote y listado.
type CustomerUseCase struct {
	repo     repository.CustomerRepository
	txRunner TxRunner
}

// NewCustomerUseCase construye el caso de uso.
func NewCustomerUseCase(repo repository.CustomerRepository, txRunner TxRunner) *CustomerUseCase {
	return &CustomerUseCase{repo: repo, txRunner: txRunner}
}

// Create crea un cliente. Email duplicado o teléfono con formato inválido devuelven
// error de dominio, nunca pánico.
func (uc *CustomerUseCase) Create(ctx context.Context, in dto.CreateCustomerInput) (*entity.Customer, error) {
	existing, err := uc.repo.GetByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailExists
	}
	if in.Phone != "" && !phonePattern.MatchString(in.Phone) {
		return nil, domain.ErrInvalidPhone
	}
	now := time.Now()
	customer := &entity.Customer{
		ID:        uuid.New().String(),
		Name:      in.Name,
		Email:     in.Email,
		Phone:     in.Phone,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(ctx, customer); err != nil {
		return nil, err
	}
	return customer, nil
}

// BulkCreate procesa cada entrada de forma independiente: una entrada inválida genera
// un string de error y se salta, sin abortar el lote. Las entradas aceptadas se
// confirman en UNA sola transacción: si el Commit falla, ninguna persiste.
// Los chequeos de existencia corren dentro de la tx, así que los duplicados internos
// del propio lote también se detectan.
func (uc *CustomerUseCase) BulkCreate(ctx context.Context, inputs []dto.CreateCustomerInput) ([]*entity.Customer, []string, error) {
	var created []*entity.Customer
	var errs []string

	err := uc.txRunner.Run(ctx, func(
		customers repository.CustomerRepository,
		_ repository.ProductRepository,
		_ repository.OrderRepository,
	) error {
		for _, in := range inputs {
			existing, err := customers.GetByEmail(ctx, in.Email)
			if err != nil {
				// Fallo de infraestructura: aborta el lote completo
				return err
			}
			if existing != nil {
				errs = append(errs, fmt.Sprintf("Email %s already exists", in.Email))
				continue
			}
			if in.Phone != "" && !phonePattern.MatchString(in.Phone) {
				errs = append(errs, fmt.Sprintf("Invalid phone format for %s", in.Email))
				continue
			}
			now := time.Now()
			customer := &entity.Customer{
				ID:        uuid.New().String(),
				Name:      in.Name,
				Email:     in.Email,
				Phone:     in.Phone,
				CreatedAt: now,
				UpdatedAt: now,
			}
			if err := customers.Create(ctx, customer); err != nil {
				if errors.Is(err, domain.ErrEmailExists) {
					// Carrera perdida contra otra escritura concurrente
					errs = append(errs, fmt.Sprintf("Email %s already exists", in.Email))
					continue
				}
				return err
			}
			created = append(created, customer)
		}
		return nil
	})
	if err != nil {
		return nil, nil, err
	}
	return created, errs, nil
}

// GetByID obtiene un cliente por ID. Devuelve (nil, nil) si no existe.
func (uc *CustomerUseCase) GetByID(ctx context.Context, id string) (*entity.Customer, error) {
	return uc.repo.GetByID(ctx, id)
}

// List lista clientes con filtro y ordenamiento opcionales.
func (uc *CustomerUseCase) List(ctx context.Context, filter repository.CustomerFilter, orderBy []string) ([]*entity.Customer, error) {
	return uc.repo.List(ctx, filter, orderBy)
}
