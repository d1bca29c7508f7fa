package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bella-247/alx-backend-graphql-crm/internal/application/dto"
	"github.com/bella-247/alx-backend-graphql-crm/internal/application/usecase"
	"github.com/bella-247/alx-backend-graphql-crm/internal/domain"
	"github.com/bella-247/alx-backend-graphql-crm/internal/domain/repository"
	"github.com/bella-247/alx-backend-graphql-crm/internal/infrastructure/memory"
)

func newCustomerUC() (*usecase.CustomerUseCase, *memory.Store) {
	store := memory.NewStore()
	return usecase.NewCustomerUseCase(store.Customers(), store), store
}

// ──────────────────────────────────────────────────────────────────────────────
// Create
// ──────────────────────────────────────────────────────────────────────────────

func TestCreateCustomer_Exito(t *testing.T) {
	uc, _ := newCustomerUC()

	customer, err := uc.Create(context.Background(), dto.CreateCustomerInput{
		Name:  "Alice",
		Email: "alice@example.com",
		Phone: "+12345678",
	})
	require.NoError(t, err)
	require.NotNil(t, customer)
	assert.NotEmpty(t, customer.ID)
	assert.Equal(t, "alice@example.com", customer.Email)
	assert.False(t, customer.CreatedAt.IsZero())
}

// Dos clientes con el mismo email: exactamente un éxito y un ErrEmailExists,
// sin importar el orden.
func TestCreateCustomer_EmailDuplicado(t *testing.T) {
	uc, _ := newCustomerUC()
	ctx := context.Background()

	_, err := uc.Create(ctx, dto.CreateCustomerInput{Name: "Alice", Email: "a@x.com"})
	require.NoError(t, err)

	_, err = uc.Create(ctx, dto.CreateCustomerInput{Name: "Alicia", Email: "a@x.com"})
	require.ErrorIs(t, err, domain.ErrEmailExists)

	list, err := uc.List(ctx, repository.CustomerFilter{}, nil)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

// Aceptación sii el teléfono calza "+<7-15 dígitos>" o "NNN-NNN-NNNN".
func TestCreateCustomer_FormatoTelefono(t *testing.T) {
	cases := []struct {
		phone string
		valid bool
	}{
		{"+12345678", true},
		{"123-456-7890", true},
		{"1234567", true},          // 7 dígitos sin prefijo
		{"123456789012345", true},  // 15 dígitos
		{"+1234567890123456", false}, // 16 dígitos
		{"+123456", false},         // 6 dígitos
		{"abc", false},
		{"123-45-6789", false},
		{"12-3456-7890", false},
		{"", true}, // opcional
	}
	for _, tc := range cases {
		t.Run(tc.phone, func(t *testing.T) {
			uc, _ := newCustomerUC()
			_, err := uc.Create(context.Background(), dto.CreateCustomerInput{
				Name:  "Bob",
				Email: "bob@example.com",
				Phone: tc.phone,
			})
			if tc.valid {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, domain.ErrInvalidPhone)
			}
		})
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// BulkCreate
// ──────────────────────────────────────────────────────────────────────────────

// [a@x, a@x, b@x] -> exactamente 2 creados y 1 string de error por el duplicado.
// El duplicado interno del lote se detecta porque el chequeo corre dentro de la tx.
func TestBulkCreateCustomers_DuplicadoEnElLote(t *testing.T) {
	uc, _ := newCustomerUC()

	created, errs, err := uc.BulkCreate(context.Background(), []dto.CreateCustomerInput{
		{Name: "A1", Email: "a@x.com"},
		{Name: "A2", Email: "a@x.com"},
		{Name: "B", Email: "b@x.com"},
	})
	require.NoError(t, err)
	assert.Len(t, created, 2)
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0], "a@x.com")
	assert.Contains(t, errs[0], "already exists")
}

// Una entrada con teléfono inválido se salta sin abortar el resto del lote.
func TestBulkCreateCustomers_TelefonoInvalidoNoAbortaElLote(t *testing.T) {
	uc, _ := newCustomerUC()

	created, errs, err := uc.BulkCreate(context.Background(), []dto.CreateCustomerInput{
		{Name: "A", Email: "a@x.com", Phone: "abc"},
		{Name: "B", Email: "b@x.com", Phone: "+5551234567"},
	})
	require.NoError(t, err)
	require.Len(t, created, 1)
	assert.Equal(t, "b@x.com", created[0].Email)
	require.Len(t, errs, 1)
	assert.Equal(t, "Invalid phone format for a@x.com", errs[0])
}

func TestBulkCreateCustomers_LoteVacio(t *testing.T) {
	uc, _ := newCustomerUC()

	created, errs, err := uc.BulkCreate(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, created)
	assert.Empty(t, errs)
}
