package domain

import "errors"

// Errores de dominio (sin dependencias externas). Los textos son parte del contrato
// GraphQL: los clientes y los scripts cron comparan contra estos mensajes.
var (
	ErrEmailExists      = errors.New("Email already exists")
	ErrInvalidPhone     = errors.New("Invalid phone format")
	ErrInvalidPrice     = errors.New("Price must be positive")
	ErrInvalidStock     = errors.New("Stock cannot be negative")
	ErrCustomerNotFound = errors.New("Invalid customer ID")
	ErrProductNotFound  = errors.New("Invalid product ID")
	ErrEmptyProductList = errors.New("At least one product is required")
)
