package entity

import "time"

// Customer representa un cliente del CRM. Email es único a nivel global.
type Customer struct {
	ID        string
	Name      string
	Email     string
	Phone     string // opcional; validado contra el patrón de teléfono en el caso de uso
	CreatedAt time.Time
	UpdatedAt time.Time
}
