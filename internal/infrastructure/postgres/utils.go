package postgres

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

// isUniqueViolation verifica si un error es una violación de constraint único (23505).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505" // unique_violation
	}
	return strings.Contains(err.Error(), "23505")
}

// orderByClause construye la cláusula ORDER BY a partir de nombres de campo GraphQL.
// El prefijo "-" indica descendente. Los campos fuera de la whitelist se ignoran;
// si no queda ninguno válido se usa fallback.
func orderByClause(orderBy []string, columns map[string]string, fallback string) string {
	var parts []string
	for _, field := range orderBy {
		desc := strings.HasPrefix(field, "-")
		name := strings.TrimPrefix(field, "-")
		col, ok := columns[name]
		if !ok {
			continue
		}
		if desc {
			col += " DESC"
		}
		parts = append(parts, col)
	}
	if len(parts) == 0 {
		return " ORDER BY " + fallback
	}
	return " ORDER BY " + strings.Join(parts, ", ")
}
