package jobs

import "context"

// GraphQLExecutor puerto hacia el endpoint GraphQL que consumen los jobs programados.
// out recibe el objeto "data" decodificado de la respuesta.
type GraphQLExecutor interface {
	Execute(ctx context.Context, query string, vars map[string]any, out any) error
}
