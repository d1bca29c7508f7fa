package gqlclient

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/machinebox/graphql"

	"github.com/bella-247/alx-backend-graphql-crm/internal/application/jobs"
)

var _ jobs.GraphQLExecutor = (*Client)(nil)

// Client adaptador del puerto GraphQLExecutor sobre machinebox/graphql.
// Se construye por invocación de job; no hay estado global de transporte.
type Client struct {
	gql *graphql.Client
}

// New construye el cliente con timeout de transporte.
func New(url string, timeout time.Duration) *Client {
	httpClient := &http.Client{Timeout: timeout}
	return &Client{
		gql: graphql.NewClient(url, graphql.WithHTTPClient(httpClient)),
	}
}

// Execute ejecuta la operación con un único reintento a nivel de transporte, sin
// backoff. Los errores de ejecución GraphQL (prefijo "graphql:") no se reintentan:
// repetir una mutación por un error de validación no es un reintento de transporte.
func (c *Client) Execute(ctx context.Context, query string, vars map[string]any, out any) error {
	req := graphql.NewRequest(query)
	for k, v := range vars {
		req.Var(k, v)
	}
	err := c.gql.Run(ctx, req, out)
	if err == nil {
		return nil
	}
	if strings.HasPrefix(err.Error(), "graphql:") {
		return err
	}
	return c.gql.Run(ctx, req, out)
}
