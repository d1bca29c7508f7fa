package graphql

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	gql "github.com/graphql-go/graphql"
	"github.com/graphql-go/handler"
)

// Mount registra el endpoint /graphql en la app Fiber. GET sirve GraphiQL para
// exploración manual; POST ejecuta las operaciones.
func Mount(app *fiber.App, schema gql.Schema) {
	h := handler.New(&handler.Config{
		Schema:   &schema,
		Pretty:   true,
		GraphiQL: true,
	})
	app.All("/graphql", adaptor.HTTPHandler(h))
}
