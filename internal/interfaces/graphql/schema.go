package graphql

import (
	gql "github.com/graphql-go/graphql"

	"github.com/bella-247/alx-backend-graphql-crm/internal/application/usecase"
)

// Deps casos de uso que consumen los resolvers.
type Deps struct {
	Customers *usecase.CustomerUseCase
	Products  *usecase.ProductUseCase
	Orders    *usecase.OrderUseCase
}

// builder mantiene los tipos compartidos entre query y mutation mientras se arma el esquema.
type builder struct {
	deps Deps

	customerType *gql.Object
	productType  *gql.Object
	orderType    *gql.Object
}

// NewSchema construye el esquema GraphQL completo (queries + mutations) sobre los casos de uso.
func NewSchema(deps Deps) (gql.Schema, error) {
	b := &builder{deps: deps}
	b.buildTypes()

	return gql.NewSchema(gql.SchemaConfig{
		Query:    b.queryType(),
		Mutation: b.mutationType(),
	})
}
