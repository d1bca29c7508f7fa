package graphql

import (
	"fmt"

	gql "github.com/graphql-go/graphql"

	"github.com/bella-247/alx-backend-graphql-crm/internal/domain/entity"
	"github.com/bella-247/alx-backend-graphql-crm/internal/domain/repository"
)

// queryType raíz de consultas: hello, listados por entidad y la ventana de órdenes
// por fecha que consume el job de recordatorios.
func (b *builder) queryType() *gql.Object {
	return gql.NewObject(gql.ObjectConfig{
		Name: "Query",
		Fields: gql.Fields{
			"hello": &gql.Field{
				Type: gql.NewNonNull(gql.String),
				Resolve: func(p gql.ResolveParams) (interface{}, error) {
					return "Hello, GraphQL!", nil
				},
			},
			"allCustomers": &gql.Field{
				Type: gql.NewNonNull(gql.NewList(gql.NewNonNull(b.customerType))),
				Args: gql.FieldConfigArgument{
					"filter":  &gql.ArgumentConfig{Type: customerFilterType},
					"orderBy": &gql.ArgumentConfig{Type: orderByType},
				},
				Resolve: func(p gql.ResolveParams) (interface{}, error) {
					filter := decodeCustomerFilter(p.Args["filter"])
					list, err := b.deps.Customers.List(p.Context, filter, stringList(p.Args["orderBy"]))
					if err != nil {
						return nil, err
					}
					if list == nil {
						list = []*entity.Customer{}
					}
					return list, nil
				},
			},
			"allProducts": &gql.Field{
				Type: gql.NewNonNull(gql.NewList(gql.NewNonNull(b.productType))),
				Args: gql.FieldConfigArgument{
					"filter":  &gql.ArgumentConfig{Type: productFilterType},
					"orderBy": &gql.ArgumentConfig{Type: orderByType},
				},
				Resolve: func(p gql.ResolveParams) (interface{}, error) {
					filter := decodeProductFilter(p.Args["filter"])
					list, err := b.deps.Products.List(p.Context, filter, stringList(p.Args["orderBy"]))
					if err != nil {
						return nil, err
					}
					if list == nil {
						list = []*entity.Product{}
					}
					return list, nil
				},
			},
			"allOrders": &gql.Field{
				Type: gql.NewNonNull(gql.NewList(gql.NewNonNull(b.orderType))),
				Args: gql.FieldConfigArgument{
					"filter":  &gql.ArgumentConfig{Type: orderFilterType},
					"orderBy": &gql.ArgumentConfig{Type: orderByType},
				},
				Resolve: func(p gql.ResolveParams) (interface{}, error) {
					filter := decodeOrderFilter(p.Args["filter"])
					list, err := b.deps.Orders.List(p.Context, filter, stringList(p.Args["orderBy"]))
					if err != nil {
						return nil, err
					}
					if list == nil {
						list = []*entity.Order{}
					}
					return list, nil
				},
			},
			"orders": &gql.Field{
				Type: gql.NewNonNull(gql.NewList(gql.NewNonNull(b.orderType))),
				Args: gql.FieldConfigArgument{
					"orderDate_Gte": &gql.ArgumentConfig{Type: gql.NewNonNull(gql.String)},
				},
				Resolve: func(p gql.ResolveParams) (interface{}, error) {
					raw := stringArg(p.Args, "orderDate_Gte")
					since, ok := parseDateArg(raw)
					if !ok {
						return nil, fmt.Errorf("invalid date: %s", raw)
					}
					list, err := b.deps.Orders.List(p.Context, repository.OrderFilter{OrderDateGte: &since}, nil)
					if err != nil {
						return nil, err
					}
					if list == nil {
						list = []*entity.Order{}
					}
					return list, nil
				},
			},
		},
	})
}
