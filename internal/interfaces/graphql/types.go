package graphql

import (
	gql "github.com/graphql-go/graphql"

	"github.com/bella-247/alx-backend-graphql-crm/internal/domain/entity"
)

// buildTypes arma los tipos de objeto. Order referencia Customer y Product, así que
// esos dos se construyen primero. Los campos decimales se exponen como Float.
func (b *builder) buildTypes() {
	b.customerType = gql.NewObject(gql.ObjectConfig{
		Name: "Customer",
		Fields: gql.Fields{
			"id":        &gql.Field{Type: gql.NewNonNull(gql.ID)},
			"name":      &gql.Field{Type: gql.NewNonNull(gql.String)},
			"email":     &gql.Field{Type: gql.NewNonNull(gql.String)},
			"phone":     &gql.Field{Type: gql.String},
			"createdAt": &gql.Field{Type: gql.DateTime},
		},
	})

	b.productType = gql.NewObject(gql.ObjectConfig{
		Name: "Product",
		Fields: gql.Fields{
			"id":   &gql.Field{Type: gql.NewNonNull(gql.ID)},
			"name": &gql.Field{Type: gql.NewNonNull(gql.String)},
			"price": &gql.Field{
				Type: gql.NewNonNull(gql.Float),
				Resolve: func(p gql.ResolveParams) (interface{}, error) {
					product, ok := p.Source.(*entity.Product)
					if !ok {
						return nil, nil
					}
					return product.Price.InexactFloat64(), nil
				},
			},
			"stock":     &gql.Field{Type: gql.NewNonNull(gql.Int)},
			"createdAt": &gql.Field{Type: gql.DateTime},
		},
	})

	b.orderType = gql.NewObject(gql.ObjectConfig{
		Name: "Order",
		Fields: gql.Fields{
			"id": &gql.Field{Type: gql.NewNonNull(gql.ID)},
			"customer": &gql.Field{
				Type: gql.NewNonNull(b.customerType),
				Resolve: func(p gql.ResolveParams) (interface{}, error) {
					order, ok := p.Source.(*entity.Order)
					if !ok {
						return nil, nil
					}
					return b.deps.Customers.GetByID(p.Context, order.CustomerID)
				},
			},
			"products": &gql.Field{
				Type: gql.NewNonNull(gql.NewList(gql.NewNonNull(b.productType))),
				Resolve: func(p gql.ResolveParams) (interface{}, error) {
					order, ok := p.Source.(*entity.Order)
					if !ok {
						return nil, nil
					}
					return b.deps.Orders.ListProducts(p.Context, order.ID)
				},
			},
			"totalAmount": &gql.Field{
				Type: gql.NewNonNull(gql.Float),
				Resolve: func(p gql.ResolveParams) (interface{}, error) {
					order, ok := p.Source.(*entity.Order)
					if !ok {
						return nil, nil
					}
					return order.TotalAmount.InexactFloat64(), nil
				},
			},
			"orderDate": &gql.Field{Type: gql.NewNonNull(gql.DateTime)},
			"createdAt": &gql.Field{Type: gql.DateTime},
		},
	})
}
