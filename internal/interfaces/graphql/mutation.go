package graphql

import (
	"time"

	gql "github.com/graphql-go/graphql"
	"github.com/shopspring/decimal"

	"github.com/bella-247/alx-backend-graphql-crm/internal/application/dto"
	"github.com/bella-247/alx-backend-graphql-crm/internal/domain/entity"
)

// Payloads de mutación. Los resolvers por defecto navegan los tags json.

type customerPayload struct {
	Customer *entity.Customer `json:"customer"`
	Message  string           `json:"message"`
}

type bulkCustomersPayload struct {
	Customers []*entity.Customer `json:"customers"`
	Errors    []string           `json:"errors"`
}

type productPayload struct {
	Product *entity.Product `json:"product"`
	Message string          `json:"message"`
}

type orderPayload struct {
	Order   *entity.Order `json:"order"`
	Message string        `json:"message"`
}

type lowStockPayload struct {
	Products []*entity.Product `json:"products"`
	Message  string            `json:"message"`
}

// mutationType raíz de mutaciones. Los errores de validación y de no-encontrado se
// devuelven como error del resolver y terminan en el arreglo "errors" de la respuesta,
// con los textos exactos de internal/domain.
func (b *builder) mutationType() *gql.Object {
	createCustomerPayload := gql.NewObject(gql.ObjectConfig{
		Name: "CreateCustomerPayload",
		Fields: gql.Fields{
			"customer": &gql.Field{Type: b.customerType},
			"message":  &gql.Field{Type: gql.String},
		},
	})
	bulkCreatePayload := gql.NewObject(gql.ObjectConfig{
		Name: "BulkCreateCustomersPayload",
		Fields: gql.Fields{
			"customers": &gql.Field{Type: gql.NewList(gql.NewNonNull(b.customerType))},
			"errors":    &gql.Field{Type: gql.NewList(gql.NewNonNull(gql.String))},
		},
	})
	createProductPayload := gql.NewObject(gql.ObjectConfig{
		Name: "CreateProductPayload",
		Fields: gql.Fields{
			"product": &gql.Field{Type: b.productType},
			"message": &gql.Field{Type: gql.String},
		},
	})
	createOrderPayload := gql.NewObject(gql.ObjectConfig{
		Name: "CreateOrderPayload",
		Fields: gql.Fields{
			"order":   &gql.Field{Type: b.orderType},
			"message": &gql.Field{Type: gql.String},
		},
	})
	updateLowStockPayload := gql.NewObject(gql.ObjectConfig{
		Name: "UpdateLowStockProductsPayload",
		Fields: gql.Fields{
			"products": &gql.Field{Type: gql.NewList(gql.NewNonNull(b.productType))},
			"message":  &gql.Field{Type: gql.String},
		},
	})

	return gql.NewObject(gql.ObjectConfig{
		Name: "Mutation",
		Fields: gql.Fields{
			"createCustomer": &gql.Field{
				Type: createCustomerPayload,
				Args: gql.FieldConfigArgument{
					"name":  &gql.ArgumentConfig{Type: gql.NewNonNull(gql.String)},
					"email": &gql.ArgumentConfig{Type: gql.NewNonNull(gql.String)},
					"phone": &gql.ArgumentConfig{Type: gql.String},
				},
				Resolve: func(p gql.ResolveParams) (interface{}, error) {
					in := dto.CreateCustomerInput{
						Name:  stringArg(p.Args, "name"),
						Email: stringArg(p.Args, "email"),
						Phone: stringArg(p.Args, "phone"),
					}
					customer, err := b.deps.Customers.Create(p.Context, in)
					if err != nil {
						return nil, err
					}
					return customerPayload{Customer: customer, Message: "customer created successfully"}, nil
				},
			},
			"bulkCreateCustomers": &gql.Field{
				Type: bulkCreatePayload,
				Args: gql.FieldConfigArgument{
					"input": &gql.ArgumentConfig{Type: gql.NewNonNull(gql.NewList(gql.NewNonNull(customerInputType)))},
				},
				Resolve: func(p gql.ResolveParams) (interface{}, error) {
					raw, _ := p.Args["input"].([]interface{})
					inputs := make([]dto.CreateCustomerInput, 0, len(raw))
					for _, item := range raw {
						m, ok := item.(map[string]interface{})
						if !ok {
							continue
						}
						inputs = append(inputs, dto.CreateCustomerInput{
							Name:  stringArg(m, "name"),
							Email: stringArg(m, "email"),
							Phone: stringArg(m, "phone"),
						})
					}
					created, errs, err := b.deps.Customers.BulkCreate(p.Context, inputs)
					if err != nil {
						return nil, err
					}
					if created == nil {
						created = []*entity.Customer{}
					}
					if errs == nil {
						errs = []string{}
					}
					return bulkCustomersPayload{Customers: created, Errors: errs}, nil
				},
			},
			"createProduct": &gql.Field{
				Type: createProductPayload,
				Args: gql.FieldConfigArgument{
					"name":  &gql.ArgumentConfig{Type: gql.NewNonNull(gql.String)},
					"price": &gql.ArgumentConfig{Type: gql.NewNonNull(gql.Float)},
					"stock": &gql.ArgumentConfig{Type: gql.Int, DefaultValue: 0},
				},
				Resolve: func(p gql.ResolveParams) (interface{}, error) {
					price, _ := p.Args["price"].(float64)
					stock, _ := p.Args["stock"].(int)
					in := dto.CreateProductInput{
						Name:  stringArg(p.Args, "name"),
						Price: decimal.NewFromFloat(price),
						Stock: stock,
					}
					product, err := b.deps.Products.Create(p.Context, in)
					if err != nil {
						return nil, err
					}
					return productPayload{Product: product, Message: "Product created successfully"}, nil
				},
			},
			"createOrder": &gql.Field{
				Type: createOrderPayload,
				Args: gql.FieldConfigArgument{
					"customerId": &gql.ArgumentConfig{Type: gql.NewNonNull(gql.ID)},
					"productIds": &gql.ArgumentConfig{Type: gql.NewNonNull(gql.NewList(gql.NewNonNull(gql.ID)))},
					"orderDate":  &gql.ArgumentConfig{Type: gql.DateTime},
				},
				Resolve: func(p gql.ResolveParams) (interface{}, error) {
					in := dto.CreateOrderInput{
						CustomerID: stringArg(p.Args, "customerId"),
						ProductIDs: stringList(p.Args["productIds"]),
					}
					if t, ok := p.Args["orderDate"].(time.Time); ok {
						in.OrderDate = &t
					}
					order, err := b.deps.Orders.Create(p.Context, in)
					if err != nil {
						return nil, err
					}
					return orderPayload{Order: order, Message: "Order created successfully"}, nil
				},
			},
			"updateLowStockProducts": &gql.Field{
				Type: updateLowStockPayload,
				Args: gql.FieldConfigArgument{
					// Sin valores por defecto: el umbral siempre viene del llamador.
					"threshold": &gql.ArgumentConfig{Type: gql.NewNonNull(gql.Int)},
					"restockBy": &gql.ArgumentConfig{Type: gql.NewNonNull(gql.Int)},
				},
				Resolve: func(p gql.ResolveParams) (interface{}, error) {
					threshold, _ := p.Args["threshold"].(int)
					restockBy, _ := p.Args["restockBy"].(int)
					updated, err := b.deps.Products.UpdateLowStock(p.Context, threshold, restockBy)
					if err != nil {
						return nil, err
					}
					message := "Low stock products updated successfully"
					if len(updated) == 0 {
						message = "No low stock products found"
					}
					if updated == nil {
						updated = []*entity.Product{}
					}
					return lowStockPayload{Products: updated, Message: message}, nil
				},
			},
		},
	})
}
