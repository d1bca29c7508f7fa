package graphql

import gql "github.com/graphql-go/graphql"

// Tipos de entrada: input de cliente para el lote y filtros por entidad.
// Los nombres de campo siguen la convención <campo><Operador> (gte/lte/icontains).

var customerInputType = gql.NewInputObject(gql.InputObjectConfig{
	Name: "CustomerInput",
	Fields: gql.InputObjectConfigFieldMap{
		"name":  &gql.InputObjectFieldConfig{Type: gql.NewNonNull(gql.String)},
		"email": &gql.InputObjectFieldConfig{Type: gql.NewNonNull(gql.String)},
		"phone": &gql.InputObjectFieldConfig{Type: gql.String},
	},
})

var customerFilterType = gql.NewInputObject(gql.InputObjectConfig{
	Name: "CustomerFilterInput",
	Fields: gql.InputObjectConfigFieldMap{
		"nameIcontains":  &gql.InputObjectFieldConfig{Type: gql.String},
		"emailIcontains": &gql.InputObjectFieldConfig{Type: gql.String},
		"phonePattern":   &gql.InputObjectFieldConfig{Type: gql.String},
		"createdAtGte":   &gql.InputObjectFieldConfig{Type: gql.DateTime},
		"createdAtLte":   &gql.InputObjectFieldConfig{Type: gql.DateTime},
	},
})

var productFilterType = gql.NewInputObject(gql.InputObjectConfig{
	Name: "ProductFilterInput",
	Fields: gql.InputObjectConfigFieldMap{
		"nameIcontains": &gql.InputObjectFieldConfig{Type: gql.String},
		"priceGte":      &gql.InputObjectFieldConfig{Type: gql.Float},
		"priceLte":      &gql.InputObjectFieldConfig{Type: gql.Float},
		"stockGte":      &gql.InputObjectFieldConfig{Type: gql.Int},
		"stockLte":      &gql.InputObjectFieldConfig{Type: gql.Int},
	},
})

var orderFilterType = gql.NewInputObject(gql.InputObjectConfig{
	Name: "OrderFilterInput",
	Fields: gql.InputObjectConfigFieldMap{
		"totalAmountGte": &gql.InputObjectFieldConfig{Type: gql.Float},
		"totalAmountLte": &gql.InputObjectFieldConfig{Type: gql.Float},
		"orderDateGte":   &gql.InputObjectFieldConfig{Type: gql.DateTime},
		"orderDateLte":   &gql.InputObjectFieldConfig{Type: gql.DateTime},
		"customerName":   &gql.InputObjectFieldConfig{Type: gql.String},
		"productName":    &gql.InputObjectFieldConfig{Type: gql.String},
		"productId":      &gql.InputObjectFieldConfig{Type: gql.ID},
	},
})

// orderByType lista de nombres de campo, con prefijo "-" para descendente.
var orderByType = gql.NewList(gql.NewNonNull(gql.String))
