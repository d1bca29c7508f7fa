package graphql

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/bella-247/alx-backend-graphql-crm/internal/domain/repository"
)

// Helpers para decodificar argumentos: graphql-go entrega los inputs como
// map[string]interface{} y las listas como []interface{}.

func stringArg(args map[string]interface{}, key string) string {
	s, _ := args[key].(string)
	return s
}

func stringList(v interface{}) []string {
	raw, ok := v.([]interface{})
	if !ok {
		return nil
	}
	out := make([]string, 0, len(raw))
	for _, item := range raw {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

func timePtr(m map[string]interface{}, key string) *time.Time {
	t, ok := m[key].(time.Time)
	if !ok {
		return nil
	}
	return &t
}

func decimalPtr(m map[string]interface{}, key string) *decimal.Decimal {
	f, ok := m[key].(float64)
	if !ok {
		return nil
	}
	d := decimal.NewFromFloat(f)
	return &d
}

func intPtr(m map[string]interface{}, key string) *int {
	n, ok := m[key].(int)
	if !ok {
		return nil
	}
	return &n
}

func decodeCustomerFilter(v interface{}) repository.CustomerFilter {
	m, ok := v.(map[string]interface{})
	if !ok {
		return repository.CustomerFilter{}
	}
	return repository.CustomerFilter{
		NameIcontains:  stringArg(m, "nameIcontains"),
		EmailIcontains: stringArg(m, "emailIcontains"),
		PhonePattern:   stringArg(m, "phonePattern"),
		CreatedAtGte:   timePtr(m, "createdAtGte"),
		CreatedAtLte:   timePtr(m, "createdAtLte"),
	}
}

func decodeProductFilter(v interface{}) repository.ProductFilter {
	m, ok := v.(map[string]interface{})
	if !ok {
		return repository.ProductFilter{}
	}
	return repository.ProductFilter{
		NameIcontains: stringArg(m, "nameIcontains"),
		PriceGte:      decimalPtr(m, "priceGte"),
		PriceLte:      decimalPtr(m, "priceLte"),
		StockGte:      intPtr(m, "stockGte"),
		StockLte:      intPtr(m, "stockLte"),
	}
}

func decodeOrderFilter(v interface{}) repository.OrderFilter {
	m, ok := v.(map[string]interface{})
	if !ok {
		return repository.OrderFilter{}
	}
	return repository.OrderFilter{
		TotalAmountGte: decimalPtr(m, "totalAmountGte"),
		TotalAmountLte: decimalPtr(m, "totalAmountLte"),
		OrderDateGte:   timePtr(m, "orderDateGte"),
		OrderDateLte:   timePtr(m, "orderDateLte"),
		CustomerName:   stringArg(m, "customerName"),
		ProductName:    stringArg(m, "productName"),
		ProductID:      stringArg(m, "productId"),
	}
}

// parseDateArg acepta fecha ISO simple ("2006-01-02") o timestamp RFC3339, el mismo
// formato que mandan los scripts cron.
func parseDateArg(s string) (time.Time, bool) {
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, true
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, true
	}
	return time.Time{}, false
}
