package jobs

import (
	"context"
	"errors"

	"github.com/bella-247/alx-backend-graphql-crm/pkg/logger"
)

const lowStockMutation = `
	mutation ($threshold: Int!, $restockBy: Int!) {
		updateLowStockProducts(threshold: $threshold, restockBy: $restockBy) {
			products {
				id
				name
				stock
			}
			message
		}
	}`

// ErrLowStockConfig indica que el umbral o la cantidad de reposición no fueron
// configurados. No existe un valor por defecto para el umbral.
var ErrLowStockConfig = errors.New("low stock threshold and restock amount must be configured and positive")

// LowStockJob pide al backend identificar y reponer los productos bajo el umbral,
// y registra cada producto actualizado con su stock nuevo.
type LowStockJob struct {
	client    GraphQLExecutor
	log       *logger.Logger
	threshold int
	restockBy int
}

// NewLowStockJob construye el job. threshold y restockBy vienen de la configuración
// del cron, sin valores por defecto.
func NewLowStockJob(client GraphQLExecutor, log *logger.Logger, threshold, restockBy int) *LowStockJob {
	return &LowStockJob{client: client, log: log, threshold: threshold, restockBy: restockBy}
}

// Run ejecuta la mutación una sola vez. Errores de transporte o ejecución se
// registran sin tumbar el proceso.
func (j *LowStockJob) Run(ctx context.Context) error {
	if j.threshold <= 0 || j.restockBy <= 0 {
		j.log.Error().
			Int("threshold", j.threshold).
			Int("restock_by", j.restockBy).
			Msg(ErrLowStockConfig.Error())
		return ErrLowStockConfig
	}

	var resp struct {
		UpdateLowStockProducts struct {
			Products []struct {
				ID    string `json:"id"`
				Name  string `json:"name"`
				Stock int    `json:"stock"`
			} `json:"products"`
			Message string `json:"message"`
		} `json:"updateLowStockProducts"`
	}
	vars := map[string]any{
		"threshold": j.threshold,
		"restockBy": j.restockBy,
	}
	if err := j.client.Execute(ctx, lowStockMutation, vars, &resp); err != nil {
		j.log.Error().Err(err).Msg("low stock update failed")
		return err
	}

	products := resp.UpdateLowStockProducts.Products
	if len(products) == 0 {
		j.log.Info().Msg("No low stock products found")
		return nil
	}
	for _, p := range products {
		j.log.Info().Str("product", p.Name).Int("stock", p.Stock).Msg("product restocked")
	}
	return nil
}
