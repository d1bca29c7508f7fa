package jobs

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/bella-247/alx-backend-graphql-crm/pkg/logger"
)

const orderRemindersQuery = `
	query ($since: String!) {
		orders(orderDate_Gte: $since) {
			id
			customer {
				email
			}
		}
	}`

// reminderWindowDays ventana fija de 7 días hacia atrás para los recordatorios.
const reminderWindowDays = 7

// OrderReminderJob consulta las órdenes de los últimos 7 días y registra una línea
// de recordatorio por cada una. Los errores van a la bitácora y también a stderr.
type OrderReminderJob struct {
	client GraphQLExecutor
	log    *logger.Logger
	stderr io.Writer
	now    func() time.Time
}

// NewOrderReminderJob construye el job. stderr se inyecta para poder verificarlo en tests.
func NewOrderReminderJob(client GraphQLExecutor, log *logger.Logger, stderr io.Writer) *OrderReminderJob {
	return &OrderReminderJob{client: client, log: log, stderr: stderr, now: time.Now}
}

// Run ejecuta la consulta una sola vez sobre la ventana de 7 días.
func (j *OrderReminderJob) Run(ctx context.Context) error {
	since := j.now().AddDate(0, 0, -reminderWindowDays).Format("2006-01-02")

	var resp struct {
		Orders []struct {
			ID       string `json:"id"`
			Customer struct {
				Email string `json:"email"`
			} `json:"customer"`
		} `json:"orders"`
	}
	vars := map[string]any{"since": since}
	if err := j.client.Execute(ctx, orderRemindersQuery, vars, &resp); err != nil {
		j.log.Error().Err(err).Msg("order reminders query failed")
		fmt.Fprintf(j.stderr, "Failed %s\n", err)
		return err
	}

	if len(resp.Orders) == 0 {
		j.log.Info().Msg("No pending orders found within the last 7 days.")
		return nil
	}
	for _, o := range resp.Orders {
		j.log.Info().Msgf("Reminder: Order %s for customer %s", o.ID, o.Customer.Email)
	}
	return nil
}
