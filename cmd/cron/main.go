package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/bella-247/alx-backend-graphql-crm/internal/application/jobs"
	"github.com/bella-247/alx-backend-graphql-crm/internal/infrastructure/gqlclient"
	"github.com/bella-247/alx-backend-graphql-crm/pkg/config"
	"github.com/bella-247/alx-backend-graphql-crm/pkg/logger"
)

// crm-cron agrupa los jobs programados. Cada subcomando es una invocación de un solo
// disparo pensada para crontab; los errores de negocio/transporte quedan en la
// bitácora del job y el proceso sale con código 0 para no romper el scheduler.

func main() {
	root := &cobra.Command{
		Use:          "crm-cron",
		Short:        "Jobs programados del CRM (invocados por cron externo)",
		SilenceUsage: true,
	}
	root.AddCommand(heartbeatCmd(), lowStockCmd(), orderRemindersCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// newJobEnv carga configuración, abre la bitácora del job y construye el cliente GraphQL.
func newJobEnv(logPath func(config.CronConfig) string) (*config.Config, *logger.Logger, *gqlclient.Client, func(), error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, nil, nil, fmt.Errorf("cargar configuración: %w", err)
	}
	log, closeLog, err := logger.NewFile(logPath(cfg.Cron))
	if err != nil {
		return nil, nil, nil, nil, err
	}
	client := gqlclient.New(cfg.GraphQL.URL, time.Duration(cfg.GraphQL.TimeoutSeconds)*time.Second)
	cleanup := func() { _ = closeLog() }
	return cfg, log, client, cleanup, nil
}

func heartbeatCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "heartbeat",
		Short: "Verifica que el endpoint GraphQL responde y lo registra",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, log, client, cleanup, err := newJobEnv(func(c config.CronConfig) string { return c.HeartbeatLogPath })
			if err != nil {
				return err
			}
			defer cleanup()
			// El resultado ya quedó en la bitácora; el proceso sale 0 igual.
			_ = jobs.NewHeartbeatJob(client, log).Run(context.Background())
			return nil
		},
	}
}

func lowStockCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "low-stock",
		Short: "Pide al backend reponer productos bajo el umbral configurado",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, client, cleanup, err := newJobEnv(func(c config.CronConfig) string { return c.LowStockLogPath })
			if err != nil {
				return err
			}
			defer cleanup()
			job := jobs.NewLowStockJob(client, log, cfg.Cron.LowStockThreshold, cfg.Cron.LowStockRestockBy)
			_ = job.Run(context.Background())
			return nil
		},
	}
}

func orderRemindersCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "order-reminders",
		Short: "Registra recordatorios para las órdenes de los últimos 7 días",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, log, client, cleanup, err := newJobEnv(func(c config.CronConfig) string { return c.OrderRemindersLogPath })
			if err != nil {
				return err
			}
			defer cleanup()
			_ = jobs.NewOrderReminderJob(client, log, os.Stderr).Run(context.Background())
			return nil
		},
	}
}
