package jobs

import (
	"context"

	"github.com/bella-247/alx-backend-graphql-crm/pkg/logger"
)

const heartbeatQuery = `{ hello }`

// HeartbeatJob verifica que el endpoint GraphQL responde y deja constancia en la
// bitácora. Los fallos se registran siempre, nunca se tragan.
type HeartbeatJob struct {
	client GraphQLExecutor
	log    *logger.Logger
}

// NewHeartbeatJob construye el job con cliente y logger inyectados.
func NewHeartbeatJob(client GraphQLExecutor, log *logger.Logger) *HeartbeatJob {
	return &HeartbeatJob{client: client, log: log}
}

// Run ejecuta la secuencia Connect -> Execute -> Log una sola vez.
func (j *HeartbeatJob) Run(ctx context.Context) error {
	var resp struct {
		Hello string `json:"hello"`
	}
	if err := j.client.Execute(ctx, heartbeatQuery, nil, &resp); err != nil {
		j.log.Error().Err(err).Msg("heartbeat query failed")
		return err
	}
	j.log.Info().Msg("CRM is alive")
	return nil
}
