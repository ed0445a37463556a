package job

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/deppfellow/workout-api/internal/lib/email"
	"github.com/hibiken/asynq"
)

// AtletaNotifier delivers the "new athlete" notification.
type AtletaNotifier interface {
	SendAtletaCadastradoEmail(ctx context.Context, to string, data email.AtletaCadastradoData) error
}

func (j *JobService) handleAtletaCadastradoTask(ctx context.Context, t *asynq.Task) error {
	var p AtletaCadastradoPayload
	if err := json.Unmarshal(t.Payload(), &p); err != nil {
		// A malformed payload never succeeds, so skip retries.
		return fmt.Errorf("failed to unmarshal atleta cadastrado payload: %v: %w", err, asynq.SkipRetry)
	}

	logger := j.logger.With().
		Str("type", TaskAtletaCadastrado).
		Str("atleta_id", p.AtletaID).
		Logger()

	if j.notifyTo == "" {
		logger.Debug().Msg("no notification email configured, skipping atleta cadastrado task")
		return nil
	}

	logger.Info().Str("to", j.notifyTo).Msg("Processing atleta cadastrado task")

	err := j.notifier.SendAtletaCadastradoEmail(ctx, j.notifyTo, email.AtletaCadastradoData{
		Nome:              p.Nome,
		Categoria:         p.Categoria,
		CentroTreinamento: p.CentroTreinamento,
		CadastradoEm:      p.CreatedAt.Format("02/01/2006 15:04"),
	})
	if err != nil {
		logger.Error().Err(err).Msg("Failed to send atleta cadastrado email")
		return err // asynq retries failed tasks
	}

	logger.Info().Msg("Successfully sent atleta cadastrado email")
	return nil
}
