package job

import (
	"encoding/json"
	"time"

	"github.com/hibiken/asynq"
)

const (
	TaskAtletaCadastrado = "atleta:cadastrado"
)

// AtletaCadastradoPayload is what the worker needs to announce a new athlete.
type AtletaCadastradoPayload struct {
	AtletaID          string    `json:"atleta_id"`
	Nome              string    `json:"nome"`
	Categoria         string    `json:"categoria"`
	CentroTreinamento string    `json:"centro_treinamento"`
	CreatedAt         time.Time `json:"created_at"`
}

func NewAtletaCadastradoTask(p AtletaCadastradoPayload) (*asynq.Task, error) {
	payload, err := json.Marshal(p)
	if err != nil {
		return nil, err
	}

	return asynq.NewTask(
		TaskAtletaCadastrado,
		payload,
		asynq.MaxRetry(3),
		asynq.Queue("default"),
		asynq.Timeout(30*time.Second),
	), nil
}
