package centrotreinamento

import (
	"github.com/deppfellow/workout-api/internal/model"
)

// CentroTreinamento is a training facility athletes are affiliated with.
type CentroTreinamento struct {
	model.Base
	Nome         string `json:"nome" db:"nome"`
	Endereco     string `json:"endereco" db:"endereco"`
	Proprietario string `json:"proprietario" db:"proprietario"`
}
