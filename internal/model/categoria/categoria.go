package categoria

import (
	"github.com/deppfellow/workout-api/internal/model"
)

// Categoria is a named classification an athlete belongs to.
type Categoria struct {
	model.Base
	Nome string `json:"nome" db:"nome"`
}
