package atleta

import (
	"time"

	"github.com/deppfellow/workout-api/internal/model"
)

// Atleta is the persisted athlete row.
//
// CategoriaID and CentroTreinamentoID are the internal foreign keys.
// CategoriaNome and CentroTreinamentoNome are filled by the repository
// from a join so responses can be built without extra lookups.
type Atleta struct {
	model.Base
	Nome                  string    `db:"nome"`
	Cpf                   string    `db:"cpf"`
	Idade                 int       `db:"idade"`
	Peso                  float64   `db:"peso"`
	Altura                float64   `db:"altura"`
	Sexo                  string    `db:"sexo"`
	CreatedAt             time.Time `db:"created_at"`
	CategoriaID           int       `db:"categoria_id"`
	CentroTreinamentoID   int       `db:"centro_treinamento_id"`
	CategoriaNome         string    `db:"categoria_nome"`
	CentroTreinamentoNome string    `db:"centro_treinamento_nome"`
}

// Filter narrows an athlete listing. Nome wins over Cpf when both are set.
type Filter struct {
	Nome string
	Cpf  string
}
