package repository

import (
	"github.com/deppfellow/workout-api/internal/server"
)

// Repositories is a container for all repository instances.
//
// Every repository shares the pgx pool living on s.DB; services receive the
// container and pick what they need.
type Repositories struct {
	Categoria         *CategoriaRepository
	CentroTreinamento *CentroTreinamentoRepository
	Atleta            *AtletaRepository
}

// NewRepositories constructs the repository container.
func NewRepositories(s *server.Server) *Repositories {
	return &Repositories{
		Categoria:         NewCategoriaRepository(s),
		CentroTreinamento: NewCentroTreinamentoRepository(s),
		Atleta:            NewAtletaRepository(s),
	}
}
