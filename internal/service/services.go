// Package service contains the business logic.
//
// It sits between the handler and repository layers.
// It receives validated data from the handler, performs
// business operations, and calls repository methods to interact
// with the data
package service

import (
	"github.com/deppfellow/workout-api/internal/lib/job"
	"github.com/deppfellow/workout-api/internal/repository"
	"github.com/deppfellow/workout-api/internal/server"
)

type Services struct {
	Auth              *AuthService
	Job               *job.JobService
	Categoria         *CategoriaService
	CentroTreinamento *CentroTreinamentoService
	Atleta            *AtletaService
}

func NewServices(s *server.Server, repos *repository.Repositories) (*Services, error) {
	authService := NewAuthService(s)

	// Notifications are only sent when the job service runs (Redis configured).
	var tasks TaskEnqueuer
	if s.Job != nil {
		tasks = s.Job.Client
	}

	return &Services{
		Job:               s.Job,
		Auth:              authService,
		Categoria:         NewCategoriaService(repos.Categoria),
		CentroTreinamento: NewCentroTreinamentoService(repos.CentroTreinamento),
		Atleta:            NewAtletaService(repos.Atleta, repos.Categoria, repos.CentroTreinamento, tasks),
	}, nil
}
