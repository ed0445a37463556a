package handler

import (
	"github.com/deppfellow/workout-api/internal/server"
	"github.com/deppfellow/workout-api/internal/service"
)

// Handlers is a container that groups all HTTP handlers.
//
// Handlers represent the HTTP layer: parse input, validate, call services,
// and return responses. The router receives this one object instead of many.
type Handlers struct {
	Health            *HealthHandler  // Health serves /status (liveness + dependency checks).
	OpenAPI           *OpenAPIHandler // OpenAPI serves the API documentation UI.
	Categoria         *CategoriaHandler
	CentroTreinamento *CentroTreinamentoHandler
	Atleta            *AtletaHandler
}

// NewHandlers constructs the handler container.
func NewHandlers(s *server.Server, services *service.Services) *Handlers {
	return &Handlers{
		Health:            NewHealthHandler(s),
		OpenAPI:           NewOpenAPIHandler(s),
		Categoria:         NewCategoriaHandler(s, services.Categoria),
		CentroTreinamento: NewCentroTreinamentoHandler(s, services.CentroTreinamento),
		Atleta:            NewAtletaHandler(s, services.Atleta),
	}
}
