package handler

import (
	"net/http"

	"github.com/deppfellow/workout-api/internal/model"
	"github.com/deppfellow/workout-api/internal/model/atleta"
	"github.com/deppfellow/workout-api/internal/server"
	"github.com/deppfellow/workout-api/internal/service"
	"github.com/labstack/echo/v4"
)

type AtletaHandler struct {
	Handler
	atletaService *service.AtletaService
}

func NewAtletaHandler(s *server.Server, atletaService *service.AtletaService) *AtletaHandler {
	return &AtletaHandler{
		Handler:       NewHandler(s),
		atletaService: atletaService,
	}
}

func (h *AtletaHandler) CreateAtleta(c echo.Context) error {
	return Handle(
		h.Handler,
		func(c echo.Context, payload *atleta.CreateAtletaPayload) (atleta.AtletaResponse, error) {
			created, err := h.atletaService.CreateAtleta(c, payload)
			if err != nil {
				return atleta.AtletaResponse{}, err
			}
			return created.ToResponse(), nil
		},
		http.StatusCreated,
		&atleta.CreateAtletaPayload{},
	)(c)
}

// GetAtletas serves GET /atletas?nome=&cpf=&page=&size=.
func (h *AtletaHandler) GetAtletas(c echo.Context) error {
	return Handle(
		h.Handler,
		func(c echo.Context, payload *atleta.GetAtletasPayload) (model.Page[atleta.AtletaSummary], error) {
			page, err := h.atletaService.GetAtletas(c, payload)
			if err != nil {
				return model.Page[atleta.AtletaSummary]{}, err
			}
			return model.MapPage(*page, atleta.Atleta.ToSummary), nil
		},
		http.StatusOK,
		&atleta.GetAtletasPayload{},
	)(c)
}

func (h *AtletaHandler) GetAtletaByID(c echo.Context) error {
	return Handle(
		h.Handler,
		func(c echo.Context, payload *atleta.GetAtletaByIDPayload) (atleta.AtletaResponse, error) {
			found, err := h.atletaService.GetAtletaByID(c, payload.UUID())
			if err != nil {
				return atleta.AtletaResponse{}, err
			}
			return found.ToResponse(), nil
		},
		http.StatusOK,
		&atleta.GetAtletaByIDPayload{},
	)(c)
}

func (h *AtletaHandler) UpdateAtleta(c echo.Context) error {
	return Handle(
		h.Handler,
		func(c echo.Context, payload *atleta.UpdateAtletaPayload) (atleta.AtletaResponse, error) {
			updated, err := h.atletaService.UpdateAtleta(c, payload)
			if err != nil {
				return atleta.AtletaResponse{}, err
			}
			return updated.ToResponse(), nil
		},
		http.StatusOK,
		&atleta.UpdateAtletaPayload{},
	)(c)
}

func (h *AtletaHandler) DeleteAtleta(c echo.Context) error {
	return HandleNoContent(
		h.Handler,
		func(c echo.Context, payload *atleta.DeleteAtletaPayload) error {
			return h.atletaService.DeleteAtleta(c, payload.UUID())
		},
		http.StatusNoContent,
		&atleta.DeleteAtletaPayload{},
	)(c)
}
