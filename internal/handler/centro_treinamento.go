package handler

import (
	"net/http"

	"github.com/deppfellow/workout-api/internal/model/centrotreinamento"
	"github.com/deppfellow/workout-api/internal/server"
	"github.com/deppfellow/workout-api/internal/service"
	"github.com/labstack/echo/v4"
)

type CentroTreinamentoHandler struct {
	Handler
	centroTreinamentoService *service.CentroTreinamentoService
}

func NewCentroTreinamentoHandler(s *server.Server, centroTreinamentoService *service.CentroTreinamentoService) *CentroTreinamentoHandler {
	return &CentroTreinamentoHandler{
		Handler:                  NewHandler(s),
		centroTreinamentoService: centroTreinamentoService,
	}
}

func (h *CentroTreinamentoHandler) CreateCentroTreinamento(c echo.Context) error {
	return Handle(
		h.Handler,
		func(c echo.Context, payload *centrotreinamento.CreateCentroTreinamentoPayload) (*centrotreinamento.CentroTreinamento, error) {
			return h.centroTreinamentoService.CreateCentroTreinamento(c, payload)
		},
		http.StatusCreated,
		&centrotreinamento.CreateCentroTreinamentoPayload{},
	)(c)
}

func (h *CentroTreinamentoHandler) GetCentrosTreinamento(c echo.Context) error {
	return Handle(
		h.Handler,
		func(c echo.Context, payload *centrotreinamento.GetCentrosTreinamentoPayload) ([]centrotreinamento.CentroTreinamento, error) {
			return h.centroTreinamentoService.GetCentrosTreinamento(c)
		},
		http.StatusOK,
		&centrotreinamento.GetCentrosTreinamentoPayload{},
	)(c)
}

func (h *CentroTreinamentoHandler) GetCentroTreinamentoByID(c echo.Context) error {
	return Handle(
		h.Handler,
		func(c echo.Context, payload *centrotreinamento.GetCentroTreinamentoByIDPayload) (*centrotreinamento.CentroTreinamento, error) {
			return h.centroTreinamentoService.GetCentroTreinamentoByID(c, payload.UUID())
		},
		http.StatusOK,
		&centrotreinamento.GetCentroTreinamentoByIDPayload{},
	)(c)
}

func (h *CentroTreinamentoHandler) UpdateCentroTreinamento(c echo.Context) error {
	return Handle(
		h.Handler,
		func(c echo.Context, payload *centrotreinamento.UpdateCentroTreinamentoPayload) (*centrotreinamento.CentroTreinamento, error) {
			return h.centroTreinamentoService.UpdateCentroTreinamento(c, payload)
		},
		http.StatusOK,
		&centrotreinamento.UpdateCentroTreinamentoPayload{},
	)(c)
}

func (h *CentroTreinamentoHandler) DeleteCentroTreinamento(c echo.Context) error {
	return HandleNoContent(
		h.Handler,
		func(c echo.Context, payload *centrotreinamento.DeleteCentroTreinamentoPayload) error {
			return h.centroTreinamentoService.DeleteCentroTreinamento(c, payload.UUID())
		},
		http.StatusNoContent,
		&centrotreinamento.DeleteCentroTreinamentoPayload{},
	)(c)
}
