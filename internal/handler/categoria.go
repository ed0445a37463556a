package handler

import (
	"net/http"

	"github.com/deppfellow/workout-api/internal/model/categoria"
	"github.com/deppfellow/workout-api/internal/server"
	"github.com/deppfellow/workout-api/internal/service"
	"github.com/labstack/echo/v4"
)

type CategoriaHandler struct {
	Handler
	categoriaService *service.CategoriaService
}

func NewCategoriaHandler(s *server.Server, categoriaService *service.CategoriaService) *CategoriaHandler {
	return &CategoriaHandler{
		Handler:          NewHandler(s),
		categoriaService: categoriaService,
	}
}

func (h *CategoriaHandler) CreateCategoria(c echo.Context) error {
	return Handle(
		h.Handler,
		func(c echo.Context, payload *categoria.CreateCategoriaPayload) (*categoria.Categoria, error) {
			return h.categoriaService.CreateCategoria(c, payload)
		},
		http.StatusCreated,
		&categoria.CreateCategoriaPayload{},
	)(c)
}

func (h *CategoriaHandler) GetCategorias(c echo.Context) error {
	return Handle(
		h.Handler,
		func(c echo.Context, payload *categoria.GetCategoriasPayload) ([]categoria.Categoria, error) {
			return h.categoriaService.GetCategorias(c)
		},
		http.StatusOK,
		&categoria.GetCategoriasPayload{},
	)(c)
}

func (h *CategoriaHandler) GetCategoriaByID(c echo.Context) error {
	return Handle(
		h.Handler,
		func(c echo.Context, payload *categoria.GetCategoriaByIDPayload) (*categoria.Categoria, error) {
			return h.categoriaService.GetCategoriaByID(c, payload.UUID())
		},
		http.StatusOK,
		&categoria.GetCategoriaByIDPayload{},
	)(c)
}

func (h *CategoriaHandler) UpdateCategoria(c echo.Context) error {
	return Handle(
		h.Handler,
		func(c echo.Context, payload *categoria.UpdateCategoriaPayload) (*categoria.Categoria, error) {
			return h.categoriaService.UpdateCategoria(c, payload)
		},
		http.StatusOK,
		&categoria.UpdateCategoriaPayload{},
	)(c)
}

func (h *CategoriaHandler) DeleteCategoria(c echo.Context) error {
	return HandleNoContent(
		h.Handler,
		func(c echo.Context, payload *categoria.DeleteCategoriaPayload) error {
			return h.categoriaService.DeleteCategoria(c, payload.UUID())
		},
		http.StatusNoContent,
		&categoria.DeleteCategoriaPayload{},
	)(c)
}
