package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/deppfellow/workout-api/internal/errs"
	"github.com/deppfellow/workout-api/internal/middleware"
	"github.com/deppfellow/workout-api/internal/model/categoria"
	"github.com/deppfellow/workout-api/internal/sqlerr"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/labstack/echo/v4"
)

// CategoriaStore is the persistence the categoria service needs.
type CategoriaStore interface {
	CreateCategoria(ctx context.Context, payload *categoria.CreateCategoriaPayload) (*categoria.Categoria, error)
	GetCategorias(ctx context.Context) ([]categoria.Categoria, error)
	GetCategoriaByID(ctx context.Context, id uuid.UUID) (*categoria.Categoria, error)
	GetCategoriaByNome(ctx context.Context, nome string) (*categoria.Categoria, error)
	UpdateCategoria(ctx context.Context, payload *categoria.UpdateCategoriaPayload) (*categoria.Categoria, error)
	DeleteCategoria(ctx context.Context, id uuid.UUID) error
}

type CategoriaService struct {
	store CategoriaStore
}

func NewCategoriaService(store CategoriaStore) *CategoriaService {
	return &CategoriaService{store: store}
}

func categoriaNotFound(id uuid.UUID) error {
	return errs.NewNotFoundError(fmt.Sprintf("Categoria não encontrada no id: %s", id), true, nil)
}

func categoriaAlreadyExists(nome string) error {
	return errs.NewConflictError(
		fmt.Sprintf("Já existe uma categoria com esse nome: %s.", nome),
		true,
		errs.StrPtr(CodeCategoriaAlreadyExists),
	)
}

func (s *CategoriaService) CreateCategoria(ctx echo.Context, payload *categoria.CreateCategoriaPayload) (*categoria.Categoria, error) {
	logger := middleware.GetLogger(ctx)

	created, err := s.store.CreateCategoria(ctx.Request().Context(), payload)
	if err != nil {
		if sqlerr.IsUniqueViolation(err) {
			logger.Warn().Str("nome", payload.Nome).Msg("categoria already exists")
			return nil, categoriaAlreadyExists(payload.Nome)
		}
		logger.Error().Err(err).Msg("failed to create categoria")
		return nil, err
	}

	logger.Info().
		Str("event", "categoria_created").
		Str("categoria_id", created.ID.String()).
		Str("nome", created.Nome).
		Msg("Categoria created successfully")

	return created, nil
}

// GetCategorias lists every categoria. An empty table is reported as not found.
func (s *CategoriaService) GetCategorias(ctx echo.Context) ([]categoria.Categoria, error) {
	categorias, err := s.store.GetCategorias(ctx.Request().Context())
	if err != nil {
		middleware.GetLogger(ctx).Error().Err(err).Msg("failed to list categorias")
		return nil, err
	}

	if len(categorias) == 0 {
		return nil, errs.NewNotFoundError("Nenhuma categoria encontrada.", true, nil)
	}

	return categorias, nil
}

func (s *CategoriaService) GetCategoriaByID(ctx echo.Context, id uuid.UUID) (*categoria.Categoria, error) {
	found, err := s.store.GetCategoriaByID(ctx.Request().Context(), id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, categoriaNotFound(id)
		}
		middleware.GetLogger(ctx).Error().Err(err).Str("categoria_id", id.String()).Msg("failed to fetch categoria")
		return nil, err
	}

	return found, nil
}

func (s *CategoriaService) UpdateCategoria(ctx echo.Context, payload *categoria.UpdateCategoriaPayload) (*categoria.Categoria, error) {
	logger := middleware.GetLogger(ctx)
	id := payload.UUID()

	updated, err := s.store.UpdateCategoria(ctx.Request().Context(), payload)
	if err != nil {
		switch {
		case errors.Is(err, pgx.ErrNoRows):
			return nil, categoriaNotFound(id)
		case sqlerr.IsUniqueViolation(err):
			return nil, categoriaAlreadyExists(*payload.Nome)
		}
		logger.Error().Err(err).Str("categoria_id", id.String()).Msg("failed to update categoria")
		return nil, err
	}

	logger.Info().
		Str("event", "categoria_updated").
		Str("categoria_id", id.String()).
		Msg("Categoria updated successfully")

	return updated, nil
}

// DeleteCategoria removes a categoria unless an athlete still references it.
func (s *CategoriaService) DeleteCategoria(ctx echo.Context, id uuid.UUID) error {
	logger := middleware.GetLogger(ctx)

	if err := s.store.DeleteCategoria(ctx.Request().Context(), id); err != nil {
		switch {
		case errors.Is(err, pgx.ErrNoRows):
			return categoriaNotFound(id)
		case sqlerr.IsForeignKeyViolation(err):
			logger.Warn().Str("categoria_id", id.String()).Msg("categoria still referenced by atletas")
			return errs.NewConflictError(
				"Esta categoria contém atletas e não pode ser excluída.",
				true,
				errs.StrPtr(CodeCategoriaInUse),
			)
		}
		logger.Error().Err(err).Str("categoria_id", id.String()).Msg("failed to delete categoria")
		return err
	}

	logger.Info().
		Str("event", "categoria_deleted").
		Str("categoria_id", id.String()).
		Msg("Categoria deleted successfully")

	return nil
}
