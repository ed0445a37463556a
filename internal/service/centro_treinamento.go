package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/deppfellow/workout-api/internal/errs"
	"github.com/deppfellow/workout-api/internal/middleware"
	"github.com/deppfellow/workout-api/internal/model/centrotreinamento"
	"github.com/deppfellow/workout-api/internal/sqlerr"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/labstack/echo/v4"
)

type CentroTreinamentoStore interface {
	CreateCentroTreinamento(ctx context.Context, payload *centrotreinamento.CreateCentroTreinamentoPayload) (*centrotreinamento.CentroTreinamento, error)
	GetCentrosTreinamento(ctx context.Context) ([]centrotreinamento.CentroTreinamento, error)
	GetCentroTreinamentoByID(ctx context.Context, id uuid.UUID) (*centrotreinamento.CentroTreinamento, error)
	GetCentroTreinamentoByNome(ctx context.Context, nome string) (*centrotreinamento.CentroTreinamento, error)
	UpdateCentroTreinamento(ctx context.Context, payload *centrotreinamento.UpdateCentroTreinamentoPayload) (*centrotreinamento.CentroTreinamento, error)
	DeleteCentroTreinamento(ctx context.Context, id uuid.UUID) error
}

type CentroTreinamentoService struct {
	store CentroTreinamentoStore
}

func NewCentroTreinamentoService(store CentroTreinamentoStore) *CentroTreinamentoService {
	return &CentroTreinamentoService{store: store}
}

func centroTreinamentoNotFound(id uuid.UUID) error {
	return errs.NewNotFoundError(fmt.Sprintf("Centro de treinamento não encontrado no id: %s", id), true, nil)
}

func centroTreinamentoAlreadyExists(nome string) error {
	return errs.NewConflictError(
		fmt.Sprintf("Já existe um centro de treinamento com esse nome: %s.", nome),
		true,
		errs.StrPtr(CodeCentroTreinamentoAlreadyExists),
	)
}

func (s *CentroTreinamentoService) CreateCentroTreinamento(ctx echo.Context, payload *centrotreinamento.CreateCentroTreinamentoPayload) (*centrotreinamento.CentroTreinamento, error) {
	logger := middleware.GetLogger(ctx)

	created, err := s.store.CreateCentroTreinamento(ctx.Request().Context(), payload)
	if err != nil {
		if sqlerr.IsUniqueViolation(err) {
			return nil, centroTreinamentoAlreadyExists(payload.Nome)
		}
		logger.Error().Err(err).Msg("failed to create centro de treinamento")
		return nil, err
	}

	logger.Info().
		Str("event", "centro_treinamento_created").
		Str("centro_treinamento_id", created.ID.String()).
		Str("nome", created.Nome).
		Msg("Centro de treinamento created successfully")

	return created, nil
}

func (s *CentroTreinamentoService) GetCentrosTreinamento(ctx echo.Context) ([]centrotreinamento.CentroTreinamento, error) {
	centros, err := s.store.GetCentrosTreinamento(ctx.Request().Context())
	if err != nil {
		middleware.GetLogger(ctx).Error().Err(err).Msg("failed to list centros de treinamento")
		return nil, err
	}

	if len(centros) == 0 {
		return nil, errs.NewNotFoundError("Nenhum centro de treinamento encontrado.", true, nil)
	}

	return centros, nil
}

func (s *CentroTreinamentoService) GetCentroTreinamentoByID(ctx echo.Context, id uuid.UUID) (*centrotreinamento.CentroTreinamento, error) {
	found, err := s.store.GetCentroTreinamentoByID(ctx.Request().Context(), id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, centroTreinamentoNotFound(id)
		}
		return nil, err
	}

	return found, nil
}

func (s *CentroTreinamentoService) UpdateCentroTreinamento(ctx echo.Context, payload *centrotreinamento.UpdateCentroTreinamentoPayload) (*centrotreinamento.CentroTreinamento, error) {
	id := payload.UUID()

	updated, err := s.store.UpdateCentroTreinamento(ctx.Request().Context(), payload)
	if err != nil {
		switch {
		case errors.Is(err, pgx.ErrNoRows):
			return nil, centroTreinamentoNotFound(id)
		case sqlerr.IsUniqueViolation(err):
			return nil, centroTreinamentoAlreadyExists(*payload.Nome)
		}
		middleware.GetLogger(ctx).Error().Err(err).Str("centro_treinamento_id", id.String()).Msg("failed to update centro de treinamento")
		return nil, err
	}

	middleware.GetLogger(ctx).Info().
		Str("event", "centro_treinamento_updated").
		Str("centro_treinamento_id", id.String()).
		Msg("Centro de treinamento updated successfully")

	return updated, nil
}

func (s *CentroTreinamentoService) DeleteCentroTreinamento(ctx echo.Context, id uuid.UUID) error {
	if err := s.store.DeleteCentroTreinamento(ctx.Request().Context(), id); err != nil {
		switch {
		case errors.Is(err, pgx.ErrNoRows):
			return centroTreinamentoNotFound(id)
		case sqlerr.IsForeignKeyViolation(err):
			return errs.NewConflictError(
				"Este centro de treinamento contém atletas e não pode ser excluído.",
				true,
				errs.StrPtr(CodeCentroTreinamentoInUse),
			)
		}
		return err
	}

	middleware.GetLogger(ctx).Info().
		Str("event", "centro_treinamento_deleted").
		Str("centro_treinamento_id", id.String()).
		Msg("Centro de treinamento deleted successfully")

	return nil
}
