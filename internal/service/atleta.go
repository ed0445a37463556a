package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/deppfellow/workout-api/internal/errs"
	"github.com/deppfellow/workout-api/internal/lib/job"
	"github.com/deppfellow/workout-api/internal/middleware"
	"github.com/deppfellow/workout-api/internal/model"
	"github.com/deppfellow/workout-api/internal/model/atleta"
	"github.com/deppfellow/workout-api/internal/sqlerr"
	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"github.com/jackc/pgx/v5"
	"github.com/labstack/echo/v4"
)

type AtletaStore interface {
	CreateAtleta(ctx context.Context, payload *atleta.CreateAtletaPayload, categoriaID, centroTreinamentoID int) (*atleta.Atleta, error)
	GetAtletas(ctx context.Context, filter atleta.Filter, params model.PageParams) (*model.Page[atleta.Atleta], error)
	GetAtletaByID(ctx context.Context, id uuid.UUID) (*atleta.Atleta, error)
	UpdateAtleta(ctx context.Context, payload *atleta.UpdateAtletaPayload) (*atleta.Atleta, error)
	DeleteAtleta(ctx context.Context, id uuid.UUID) error
}

// TaskEnqueuer is satisfied by *asynq.Client.
type TaskEnqueuer interface {
	EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

type AtletaService struct {
	store      AtletaStore
	categorias CategoriaStore
	centros    CentroTreinamentoStore

	// tasks is nil when background jobs are disabled.
	tasks TaskEnqueuer
}

func NewAtletaService(store AtletaStore, categorias CategoriaStore, centros CentroTreinamentoStore, tasks TaskEnqueuer) *AtletaService {
	return &AtletaService{
		store:      store,
		categorias: categorias,
		centros:    centros,
		tasks:      tasks,
	}
}

func atletaNotFound(id uuid.UUID) error {
	return errs.NewNotFoundError(fmt.Sprintf("Atleta não encontrado no id: %s", id), true, nil)
}

func relatedEntityNotFound(message string) error {
	return errs.NewBadRequestError(message, true, errs.StrPtr(CodeRelatedEntityNotFound), nil, nil)
}

// CreateAtleta resolves the categoria and centro de treinamento by name and
// inserts the athlete. A missing reference is a 400, a duplicated cpf a 409.
func (s *AtletaService) CreateAtleta(ctx echo.Context, payload *atleta.CreateAtletaPayload) (*atleta.Atleta, error) {
	logger := middleware.GetLogger(ctx)
	reqCtx := ctx.Request().Context()

	cat, err := s.categorias.GetCategoriaByNome(reqCtx, payload.Categoria.Nome)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, relatedEntityNotFound(fmt.Sprintf("A categoria '%s' não foi encontrada.", payload.Categoria.Nome))
		}
		logger.Error().Err(err).Msg("failed to resolve categoria")
		return nil, err
	}

	centro, err := s.centros.GetCentroTreinamentoByNome(reqCtx, payload.CentroTreinamento.Nome)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, relatedEntityNotFound(fmt.Sprintf("O centro de treinamento '%s' não foi encontrado.", payload.CentroTreinamento.Nome))
		}
		logger.Error().Err(err).Msg("failed to resolve centro de treinamento")
		return nil, err
	}

	created, err := s.store.CreateAtleta(reqCtx, payload, cat.PkID, centro.PkID)
	if err != nil {
		switch {
		case sqlerr.IsUniqueViolation(err):
			logger.Warn().Msg("atleta already exists")
			return nil, errs.NewConflictError(
				fmt.Sprintf("Já existe um atleta cadastrado com o cpf: %s.", payload.Cpf),
				true,
				errs.StrPtr(CodeAtletaAlreadyExists),
			)
		case sqlerr.IsForeignKeyViolation(err):
			// The categoria or centro was removed between lookup and insert.
			return nil, relatedEntityNotFound("A categoria ou o centro de treinamento informado não existe mais.")
		}
		logger.Error().Err(err).Msg("failed to create atleta")
		return nil, err
	}

	logger.Info().
		Str("event", "atleta_created").
		Str("atleta_id", created.ID.String()).
		Str("categoria", created.CategoriaNome).
		Str("centro_treinamento", created.CentroTreinamentoNome).
		Msg("Atleta created successfully")

	s.enqueueAtletaCadastrado(ctx, created)

	return created, nil
}

// enqueueAtletaCadastrado schedules the notification task. Failures are
// logged and never surface to the client.
func (s *AtletaService) enqueueAtletaCadastrado(ctx echo.Context, created *atleta.Atleta) {
	if s.tasks == nil {
		return
	}

	logger := middleware.GetLogger(ctx)

	task, err := job.NewAtletaCadastradoTask(job.AtletaCadastradoPayload{
		AtletaID:          created.ID.String(),
		Nome:              created.Nome,
		Categoria:         created.CategoriaNome,
		CentroTreinamento: created.CentroTreinamentoNome,
		CreatedAt:         created.CreatedAt,
	})
	if err != nil {
		logger.Error().Err(err).Msg("failed to build atleta cadastrado task")
		return
	}

	info, err := s.tasks.EnqueueContext(ctx.Request().Context(), task)
	if err != nil {
		logger.Error().Err(err).Str("atleta_id", created.ID.String()).Msg("failed to enqueue atleta cadastrado task")
		return
	}

	logger.Debug().Str("task_id", info.ID).Str("queue", info.Queue).Msg("atleta cadastrado task enqueued")
}

// GetAtletas returns a page of athletes filtered by exact nome or cpf.
// No match at all is reported as not found.
func (s *AtletaService) GetAtletas(ctx echo.Context, payload *atleta.GetAtletasPayload) (*model.Page[atleta.Atleta], error) {
	page, err := s.store.GetAtletas(ctx.Request().Context(), payload.Filter(), payload.PageParams())
	if err != nil {
		middleware.GetLogger(ctx).Error().Err(err).Msg("failed to list atletas")
		return nil, err
	}

	if page.Total == 0 {
		return nil, errs.NewNotFoundError("Nenhum atleta encontrado.", true, nil)
	}

	return page, nil
}

func (s *AtletaService) GetAtletaByID(ctx echo.Context, id uuid.UUID) (*atleta.Atleta, error) {
	found, err := s.store.GetAtletaByID(ctx.Request().Context(), id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, atletaNotFound(id)
		}
		middleware.GetLogger(ctx).Error().Err(err).Str("atleta_id", id.String()).Msg("failed to fetch atleta")
		return nil, err
	}

	return found, nil
}

func (s *AtletaService) UpdateAtleta(ctx echo.Context, payload *atleta.UpdateAtletaPayload) (*atleta.Atleta, error) {
	id := payload.UUID()

	updated, err := s.store.UpdateAtleta(ctx.Request().Context(), payload)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, atletaNotFound(id)
		}
		middleware.GetLogger(ctx).Error().Err(err).Str("atleta_id", id.String()).Msg("failed to update atleta")
		return nil, err
	}

	middleware.GetLogger(ctx).Info().
		Str("event", "atleta_updated").
		Str("atleta_id", id.String()).
		Msg("Atleta updated successfully")

	return updated, nil
}

func (s *AtletaService) DeleteAtleta(ctx echo.Context, id uuid.UUID) error {
	if err := s.store.DeleteAtleta(ctx.Request().Context(), id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return atletaNotFound(id)
		}
		middleware.GetLogger(ctx).Error().Err(err).Str("atleta_id", id.String()).Msg("failed to delete atleta")
		return err
	}

	middleware.GetLogger(ctx).Info().
		Str("event", "atleta_deleted").
		Str("atleta_id", id.String()).
		Msg("Atleta deleted successfully")

	return nil
}
