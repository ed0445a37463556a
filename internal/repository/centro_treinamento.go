package repository

import (
	"context"
	"fmt"

	"github.com/deppfellow/workout-api/internal/model/centrotreinamento"
	"github.com/deppfellow/workout-api/internal/server"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// CentroTreinamentoRepository stores centros de treinamento.
type CentroTreinamentoRepository struct {
	server *server.Server
}

// NewCentroTreinamentoRepository returns a repository backed by the server's pool.
func NewCentroTreinamentoRepository(s *server.Server) *CentroTreinamentoRepository {
	return &CentroTreinamentoRepository{server: s}
}

const centroTreinamentoColumns = `pk_id, id, nome, endereco, proprietario`

// CreateCentroTreinamento inserts a centro with a fresh public id.
func (r *CentroTreinamentoRepository) CreateCentroTreinamento(ctx context.Context, payload *centrotreinamento.CreateCentroTreinamentoPayload) (*centrotreinamento.CentroTreinamento, error) {
	stmt := `
		INSERT INTO centros_treinamento (id, nome, endereco, proprietario)
		VALUES (@id, @nome, @endereco, @proprietario)
		RETURNING ` + centroTreinamentoColumns

	var created centrotreinamento.CentroTreinamento
	err := pgx.BeginFunc(ctx, r.server.DB.Pool, func(tx pgx.Tx) error {
		rows, err := tx.Query(ctx, stmt, pgx.NamedArgs{
			"id":           uuid.New(),
			"nome":         payload.Nome,
			"endereco":     payload.Endereco,
			"proprietario": payload.Proprietario,
		})
		if err != nil {
			return fmt.Errorf("failed to execute create centro_treinamento query for nome=%s: %w", payload.Nome, err)
		}

		created, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[centrotreinamento.CentroTreinamento])
		if err != nil {
			return fmt.Errorf("failed to collect row from table:centros_treinamento for nome=%s: %w", payload.Nome, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &created, nil
}

// GetCentrosTreinamento returns every centro ordered by nome.
func (r *CentroTreinamentoRepository) GetCentrosTreinamento(ctx context.Context) ([]centrotreinamento.CentroTreinamento, error) {
	stmt := `SELECT ` + centroTreinamentoColumns + ` FROM centros_treinamento ORDER BY nome`

	rows, err := r.server.DB.Pool.Query(ctx, stmt)
	if err != nil {
		return nil, fmt.Errorf("failed to execute get centros_treinamento query: %w", err)
	}

	centros, err := pgx.CollectRows(rows, pgx.RowToStructByName[centrotreinamento.CentroTreinamento])
	if err != nil {
		return nil, fmt.Errorf("failed to collect rows from table:centros_treinamento: %w", err)
	}

	return centros, nil
}

// GetCentroTreinamentoByID returns the centro with the given public id.
func (r *CentroTreinamentoRepository) GetCentroTreinamentoByID(ctx context.Context, id uuid.UUID) (*centrotreinamento.CentroTreinamento, error) {
	return r.getOne(ctx, `SELECT `+centroTreinamentoColumns+` FROM centros_treinamento WHERE id = @id`, pgx.NamedArgs{"id": id})
}

// GetCentroTreinamentoByNome looks a centro up by exact, case-sensitive name.
func (r *CentroTreinamentoRepository) GetCentroTreinamentoByNome(ctx context.Context, nome string) (*centrotreinamento.CentroTreinamento, error) {
	return r.getOne(ctx, `SELECT `+centroTreinamentoColumns+` FROM centros_treinamento WHERE nome = @nome`, pgx.NamedArgs{"nome": nome})
}

func (r *CentroTreinamentoRepository) getOne(ctx context.Context, stmt string, args pgx.NamedArgs) (*centrotreinamento.CentroTreinamento, error) {
	rows, err := r.server.DB.Pool.Query(ctx, stmt, args)
	if err != nil {
		return nil, fmt.Errorf("failed to execute get centro_treinamento query: %w", err)
	}

	centro, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[centrotreinamento.CentroTreinamento])
	if err != nil {
		return nil, fmt.Errorf("failed to collect row from table:centros_treinamento: %w", err)
	}

	return &centro, nil
}

// UpdateCentroTreinamento applies the non-nil fields of payload and returns the refreshed row.
func (r *CentroTreinamentoRepository) UpdateCentroTreinamento(ctx context.Context, payload *centrotreinamento.UpdateCentroTreinamentoPayload) (*centrotreinamento.CentroTreinamento, error) {
	stmt := `
		UPDATE centros_treinamento
		SET nome = COALESCE(@nome, nome),
			endereco = COALESCE(@endereco, endereco),
			proprietario = COALESCE(@proprietario, proprietario)
		WHERE id = @id
		RETURNING ` + centroTreinamentoColumns

	var updated centrotreinamento.CentroTreinamento
	err := pgx.BeginFunc(ctx, r.server.DB.Pool, func(tx pgx.Tx) error {
		rows, err := tx.Query(ctx, stmt, pgx.NamedArgs{
			"id":           payload.UUID(),
			"nome":         payload.Nome,
			"endereco":     payload.Endereco,
			"proprietario": payload.Proprietario,
		})
		if err != nil {
			return fmt.Errorf("failed to execute update centro_treinamento query for id=%s: %w", payload.ID, err)
		}

		updated, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[centrotreinamento.CentroTreinamento])
		if err != nil {
			return fmt.Errorf("failed to collect row from table:centros_treinamento for id=%s: %w", payload.ID, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &updated, nil
}

// DeleteCentroTreinamento removes a centro. Rows still referenced by an
// atleta fail with a foreign key violation.
func (r *CentroTreinamentoRepository) DeleteCentroTreinamento(ctx context.Context, id uuid.UUID) error {
	return pgx.BeginFunc(ctx, r.server.DB.Pool, func(tx pgx.Tx) error {
		result, err := tx.Exec(ctx, `DELETE FROM centros_treinamento WHERE id = @id`, pgx.NamedArgs{"id": id})
		if err != nil {
			return fmt.Errorf("failed to execute delete centro_treinamento query for id=%s: %w", id, err)
		}

		if result.RowsAffected() == 0 {
			return fmt.Errorf("failed to delete from table:centros_treinamento for id=%s: %w", id, pgx.ErrNoRows)
		}
		return nil
	})
}
