package repository

import (
	"context"
	"fmt"

	"github.com/deppfellow/workout-api/internal/model"
	"github.com/deppfellow/workout-api/internal/model/atleta"
	"github.com/deppfellow/workout-api/internal/server"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// AtletaRepository stores atletas and joins the names of their categoria
// and centro de treinamento on read.
type AtletaRepository struct {
	server *server.Server
}

// NewAtletaRepository returns a repository backed by the server's pool.
func NewAtletaRepository(s *server.Server) *AtletaRepository {
	return &AtletaRepository{server: s}
}

// atletaSelect projects an athlete together with the names of its
// categoria and centro de treinamento. The source relation is aliased "a"
// so the same projection serves plain reads and CTEs over INSERT/UPDATE.
const atletaSelect = `
	SELECT
		a.pk_id, a.id, a.nome, a.cpf, a.idade, a.peso, a.altura, a.sexo, a.created_at,
		a.categoria_id, a.centro_treinamento_id,
		c.nome AS categoria_nome,
		ct.nome AS centro_treinamento_nome
	FROM %s a
	JOIN categorias c ON c.pk_id = a.categoria_id
	JOIN centros_treinamento ct ON ct.pk_id = a.centro_treinamento_id`

// CreateAtleta inserts an atleta pointing at the given internal keys and
// returns it with its related names.
func (r *AtletaRepository) CreateAtleta(ctx context.Context, payload *atleta.CreateAtletaPayload, categoriaID, centroTreinamentoID int) (*atleta.Atleta, error) {
	stmt := `
		WITH inserted AS (
			INSERT INTO atletas (id, nome, cpf, idade, peso, altura, sexo, categoria_id, centro_treinamento_id)
			VALUES (@id, @nome, @cpf, @idade, @peso, @altura, @sexo, @categoria_id, @centro_treinamento_id)
			RETURNING *
		)` + fmt.Sprintf(atletaSelect, "inserted")

	var created atleta.Atleta
	err := pgx.BeginFunc(ctx, r.server.DB.Pool, func(tx pgx.Tx) error {
		rows, err := tx.Query(ctx, stmt, pgx.NamedArgs{
			"id":                    uuid.New(),
			"nome":                  payload.Nome,
			"cpf":                   payload.Cpf,
			"idade":                 payload.Idade,
			"peso":                  payload.Peso,
			"altura":                payload.Altura,
			"sexo":                  payload.Sexo,
			"categoria_id":          categoriaID,
			"centro_treinamento_id": centroTreinamentoID,
		})
		if err != nil {
			return fmt.Errorf("failed to execute create atleta query for cpf=%s: %w", payload.Cpf, err)
		}

		created, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[atleta.Atleta])
		if err != nil {
			return fmt.Errorf("failed to collect row from table:atletas for cpf=%s: %w", payload.Cpf, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &created, nil
}

// GetAtletaByID returns the atleta with the given public id.
func (r *AtletaRepository) GetAtletaByID(ctx context.Context, id uuid.UUID) (*atleta.Atleta, error) {
	stmt := fmt.Sprintf(atletaSelect, "atletas") + ` WHERE a.id = @id`

	rows, err := r.server.DB.Pool.Query(ctx, stmt, pgx.NamedArgs{"id": id})
	if err != nil {
		return nil, fmt.Errorf("failed to execute get atleta by id query for id=%s: %w", id, err)
	}

	found, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[atleta.Atleta])
	if err != nil {
		return nil, fmt.Errorf("failed to collect row from table:atletas for id=%s: %w", id, err)
	}

	return &found, nil
}

// GetAtletas returns one page of athletes matching filter, ordered by name.
// Filtering is by exact nome, or by exact cpf when nome is empty.
func (r *AtletaRepository) GetAtletas(ctx context.Context, filter atleta.Filter, params model.PageParams) (*model.Page[atleta.Atleta], error) {
	args := pgx.NamedArgs{
		"limit":  params.Size,
		"offset": params.Offset(),
	}

	where := ""
	switch {
	case filter.Nome != "":
		where = ` WHERE a.nome = @nome`
		args["nome"] = filter.Nome
	case filter.Cpf != "":
		where = ` WHERE a.cpf = @cpf`
		args["cpf"] = filter.Cpf
	}

	var total int64
	countStmt := `SELECT COUNT(*) FROM atletas a` + where
	if err := r.server.DB.Pool.QueryRow(ctx, countStmt, args).Scan(&total); err != nil {
		return nil, fmt.Errorf("failed to count rows from table:atletas: %w", err)
	}

	stmt := fmt.Sprintf(atletaSelect, "atletas") + where + `
		ORDER BY a.nome, a.created_at
		LIMIT @limit OFFSET @offset`

	rows, err := r.server.DB.Pool.Query(ctx, stmt, args)
	if err != nil {
		return nil, fmt.Errorf("failed to execute get atletas query: %w", err)
	}

	atletas, err := pgx.CollectRows(rows, pgx.RowToStructByName[atleta.Atleta])
	if err != nil {
		return nil, fmt.Errorf("failed to collect rows from table:atletas: %w", err)
	}

	page := model.NewPage(atletas, total, params)
	return &page, nil
}

// UpdateAtleta changes nome and/or idade; nil fields keep their value.
func (r *AtletaRepository) UpdateAtleta(ctx context.Context, payload *atleta.UpdateAtletaPayload) (*atleta.Atleta, error) {
	stmt := `
		WITH updated AS (
			UPDATE atletas
			SET nome = COALESCE(@nome, nome),
				idade = COALESCE(@idade, idade)
			WHERE id = @id
			RETURNING *
		)` + fmt.Sprintf(atletaSelect, "updated")

	var updated atleta.Atleta
	err := pgx.BeginFunc(ctx, r.server.DB.Pool, func(tx pgx.Tx) error {
		rows, err := tx.Query(ctx, stmt, pgx.NamedArgs{
			"id":    payload.UUID(),
			"nome":  payload.Nome,
			"idade": payload.Idade,
		})
		if err != nil {
			return fmt.Errorf("failed to execute update atleta query for id=%s: %w", payload.ID, err)
		}

		updated, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[atleta.Atleta])
		if err != nil {
			return fmt.Errorf("failed to collect row from table:atletas for id=%s: %w", payload.ID, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &updated, nil
}

// DeleteAtleta removes an atleta.
func (r *AtletaRepository) DeleteAtleta(ctx context.Context, id uuid.UUID) error {
	return pgx.BeginFunc(ctx, r.server.DB.Pool, func(tx pgx.Tx) error {
		result, err := tx.Exec(ctx, `DELETE FROM atletas WHERE id = @id`, pgx.NamedArgs{"id": id})
		if err != nil {
			return fmt.Errorf("failed to execute delete atleta query for id=%s: %w", id, err)
		}

		if result.RowsAffected() == 0 {
			return fmt.Errorf("failed to delete from table:atletas for id=%s: %w", id, pgx.ErrNoRows)
		}
		return nil
	})
}
