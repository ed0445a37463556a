package repository

import (
	"context"
	"fmt"

	"github.com/deppfellow/workout-api/internal/model/categoria"
	"github.com/deppfellow/workout-api/internal/server"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// CategoriaRepository stores categorias in the categorias table.
type CategoriaRepository struct {
	server *server.Server
}

// NewCategoriaRepository returns a repository backed by the server's pool.
func NewCategoriaRepository(s *server.Server) *CategoriaRepository {
	return &CategoriaRepository{server: s}
}

const categoriaColumns = `pk_id, id, nome`

// CreateCategoria inserts a categoria with a fresh public id.
func (r *CategoriaRepository) CreateCategoria(ctx context.Context, payload *categoria.CreateCategoriaPayload) (*categoria.Categoria, error) {
	stmt := `
		INSERT INTO categorias (id, nome)
		VALUES (@id, @nome)
		RETURNING ` + categoriaColumns

	var created categoria.Categoria
	err := pgx.BeginFunc(ctx, r.server.DB.Pool, func(tx pgx.Tx) error {
		rows, err := tx.Query(ctx, stmt, pgx.NamedArgs{
			"id":   uuid.New(),
			"nome": payload.Nome,
		})
		if err != nil {
			return fmt.Errorf("failed to execute create categoria query for nome=%s: %w", payload.Nome, err)
		}

		created, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[categoria.Categoria])
		if err != nil {
			return fmt.Errorf("failed to collect row from table:categorias for nome=%s: %w", payload.Nome, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &created, nil
}

// GetCategorias returns every categoria ordered by nome.
func (r *CategoriaRepository) GetCategorias(ctx context.Context) ([]categoria.Categoria, error) {
	stmt := `SELECT ` + categoriaColumns + ` FROM categorias ORDER BY nome`

	rows, err := r.server.DB.Pool.Query(ctx, stmt)
	if err != nil {
		return nil, fmt.Errorf("failed to execute get categorias query: %w", err)
	}

	categorias, err := pgx.CollectRows(rows, pgx.RowToStructByName[categoria.Categoria])
	if err != nil {
		return nil, fmt.Errorf("failed to collect rows from table:categorias: %w", err)
	}

	return categorias, nil
}

// GetCategoriaByID returns the categoria with the given public id.
func (r *CategoriaRepository) GetCategoriaByID(ctx context.Context, id uuid.UUID) (*categoria.Categoria, error) {
	return r.getOne(ctx, `SELECT `+categoriaColumns+` FROM categorias WHERE id = @id`, pgx.NamedArgs{"id": id})
}

// GetCategoriaByNome looks a categoria up by exact, case-sensitive name.
func (r *CategoriaRepository) GetCategoriaByNome(ctx context.Context, nome string) (*categoria.Categoria, error) {
	return r.getOne(ctx, `SELECT `+categoriaColumns+` FROM categorias WHERE nome = @nome`, pgx.NamedArgs{"nome": nome})
}

func (r *CategoriaRepository) getOne(ctx context.Context, stmt string, args pgx.NamedArgs) (*categoria.Categoria, error) {
	rows, err := r.server.DB.Pool.Query(ctx, stmt, args)
	if err != nil {
		return nil, fmt.Errorf("failed to execute get categoria query: %w", err)
	}

	cat, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[categoria.Categoria])
	if err != nil {
		return nil, fmt.Errorf("failed to collect row from table:categorias: %w", err)
	}

	return &cat, nil
}

// UpdateCategoria applies the non-nil fields of payload and returns the refreshed row.
func (r *CategoriaRepository) UpdateCategoria(ctx context.Context, payload *categoria.UpdateCategoriaPayload) (*categoria.Categoria, error) {
	stmt := `
		UPDATE categorias
		SET nome = COALESCE(@nome, nome)
		WHERE id = @id
		RETURNING ` + categoriaColumns

	var updated categoria.Categoria
	err := pgx.BeginFunc(ctx, r.server.DB.Pool, func(tx pgx.Tx) error {
		rows, err := tx.Query(ctx, stmt, pgx.NamedArgs{
			"id":   payload.UUID(),
			"nome": payload.Nome,
		})
		if err != nil {
			return fmt.Errorf("failed to execute update categoria query for id=%s: %w", payload.ID, err)
		}

		updated, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[categoria.Categoria])
		if err != nil {
			return fmt.Errorf("failed to collect row from table:categorias for id=%s: %w", payload.ID, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &updated, nil
}

// DeleteCategoria removes a categoria. Rows still referenced by an atleta
// fail with a foreign key violation.
func (r *CategoriaRepository) DeleteCategoria(ctx context.Context, id uuid.UUID) error {
	return pgx.BeginFunc(ctx, r.server.DB.Pool, func(tx pgx.Tx) error {
		result, err := tx.Exec(ctx, `DELETE FROM categorias WHERE id = @id`, pgx.NamedArgs{"id": id})
		if err != nil {
			return fmt.Errorf("failed to execute delete categoria query for id=%s: %w", id, err)
		}

		if result.RowsAffected() == 0 {
			return fmt.Errorf("failed to delete from table:categorias for id=%s: %w", id, pgx.ErrNoRows)
		}
		return nil
	})
}
