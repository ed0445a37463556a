package router_test

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/deppfellow/workout-api/internal/model"
	"github.com/deppfellow/workout-api/internal/model/atleta"
	"github.com/deppfellow/workout-api/internal/model/categoria"
	"github.com/deppfellow/workout-api/internal/model/centrotreinamento"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// memStore implements every service store with the same unique and
// restrict-on-delete rules the Postgres schema enforces.
type memStore struct {
	mu     sync.Mutex
	nextPk int

	categorias []categoria.Categoria
	centros    []centrotreinamento.CentroTreinamento
	atletas    []atleta.Atleta
}

func newMemStore() *memStore {
	return &memStore{}
}

func uniqueViolation(constraint string) error {
	return fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23505", ConstraintName: constraint})
}

func foreignKeyViolation(constraint string) error {
	return fmt.Errorf("delete: %w", &pgconn.PgError{Code: "23503", ConstraintName: constraint})
}

func (m *memStore) base() model.Base {
	m.nextPk++
	return model.Base{PkID: m.nextPk, ID: uuid.New()}
}

// --- categorias ---

func (m *memStore) CreateCategoria(_ context.Context, payload *categoria.CreateCategoriaPayload) (*categoria.Categoria, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, c := range m.categorias {
		if c.Nome == payload.Nome {
			return nil, uniqueViolation("categorias_nome_key")
		}
	}

	c := categoria.Categoria{Base: m.base(), Nome: payload.Nome}
	m.categorias = append(m.categorias, c)
	return &c, nil
}

func (m *memStore) GetCategorias(_ context.Context) ([]categoria.Categoria, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]categoria.Categoria(nil), m.categorias...), nil
}

func (m *memStore) GetCategoriaByID(_ context.Context, id uuid.UUID) (*categoria.Categoria, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, c := range m.categorias {
		if c.ID == id {
			return &c, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (m *memStore) GetCategoriaByNome(_ context.Context, nome string) (*categoria.Categoria, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, c := range m.categorias {
		if c.Nome == nome {
			return &c, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (m *memStore) UpdateCategoria(_ context.Context, payload *categoria.UpdateCategoriaPayload) (*categoria.Categoria, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	id := payload.UUID()
	for i := range m.categorias {
		if m.categorias[i].ID != id {
			continue
		}
		if payload.Nome != nil {
			for _, other := range m.categorias {
				if other.ID != id && other.Nome == *payload.Nome {
					return nil, uniqueViolation("categorias_nome_key")
				}
			}
			m.categorias[i].Nome = *payload.Nome
			m.renameCategoria(m.categorias[i].PkID, *payload.Nome)
		}
		c := m.categorias[i]
		return &c, nil
	}
	return nil, pgx.ErrNoRows
}

func (m *memStore) renameCategoria(pk int, nome string) {
	for i := range m.atletas {
		if m.atletas[i].CategoriaID == pk {
			m.atletas[i].CategoriaNome = nome
		}
	}
}

func (m *memStore) DeleteCategoria(_ context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i, c := range m.categorias {
		if c.ID != id {
			continue
		}
		for _, a := range m.atletas {
			if a.CategoriaID == c.PkID {
				return foreignKeyViolation("atletas_categoria_id_fkey")
			}
		}
		m.categorias = append(m.categorias[:i], m.categorias[i+1:]...)
		return nil
	}
	return pgx.ErrNoRows
}

// --- centros de treinamento ---

func (m *memStore) CreateCentroTreinamento(_ context.Context, payload *centrotreinamento.CreateCentroTreinamentoPayload) (*centrotreinamento.CentroTreinamento, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, c := range m.centros {
		if c.Nome == payload.Nome {
			return nil, uniqueViolation("centros_treinamento_nome_key")
		}
	}

	c := centrotreinamento.CentroTreinamento{
		Base:         m.base(),
		Nome:         payload.Nome,
		Endereco:     payload.Endereco,
		Proprietario: payload.Proprietario,
	}
	m.centros = append(m.centros, c)
	return &c, nil
}

func (m *memStore) GetCentrosTreinamento(_ context.Context) ([]centrotreinamento.CentroTreinamento, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]centrotreinamento.CentroTreinamento(nil), m.centros...), nil
}

func (m *memStore) GetCentroTreinamentoByID(_ context.Context, id uuid.UUID) (*centrotreinamento.CentroTreinamento, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, c := range m.centros {
		if c.ID == id {
			return &c, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (m *memStore) GetCentroTreinamentoByNome(_ context.Context, nome string) (*centrotreinamento.CentroTreinamento, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, c := range m.centros {
		if c.Nome == nome {
			return &c, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (m *memStore) UpdateCentroTreinamento(_ context.Context, payload *centrotreinamento.UpdateCentroTreinamentoPayload) (*centrotreinamento.CentroTreinamento, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	id := payload.UUID()
	for i := range m.centros {
		if m.centros[i].ID != id {
			continue
		}
		if payload.Nome != nil {
			for _, other := range m.centros {
				if other.ID != id && other.Nome == *payload.Nome {
					return nil, uniqueViolation("centros_treinamento_nome_key")
				}
			}
			m.centros[i].Nome = *payload.Nome
		}
		if payload.Endereco != nil {
			m.centros[i].Endereco = *payload.Endereco
		}
		if payload.Proprietario != nil {
			m.centros[i].Proprietario = *payload.Proprietario
		}
		c := m.centros[i]
		return &c, nil
	}
	return nil, pgx.ErrNoRows
}

func (m *memStore) DeleteCentroTreinamento(_ context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i, c := range m.centros {
		if c.ID != id {
			continue
		}
		for _, a := range m.atletas {
			if a.CentroTreinamentoID == c.PkID {
				return foreignKeyViolation("atletas_centro_treinamento_id_fkey")
			}
		}
		m.centros = append(m.centros[:i], m.centros[i+1:]...)
		return nil
	}
	return pgx.ErrNoRows
}

// --- atletas ---

func (m *memStore) CreateAtleta(_ context.Context, payload *atleta.CreateAtletaPayload, categoriaID, centroTreinamentoID int) (*atleta.Atleta, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, a := range m.atletas {
		if a.Cpf == payload.Cpf {
			return nil, uniqueViolation("atletas_cpf_key")
		}
	}

	var categoriaNome, centroNome string
	for _, c := range m.categorias {
		if c.PkID == categoriaID {
			categoriaNome = c.Nome
		}
	}
	for _, c := range m.centros {
		if c.PkID == centroTreinamentoID {
			centroNome = c.Nome
		}
	}
	if categoriaNome == "" || centroNome == "" {
		return nil, foreignKeyViolation("atletas_categoria_id_fkey")
	}

	a := atleta.Atleta{
		Base:                  m.base(),
		Nome:                  payload.Nome,
		Cpf:                   payload.Cpf,
		Idade:                 payload.Idade,
		Peso:                  payload.Peso,
		Altura:                payload.Altura,
		Sexo:                  payload.Sexo,
		CreatedAt:             time.Now().UTC(),
		CategoriaID:           categoriaID,
		CentroTreinamentoID:   centroTreinamentoID,
		CategoriaNome:         categoriaNome,
		CentroTreinamentoNome: centroNome,
	}
	m.atletas = append(m.atletas, a)
	return &a, nil
}

func (m *memStore) GetAtletas(_ context.Context, filter atleta.Filter, params model.PageParams) (*model.Page[atleta.Atleta], error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var matched []atleta.Atleta
	for _, a := range m.atletas {
		switch {
		case filter.Nome != "":
			if a.Nome != filter.Nome {
				continue
			}
		case filter.Cpf != "":
			if a.Cpf != filter.Cpf {
				continue
			}
		}
		matched = append(matched, a)
	}

	start := params.Offset()
	if start > len(matched) {
		start = len(matched)
	}
	end := start + params.Size
	if end > len(matched) {
		end = len(matched)
	}

	page := model.NewPage(matched[start:end], int64(len(matched)), params)
	return &page, nil
}

func (m *memStore) GetAtletaByID(_ context.Context, id uuid.UUID) (*atleta.Atleta, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, a := range m.atletas {
		if a.ID == id {
			return &a, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (m *memStore) UpdateAtleta(_ context.Context, payload *atleta.UpdateAtletaPayload) (*atleta.Atleta, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	id := payload.UUID()
	for i := range m.atletas {
		if m.atletas[i].ID != id {
			continue
		}
		if payload.Nome != nil {
			m.atletas[i].Nome = *payload.Nome
		}
		if payload.Idade != nil {
			m.atletas[i].Idade = *payload.Idade
		}
		a := m.atletas[i]
		return &a, nil
	}
	return nil, pgx.ErrNoRows
}

func (m *memStore) DeleteAtleta(_ context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, a := range m.atletas {
		if a.ID == id {
			m.atletas = append(m.atletas[:i], m.atletas[i+1:]...)
			return nil
		}
	}
	return pgx.ErrNoRows
}
