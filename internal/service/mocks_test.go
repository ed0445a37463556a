package service

import (
	"context"
	"net/http/httptest"

	"github.com/deppfellow/workout-api/internal/model"
	"github.com/deppfellow/workout-api/internal/model/atleta"
	"github.com/deppfellow/workout-api/internal/model/categoria"
	"github.com/deppfellow/workout-api/internal/model/centrotreinamento"
	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/mock"
)

func newTestContext() echo.Context {
	e := echo.New()
	req := httptest.NewRequest("GET", "/", nil)
	return e.NewContext(req, httptest.NewRecorder())
}

type mockCategoriaStore struct{ mock.Mock }

func (m *mockCategoriaStore) CreateCategoria(ctx context.Context, payload *categoria.CreateCategoriaPayload) (*categoria.Categoria, error) {
	args := m.Called(ctx, payload)
	cat, _ := args.Get(0).(*categoria.Categoria)
	return cat, args.Error(1)
}

func (m *mockCategoriaStore) GetCategorias(ctx context.Context) ([]categoria.Categoria, error) {
	args := m.Called(ctx)
	cats, _ := args.Get(0).([]categoria.Categoria)
	return cats, args.Error(1)
}

func (m *mockCategoriaStore) GetCategoriaByID(ctx context.Context, id uuid.UUID) (*categoria.Categoria, error) {
	args := m.Called(ctx, id)
	cat, _ := args.Get(0).(*categoria.Categoria)
	return cat, args.Error(1)
}

func (m *mockCategoriaStore) GetCategoriaByNome(ctx context.Context, nome string) (*categoria.Categoria, error) {
	args := m.Called(ctx, nome)
	cat, _ := args.Get(0).(*categoria.Categoria)
	return cat, args.Error(1)
}

func (m *mockCategoriaStore) UpdateCategoria(ctx context.Context, payload *categoria.UpdateCategoriaPayload) (*categoria.Categoria, error) {
	args := m.Called(ctx, payload)
	cat, _ := args.Get(0).(*categoria.Categoria)
	return cat, args.Error(1)
}

func (m *mockCategoriaStore) DeleteCategoria(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

type mockCentroTreinamentoStore struct{ mock.Mock }

func (m *mockCentroTreinamentoStore) CreateCentroTreinamento(ctx context.Context, payload *centrotreinamento.CreateCentroTreinamentoPayload) (*centrotreinamento.CentroTreinamento, error) {
	args := m.Called(ctx, payload)
	ct, _ := args.Get(0).(*centrotreinamento.CentroTreinamento)
	return ct, args.Error(1)
}

func (m *mockCentroTreinamentoStore) GetCentrosTreinamento(ctx context.Context) ([]centrotreinamento.CentroTreinamento, error) {
	args := m.Called(ctx)
	cts, _ := args.Get(0).([]centrotreinamento.CentroTreinamento)
	return cts, args.Error(1)
}

func (m *mockCentroTreinamentoStore) GetCentroTreinamentoByID(ctx context.Context, id uuid.UUID) (*centrotreinamento.CentroTreinamento, error) {
	args := m.Called(ctx, id)
	ct, _ := args.Get(0).(*centrotreinamento.CentroTreinamento)
	return ct, args.Error(1)
}

func (m *mockCentroTreinamentoStore) GetCentroTreinamentoByNome(ctx context.Context, nome string) (*centrotreinamento.CentroTreinamento, error) {
	args := m.Called(ctx, nome)
	ct, _ := args.Get(0).(*centrotreinamento.CentroTreinamento)
	return ct, args.Error(1)
}

func (m *mockCentroTreinamentoStore) UpdateCentroTreinamento(ctx context.Context, payload *centrotreinamento.UpdateCentroTreinamentoPayload) (*centrotreinamento.CentroTreinamento, error) {
	args := m.Called(ctx, payload)
	ct, _ := args.Get(0).(*centrotreinamento.CentroTreinamento)
	return ct, args.Error(1)
}

func (m *mockCentroTreinamentoStore) DeleteCentroTreinamento(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

type mockAtletaStore struct{ mock.Mock }

func (m *mockAtletaStore) CreateAtleta(ctx context.Context, payload *atleta.CreateAtletaPayload, categoriaID, centroTreinamentoID int) (*atleta.Atleta, error) {
	args := m.Called(ctx, payload, categoriaID, centroTreinamentoID)
	a, _ := args.Get(0).(*atleta.Atleta)
	return a, args.Error(1)
}

func (m *mockAtletaStore) GetAtletas(ctx context.Context, filter atleta.Filter, params model.PageParams) (*model.Page[atleta.Atleta], error) {
	args := m.Called(ctx, filter, params)
	p, _ := args.Get(0).(*model.Page[atleta.Atleta])
	return p, args.Error(1)
}

func (m *mockAtletaStore) GetAtletaByID(ctx context.Context, id uuid.UUID) (*atleta.Atleta, error) {
	args := m.Called(ctx, id)
	a, _ := args.Get(0).(*atleta.Atleta)
	return a, args.Error(1)
}

func (m *mockAtletaStore) UpdateAtleta(ctx context.Context, payload *atleta.UpdateAtletaPayload) (*atleta.Atleta, error) {
	args := m.Called(ctx, payload)
	a, _ := args.Get(0).(*atleta.Atleta)
	return a, args.Error(1)
}

func (m *mockAtletaStore) DeleteAtleta(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

type mockEnqueuer struct{ mock.Mock }

func (m *mockEnqueuer) EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error) {
	args := m.Called(ctx, task)
	info, _ := args.Get(0).(*asynq.TaskInfo)
	return info, args.Error(1)
}
