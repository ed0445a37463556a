package atleta

import (
	"time"

	"github.com/deppfellow/workout-api/internal/model"
	"github.com/deppfellow/workout-api/internal/validation"
	"github.com/google/uuid"
)

// CategoriaRef references a categoria by its unique name.
type CategoriaRef struct {
	Nome string `json:"nome" validate:"required,max=10"`
}

// CentroTreinamentoRef references a training center by its unique name.
type CentroTreinamentoRef struct {
	Nome string `json:"nome" validate:"required,max=20"`
}

// ------------------------------------------------------------

type CreateAtletaPayload struct {
	Nome              string               `json:"nome" validate:"required,max=50"`
	Cpf               string               `json:"cpf" validate:"required,max=11"`
	Idade             int                  `json:"idade" validate:"min=1"`
	Peso              float64              `json:"peso" validate:"required,gt=0"`
	Altura            float64              `json:"altura" validate:"required,gt=0"`
	Sexo              string               `json:"sexo" validate:"required,len=1"`
	Categoria         CategoriaRef         `json:"categoria" validate:"required"`
	CentroTreinamento CentroTreinamentoRef `json:"centro_treinamento" validate:"required"`
}

func (p *CreateAtletaPayload) Validate() error {
	return validation.Struct(p)
}

// ------------------------------------------------------------

// GetAtletasPayload is bound from the query string.
type GetAtletasPayload struct {
	Nome string `query:"nome"`
	Cpf  string `query:"cpf"`
	Page int    `query:"page" validate:"omitempty,min=1"`
	Size int    `query:"size" validate:"omitempty,min=1,max=100"`
}

func (p *GetAtletasPayload) Validate() error {
	return validation.Struct(p)
}

func (p *GetAtletasPayload) Filter() Filter {
	return Filter{Nome: p.Nome, Cpf: p.Cpf}
}

func (p *GetAtletasPayload) PageParams() model.PageParams {
	return model.NewPageParams(p.Page, p.Size)
}

// ------------------------------------------------------------

type GetAtletaByIDPayload struct {
	ID string `param:"id" validate:"required,uuid_rfc4122"`
}

func (p *GetAtletaByIDPayload) Validate() error {
	return validation.Struct(p)
}

func (p *GetAtletaByIDPayload) UUID() uuid.UUID {
	return uuid.MustParse(p.ID)
}

// ------------------------------------------------------------

// UpdateAtletaPayload allows changing only nome and idade.
type UpdateAtletaPayload struct {
	ID    string  `param:"id" json:"-" validate:"required,uuid_rfc4122"`
	Nome  *string `json:"nome" validate:"omitnil,min=1,max=50"`
	Idade *int    `json:"idade" validate:"omitnil,min=1"`
}

func (p *UpdateAtletaPayload) Validate() error {
	return validation.Struct(p)
}

func (p *UpdateAtletaPayload) UUID() uuid.UUID {
	return uuid.MustParse(p.ID)
}

// ------------------------------------------------------------

type DeleteAtletaPayload struct {
	ID string `param:"id" validate:"required,uuid_rfc4122"`
}

func (p *DeleteAtletaPayload) Validate() error {
	return validation.Struct(p)
}

func (p *DeleteAtletaPayload) UUID() uuid.UUID {
	return uuid.MustParse(p.ID)
}

// ------------------------------------------------------------

// NomeRef is the {"nome": ...} object used for related entities in responses.
type NomeRef struct {
	Nome string `json:"nome"`
}

// AtletaResponse is the full athlete representation.
type AtletaResponse struct {
	ID                uuid.UUID `json:"id"`
	Nome              string    `json:"nome"`
	Cpf               string    `json:"cpf"`
	Idade             int       `json:"idade"`
	Peso              float64   `json:"peso"`
	Altura            float64   `json:"altura"`
	Sexo              string    `json:"sexo"`
	Categoria         NomeRef   `json:"categoria"`
	CentroTreinamento NomeRef   `json:"centro_treinamento"`
	CreatedAt         time.Time `json:"created_at"`
}

// AtletaSummary is the list item shape.
type AtletaSummary struct {
	ID                uuid.UUID `json:"id"`
	Nome              string    `json:"nome"`
	Categoria         NomeRef   `json:"categoria"`
	CentroTreinamento NomeRef   `json:"centro_treinamento"`
}

func (a Atleta) ToResponse() AtletaResponse {
	return AtletaResponse{
		ID:                a.ID,
		Nome:              a.Nome,
		Cpf:               a.Cpf,
		Idade:             a.Idade,
		Peso:              a.Peso,
		Altura:            a.Altura,
		Sexo:              a.Sexo,
		Categoria:         NomeRef{Nome: a.CategoriaNome},
		CentroTreinamento: NomeRef{Nome: a.CentroTreinamentoNome},
		CreatedAt:         a.CreatedAt,
	}
}

func (a Atleta) ToSummary() AtletaSummary {
	return AtletaSummary{
		ID:                a.ID,
		Nome:              a.Nome,
		Categoria:         NomeRef{Nome: a.CategoriaNome},
		CentroTreinamento: NomeRef{Nome: a.CentroTreinamentoNome},
	}
}
