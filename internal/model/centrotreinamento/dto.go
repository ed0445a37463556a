package centrotreinamento

import (
	"github.com/deppfellow/workout-api/internal/validation"
	"github.com/google/uuid"
)

// ------------------------------------------------------------

type CreateCentroTreinamentoPayload struct {
	Nome         string `json:"nome" validate:"required,max=20"`
	Endereco     string `json:"endereco" validate:"required,max=60"`
	Proprietario string `json:"proprietario" validate:"required,max=30"`
}

func (p *CreateCentroTreinamentoPayload) Validate() error {
	return validation.Struct(p)
}

// ------------------------------------------------------------

type GetCentrosTreinamentoPayload struct{}

func (p *GetCentrosTreinamentoPayload) Validate() error {
	return nil
}

// ------------------------------------------------------------

type GetCentroTreinamentoByIDPayload struct {
	ID string `param:"id" validate:"required,uuid_rfc4122"`
}

func (p *GetCentroTreinamentoByIDPayload) Validate() error {
	return validation.Struct(p)
}

func (p *GetCentroTreinamentoByIDPayload) UUID() uuid.UUID {
	return uuid.MustParse(p.ID)
}

// ------------------------------------------------------------

// UpdateCentroTreinamentoPayload only touches the fields that are present.
type UpdateCentroTreinamentoPayload struct {
	ID           string  `param:"id" json:"-" validate:"required,uuid_rfc4122"`
	Nome         *string `json:"nome" validate:"omitnil,min=1,max=20"`
	Endereco     *string `json:"endereco" validate:"omitnil,min=1,max=60"`
	Proprietario *string `json:"proprietario" validate:"omitnil,min=1,max=30"`
}

func (p *UpdateCentroTreinamentoPayload) Validate() error {
	return validation.Struct(p)
}

func (p *UpdateCentroTreinamentoPayload) UUID() uuid.UUID {
	return uuid.MustParse(p.ID)
}

// ------------------------------------------------------------

type DeleteCentroTreinamentoPayload struct {
	ID string `param:"id" validate:"required,uuid_rfc4122"`
}

func (p *DeleteCentroTreinamentoPayload) Validate() error {
	return validation.Struct(p)
}

func (p *DeleteCentroTreinamentoPayload) UUID() uuid.UUID {
	return uuid.MustParse(p.ID)
}
