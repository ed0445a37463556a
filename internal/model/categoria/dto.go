package categoria

import (
	"github.com/deppfellow/workout-api/internal/validation"
	"github.com/google/uuid"
)

// ------------------------------------------------------------

type CreateCategoriaPayload struct {
	Nome string `json:"nome" validate:"required,max=10"`
}

func (p *CreateCategoriaPayload) Validate() error {
	return validation.Struct(p)
}

// ------------------------------------------------------------

type GetCategoriasPayload struct{}

func (p *GetCategoriasPayload) Validate() error {
	return nil
}

// ------------------------------------------------------------

type GetCategoriaByIDPayload struct {
	ID string `param:"id" validate:"required,uuid_rfc4122"`
}

func (p *GetCategoriaByIDPayload) Validate() error {
	return validation.Struct(p)
}

// UUID returns the parsed path id. Only call it after Validate succeeded.
func (p *GetCategoriaByIDPayload) UUID() uuid.UUID {
	return uuid.MustParse(p.ID)
}

// ------------------------------------------------------------

// UpdateCategoriaPayload is a partial update: nil fields are left untouched.
type UpdateCategoriaPayload struct {
	ID   string  `param:"id" json:"-" validate:"required,uuid_rfc4122"`
	Nome *string `json:"nome" validate:"omitnil,min=1,max=10"`
}

func (p *UpdateCategoriaPayload) Validate() error {
	return validation.Struct(p)
}

func (p *UpdateCategoriaPayload) UUID() uuid.UUID {
	return uuid.MustParse(p.ID)
}

// ------------------------------------------------------------

type DeleteCategoriaPayload struct {
	ID string `param:"id" validate:"required,uuid_rfc4122"`
}

func (p *DeleteCategoriaPayload) Validate() error {
	return validation.Struct(p)
}

func (p *DeleteCategoriaPayload) UUID() uuid.UUID {
	return uuid.MustParse(p.ID)
}
