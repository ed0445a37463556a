package validation

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/deppfellow/workout-api/internal/errs"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type refPayload struct {
	Nome string `json:"nome" validate:"required,max=5"`
}

type samplePayload struct {
	ID    string     `param:"id" json:"-" validate:"required,uuid_rfc4122"`
	Nome  string     `json:"nome" validate:"required,max=5"`
	Peso  float64    `json:"peso" validate:"gt=0"`
	Sexo  string     `json:"sexo" validate:"len=1"`
	Idade *int       `json:"idade" validate:"omitnil,min=1"`
	Ref   refPayload `json:"ref"`
}

func (p *samplePayload) Validate() error {
	return Struct(p)
}

type customPayload struct{}

func (p *customPayload) Validate() error {
	return CustomValidationErrors{{Field: "periodo", Message: "inicio must be before fim"}}
}

func newContext(method, body string) echo.Context {
	e := echo.New()
	req := httptest.NewRequest(method, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	c := e.NewContext(req, httptest.NewRecorder())
	c.SetParamNames("id")
	c.SetParamValues("3f2504e0-4f89-11d3-9a0c-0305e82c3301")
	return c
}

func fieldErrors(t *testing.T, err error) map[string]string {
	t.Helper()

	var httpErr *errs.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusBadRequest, httpErr.Status)

	out := make(map[string]string, len(httpErr.Errors))
	for _, fe := range httpErr.Errors {
		out[fe.Field] = fe.Error
	}
	return out
}

func TestBindAndValidate_Valid(t *testing.T) {
	c := newContext(http.MethodPost, `{"nome":"Ana","peso":60,"sexo":"F","idade":20,"ref":{"nome":"RX"}}`)

	payload := &samplePayload{}
	require.NoError(t, BindAndValidate(c, payload))

	assert.Equal(t, "3f2504e0-4f89-11d3-9a0c-0305e82c3301", payload.ID)
	assert.Equal(t, "Ana", payload.Nome)
	require.NotNil(t, payload.Idade)
	assert.Equal(t, 20, *payload.Idade)
}

func TestBindAndValidate_FieldMessages(t *testing.T) {
	c := newContext(http.MethodPost, `{"nome":"Alexandre","peso":0,"sexo":"MF","idade":0,"ref":{"nome":"muito longo"}}`)

	fields := fieldErrors(t, BindAndValidate(c, &samplePayload{}))

	assert.Equal(t, "must not exceed 5 characters", fields["nome"])
	assert.Equal(t, "must be greater than 0", fields["peso"])
	assert.Equal(t, "must be exactly 1 characters", fields["sexo"])
	assert.Equal(t, "must be at least 1", fields["idade"])
	assert.Equal(t, "must not exceed 5 characters", fields["ref.nome"])
}

func TestBindAndValidate_OmittedPointerIsSkipped(t *testing.T) {
	c := newContext(http.MethodPost, `{"nome":"Ana","peso":1,"sexo":"F","ref":{"nome":"RX"}}`)

	payload := &samplePayload{}
	require.NoError(t, BindAndValidate(c, payload))
	assert.Nil(t, payload.Idade)
}

func TestBindAndValidate_InvalidUUIDParam(t *testing.T) {
	c := newContext(http.MethodPost, `{"nome":"Ana","peso":1,"sexo":"F","ref":{"nome":"RX"}}`)
	c.SetParamValues("not-a-uuid")

	fields := fieldErrors(t, BindAndValidate(c, &samplePayload{}))
	assert.Equal(t, "must be a valid UUID", fields["id"])
}

func TestBindAndValidate_MalformedBody(t *testing.T) {
	c := newContext(http.MethodPost, `{"nome":`)

	err := BindAndValidate(c, &samplePayload{})

	var httpErr *errs.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusBadRequest, httpErr.Status)
	assert.NotEmpty(t, httpErr.Message)
	assert.Empty(t, httpErr.Errors)
}

func TestBindAndValidate_CustomErrors(t *testing.T) {
	c := newContext(http.MethodPost, `{}`)

	fields := fieldErrors(t, BindAndValidate(c, &customPayload{}))
	assert.Equal(t, "inicio must be before fim", fields["periodo"])
}

func TestIsValidUUID(t *testing.T) {
	assert.True(t, IsValidUUID("3f2504e0-4f89-11d3-9a0c-0305e82c3301"))
	assert.False(t, IsValidUUID("3f2504e04f8911d39a0c0305e82c3301"))
	assert.False(t, IsValidUUID(""))
}
