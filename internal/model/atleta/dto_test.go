package atleta

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validPayload() *CreateAtletaPayload {
	return &CreateAtletaPayload{
		Nome:              "Paulo",
		Cpf:               "12345678901",
		Idade:             27,
		Peso:              70.5,
		Altura:            1.80,
		Sexo:              "M",
		Categoria:         CategoriaRef{Nome: "CrossFit"},
		CentroTreinamento: CentroTreinamentoRef{Nome: "CT Sample"},
	}
}

func failedFields(t *testing.T, err error) []string {
	t.Helper()

	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)

	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, fe.Namespace())
	}
	return fields
}

func TestCreateAtletaPayload_Validate(t *testing.T) {
	require.NoError(t, validPayload().Validate())

	t.Run("non positive peso and altura", func(t *testing.T) {
		p := validPayload()
		p.Peso = 0
		p.Altura = -1.7

		fields := failedFields(t, p.Validate())
		assert.Contains(t, fields, "CreateAtletaPayload.peso")
		assert.Contains(t, fields, "CreateAtletaPayload.altura")
	})

	t.Run("cpf and sexo bounds", func(t *testing.T) {
		p := validPayload()
		p.Cpf = "123456789012"
		p.Sexo = "MF"

		fields := failedFields(t, p.Validate())
		assert.ElementsMatch(t, []string{"CreateAtletaPayload.cpf", "CreateAtletaPayload.sexo"}, fields)
	})

	t.Run("idade below one", func(t *testing.T) {
		p := validPayload()
		p.Idade = 0

		var verrs validator.ValidationErrors
		require.ErrorAs(t, p.Validate(), &verrs)
		require.Len(t, verrs, 1)
		assert.Equal(t, "CreateAtletaPayload.idade", verrs[0].Namespace())
		assert.Equal(t, "min", verrs[0].Tag())
	})

	t.Run("missing related names", func(t *testing.T) {
		p := validPayload()
		p.Categoria = CategoriaRef{}
		p.CentroTreinamento = CentroTreinamentoRef{}

		assert.Error(t, p.Validate())
	})
}

func TestUpdateAtletaPayload_Validate(t *testing.T) {
	id := uuid.NewString()

	assert.NoError(t, (&UpdateAtletaPayload{ID: id}).Validate())

	idade := 28
	assert.NoError(t, (&UpdateAtletaPayload{ID: id, Idade: &idade}).Validate())

	empty := ""
	assert.Error(t, (&UpdateAtletaPayload{ID: id, Nome: &empty}).Validate())

	assert.Error(t, (&UpdateAtletaPayload{ID: "not-a-uuid"}).Validate())
}

func TestGetAtletasPayload(t *testing.T) {
	p := &GetAtletasPayload{Nome: "Paulo", Cpf: "123"}
	require.NoError(t, p.Validate())

	assert.Equal(t, Filter{Nome: "Paulo", Cpf: "123"}, p.Filter())
	assert.Equal(t, 1, p.PageParams().Page)
	assert.Equal(t, 50, p.PageParams().Size)

	assert.Error(t, (&GetAtletasPayload{Size: 101}).Validate())
}

func TestAtleta_ToResponse(t *testing.T) {
	a := Atleta{
		Nome:                  "Paulo",
		Cpf:                   "12345678901",
		Idade:                 27,
		Peso:                  70.5,
		Altura:                1.8,
		Sexo:                  "M",
		CreatedAt:             time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC),
		CategoriaID:           1,
		CentroTreinamentoID:   2,
		CategoriaNome:         "CrossFit",
		CentroTreinamentoNome: "CT Sample",
	}
	a.ID = uuid.New()
	a.PkID = 7

	raw, err := json.Marshal(a.ToResponse())
	require.NoError(t, err)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &body))

	assert.Equal(t, a.ID.String(), body["id"])
	assert.Equal(t, map[string]interface{}{"nome": "CrossFit"}, body["categoria"])
	assert.Equal(t, map[string]interface{}{"nome": "CT Sample"}, body["centro_treinamento"])
	assert.NotContains(t, body, "pk_id")
	assert.NotContains(t, body, "categoria_id")

	summary := a.ToSummary()
	assert.Equal(t, a.ID, summary.ID)
	assert.Equal(t, "CrossFit", summary.Categoria.Nome)
}
