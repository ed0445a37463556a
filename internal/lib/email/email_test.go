package email

import (
	"context"
	"errors"
	"testing"

	"github.com/resend/resend-go/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSender struct {
	sent []*resend.SendEmailRequest
	err  error
}

func (f *fakeSender) SendWithContext(_ context.Context, params *resend.SendEmailRequest) (*resend.SendEmailResponse, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.sent = append(f.sent, params)
	return &resend.SendEmailResponse{Id: "email-1"}, nil
}

func TestRenderTemplate_PreviewData(t *testing.T) {
	for name, data := range PreviewData {
		body, err := RenderTemplate(name, data)
		require.NoError(t, err, name)
		assert.NotEmpty(t, body)
	}

	body, err := RenderTemplate(TemplateAtletaCadastrado, PreviewData[TemplateAtletaCadastrado])
	require.NoError(t, err)
	assert.Contains(t, body, "<strong>Paulo</strong>")
	assert.Contains(t, body, "CT Sample")
	assert.NotContains(t, body, "CPF")
}

func TestRenderTemplate_Unknown(t *testing.T) {
	_, err := RenderTemplate("missing", nil)
	assert.Error(t, err)
}

func TestRenderTemplate_EscapesHTML(t *testing.T) {
	body, err := RenderTemplate(TemplateAtletaCadastrado, AtletaCadastradoData{Nome: "<script>"})
	require.NoError(t, err)
	assert.NotContains(t, body, "<script>")
}

func TestClient_SendAtletaCadastradoEmail(t *testing.T) {
	logger := zerolog.Nop()
	fake := &fakeSender{}
	client := &Client{sender: fake, from: "Workout API <onboarding@resend.dev>", logger: &logger}

	err := client.SendAtletaCadastradoEmail(context.Background(), "coach@example.com", AtletaCadastradoData{Nome: "Paulo"})
	require.NoError(t, err)

	require.Len(t, fake.sent, 1)
	assert.Equal(t, []string{"coach@example.com"}, fake.sent[0].To)
	assert.Equal(t, "Workout API <onboarding@resend.dev>", fake.sent[0].From)
	assert.Equal(t, "Novo atleta cadastrado: Paulo", fake.sent[0].Subject)

	fake.err = errors.New("boom")
	assert.Error(t, client.SendAtletaCadastradoEmail(context.Background(), "coach@example.com", AtletaCadastradoData{}))
}
