package email

import (
	"context"
	"fmt"
)

// AtletaCadastradoData fills the atleta_cadastrado template.
type AtletaCadastradoData struct {
	Nome              string
	Categoria         string
	CentroTreinamento string
	CadastradoEm      string
}

func (c *Client) SendAtletaCadastradoEmail(ctx context.Context, to string, data AtletaCadastradoData) error {
	return c.SendEmail(
		ctx,
		to,
		fmt.Sprintf("Novo atleta cadastrado: %s", data.Nome),
		TemplateAtletaCadastrado,
		data,
	)
}
