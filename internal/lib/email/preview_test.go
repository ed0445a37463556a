package email

// PreviewData holds sample values for every template.
var PreviewData = map[Template]any{
	TemplateAtletaCadastrado: AtletaCadastradoData{
		Nome:              "Paulo",
		Categoria:         "CrossFit",
		CentroTreinamento: "CT Sample",
		CadastradoEm:      "02/01/2024 15:04",
	},
}
