package service

// Error codes returned in the "code" field of business-rule failures.
const (
	CodeCategoriaAlreadyExists         = "CATEGORIA_ALREADY_EXISTS"
	CodeCategoriaInUse                 = "CATEGORIA_IN_USE"
	CodeCentroTreinamentoAlreadyExists = "CENTRO_TREINAMENTO_ALREADY_EXISTS"
	CodeCentroTreinamentoInUse         = "CENTRO_TREINAMENTO_IN_USE"
	CodeAtletaAlreadyExists            = "ATLETA_ALREADY_EXISTS"
	CodeRelatedEntityNotFound          = "RELATED_ENTITY_NOT_FOUND"
)
