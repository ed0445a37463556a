// Package validation binds request payloads and turns validator/v10 failures
// into field errors keyed by their JSON path (for example "categoria.nome").
package validation
