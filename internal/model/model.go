// Package model holds the persisted entities and the request/response
// shapes exchanged over HTTP.
//
// Each resource lives in its own subpackage (categoria, centrotreinamento,
// atleta) with the entity type and a dto.go carrying the payloads bound by
// the handlers.
package model
