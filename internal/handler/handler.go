// Package handler exposes the categoria, centro de treinamento and atleta
// resources over HTTP. Handlers bind and validate payloads, call the service
// layer and shape its results into response DTOs.
package handler
