// Package repository persists categorias, centros de treinamento and atletas
// in Postgres through pgxpool. Writes run inside pgx.BeginFunc so a failed
// statement always rolls back before the error leaves the package.
package repository
