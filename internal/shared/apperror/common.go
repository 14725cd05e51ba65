package apperror

import "net/http"

// Generic errors for failures no feature package has a sentinel for.
var (
	ErrNotFound     = New(CodeNotFound, "Registro não encontrado", http.StatusNotFound)
	ErrUnauthorized = New(CodeUnauthorized, "Unauthorized", http.StatusUnauthorized)
	ErrForbidden    = New(CodeForbidden, "Sem permissão para acessar este recurso", http.StatusForbidden)
	ErrInvalidInput = New(CodeInvalidInput, "Dados inválidos", http.StatusBadRequest)

	ErrInternal = New(CodeInternalError, "Erro interno do servidor", http.StatusInternalServerError)
	ErrUpstream = New(CodeUpstream, "Erro ao acessar o banco de dados", http.StatusInternalServerError)
)
