package web

// Client-facing messages shared by every handler.
const (
	InvalidBodyMessage   = "Cuerpo de la solicitud inválido"
	InternalErrorMessage = "Error interno del servidor"
)
