package dto

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// NewError construye la respuesta de error estándar.
func NewError(msg string) ErrorResponse {
	return ErrorResponse{Success: false, Error: msg}
}
