package apiclient

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/jhoicas/Inventario-web/internal/domain"
)

// APIError respuesta no exitosa del API remoto.
// Unwrap devuelve el error de dominio que corresponde al status.
type APIError struct {
	Status  int
	Method  string
	Path    string
	Message string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("API: %s %s: status %d", e.Method, e.Path, e.Status)
	}
	return fmt.Sprintf("API: %s %s: status %d: %s", e.Method, e.Path, e.Status, e.Message)
}

func (e *APIError) Unwrap() error {
	return sentinelForStatus(e.Status)
}

func sentinelForStatus(status int) error {
	switch {
	case status == http.StatusUnauthorized:
		return domain.ErrUnauthorized
	case status == http.StatusForbidden:
		return domain.ErrForbidden
	case status == http.StatusNotFound:
		return domain.ErrNotFound
	case status == http.StatusConflict:
		return domain.ErrConflict
	case status == http.StatusBadRequest || status == http.StatusUnprocessableEntity:
		return domain.ErrInvalidInput
	default:
		return domain.ErrUpstream
	}
}

// errorMessage extrae un mensaje legible del cuerpo de error (JSON de Spring o texto plano).
func errorMessage(body []byte) string {
	trimmed := strings.TrimSpace(string(body))
	if trimmed == "" {
		return ""
	}
	var payload struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(body, &payload); err == nil {
		if payload.Message != "" {
			return payload.Message
		}
		if payload.Error != "" {
			return payload.Error
		}
	}
	if strings.HasPrefix(trimmed, "<") {
		// páginas HTML de error del proxy no aportan nada
		return ""
	}
	const limit = 300
	if len(trimmed) > limit {
		trimmed = trimmed[:limit]
	}
	return trimmed
}
