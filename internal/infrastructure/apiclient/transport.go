package apiclient

import (
	"context"
	"net/http"
)

// Marca de exclusión: una petición con "No-Auth: True" viaja sin Authorization.
const (
	NoAuthHeader = "No-Auth"
	NoAuthValue  = "True"
)

// TokenSource obtiene el token de la sesión asociada al contexto de la petición.
type TokenSource func(ctx context.Context) (string, bool)

// AuthTransport decora cada petición saliente con "Authorization: Bearer <token>".
// No reintenta ni bloquea; cualquier error del transporte base se devuelve tal cual.
type AuthTransport struct {
	Base   http.RoundTripper
	Tokens TokenSource
}

var _ http.RoundTripper = (*AuthTransport)(nil)

// NewAuthTransport usa http.DefaultTransport si base es nil.
func NewAuthTransport(base http.RoundTripper, tokens TokenSource) *AuthTransport {
	if base == nil {
		base = http.DefaultTransport
	}
	return &AuthTransport{Base: base, Tokens: tokens}
}

func (t *AuthTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if req.Header.Get(NoAuthHeader) == NoAuthValue {
		return t.Base.RoundTrip(req)
	}
	if t.Tokens == nil {
		return t.Base.RoundTrip(req)
	}
	token, ok := t.Tokens(req.Context())
	if !ok || token == "" {
		return t.Base.RoundTrip(req)
	}
	// un RoundTripper no debe modificar la petición recibida
	decorated := req.Clone(req.Context())
	decorated.Header.Set("Authorization", "Bearer "+token)
	return t.Base.RoundTrip(decorated)
}
