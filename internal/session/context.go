package session

import "context"

type ctxKey struct{}

// WithContext adjunta la sesión al contexto de la petición.
func WithContext(ctx context.Context, s *Session) context.Context {
	return context.WithValue(ctx, ctxKey{}, s)
}

// FromContext sesión del contexto o nil.
func FromContext(ctx context.Context) *Session {
	s, _ := ctx.Value(ctxKey{}).(*Session)
	return s
}

// TokenFromContext token de la sesión del contexto, si hay.
func TokenFromContext(ctx context.Context) (string, bool) {
	s := FromContext(ctx)
	if s == nil {
		return "", false
	}
	return s.Token()
}
