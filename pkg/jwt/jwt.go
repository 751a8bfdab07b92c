package jwt

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims del token emitido por el API de inventario.
// El cliente sólo necesita Role para decidir navegación; la firma la valida el API.
type Claims struct {
	jwt.RegisteredClaims
	Role string `json:"role"` // "ADMIN" | "USER"
}

// roleClaim único campo que el cliente lee del token.
type roleClaim struct {
	Role string `json:"role"`
}

// RoleFromToken lee el claim role del segundo segmento sin verificar la firma ni el
// header. Acepta base64 estándar o url, con o sin relleno, y no valida exp ni los demás
// claims registrados. Un token sin claim role devuelve "" sin error.
func RoleFromToken(tokenString string) (string, error) {
	if tokenString == "" {
		return "", fmt.Errorf("jwt: token vacío")
	}
	parts := strings.Split(tokenString, ".")
	if len(parts) < 2 {
		return "", fmt.Errorf("jwt: token sin segmento de claims")
	}
	seg := strings.NewReplacer("+", "-", "/", "_").Replace(parts[1])
	raw, err := jwt.NewParser(jwt.WithPaddingAllowed()).DecodeSegment(seg)
	if err != nil {
		return "", fmt.Errorf("jwt: decodificar claims: %w", err)
	}
	var claims roleClaim
	if err := json.Unmarshal(raw, &claims); err != nil {
		return "", fmt.Errorf("jwt: leer claims: %w", err)
	}
	return claims.Role, nil
}

// Generate genera un token HS256 con subject y role. Lo usan los tests y el entorno local.
func Generate(secret, subject, role string, ttl time.Duration) (string, error) {
	if secret == "" {
		return "", fmt.Errorf("jwt: secret vacío")
	}
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		Role: role,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}
