package jwt_test

import (
	"encoding/base64"
	"testing"
	"time"

	"github.com/jhoicas/Inventario-web/pkg/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoleFromToken(t *testing.T) {
	admin, err := jwt.Generate("secret", "ana", "ADMIN", time.Hour)
	require.NoError(t, err)

	role, err := jwt.RoleFromToken(admin)
	require.NoError(t, err)
	assert.Equal(t, "ADMIN", role)
}

func TestRoleFromToken_LenientSegments(t *testing.T) {
	payload := []byte(`{"role":"ADMIN"}`)
	withExp := base64.RawURLEncoding.EncodeToString([]byte(`{"role":"ADMIN","exp":"soon"}`))
	stdAlphabet := base64.RawStdEncoding.EncodeToString([]byte(`{"role":"ADMIN","n":"??>>"}`))
	header := base64.RawURLEncoding.EncodeToString([]byte(`{"alg":"HS256"}`))

	cases := map[string]string{
		"base64 estándar con relleno": header + "." + base64.StdEncoding.EncodeToString(payload) + ".c2ln",
		"dos segmentos":               header + "." + base64.RawURLEncoding.EncodeToString(payload),
		"header no JSON":              "xx." + base64.RawURLEncoding.EncodeToString(payload) + ".c2ln",
		"exp no numérico":             header + "." + withExp + ".c2ln",
		"alfabeto estándar":           header + "." + stdAlphabet + ".c2ln",
	}
	for name, tok := range cases {
		t.Run(name, func(t *testing.T) {
			role, err := jwt.RoleFromToken(tok)
			require.NoError(t, err)
			assert.Equal(t, "ADMIN", role)
		})
	}
}

func TestRoleFromToken_ExpiredStillDecodes(t *testing.T) {
	// la caducidad la decide el API, no el cliente
	tok, err := jwt.Generate("secret", "ana", "USER", -time.Hour)
	require.NoError(t, err)

	role, err := jwt.RoleFromToken(tok)
	require.NoError(t, err)
	assert.Equal(t, "USER", role)
}

func TestRoleFromToken_WithoutRoleClaim(t *testing.T) {
	header := base64.RawURLEncoding.EncodeToString([]byte(`{"alg":"HS256","typ":"JWT"}`))
	payload := base64.RawURLEncoding.EncodeToString([]byte(`{"sub":"ana"}`))

	role, err := jwt.RoleFromToken(header + "." + payload + ".c2ln")
	require.NoError(t, err)
	assert.Equal(t, "", role)
}

func TestRoleFromToken_Malformed(t *testing.T) {
	header := base64.RawURLEncoding.EncodeToString([]byte(`{"alg":"HS256"}`))

	cases := map[string]string{
		"vacío":             "",
		"sin puntos":        "garbage",
		"claims no base64":  header + ".%%%.c2ln",
		"claims no JSON":    header + "." + base64.RawURLEncoding.EncodeToString([]byte("hola")) + ".c2ln",
		"role no es string": header + "." + base64.RawURLEncoding.EncodeToString([]byte(`{"role":5}`)) + ".c2ln",
	}
	for name, tok := range cases {
		t.Run(name, func(t *testing.T) {
			role, err := jwt.RoleFromToken(tok)
			assert.Error(t, err)
			assert.Equal(t, "", role)
		})
	}
}

func TestGenerate_EmptySecret(t *testing.T) {
	_, err := jwt.Generate("", "ana", "ADMIN", time.Hour)
	assert.Error(t, err)
}
