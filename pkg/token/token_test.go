package token_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ecomarket/storefront-api/pkg/token"
)

const (
	testSecret    = "test-secret-key-for-unit-tests"
	testSessionID = "00000000-0000-0000-0000-000000000001"
	testIssuer    = "ecomarket-test"
)

func TestToken_GenerateAndParse(t *testing.T) {
	tok, err := token.Generate(testSecret, testSessionID, testIssuer, 60)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	sid, err := token.Parse(testSecret, tok)
	require.NoError(t, err)
	assert.Equal(t, testSessionID, sid)
}

func TestToken_Expirado_RetornaError(t *testing.T) {
	// TTL de -1 minuto: el token nace ya expirado.
	tok, err := token.Generate(testSecret, testSessionID, testIssuer, -1)
	require.NoError(t, err)

	_, err = token.Parse(testSecret, tok)
	assert.Error(t, err, "token expirado debe retornar error")
}

func TestToken_SecretIncorrecto_RetornaError(t *testing.T) {
	tok, err := token.Generate(testSecret, testSessionID, testIssuer, 60)
	require.NoError(t, err)

	_, err = token.Parse("otro-secret-completamente-distinto", tok)
	assert.Error(t, err, "secret incorrecto debe invalidar el token")
}

func TestToken_SecretVacio_RetornaError(t *testing.T) {
	_, err := token.Generate("", testSessionID, testIssuer, 60)
	assert.Error(t, err)
}

func TestToken_Malformado_RetornaError(t *testing.T) {
	_, err := token.Parse(testSecret, "token.invalido.aqui")
	assert.Error(t, err)
}
