package jwt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-key-for-unit-tests"

func TestGenerateAndParse(t *testing.T) {
	tok, err := Generate(testSecret, "u-1", "reportes-ventas-test", 60)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	userID, err := Parse(testSecret, tok)
	require.NoError(t, err)
	assert.Equal(t, "u-1", userID)
}

func TestParse_TokenExpirado(t *testing.T) {
	tok, err := Generate(testSecret, "u-1", "reportes-ventas-test", -1)
	require.NoError(t, err)

	_, err = Parse(testSecret, tok)
	assert.Error(t, err, "token expirado debe retornar error")
}

func TestParse_SinUserID(t *testing.T) {
	tok, err := Generate(testSecret, "", "reportes-ventas-test", 60)
	require.NoError(t, err)

	_, err = Parse(testSecret, tok)
	assert.Error(t, err)
}

func TestSecretVacio(t *testing.T) {
	_, err := Generate("", "u-1", "x", 60)
	assert.Error(t, err)

	_, err = Parse("", "a.b.c")
	assert.Error(t, err)
}
