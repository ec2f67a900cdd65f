package utils_test

import (
	"strings"
	"testing"
	"time"

	"github.com/bengkelku/workshop_management_app/internal/utils"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-key"

func TestGenerateAndValidateJWT(t *testing.T) {
	token, err := utils.GenerateJWT("budi", testSecret, 30*time.Minute, "workshop-management-app")
	require.NoError(t, err)

	claims, err := utils.ParseAndValidateJWT(token, testSecret)
	require.NoError(t, err)
	assert.Equal(t, "budi", claims.Subject)
	assert.Equal(t, "workshop-management-app", claims.Issuer)
}

func TestParseAndValidateJWT_WrongSecret(t *testing.T) {
	token, err := utils.GenerateJWT("budi", testSecret, 30*time.Minute, "workshop-management-app")
	require.NoError(t, err)

	claims, err := utils.ParseAndValidateJWT(token, "a-different-secret")
	require.Error(t, err)
	assert.Nil(t, claims)
}

func TestParseAndValidateJWT_Expired(t *testing.T) {
	token, err := utils.GenerateJWT("budi", testSecret, -time.Minute, "workshop-management-app")
	require.NoError(t, err)

	claims, err := utils.ParseAndValidateJWT(token, testSecret)
	require.Error(t, err)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
	assert.Nil(t, claims)
}

func TestGenerateWorkshopID(t *testing.T) {
	id, err := utils.GenerateWorkshopID()
	require.NoError(t, err)
	assert.Len(t, id, 18)
	assert.Equal(t, strings.ToUpper(id), id, "workshop ids are uppercase")

	other, err := utils.GenerateWorkshopID()
	require.NoError(t, err)
	assert.NotEqual(t, id, other)
}
