package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAccessToken_Employee(t *testing.T) {
	svc := NewJWTService("test-secret-key-for-jwt", "1h")
	employeeID := "0190c8e4-3b5a-7c3e-9f00-000000000001"

	token, expiresAt, err := svc.GenerateAccessToken(RoleEmployee, &employeeID)
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Greater(t, expiresAt, time.Now().Unix())

	decoded, err := svc.JWTAuth().Decode(token)
	require.NoError(t, err)

	role, ok := decoded.Get("role")
	require.True(t, ok)
	assert.Equal(t, "employee", role)

	empID, ok := decoded.Get("employee_id")
	require.True(t, ok)
	assert.Equal(t, employeeID, empID)
}

func TestGenerateAccessToken_AdminHasNoEmployee(t *testing.T) {
	svc := NewJWTService("test-secret-key-for-jwt", "1h")

	token, _, err := svc.GenerateAccessToken(RoleAdmin, nil)
	require.NoError(t, err)

	decoded, err := svc.JWTAuth().Decode(token)
	require.NoError(t, err)
	claims, err := decoded.AsMap(t.Context())
	require.NoError(t, err)
	assert.Equal(t, "admin", claims["role"])
	assert.Equal(t, "access", claims["type"])
	assert.Nil(t, claims["employee_id"])
}

func TestGenerateAccessToken_InvalidDuration(t *testing.T) {
	svc := NewJWTService("test-secret-key-for-jwt", "forever")

	_, _, err := svc.GenerateAccessToken(RoleAdmin, nil)
	assert.Error(t, err)
}
