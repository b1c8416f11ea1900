package api

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterAndLogin(t *testing.T) {
	a := newTestAPI(t)

	user, _ := registerUser(t, a, "alice", "alice@example.com")
	assert.NotZero(t, user.ID)
	assert.Equal(t, "alice", user.Username)
	assert.Equal(t, "free", user.SubscriptionStatus)

	// The hash must never leak through a response body
	w := doJSON(t, a, http.MethodPost, "/api/auth/login", gin.H{
		"username": "alice",
		"password": "correct-horse-battery",
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, w.Body.String(), "password")
	assert.NotContains(t, w.Body.String(), "argon2id")
}

func TestRegisterDuplicate(t *testing.T) {
	a := newTestAPI(t)

	registerUser(t, a, "alice", "alice@example.com")

	w := doJSON(t, a, http.MethodPost, "/api/auth/register", gin.H{
		"username": "alice",
		"email":    "other@example.com",
		"password": "correct-horse-battery",
	})
	require.Equal(t, http.StatusConflict, w.Code)
}

func TestRegisterValidation(t *testing.T) {
	a := newTestAPI(t)

	tests := []struct {
		name string
		body gin.H
	}{
		{"missing email", gin.H{"username": "bob", "password": "longenough"}},
		{"bad email", gin.H{"username": "bob", "email": "nope", "password": "longenough"}},
		{"short password", gin.H{"username": "bob", "email": "bob@example.com", "password": "short"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doJSON(t, a, http.MethodPost, "/api/auth/register", tt.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestLoginWrongPassword(t *testing.T) {
	a := newTestAPI(t)

	registerUser(t, a, "alice", "alice@example.com")

	w := doJSON(t, a, http.MethodPost, "/api/auth/login", gin.H{
		"username": "alice",
		"password": "not-the-password",
	})
	require.Equal(t, http.StatusUnauthorized, w.Code)

	// Unknown users get the same answer as wrong passwords
	w = doJSON(t, a, http.MethodPost, "/api/auth/login", gin.H{
		"username": "mallory",
		"password": "whatever1",
	})
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestSessionLifecycle(t *testing.T) {
	a := newTestAPI(t)

	w := doJSON(t, a, http.MethodGet, "/api/auth/session", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var probe struct {
		IsAuthenticated bool `json:"isAuthenticated"`
	}
	decode(t, w, &probe)
	assert.False(t, probe.IsAuthenticated)

	_, cookie := registerUser(t, a, "alice", "alice@example.com")

	w = doJSON(t, a, http.MethodGet, "/api/auth/session", nil, cookie)
	require.Equal(t, http.StatusOK, w.Code)
	decode(t, w, &probe)
	assert.True(t, probe.IsAuthenticated)

	w = doJSON(t, a, http.MethodPost, "/api/auth/logout", nil, cookie)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, a, http.MethodGet, "/api/auth/session", nil, cookie)
	decode(t, w, &probe)
	assert.False(t, probe.IsAuthenticated)
}

func TestAuthExternalBridge(t *testing.T) {
	a := newTestAPI(t)

	viper.Set("auth.external_secret", "bridge-secret")
	t.Cleanup(func() { viper.Set("auth.external_secret", "") })

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"email":   "carol@example.com",
		"name":    "Carol",
		"picture": "https://example.com/carol.png",
	}).SignedString([]byte("bridge-secret"))
	require.NoError(t, err)

	// First login creates the user
	w := doJSON(t, a, http.MethodPost, "/api/auth/external", gin.H{"token": token})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var created struct {
		ID          uint   `json:"id"`
		Username    string `json:"username"`
		DisplayName string `json:"displayName"`
	}
	decode(t, w, &created)
	assert.Equal(t, "carol", created.Username)
	assert.Equal(t, "Carol", created.DisplayName)

	// Second login reuses the same record
	w = doJSON(t, a, http.MethodPost, "/api/auth/external", gin.H{"token": token})
	require.Equal(t, http.StatusOK, w.Code)

	var again struct {
		ID uint `json:"id"`
	}
	decode(t, w, &again)
	assert.Equal(t, created.ID, again.ID)

	// A bridged account has no usable password
	w = doJSON(t, a, http.MethodPost, "/api/auth/login", gin.H{
		"username": "carol",
		"password": "anything-at-all",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthExternalBadToken(t *testing.T) {
	a := newTestAPI(t)

	viper.Set("auth.external_secret", "bridge-secret")
	t.Cleanup(func() { viper.Set("auth.external_secret", "") })

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"email": "carol@example.com",
	}).SignedString([]byte("wrong-secret"))
	require.NoError(t, err)

	w := doJSON(t, a, http.MethodPost, "/api/auth/external", gin.H{"token": token})
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestUserFetch(t *testing.T) {
	a := newTestAPI(t)

	user, _ := registerUser(t, a, "alice", "alice@example.com")

	w := doJSON(t, a, http.MethodGet, "/api/users?email=alice@example.com", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, a, http.MethodGet, "/api/users", nil)
	require.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, a, http.MethodGet, "/api/users?email=ghost@example.com", nil)
	require.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(t, a, http.MethodGet, "/api/users/"+uintID(user.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, a, http.MethodGet, "/api/users/99999", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
}
