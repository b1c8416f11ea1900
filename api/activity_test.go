package api

import (
	"net/http"
	"testing"

	"echovault/vault-api/model"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestActivityAppendAndList(t *testing.T) {
	a := newTestAPI(t)

	user, _ := registerUser(t, a, "alice", "alice@example.com")
	vault := createVault(t, a, user.ID)

	w := doJSON(t, a, http.MethodPost, "/api/activities", gin.H{
		"userId":     user.ID,
		"action":     "vault_created",
		"entityType": "vault",
		"entityId":   vault.ID,
		"details":    gin.H{"name": vault.Name},
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = doJSON(t, a, http.MethodPost, "/api/activities", gin.H{
		"userId":     user.ID,
		"action":     "login",
		"entityType": "user",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, a, http.MethodGet, "/api/activities?userId="+uintID(user.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)

	var list []model.Activity
	decode(t, w, &list)
	require.Len(t, list, 2)

	// Newest first
	assert.Equal(t, "login", list[0].Action)
	assert.Equal(t, "vault_created", list[1].Action)
	assert.Equal(t, "vault", list[1].EntityType)
	require.NotNil(t, list[1].EntityID)
	assert.Equal(t, vault.ID, *list[1].EntityID)
}

func TestActivityValidation(t *testing.T) {
	a := newTestAPI(t)

	w := doJSON(t, a, http.MethodPost, "/api/activities", gin.H{
		"userId": 1,
		"action": "login",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, a, http.MethodGet, "/api/activities", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
