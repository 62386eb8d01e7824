package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/shirokane/todo-app-api/internal/dto"
	"github.com/shirokane/todo-app-api/internal/models"
	"github.com/stretchr/testify/require"
)

func TestAddressHandler_CreateLinksUser(t *testing.T) {
	env := newTestEnv(t)
	alice := env.register(t, "alice", "alice@example.com", "password1")
	cookie := env.login(t, "alice", "password1")

	w := env.do(t, http.MethodPost, "/address", map[string]any{
		"address1":   "1 Main St",
		"address2":   "Apt B",
		"city":       "Springfield",
		"state":      "IL",
		"country":    "US",
		"postalcode": "62701",
		"apt_num":    4,
	}, cookie)
	require.Equal(t, http.StatusCreated, w.Code)

	var created dto.AddressDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	require.NotZero(t, created.ID)
	require.Equal(t, "1 Main St", created.Address1)

	// the user row now points at the address
	var user models.User
	require.NoError(t, env.db.First(&user, alice.ID).Error)
	require.NotNil(t, user.AddressID)
	require.Equal(t, created.ID, *user.AddressID)
}

func TestAddressHandler_GetAddress(t *testing.T) {
	env := newTestEnv(t)
	env.register(t, "alice", "alice@example.com", "password1")
	cookie := env.login(t, "alice", "password1")

	// nothing linked yet
	w := env.do(t, http.MethodGet, "/address", nil, cookie)
	require.Equal(t, http.StatusNotFound, w.Code)

	created := env.do(t, http.MethodPost, "/address", map[string]any{
		"address1":   "1 Main St",
		"city":       "Springfield",
		"state":      "IL",
		"country":    "US",
		"postalcode": "62701",
	}, cookie)
	require.Equal(t, http.StatusCreated, created.Code)

	w = env.do(t, http.MethodGet, "/address", nil, cookie)
	require.Equal(t, http.StatusOK, w.Code)

	var response dto.AddressDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.Equal(t, "Springfield", response.City)
}

func TestAddressHandler_Anonymous(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodPost, "/address", map[string]any{
		"address1":   "1 Main St",
		"city":       "Springfield",
		"state":      "IL",
		"country":    "US",
		"postalcode": "62701",
	}, nil)
	require.Equal(t, http.StatusNotFound, w.Code)
}
