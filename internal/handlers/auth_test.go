package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/shirokane/todo-app-api/internal/constants"
	"github.com/shirokane/todo-app-api/internal/dto"
	"github.com/stretchr/testify/require"
)

func TestAuthHandler_Register(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodPost, "/auth/register", map[string]string{
		"email":      "new@example.com",
		"username":   "newuser",
		"first_name": "New",
		"last_name":  "User",
		"password":   "supersecret",
		"password2":  "supersecret",
	}, nil)

	require.Equal(t, http.StatusCreated, w.Code)

	var response dto.UserDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.Equal(t, "newuser", response.Username)
	require.Equal(t, "new@example.com", response.Email)
	require.True(t, response.IsActive)
}

// Any password the confirmation matches is accepted: no length floor on
// passwords or usernames.
func TestAuthHandler_Register_ShortCredentials(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodPost, "/auth/register", map[string]string{
		"email":      "alice@example.com",
		"username":   "al",
		"first_name": "Alice",
		"last_name":  "Smith",
		"password":   "pw1",
		"password2":  "pw1",
	}, nil)

	require.Equal(t, http.StatusCreated, w.Code)

	login := env.do(t, http.MethodPost, "/auth/token", map[string]string{
		"username": "al",
		"password": "pw1",
	}, nil)
	require.Equal(t, http.StatusOK, login.Code)
}

func TestAuthHandler_Register_PasswordMismatch(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodPost, "/auth/register", map[string]string{
		"email":      "new@example.com",
		"username":   "newuser",
		"first_name": "New",
		"last_name":  "User",
		"password":   "supersecret",
		"password2":  "different",
	}, nil)

	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAuthHandler_Register_DuplicateIdentity(t *testing.T) {
	env := newTestEnv(t)
	env.register(t, "existing", "existing@example.com", "supersecret")

	// same username, different email
	w := env.do(t, http.MethodPost, "/auth/register", map[string]string{
		"email":      "other@example.com",
		"username":   "existing",
		"first_name": "New",
		"last_name":  "User",
		"password":   "supersecret",
		"password2":  "supersecret",
	}, nil)
	require.Equal(t, http.StatusConflict, w.Code)

	// same email, different username
	w = env.do(t, http.MethodPost, "/auth/register", map[string]string{
		"email":      "existing@example.com",
		"username":   "someoneelse",
		"first_name": "New",
		"last_name":  "User",
		"password":   "supersecret",
		"password2":  "supersecret",
	}, nil)
	require.Equal(t, http.StatusConflict, w.Code)
}

func TestAuthHandler_Login(t *testing.T) {
	env := newTestEnv(t)
	env.register(t, "existing", "existing@example.com", "supersecret")

	w := env.do(t, http.MethodPost, "/auth/token", map[string]string{
		"username": "existing",
		"password": "supersecret",
	}, nil)

	require.Equal(t, http.StatusOK, w.Code)

	var response dto.UserDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.Equal(t, "existing", response.Username)

	cookies := w.Result().Cookies()
	require.NotEmpty(t, cookies, "expected session cookie to be set")

	var found bool
	for _, cookie := range cookies {
		if cookie.Name == constants.AccessTokenCookie {
			found = true
			require.True(t, cookie.HttpOnly)
			require.Equal(t, constants.DefaultCookieMaxAgeSeconds, cookie.MaxAge)
		}
	}
	require.True(t, found)
}

// Unknown username and wrong password fail with the same response.
func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	env := newTestEnv(t)
	env.register(t, "existing", "existing@example.com", "supersecret")

	wrongPassword := env.do(t, http.MethodPost, "/auth/token", map[string]string{
		"username": "existing",
		"password": "not-the-password",
	}, nil)
	require.Equal(t, http.StatusUnauthorized, wrongPassword.Code)

	unknownUser := env.do(t, http.MethodPost, "/auth/token", map[string]string{
		"username": "ghost",
		"password": "supersecret",
	}, nil)
	require.Equal(t, http.StatusUnauthorized, unknownUser.Code)

	require.JSONEq(t, wrongPassword.Body.String(), unknownUser.Body.String())
}

func TestAuthHandler_Logout_ClearsCookie(t *testing.T) {
	env := newTestEnv(t)
	env.register(t, "existing", "existing@example.com", "supersecret")
	cookie := env.login(t, "existing", "supersecret")

	w := env.do(t, http.MethodGet, "/auth/logout", nil, cookie)
	require.Equal(t, http.StatusOK, w.Code)

	for _, c := range w.Result().Cookies() {
		if c.Name == constants.AccessTokenCookie {
			require.LessOrEqual(t, c.MaxAge, 0, "logout must expire the cookie")
		}
	}
}

func TestAuthHandler_GetCurrentUser(t *testing.T) {
	env := newTestEnv(t)
	user := env.register(t, "current-user", "current@example.com", "supersecret")
	cookie := env.login(t, "current-user", "supersecret")

	w := env.do(t, http.MethodGet, "/auth/me", nil, cookie)
	require.Equal(t, http.StatusOK, w.Code)

	var response dto.UserDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.Equal(t, user.ID, response.ID)
	require.Equal(t, "current-user", response.Username)
}

func TestAuthHandler_GetCurrentUser_Anonymous(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodGet, "/auth/me", nil, nil)
	require.Equal(t, http.StatusNotFound, w.Code, "anonymous requests answer 404, not 401")
}

func TestAuthHandler_InvalidTokenFormat(t *testing.T) {
	env := newTestEnv(t)
	env.register(t, "existing", "existing@example.com", "supersecret")
	cookie := env.login(t, "existing", "supersecret")

	cookie.Value += "corrupted"
	w := env.do(t, http.MethodGet, "/auth/me", nil, cookie)
	require.Equal(t, http.StatusNotFound, w.Code)
}

// A stale or corrupt cookie must never lock a caller out of the public
// routes: they can always re-login or logout.
func TestAuthHandler_StaleCookieOnPublicRoutes(t *testing.T) {
	env := newTestEnv(t)
	env.register(t, "existing", "existing@example.com", "supersecret")

	stale := &http.Cookie{Name: constants.AccessTokenCookie, Value: "garbage.token.value"}

	login := env.do(t, http.MethodPost, "/auth/token", map[string]string{
		"username": "existing",
		"password": "supersecret",
	}, stale)
	require.Equal(t, http.StatusOK, login.Code, "login must succeed despite the bad cookie")

	var fresh *http.Cookie
	for _, c := range login.Result().Cookies() {
		if c.Name == constants.AccessTokenCookie {
			fresh = c
		}
	}
	require.NotNil(t, fresh, "login must issue a fresh cookie")

	logout := env.do(t, http.MethodGet, "/auth/logout", nil, stale)
	require.Equal(t, http.StatusOK, logout.Code, "logout must succeed despite the bad cookie")

	register := env.do(t, http.MethodPost, "/auth/register", map[string]string{
		"email":      "new@example.com",
		"username":   "newuser",
		"first_name": "New",
		"last_name":  "User",
		"password":   "supersecret",
		"password2":  "supersecret",
	}, stale)
	require.Equal(t, http.StatusCreated, register.Code)
}
