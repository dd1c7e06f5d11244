package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stagelink/middleware"
	"stagelink/store"
)

func newTestHandler() *Handler {
	return NewHandler(store.New(), middleware.NewAuth([]byte("test-secret-0123456789")))
}

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Errors  any             `json:"errors"`
}

func do(t *testing.T, handle httprouter.Handle, method, path, body string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	rec := httptest.NewRecorder()
	handle(rec, req, nil)

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	return rec, env
}

func signup(t *testing.T, h *Handler, email, role string) (user map[string]any, token string) {
	t.Helper()
	body := `{"name":"Test User","email":"` + email + `","password":"password123","role":"` + role + `"}`
	rec, env := do(t, h.Signup, "POST", "/api/auth/signup", body)
	require.Equal(t, http.StatusCreated, rec.Code)

	var data struct {
		User  map[string]any `json:"user"`
		Token string         `json:"token"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	require.NotEmpty(t, data.Token)
	return data.User, data.Token
}

func TestSignup(t *testing.T) {
	h := newTestHandler()

	t.Run("creates a user and issues a token", func(t *testing.T) {
		user, token := signup(t, h, "new@example.com", "client")
		assert.Equal(t, "new@example.com", user["email"])
		assert.Equal(t, "client", user["role"])
		assert.NotEmpty(t, token)

		// The password hash never leaves the server.
		_, leaked := user["passwordHash"]
		assert.False(t, leaked)
	})

	t.Run("duplicate email is 409", func(t *testing.T) {
		body := `{"name":"Again","email":"new@example.com","password":"password123","role":"client"}`
		rec, env := do(t, h.Signup, "POST", "/api/auth/signup", body)
		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.Equal(t, "Email is already registered", env.Message)
	})

	t.Run("short password is rejected", func(t *testing.T) {
		body := `{"name":"Shorty","email":"short@example.com","password":"123","role":"client"}`
		rec, _ := do(t, h.Signup, "POST", "/api/auth/signup", body)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("unknown role is rejected", func(t *testing.T) {
		body := `{"name":"Admin","email":"admin@example.com","password":"password123","role":"admin"}`
		rec, _ := do(t, h.Signup, "POST", "/api/auth/signup", body)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("malformed body is 400", func(t *testing.T) {
		rec, _ := do(t, h.Signup, "POST", "/api/auth/signup", "{not json")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestSignin(t *testing.T) {
	h := newTestHandler()
	signup(t, h, "user@example.com", "artist")

	t.Run("valid credentials return a token", func(t *testing.T) {
		rec, env := do(t, h.Signin, "POST", "/api/auth/signin", `{"email":"user@example.com","password":"password123"}`)
		require.Equal(t, http.StatusOK, rec.Code)

		var data struct {
			Token string `json:"token"`
		}
		require.NoError(t, json.Unmarshal(env.Data, &data))
		assert.NotEmpty(t, data.Token)

		claims, err := h.Auth.ParseToken(data.Token)
		require.NoError(t, err)
		assert.Equal(t, "user@example.com", claims.Email)
	})

	t.Run("wrong password and unknown email are indistinguishable", func(t *testing.T) {
		rec1, env1 := do(t, h.Signin, "POST", "/api/auth/signin", `{"email":"user@example.com","password":"wrong"}`)
		rec2, env2 := do(t, h.Signin, "POST", "/api/auth/signin", `{"email":"nobody@example.com","password":"password123"}`)

		assert.Equal(t, http.StatusUnauthorized, rec1.Code)
		assert.Equal(t, http.StatusUnauthorized, rec2.Code)
		assert.Equal(t, env1.Message, env2.Message)
	})

	t.Run("missing fields are 400", func(t *testing.T) {
		rec, _ := do(t, h.Signin, "POST", "/api/auth/signin", `{"email":"user@example.com"}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestMe(t *testing.T) {
	h := newTestHandler()
	_, token := signup(t, h, "me@example.com", "client")

	handle := h.Auth.Authenticate(h.Me)

	req := httptest.NewRequest("GET", "/api/auth/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	handle(rec, req, nil)

	require.Equal(t, http.StatusOK, rec.Code)
	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	var user map[string]any
	require.NoError(t, json.Unmarshal(env.Data, &user))
	assert.Equal(t, "me@example.com", user["email"])
}

func TestRefresh(t *testing.T) {
	h := newTestHandler()
	user, token := signup(t, h, "refresh@example.com", "client")

	t.Run("reissues for a valid token", func(t *testing.T) {
		rec, env := do(t, h.Refresh, "POST", "/api/auth/refresh", `{"token":"`+token+`"}`)
		require.Equal(t, http.StatusOK, rec.Code)

		var data struct {
			Token string `json:"token"`
		}
		require.NoError(t, json.Unmarshal(env.Data, &data))
		claims, err := h.Auth.ParseToken(data.Token)
		require.NoError(t, err)
		assert.Equal(t, user["userId"], claims.UserID)
	})

	t.Run("garbage token is 401", func(t *testing.T) {
		rec, _ := do(t, h.Refresh, "POST", "/api/auth/refresh", `{"token":"garbage"}`)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("missing token is 400", func(t *testing.T) {
		rec, _ := do(t, h.Refresh, "POST", "/api/auth/refresh", `{}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("removed user is 404", func(t *testing.T) {
		require.NoError(t, h.Store.DeleteUserCascade(context.Background(), user["userId"].(string)))
		rec, _ := do(t, h.Refresh, "POST", "/api/auth/refresh", `{"token":"`+token+`"}`)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
