package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stagelink/models"
)

var testSecret = []byte("test-secret-0123456789")

func signToken(t *testing.T, userID string, role models.Role, expiresIn time.Duration) string {
	t.Helper()
	claims := &Claims{
		UserID: userID,
		Email:  userID + "@example.com",
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(expiresIn)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(testSecret)
	require.NoError(t, err)
	return signed
}

func runHandle(handle httprouter.Handle, token string, ps httprouter.Params) (*httptest.ResponseRecorder, *http.Request) {
	req := httptest.NewRequest("GET", "/protected", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	handle(rec, req, ps)
	return rec, req
}

func TestAuthenticate(t *testing.T) {
	auth := NewAuth(testSecret)

	var seen *Claims
	handle := auth.Authenticate(func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		seen, _ = ClaimsFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	t.Run("valid token attaches identity", func(t *testing.T) {
		rec, _ := runHandle(handle, signToken(t, "u1", models.RoleArtist, time.Hour), nil)
		assert.Equal(t, http.StatusOK, rec.Code)
		require.NotNil(t, seen)
		assert.Equal(t, "u1", seen.UserID)
		assert.Equal(t, models.RoleArtist, seen.Role)
	})

	t.Run("missing token is 401", func(t *testing.T) {
		rec, _ := runHandle(handle, "", nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("garbage token is 401", func(t *testing.T) {
		rec, _ := runHandle(handle, "not.a.token", nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("expired token is 401", func(t *testing.T) {
		rec, _ := runHandle(handle, signToken(t, "u1", models.RoleArtist, -time.Hour), nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("token signed with another secret is 401", func(t *testing.T) {
		other := NewAuth([]byte("another-secret-value"))
		otherHandle := other.Authenticate(func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
			w.WriteHeader(http.StatusOK)
		})
		rec, _ := runHandle(otherHandle, signToken(t, "u1", models.RoleArtist, time.Hour), nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestRequireRoles(t *testing.T) {
	auth := NewAuth(testSecret)
	ok := func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		w.WriteHeader(http.StatusOK)
	}

	t.Run("allowed role passes", func(t *testing.T) {
		handle := auth.Authenticate(RequireRoles(ok, models.RoleArtist))
		rec, _ := runHandle(handle, signToken(t, "u1", models.RoleArtist, time.Hour), nil)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("wrong role is 403", func(t *testing.T) {
		handle := auth.Authenticate(RequireRoles(ok, models.RoleArtist))
		rec, _ := runHandle(handle, signToken(t, "u1", models.RoleClient, time.Hour), nil)
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("no identity is 401", func(t *testing.T) {
		handle := RequireRoles(ok, models.RoleArtist)
		rec, _ := runHandle(handle, "", nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestRequireSelf(t *testing.T) {
	auth := NewAuth(testSecret)
	ok := func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		w.WriteHeader(http.StatusOK)
	}
	handle := auth.Authenticate(RequireSelf("id", ok))

	t.Run("own resource passes", func(t *testing.T) {
		ps := httprouter.Params{{Key: "id", Value: "u1"}}
		rec, _ := runHandle(handle, signToken(t, "u1", models.RoleClient, time.Hour), ps)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("someone else's resource is 403", func(t *testing.T) {
		ps := httprouter.Params{{Key: "id", Value: "u2"}}
		rec, _ := runHandle(handle, signToken(t, "u1", models.RoleClient, time.Hour), ps)
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})
}

func TestOptionalAuth(t *testing.T) {
	auth := NewAuth(testSecret)
	var seen *Claims
	var called bool
	handle := auth.OptionalAuth(func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		called = true
		seen, _ = ClaimsFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	t.Run("passes through without a token", func(t *testing.T) {
		called, seen = false, nil
		rec, _ := runHandle(handle, "", nil)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.True(t, called)
		assert.Nil(t, seen)
	})

	t.Run("attaches identity when present", func(t *testing.T) {
		called, seen = false, nil
		rec, _ := runHandle(handle, signToken(t, "u9", models.RoleClient, time.Hour), nil)
		assert.Equal(t, http.StatusOK, rec.Code)
		require.NotNil(t, seen)
		assert.Equal(t, "u9", seen.UserID)
	})
}
