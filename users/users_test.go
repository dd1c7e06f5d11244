package users

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"stagelink/models"
	"stagelink/store"
)

func newTestHandler(t *testing.T) *Handler {
	t.Helper()
	st := store.New()
	ctx := context.Background()

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	require.NoError(t, err)

	now := time.Now()
	_, err = st.Users.Create(ctx, models.User{
		UserID: "u1", Name: "Priya", Email: "priya@example.com",
		PasswordHash: string(hash), Role: models.RoleClient,
		CreatedAt: now, UpdatedAt: now,
	})
	require.NoError(t, err)

	_, err = st.Artists.Create(ctx, models.Artist{
		ArtistID: "a1", UserID: "u-owner", Name: "Band", Specialty: "Live",
		Category: "Music", Location: "Pune", Price: 9000,
		PriceUnit: models.PerEvent, Availability: models.Available,
	})
	require.NoError(t, err)

	return NewHandler(st)
}

func psID(id string) httprouter.Params {
	return httprouter.Params{{Key: "id", Value: id}}
}

func TestUpdateUser(t *testing.T) {
	h := newTestHandler(t)

	body := `{"phone":"+91 98765 43210","location":"Mumbai"}`
	req := httptest.NewRequest("PUT", "/api/users/u1", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.UpdateUser(rec, req, psID("u1"))
	require.Equal(t, http.StatusOK, rec.Code)

	user, err := h.Store.Users.GetByID(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, "+91 98765 43210", user.Phone)
	assert.Equal(t, "Mumbai", user.Location)
	// Fields absent from the request do not move.
	assert.Equal(t, "Priya", user.Name)
	assert.Equal(t, "priya@example.com", user.Email)
}

func TestChangePassword(t *testing.T) {
	h := newTestHandler(t)

	change := func(body string) *httptest.ResponseRecorder {
		req := httptest.NewRequest("PUT", "/api/users/u1/password", strings.NewReader(body))
		rec := httptest.NewRecorder()
		h.ChangePassword(rec, req, psID("u1"))
		return rec
	}

	t.Run("wrong current password is 401", func(t *testing.T) {
		rec := change(`{"currentPassword":"nope","newPassword":"fresh-secret"}`)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("short new password is 400", func(t *testing.T) {
		rec := change(`{"currentPassword":"password123","newPassword":"abc"}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("valid change replaces the hash", func(t *testing.T) {
		rec := change(`{"currentPassword":"password123","newPassword":"fresh-secret"}`)
		require.Equal(t, http.StatusOK, rec.Code)

		user, err := h.Store.Users.GetByID(context.Background(), "u1")
		require.NoError(t, err)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("fresh-secret")))
	})
}

func TestGetBookingsMergesBothSides(t *testing.T) {
	h := newTestHandler(t)
	ctx := context.Background()

	// u-owner both books someone and receives a booking on their profile.
	_, err := h.Store.Bookings.Create(ctx, models.Booking{BookingID: "b1", ClientID: "u-owner", ArtistID: "a-other", Status: models.BookingPending})
	require.NoError(t, err)
	_, err = h.Store.Bookings.Create(ctx, models.Booking{BookingID: "b2", ClientID: "u1", ArtistID: "a1", Status: models.BookingPending})
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	h.GetBookings(rec, httptest.NewRequest("GET", "/api/users/u-owner/bookings", nil), psID("u-owner"))
	require.Equal(t, http.StatusOK, rec.Code)

	var env struct {
		Data []models.Booking `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	require.Len(t, env.Data, 2)
}

func TestGetFavoritesResolvesArtists(t *testing.T) {
	h := newTestHandler(t)
	ctx := context.Background()

	_, err := h.Store.Favorites.Add(ctx, models.Favorite{FavoriteID: "f1", UserID: "u1", ArtistID: "a1"})
	require.NoError(t, err)
	// Dangling favorite; its artist no longer exists.
	_, err = h.Store.Favorites.Add(ctx, models.Favorite{FavoriteID: "f2", UserID: "u1", ArtistID: "a-gone"})
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	h.GetFavorites(rec, httptest.NewRequest("GET", "/api/users/u1/favorites", nil), psID("u1"))
	require.Equal(t, http.StatusOK, rec.Code)

	var env struct {
		Data []models.Artist `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	require.Len(t, env.Data, 1)
	assert.Equal(t, "a1", env.Data[0].ArtistID)
}

func TestDeleteUser(t *testing.T) {
	h := newTestHandler(t)

	rec := httptest.NewRecorder()
	h.DeleteUser(rec, httptest.NewRequest("DELETE", "/api/users/u1", nil), psID("u1"))
	require.Equal(t, http.StatusOK, rec.Code)

	_, err := h.Store.Users.GetByID(context.Background(), "u1")
	assert.ErrorIs(t, err, store.ErrNotFound)

	rec = httptest.NewRecorder()
	h.DeleteUser(rec, httptest.NewRequest("DELETE", "/api/users/u1", nil), psID("u1"))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
