package users

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/julienschmidt/httprouter"
	"golang.org/x/crypto/bcrypt"

	"stagelink/models"
	"stagelink/store"
	"stagelink/utils"
)

type Handler struct {
	Store *store.Store
}

func NewHandler(s *store.Store) *Handler {
	return &Handler{Store: s}
}

func (h *Handler) GetUser(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	user, err := h.Store.Users.GetByID(r.Context(), ps.ByName("id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "User not found")
		return
	}
	utils.RespondWithData(w, http.StatusOK, user, "")
}

type updateUserRequest struct {
	Name         *string `json:"name"`
	Phone        *string `json:"phone"`
	Location     *string `json:"location"`
	ProfileImage *string `json:"profileImage"`
}

// UpdateUser applies a partial profile update. Email, role and id cannot be
// changed here.
func (h *Handler) UpdateUser(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	var req updateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	updated, err := h.Store.Users.Update(r.Context(), ps.ByName("id"), func(u *models.User) {
		if req.Name != nil {
			u.Name = *req.Name
		}
		if req.Phone != nil {
			u.Phone = *req.Phone
		}
		if req.Location != nil {
			u.Location = *req.Location
		}
		if req.ProfileImage != nil {
			u.ProfileImage = *req.ProfileImage
		}
		u.UpdatedAt = time.Now()
	})
	if err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "User not found")
		return
	}

	utils.RespondWithData(w, http.StatusOK, updated, "Profile updated")
}

type changePasswordRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

func (h *Handler) ChangePassword(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx := r.Context()

	var req changePasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if len(req.NewPassword) < 6 {
		utils.RespondWithError(w, http.StatusBadRequest, "New password must be at least 6 characters")
		return
	}

	user, err := h.Store.Users.GetByID(ctx, ps.ByName("id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "User not found")
		return
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.CurrentPassword)); err != nil {
		utils.RespondWithError(w, http.StatusUnauthorized, "Current password is incorrect")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to process password")
		return
	}

	if _, err := h.Store.Users.Update(ctx, user.UserID, func(u *models.User) {
		u.PasswordHash = string(hash)
		u.UpdatedAt = time.Now()
	}); err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "User not found")
		return
	}

	utils.RespondWithData(w, http.StatusOK, nil, "Password changed")
}

// DeleteUser removes the account and cascades to its artist profile,
// bookings, favorites and reviews.
func (h *Handler) DeleteUser(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	if err := h.Store.DeleteUserCascade(r.Context(), ps.ByName("id")); err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "User not found")
		return
	}
	utils.RespondWithData(w, http.StatusOK, nil, "Account deleted")
}

// GetBookings returns bookings where the user is the client, plus bookings on
// the user's artist profile for artist users.
func (h *Handler) GetBookings(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx := r.Context()
	userID := ps.ByName("id")

	bookings := h.Store.Bookings.ListByClient(ctx, userID)
	if artist, err := h.Store.Artists.GetByUserID(ctx, userID); err == nil {
		bookings = append(bookings, h.Store.Bookings.ListByArtist(ctx, artist.ArtistID)...)
	}

	utils.RespondWithData(w, http.StatusOK, bookings, "")
}

// GetFavorites resolves the user's favorites to artist profiles. Favorites
// pointing at a since-deleted artist are skipped.
func (h *Handler) GetFavorites(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx := r.Context()

	favorites := h.Store.Favorites.ListByUser(ctx, ps.ByName("id"))
	artists := []models.Artist{}
	for _, f := range favorites {
		if artist, err := h.Store.Artists.GetByID(ctx, f.ArtistID); err == nil {
			artists = append(artists, artist)
		}
	}

	utils.RespondWithData(w, http.StatusOK, artists, "")
}
