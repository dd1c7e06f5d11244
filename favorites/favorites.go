package favorites

import (
	"errors"
	"net/http"
	"time"

	"github.com/julienschmidt/httprouter"

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

// AddFavorite saves an artist for the user. The (user, artist) pair is
// unique.
func (h *Handler) AddFavorite(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx := r.Context()
	userID := ps.ByName("id")
	artistID := ps.ByName("artistId")

	if _, err := h.Store.Artists.GetByID(ctx, artistID); err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Artist not found")
		return
	}

	favorite := models.Favorite{
		FavoriteID: utils.GetUUID(),
		UserID:     userID,
		ArtistID:   artistID,
		CreatedAt:  time.Now(),
	}

	created, err := h.Store.Favorites.Add(ctx, favorite)
	if err != nil {
		if errors.Is(err, store.ErrConflict) {
			utils.RespondWithError(w, http.StatusConflict, "Artist is already in favorites")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to add favorite")
		return
	}

	utils.RespondWithData(w, http.StatusCreated, created, "Added to favorites")
}

func (h *Handler) RemoveFavorite(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	err := h.Store.Favorites.Remove(r.Context(), ps.ByName("id"), ps.ByName("artistId"))
	if err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Favorite not found")
		return
	}
	utils.RespondWithData(w, http.StatusOK, nil, "Removed from favorites")
}
