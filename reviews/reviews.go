package reviews

import (
	"encoding/json"
	"math"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/julienschmidt/httprouter"

	"stagelink/middleware"
	"stagelink/models"
	"stagelink/store"
	"stagelink/utils"
)

type Handler struct {
	Store    *store.Store
	Validate *validator.Validate
}

func NewHandler(s *store.Store) *Handler {
	return &Handler{Store: s, Validate: validator.New()}
}

type createReviewRequest struct {
	ArtistID  string `json:"artistId" validate:"required"`
	BookingID string `json:"bookingId"`
	Rating    int    `json:"rating" validate:"required,min=1,max=5"`
	Comment   string `json:"comment"`
}

// CreateReview records a rating and folds it into the artist's aggregate
// rating and review count.
func (h *Handler) CreateReview(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx := r.Context()
	claims, ok := middleware.ClaimsFromContext(ctx)
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	var req createReviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := h.Validate.Struct(req); err != nil {
		utils.RespondWithValidation(w, "Missing or invalid fields", err.Error())
		return
	}

	if _, err := h.Store.Artists.GetByID(ctx, req.ArtistID); err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Artist not found")
		return
	}

	review := models.Review{
		ReviewID:  utils.GetUUID(),
		ArtistID:  req.ArtistID,
		ClientID:  claims.UserID,
		BookingID: req.BookingID,
		Rating:    req.Rating,
		Comment:   req.Comment,
		CreatedAt: time.Now(),
	}

	created, err := h.Store.Reviews.Add(ctx, review)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to create review")
		return
	}

	h.recomputeRating(r, req.ArtistID)

	utils.RespondWithData(w, http.StatusCreated, created, "Review submitted")
}

func (h *Handler) GetArtistReviews(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx := r.Context()
	artistID := ps.ByName("id")

	if _, err := h.Store.Artists.GetByID(ctx, artistID); err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Artist not found")
		return
	}

	utils.RespondWithData(w, http.StatusOK, h.Store.Reviews.ListByArtist(ctx, artistID), "")
}

func (h *Handler) recomputeRating(r *http.Request, artistID string) {
	ctx := r.Context()

	list := h.Store.Reviews.ListByArtist(ctx, artistID)
	if len(list) == 0 {
		return
	}
	sum := 0
	for _, rv := range list {
		sum += rv.Rating
	}
	avg := math.Round(float64(sum)/float64(len(list))*10) / 10

	_, _ = h.Store.Artists.Update(ctx, artistID, func(a *models.Artist) {
		a.Rating = avg
		a.Reviews = len(list)
	})
}
