package booking

import (
	"encoding/json"
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

type createBookingRequest struct {
	ArtistID  string  `json:"artistId" validate:"required"`
	EventDate string  `json:"eventDate" validate:"required"`
	EventType string  `json:"eventType" validate:"required"`
	Duration  string  `json:"duration"`
	Location  string  `json:"location"`
	Budget    float64 `json:"budget"`
}

// CreateBooking opens a pending booking from the authenticated client.
func (h *Handler) CreateBooking(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx := r.Context()
	claims, ok := middleware.ClaimsFromContext(ctx)
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	var req createBookingRequest
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

	now := time.Now()
	booking := models.Booking{
		BookingID: utils.GetUUID(),
		ClientID:  claims.UserID,
		ArtistID:  req.ArtistID,
		EventDate: req.EventDate,
		EventType: req.EventType,
		Duration:  req.Duration,
		Location:  req.Location,
		Budget:    req.Budget,
		Status:    models.BookingPending,
		CreatedAt: now,
		UpdatedAt: now,
	}

	created, err := h.Store.Bookings.Create(ctx, booking)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to create booking")
		return
	}

	utils.RespondWithData(w, http.StatusCreated, created, "Booking requested")
}

// GetBooking returns a booking to its client or to the booked artist's owner.
func (h *Handler) GetBooking(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx := r.Context()
	claims, ok := middleware.ClaimsFromContext(ctx)
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	booking, err := h.Store.Bookings.GetByID(ctx, ps.ByName("id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Booking not found")
		return
	}
	if !h.canAccess(r, booking, claims.UserID) {
		utils.RespondWithError(w, http.StatusForbidden, "You do not have access to this booking")
		return
	}

	utils.RespondWithData(w, http.StatusOK, booking, "")
}

type updateStatusRequest struct {
	Status models.BookingStatus `json:"status"`
}

// UpdateStatus moves a booking between states. The artist's owner may
// confirm, cancel or complete; the client may cancel. No further state
// machine is enforced.
func (h *Handler) UpdateStatus(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx := r.Context()
	claims, ok := middleware.ClaimsFromContext(ctx)
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	var req updateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || !req.Status.Valid() {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid status")
		return
	}

	booking, err := h.Store.Bookings.GetByID(ctx, ps.ByName("id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Booking not found")
		return
	}

	allowed := false
	switch {
	case h.ownsArtist(r, booking.ArtistID, claims.UserID):
		allowed = req.Status == models.BookingConfirmed ||
			req.Status == models.BookingCancelled ||
			req.Status == models.BookingCompleted
	case booking.ClientID == claims.UserID:
		allowed = req.Status == models.BookingCancelled
	}
	if !allowed {
		utils.RespondWithError(w, http.StatusForbidden, "You cannot set this booking status")
		return
	}

	updated, err := h.Store.Bookings.Update(ctx, booking.BookingID, func(b *models.Booking) {
		b.Status = req.Status
		b.UpdatedAt = time.Now()
	})
	if err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Booking not found")
		return
	}

	utils.RespondWithData(w, http.StatusOK, updated, "Booking status updated")
}

func (h *Handler) canAccess(r *http.Request, b models.Booking, userID string) bool {
	return b.ClientID == userID || h.ownsArtist(r, b.ArtistID, userID)
}

func (h *Handler) ownsArtist(r *http.Request, artistID, userID string) bool {
	artist, err := h.Store.Artists.GetByID(r.Context(), artistID)
	return err == nil && artist.UserID == userID
}
