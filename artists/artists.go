package artists

import (
	"encoding/json"
	"errors"
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

// GetArtists runs the filter/sort/paginate pipeline over the collection.
func (h *Handler) GetArtists(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	opts, err := ParseQueryOptions(r)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	result := RunQuery(h.Store.Artists.Snapshot(r.Context()), opts)
	utils.RespondWithData(w, http.StatusOK, result, "")
}

func (h *Handler) GetArtistByID(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	artist, err := h.Store.Artists.GetByID(r.Context(), ps.ByName("id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Artist not found")
		return
	}
	utils.RespondWithData(w, http.StatusOK, artist, "")
}

func (h *Handler) GetCategories(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	utils.RespondWithData(w, http.StatusOK, h.Store.Categories.List(r.Context()), "")
}

type createArtistRequest struct {
	Name         string              `json:"name" validate:"required"`
	Specialty    string              `json:"specialty" validate:"required"`
	Category     string              `json:"category" validate:"required"`
	Bio          string              `json:"bio"`
	Genres       []string            `json:"genres"`
	Tags         []string            `json:"tags"`
	Languages    []string            `json:"languages"`
	Location     string              `json:"location" validate:"required"`
	Price        float64             `json:"price" validate:"required,gt=0"`
	PriceUnit    models.PriceUnit    `json:"priceUnit" validate:"required,oneof=per_hour per_event per_day"`
	Availability models.Availability `json:"availability" validate:"omitempty,oneof=available busy unavailable"`
	Featured     bool                `json:"featured"`
	Photo        string              `json:"photo"`
	Contact      *models.Contact     `json:"contact"`
}

// CreateArtist creates the authenticated user's profile. The role check reads
// the stored user rather than the token, so a stale token cannot sidestep it.
func (h *Handler) CreateArtist(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx := r.Context()
	claims, ok := middleware.ClaimsFromContext(ctx)
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	var req createArtistRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := h.Validate.Struct(req); err != nil {
		utils.RespondWithValidation(w, "Missing or invalid fields", err.Error())
		return
	}

	user, err := h.Store.Users.GetByID(ctx, claims.UserID)
	if err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "User not found")
		return
	}
	if user.Role != models.RoleArtist {
		utils.RespondWithError(w, http.StatusForbidden, "Only artist users can create artist profiles")
		return
	}

	availability := req.Availability
	if availability == "" {
		availability = models.Available
	}

	now := time.Now()
	artist := models.Artist{
		ArtistID:     utils.GetUUID(),
		UserID:       user.UserID,
		Name:         req.Name,
		Specialty:    req.Specialty,
		Category:     req.Category,
		Bio:          req.Bio,
		Genres:       req.Genres,
		Tags:         req.Tags,
		Languages:    req.Languages,
		Location:     req.Location,
		Price:        req.Price,
		PriceUnit:    req.PriceUnit,
		Availability: availability,
		Featured:     req.Featured,
		Photo:        req.Photo,
		Contact:      req.Contact,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := h.Store.Artists.Create(ctx, artist)
	if err != nil {
		if errors.Is(err, store.ErrConflict) {
			utils.RespondWithError(w, http.StatusConflict, "Artist profile already exists for this user")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to create artist")
		return
	}

	utils.RespondWithData(w, http.StatusCreated, created, "Artist profile created")
}

type updateArtistRequest struct {
	Name         *string              `json:"name"`
	Specialty    *string              `json:"specialty"`
	Category     *string              `json:"category"`
	Bio          *string              `json:"bio"`
	Genres       *[]string            `json:"genres"`
	Tags         *[]string            `json:"tags"`
	Languages    *[]string            `json:"languages"`
	Location     *string              `json:"location"`
	Price        *float64             `json:"price"`
	PriceUnit    *models.PriceUnit    `json:"priceUnit"`
	Availability *models.Availability `json:"availability"`
	Featured     *bool                `json:"featured"`
	Photo        *string              `json:"photo"`
	Contact      *models.Contact      `json:"contact"`
}

// UpdateArtist partially updates a profile. ArtistID, UserID and CreatedAt
// are immutable; rating and review count are maintained by the review flow.
func (h *Handler) UpdateArtist(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx := r.Context()
	claims, ok := middleware.ClaimsFromContext(ctx)
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	existing, err := h.Store.Artists.GetByID(ctx, ps.ByName("id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Artist not found")
		return
	}
	// Ownership runs through the profile's owning user, not the path id.
	if existing.UserID != claims.UserID {
		utils.RespondWithError(w, http.StatusForbidden, "You can only modify your own artist profile")
		return
	}

	var req updateArtistRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.PriceUnit != nil && !req.PriceUnit.Valid() {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid priceUnit")
		return
	}
	if req.Availability != nil && !req.Availability.Valid() {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid availability")
		return
	}
	if req.Price != nil && *req.Price <= 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "Price must be positive")
		return
	}

	updated, err := h.Store.Artists.Update(ctx, existing.ArtistID, func(a *models.Artist) {
		if req.Name != nil {
			a.Name = *req.Name
		}
		if req.Specialty != nil {
			a.Specialty = *req.Specialty
		}
		if req.Category != nil {
			a.Category = *req.Category
		}
		if req.Bio != nil {
			a.Bio = *req.Bio
		}
		if req.Genres != nil {
			a.Genres = *req.Genres
		}
		if req.Tags != nil {
			a.Tags = *req.Tags
		}
		if req.Languages != nil {
			a.Languages = *req.Languages
		}
		if req.Location != nil {
			a.Location = *req.Location
		}
		if req.Price != nil {
			a.Price = *req.Price
		}
		if req.PriceUnit != nil {
			a.PriceUnit = *req.PriceUnit
		}
		if req.Availability != nil {
			a.Availability = *req.Availability
		}
		if req.Featured != nil {
			a.Featured = *req.Featured
		}
		if req.Photo != nil {
			a.Photo = *req.Photo
		}
		if req.Contact != nil {
			a.Contact = req.Contact
		}
		a.UpdatedAt = time.Now()
	})
	if err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Artist not found")
		return
	}

	utils.RespondWithData(w, http.StatusOK, updated, "Artist updated")
}

func (h *Handler) DeleteArtist(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx := r.Context()
	claims, ok := middleware.ClaimsFromContext(ctx)
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	existing, err := h.Store.Artists.GetByID(ctx, ps.ByName("id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Artist not found")
		return
	}
	if existing.UserID != claims.UserID {
		utils.RespondWithError(w, http.StatusForbidden, "You can only delete your own artist profile")
		return
	}

	if err := h.Store.Artists.Delete(ctx, existing.ArtistID); err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Artist not found")
		return
	}
	h.Store.Bookings.DeleteByArtist(ctx, existing.ArtistID)
	h.Store.Favorites.DeleteByArtist(ctx, existing.ArtistID)
	h.Store.Reviews.DeleteByArtist(ctx, existing.ArtistID)

	utils.RespondWithData(w, http.StatusOK, nil, "Artist deleted successfully")
}
