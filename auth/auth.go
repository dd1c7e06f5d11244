package auth

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/julienschmidt/httprouter"
	"golang.org/x/crypto/bcrypt"

	"stagelink/middleware"
	"stagelink/models"
	"stagelink/store"
	"stagelink/utils"
)

type Handler struct {
	Store    *store.Store
	Auth     *middleware.Auth
	Validate *validator.Validate
}

func NewHandler(s *store.Store, auth *middleware.Auth) *Handler {
	return &Handler{Store: s, Auth: auth, Validate: validator.New()}
}

type signupRequest struct {
	Name     string      `json:"name" validate:"required"`
	Email    string      `json:"email" validate:"required,email"`
	Password string      `json:"password" validate:"required,min=6"`
	Role     models.Role `json:"role" validate:"required,oneof=client artist"`
	Phone    string      `json:"phone"`
	Location string      `json:"location"`
}

// Signup creates a user and issues a token.
func (h *Handler) Signup(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req signupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := h.Validate.Struct(req); err != nil {
		utils.RespondWithValidation(w, "Missing or invalid fields", err.Error())
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to process password")
		return
	}

	now := time.Now()
	user := models.User{
		UserID:       utils.GetUUID(),
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: string(hash),
		Role:         req.Role,
		Phone:        req.Phone,
		Location:     req.Location,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := h.Store.Users.Create(r.Context(), user)
	if err != nil {
		if errors.Is(err, store.ErrConflict) {
			utils.RespondWithError(w, http.StatusConflict, "Email is already registered")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to create user")
		return
	}

	token, err := generateToken(created, h.Auth.Secret)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to generate token")
		return
	}

	utils.RespondWithData(w, http.StatusCreated, utils.M{"user": created, "token": token}, "Account created")
}

type signinRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Signin verifies credentials and issues a token. The response never reveals
// which half of the credential was wrong.
func (h *Handler) Signin(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req signinRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Email == "" || req.Password == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Email and password are required")
		return
	}

	user, err := h.Store.Users.GetByEmail(r.Context(), req.Email)
	if err != nil {
		utils.RespondWithError(w, http.StatusUnauthorized, "Invalid email or password")
		return
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		utils.RespondWithError(w, http.StatusUnauthorized, "Invalid email or password")
		return
	}

	token, err := generateToken(user, h.Auth.Secret)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to generate token")
		return
	}

	utils.RespondWithData(w, http.StatusOK, utils.M{"user": user, "token": token}, "Signed in")
}

// Me resolves the authenticated identity to its stored user.
func (h *Handler) Me(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	user, err := h.Store.Users.GetByID(r.Context(), claims.UserID)
	if err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "User not found")
		return
	}
	utils.RespondWithData(w, http.StatusOK, user, "")
}

type refreshRequest struct {
	Token string `json:"token"`
}

// Refresh re-issues a fresh token for a still-valid one.
func (h *Handler) Refresh(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req refreshRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Token == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Token is required")
		return
	}

	claims, err := h.Auth.ParseToken(req.Token)
	if err != nil {
		utils.RespondWithError(w, http.StatusUnauthorized, "Invalid or expired token")
		return
	}

	user, err := h.Store.Users.GetByID(r.Context(), claims.UserID)
	if err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "User not found")
		return
	}

	token, err := generateToken(user, h.Auth.Secret)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to generate token")
		return
	}

	utils.RespondWithData(w, http.StatusOK, utils.M{"token": token}, "Token refreshed")
}

// Logout acknowledges the request; tokens are stateless and discarded client
// side.
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	utils.RespondWithData(w, http.StatusOK, nil, "Signed out")
}
