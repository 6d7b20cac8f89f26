package handlers

import (
	"net/http"

	"job-board-api/internal/api/middleware"
	"job-board-api/internal/services"
	"job-board-api/internal/transport/dto"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

// AuthHandler holds dependencies for account operations.
type AuthHandler struct {
	service   services.AuthService
	validator *validator.Validate
	log       *zap.Logger
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(service services.AuthService, validate *validator.Validate, log *zap.Logger) *AuthHandler {
	return &AuthHandler{service: service, validator: validate, log: log}
}

// Register godoc
//
//	@Summary		Register a new account
//	@Description	Creates a user with role employer or job_seeker plus an initial profile, and returns a token.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			user	body		dto.RegisterRequest	true	"Account details"
//	@Success		201		{object}	dto.Response{data=dto.AuthResponse}
//	@Failure		400		{object}	dto.Response	"Validation error"
//	@Failure		409		{object}	dto.Response	"Email already registered"
//	@Router			/auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if !bindJSON(c, h.validator, &req) {
		return
	}

	result, err := h.service.Register(c.Request.Context(), &req)
	if err != nil {
		writeServiceError(c, h.log, err, errorMessages{})
		return
	}

	respondOK(c, http.StatusCreated, "User registered successfully", dto.AuthResponse{
		User:  MapUserModelToUserResponse(result.User),
		Token: result.Token,
	})
}

// Login godoc
//
//	@Summary		Log in
//	@Description	Exchanges email and password for a bearer token.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			credentials	body		dto.LoginRequest	true	"Credentials"
//	@Success		200			{object}	dto.Response{data=dto.AuthResponse}
//	@Failure		400			{object}	dto.Response	"Validation error"
//	@Failure		401			{object}	dto.Response	"Invalid email or password"
//	@Router			/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !bindJSON(c, h.validator, &req) {
		return
	}

	result, err := h.service.Login(c.Request.Context(), &req)
	if err != nil {
		writeServiceError(c, h.log, err, errorMessages{})
		return
	}

	respondOK(c, http.StatusOK, "Login successful", dto.AuthResponse{
		User:  MapUserModelToUserResponse(result.User),
		Token: result.Token,
	})
}

// CurrentUser godoc
//
//	@Summary		Current user
//	@Description	Returns the authenticated user together with the profile.
//	@Tags			Auth
//	@Produce		json
//	@Success		200	{object}	dto.Response{data=map[string]dto.CurrentUserResponse}
//	@Failure		401	{object}	dto.Response
//	@Router			/auth/me [get]
//	@Security		BearerAuth
func (h *AuthHandler) CurrentUser(c *gin.Context) {
	actor, err := middleware.GetActorFromContext(c)
	if err != nil {
		respondError(c, http.StatusUnauthorized, "Access denied. No token provided.")
		return
	}

	user, profile, err := h.service.CurrentUser(c.Request.Context(), actor)
	if err != nil {
		writeServiceError(c, h.log, err, errorMessages{})
		return
	}

	resp := dto.CurrentUserResponse{
		ID:        user.ID,
		Email:     user.Email,
		Role:      string(user.Role),
		CreatedAt: user.CreatedAt,
	}
	if profile != nil {
		p := MapProfileModelToResponse(profile)
		resp.Profile = &p
	}
	respondOK(c, http.StatusOK, "User retrieved successfully", gin.H{"user": resp})
}

// Logout godoc
//
//	@Summary		Log out
//	@Description	Revokes the presented token until it expires.
//	@Tags			Auth
//	@Produce		json
//	@Success		200	{object}	dto.Response
//	@Failure		401	{object}	dto.Response
//	@Failure		501	{object}	dto.Response
//	@Router			/auth/logout [post]
//	@Security		BearerAuth
func (h *AuthHandler) Logout(c *gin.Context) {
	claims, err := middleware.GetClaimsFromContext(c)
	if err != nil {
		respondError(c, http.StatusUnauthorized, "Access denied. No token provided.")
		return
	}
	if err := h.service.Logout(c.Request.Context(), claims); err != nil {
		writeServiceError(c, h.log, err, errorMessages{})
		return
	}
	respondOK(c, http.StatusOK, "Logged out successfully", nil)
}
