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

// ProfileHandler serves the caller's own profile.
type ProfileHandler struct {
	service   services.ProfileService
	validator *validator.Validate
	log       *zap.Logger
}

func NewProfileHandler(service services.ProfileService, validate *validator.Validate, log *zap.Logger) *ProfileHandler {
	return &ProfileHandler{service: service, validator: validate, log: log}
}

// GetProfile godoc
//
//	@Summary		Get my profile
//	@Tags			Profile
//	@Produce		json
//	@Success		200	{object}	dto.Response{data=dto.ProfileEnvelope}
//	@Failure		404	{object}	dto.Response	"Profile not found"
//	@Router			/profile [get]
//	@Security		BearerAuth
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	actor, err := middleware.GetActorFromContext(c)
	if err != nil {
		respondError(c, http.StatusUnauthorized, "Access denied. No token provided.")
		return
	}

	profile, err := h.service.GetProfile(c.Request.Context(), actor)
	if err != nil {
		writeServiceError(c, h.log, err, errorMessages{NotFound: "Profile not found"})
		return
	}
	respondOK(c, http.StatusOK, "Profile retrieved successfully",
		dto.ProfileEnvelope{Profile: MapProfileModelToResponse(profile)})
}

// UpdateProfile godoc
//
//	@Summary		Create or replace my profile
//	@Description	Only the fields of the caller's role are accepted.
//	@Tags			Profile
//	@Accept			json
//	@Produce		json
//	@Param			profile	body		dto.UpdateProfileRequest	true	"Profile"
//	@Success		200		{object}	dto.Response{data=dto.ProfileEnvelope}
//	@Success		201		{object}	dto.Response{data=dto.ProfileEnvelope}
//	@Failure		400		{object}	dto.Response
//	@Router			/profile [put]
//	@Security		BearerAuth
func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	actor, err := middleware.GetActorFromContext(c)
	if err != nil {
		respondError(c, http.StatusUnauthorized, "Access denied. No token provided.")
		return
	}

	var req dto.UpdateProfileRequest
	if !bindJSON(c, h.validator, &req) {
		return
	}

	profile, created, err := h.service.UpdateProfile(c.Request.Context(), actor, &req)
	if err != nil {
		writeServiceError(c, h.log, err, errorMessages{})
		return
	}

	status, message := http.StatusOK, "Profile updated successfully"
	if created {
		status, message = http.StatusCreated, "Profile created successfully"
	}
	respondOK(c, status, message, dto.ProfileEnvelope{Profile: MapProfileModelToResponse(profile)})
}
