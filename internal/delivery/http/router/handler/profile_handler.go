// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"

	"beacon/internal/delivery/http/middleware"
	"beacon/internal/delivery/http/response"
	"beacon/internal/domain/entity"
	domainerrors "beacon/internal/domain/errors"
	"beacon/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ProfileHandler holds dependencies for profile-related handlers.
type ProfileHandler struct {
	uc     usecase.ProfileUsecase
	logger *slog.Logger
}

// NewProfileHandler is the constructor for ProfileHandler, injected by Fx.
func NewProfileHandler(uc usecase.ProfileUsecase, logger *slog.Logger) *ProfileHandler {
	return &ProfileHandler{
		uc:     uc,
		logger: logger,
	}
}

// currentProfile resolves the authenticated caller to a stored profile.
// The token carries the identity provider subject, so the lookup goes
// through the auth-ID index rather than the profile primary key.
func currentProfile(c echo.Context, uc usecase.ProfileUsecase) (*entity.Profile, error) {
	authID, ok := c.Get(middleware.ContextKeyAuthID).(string)
	if !ok || authID == "" {
		return nil, errors.WithStack(domainerrors.ErrUnauthorized)
	}

	profile, err := uc.GetProfileByAuthID(c.Request().Context(), authID)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return profile, nil
}

// GetProfile handles the request to get the current caller's profile.
func (h *ProfileHandler) GetProfile(c echo.Context) error {
	profile, err := currentProfile(c, h.uc)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, profile, "Profile retrieved successfully")
}

// UpdateProfile handles the request to update the mutable profile fields.
func (h *ProfileHandler) UpdateProfile(c echo.Context) error {
	profile, err := currentProfile(c, h.uc)
	if err != nil {
		return err
	}

	var input *usecase.UpdateProfileInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid profile input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(domainerrors.ErrValidationFailed.WrapMessage(err.Error()))
	}

	updated, err := h.uc.UpdateProfile(c.Request().Context(), profile.ID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, updated, "Profile updated successfully")
}

// DeleteProfile handles the request to remove the caller's profile and all
// dependent records.
func (h *ProfileHandler) DeleteProfile(c echo.Context) error {
	profile, err := currentProfile(c, h.uc)
	if err != nil {
		return err
	}

	if err := h.uc.DeleteProfile(c.Request().Context(), profile.ID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"profile_id": profile.ID.String()}, "Profile deleted successfully")
}
