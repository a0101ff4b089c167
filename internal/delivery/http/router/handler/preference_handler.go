package handler

import (
	"log/slog"
	"net/http"

	"beacon/internal/delivery/http/response"
	"beacon/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// PreferenceHandler holds dependencies for notification preference handlers.
type PreferenceHandler struct {
	profileUC usecase.ProfileUsecase
	prefUC    usecase.PreferenceUsecase
	logger    *slog.Logger
}

// NewPreferenceHandler is the constructor for PreferenceHandler, injected by Fx.
func NewPreferenceHandler(
	profileUC usecase.ProfileUsecase,
	prefUC usecase.PreferenceUsecase,
	logger *slog.Logger,
) *PreferenceHandler {
	return &PreferenceHandler{
		profileUC: profileUC,
		prefUC:    prefUC,
		logger:    logger,
	}
}

// GetPreferences handles the request to read the caller's preference document.
func (h *PreferenceHandler) GetPreferences(c echo.Context) error {
	profile, err := currentProfile(c, h.profileUC)
	if err != nil {
		return err
	}

	prefs, err := h.prefUC.GetPreferences(c.Request().Context(), profile.ID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, prefs, "Preferences retrieved successfully")
}

// UpdatePreferences handles the request to replace the caller's preference
// document.
func (h *PreferenceHandler) UpdatePreferences(c echo.Context) error {
	profile, err := currentProfile(c, h.profileUC)
	if err != nil {
		return err
	}

	var input *usecase.UpdatePreferencesInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid preference input")
	}

	prefs, err := h.prefUC.UpdatePreferences(c.Request().Context(), profile.ID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, prefs, "Preferences updated successfully")
}
