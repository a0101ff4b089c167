package handler

import (
	"log/slog"
	"net/http"

	"beacon/internal/delivery/http/response"
	domainerrors "beacon/internal/domain/errors"
	"beacon/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ProfessionalHandler holds dependencies for professional-info handlers.
type ProfessionalHandler struct {
	profileUC usecase.ProfileUsecase
	proUC     usecase.ProfessionalUsecase
	logger    *slog.Logger
}

// NewProfessionalHandler is the constructor for ProfessionalHandler, injected by Fx.
func NewProfessionalHandler(
	profileUC usecase.ProfileUsecase,
	proUC usecase.ProfessionalUsecase,
	logger *slog.Logger,
) *ProfessionalHandler {
	return &ProfessionalHandler{
		profileUC: profileUC,
		proUC:     proUC,
		logger:    logger,
	}
}

// GetProfessionalInfo handles the request to read the caller's professional
// record.
func (h *ProfessionalHandler) GetProfessionalInfo(c echo.Context) error {
	profile, err := currentProfile(c, h.profileUC)
	if err != nil {
		return err
	}

	info, err := h.proUC.GetProfessionalInfo(c.Request().Context(), profile.ID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, info, "Professional info retrieved successfully")
}

// UpdateProfessionalInfo handles the request to create or replace the
// caller's professional record, including the operating area.
func (h *ProfessionalHandler) UpdateProfessionalInfo(c echo.Context) error {
	profile, err := currentProfile(c, h.profileUC)
	if err != nil {
		return err
	}

	var input *usecase.UpdateProfessionalInfoInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid professional info input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(domainerrors.ErrValidationFailed.WrapMessage(err.Error()))
	}

	info, err := h.proUC.UpdateProfessionalInfo(c.Request().Context(), profile.ID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, info, "Professional info updated successfully")
}
