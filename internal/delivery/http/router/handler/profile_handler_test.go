package handler

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"beacon/internal/delivery/http/middleware"
	"beacon/internal/delivery/http/validator"
	"beacon/internal/domain/entity"
	mockUsecase "beacon/internal/mocks/usecase"
	"beacon/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

// newTestContext builds an echo context the way the auth middleware would
// leave it, with the identity provider subject already extracted.
func newTestContext(t *testing.T, method, target, body, authID string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	e.Validator = validator.New()

	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}

	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if authID != "" {
		c.Set(middleware.ContextKeyAuthID, authID)
	}

	return c, rec
}

func TestProfileHandler_GetProfile_Success(t *testing.T) {
	uc := mockUsecase.NewMockProfileUsecase(t)
	h := &ProfileHandler{uc: uc, logger: testLogger()}

	profile := &entity.Profile{
		ID:          uuid.New(),
		AuthID:      "auth0|abc",
		Email:       "pro@example.com",
		DisplayName: "Pat",
	}
	uc.EXPECT().GetProfileByAuthID(mock.Anything, "auth0|abc").Return(profile, nil)

	c, rec := newTestContext(t, http.MethodGet, "/profile", "", "auth0|abc")

	require.NoError(t, h.GetProfile(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "pro@example.com")
	assert.Contains(t, rec.Body.String(), profile.ID.String())
}

func TestProfileHandler_GetProfile_MissingAuthID(t *testing.T) {
	uc := mockUsecase.NewMockProfileUsecase(t)
	h := &ProfileHandler{uc: uc, logger: testLogger()}

	c, _ := newTestContext(t, http.MethodGet, "/profile", "", "")

	err := h.GetProfile(c)

	require.Error(t, err)
	uc.AssertNotCalled(t, "GetProfileByAuthID", mock.Anything, mock.Anything)
}

func TestProfileHandler_UpdateProfile_Success(t *testing.T) {
	uc := mockUsecase.NewMockProfileUsecase(t)
	h := &ProfileHandler{uc: uc, logger: testLogger()}

	profile := &entity.Profile{ID: uuid.New(), AuthID: "auth0|abc"}
	updated := &entity.Profile{ID: profile.ID, AuthID: "auth0|abc", DisplayName: "Pat the Plumber"}

	uc.EXPECT().GetProfileByAuthID(mock.Anything, "auth0|abc").Return(profile, nil)
	uc.EXPECT().
		UpdateProfile(mock.Anything, profile.ID, mock.MatchedBy(func(in *usecase.UpdateProfileInput) bool {
			return in.DisplayName == "Pat the Plumber"
		})).
		Return(updated, nil)

	c, rec := newTestContext(t, http.MethodPut, "/profile", `{"display_name":"Pat the Plumber"}`, "auth0|abc")

	require.NoError(t, h.UpdateProfile(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Pat the Plumber")
}

func TestProfileHandler_UpdateProfile_ValidationFailure(t *testing.T) {
	uc := mockUsecase.NewMockProfileUsecase(t)
	h := &ProfileHandler{uc: uc, logger: testLogger()}

	profile := &entity.Profile{ID: uuid.New(), AuthID: "auth0|abc"}
	uc.EXPECT().GetProfileByAuthID(mock.Anything, "auth0|abc").Return(profile, nil)

	c, _ := newTestContext(t, http.MethodPut, "/profile", `{"display_name":""}`, "auth0|abc")

	err := h.UpdateProfile(c)

	require.Error(t, err)
	uc.AssertNotCalled(t, "UpdateProfile", mock.Anything, mock.Anything, mock.Anything)
}

func TestProfileHandler_DeleteProfile_Success(t *testing.T) {
	uc := mockUsecase.NewMockProfileUsecase(t)
	h := &ProfileHandler{uc: uc, logger: testLogger()}

	profile := &entity.Profile{ID: uuid.New(), AuthID: "auth0|abc"}
	uc.EXPECT().GetProfileByAuthID(mock.Anything, "auth0|abc").Return(profile, nil)
	uc.EXPECT().DeleteProfile(mock.Anything, profile.ID).Return(nil)

	c, rec := newTestContext(t, http.MethodDelete, "/profile", "", "auth0|abc")

	require.NoError(t, h.DeleteProfile(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), profile.ID.String())
}
