package handler

import (
	"net/http"
	"testing"

	"beacon/internal/domain/entity"
	mockUsecase "beacon/internal/mocks/usecase"
	"beacon/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestProfessionalHandler_GetProfessionalInfo_Success(t *testing.T) {
	profileUC := mockUsecase.NewMockProfileUsecase(t)
	proUC := mockUsecase.NewMockProfessionalUsecase(t)
	h := &ProfessionalHandler{profileUC: profileUC, proUC: proUC, logger: testLogger()}

	profile := &entity.Profile{ID: uuid.New(), AuthID: "auth0|abc"}
	info := &entity.ProfessionalInfo{
		ProfileID:  profile.ID,
		Profession: "Plumber",
		OperatingArea: &entity.OperatingArea{
			Center:   entity.Location{Latitude: 37.98, Longitude: 23.72},
			RadiusKm: 25,
		},
	}

	profileUC.EXPECT().GetProfileByAuthID(mock.Anything, "auth0|abc").Return(profile, nil)
	proUC.EXPECT().GetProfessionalInfo(mock.Anything, profile.ID).Return(info, nil)

	c, rec := newTestContext(t, http.MethodGet, "/profile/professional", "", "auth0|abc")

	require.NoError(t, h.GetProfessionalInfo(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Plumber")
	assert.Contains(t, rec.Body.String(), "radius_km")
}

func TestProfessionalHandler_UpdateProfessionalInfo_Success(t *testing.T) {
	profileUC := mockUsecase.NewMockProfileUsecase(t)
	proUC := mockUsecase.NewMockProfessionalUsecase(t)
	h := &ProfessionalHandler{profileUC: profileUC, proUC: proUC, logger: testLogger()}

	profile := &entity.Profile{ID: uuid.New(), AuthID: "auth0|abc"}
	info := &entity.ProfessionalInfo{ProfileID: profile.ID, Profession: "Electrician"}

	profileUC.EXPECT().GetProfileByAuthID(mock.Anything, "auth0|abc").Return(profile, nil)
	proUC.EXPECT().
		UpdateProfessionalInfo(mock.Anything, profile.ID, mock.MatchedBy(func(in *usecase.UpdateProfessionalInfoInput) bool {
			return in.Profession == "Electrician" &&
				in.OperatingArea != nil &&
				in.OperatingArea.RadiusKm == 30
		})).
		Return(info, nil)

	body := `{"profession":"Electrician","bio":"Licensed","operating_area":{"latitude":37.98,"longitude":23.72,"radius_km":30}}`
	c, rec := newTestContext(t, http.MethodPut, "/profile/professional", body, "auth0|abc")

	require.NoError(t, h.UpdateProfessionalInfo(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestProfessionalHandler_UpdateProfessionalInfo_RejectsBadLatitude(t *testing.T) {
	profileUC := mockUsecase.NewMockProfileUsecase(t)
	proUC := mockUsecase.NewMockProfessionalUsecase(t)
	h := &ProfessionalHandler{profileUC: profileUC, proUC: proUC, logger: testLogger()}

	profile := &entity.Profile{ID: uuid.New(), AuthID: "auth0|abc"}
	profileUC.EXPECT().GetProfileByAuthID(mock.Anything, "auth0|abc").Return(profile, nil)

	body := `{"profession":"Electrician","operating_area":{"latitude":95,"longitude":23.72,"radius_km":30}}`
	c, _ := newTestContext(t, http.MethodPut, "/profile/professional", body, "auth0|abc")

	err := h.UpdateProfessionalInfo(c)

	require.Error(t, err)
	proUC.AssertNotCalled(t, "UpdateProfessionalInfo", mock.Anything, mock.Anything, mock.Anything)
}
