package postgres

import (
	"context"

	"beacon/internal/domain/entity"
	domainerrors "beacon/internal/domain/errors"
	"beacon/internal/domain/repository"
	"beacon/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// professionalRepository implements the repository.ProfessionalRepository interface.
type professionalRepository struct {
	db *gorm.DB
}

// NewProfessionalRepository is the constructor for professionalRepository.
func NewProfessionalRepository(db *gorm.DB) repository.ProfessionalRepository {
	return &professionalRepository{
		db: db,
	}
}

// FindByProfileID retrieves the professional-info record for a profile.
func (repo *professionalRepository) FindByProfileID(ctx context.Context, profileID uuid.UUID) (*entity.ProfessionalInfo, error) {
	var proM model.ProfessionalModel

	if err := repo.db.WithContext(ctx).
		Where("profile_id = ?", profileID).
		First(&proM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProfessionalInfoNotFound
		}

		return nil, errors.Wrap(err, "failed to find professional info by profile ID")
	}

	return toProfessionalDomain(&proM), nil
}

// Upsert creates or replaces the professional-info record for a profile.
func (repo *professionalRepository) Upsert(ctx context.Context, info *entity.ProfessionalInfo) error {
	proM := fromProfessionalDomain(info)

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "profile_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"profession", "bio", "area_lat", "area_lng", "area_radius", "updated_at"}),
		}).
		Create(proM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrProfileNotFound.WrapMessage("professional info references a missing profile")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to upsert professional info")
	}

	return nil
}

// FindOperatingArea retrieves just the declared operating area for a profile.
func (repo *professionalRepository) FindOperatingArea(ctx context.Context, profileID uuid.UUID) (*entity.OperatingArea, error) {
	var proM model.ProfessionalModel

	if err := repo.db.WithContext(ctx).
		Select("area_lat", "area_lng", "area_radius").
		Where("profile_id = ?", profileID).
		First(&proM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProfessionalInfoNotFound
		}

		return nil, errors.Wrap(err, "failed to find operating area by profile ID")
	}

	return toOperatingArea(&proM), nil
}

// DeleteByProfileID removes the professional-info record for a profile.
func (repo *professionalRepository) DeleteByProfileID(ctx context.Context, profileID uuid.UUID) error {
	if err := repo.db.WithContext(ctx).
		Where("profile_id = ?", profileID).
		Delete(&model.ProfessionalModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to delete professional info")
	}

	return nil
}

// --- Mapper Functions ---

// toOperatingArea builds the domain operating area from the nullable column
// group. All three columns must be present for the area to exist.
func toOperatingArea(data *model.ProfessionalModel) *entity.OperatingArea {
	if data.AreaLat == nil || data.AreaLng == nil || data.AreaRadius == nil {
		return nil
	}

	return &entity.OperatingArea{
		Center: entity.Location{
			Latitude:  *data.AreaLat,
			Longitude: *data.AreaLng,
		},
		RadiusKm: *data.AreaRadius,
	}
}

// toProfessionalDomain converts a GORM ProfessionalModel to a domain ProfessionalInfo entity.
func toProfessionalDomain(data *model.ProfessionalModel) *entity.ProfessionalInfo {
	if data == nil {
		return nil
	}

	return &entity.ProfessionalInfo{
		ProfileID:     data.ProfileID,
		Profession:    data.Profession,
		Bio:           data.Bio,
		OperatingArea: toOperatingArea(data),
		UpdatedAt:     data.UpdatedAt,
	}
}

// fromProfessionalDomain converts a domain ProfessionalInfo entity to a GORM ProfessionalModel.
func fromProfessionalDomain(data *entity.ProfessionalInfo) *model.ProfessionalModel {
	if data == nil {
		return nil
	}

	proM := &model.ProfessionalModel{
		ProfileID:  data.ProfileID,
		Profession: data.Profession,
		Bio:        data.Bio,
		UpdatedAt:  data.UpdatedAt,
	}

	if area := data.OperatingArea; area != nil {
		lat, lng, radius := area.Center.Latitude, area.Center.Longitude, area.RadiusKm
		proM.AreaLat = &lat
		proM.AreaLng = &lng
		proM.AreaRadius = &radius
	}

	return proM
}
