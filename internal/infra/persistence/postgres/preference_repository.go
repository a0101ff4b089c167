package postgres

import (
	"context"
	"encoding/json"

	"beacon/internal/domain/entity"
	domainerrors "beacon/internal/domain/errors"
	"beacon/internal/domain/repository"
	"beacon/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// preferenceRepository implements the repository.PreferenceRepository interface.
type preferenceRepository struct {
	db *gorm.DB
}

// NewPreferenceRepository is the constructor for preferenceRepository.
func NewPreferenceRepository(db *gorm.DB) repository.PreferenceRepository {
	return &preferenceRepository{
		db: db,
	}
}

// FindByProfileID retrieves the preference document for a profile.
func (repo *preferenceRepository) FindByProfileID(ctx context.Context, profileID uuid.UUID) (*entity.Preferences, error) {
	var prefM model.PreferenceModel

	if err := repo.db.WithContext(ctx).
		Where("profile_id = ?", profileID).
		First(&prefM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPreferencesNotFound
		}

		return nil, errors.Wrap(err, "failed to find preferences by profile ID")
	}

	return toPreferencesDomain(&prefM)
}

// Upsert creates or replaces the preference document for a profile.
func (repo *preferenceRepository) Upsert(ctx context.Context, prefs *entity.Preferences) error {
	prefM, err := fromPreferencesDomain(prefs)
	if err != nil {
		return errors.Wrap(err, "failed to encode preferences")
	}

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "profile_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"notifications", "updated_at"}),
		}).
		Create(prefM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrProfileNotFound.WrapMessage("preferences reference a missing profile")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to upsert preferences")
	}

	return nil
}

// DeleteByProfileID removes the preference document for a profile.
func (repo *preferenceRepository) DeleteByProfileID(ctx context.Context, profileID uuid.UUID) error {
	if err := repo.db.WithContext(ctx).
		Where("profile_id = ?", profileID).
		Delete(&model.PreferenceModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to delete preferences")
	}

	return nil
}

// --- Mapper Functions ---

// toPreferencesDomain converts a GORM PreferenceModel to a domain Preferences entity.
func toPreferencesDomain(data *model.PreferenceModel) (*entity.Preferences, error) {
	prefs := &entity.Preferences{
		ProfileID: data.ProfileID,
		UpdatedAt: data.UpdatedAt,
	}

	if len(data.Notifications) > 0 {
		var notifications entity.NotificationPreferences
		if err := json.Unmarshal(data.Notifications, &notifications); err != nil {
			return nil, errors.Wrap(err, "failed to decode notification preferences")
		}
		prefs.Notifications = &notifications
	}

	return prefs, nil
}

// fromPreferencesDomain converts a domain Preferences entity to a GORM PreferenceModel.
func fromPreferencesDomain(data *entity.Preferences) (*model.PreferenceModel, error) {
	prefM := &model.PreferenceModel{
		ProfileID: data.ProfileID,
		UpdatedAt: data.UpdatedAt,
	}

	if data.Notifications != nil {
		raw, err := json.Marshal(data.Notifications)
		if err != nil {
			return nil, err
		}
		prefM.Notifications = raw
	}

	return prefM, nil
}
