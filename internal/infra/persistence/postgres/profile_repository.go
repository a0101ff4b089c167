// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
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
)

// profileRepository implements the repository.ProfileRepository and
// repository.SubscriberDirectory interfaces.
type profileRepository struct {
	db *gorm.DB
}

// NewProfileRepository is the constructor for profileRepository.
func NewProfileRepository(db *gorm.DB) repository.ProfileRepository {
	return &profileRepository{
		db: db,
	}
}

// NewSubscriberDirectory exposes the same store through the narrow directory
// interface the dispatch pipeline depends on.
func NewSubscriberDirectory(db *gorm.DB) repository.SubscriberDirectory {
	return &profileRepository{
		db: db,
	}
}

// FindByID retrieves a profile by its unique ID.
func (repo *profileRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Profile, error) {
	var profileM model.ProfileModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&profileM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProfileNotFound
		}

		return nil, errors.Wrap(err, "failed to find profile by ID")
	}

	return toProfileDomain(&profileM), nil
}

// FindByAuthID retrieves a profile by the identity provider's subject.
func (repo *profileRepository) FindByAuthID(ctx context.Context, authID string) (*entity.Profile, error) {
	var profileM model.ProfileModel

	if err := repo.db.WithContext(ctx).
		Where("auth_id = ?", authID).
		First(&profileM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProfileNotFound
		}

		return nil, errors.Wrap(err, "failed to find profile by auth ID")
	}

	return toProfileDomain(&profileM), nil
}

// Create persists a new profile.
func (repo *profileRepository) Create(ctx context.Context, profile *entity.Profile) error {
	profileM := fromProfileDomain(profile)

	if err := repo.db.WithContext(ctx).Create(profileM).Error; err != nil {
		// Convert PostgreSQL errors to domain errors
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrProfileAlreadyExists.WrapMessage("auth id already registered")
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrProfileCreationFailed.WrapMessage("invalid reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create profile")
	}

	profile.CreatedAt = profileM.CreatedAt
	profile.UpdatedAt = profileM.UpdatedAt

	return nil
}

// Update modifies an existing profile.
func (repo *profileRepository) Update(ctx context.Context, profile *entity.Profile) error {
	profileM := fromProfileDomain(profile)

	result := repo.db.WithContext(ctx).
		Model(&model.ProfileModel{}).
		Where("id = ?", profileM.ID).
		Updates(map[string]any{
			"email":          profileM.Email,
			"email_verified": profileM.EmailVerified,
			"display_name":   profileM.DisplayName,
			"updated_at":     profileM.UpdatedAt,
		})

	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return domainerrors.ErrProfileUpdateFailed.WrapMessage("conflicting profile data")
		}

		return errors.Wrap(result.Error, "failed to update profile")
	}

	if result.RowsAffected == 0 {
		return repository.ErrProfileNotFound
	}

	return nil
}

// Delete removes a profile by its ID.
func (repo *profileRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.ProfileModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete profile")
	}

	if result.RowsAffected == 0 {
		return repository.ErrProfileNotFound
	}

	return nil
}

// ListVerifiedSubscribers returns the dispatch candidate list: every profile
// whose email address the identity provider has verified.
func (repo *profileRepository) ListVerifiedSubscribers(ctx context.Context) ([]*entity.Subscriber, error) {
	var profileModels []*model.ProfileModel

	if err := repo.db.WithContext(ctx).
		Where("email_verified = ?", true).
		Order("created_at ASC").
		Find(&profileModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list verified subscribers")
	}

	subscribers := make([]*entity.Subscriber, 0, len(profileModels))
	for _, profileM := range profileModels {
		subscribers = append(subscribers, &entity.Subscriber{
			ID:    profileM.ID,
			Email: profileM.Email,
		})
	}

	return subscribers, nil
}

// --- Mapper Functions ---

// toProfileDomain converts a GORM ProfileModel to a domain Profile entity.
func toProfileDomain(data *model.ProfileModel) *entity.Profile {
	if data == nil {
		return nil
	}

	return &entity.Profile{
		ID:            data.ID,
		AuthID:        data.AuthID,
		Email:         data.Email,
		EmailVerified: data.EmailVerified,
		DisplayName:   data.DisplayName,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}

// fromProfileDomain converts a domain Profile entity to a GORM ProfileModel.
func fromProfileDomain(data *entity.Profile) *model.ProfileModel {
	if data == nil {
		return nil
	}

	return &model.ProfileModel{
		ID:            data.ID,
		AuthID:        data.AuthID,
		Email:         data.Email,
		EmailVerified: data.EmailVerified,
		DisplayName:   data.DisplayName,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}
