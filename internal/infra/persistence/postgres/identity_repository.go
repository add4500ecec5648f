package postgres

import (
	"context"

	"passage/internal/domain/entity"
	domainerrors "passage/internal/domain/errors"
	"passage/internal/domain/repository"
	"passage/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// identityRepository implements the repository.IdentityRepository interface using GORM.
type identityRepository struct {
	db *gorm.DB
}

// NewIdentityRepository is the constructor for identityRepository.
// It returns the repository as a repository.IdentityRepository interface, adhering to dependency inversion.
func NewIdentityRepository(db *gorm.DB) repository.IdentityRepository {
	return &identityRepository{db: db}
}

// FindByID retrieves a single identity by its unique ID, preloading its provider links.
func (repo *identityRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Identity, error) {
	return repo.findOne(ctx, "id = ?", id)
}

// FindByEmail retrieves a single identity by its normalized email address.
func (repo *identityRepository) FindByEmail(ctx context.Context, email string) (*entity.Identity, error) {
	if email == "" {
		return nil, repository.ErrIdentityNotFound
	}

	return repo.findOne(ctx, "email = ?", email)
}

// FindByProviderSubject retrieves the identity owning the (kind, subjectID) link.
func (repo *identityRepository) FindByProviderSubject(ctx context.Context, kind entity.ProviderKind, subjectID string) (*entity.Identity, error) {
	var linkM model.ProviderLinkModel
	err := repo.db.WithContext(ctx).
		Select("identity_id").
		Where("kind = ? AND subject_id = ?", string(kind), subjectID).
		First(&linkM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrIdentityNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find identity by provider subject")
	}

	return repo.findOne(ctx, "id = ?", linkM.IdentityID)
}

// CreateUnique inserts the identity and its links inside one (nested) transaction.
// A unique violation on email or (kind, subject_id) rolls everything back and is reported as ErrConflict.
func (repo *identityRepository) CreateUnique(ctx context.Context, identity *entity.Identity) error {
	identityM := fromIdentityDomain(identity)

	err := repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(identityM).Error
	})
	if err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrConflict
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create identity")
	}

	identity.CreatedAt = identityM.CreatedAt
	identity.UpdatedAt = identityM.UpdatedAt

	return nil
}

// Save updates scalar and profile columns and reconciles the link set.
// Credential columns of links that survive are never written here.
func (repo *identityRepository) Save(ctx context.Context, identity *entity.Identity) error {
	identityM := fromIdentityDomain(identity)

	err := repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&model.IdentityModel{}).
			Where("id = ?", identity.ID).
			Updates(map[string]any{
				"email":          identityM.Email,
				"password_hash":  identityM.PasswordHash,
				"email_verified": identityM.EmailVerified,
				"name":           identityM.Name,
				"profile_email":  identityM.ProfileEmail,
				"picture":        identityM.Picture,
				"gender":         identityM.Gender,
				"location":       identityM.Location,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return repository.ErrIdentityNotFound
		}

		var existing []model.ProviderLinkModel
		if err := tx.Where("identity_id = ?", identity.ID).Find(&existing).Error; err != nil {
			return err
		}

		kept := make(map[string]bool, len(existing))
		for i := range existing {
			prev := &existing[i]
			link := identity.Link(entity.ProviderKind(prev.Kind))
			if link != nil && link.SubjectID == prev.SubjectID {
				kept[prev.Kind] = true
				err := tx.Model(prev).Updates(map[string]any{
					"name":     link.Profile.Name,
					"email":    link.Profile.Email,
					"picture":  link.Profile.Picture,
					"gender":   link.Profile.Gender,
					"location": link.Profile.Location,
				}).Error
				if err != nil {
					return err
				}

				continue
			}
			if err := tx.Delete(prev).Error; err != nil {
				return err
			}
		}

		for kind, link := range identity.Links {
			if kept[string(kind)] {
				continue
			}
			if err := tx.Create(fromLinkDomain(identity.ID, link)).Error; err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrIdentityNotFound):
			return err
		case isUniqueConstraintViolation(err):
			return repository.ErrConflict
		default:
			return domainerrors.NewDatabaseExecuteError(err, "failed to save identity")
		}
	}

	return nil
}

// Delete removes the identity and everything it owns.
func (repo *identityRepository) Delete(ctx context.Context, id uuid.UUID) error {
	err := repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("identity_id = ?", id).Delete(&model.VerificationTokenModel{}).Error; err != nil {
			return err
		}
		if err := tx.Where("identity_id = ?", id).Delete(&model.ProviderLinkModel{}).Error; err != nil {
			return err
		}

		res := tx.Where("id = ?", id).Delete(&model.IdentityModel{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return repository.ErrIdentityNotFound
		}

		return nil
	})
	if err != nil {
		if errors.Is(err, repository.ErrIdentityNotFound) {
			return err
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to delete identity")
	}

	return nil
}

func (repo *identityRepository) findOne(ctx context.Context, query string, args ...any) (*entity.Identity, error) {
	var identityM model.IdentityModel
	err := repo.db.WithContext(ctx).
		Preload("Links").
		Where(query, args...).
		First(&identityM).Error
	if err != nil {
		// If the error is 'record not found', return a domain-specific error.
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrIdentityNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find identity")
	}

	// Map the persistence model back to a pure domain entity before returning.
	return toIdentityDomain(&identityM), nil
}
