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

// credentialRepository implements the repository.CredentialRepository interface using GORM.
// Each write is a single UPDATE statement, so a credential is never observed half replaced.
type credentialRepository struct {
	db *gorm.DB
}

// NewCredentialRepository is the constructor for credentialRepository.
func NewCredentialRepository(db *gorm.DB) repository.CredentialRepository {
	return &credentialRepository{db: db}
}

func (repo *credentialRepository) FindLink(ctx context.Context, identityID uuid.UUID, kind entity.ProviderKind) (*entity.ProviderLink, error) {
	var linkM model.ProviderLinkModel
	err := repo.db.WithContext(ctx).
		Where("identity_id = ? AND kind = ?", identityID, string(kind)).
		First(&linkM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrLinkNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find provider link")
	}

	return toLinkDomain(&linkM), nil
}

// ReplaceCredential writes all credential columns at once. The expiry guard
// lives in the WHERE clause so that two racing writers cannot roll it back.
func (repo *credentialRepository) ReplaceCredential(ctx context.Context, identityID uuid.UUID, kind entity.ProviderKind, credential entity.AccessCredential) error {
	q := repo.db.WithContext(ctx).
		Model(&model.ProviderLinkModel{}).
		Where("identity_id = ? AND kind = ?", identityID, string(kind))
	if credential.ExpiresAt != nil {
		q = q.Where("expires_at IS NULL OR expires_at <= ?", *credential.ExpiresAt)
	}

	res := q.Updates(map[string]any{
		"access_token":       credential.AccessToken,
		"issued_at":          credential.IssuedAt,
		"expires_at":         credential.ExpiresAt,
		"refresh_token":      credential.RefreshToken,
		"refresh_expires_at": credential.RefreshExpiresAt,
		"reauth_required":    false,
	})
	if res.Error != nil {
		return domainerrors.NewDatabaseExecuteError(res.Error, "failed to replace credential")
	}
	if res.RowsAffected > 0 {
		return nil
	}

	exists, err := repo.linkExists(ctx, identityID, kind)
	if err != nil {
		return err
	}
	if !exists {
		return repository.ErrLinkNotFound
	}

	return repository.ErrStaleCredential
}

func (repo *credentialRepository) MarkReauthRequired(ctx context.Context, identityID uuid.UUID, kind entity.ProviderKind) error {
	res := repo.db.WithContext(ctx).
		Model(&model.ProviderLinkModel{}).
		Where("identity_id = ? AND kind = ?", identityID, string(kind)).
		Update("reauth_required", true)
	if res.Error != nil {
		return domainerrors.NewDatabaseExecuteError(res.Error, "failed to flag provider link")
	}
	if res.RowsAffected == 0 {
		return repository.ErrLinkNotFound
	}

	return nil
}

func (repo *credentialRepository) linkExists(ctx context.Context, identityID uuid.UUID, kind entity.ProviderKind) (bool, error) {
	var count int64
	err := repo.db.WithContext(ctx).
		Model(&model.ProviderLinkModel{}).
		Where("identity_id = ? AND kind = ?", identityID, string(kind)).
		Count(&count).Error
	if err != nil {
		return false, domainerrors.NewDatabaseExecuteError(err, "failed to check provider link")
	}

	return count > 0, nil
}
