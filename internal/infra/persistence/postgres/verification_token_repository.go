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

// verificationTokenRepository implements the repository.VerificationTokenRepository interface using GORM.
type verificationTokenRepository struct {
	db *gorm.DB
}

// NewVerificationTokenRepository is the constructor for verificationTokenRepository.
func NewVerificationTokenRepository(db *gorm.DB) repository.VerificationTokenRepository {
	return &verificationTokenRepository{db: db}
}

// Replace deletes the previous token of the same purpose and inserts the new one atomically.
func (repo *verificationTokenRepository) Replace(ctx context.Context, token *entity.VerificationToken) error {
	tokenM := fromVerificationTokenDomain(token)

	err := repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Where("identity_id = ? AND purpose = ?", token.IdentityID, string(token.Purpose)).
			Delete(&model.VerificationTokenModel{}).Error
		if err != nil {
			return err
		}

		return tx.Create(tokenM).Error
	})
	if err != nil {
		switch {
		case isForeignKeyConstraintViolation(err):
			return repository.ErrIdentityNotFound
		case isUniqueConstraintViolation(err):
			return repository.ErrConflict
		default:
			return domainerrors.NewDatabaseExecuteError(err, "failed to store verification token")
		}
	}

	return nil
}

func (repo *verificationTokenRepository) FindByHash(ctx context.Context, purpose entity.TokenPurpose, tokenHash string) (*entity.VerificationToken, error) {
	var tokenM model.VerificationTokenModel
	err := repo.db.WithContext(ctx).
		Where("token_hash = ? AND purpose = ?", tokenHash, string(purpose)).
		First(&tokenM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrTokenNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find verification token")
	}

	return toVerificationTokenDomain(&tokenM), nil
}

// DeleteByHash relies on the row count of a single DELETE, so exactly one concurrent caller wins.
func (repo *verificationTokenRepository) DeleteByHash(ctx context.Context, purpose entity.TokenPurpose, tokenHash string) (bool, error) {
	res := repo.db.WithContext(ctx).
		Where("token_hash = ? AND purpose = ?", tokenHash, string(purpose)).
		Delete(&model.VerificationTokenModel{})
	if res.Error != nil {
		return false, domainerrors.NewDatabaseExecuteError(res.Error, "failed to delete verification token")
	}

	return res.RowsAffected == 1, nil
}

func (repo *verificationTokenRepository) DeleteByIdentity(ctx context.Context, identityID uuid.UUID) error {
	err := repo.db.WithContext(ctx).
		Where("identity_id = ?", identityID).
		Delete(&model.VerificationTokenModel{}).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete verification tokens")
	}

	return nil
}
