package memory

import (
	"context"

	"passage/internal/domain/entity"
	"passage/internal/domain/repository"

	"github.com/google/uuid"
)

type verificationTokenRepository struct {
	acc accessor
}

// NewVerificationTokenRepository returns a VerificationTokenRepository backed by store.
func NewVerificationTokenRepository(store *Store) repository.VerificationTokenRepository {
	return &verificationTokenRepository{acc: store}
}

func (r *verificationTokenRepository) Replace(_ context.Context, token *entity.VerificationToken) error {
	return r.acc.do(func(st *state) error {
		if _, ok := st.identities[token.IdentityID]; !ok {
			return repository.ErrIdentityNotFound
		}
		if _, ok := st.tokens[token.TokenHash]; ok {
			return repository.ErrConflict
		}

		for hash, existing := range st.tokens {
			if existing.IdentityID == token.IdentityID && existing.Purpose == token.Purpose {
				delete(st.tokens, hash)
			}
		}
		stored := *token
		st.tokens[stored.TokenHash] = &stored

		return nil
	})
}

func (r *verificationTokenRepository) FindByHash(_ context.Context, purpose entity.TokenPurpose, tokenHash string) (*entity.VerificationToken, error) {
	var found *entity.VerificationToken
	err := r.acc.do(func(st *state) error {
		token, ok := st.tokens[tokenHash]
		if !ok || token.Purpose != purpose {
			return repository.ErrTokenNotFound
		}
		cloned := *token
		found = &cloned

		return nil
	})

	return found, err
}

func (r *verificationTokenRepository) DeleteByHash(_ context.Context, purpose entity.TokenPurpose, tokenHash string) (bool, error) {
	deleted := false
	err := r.acc.do(func(st *state) error {
		token, ok := st.tokens[tokenHash]
		if !ok || token.Purpose != purpose {
			return nil
		}
		delete(st.tokens, tokenHash)
		deleted = true

		return nil
	})

	return deleted, err
}

func (r *verificationTokenRepository) DeleteByIdentity(_ context.Context, identityID uuid.UUID) error {
	return r.acc.do(func(st *state) error {
		for hash, token := range st.tokens {
			if token.IdentityID == identityID {
				delete(st.tokens, hash)
			}
		}

		return nil
	})
}
