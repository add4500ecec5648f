package memory

import (
	"context"

	"passage/internal/domain/entity"
	"passage/internal/domain/repository"

	"github.com/google/uuid"
)

type credentialRepository struct {
	acc accessor
}

// NewCredentialRepository returns a CredentialRepository backed by store.
func NewCredentialRepository(store *Store) repository.CredentialRepository {
	return &credentialRepository{acc: store}
}

func (r *credentialRepository) FindLink(_ context.Context, identityID uuid.UUID, kind entity.ProviderKind) (*entity.ProviderLink, error) {
	var found *entity.ProviderLink
	err := r.acc.do(func(st *state) error {
		link, err := lookupLink(st, identityID, kind)
		if err != nil {
			return err
		}
		found = link.Clone()

		return nil
	})

	return found, err
}

func (r *credentialRepository) ReplaceCredential(_ context.Context, identityID uuid.UUID, kind entity.ProviderKind, credential entity.AccessCredential) error {
	return r.acc.do(func(st *state) error {
		link, err := lookupLink(st, identityID, kind)
		if err != nil {
			return err
		}
		if !credential.Supersedes(link.Credential) {
			return repository.ErrStaleCredential
		}

		link.Credential = credential.Clone()
		link.ReauthRequired = false

		return nil
	})
}

func (r *credentialRepository) MarkReauthRequired(_ context.Context, identityID uuid.UUID, kind entity.ProviderKind) error {
	return r.acc.do(func(st *state) error {
		link, err := lookupLink(st, identityID, kind)
		if err != nil {
			return err
		}
		link.ReauthRequired = true

		return nil
	})
}

func lookupLink(st *state, identityID uuid.UUID, kind entity.ProviderKind) (*entity.ProviderLink, error) {
	identity, ok := st.identities[identityID]
	if !ok {
		return nil, repository.ErrLinkNotFound
	}
	link := identity.Link(kind)
	if link == nil {
		return nil, repository.ErrLinkNotFound
	}

	return link, nil
}
