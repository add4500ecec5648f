package memory

import (
	"context"
	"time"

	"passage/internal/domain/entity"
	"passage/internal/domain/repository"

	"github.com/google/uuid"
)

type identityRepository struct {
	acc accessor
}

// NewIdentityRepository returns an IdentityRepository backed by store.
func NewIdentityRepository(store *Store) repository.IdentityRepository {
	return &identityRepository{acc: store}
}

func (r *identityRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.Identity, error) {
	var found *entity.Identity
	err := r.acc.do(func(st *state) error {
		identity, ok := st.identities[id]
		if !ok {
			return repository.ErrIdentityNotFound
		}
		found = identity.Clone()

		return nil
	})

	return found, err
}

func (r *identityRepository) FindByEmail(_ context.Context, email string) (*entity.Identity, error) {
	var found *entity.Identity
	err := r.acc.do(func(st *state) error {
		id, ok := st.emails[email]
		if !ok || email == "" {
			return repository.ErrIdentityNotFound
		}
		found = st.identities[id].Clone()

		return nil
	})

	return found, err
}

func (r *identityRepository) FindByProviderSubject(_ context.Context, kind entity.ProviderKind, subjectID string) (*entity.Identity, error) {
	var found *entity.Identity
	err := r.acc.do(func(st *state) error {
		id, ok := st.subjects[linkKey{kind: kind, subjectID: subjectID}]
		if !ok {
			return repository.ErrIdentityNotFound
		}
		found = st.identities[id].Clone()

		return nil
	})

	return found, err
}

func (r *identityRepository) CreateUnique(_ context.Context, identity *entity.Identity) error {
	return r.acc.do(func(st *state) error {
		if _, ok := st.identities[identity.ID]; ok {
			return repository.ErrConflict
		}
		if err := checkUnique(st, identity); err != nil {
			return err
		}

		stored := identity.Clone()
		st.identities[stored.ID] = stored
		index(st, stored)

		return nil
	})
}

func (r *identityRepository) Save(_ context.Context, identity *entity.Identity) error {
	return r.acc.do(func(st *state) error {
		existing, ok := st.identities[identity.ID]
		if !ok {
			return repository.ErrIdentityNotFound
		}
		if err := checkUnique(st, identity); err != nil {
			return err
		}

		stored := identity.Clone()
		for kind, link := range stored.Links {
			prev := existing.Link(kind)
			if prev != nil && prev.SubjectID == link.SubjectID {
				link.Credential = prev.Credential.Clone()
				link.ReauthRequired = prev.ReauthRequired
			}
		}
		stored.UpdatedAt = time.Now()

		unindex(st, existing)
		st.identities[stored.ID] = stored
		index(st, stored)

		return nil
	})
}

func (r *identityRepository) Delete(_ context.Context, id uuid.UUID) error {
	return r.acc.do(func(st *state) error {
		existing, ok := st.identities[id]
		if !ok {
			return repository.ErrIdentityNotFound
		}

		unindex(st, existing)
		delete(st.identities, id)
		for hash, token := range st.tokens {
			if token.IdentityID == id {
				delete(st.tokens, hash)
			}
		}

		return nil
	})
}

// checkUnique fails if the email or any link subject of identity belongs to another identity.
func checkUnique(st *state, identity *entity.Identity) error {
	if identity.Email != "" {
		if owner, ok := st.emails[identity.Email]; ok && owner != identity.ID {
			return repository.ErrConflict
		}
	}
	for kind, link := range identity.Links {
		if owner, ok := st.subjects[linkKey{kind: kind, subjectID: link.SubjectID}]; ok && owner != identity.ID {
			return repository.ErrConflict
		}
	}

	return nil
}

func index(st *state, identity *entity.Identity) {
	if identity.Email != "" {
		st.emails[identity.Email] = identity.ID
	}
	for kind, link := range identity.Links {
		st.subjects[linkKey{kind: kind, subjectID: link.SubjectID}] = identity.ID
	}
}

func unindex(st *state, identity *entity.Identity) {
	if identity.Email != "" {
		delete(st.emails, identity.Email)
	}
	for kind, link := range identity.Links {
		delete(st.subjects, linkKey{kind: kind, subjectID: link.SubjectID})
	}
}
