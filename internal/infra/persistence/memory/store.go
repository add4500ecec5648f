// Package memory is an in-process persistence backend. It keeps the same
// uniqueness and atomicity guarantees as the PostgreSQL backend inside a
// single process and is used for local development and tests.
package memory

import (
	"context"
	"sync"

	"passage/internal/domain/entity"
	"passage/internal/domain/repository"

	"github.com/google/uuid"
)

type linkKey struct {
	kind      entity.ProviderKind
	subjectID string
}

type state struct {
	identities map[uuid.UUID]*entity.Identity
	subjects   map[linkKey]uuid.UUID
	emails     map[string]uuid.UUID
	tokens     map[string]*entity.VerificationToken // keyed by token hash
}

func newState() *state {
	return &state{
		identities: make(map[uuid.UUID]*entity.Identity),
		subjects:   make(map[linkKey]uuid.UUID),
		emails:     make(map[string]uuid.UUID),
		tokens:     make(map[string]*entity.VerificationToken),
	}
}

func (s *state) clone() *state {
	cloned := newState()
	for id, identity := range s.identities {
		cloned.identities[id] = identity.Clone()
	}
	for k, v := range s.subjects {
		cloned.subjects[k] = v
	}
	for k, v := range s.emails {
		cloned.emails[k] = v
	}
	for k, v := range s.tokens {
		token := *v
		cloned.tokens[k] = &token
	}

	return cloned
}

// accessor hides whether repository calls run under the store lock or inside
// a transaction that already holds it.
type accessor interface {
	do(fn func(st *state) error) error
}

// Store is the shared in-memory database.
type Store struct {
	mu sync.Mutex
	st *state
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{st: newState()}
}

func (s *Store) do(fn func(st *state) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return fn(s.st)
}

// txView runs repository calls against a private copy of the state.
type txView struct {
	st *state
}

func (v *txView) do(fn func(st *state) error) error {
	return fn(v.st)
}

type transactionManager struct {
	store *Store
}

// NewTransactionManager returns a TransactionManager whose transactions are
// serialized and applied all-or-nothing.
func NewTransactionManager(store *Store) repository.TransactionManager {
	return &transactionManager{store: store}
}

func (tm *transactionManager) Execute(ctx context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	tm.store.mu.Lock()
	defer tm.store.mu.Unlock()

	view := &txView{st: tm.store.st.clone()}
	if err := fn(&repositoryFactory{acc: view}); err != nil {
		return err
	}
	tm.store.st = view.st

	return nil
}

type repositoryFactory struct {
	acc accessor
}

func (f *repositoryFactory) IdentityRepo() repository.IdentityRepository {
	return &identityRepository{acc: f.acc}
}

func (f *repositoryFactory) CredentialRepo() repository.CredentialRepository {
	return &credentialRepository{acc: f.acc}
}

func (f *repositoryFactory) VerificationTokenRepo() repository.VerificationTokenRepository {
	return &verificationTokenRepository{acc: f.acc}
}
