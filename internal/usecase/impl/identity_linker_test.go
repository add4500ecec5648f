package impl

import (
	"context"
	"sync"
	"testing"
	"time"

	"passage/internal/domain/entity"
	domainerrors "passage/internal/domain/errors"
	"passage/internal/domain/repository"
	mockRepo "passage/internal/mocks/repository"
	"passage/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestIdentityLinker(t *testing.T) (usecase.IdentityLinker, memoryBackend) {
	t.Helper()

	backend := newMemoryBackend()
	linker := NewIdentityLinker(IdentityLinkerParams{
		TxManager: backend.txManager,
		Logger:    newDiscardLogger(),
	})

	return linker, backend
}

func googleCallback(requesting *uuid.UUID, subjectID, email string, credential entity.AccessCredential) *usecase.CallbackInput {
	return &usecase.CallbackInput{
		RequestingIdentityID: requesting,
		Provider:             entity.ProviderGoogle,
		SubjectID:            subjectID,
		Profile:              entity.ProfileFields{Name: "Google User", Email: email, Picture: "https://example.com/p.png"},
		Credential:           credential,
	}
}

func freshCredential(accessToken string) entity.AccessCredential {
	return credentialExpiringAt(accessToken, time.Now().Add(time.Hour), "rt-"+accessToken)
}

func TestIdentityLinker_LinkWhileSignedIn(t *testing.T) {
	linker, backend := createTestIdentityLinker(t)
	ctx := context.Background()

	a := backend.seedIdentity(t, "a@x.com", "hash-a")

	output, err := linker.HandleCallback(ctx, googleCallback(&a.ID, "g123", "a.google@x.com", freshCredential("at-1")))
	require.NoError(t, err)

	assert.Equal(t, usecase.OutcomeLinked, output.Outcome)
	assert.Equal(t, a.ID, output.Identity.ID)

	stored := backend.mustFind(t, a)
	require.NotNil(t, stored.Link(entity.ProviderGoogle))
	assert.Equal(t, "g123", stored.Link(entity.ProviderGoogle).SubjectID)
	assert.Equal(t, "at-1", stored.Link(entity.ProviderGoogle).Credential.AccessToken)
	assert.Equal(t, "Google User", stored.Profile.Name)
	// The primary email is not replaced by the provider's.
	assert.Equal(t, "a@x.com", stored.Email)
}

func TestIdentityLinker_ScenarioA_LinkedElsewhere(t *testing.T) {
	linker, backend := createTestIdentityLinker(t)
	ctx := context.Background()

	a := backend.seedIdentity(t, "a@x.com", "hash-a")
	b := backend.seedIdentity(t, "b@x.com", "hash-b")

	_, err := linker.HandleCallback(ctx, googleCallback(&a.ID, "g123", "", freshCredential("at-1")))
	require.NoError(t, err)

	before := backend.mustFind(t, b)
	_, err = linker.HandleCallback(ctx, googleCallback(&b.ID, "g123", "", freshCredential("at-2")))

	assert.True(t, errors.Is(err, domainerrors.ErrProviderAlreadyLinkedElsewhere))
	assert.Equal(t, before, backend.mustFind(t, b))

	owner, err := backend.identityRepo.FindByProviderSubject(ctx, entity.ProviderGoogle, "g123")
	require.NoError(t, err)
	assert.Equal(t, a.ID, owner.ID)
	assert.Equal(t, "at-1", owner.Link(entity.ProviderGoogle).Credential.AccessToken)
}

func TestIdentityLinker_RelinkIsIdempotent(t *testing.T) {
	linker, backend := createTestIdentityLinker(t)
	ctx := context.Background()

	a := backend.seedIdentity(t, "a@x.com", "hash-a")
	_, err := linker.HandleCallback(ctx, googleCallback(&a.ID, "g123", "", credentialExpiringAt("at-1", time.Now().Add(time.Minute), "rt-1")))
	require.NoError(t, err)

	output, err := linker.HandleCallback(ctx, googleCallback(&a.ID, "g123", "", credentialExpiringAt("at-2", time.Now().Add(time.Hour), "rt-2")))
	require.NoError(t, err)

	assert.Equal(t, usecase.OutcomeRelinked, output.Outcome)
	stored := backend.mustFind(t, a)
	assert.Len(t, stored.Links, 1)
	assert.Equal(t, "at-2", stored.Link(entity.ProviderGoogle).Credential.AccessToken)
	assert.Equal(t, "rt-2", stored.Link(entity.ProviderGoogle).Credential.RefreshToken)
}

func TestIdentityLinker_SecondAccountOfSameKindIsRejected(t *testing.T) {
	linker, backend := createTestIdentityLinker(t)
	ctx := context.Background()

	a := backend.seedIdentity(t, "a@x.com", "hash-a", providerLink(entity.ProviderGoogle, "g-first", freshCredential("at-1")))

	_, err := linker.HandleCallback(ctx, googleCallback(&a.ID, "g-second", "", freshCredential("at-2")))

	assert.True(t, errors.Is(err, domainerrors.ErrConflict))
	assert.Equal(t, "g-first", backend.mustFind(t, a).Link(entity.ProviderGoogle).SubjectID)
}

func TestIdentityLinker_ScenarioB_CreatesIdentity(t *testing.T) {
	linker, backend := createTestIdentityLinker(t)
	ctx := context.Background()

	output, err := linker.HandleCallback(ctx, googleCallback(nil, "g999", "New@X.com", freshCredential("at-1")))
	require.NoError(t, err)

	assert.Equal(t, usecase.OutcomeCreated, output.Outcome)

	created, err := backend.identityRepo.FindByProviderSubject(ctx, entity.ProviderGoogle, "g999")
	require.NoError(t, err)
	assert.Equal(t, output.Identity.ID, created.ID)
	assert.Equal(t, "new@x.com", created.Email)
	assert.False(t, created.HasPassword())
	assert.Len(t, created.Links, 1)
	assert.Equal(t, "Google User", created.Profile.Name)
	assert.Equal(t, "at-1", created.Link(entity.ProviderGoogle).Credential.AccessToken)
}

func TestIdentityLinker_ScenarioC_EmailCollision(t *testing.T) {
	linker, backend := createTestIdentityLinker(t)
	ctx := context.Background()

	a := backend.seedIdentity(t, "a@x.com", "hash-a")
	before := backend.mustFind(t, a)

	_, err := linker.HandleCallback(ctx, googleCallback(nil, "g999", "A@x.com", freshCredential("at-1")))

	assert.True(t, errors.Is(err, domainerrors.ErrEmailCollision))
	assert.Equal(t, before, backend.mustFind(t, a))

	_, err = backend.identityRepo.FindByProviderSubject(ctx, entity.ProviderGoogle, "g999")
	assert.True(t, errors.Is(err, repository.ErrIdentityNotFound))
}

func TestIdentityLinker_ProviderLoginWithoutEmail(t *testing.T) {
	linker, backend := createTestIdentityLinker(t)
	ctx := context.Background()

	output, err := linker.HandleCallback(ctx, &usecase.CallbackInput{
		Provider:   entity.ProviderFacebook,
		SubjectID:  "fb-1",
		Credential: freshCredential("at-1"),
	})
	require.NoError(t, err)

	assert.Equal(t, usecase.OutcomeCreated, output.Outcome)
	assert.Empty(t, backend.mustFind(t, output.Identity).Email)
}

func TestIdentityLinker_LoginRefreshesCredentialAndFillsProfile(t *testing.T) {
	linker, backend := createTestIdentityLinker(t)
	ctx := context.Background()

	link := providerLink(entity.ProviderGoogle, "g123", credentialExpiringAt("at-old", time.Now().Add(-time.Hour), "rt-old"))
	link.ReauthRequired = true
	existing := backend.seedIdentity(t, "a@x.com", "", link)

	input := googleCallback(nil, "g123", "a@x.com", credentialExpiringAt("at-new", time.Now().Add(time.Hour), "rt-new"))
	input.Profile.Gender = "female"

	output, err := linker.HandleCallback(ctx, input)
	require.NoError(t, err)

	assert.Equal(t, usecase.OutcomeLogin, output.Outcome)
	assert.Equal(t, existing.ID, output.Identity.ID)

	stored := backend.mustFind(t, existing)
	storedLink := stored.Link(entity.ProviderGoogle)
	assert.Equal(t, "at-new", storedLink.Credential.AccessToken)
	assert.Equal(t, "rt-new", storedLink.Credential.RefreshToken)
	assert.False(t, storedLink.ReauthRequired)
	assert.Equal(t, "Google User", stored.Profile.Name)
	assert.Equal(t, "female", stored.Profile.Gender)
}

func TestIdentityLinker_LoginKeepsExistingProfileFields(t *testing.T) {
	linker, backend := createTestIdentityLinker(t)
	ctx := context.Background()

	existing := entity.NewIdentity("a@x.com", time.Now())
	existing.Profile.Name = "Chosen Name"
	existing.AttachLink(providerLink(entity.ProviderGoogle, "g123", freshCredential("at-1")))
	require.NoError(t, backend.identityRepo.CreateUnique(ctx, existing))

	_, err := linker.HandleCallback(ctx, googleCallback(nil, "g123", "a@x.com", freshCredential("at-2")))
	require.NoError(t, err)

	stored := backend.mustFind(t, existing)
	assert.Equal(t, "Chosen Name", stored.Profile.Name)
	assert.Equal(t, "https://example.com/p.png", stored.Profile.Picture)
}

func TestIdentityLinker_LoginNeverRollsCredentialBack(t *testing.T) {
	linker, backend := createTestIdentityLinker(t)
	ctx := context.Background()

	existing := backend.seedIdentity(t, "", "",
		providerLink(entity.ProviderGoogle, "g123", credentialExpiringAt("at-newer", time.Now().Add(2*time.Hour), "rt-1")))

	output, err := linker.HandleCallback(ctx, googleCallback(nil, "g123", "", credentialExpiringAt("at-older", time.Now().Add(time.Hour), "rt-0")))
	require.NoError(t, err)

	assert.Equal(t, usecase.OutcomeLogin, output.Outcome)
	assert.Equal(t, "at-newer", backend.mustFind(t, existing).Link(entity.ProviderGoogle).Credential.AccessToken)
}

func TestIdentityLinker_RejectsInvalidInput(t *testing.T) {
	linker, _ := createTestIdentityLinker(t)
	ctx := context.Background()

	tests := []struct {
		name    string
		input   *usecase.CallbackInput
		wantErr error
	}{
		{name: "nil input", input: nil, wantErr: domainerrors.ErrValidationFailed},
		{name: "local provider", input: &usecase.CallbackInput{Provider: entity.ProviderLocal, SubjectID: "x"}, wantErr: domainerrors.ErrUnknownProvider},
		{name: "missing subject", input: &usecase.CallbackInput{Provider: entity.ProviderGoogle, SubjectID: "  "}, wantErr: domainerrors.ErrValidationFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := linker.HandleCallback(ctx, tt.input)
			assert.True(t, errors.Is(err, tt.wantErr))
		})
	}
}

func TestIdentityLinker_ConcurrentIdenticalCallbacksCreateOneIdentity(t *testing.T) {
	linker, backend := createTestIdentityLinker(t)
	ctx := context.Background()

	const callers = 8
	ids := make([]uuid.UUID, callers)
	errs := make([]error, callers)

	var wg sync.WaitGroup
	wg.Add(callers)
	for i := range callers {
		go func() {
			defer wg.Done()
			output, err := linker.HandleCallback(ctx, googleCallback(nil, "g-race", "race@x.com", freshCredential("at-race")))
			errs[i] = err
			if err == nil {
				ids[i] = output.Identity.ID
			}
		}()
	}
	wg.Wait()

	for i := range callers {
		require.NoError(t, errs[i])
		assert.Equal(t, ids[0], ids[i])
	}

	byEmail, err := backend.identityRepo.FindByEmail(ctx, "race@x.com")
	require.NoError(t, err)
	assert.Equal(t, ids[0], byEmail.ID)
}

func TestIdentityLinker_LostCreateRaceResolvesToWinner(t *testing.T) {
	txManager := mockRepo.NewMockTransactionManager(t)
	linker := NewIdentityLinker(IdentityLinkerParams{TxManager: txManager, Logger: newDiscardLogger()})

	ctx := context.Background()
	input := googleCallback(nil, "g-race", "race@x.com", freshCredential("at-1"))
	winner := entity.NewIdentity("race@x.com", time.Now())
	winner.AttachLink(providerLink(entity.ProviderGoogle, "g-race", freshCredential("at-0")))

	// First attempt: nothing exists yet, but the insert loses to a concurrent callback.
	txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(t)
			identityRepo := mockRepo.NewMockIdentityRepository(t)
			factory.EXPECT().IdentityRepo().Return(identityRepo)

			identityRepo.EXPECT().FindByProviderSubject(ctx, entity.ProviderGoogle, "g-race").Return(nil, repository.ErrIdentityNotFound)
			identityRepo.EXPECT().FindByEmail(ctx, "race@x.com").Return(nil, repository.ErrIdentityNotFound)
			identityRepo.EXPECT().CreateUnique(ctx, mock.AnythingOfType("*entity.Identity")).Return(repository.ErrConflict)

			return fn(factory)
		}).
		Once()

	// Second attempt sees the winner and logs into it.
	txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(t)
			identityRepo := mockRepo.NewMockIdentityRepository(t)
			credentialRepo := mockRepo.NewMockCredentialRepository(t)
			factory.EXPECT().IdentityRepo().Return(identityRepo)
			factory.EXPECT().CredentialRepo().Return(credentialRepo)

			identityRepo.EXPECT().FindByProviderSubject(ctx, entity.ProviderGoogle, "g-race").Return(winner.Clone(), nil)
			credentialRepo.EXPECT().ReplaceCredential(ctx, winner.ID, entity.ProviderGoogle, input.Credential).Return(repository.ErrStaleCredential)
			identityRepo.EXPECT().Save(ctx, mock.AnythingOfType("*entity.Identity")).Return(nil)
			identityRepo.EXPECT().FindByID(ctx, winner.ID).Return(winner.Clone(), nil)

			return fn(factory)
		}).
		Once()

	output, err := linker.HandleCallback(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, usecase.OutcomeLogin, output.Outcome)
	assert.Equal(t, winner.ID, output.Identity.ID)
}

func TestIdentityLinker_PersistentConflictIsReported(t *testing.T) {
	txManager := mockRepo.NewMockTransactionManager(t)
	linker := NewIdentityLinker(IdentityLinkerParams{TxManager: txManager, Logger: newDiscardLogger()})

	ctx := context.Background()
	txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Return(errors.Wrap(repository.ErrConflict, "failed to create identity")).
		Times(maxLinkAttempts)

	_, err := linker.HandleCallback(ctx, googleCallback(nil, "g1", "", freshCredential("at-1")))

	assert.True(t, errors.Is(err, domainerrors.ErrConflict))
}

func TestIdentityLinker_PersistenceErrorIsNotRetried(t *testing.T) {
	txManager := mockRepo.NewMockTransactionManager(t)
	linker := NewIdentityLinker(IdentityLinkerParams{TxManager: txManager, Logger: newDiscardLogger()})

	ctx := context.Background()
	dbErr := errors.New("connection refused")
	txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Return(dbErr).
		Once()

	_, err := linker.HandleCallback(ctx, googleCallback(nil, "g1", "", freshCredential("at-1")))

	assert.ErrorIs(t, err, dbErr)
}
