package impl

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"passage/config"
	"passage/internal/domain/entity"
	"passage/internal/domain/repository"
	"passage/internal/infra/persistence/memory"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	cfg := &config.Config{
		Auth: &config.AuthConfig{
			BcryptCost:           bcrypt.MinCost,
			MinPasswordLength:    8,
			SessionTTL:           time.Hour,
			RefreshSkew:          time.Minute,
			ProviderTimeout:      2 * time.Second,
			PasswordResetTTL:     time.Hour,
			EmailVerificationTTL: 24 * time.Hour,
		},
	}
	cfg.SecretKey.Session = "test-session-secret"

	return cfg
}

// memoryBackend bundles the in-memory repositories that share one store.
type memoryBackend struct {
	txManager      repository.TransactionManager
	identityRepo   repository.IdentityRepository
	credentialRepo repository.CredentialRepository
	tokenRepo      repository.VerificationTokenRepository
}

func newMemoryBackend() memoryBackend {
	store := memory.NewStore()

	return memoryBackend{
		txManager:      memory.NewTransactionManager(store),
		identityRepo:   memory.NewIdentityRepository(store),
		credentialRepo: memory.NewCredentialRepository(store),
		tokenRepo:      memory.NewVerificationTokenRepository(store),
	}
}

func (b memoryBackend) seedIdentity(t *testing.T, email, passwordHash string, links ...*entity.ProviderLink) *entity.Identity {
	t.Helper()

	identity := entity.NewIdentity(email, time.Now())
	identity.PasswordHash = passwordHash
	for _, link := range links {
		identity.AttachLink(link)
	}
	require.NoError(t, b.identityRepo.CreateUnique(context.Background(), identity))

	return identity
}

func (b memoryBackend) mustFind(t *testing.T, identity *entity.Identity) *entity.Identity {
	t.Helper()

	found, err := b.identityRepo.FindByID(context.Background(), identity.ID)
	require.NoError(t, err)

	return found
}

func providerLink(kind entity.ProviderKind, subjectID string, credential entity.AccessCredential) *entity.ProviderLink {
	return &entity.ProviderLink{
		Kind:       kind,
		SubjectID:  subjectID,
		Credential: credential,
		LinkedAt:   time.Now(),
	}
}

func credentialExpiringAt(accessToken string, expiresAt time.Time, refreshToken string) entity.AccessCredential {
	return entity.AccessCredential{
		AccessToken:  accessToken,
		IssuedAt:     expiresAt.Add(-time.Hour),
		ExpiresAt:    &expiresAt,
		RefreshToken: refreshToken,
	}
}

// fakeClock is a settable time source shared by a service under test.
type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock(now time.Time) *fakeClock {
	return &fakeClock{now: now}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.now = c.now.Add(d)
}
