package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccessCredential_IsStale(t *testing.T) {
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	at := func(d time.Duration) *time.Time {
		ts := now.Add(d)
		return &ts
	}

	tests := []struct {
		name      string
		expiresAt *time.Time
		want      bool
	}{
		{name: "no expiry is always fresh", expiresAt: nil, want: false},
		{name: "expired two minutes ago", expiresAt: at(-2 * time.Minute), want: true},
		{name: "inside skew window", expiresAt: at(30 * time.Second), want: true},
		{name: "exactly at skew boundary", expiresAt: at(time.Minute), want: true},
		{name: "outside skew window", expiresAt: at(61 * time.Second), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cred := AccessCredential{AccessToken: "a", ExpiresAt: tt.expiresAt}
			assert.Equal(t, tt.want, cred.IsStale(now, time.Minute))
		})
	}
}

func TestAccessCredential_CanRefresh(t *testing.T) {
	now := time.Now()
	past := now.Add(-time.Second)
	future := now.Add(time.Hour)

	assert.False(t, AccessCredential{}.CanRefresh(now))
	assert.True(t, AccessCredential{RefreshToken: "r"}.CanRefresh(now))
	assert.True(t, AccessCredential{RefreshToken: "r", RefreshExpiresAt: &future}.CanRefresh(now))
	assert.False(t, AccessCredential{RefreshToken: "r", RefreshExpiresAt: &past}.CanRefresh(now))
}

func TestAccessCredential_Supersedes(t *testing.T) {
	now := time.Now()
	earlier := now.Add(-time.Minute)

	assert.True(t, AccessCredential{ExpiresAt: &now}.Supersedes(AccessCredential{ExpiresAt: &earlier}))
	assert.False(t, AccessCredential{ExpiresAt: &earlier}.Supersedes(AccessCredential{ExpiresAt: &now}))
	assert.True(t, AccessCredential{}.Supersedes(AccessCredential{ExpiresAt: &now}))
	assert.True(t, AccessCredential{ExpiresAt: &now}.Supersedes(AccessCredential{}))
}

func TestProfileFields_FillMissing(t *testing.T) {
	p := ProfileFields{Name: "Existing"}

	changed := p.FillMissing(ProfileFields{Name: "Other", Picture: "pic", Gender: "f"})

	assert.True(t, changed)
	assert.Equal(t, "Existing", p.Name)
	assert.Equal(t, "pic", p.Picture)
	assert.Equal(t, "f", p.Gender)

	assert.False(t, p.FillMissing(ProfileFields{Name: "x", Picture: "y"}))
}

func TestIdentity_LoginMethods(t *testing.T) {
	identity := NewIdentity("a@x.com", time.Now())
	assert.Equal(t, 0, identity.LoginMethodCount())

	identity.AttachLink(&ProviderLink{Kind: ProviderGoogle, SubjectID: "g123"})
	assert.Equal(t, 1, identity.LoginMethodCount())
	assert.False(t, identity.CanRemoveLink(ProviderGoogle))
	assert.False(t, identity.CanRemoveLink(ProviderFacebook))

	identity.PasswordHash = "hash"
	assert.Equal(t, 2, identity.LoginMethodCount())
	assert.True(t, identity.CanRemoveLink(ProviderGoogle))
}

func TestIdentity_CloneIsDeep(t *testing.T) {
	exp := time.Now().Add(time.Hour)
	identity := NewIdentity("a@x.com", time.Now())
	identity.AttachLink(&ProviderLink{
		Kind:       ProviderGoogle,
		SubjectID:  "g123",
		Credential: AccessCredential{AccessToken: "a", ExpiresAt: &exp},
	})

	cloned := identity.Clone()
	cloned.Link(ProviderGoogle).Credential.AccessToken = "b"
	*cloned.Link(ProviderGoogle).Credential.ExpiresAt = exp.Add(time.Hour)
	delete(cloned.Links, ProviderGoogle)

	link := identity.Link(ProviderGoogle)
	require.NotNil(t, link)
	assert.Equal(t, "a", link.Credential.AccessToken)
	assert.Equal(t, exp, *link.Credential.ExpiresAt)
}
