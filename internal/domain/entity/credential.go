package entity

import "time"

// AccessCredential is the token material issued by a provider.
type AccessCredential struct {
	AccessToken      string     // Opaque access token.
	IssuedAt         time.Time  // When the provider issued AccessToken.
	ExpiresAt        *time.Time // nil means the token never expires.
	RefreshToken     string     // Empty when the provider issued none.
	RefreshExpiresAt *time.Time // nil means the refresh token has no known expiry.
}

// IsStale reports whether the access token must be refreshed before use.
// A credential without expiry is never stale.
func (c AccessCredential) IsStale(now time.Time, skew time.Duration) bool {
	if c.ExpiresAt == nil {
		return false
	}

	return !now.Before(c.ExpiresAt.Add(-skew))
}

// CanRefresh reports whether the refresh token is present and not known to be expired.
func (c AccessCredential) CanRefresh(now time.Time) bool {
	if c.RefreshToken == "" {
		return false
	}
	if c.RefreshExpiresAt != nil && !now.Before(*c.RefreshExpiresAt) {
		return false
	}

	return true
}

// Supersedes reports whether c may replace prev without moving the expiry backwards.
func (c AccessCredential) Supersedes(prev AccessCredential) bool {
	if prev.ExpiresAt == nil || c.ExpiresAt == nil {
		return true
	}

	return !c.ExpiresAt.Before(*prev.ExpiresAt)
}

// Clone returns a copy that shares no pointers with c.
func (c AccessCredential) Clone() AccessCredential {
	cloned := c
	if c.ExpiresAt != nil {
		t := *c.ExpiresAt
		cloned.ExpiresAt = &t
	}
	if c.RefreshExpiresAt != nil {
		t := *c.RefreshExpiresAt
		cloned.RefreshExpiresAt = &t
	}

	return cloned
}
