// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Identity is a user account. It can be reached through a local password,
// through any of its provider links, or both.
type Identity struct {
	ID            uuid.UUID                      // The Global Unique Identifier (GUID) for the identity.
	Email         string                         // Primary email, normalized to lower case. May be empty for provider-only accounts.
	PasswordHash  string                         // bcrypt hash of the local password. Empty when no password is set.
	EmailVerified bool                           // Set once the owner has consumed an email-verify token.
	Profile       ProfileFields                  // Profile fields gathered from sign up and provider logins.
	Links         map[ProviderKind]*ProviderLink // At most one link per provider kind.
	CreatedAt     time.Time                      // Timestamp of when this identity was created.
	UpdatedAt     time.Time                      // Timestamp of the last modification to this identity.
}

// NewIdentity returns an identity with a fresh ID and an empty link set.
func NewIdentity(email string, now time.Time) *Identity {
	return &Identity{
		ID:        uuid.New(),
		Email:     email,
		Links:     make(map[ProviderKind]*ProviderLink),
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// HasPassword reports whether a local password is set.
func (i *Identity) HasPassword() bool {
	return i.PasswordHash != ""
}

// Link returns the link for kind, or nil.
func (i *Identity) Link(kind ProviderKind) *ProviderLink {
	if i.Links == nil {
		return nil
	}

	return i.Links[kind]
}

// AttachLink sets the link for its kind, replacing any previous one.
func (i *Identity) AttachLink(link *ProviderLink) {
	if i.Links == nil {
		i.Links = make(map[ProviderKind]*ProviderLink)
	}
	i.Links[link.Kind] = link
}

// LoginMethodCount counts the password (if set) and every provider link.
func (i *Identity) LoginMethodCount() int {
	n := len(i.Links)
	if i.HasPassword() {
		n++
	}

	return n
}

// CanRemoveLink reports whether removing the link for kind would still leave
// at least one way to sign in.
func (i *Identity) CanRemoveLink(kind ProviderKind) bool {
	if i.Link(kind) == nil {
		return false
	}

	return i.LoginMethodCount() > 1
}

// Clone returns a deep copy. Repositories hand out clones so callers never
// share mutable state with the store.
func (i *Identity) Clone() *Identity {
	if i == nil {
		return nil
	}

	cloned := *i
	cloned.Links = make(map[ProviderKind]*ProviderLink, len(i.Links))
	for kind, link := range i.Links {
		cloned.Links[kind] = link.Clone()
	}

	return &cloned
}

// LinkKinds returns the provider kinds currently linked.
func (i *Identity) LinkKinds() []ProviderKind {
	kinds := make([]ProviderKind, 0, len(i.Links))
	for kind := range i.Links {
		kinds = append(kinds, kind)
	}

	return kinds
}
