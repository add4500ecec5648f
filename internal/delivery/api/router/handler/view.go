package handler

import (
	"slices"
	"time"

	"passage/internal/domain/entity"
	"passage/internal/usecase"

	"github.com/google/uuid"
)

// IdentityView is the public shape of an identity. It never carries the
// password hash or any provider token material.
type IdentityView struct {
	ID            uuid.UUID   `json:"id"`
	Email         string      `json:"email,omitempty"`
	EmailVerified bool        `json:"email_verified"`
	HasPassword   bool        `json:"has_password"`
	Profile       ProfileView `json:"profile"`
	Providers     []LinkView  `json:"providers"`
	CreatedAt     time.Time   `json:"created_at"`
}

// ProfileView mirrors entity.ProfileFields.
type ProfileView struct {
	Name     string `json:"name,omitempty"`
	Email    string `json:"email,omitempty"`
	Picture  string `json:"picture,omitempty"`
	Gender   string `json:"gender,omitempty"`
	Location string `json:"location,omitempty"`
}

// LinkView describes one provider link.
type LinkView struct {
	Provider       string    `json:"provider"`
	SubjectID      string    `json:"subject_id"`
	ReauthRequired bool      `json:"reauth_required"`
	LinkedAt       time.Time `json:"linked_at"`
}

// SessionView is returned by every flow that signs the caller in.
type SessionView struct {
	SessionToken string        `json:"session_token"`
	ExpiresAt    time.Time     `json:"expires_at"`
	Identity     *IdentityView `json:"identity"`
	Outcome      string        `json:"outcome,omitempty"`
}

func newProfileView(p entity.ProfileFields) ProfileView {
	return ProfileView{
		Name:     p.Name,
		Email:    p.Email,
		Picture:  p.Picture,
		Gender:   p.Gender,
		Location: p.Location,
	}
}

func newIdentityView(identity *entity.Identity) *IdentityView {
	if identity == nil {
		return nil
	}

	kinds := identity.LinkKinds()
	slices.Sort(kinds)

	links := make([]LinkView, 0, len(kinds))
	for _, kind := range kinds {
		link := identity.Link(kind)
		links = append(links, LinkView{
			Provider:       kind.String(),
			SubjectID:      link.SubjectID,
			ReauthRequired: link.ReauthRequired,
			LinkedAt:       link.LinkedAt,
		})
	}

	return &IdentityView{
		ID:            identity.ID,
		Email:         identity.Email,
		EmailVerified: identity.EmailVerified,
		HasPassword:   identity.HasPassword(),
		Profile:       newProfileView(identity.Profile),
		Providers:     links,
		CreatedAt:     identity.CreatedAt,
	}
}

func newSessionView(out *usecase.AuthOutput) *SessionView {
	return &SessionView{
		SessionToken: out.SessionToken,
		ExpiresAt:    out.ExpiresAt,
		Identity:     newIdentityView(out.Identity),
	}
}
