package entity

import "time"

// ProviderKind names an authentication method.
type ProviderKind string

const (
	ProviderLocal    ProviderKind = "local"
	ProviderGoogle   ProviderKind = "google"
	ProviderFacebook ProviderKind = "facebook"
)

// String implements fmt.Stringer.
func (k ProviderKind) String() string {
	return string(k)
}

// IsExternal reports whether the kind is an OAuth provider rather than the local password.
func (k ProviderKind) IsExternal() bool {
	return k != "" && k != ProviderLocal
}

// ProviderLink associates an identity with one external account.
type ProviderLink struct {
	Kind           ProviderKind     // Which provider this link belongs to.
	SubjectID      string           // The provider-assigned subject id (e.g., Google's 'sub' claim).
	Profile        ProfileFields    // Profile as last reported by the provider.
	Credential     AccessCredential // Token material backing the link.
	ReauthRequired bool             // Set when the provider rejected the refresh token; cleared by the next interactive login.
	LinkedAt       time.Time        // Timestamp of when the link was created.
}

// Clone returns a copy that shares no pointers with l.
func (l *ProviderLink) Clone() *ProviderLink {
	if l == nil {
		return nil
	}

	cloned := *l
	cloned.Credential = l.Credential.Clone()

	return &cloned
}

// ProfileFields is the provider-neutral profile shape. Provider clients
// translate their payloads into it before the core ever sees them.
type ProfileFields struct {
	Name     string
	Email    string
	Picture  string
	Gender   string
	Location string
}

// FillMissing copies every field of src into p that is still empty in p.
// It reports whether anything changed.
func (p *ProfileFields) FillMissing(src ProfileFields) bool {
	changed := false
	fill := func(dst *string, v string) {
		if *dst == "" && v != "" {
			*dst = v
			changed = true
		}
	}

	fill(&p.Name, src.Name)
	fill(&p.Email, src.Email)
	fill(&p.Picture, src.Picture)
	fill(&p.Gender, src.Gender)
	fill(&p.Location, src.Location)

	return changed
}
