package model

import (
	"time"

	"github.com/google/uuid"
)

// IdentityModel mirrors the 'identities' table. Email is nullable so that any
// number of provider-only identities can exist without an address.
type IdentityModel struct {
	ID                 uuid.UUID                `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Email              *string                  `gorm:"type:varchar(255);uniqueIndex:idx_identities_email"`
	PasswordHash       string                   `gorm:"type:varchar(255)"`
	EmailVerified      bool                     `gorm:"not null;default:false"`
	Name               string                   `gorm:"type:varchar(255)"`
	ProfileEmail       string                   `gorm:"type:varchar(255)"`
	Picture            string                   `gorm:"type:text"`
	Gender             string                   `gorm:"type:varchar(32)"`
	Location           string                   `gorm:"type:varchar(255)"`
	Links              []ProviderLinkModel      `gorm:"foreignKey:IdentityID;constraint:OnDelete:CASCADE"`
	VerificationTokens []VerificationTokenModel `gorm:"foreignKey:IdentityID;constraint:OnDelete:CASCADE"`
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// TableName explicitly sets the table name for GORM.
func (IdentityModel) TableName() string {
	return "identities"
}

// ProviderLinkModel mirrors the 'provider_links' table. The (kind, subject_id)
// unique index is what makes concurrent first logins create at most one identity.
type ProviderLinkModel struct {
	ID               uuid.UUID  `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	IdentityID       uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:idx_provider_links_identity_kind"`
	Kind             string     `gorm:"type:varchar(32);not null;uniqueIndex:idx_provider_links_identity_kind;uniqueIndex:idx_provider_links_kind_subject"`
	SubjectID        string     `gorm:"type:varchar(255);not null;uniqueIndex:idx_provider_links_kind_subject"`
	Name             string     `gorm:"type:varchar(255)"`
	Email            string     `gorm:"type:varchar(255)"`
	Picture          string     `gorm:"type:text"`
	Gender           string     `gorm:"type:varchar(32)"`
	Location         string     `gorm:"type:varchar(255)"`
	AccessToken      string     `gorm:"type:text"`
	IssuedAt         time.Time  `gorm:"not null"`
	ExpiresAt        *time.Time `gorm:"index"`
	RefreshToken     string     `gorm:"type:text"`
	RefreshExpiresAt *time.Time
	ReauthRequired   bool `gorm:"not null;default:false"`
	LinkedAt         time.Time
	UpdatedAt        time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProviderLinkModel) TableName() string {
	return "provider_links"
}

// VerificationTokenModel mirrors the 'verification_tokens' table. The
// (identity_id, purpose) unique index keeps at most one live token per purpose.
type VerificationTokenModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	IdentityID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_verification_tokens_identity_purpose"`
	Purpose    string    `gorm:"type:varchar(32);not null;uniqueIndex:idx_verification_tokens_identity_purpose"`
	TokenHash  string    `gorm:"type:varchar(64);not null;uniqueIndex:idx_verification_tokens_hash"`
	ExpiresAt  time.Time `gorm:"not null"`
	CreatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (VerificationTokenModel) TableName() string {
	return "verification_tokens"
}

// All lists every model for schema migration, parents first.
func All() []any {
	return []any{&IdentityModel{}, &ProviderLinkModel{}, &VerificationTokenModel{}}
}
