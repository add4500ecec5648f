package postgres

import (
	"passage/internal/domain/entity"
	"passage/internal/infra/persistence/model"

	"github.com/google/uuid"
)

func toIdentityDomain(identityM *model.IdentityModel) *entity.Identity {
	identity := &entity.Identity{
		ID:            identityM.ID,
		PasswordHash:  identityM.PasswordHash,
		EmailVerified: identityM.EmailVerified,
		Profile: entity.ProfileFields{
			Name:     identityM.Name,
			Email:    identityM.ProfileEmail,
			Picture:  identityM.Picture,
			Gender:   identityM.Gender,
			Location: identityM.Location,
		},
		Links:     make(map[entity.ProviderKind]*entity.ProviderLink, len(identityM.Links)),
		CreatedAt: identityM.CreatedAt,
		UpdatedAt: identityM.UpdatedAt,
	}
	if identityM.Email != nil {
		identity.Email = *identityM.Email
	}
	for i := range identityM.Links {
		link := toLinkDomain(&identityM.Links[i])
		identity.Links[link.Kind] = link
	}

	return identity
}

func fromIdentityDomain(identity *entity.Identity) *model.IdentityModel {
	identityM := &model.IdentityModel{
		ID:            identity.ID,
		PasswordHash:  identity.PasswordHash,
		EmailVerified: identity.EmailVerified,
		Name:          identity.Profile.Name,
		ProfileEmail:  identity.Profile.Email,
		Picture:       identity.Profile.Picture,
		Gender:        identity.Profile.Gender,
		Location:      identity.Profile.Location,
		CreatedAt:     identity.CreatedAt,
		UpdatedAt:     identity.UpdatedAt,
	}
	if identity.Email != "" {
		email := identity.Email
		identityM.Email = &email
	}
	for _, link := range identity.Links {
		identityM.Links = append(identityM.Links, *fromLinkDomain(identity.ID, link))
	}

	return identityM
}

func toLinkDomain(linkM *model.ProviderLinkModel) *entity.ProviderLink {
	return &entity.ProviderLink{
		Kind:      entity.ProviderKind(linkM.Kind),
		SubjectID: linkM.SubjectID,
		Profile: entity.ProfileFields{
			Name:     linkM.Name,
			Email:    linkM.Email,
			Picture:  linkM.Picture,
			Gender:   linkM.Gender,
			Location: linkM.Location,
		},
		Credential: entity.AccessCredential{
			AccessToken:      linkM.AccessToken,
			IssuedAt:         linkM.IssuedAt,
			ExpiresAt:        linkM.ExpiresAt,
			RefreshToken:     linkM.RefreshToken,
			RefreshExpiresAt: linkM.RefreshExpiresAt,
		},
		ReauthRequired: linkM.ReauthRequired,
		LinkedAt:       linkM.LinkedAt,
	}
}

func fromLinkDomain(identityID uuid.UUID, link *entity.ProviderLink) *model.ProviderLinkModel {
	cred := link.Credential.Clone()

	return &model.ProviderLinkModel{
		ID:               uuid.New(),
		IdentityID:       identityID,
		Kind:             string(link.Kind),
		SubjectID:        link.SubjectID,
		Name:             link.Profile.Name,
		Email:            link.Profile.Email,
		Picture:          link.Profile.Picture,
		Gender:           link.Profile.Gender,
		Location:         link.Profile.Location,
		AccessToken:      cred.AccessToken,
		IssuedAt:         cred.IssuedAt,
		ExpiresAt:        cred.ExpiresAt,
		RefreshToken:     cred.RefreshToken,
		RefreshExpiresAt: cred.RefreshExpiresAt,
		ReauthRequired:   link.ReauthRequired,
		LinkedAt:         link.LinkedAt,
	}
}

func toVerificationTokenDomain(tokenM *model.VerificationTokenModel) *entity.VerificationToken {
	return &entity.VerificationToken{
		ID:         tokenM.ID,
		IdentityID: tokenM.IdentityID,
		Purpose:    entity.TokenPurpose(tokenM.Purpose),
		TokenHash:  tokenM.TokenHash,
		ExpiresAt:  tokenM.ExpiresAt,
		CreatedAt:  tokenM.CreatedAt,
	}
}

func fromVerificationTokenDomain(token *entity.VerificationToken) *model.VerificationTokenModel {
	return &model.VerificationTokenModel{
		ID:         token.ID,
		IdentityID: token.IdentityID,
		Purpose:    string(token.Purpose),
		TokenHash:  token.TokenHash,
		ExpiresAt:  token.ExpiresAt,
		CreatedAt:  token.CreatedAt,
	}
}
