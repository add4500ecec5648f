package oauth

import (
	"encoding/json"
	"time"

	"passage/config"
	"passage/internal/domain/entity"
	"passage/internal/domain/service"
	"passage/internal/errors"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/endpoints"
)

const googleUserInfoURL = "https://www.googleapis.com/oauth2/v2/userinfo"

// NewGoogleClient builds the Google client. Offline access with a forced
// consent prompt makes Google hand out a refresh token on every login.
func NewGoogleClient(cfg config.ProviderConfig, timeout time.Duration) service.ProviderClient {
	return newClient(
		entity.ProviderGoogle,
		cfg,
		endpoints.Google,
		googleUserInfoURL,
		timeout,
		translateGoogleProfile,
		oauth2.AccessTypeOffline,
		oauth2.SetAuthURLParam("prompt", "consent"),
	)
}

func translateGoogleProfile(body []byte) (string, entity.ProfileFields, error) {
	var googleUser struct {
		ID      string `json:"id"`
		Email   string `json:"email"`
		Name    string `json:"name"`
		Picture string `json:"picture"`
		Gender  string `json:"gender"`
	}
	if err := json.Unmarshal(body, &googleUser); err != nil {
		return "", entity.ProfileFields{}, errors.Wrap(err, "failed to decode google user info")
	}

	return googleUser.ID, entity.ProfileFields{
		Name:    googleUser.Name,
		Email:   googleUser.Email,
		Picture: googleUser.Picture,
		Gender:  googleUser.Gender,
	}, nil
}
