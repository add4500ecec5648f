package oauth

import (
	"encoding/json"
	"net/url"
	"strings"
	"time"

	"passage/config"
	"passage/internal/domain/entity"
	"passage/internal/domain/service"
	"passage/internal/errors"

	"golang.org/x/oauth2/endpoints"
)

const (
	facebookGraphURL   = "https://graph.facebook.com"
	facebookProfileURL = facebookGraphURL + "/me?fields=id,name,email,first_name,last_name,gender,location"
)

// NewFacebookClient builds the Facebook client.
func NewFacebookClient(cfg config.ProviderConfig, timeout time.Duration) service.ProviderClient {
	return newClient(
		entity.ProviderFacebook,
		cfg,
		endpoints.Facebook,
		facebookProfileURL,
		timeout,
		translateFacebookProfile,
	)
}

func translateFacebookProfile(body []byte) (string, entity.ProfileFields, error) {
	var fbUser struct {
		ID        string `json:"id"`
		Name      string `json:"name"`
		Email     string `json:"email"`
		FirstName string `json:"first_name"`
		LastName  string `json:"last_name"`
		Gender    string `json:"gender"`
		Location  struct {
			Name string `json:"name"`
		} `json:"location"`
	}
	if err := json.Unmarshal(body, &fbUser); err != nil {
		return "", entity.ProfileFields{}, errors.Wrap(err, "failed to decode facebook profile")
	}

	name := strings.TrimSpace(fbUser.FirstName + " " + fbUser.LastName)
	if name == "" {
		name = fbUser.Name
	}

	profile := entity.ProfileFields{
		Name:     name,
		Email:    fbUser.Email,
		Gender:   fbUser.Gender,
		Location: fbUser.Location.Name,
	}
	if fbUser.ID != "" {
		profile.Picture = facebookGraphURL + "/" + url.PathEscape(fbUser.ID) + "/picture?type=large"
	}

	return fbUser.ID, profile, nil
}
