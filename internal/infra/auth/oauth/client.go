// Package oauth implements provider clients on top of golang.org/x/oauth2.
// Each provider only supplies its endpoints, scopes and a profile translator;
// exchange, refresh and error classification are shared.
package oauth

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strconv"
	"time"

	"passage/config"
	"passage/internal/domain/entity"
	domainerrors "passage/internal/domain/errors"
	"passage/internal/domain/service"
	"passage/internal/errors"

	"golang.org/x/oauth2"
)

const (
	defaultProviderTimeout = 10 * time.Second
	maxProfileBodySize     = 1 << 20

	// errorCodeInvalidGrant is the RFC 6749 error returned for a rejected refresh token.
	errorCodeInvalidGrant = "invalid_grant"
)

// profileTranslator turns a provider's raw profile payload into provider-neutral fields.
type profileTranslator func(body []byte) (subjectID string, profile entity.ProfileFields, err error)

// client is the shared ProviderClient implementation.
type client struct {
	kind       entity.ProviderKind
	oauth      *oauth2.Config
	profileURL string
	authOpts   []oauth2.AuthCodeOption
	translate  profileTranslator
	httpClient *http.Client
	timeout    time.Duration
	now        func() time.Time
}

func newClient(kind entity.ProviderKind, cfg config.ProviderConfig, endpoint oauth2.Endpoint, profileURL string, timeout time.Duration, translate profileTranslator, authOpts ...oauth2.AuthCodeOption) *client {
	if cfg.AuthURL != "" {
		endpoint.AuthURL = cfg.AuthURL
	}
	if cfg.TokenURL != "" {
		endpoint.TokenURL = cfg.TokenURL
	}
	if cfg.ProfileURL != "" {
		profileURL = cfg.ProfileURL
	}
	if timeout <= 0 {
		timeout = defaultProviderTimeout
	}

	return &client{
		kind: kind,
		oauth: &oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			RedirectURL:  cfg.RedirectURL,
			Endpoint:     endpoint,
			Scopes:       cfg.Scopes,
		},
		profileURL: profileURL,
		authOpts:   authOpts,
		translate:  translate,
		httpClient: &http.Client{Timeout: timeout},
		timeout:    timeout,
		now:        time.Now,
	}
}

var _ service.ProviderClient = (*client)(nil)

func (c *client) Kind() entity.ProviderKind {
	return c.kind
}

// AuthorizeURL builds the provider's consent URL for the given CSRF state.
func (c *client) AuthorizeURL(state string) string {
	return c.oauth.AuthCodeURL(state, c.authOpts...)
}

// ExchangeCode trades an authorization code for a credential and fetches the profile with it.
func (c *client) ExchangeCode(ctx context.Context, code string) (*service.ProviderGrant, error) {
	callCtx, cancel := c.withTimeout(ctx)
	defer cancel()

	token, err := c.oauth.Exchange(callCtx, code)
	if err != nil {
		return nil, c.classify(err, "exchange code")
	}

	subjectID, profile, err := c.FetchProfile(ctx, token.AccessToken)
	if err != nil {
		return nil, err
	}

	return &service.ProviderGrant{
		SubjectID:  subjectID,
		Profile:    profile,
		Credential: c.toCredential(token, ""),
	}, nil
}

// Refresh exchanges a refresh token for a new credential. The refresh token
// is carried over when the provider does not rotate it.
func (c *client) Refresh(ctx context.Context, refreshToken string) (entity.AccessCredential, error) {
	callCtx, cancel := c.withTimeout(ctx)
	defer cancel()

	token, err := c.oauth.TokenSource(callCtx, &oauth2.Token{RefreshToken: refreshToken}).Token()
	if err != nil {
		return entity.AccessCredential{}, c.classify(err, "refresh token")
	}

	return c.toCredential(token, refreshToken), nil
}

// FetchProfile loads the profile of the account behind accessToken.
func (c *client) FetchProfile(ctx context.Context, accessToken string) (string, entity.ProfileFields, error) {
	callCtx, cancel := c.withTimeout(ctx)
	defer cancel()

	httpClient := oauth2.NewClient(c.contextWithHTTPClient(callCtx), oauth2.StaticTokenSource(&oauth2.Token{AccessToken: accessToken}))

	req, err := http.NewRequestWithContext(callCtx, http.MethodGet, c.profileURL, nil)
	if err != nil {
		return "", entity.ProfileFields{}, errors.Wrap(err, "failed to create profile request")
	}

	resp, err := httpClient.Do(req)
	if err != nil {
		return "", entity.ProfileFields{}, c.classify(err, "fetch profile")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxProfileBodySize))
	if err != nil {
		return "", entity.ProfileFields{}, c.classify(err, "read profile")
	}

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		return "", entity.ProfileFields{}, domainerrors.NewReauthRequiredError(c.kind.String())
	case resp.StatusCode != http.StatusOK:
		return "", entity.ProfileFields{}, domainerrors.ErrTransientProvider.WrapMessage(
			c.kind.String() + " profile request failed with status " + strconv.Itoa(resp.StatusCode))
	}

	subjectID, profile, err := c.translate(body)
	if err != nil {
		return "", entity.ProfileFields{}, domainerrors.ErrTransientProvider.WrapMessage(err.Error())
	}
	if subjectID == "" {
		return "", entity.ProfileFields{}, domainerrors.ErrTransientProvider.WrapMessage(c.kind.String() + " profile has no subject id")
	}

	return subjectID, profile, nil
}

func (c *client) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(c.contextWithHTTPClient(ctx), c.timeout)
}

func (c *client) contextWithHTTPClient(ctx context.Context) context.Context {
	return context.WithValue(ctx, oauth2.HTTPClient, c.httpClient)
}

// classify maps a provider failure onto the domain taxonomy: a rejected grant
// means the user must log in again, anything else may be retried by the caller.
func (c *client) classify(err error, op string) error {
	if retrieveErr, ok := errors.AsType[*oauth2.RetrieveError](err); ok {
		if retrieveErr.ErrorCode == errorCodeInvalidGrant {
			return errors.Wrap(domainerrors.NewReauthRequiredError(c.kind.String()), op)
		}
		if retrieveErr.Response != nil && retrieveErr.Response.StatusCode >= http.StatusInternalServerError {
			return domainerrors.ErrTransientProvider.WrapMessage(op + ": " + err.Error())
		}
		if retrieveErr.ErrorCode == "" && retrieveErr.Response != nil && retrieveErr.Response.StatusCode == http.StatusUnauthorized {
			return errors.Wrap(domainerrors.NewReauthRequiredError(c.kind.String()), op)
		}
	}

	return domainerrors.ErrTransientProvider.WrapMessage(op + ": " + err.Error())
}

func (c *client) toCredential(token *oauth2.Token, fallbackRefresh string) entity.AccessCredential {
	cred := entity.AccessCredential{
		AccessToken:  token.AccessToken,
		IssuedAt:     c.now(),
		RefreshToken: token.RefreshToken,
	}
	if cred.RefreshToken == "" {
		cred.RefreshToken = fallbackRefresh
	}
	if !token.Expiry.IsZero() {
		expiry := token.Expiry
		cred.ExpiresAt = &expiry
	}
	if seconds, ok := extraSeconds(token, "refresh_token_expires_in"); ok {
		expiry := cred.IssuedAt.Add(time.Duration(seconds) * time.Second)
		cred.RefreshExpiresAt = &expiry
	}

	return cred
}

func extraSeconds(token *oauth2.Token, key string) (int64, bool) {
	switch v := token.Extra(key).(type) {
	case float64:
		return int64(v), v > 0
	case json.Number:
		n, err := v.Int64()
		return n, err == nil && n > 0
	case string:
		n, err := strconv.ParseInt(v, 10, 64)
		return n, err == nil && n > 0
	default:
		return 0, false
	}
}
