// Package credentials holds the Beatport OAuth credential set the bridge runs with.
//
// Credentials are read once at startup, from the environment and optionally from a
// token file, and stay immutable for the life of the process. The refresh token is
// carried along but never exchanged.
package credentials

import (
	"os"
	"strings"
	"time"

	"golang.org/x/oauth2"
)

const (
	EnvClientID     = "CLIENT_ID"
	EnvAccessToken  = "ACCESS_TOKEN"
	EnvRefreshToken = "REFRESH_TOKEN"

	tokenType = "Bearer"
)

// Credentials represents the Beatport OAuth credential set
type Credentials struct {
	ClientID     string    `json:"client_id" yaml:"clientID"`
	AccessToken  string    `json:"access_token" yaml:"accessToken"`
	RefreshToken string    `json:"refresh_token" yaml:"refreshToken"`
	Expiry       time.Time `json:"-" yaml:"-"`
}

// FromEnv reads credentials from CLIENT_ID, ACCESS_TOKEN and REFRESH_TOKEN.
func FromEnv() *Credentials {
	return &Credentials{
		ClientID:     strings.TrimSpace(os.Getenv(EnvClientID)),
		AccessToken:  strings.TrimSpace(os.Getenv(EnvAccessToken)),
		RefreshToken: strings.TrimSpace(os.Getenv(EnvRefreshToken)),
	}
}

// Merge fills blank fields from other; values already set win.
func (c *Credentials) Merge(other *Credentials) {
	if other == nil {
		return
	}
	if c.ClientID == "" {
		c.ClientID = other.ClientID
	}
	if c.AccessToken == "" {
		c.AccessToken = other.AccessToken
		if c.Expiry.IsZero() {
			c.Expiry = other.Expiry
		}
	}
	if c.RefreshToken == "" {
		c.RefreshToken = other.RefreshToken
	}
}

// Validate reports every missing value in a single *MissingError.
func (c *Credentials) Validate() error {
	var missing []string
	if strings.TrimSpace(c.ClientID) == "" {
		missing = append(missing, EnvClientID)
	}
	if strings.TrimSpace(c.AccessToken) == "" {
		missing = append(missing, EnvAccessToken)
	}
	if strings.TrimSpace(c.RefreshToken) == "" {
		missing = append(missing, EnvRefreshToken)
	}
	if len(missing) > 0 {
		return &MissingError{Names: missing}
	}
	return nil
}

// Expired returns true when the expiry is known and has passed.
func (c *Credentials) Expired(now time.Time) bool {
	return !c.Expiry.IsZero() && !now.Before(c.Expiry)
}

// Token returns the credential set as an oauth2 token
func (c *Credentials) Token() *oauth2.Token {
	return &oauth2.Token{
		AccessToken:  c.AccessToken,
		TokenType:    tokenType,
		RefreshToken: c.RefreshToken,
		Expiry:       c.Expiry,
	}
}

// TokenSource returns a source that always yields the startup token.
func (c *Credentials) TokenSource() oauth2.TokenSource {
	token := c.Token()
	// zero expiry keeps oauth2 from treating an aged token as invalid; upstream decides
	token.Expiry = time.Time{}
	return oauth2.StaticTokenSource(token)
}

// Masked returns a short prefix of a secret suitable for diagnostics.
func Masked(secret string) string {
	if len(secret) <= 6 {
		return strings.Repeat("*", len(secret))
	}
	return secret[:6] + "..."
}
