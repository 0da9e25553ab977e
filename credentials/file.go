package credentials

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/viant/afs"
)

// tokenFile mirrors the JSON persisted by token helpers: the raw Beatport token
// response plus either an ISO "expires_at" or an oauth2 style "expiry".
type tokenFile struct {
	ClientID     string `json:"client_id"`
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresAt    string `json:"expires_at"`
	Expiry       string `json:"expiry"`
}

var expiryLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999",
	"2006-01-02T15:04:05",
}

// Load reads a token file from any afs supported URL
func Load(ctx context.Context, URL string) (*Credentials, error) {
	fs := afs.New()
	data, err := fs.DownloadWithURL(ctx, URL)
	if err != nil {
		return nil, fmt.Errorf("failed to read token file %v: %w", URL, err)
	}
	return Parse(data)
}

// Parse decodes token file content
func Parse(data []byte) (*Credentials, error) {
	file := &tokenFile{}
	if err := json.Unmarshal(data, file); err != nil {
		return nil, fmt.Errorf("failed to parse token file: %w", err)
	}
	ret := &Credentials{
		ClientID:     strings.TrimSpace(file.ClientID),
		AccessToken:  strings.TrimSpace(file.AccessToken),
		RefreshToken: strings.TrimSpace(file.RefreshToken),
	}
	for _, candidate := range []string{file.Expiry, file.ExpiresAt} {
		if candidate == "" {
			continue
		}
		expiry, err := parseExpiry(candidate)
		if err != nil {
			return nil, err
		}
		ret.Expiry = expiry
		break
	}
	return ret, nil
}

func parseExpiry(value string) (time.Time, error) {
	for _, layout := range expiryLayouts {
		if ts, err := time.ParseInLocation(layout, value, time.Local); err == nil {
			return ts, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid token expiry: %q", value)
}
