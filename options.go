package bpmcp

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/viant/afs"
	"github.com/viant/beatport-mcp/credentials"
	"gopkg.in/yaml.v3"
)

// Options represents command line and environment settings
type Options struct {
	ClientID     string        `long:"client-id" env:"CLIENT_ID" description:"beatport oauth client id"`
	AccessToken  string        `long:"access-token" env:"ACCESS_TOKEN" description:"beatport bearer access token"`
	RefreshToken string        `long:"refresh-token" env:"REFRESH_TOKEN" description:"beatport refresh token"`
	BaseURL      string        `short:"u" long:"base-url" env:"BEATPORT_API_URL" description:"beatport api root"`
	Timeout      time.Duration `short:"t" long:"timeout" description:"upstream request timeout, e.g. 30s"`
	UserAgent    string        `long:"user-agent" description:"upstream User-Agent header"`
	TokenFile    string        `short:"f" long:"token-file" env:"BEATPORT_TOKEN_FILE" description:"json token file URL"`
	ConfigURL    string        `short:"c" long:"config" description:"yaml server options URL"`
	LogLevel     string        `short:"l" long:"log-level" env:"BEATPORT_LOG_LEVEL" description:"diagnostics level" default:"info"`

	credentials *credentials.Credentials
	server      *ServerOptions
}

// Init loads the optional config and token files; flag and environment values take precedence.
func (o *Options) Init(ctx context.Context) error {
	o.server = &ServerOptions{}
	if o.ConfigURL != "" {
		if err := o.loadConfig(ctx); err != nil {
			return err
		}
	}
	o.credentials = &credentials.Credentials{
		ClientID:     strings.TrimSpace(o.ClientID),
		AccessToken:  strings.TrimSpace(o.AccessToken),
		RefreshToken: strings.TrimSpace(o.RefreshToken),
	}
	o.credentials.Merge(credentials.FromEnv())
	if o.TokenFile != "" {
		fromFile, err := credentials.Load(ctx, o.TokenFile)
		if err != nil {
			return err
		}
		o.credentials.Merge(fromFile)
	}
	if o.BaseURL != "" {
		o.server.BaseURL = o.BaseURL
	}
	if o.Timeout > 0 {
		o.server.Timeout = o.Timeout
	}
	if o.UserAgent != "" {
		o.server.UserAgent = o.UserAgent
	}
	o.server.Credentials = o.credentials
	return nil
}

func (o *Options) loadConfig(ctx context.Context) error {
	fs := afs.New()
	data, err := fs.DownloadWithURL(ctx, o.ConfigURL)
	if err != nil {
		return fmt.Errorf("failed to read config %v: %w", o.ConfigURL, err)
	}
	if err = yaml.Unmarshal(data, o.server); err != nil {
		return fmt.Errorf("failed to parse config %v: %w", o.ConfigURL, err)
	}
	return nil
}

// Validate checks that the process can start
func (o *Options) Validate() error {
	if o.credentials == nil {
		return fmt.Errorf("options were not initialized")
	}
	if o.Timeout < 0 {
		return fmt.Errorf("invalid timeout: %v", o.Timeout)
	}
	return o.credentials.Validate()
}

// Credentials returns the effective credentials, available after Init
func (o *Options) Credentials() *credentials.Credentials {
	return o.credentials
}

// ServerOptions returns the effective server options, available after Init
func (o *Options) ServerOptions() *ServerOptions {
	return o.server
}
