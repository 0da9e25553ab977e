package bpmcp

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/viant/beatport-mcp/beatport"
	"github.com/viant/beatport-mcp/credentials"
	"github.com/viant/beatport-mcp/server"
	"github.com/viant/beatport-mcp/tool"
	"github.com/viant/beatport-mcp/toolset"
	"github.com/viant/mcp-protocol/schema"
)

const (
	DefaultName         = "beatport"
	DefaultVersion      = "1.0"
	DefaultInstructions = "Tools for the Beatport v4 catalog: search, tracks, releases, artists, labels, genres and charts. Results are raw Beatport JSON."
)

// ServerOptions defines options for configuring the MCP server
type ServerOptions struct {
	Name            string        `yaml:"name" json:"name"`
	Version         string        `yaml:"version" json:"version"`
	ProtocolVersion string        `yaml:"protocol" json:"protocol"`
	Instructions    string        `yaml:"instructions" json:"instructions"`
	LoggerName      string        `yaml:"loggerName" json:"loggerName"`
	BaseURL         string        `yaml:"baseURL" json:"baseURL"`
	Timeout         time.Duration `yaml:"timeout" json:"timeout"`
	UserAgent       string        `yaml:"userAgent" json:"userAgent"`

	Credentials *credentials.Credentials `yaml:"-" json:"-"`
	Diagnostics *zerolog.Logger          `yaml:"-" json:"-"`
}

// NewServer creates a Beatport MCP server with the given options.
func NewServer(options *ServerOptions) (*server.Server, error) {
	if options == nil {
		return nil, fmt.Errorf("server options were nil")
	}
	if options.Credentials == nil {
		return nil, fmt.Errorf("credentials were nil")
	}
	if err := options.Credentials.Validate(); err != nil {
		return nil, err
	}
	client := beatport.New(options.Credentials,
		beatport.WithBaseURL(options.BaseURL),
		beatport.WithTimeout(options.Timeout),
		beatport.WithUserAgent(options.UserAgent),
	)
	registry := tool.NewRegistry()
	if err := toolset.New(client).Register(registry); err != nil {
		return nil, fmt.Errorf("failed to register tools: %w", err)
	}

	name := options.Name
	if name == "" {
		name = DefaultName
	}
	version := options.Version
	if version == "" {
		version = DefaultVersion
	}
	instructions := options.Instructions
	if instructions == "" {
		instructions = DefaultInstructions
	}
	serverOptions := []server.Option{
		server.WithRegistry(registry),
		server.WithImplementation(schema.Implementation{Name: name, Version: version}),
		server.WithProtocolVersion(options.ProtocolVersion),
		server.WithInstructions(instructions),
	}
	if options.LoggerName != "" {
		serverOptions = append(serverOptions, server.WithLoggerName(options.LoggerName))
	}
	if options.Diagnostics != nil {
		serverOptions = append(serverOptions, server.WithDiagnostics(*options.Diagnostics))
		options.Diagnostics.Debug().
			Str("baseURL", client.BaseURL()).
			Str("clientId", client.ClientID()).
			Strs("tools", registry.Names()).
			Msg("beatport client configured")
	}
	return server.New(serverOptions...)
}
