package server

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/viant/beatport-mcp/tool"
	"github.com/viant/jsonrpc/transport/server/stdio"
	"github.com/viant/mcp-protocol/schema"
)

// Option is a function that configures the server.
type Option func(s *Server) error

// WithImplementation sets the server implementation.
func WithImplementation(implementation schema.Implementation) Option {
	return func(s *Server) error {
		s.info = implementation
		return nil
	}
}

// WithRegistry sets the tool registry.
func WithRegistry(registry *tool.Registry) Option {
	return func(s *Server) error {
		if registry == nil {
			return fmt.Errorf("registry was nil")
		}
		s.registry = registry
		return nil
	}
}

// WithProtocolVersion sets the protocol version reported on initialize.
func WithProtocolVersion(version string) Option {
	return func(s *Server) error {
		if version != "" {
			s.protocolVersion = version
		}
		return nil
	}
}

// WithInstructions sets the instructions returned on initialize.
func WithInstructions(instructions string) Option {
	return func(s *Server) error {
		if instructions != "" {
			s.instructions = &instructions
		}
		return nil
	}
}

// WithLoggerName sets the logger name.
func WithLoggerName(name string) Option {
	return func(s *Server) error {
		s.loggerName = name
		return nil
	}
}

// WithDiagnostics sets the process diagnostics logger.
func WithDiagnostics(logger zerolog.Logger) Option {
	return func(s *Server) error {
		s.diag = logger
		return nil
	}
}

// WithStdioOptions passes options to the stdio transport.
func WithStdioOptions(options ...stdio.Option) Option {
	return func(s *Server) error {
		s.stdioServerOption = append(s.stdioServerOption, options...)
		return nil
	}
}
