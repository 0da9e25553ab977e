package server

import (
	"context"
	"errors"

	"github.com/rs/zerolog"
	"github.com/viant/beatport-mcp/internal/collection"
	"github.com/viant/beatport-mcp/tool"
	"github.com/viant/jsonrpc/transport"
	"github.com/viant/mcp-protocol/schema"
)

var supportedProtocolVersions = []string{"2025-06-18", "2025-03-26", "2024-11-05"}

// Server represents MCP protocol handler
type Server struct {
	activeContexts *collection.SyncMap[int, *activeContext]
	info           schema.Implementation
	registry       *tool.Registry
	diag           zerolog.Logger

	instructions    *string
	protocolVersion string
	loggerName      string

	stdioServer
}

// Registry returns the tool registry served by this server
func (s *Server) Registry() *tool.Registry {
	return s.registry
}

// CancelOperation cancels an in-flight request
func (s *Server) CancelOperation(id int) bool {
	if active, ok := s.activeContexts.Take(id); ok {
		active.CancelFunc()
		return true
	}
	return false
}

func (s *Server) completeOperation(id int, active *activeContext) {
	if current, ok := s.activeContexts.Get(id); ok && current == active {
		s.activeContexts.Delete(id)
	}
	active.CancelFunc()
}

// NewHandler creates a new handler instance
func (s *Server) NewHandler(ctx context.Context, transport transport.Transport) transport.Handler {
	return s.newHandler(ctx, transport)
}

func (s *Server) newHandler(_ context.Context, notifier transport.Notifier) *Handler {
	ret := &Handler{
		Server:   s,
		Notifier: notifier,
		level:    &levelHolder{},
	}
	ret.Logger = NewLogger(s.loggerName, ret.level, notifier)
	return ret
}

// New creates a new Server instance
func New(options ...Option) (*Server, error) {
	s := &Server{
		info: schema.Implementation{
			Name:    "beatport",
			Version: "1.0",
		},
		loggerName:      "beatport",
		protocolVersion: schema.LatestProtocolVersion,
		activeContexts:  collection.NewSyncMap[int, *activeContext](),
		diag:            zerolog.Nop(),
	}
	for _, option := range options {
		if err := option(s); err != nil {
			return nil, err
		}
	}
	if s.registry == nil {
		return nil, errors.New("no tool registry specified")
	}
	return s, nil
}
