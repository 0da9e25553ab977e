package server

import (
	"context"
	"encoding/json"

	"github.com/viant/jsonrpc"
	"github.com/viant/jsonrpc/transport"
	"github.com/viant/mcp-protocol/schema"
)

// Operations lists the client calls the server answers
type Operations interface {
	Initialize(ctx context.Context) (*schema.InitializeResult, error)
	Ping(ctx context.Context) (*schema.PingResult, error)
	ListTools(ctx context.Context, cursor *string) (*schema.ListToolsResult, error)
	CallTool(ctx context.Context, params *schema.CallToolRequestParams) (*schema.CallToolResult, error)
	SetLevel(ctx context.Context, params *schema.SetLevelRequestParams) (*schema.SetLevelResult, error)
}

// Adapter adapts a server Handler to Operations without a transport
type Adapter struct {
	handler *Handler
}

func call[T any](ctx context.Context, handler *Handler, method string, params interface{}) (*T, error) {
	req, err := jsonrpc.NewRequest(method, params)
	if err != nil {
		return nil, err
	}
	response := &jsonrpc.Response{}
	handler.Serve(ctx, req, response)
	if response.Error != nil {
		return nil, response.Error
	}
	var result T
	if err = json.Unmarshal(response.Result, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Initialize initializes the session and sends notifications/initialized
func (a *Adapter) Initialize(ctx context.Context) (*schema.InitializeResult, error) {
	params := &schema.InitializeRequestParams{
		ProtocolVersion: schema.LatestProtocolVersion,
		ClientInfo:      schema.Implementation{Name: "adapter", Version: "0.1"},
	}
	result, err := call[schema.InitializeResult](ctx, a.handler, schema.MethodInitialize, params)
	if err != nil {
		return nil, err
	}
	a.handler.OnNotification(ctx, &jsonrpc.Notification{Method: schema.MethodNotificationInitialized})
	return result, nil
}

// Ping pings the server
func (a *Adapter) Ping(ctx context.Context) (*schema.PingResult, error) {
	return call[schema.PingResult](ctx, a.handler, schema.MethodPing, &schema.PingRequestParams{})
}

// ListTools lists tools
func (a *Adapter) ListTools(ctx context.Context, cursor *string) (*schema.ListToolsResult, error) {
	return call[schema.ListToolsResult](ctx, a.handler, schema.MethodToolsList, &schema.ListToolsRequestParams{Cursor: cursor})
}

// CallTool calls a tool
func (a *Adapter) CallTool(ctx context.Context, params *schema.CallToolRequestParams) (*schema.CallToolResult, error) {
	return call[schema.CallToolResult](ctx, a.handler, schema.MethodToolsCall, params)
}

// SetLevel sets the logging level
func (a *Adapter) SetLevel(ctx context.Context, params *schema.SetLevelRequestParams) (*schema.SetLevelResult, error) {
	return call[schema.SetLevelResult](ctx, a.handler, schema.MethodLoggingSetLevel, params)
}

// Handler returns the underlying connection handler
func (a *Adapter) Handler() *Handler {
	return a.handler
}

// AsClient returns an in-process client; notifications are discarded.
func (s *Server) AsClient(ctx context.Context) *Adapter {
	return s.AsClientWithNotifier(ctx, discard{})
}

// AsClientWithNotifier returns an in-process client delivering notifications to notifier.
func (s *Server) AsClientWithNotifier(ctx context.Context, notifier transport.Notifier) *Adapter {
	return &Adapter{handler: s.newHandler(ctx, notifier)}
}

type discard struct{}

func (discard) Notify(context.Context, *jsonrpc.Notification) error { return nil }

var _ Operations = (*Adapter)(nil)
