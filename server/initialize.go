package server

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/viant/jsonrpc"
	"github.com/viant/mcp-protocol/schema"
)

// Initialize handles the initialize method
func (h *Handler) Initialize(ctx context.Context, request *jsonrpc.Request) (*schema.InitializeResult, *jsonrpc.Error) {
	initRequest := schema.InitializeRequest{Method: schema.MethodInitialize}
	if hasParams(request) {
		if err := json.Unmarshal(request.Params, &initRequest.Params); err != nil {
			return nil, jsonrpc.NewInvalidParamsError(fmt.Sprintf("failed to parse %v", err), request.Params)
		}
	}
	result := schema.InitializeResult{
		ProtocolVersion: h.negotiate(initRequest.Params.ProtocolVersion),
		ServerInfo:      h.info,
		Capabilities: schema.ServerCapabilities{
			Tools: &schema.ServerCapabilitiesTools{},
		},
		Instructions: h.instructions,
	}
	h.diag.Info().
		Str("client", initRequest.Params.ClientInfo.Name).
		Str("clientVersion", initRequest.Params.ClientInfo.Version).
		Str("protocol", initRequest.Params.ProtocolVersion).
		Str("negotiated", result.ProtocolVersion).
		Msg("client initialized session")
	return &result, nil
}

// Ping handles the ping method
func (h *Handler) Ping(ctx context.Context, request *jsonrpc.Request) (*schema.PingResult, *jsonrpc.Error) {
	return &schema.PingResult{}, nil
}

// negotiate echoes a supported client version, otherwise offers the server version.
func (h *Handler) negotiate(requested string) string {
	if requested == h.protocolVersion {
		return requested
	}
	for _, candidate := range supportedProtocolVersions {
		if candidate == requested {
			return requested
		}
	}
	return h.protocolVersion
}

func hasParams(request *jsonrpc.Request) bool {
	return len(request.Params) > 0 && string(request.Params) != "null"
}
