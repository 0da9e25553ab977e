package server

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/viant/beatport-mcp/tool"
	"github.com/viant/jsonrpc"
	"github.com/viant/mcp-protocol/schema"
)

// ListTools handles the tools/list method
func (h *Handler) ListTools(ctx context.Context, request *jsonrpc.Request) (*schema.ListToolsResult, *jsonrpc.Error) {
	listToolsRequest := &schema.ListToolsRequest{Method: request.Method}
	if hasParams(request) {
		if err := json.Unmarshal(request.Params, &listToolsRequest.Params); err != nil {
			return nil, jsonrpc.NewInvalidParamsError(fmt.Sprintf("failed to parse: %v", err), request.Params)
		}
	}
	return &schema.ListToolsResult{Tools: h.registry.Tools()}, nil
}

// CallTool handles the tools/call method
func (h *Handler) CallTool(ctx context.Context, request *jsonrpc.Request) (*schema.CallToolResult, *jsonrpc.Error) {
	callToolRequest := &schema.CallToolRequest{Method: request.Method}
	if err := json.Unmarshal(request.Params, &callToolRequest.Params); err != nil {
		return nil, jsonrpc.NewInvalidParamsError(fmt.Sprintf("failed to parse: %v", err), request.Params)
	}
	params := &callToolRequest.Params
	callID := uuid.New().String()
	started := time.Now()
	_ = h.Debug(ctx, map[string]interface{}{"callId": callID, "tool": params.Name, "event": "start"})

	result, rpcErr := h.registry.Call(ctx, params)

	elapsed := time.Since(started)
	event := h.diag.Info()
	switch {
	case rpcErr != nil:
		event = h.diag.Warn().Int("code", rpcErr.Code).Str("error", rpcErr.Message)
	case tool.IsError(result):
		event = h.diag.Warn().Str("error", tool.Text(result))
		_ = h.Warning(ctx, map[string]interface{}{"callId": callID, "tool": params.Name, "error": tool.Text(result)})
	}
	event.Str("callId", callID).
		Str("tool", params.Name).
		Dur("elapsed", elapsed).
		Int("inFlight", h.activeContexts.Len()).
		Msg("tool call completed")
	return result, rpcErr
}
