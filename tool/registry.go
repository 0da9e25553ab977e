package tool

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/viant/jsonrpc"
	"github.com/viant/mcp-protocol/schema"
)

// Handler serves one tool call with raw JSON arguments
type Handler func(ctx context.Context, arguments []byte) (*schema.CallToolResult, *jsonrpc.Error)

// Func is a typed tool implementation
type Func[I any] func(ctx context.Context, input *I) (*schema.CallToolResult, *jsonrpc.Error)

type entry struct {
	tool     schema.Tool
	required []string
	handler  Handler
}

// Registry holds tools in registration order
type Registry struct {
	mux     sync.RWMutex
	entries []*entry
	index   map[string]*entry
}

// Add registers a tool with a prebuilt input schema
func (r *Registry) Add(tool schema.Tool, handler Handler) error {
	if strings.TrimSpace(tool.Name) == "" {
		return fmt.Errorf("tool name was empty")
	}
	if handler == nil {
		return fmt.Errorf("tool %v handler was nil", tool.Name)
	}
	r.mux.Lock()
	defer r.mux.Unlock()
	if _, ok := r.index[tool.Name]; ok {
		return fmt.Errorf("tool %v already registered", tool.Name)
	}
	item := &entry{tool: tool, required: tool.InputSchema.Required, handler: handler}
	r.entries = append(r.entries, item)
	r.index[tool.Name] = item
	return nil
}

// Register adds a typed tool; its input schema is derived from I.
func Register[I any](r *Registry, name, description string, fn Func[I]) error {
	if fn == nil {
		return fmt.Errorf("tool %v function was nil", name)
	}
	inputSchema, err := InputSchema(new(I))
	if err != nil {
		return fmt.Errorf("failed to build %v input schema: %w", name, err)
	}
	tool := schema.Tool{Name: name, InputSchema: *inputSchema}
	if description != "" {
		tool.Description = &description
	}
	return r.Add(tool, func(ctx context.Context, arguments []byte) (*schema.CallToolResult, *jsonrpc.Error) {
		input := new(I)
		if len(arguments) > 0 {
			if err := json.Unmarshal(arguments, input); err != nil {
				return nil, jsonrpc.NewInvalidParamsError(fmt.Sprintf("invalid %v arguments: %v", name, err), arguments)
			}
		}
		return fn(ctx, input)
	})
}

// Names returns registered tool names in order
func (r *Registry) Names() []string {
	r.mux.RLock()
	defer r.mux.RUnlock()
	ret := make([]string, 0, len(r.entries))
	for _, item := range r.entries {
		ret = append(ret, item.tool.Name)
	}
	return ret
}

// Tools returns tool definitions in registration order
func (r *Registry) Tools() []schema.Tool {
	r.mux.RLock()
	defer r.mux.RUnlock()
	ret := make([]schema.Tool, 0, len(r.entries))
	for _, item := range r.entries {
		ret = append(ret, item.tool)
	}
	return ret
}

// Call dispatches a tools/call request
func (r *Registry) Call(ctx context.Context, params *schema.CallToolRequestParams) (*schema.CallToolResult, *jsonrpc.Error) {
	r.mux.RLock()
	item, ok := r.index[params.Name]
	r.mux.RUnlock()
	if !ok {
		return nil, jsonrpc.NewMethodNotFound(fmt.Sprintf("tool %v not found", params.Name), nil)
	}
	var arguments []byte
	if params.Arguments != nil {
		data, err := json.Marshal(params.Arguments)
		if err != nil {
			return nil, jsonrpc.NewInternalError(fmt.Sprintf("failed to marshal arguments: %v", err), nil)
		}
		arguments = data
	}
	if err := checkRequired(params.Name, item.required, arguments); err != nil {
		return nil, err
	}
	return item.handler(ctx, arguments)
}

func checkRequired(name string, required []string, arguments []byte) *jsonrpc.Error {
	if len(required) == 0 {
		return nil
	}
	values := map[string]json.RawMessage{}
	if len(arguments) > 0 {
		if err := json.Unmarshal(arguments, &values); err != nil {
			return jsonrpc.NewInvalidParamsError(fmt.Sprintf("invalid %v arguments: %v", name, err), arguments)
		}
	}
	var missing []string
	for _, field := range required {
		value, ok := values[field]
		if !ok || string(value) == "null" {
			missing = append(missing, field)
		}
	}
	if len(missing) > 0 {
		return jsonrpc.NewInvalidParamsError(fmt.Sprintf("tool %v: missing required argument(s): %v", name, strings.Join(missing, ", ")), arguments)
	}
	return nil
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{index: map[string]*entry{}}
}
