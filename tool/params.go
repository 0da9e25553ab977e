package tool

import (
	"encoding/json"

	"github.com/viant/mcp-protocol/schema"
)

// NewCallParams builds tools/call parameters from a typed input
func NewCallParams[I any](name string, input *I) (*schema.CallToolRequestParams, error) {
	ret := &schema.CallToolRequestParams{Name: name, Arguments: map[string]interface{}{}}
	if input == nil {
		return ret, nil
	}
	data, err := json.Marshal(input)
	if err != nil {
		return nil, err
	}
	if err = json.Unmarshal(data, &ret.Arguments); err != nil {
		return nil, err
	}
	return ret, nil
}
