package tool

import (
	"fmt"
	"strings"

	"github.com/viant/mcp-protocol/schema"
)

// TextResult wraps text in a successful tool result
func TextResult(text string) *schema.CallToolResult {
	return &schema.CallToolResult{
		Content: []schema.CallToolResultContentElem{
			schema.TextContent{Type: "text", Text: text},
		},
	}
}

// JSONResult returns the raw JSON document as text content; objects are also
// exposed as structured content.
func JSONResult(data []byte, structured map[string]interface{}) *schema.CallToolResult {
	ret := TextResult(string(data))
	if structured != nil {
		ret.StructuredContent = structured
	}
	return ret
}

// ErrorResult reports a failed call inside the result so the client can see it.
func ErrorResult(err error) *schema.CallToolResult {
	isError := true
	ret := TextResult(fmt.Sprintf("Error: %v", err))
	ret.IsError = &isError
	return ret
}

// IsError returns true when result is flagged as an error
func IsError(result *schema.CallToolResult) bool {
	return result != nil && result.IsError != nil && *result.IsError
}

// Text concatenates all text content of result. Elements decoded from JSON
// arrive as maps, locally built ones as schema.TextContent.
func Text(result *schema.CallToolResult) string {
	if result == nil {
		return ""
	}
	var builder strings.Builder
	for _, elem := range result.Content {
		switch actual := elem.(type) {
		case schema.TextContent:
			builder.WriteString(actual.Text)
		case *schema.TextContent:
			if actual != nil {
				builder.WriteString(actual.Text)
			}
		case map[string]interface{}:
			if actual["type"] == "text" {
				if text, ok := actual["text"].(string); ok {
					builder.WriteString(text)
				}
			}
		}
	}
	return builder.String()
}
