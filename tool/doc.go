// Package tool provides a typed tool registry for the MCP server.
//
// Tools are registered with a Go input type; the JSON input schema advertised
// in tools/list is derived from its fields (json name, "description" and
// "choice" tags, pointer or omitempty fields are optional).
package tool
