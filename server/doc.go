// Package server provides the MCP server that fronts the tool registry.
//
// It decodes JSON-RPC requests coming from github.com/viant/jsonrpc transports
// and serves the MCP lifecycle and tool methods:
//   - initialize, ping
//   - tools/list, tools/call
//   - logging/setLevel, with notifications/message sent back to the client
//   - notifications/initialized, notifications/cancelled
//
// Callers construct a server via `server.New` and expose it over stdio:
//
//	s, _ := server.New(server.WithRegistry(registry))
//	log.Fatal(s.Stdio(ctx).ListenAndServe())
package server
