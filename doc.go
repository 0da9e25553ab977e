// Package bpmcp exposes the Beatport v4 API to MCP clients over stdio.
//
// Credentials come from CLIENT_ID, ACCESS_TOKEN and REFRESH_TOKEN (or the
// matching flags) optionally backed by a JSON token file; every tool call is
// forwarded as a single bearer authenticated request.
package bpmcp
