// Package conv holds internal value coercions, mainly for JSON-RPC request ids
// that arrive as float64, json.Number or string depending on the decoder.
package conv
