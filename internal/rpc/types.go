// Package rpc is the dashboard's JSON-RPC 2.0 client for a single Ethereum
// endpoint, plus the helpers that turn the node's hex-encoded quantities
// into display strings.
//
// Every numeric value on the wire is a hex string ("0x10", "0x3b9aca00").
// The client hands those strings back untouched; conversion happens in
// format.go so that a malformed value degrades to a placeholder instead of
// failing the whole poll.
package rpc

import "encoding/json"

// Request is a JSON-RPC 2.0 request envelope.
//
//	{"jsonrpc": "2.0", "id": 1, "method": "eth_blockNumber", "params": []}
//
// Params must serialize as [] rather than null when a method takes no
// arguments; some providers reject null.
type Request struct {
	JSONRPC string        `json:"jsonrpc"`
	ID      int           `json:"id"`
	Method  string        `json:"method"`
	Params  []interface{} `json:"params"`
}

// Response is a JSON-RPC 2.0 response envelope.
//
// Result stays raw because its shape depends on the method. Error is kept
// raw as well: it is only ever echoed back inside an error message, and
// nodes attach arbitrary data members to it.
type Response struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      int             `json:"id"`
	Result  json.RawMessage `json:"result"`
	Error   json.RawMessage `json:"error,omitempty"`
}

// hasError reports whether the response carries a non-null error member.
func (r *Response) hasError() bool {
	return len(r.Error) > 0 && string(r.Error) != "null"
}
