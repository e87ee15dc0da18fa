// Package server implements an MCP (Model Context Protocol) server for
// inspecting thumbnail jobs.
//
// The server speaks JSON-RPC 2.0, one request per line:
//   - Input: JSON-RPC requests on the reader passed to Run (stdin in production)
//   - Output: JSON-RPC responses on the writer passed to Run (stdout)
//
// Supported MCP methods:
//   - initialize: Protocol handshake
//   - tools/list: Enumerate available tools
//   - tools/call: Execute a tool with arguments
//   - ping: Health check
//
// # Available Tools
//
//   - thumb_inspect: Create a job and return its state
//   - thumb_detect_format: Create a job and detect its mime-type
//   - thumb_operations: List registered plugin operations
//
// # Error Handling
//
// A source that fails validation is reported in the returned job state
// (has_error, error_message), not as a JSON-RPC error. JSON-RPC errors are
// reserved for protocol problems:
//   - -32601: unknown method
//   - -32602: malformed tools/call params
//   - -32000: unknown tool or invalid tool arguments
package server
