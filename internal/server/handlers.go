package server

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/ironsheep/thumbjob/internal/thumb"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "thumb_inspect").
	Name string `json:"name"`

	// Arguments contains the tool-specific parameters as JSON.
	Arguments json.RawMessage `json:"arguments"`
}

// handleToolsCall processes a tools/call request and executes the specified tool.
//
// The response wraps the tool result in MCP's content format:
//
//	{
//	  "content": [{"type": "text", "text": "<JSON result>"}]
//	}
//
// Tool execution errors return a JSON-RPC error response with code -32000.
// A job that fails validation is not a tool error; its state is returned
// with has_error set.
func (s *Server) handleToolsCall(req *MCPRequest) *MCPResponse {
	var params ToolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return s.errorResponse(req.ID, -32602, "Invalid params", err.Error())
	}

	result, err := s.executeTool(params.Name, params.Arguments)
	if err != nil {
		return s.errorResponse(req.ID, -32000, "Tool execution failed", err.Error())
	}

	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"content": []map[string]interface{}{
				{
					"type": "text",
					"text": mustMarshalJSON(result),
				},
			},
		},
	}
}

// executeTool dispatches tool execution to the appropriate handler function.
func (s *Server) executeTool(name string, args json.RawMessage) (interface{}, error) {
	switch name {
	case "thumb_inspect":
		return s.handleThumbInspect(args)
	case "thumb_detect_format":
		return s.handleThumbDetectFormat(args)
	case "thumb_operations":
		return s.handleThumbOperations()
	default:
		return nil, fmt.Errorf("unknown tool: %s", name)
	}
}

// errorResponse creates a JSON-RPC error response with the given details.
func (s *Server) errorResponse(id interface{}, code int, message, data string) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      id,
		Error: &MCPError{
			Code:    code,
			Message: message,
			Data:    data,
		},
	}
}

// mustMarshalJSON converts a value to pretty-printed JSON string.
// On marshal failure, returns an empty string.
func mustMarshalJSON(v interface{}) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}

type thumbPathArgs struct {
	Path string `json:"path"`
}

func (a *thumbPathArgs) parse(args json.RawMessage) error {
	if err := json.Unmarshal(args, a); err != nil {
		return err
	}
	if a.Path == "" {
		return errors.New("path is required")
	}
	return nil
}

// newJob creates a job bound to the server's registry. Validation failures
// are recorded in the job's state, so the error is not returned.
func (s *Server) newJob(path string) *thumb.Job {
	job, _ := thumb.New(path, thumb.WithRegistry(s.registry), thumb.WithLogger(s.logger))
	return job
}

func (s *Server) handleThumbInspect(args json.RawMessage) (interface{}, error) {
	var a thumbPathArgs
	if err := a.parse(args); err != nil {
		return nil, err
	}
	return s.newJob(a.Path).Snapshot(), nil
}

func (s *Server) handleThumbDetectFormat(args json.RawMessage) (interface{}, error) {
	var a thumbPathArgs
	if err := a.parse(args); err != nil {
		return nil, err
	}
	job := s.newJob(a.Path)
	// Failures land in the job state.
	_, _ = job.DetectFormat()
	return job.Snapshot(), nil
}

type operationsResult struct {
	Operations []string `json:"operations"`
}

func (s *Server) handleThumbOperations() (interface{}, error) {
	return operationsResult{Operations: s.registry.Names()}, nil
}
