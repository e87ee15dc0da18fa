package server

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

func pathSchema() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"path": map[string]interface{}{
				"type":        "string",
				"description": "Absolute path or http(s) URL of the source image",
			},
		},
		"required": []string{"path"},
	}
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	return []Tool{
		{
			Name:        "thumb_inspect",
			Description: "Create a thumbnail job for an image and return its state: remote or local, format, and any validation error.",
			InputSchema: pathSchema(),
		},
		{
			Name:        "thumb_detect_format",
			Description: "Create a thumbnail job and detect its mime-type: from the file content for local images, from the URL extension for remote ones.",
			InputSchema: pathSchema(),
		},
		{
			Name:        "thumb_operations",
			Description: "List the plugin operations registered with this server.",
			InputSchema: map[string]interface{}{
				"type":       "object",
				"properties": map[string]interface{}{},
			},
		},
	}
}

// handleToolsList returns the list of available tools
func (s *Server) handleToolsList(req *MCPRequest) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"tools": GetToolDefinitions(),
		},
	}
}
