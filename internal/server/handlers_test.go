package server

import (
	"bytes"
	"context"
	"encoding/json"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ironsheep/thumbjob/internal/thumb"
)

// createTestImageFile writes a small PNG into a temp dir and returns its path
func createTestImageFile(t *testing.T) string {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, 8, 8))
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			img.Set(x, y, color.RGBA{0, 255, 0, 255})
		}
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("failed to encode image: %v", err)
	}

	path := filepath.Join(t.TempDir(), "handler-test.png")
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		t.Fatalf("failed to write image: %v", err)
	}
	return path
}

// callTool sends a tools/call request and returns the response.
func callTool(t *testing.T, s *Server, name string, args interface{}) *MCPResponse {
	t.Helper()

	params := map[string]interface{}{
		"name":      name,
		"arguments": args,
	}
	paramsJSON, err := json.Marshal(params)
	if err != nil {
		t.Fatalf("failed to marshal params: %v", err)
	}

	resp := s.handleRequest(&MCPRequest{
		JSONRPC: "2.0",
		ID:      1,
		Method:  "tools/call",
		Params:  paramsJSON,
	})
	if resp == nil {
		t.Fatal("handleRequest returned nil")
	}
	return resp
}

// decodeContent unpacks the text content of a successful tool response into v.
func decodeContent(t *testing.T, resp *MCPResponse, v interface{}) {
	t.Helper()

	if resp.Error != nil {
		t.Fatalf("Unexpected error: %+v", resp.Error)
	}
	result := resp.Result.(map[string]interface{})
	content := result["content"].([]map[string]interface{})
	if len(content) != 1 {
		t.Fatalf("content: got %d items, want 1", len(content))
	}
	text := content[0]["text"].(string)
	if err := json.Unmarshal([]byte(text), v); err != nil {
		t.Fatalf("failed to decode content %q: %v", text, err)
	}
}

func TestHandleToolsCall_Inspect(t *testing.T) {
	s := New()
	imgPath := createTestImageFile(t)

	var state thumb.State
	decodeContent(t, callTool(t, s, "thumb_inspect", map[string]interface{}{"path": imgPath}), &state)

	if state.FileName != imgPath {
		t.Errorf("FileName: got %s, want %s", state.FileName, imgPath)
	}
	if state.Remote {
		t.Error("Remote should be false")
	}
	if state.HasError {
		t.Errorf("HasError should be false: %s", state.ErrorMessage)
	}
}

func TestHandleToolsCall_InspectRemote(t *testing.T) {
	s := New()

	var state thumb.State
	decodeContent(t, callTool(t, s, "thumb_inspect", map[string]interface{}{"path": "https://example.com/a.png"}), &state)

	if !state.Remote {
		t.Error("Remote should be true")
	}
	if state.HasError {
		t.Error("HasError should be false")
	}
}

func TestHandleToolsCall_InspectMissing(t *testing.T) {
	s := New()
	missing := filepath.Join(t.TempDir(), "missing.png")

	var state thumb.State
	decodeContent(t, callTool(t, s, "thumb_inspect", map[string]interface{}{"path": missing}), &state)

	if !state.HasError {
		t.Fatal("HasError should be true")
	}
	if state.ErrorMessage != "image file not found: "+missing {
		t.Errorf("ErrorMessage: got %q", state.ErrorMessage)
	}
}

func TestHandleToolsCall_DetectFormat(t *testing.T) {
	s := New()
	imgPath := createTestImageFile(t)

	var state thumb.State
	decodeContent(t, callTool(t, s, "thumb_detect_format", map[string]interface{}{"path": imgPath}), &state)

	if state.Format != "image/png" {
		t.Errorf("Format: got %s, want image/png", state.Format)
	}
	if state.HasError {
		t.Errorf("HasError should be false: %s", state.ErrorMessage)
	}
}

func TestHandleToolsCall_DetectFormatRemote(t *testing.T) {
	s := New()

	var state thumb.State
	decodeContent(t, callTool(t, s, "thumb_detect_format", map[string]interface{}{"path": "http://example.com/a.jpg?size=large"}), &state)

	if state.HasError {
		t.Fatalf("HasError should be false: %s", state.ErrorMessage)
	}
	if !state.Remote {
		t.Error("Remote should be true")
	}
	if state.Format != "image/jpeg" {
		t.Errorf("Format: got %s, want image/jpeg", state.Format)
	}
}

func TestHandleToolsCall_DetectFormatRemoteNoExtension(t *testing.T) {
	s := New()

	var state thumb.State
	decodeContent(t, callTool(t, s, "thumb_detect_format", map[string]interface{}{"path": "http://example.com/a"}), &state)

	if !state.HasError {
		t.Fatal("HasError should be true")
	}
	if !strings.Contains(state.ErrorMessage, "remote") {
		t.Errorf("ErrorMessage: got %q", state.ErrorMessage)
	}
}

func TestHandleToolsCall_OperationsDefaultEmpty(t *testing.T) {
	var result operationsResult
	decodeContent(t, callTool(t, New(), "thumb_operations", map[string]interface{}{}), &result)

	if len(result.Operations) != 0 {
		t.Errorf("Operations: got %v, want none", result.Operations)
	}
}

func TestHandleToolsCall_Operations(t *testing.T) {
	noop := func(ctx context.Context, j *thumb.Job, args map[string]any) (any, error) { return nil, nil }
	reg := thumb.NewRegistry()
	if err := reg.Import(thumb.PluginFunc{
		PluginName: "resize",
		Ops:        map[string]thumb.Operation{"resize": noop, "adaptiveResize": noop},
	}); err != nil {
		t.Fatalf("Import failed: %v", err)
	}
	s := New(WithRegistry(reg))

	var result operationsResult
	decodeContent(t, callTool(t, s, "thumb_operations", map[string]interface{}{}), &result)

	if len(result.Operations) != 2 || result.Operations[0] != "adaptiveResize" || result.Operations[1] != "resize" {
		t.Errorf("Operations: got %v", result.Operations)
	}

	var state thumb.State
	decodeContent(t, callTool(t, s, "thumb_inspect", map[string]interface{}{"path": "https://example.com/a.png"}), &state)
	if len(state.Imported) != 1 || state.Imported[0] != "resize" {
		t.Errorf("jobs should share the server registry, Imported: %v", state.Imported)
	}
}

func TestHandleToolsCall_Errors(t *testing.T) {
	s := New()

	tests := []struct {
		name string
		tool string
		args interface{}
	}{
		{"unknown tool", "image_crop", map[string]interface{}{"path": "/x.png"}},
		{"missing path", "thumb_inspect", map[string]interface{}{}},
		{"wrong path type", "thumb_detect_format", map[string]interface{}{"path": 12}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := callTool(t, s, tt.tool, tt.args)
			if resp.Error == nil {
				t.Fatal("expected an error response")
			}
			if resp.Error.Code != -32000 {
				t.Errorf("Error code: got %d, want -32000", resp.Error.Code)
			}
		})
	}
}

func TestHandleToolsCall_InvalidParams(t *testing.T) {
	s := New()
	resp := s.handleRequest(&MCPRequest{
		JSONRPC: "2.0",
		ID:      1,
		Method:  "tools/call",
		Params:  json.RawMessage(`"not an object"`),
	})

	if resp == nil || resp.Error == nil {
		t.Fatal("expected an error response")
	}
	if resp.Error.Code != -32602 {
		t.Errorf("Error code: got %d, want -32602", resp.Error.Code)
	}
}
