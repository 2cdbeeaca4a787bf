package commands

import (
	"encoding/json"
	"testing"

	"github.com/abdul-hamid-achik/rgen/pkg/generator"
	"github.com/abdul-hamid-achik/rgen/pkg/scanner"
)

func TestJSONResponse_Success(t *testing.T) {
	resp := JSONResponse{
		Success: true,
		Data:    map[string]string{"key": "value"},
	}

	data, err := json.Marshal(resp)
	if err != nil {
		t.Fatalf("Failed to marshal: %v", err)
	}

	var decoded JSONResponse
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Failed to unmarshal: %v", err)
	}

	if !decoded.Success {
		t.Error("Expected Success to be true")
	}
	if decoded.Error != "" {
		t.Error("Expected Error to be empty for success response")
	}
}

func TestJSONResponse_Error(t *testing.T) {
	data, err := json.Marshal(JSONResponse{Success: false, Error: "something went wrong"})
	if err != nil {
		t.Fatalf("Failed to marshal: %v", err)
	}

	var decoded map[string]any
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Failed to unmarshal: %v", err)
	}

	if decoded["success"] != false {
		t.Error("Expected success to be false")
	}
	if _, ok := decoded["data"]; ok {
		t.Error("Expected data to be omitted for error response")
	}
}

func TestNewGenerateOutput(t *testing.T) {
	groups, err := scanner.Scan("enum A {\n case a(id: Int)\n case b\n}\nenum B {\n case c\n}")
	if err != nil {
		t.Fatalf("Scan() error = %v", err)
	}
	result := &generator.Result{Input: "In.swift", Output: "Out.swift", Groups: groups, Bytes: 42}

	out := newGenerateOutput(result, "")
	if out.Emitter != generator.EmitterTemplate {
		t.Errorf("Emitter = %q, want %q", out.Emitter, generator.EmitterTemplate)
	}
	if out.Groups != 2 || out.Cases != 3 {
		t.Errorf("Groups, Cases = %d, %d; want 2, 3", out.Groups, out.Cases)
	}
	if out.Bytes != 42 {
		t.Errorf("Bytes = %d, want 42", out.Bytes)
	}

	data, err := json.Marshal(out)
	if err != nil {
		t.Fatalf("Failed to marshal: %v", err)
	}
	var decoded map[string]any
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Failed to unmarshal: %v", err)
	}
	if _, ok := decoded["conflicts"]; ok {
		t.Error("Expected conflicts to be omitted when empty")
	}
}

func TestWatchEvent_JSON(t *testing.T) {
	data, err := json.Marshal(WatchEvent{Time: "12:00:00", Status: "error", Error: "boom"})
	if err != nil {
		t.Fatalf("Failed to marshal: %v", err)
	}

	want := `{"time":"12:00:00","status":"error","error":"boom"}`
	if string(data) != want {
		t.Errorf("json = %s, want %s", data, want)
	}
}
