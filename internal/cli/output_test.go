package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/thenoetrevino/trackview/internal/models"
)

// ============================================================================
// Mock Types for Testing
// ============================================================================

type mockDataWithID struct {
	ID   int
	Name string
}

func (m mockDataWithID) GetID() int {
	return m.ID
}

type mockDataWithoutID struct {
	Name  string
	Value int
}

func newTestFormatter(jsonMode, quiet bool) (*OutputFormatter, *bytes.Buffer, *bytes.Buffer) {
	var out, errOut bytes.Buffer
	return &OutputFormatter{JSON: jsonMode, Quiet: quiet, Out: &out, Err: &errOut}, &out, &errOut
}

// ============================================================================
// Success Method Tests
// ============================================================================

func TestOutputFormatter_Success_JSON(t *testing.T) {
	f, out, _ := newTestFormatter(true, false)

	if err := f.Success(mockDataWithID{ID: 123, Name: "Test"}); err != nil {
		t.Fatalf("Success() error: %v", err)
	}

	var result map[string]any
	if err := json.Unmarshal(out.Bytes(), &result); err != nil {
		t.Fatalf("Failed to parse JSON output: %v", err)
	}
	if result["success"] != true {
		t.Error("Expected success to be true")
	}
	data := result["data"].(map[string]any)
	if data["Name"] != "Test" {
		t.Errorf("Expected data.Name to be 'Test', got %v", data["Name"])
	}
}

func TestOutputFormatter_Success_Quiet(t *testing.T) {
	tests := []struct {
		name string
		data any
		want string
	}{
		{"with ID", mockDataWithID{ID: 42}, "42\n"},
		{"without ID falls back to pretty print", mockDataWithoutID{Name: "x", Value: 1}, "{Name:x Value:1}\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, out, _ := newTestFormatter(false, true)
			if err := f.Success(tt.data); err != nil {
				t.Fatalf("Success() error: %v", err)
			}
			if out.String() != tt.want {
				t.Errorf("output = %q, want %q", out.String(), tt.want)
			}
		})
	}
}

// ============================================================================
// Error Method Tests
// ============================================================================

func TestOutputFormatter_Error_JSON(t *testing.T) {
	f, out, errOut := newTestFormatter(true, false)

	if err := f.ErrorWithSuggestion("ISSUE_NOT_FOUND", "issue #9 not found", "run seed first"); err != nil {
		t.Fatalf("ErrorWithSuggestion() error: %v", err)
	}
	if errOut.Len() != 0 {
		t.Errorf("JSON mode wrote to stderr: %q", errOut.String())
	}

	var result map[string]any
	if err := json.Unmarshal(out.Bytes(), &result); err != nil {
		t.Fatalf("Failed to parse JSON output: %v", err)
	}
	if result["success"] != false {
		t.Error("Expected success to be false")
	}
	errData := result["error"].(map[string]any)
	if errData["code"] != "ISSUE_NOT_FOUND" || errData["suggestion"] != "run seed first" {
		t.Errorf("Unexpected error payload: %v", errData)
	}
}

func TestOutputFormatter_Error_HumanReadable(t *testing.T) {
	f, out, errOut := newTestFormatter(false, false)

	if err := f.ErrorWithSuggestion("X", "something broke", "try again"); err != nil {
		t.Fatalf("ErrorWithSuggestion() error: %v", err)
	}
	if out.Len() != 0 {
		t.Errorf("human mode wrote errors to stdout: %q", out.String())
	}
	if !strings.Contains(errOut.String(), "something broke") || !strings.Contains(errOut.String(), "try again") {
		t.Errorf("stderr = %q", errOut.String())
	}
}

func TestOutputFormatter_Fail(t *testing.T) {
	f, _, errOut := newTestFormatter(false, false)
	want := errors.New("boom")

	got := f.Fail("CODE", want)
	if !errors.Is(got, want) {
		t.Errorf("Fail() = %v, want it to wrap the original error", got)
	}
	if !Reported(got) {
		t.Error("Fail() result should be marked as reported")
	}
	if Reported(want) {
		t.Error("plain errors should not be marked as reported")
	}
	if !strings.Contains(errOut.String(), "boom") {
		t.Errorf("stderr = %q", errOut.String())
	}
}

func TestOutputFormatter_Table(t *testing.T) {
	f, out, _ := newTestFormatter(false, false)

	err := f.Table([]any{"ID", "Name"}, [][]any{{1, "New"}, {10, "Closed"}})
	if err != nil {
		t.Fatalf("Table() error: %v", err)
	}
	for _, want := range []string{"ID", "Name", "New", "Closed", "10"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("table missing %q:\n%s", want, out.String())
		}
	}
}

// ============================================================================
// Exit Code Tests
// ============================================================================

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, ExitSuccess},
		{"usage", &UsageError{Err: errors.New("missing flag")}, ExitUsage},
		{"not found", fmt.Errorf("project %q: %w", "x", models.ErrNotFound), ExitNotFound},
		{"data", &DataError{Err: errors.New("unreadable")}, ExitDataErr},
		{"wrapped usage", fmt.Errorf("run: %w", &UsageError{Err: errors.New("bad")}), ExitUsage},
		{"other", errors.New("disk full"), ExitError},
	}
	for _, tt := range tests {
		if got := ExitCode(tt.err); got != tt.want {
			t.Errorf("ExitCode(%s) = %d, want %d", tt.name, got, tt.want)
		}
	}
}
