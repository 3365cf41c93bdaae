package id_test

import (
	"strings"
	"testing"

	"github.com/taskcall/taskcall/id"
)

func TestConstructors(t *testing.T) {
	tests := []struct {
		name   string
		newFn  func() id.ID
		prefix string
	}{
		{"CallID", id.NewCallID, "call_"},
		{"TaskID", id.NewTaskID, "task_"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.newFn().String()
			if !strings.HasPrefix(got, tt.prefix) {
				t.Errorf("expected prefix %q, got %q", tt.prefix, got)
			}
		})
	}
}

func TestNew(t *testing.T) {
	i := id.New(id.PrefixCall)
	if i.IsNil() {
		t.Fatal("expected non-nil ID")
	}
	if i.Prefix() != id.PrefixCall {
		t.Errorf("expected prefix %q, got %q", id.PrefixCall, i.Prefix())
	}
}

func TestParseRoundTrip(t *testing.T) {
	tests := []struct {
		name    string
		newFn   func() id.ID
		parseFn func(string) (id.ID, error)
	}{
		{"CallID", id.NewCallID, id.ParseCallID},
		{"TaskID", id.NewTaskID, id.ParseTaskID},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			original := tt.newFn()
			parsed, err := tt.parseFn(original.String())
			if err != nil {
				t.Fatalf("parse failed: %v", err)
			}
			if parsed.String() != original.String() {
				t.Errorf("round-trip mismatch: %q != %q", parsed.String(), original.String())
			}
		})
	}
}

func TestCrossTypeRejection(t *testing.T) {
	callID := id.NewCallID()

	if _, err := id.ParseTaskID(callID.String()); err == nil {
		t.Fatal("expected prefix mismatch error parsing call ID as task ID")
	}
}

func TestParseInvalid(t *testing.T) {
	tests := []string{"", "not-a-typeid", "call_!!!"}

	for _, input := range tests {
		if _, err := id.Parse(input); err == nil {
			t.Errorf("Parse(%q): expected error", input)
		}
	}
}

func TestNilID(t *testing.T) {
	var i id.ID
	if !i.IsNil() {
		t.Fatal("zero-value ID should be nil")
	}
	if got := i.String(); got != "" {
		t.Errorf("Nil.String() = %q, want empty", got)
	}
}

func TestTextRoundTrip(t *testing.T) {
	original := id.NewCallID()

	data, err := original.MarshalText()
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}

	var decoded id.ID
	if err := decoded.UnmarshalText(data); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if decoded.String() != original.String() {
		t.Errorf("round-trip mismatch: %q != %q", decoded.String(), original.String())
	}
}
