package task_test

import (
	"context"
	"errors"
	"testing"

	"github.com/taskcall/taskcall/task"
)

func TestRegistry_RegisterAndLookup(t *testing.T) {
	r := task.NewRegistry(nil)

	var got []any
	r.Register(task.Descriptor{
		Name:        "send-report",
		Description: "emails the weekly report",
		Handler: func(_ context.Context, args []any) error {
			got = args
			return nil
		},
	})

	d, ok := r.Lookup("send-report")
	if !ok {
		t.Fatal("expected task to be registered")
	}
	if d.Description != "emails the weekly report" {
		t.Errorf("Description = %q", d.Description)
	}

	err := d.Handler(context.Background(), []any{"alice", float64(3)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 || got[0] != "alice" {
		t.Errorf("handler observed args %#v", got)
	}
}

func TestRegistry_LookupUnknown(t *testing.T) {
	r := task.NewRegistry(nil)
	_, ok := r.Lookup("nonexistent")
	if ok {
		t.Fatal("expected no descriptor for unregistered task")
	}
}

func TestRegistry_NamesRegistrationOrder(t *testing.T) {
	r := task.NewRegistry(nil)

	for _, name := range []string{"task-c", "task-a", "task-b"} {
		r.Register(task.Descriptor{Name: name, Handler: func(_ context.Context, _ []any) error { return nil }})
	}

	names := r.Names()
	expected := []string{"task-c", "task-a", "task-b"}
	if len(names) != len(expected) {
		t.Fatalf("expected %d names, got %d", len(expected), len(names))
	}
	for i, want := range expected {
		if names[i] != want {
			t.Errorf("names[%d] = %q, want %q", i, names[i], want)
		}
	}
}

// Last-write-wins on duplicate names is documented policy: exactly one
// entry remains and it is the later registration.
func TestRegistry_DuplicateNameLastWriteWins(t *testing.T) {
	r := task.NewRegistry(nil)

	r.Register(task.Descriptor{Name: "overwrite", Handler: func(_ context.Context, _ []any) error {
		return errors.New("old")
	}})
	r.Register(task.Descriptor{Name: "overwrite", Handler: func(_ context.Context, _ []any) error {
		return errors.New("new")
	}})

	if got := r.Len(); got != 1 {
		t.Fatalf("expected exactly 1 entry after duplicate registration, got %d", got)
	}
	if names := r.Names(); len(names) != 1 || names[0] != "overwrite" {
		t.Fatalf("Names() = %v", names)
	}

	d, _ := r.Lookup("overwrite")
	err := d.Handler(context.Background(), nil)
	if err == nil || err.Error() != "new" {
		t.Fatalf("expected 'new' error, got %v", err)
	}
}

func TestRegistry_RegisterSet(t *testing.T) {
	r := task.NewRegistry(nil)

	noop := func(_ context.Context, _ []any) error { return nil }
	r.RegisterSet(task.Set{
		{Name: "first", Handler: noop},
		{Name: "second", Handler: noop},
	})

	if got := r.Len(); got != 2 {
		t.Fatalf("expected 2 entries, got %d", got)
	}
	names := r.Names()
	if names[0] != "first" || names[1] != "second" {
		t.Errorf("Names() = %v", names)
	}
}
