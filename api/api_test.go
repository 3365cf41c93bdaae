package api_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/taskcall/taskcall"
	"github.com/taskcall/taskcall/api"
	"github.com/taskcall/taskcall/task"
)

func newTestHandler(t *testing.T) http.Handler {
	t.Helper()
	d, err := taskcall.New(
		taskcall.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
	)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := d.Register(
		task.Descriptor{
			Name:    "noParams",
			Handler: func(ctx context.Context, args []any) error { return nil },
		},
		task.Descriptor{
			Name: "params",
			Handler: func(ctx context.Context, args []any) error {
				if len(args) != 2 {
					t.Errorf("handler received %d args, want 2", len(args))
				}
				return nil
			},
		},
	); err != nil {
		t.Fatalf("Register: %v", err)
	}
	return api.New(d).Handler()
}

func postExecute(t *testing.T, h http.Handler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/v1/execute", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestExecuteEndpoint(t *testing.T) {
	h := newTestHandler(t)

	tests := []struct {
		name   string
		body   string
		status int
		wantOk bool
	}{
		{"zero param task", `{"target":"noParams()"}`, http.StatusOK, true},
		{"task with args", `{"target":"params('x', 1)"}`, http.StatusOK, true},
		{"unknown task", `{"target":"missing()"}`, http.StatusOK, false},
		{"malformed target", `{"target":"bad((("}`, http.StatusOK, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := postExecute(t, h, tt.body)
			if rec.Code != tt.status {
				t.Fatalf("status = %d, want %d", rec.Code, tt.status)
			}
			var resp api.ExecuteResponse
			if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
				t.Fatalf("decode response: %v", err)
			}
			if resp.Ok != tt.wantOk {
				t.Errorf("ok = %v, want %v", resp.Ok, tt.wantOk)
			}
		})
	}
}

func TestExecuteEndpoint_BadRequest(t *testing.T) {
	h := newTestHandler(t)

	for name, body := range map[string]string{
		"empty body":   ``,
		"empty target": `{"target":""}`,
		"blank target": `{"target":"   "}`,
		"not json":     `target=noParams()`,
	} {
		t.Run(name, func(t *testing.T) {
			rec := postExecute(t, h, body)
			if rec.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want %d", rec.Code, http.StatusBadRequest)
			}
		})
	}
}

func TestListTasksEndpoint(t *testing.T) {
	h := newTestHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/v1/tasks", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	var resp api.ListTasksResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	want := []string{"noParams", "params"}
	if len(resp.Tasks) != len(want) {
		t.Fatalf("tasks = %v, want %v", resp.Tasks, want)
	}
	for i := range want {
		if resp.Tasks[i] != want[i] {
			t.Errorf("tasks[%d] = %q, want %q", i, resp.Tasks[i], want[i])
		}
	}
}

func TestHealthEndpoint(t *testing.T) {
	h := newTestHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusOK)
	}
}

func TestMetricsEndpoint(t *testing.T) {
	h := newTestHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusOK)
	}
}
