package api

import (
	"encoding/json"
	"net/http"
	"strings"
)

// ExecuteRequest is the body of POST /v1/execute.
type ExecuteRequest struct {
	// Target is the invocation string, e.g. "backupDatabase()" or
	// "params('x', 1, true)".
	Target string `json:"target"`
}

// ExecuteResponse reports the boolean outcome of the call.
type ExecuteResponse struct {
	Ok     bool   `json:"ok"`
	Target string `json:"target"`
}

func (a *API) executeCall(w http.ResponseWriter, r *http.Request) {
	var req ExecuteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	if strings.TrimSpace(req.Target) == "" {
		writeError(w, http.StatusBadRequest, "target is required")
		return
	}

	ok := a.dispatcher.Execute(r.Context(), req.Target)
	writeJSON(w, http.StatusOK, ExecuteResponse{Ok: ok, Target: req.Target})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
