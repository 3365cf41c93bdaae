package api

import "net/http"

// ListTasksResponse is the body of GET /v1/tasks.
type ListTasksResponse struct {
	Tasks []string `json:"tasks"`
}

func (a *API) listTasks(w http.ResponseWriter, _ *http.Request) {
	names := a.dispatcher.Tasks()
	if names == nil {
		names = []string{}
	}
	writeJSON(w, http.StatusOK, ListTasksResponse{Tasks: names})
}
