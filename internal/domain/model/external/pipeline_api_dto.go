package external

// LoadRunResponse mirrors the pipeline API's GET /loads/latest payload
type LoadRunResponse struct {
	RunID      string `json:"run_id"`
	StartedAt  string `json:"started_at"`
	FinishedAt string `json:"finished_at"`
	Status     string `json:"status"`
	RowsLoaded int64  `json:"rows_loaded"`
}

// APIErrorResponse mirrors the pipeline API's FastAPI error payload
type APIErrorResponse struct {
	Detail string `json:"detail"`
}
