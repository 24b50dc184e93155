package entity

// LoadRun is a load-run record reported by the external pipeline. The dashboard
// only displays it; the pipeline owns the bookkeeping.
type LoadRun struct {
	RunID      string `json:"runId"`
	StartedAt  string `json:"startedAt"`
	FinishedAt string `json:"finishedAt"`
	Status     string `json:"status"`
	RowsLoaded int64  `json:"rowsLoaded"`
}
