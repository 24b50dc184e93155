package model

// CapitalAverage is one bar of the "average temperature by capital" chart
type CapitalAverage struct {
	Capital string  `json:"capital"`
	State   string  `json:"state"`
	AvgTemp float64 `json:"avgTemp"`
	Samples int64   `json:"samples"`
}

// DailyAverage is one point of the "temperature over time" chart
type DailyAverage struct {
	Date    string  `json:"date"`
	AvgTemp float64 `json:"avgTemp"`
	Samples int64   `json:"samples"`
}

// Summary holds the headline metrics for the current filter selection
type Summary struct {
	Capitals int64    `json:"capitals"`
	Records  int64    `json:"records"`
	AvgTemp  *float64 `json:"avgTemp,omitempty"`
}
