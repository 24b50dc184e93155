package entity

// Observation is a single row of the warehouse fact table joined with its
// dimensions. Temperatures are in Celsius; humidity and precipitation are
// nullable because older loads predate those columns.
type Observation struct {
	ID            int64    `json:"id"`
	Date          string   `json:"date"`
	Capital       string   `json:"capital"`
	State         string   `json:"state"`
	Country       string   `json:"country"`
	Condition     string   `json:"condition"`
	TempMin       *float64 `json:"tempMin,omitempty"`
	TempAvg       *float64 `json:"tempAvg,omitempty"`
	TempMax       *float64 `json:"tempMax,omitempty"`
	Humidity      *float64 `json:"humidity,omitempty"`
	Precipitation *float64 `json:"precipitation,omitempty"`
}
