package entity

// Condition is a row of the weather conditions dimension.
type Condition struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}
