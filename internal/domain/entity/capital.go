package entity

// Capital is a row of the city dimension. The warehouse carries the 27
// Brazilian state capitals.
type Capital struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	State   string `json:"state"`
	Country string `json:"country"`
}
