package model

// TemperatureBand buckets average temperatures for filtering, matching the
// ranges the dashboard has always displayed.
type TemperatureBand string

const (
	BandCold    TemperatureBand = "<10"
	BandMild    TemperatureBand = "10-20"
	BandWarm    TemperatureBand = "20-30"
	BandHot     TemperatureBand = ">=30"
	BandUnknown TemperatureBand = "Unknown"
)

// AllBands lists every band in display order.
func AllBands() []TemperatureBand {
	return []TemperatureBand{BandCold, BandMild, BandWarm, BandHot, BandUnknown}
}

// BandOf returns the band for an average temperature. A nil temperature maps
// to BandUnknown.
func BandOf(temp *float64) TemperatureBand {
	if temp == nil {
		return BandUnknown
	}
	switch {
	case *temp < 10:
		return BandCold
	case *temp < 20:
		return BandMild
	case *temp < 30:
		return BandWarm
	default:
		return BandHot
	}
}

// ParseBand validates a band label coming from a query parameter.
func ParseBand(value string) (TemperatureBand, bool) {
	for _, band := range AllBands() {
		if string(band) == value {
			return band, true
		}
	}
	return "", false
}
