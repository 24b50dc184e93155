package model

import (
	"crypto/sha1"
	"encoding/hex"
	"sort"
	"strings"
)

// ObservationFilter narrows warehouse queries. Empty slices and strings mean
// "no restriction"; dates use the YYYY-MM-DD layout of the date dimension.
type ObservationFilter struct {
	Capitals   []string          `json:"capitals,omitempty"`
	States     []string          `json:"states,omitempty"`
	Conditions []string          `json:"conditions,omitempty"`
	Bands      []TemperatureBand `json:"bands,omitempty"`
	FromDate   string            `json:"fromDate,omitempty"`
	ToDate     string            `json:"toDate,omitempty"`
}

// IsEmpty reports whether the filter restricts anything
func (f ObservationFilter) IsEmpty() bool {
	return len(f.Capitals) == 0 && len(f.States) == 0 && len(f.Conditions) == 0 &&
		len(f.Bands) == 0 && f.FromDate == "" && f.ToDate == ""
}

// CacheKey returns a stable key for the filter, independent of slice order
func (f ObservationFilter) CacheKey() string {
	parts := []string{
		"c=" + sortedJoin(f.Capitals),
		"s=" + sortedJoin(f.States),
		"w=" + sortedJoin(f.Conditions),
		"b=" + sortedJoin(bandLabels(f.Bands)),
		"f=" + f.FromDate,
		"t=" + f.ToDate,
	}

	sum := sha1.Sum([]byte(strings.Join(parts, "|")))
	return hex.EncodeToString(sum[:])
}

func sortedJoin(values []string) string {
	if len(values) == 0 {
		return ""
	}
	sorted := make([]string, len(values))
	copy(sorted, values)
	sort.Strings(sorted)
	return strings.Join(sorted, ",")
}

func bandLabels(bands []TemperatureBand) []string {
	labels := make([]string, len(bands))
	for i, band := range bands {
		labels[i] = string(band)
	}
	return labels
}
