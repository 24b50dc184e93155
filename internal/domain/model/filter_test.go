package model

import "testing"

func TestFilterIsEmpty(t *testing.T) {
	if !(ObservationFilter{}).IsEmpty() {
		t.Fatal("zero filter should be empty")
	}

	cases := map[string]ObservationFilter{
		"capitals":   {Capitals: []string{"Manaus"}},
		"states":     {States: []string{"AM"}},
		"conditions": {Conditions: []string{"Rain"}},
		"bands":      {Bands: []TemperatureBand{BandHot}},
		"from date":  {FromDate: "2024-01-01"},
		"to date":    {ToDate: "2024-12-31"},
	}
	for name, filter := range cases {
		if filter.IsEmpty() {
			t.Errorf("filter with %s should not be empty", name)
		}
	}
}

func TestFilterCacheKeyIsOrderIndependent(t *testing.T) {
	a := ObservationFilter{
		Capitals:   []string{"Manaus", "Belém", "Recife"},
		Conditions: []string{"Rain", "Clear"},
		Bands:      []TemperatureBand{BandWarm, BandHot},
	}
	b := ObservationFilter{
		Capitals:   []string{"Recife", "Manaus", "Belém"},
		Conditions: []string{"Clear", "Rain"},
		Bands:      []TemperatureBand{BandHot, BandWarm},
	}

	if a.CacheKey() != b.CacheKey() {
		t.Fatal("cache keys should not depend on slice order")
	}
}

func TestFilterCacheKeyDistinguishesFilters(t *testing.T) {
	base := ObservationFilter{Capitals: []string{"Manaus"}}

	variants := []ObservationFilter{
		{Capitals: []string{"Belém"}},
		{States: []string{"AM"}},
		{Capitals: []string{"Manaus"}, FromDate: "2024-06-01"},
		{Capitals: []string{"Manaus"}, Bands: []TemperatureBand{BandUnknown}},
		{},
	}

	for i, variant := range variants {
		if base.CacheKey() == variant.CacheKey() {
			t.Errorf("variant %d should produce a different cache key", i)
		}
	}
}
