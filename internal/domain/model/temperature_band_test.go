package model

import "testing"

func floatPtr(value float64) *float64 {
	return &value
}

func TestBandOf(t *testing.T) {
	cases := []struct {
		name string
		temp *float64
		want TemperatureBand
	}{
		{"nil temperature", nil, BandUnknown},
		{"below zero", floatPtr(-3.2), BandCold},
		{"just under cold boundary", floatPtr(9.9), BandCold},
		{"cold boundary", floatPtr(10), BandMild},
		{"mild range", floatPtr(15.5), BandMild},
		{"warm boundary", floatPtr(20), BandWarm},
		{"warm range", floatPtr(29.9), BandWarm},
		{"hot boundary", floatPtr(30), BandHot},
		{"very hot", floatPtr(41.7), BandHot},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := BandOf(tc.temp); got != tc.want {
				t.Fatalf("BandOf(%v) = %q, want %q", tc.temp, got, tc.want)
			}
		})
	}
}

func TestParseBand(t *testing.T) {
	for _, band := range AllBands() {
		parsed, ok := ParseBand(string(band))
		if !ok {
			t.Fatalf("ParseBand(%q) rejected a valid band", band)
		}
		if parsed != band {
			t.Fatalf("ParseBand(%q) = %q", band, parsed)
		}
	}

	if _, ok := ParseBand("frozen"); ok {
		t.Fatal("ParseBand accepted an unknown label")
	}
	if _, ok := ParseBand(""); ok {
		t.Fatal("ParseBand accepted an empty label")
	}
}
