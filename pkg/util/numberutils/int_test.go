package numberutils

import "testing"

func TestIsInt(t *testing.T) {
	if !IsInt("42") || !IsInt("-7") || !IsInt("0") {
		t.Error("valid integers rejected")
	}
	if IsInt("4.2") || IsInt("abc") || IsInt("") {
		t.Error("non-integers accepted")
	}
}

func TestToIntWithDefault(t *testing.T) {
	if got := ToIntWithDefault("15", 50); got != 15 {
		t.Errorf("expected 15, got %d", got)
	}
	if got := ToIntWithDefault("", 50); got != 50 {
		t.Errorf("expected fallback 50, got %d", got)
	}
	if got := ToIntWithDefault("broken", 50); got != 50 {
		t.Errorf("expected fallback 50, got %d", got)
	}
}

func TestClampInt(t *testing.T) {
	if got := ClampInt(5, 1, 10); got != 5 {
		t.Errorf("in-range value changed: %d", got)
	}
	if got := ClampInt(-3, 1, 10); got != 1 {
		t.Errorf("expected clamp to 1, got %d", got)
	}
	if got := ClampInt(500, 1, 10); got != 10 {
		t.Errorf("expected clamp to 10, got %d", got)
	}
}

func TestIsIntInRange(t *testing.T) {
	if !IsIntInRange(1, 1, 10) || !IsIntInRange(10, 1, 10) {
		t.Error("range boundaries should be inclusive")
	}
	if IsIntInRange(0, 1, 10) || IsIntInRange(11, 1, 10) {
		t.Error("out-of-range values accepted")
	}
}
