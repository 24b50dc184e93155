package controller

import (
	"strings"
	"testing"
)

func TestRenderDashboardPage(t *testing.T) {
	view := dashboardPageView{
		Title:       "Brazilian Capitals Weather",
		BasePath:    "/dashboard",
		Capitals:    []capitalOptionView{{Name: "Manaus", State: "AM"}, {Name: "Recife", State: "PE"}},
		States:      []string{"AM", "PE"},
		Conditions:  []string{"Rain", "Clear"},
		Bands:       []string{"<10", "10-20", "20-30", ">=30", "Unknown"},
		GeneratedAt: "2024-06-01T12:00:00Z",
	}

	page, err := renderDashboardPage(view)
	if err != nil {
		t.Fatalf("renderDashboardPage failed: %v", err)
	}

	for _, fragment := range []string{
		"<title>Brazilian Capitals Weather</title>",
		"var basePath = ",
		"Manaus (AM)",
		"Recife (PE)",
		`<option value="AM">`,
		`<option value="Rain">`,
		"chart-by-capital",
		"chart-over-time",
		"/observations/export",
		"pipeline-badge",
		"/pipeline/status",
	} {
		if !strings.Contains(page, fragment) {
			t.Errorf("rendered page missing %q", fragment)
		}
	}
}

func TestRenderDashboardPageFiltersUseDateRangeParams(t *testing.T) {
	page, err := renderDashboardPage(dashboardPageView{Title: "Dashboard", BasePath: "/dashboard"})
	if err != nil {
		t.Fatalf("renderDashboardPage failed: %v", err)
	}

	for _, fragment := range []string{
		`params.append("from", from)`,
		`params.append("to", to)`,
		`params.append("state", v)`,
	} {
		if !strings.Contains(page, fragment) {
			t.Errorf("filter query missing %q", fragment)
		}
	}
}

func TestRenderDashboardPageEscapesOptions(t *testing.T) {
	view := dashboardPageView{
		Title:    "Dashboard",
		BasePath: "/dashboard",
		Capitals: []capitalOptionView{{Name: `<script>alert(1)</script>`, State: "XX"}},
	}

	page, err := renderDashboardPage(view)
	if err != nil {
		t.Fatalf("renderDashboardPage failed: %v", err)
	}

	if strings.Contains(page, "<script>alert(1)</script>") {
		t.Fatal("capital names must be HTML-escaped")
	}
}
