package advisor

import (
	"encoding/json"
	"reflect"
	"strings"
	"testing"
	"time"
)

func stampedMock(input string) *Recommendation {
	rec := MockRecommendation()
	rec.Timestamp = "2026-08-28T12:00:00Z"
	rec.UserInput = input
	return &rec
}

func TestBuildReport(t *testing.T) {
	t.Parallel()

	rec := stampedMock("retirement savings for 30 years")
	now := time.Date(2026, 8, 28, 15, 4, 5, 0, time.UTC)
	report := BuildReport(rec, now)

	for _, section := range []string{
		"INVESTMENT PORTFOLIO ANALYSIS REPORT",
		"EXECUTIVE SUMMARY",
		"PORTFOLIO ALLOCATION",
		"RISK ASSESSMENT",
		"RETURN PROJECTIONS",
		"INVESTMENT RATIONALE",
		"INVESTMENT GOALS",
		"PORTFOLIO METRICS",
		"DISCLAIMER",
	} {
		if !strings.Contains(report, section) {
			t.Fatalf("expected section %q in report", section)
		}
	}
	if !strings.Contains(report, "Generated on: 2026-08-28") {
		t.Fatalf("expected generation date, got:\n%s", report)
	}
	if !strings.Contains(report, "Risk Score: 6/10 (Moderate)") {
		t.Fatalf("expected risk summary line, got:\n%s", report)
	}
	if !strings.Contains(report, "Analysis Type: Expert Recommendation") {
		t.Fatalf("expected expert analysis type for mock data, got:\n%s", report)
	}
	if !strings.Contains(report, `"retirement savings for 30 years"`) {
		t.Fatalf("expected quoted user goals, got:\n%s", report)
	}
	// 60% stocks renders as a 12-block bar.
	if !strings.Contains(report, "STOCKS") || !strings.Contains(report, "60% "+strings.Repeat("█", 12)) {
		t.Fatalf("expected allocation bar, got:\n%s", report)
	}
}

func TestBuildReportAIAnalysisType(t *testing.T) {
	t.Parallel()

	rec := stampedMock("grow my savings aggressively")
	rec.IsAI = true
	report := BuildReport(rec, time.Now())
	if !strings.Contains(report, "Analysis Type: AI-Powered Recommendation") {
		t.Fatalf("expected AI analysis type, got:\n%s", report)
	}
}

func TestShareText(t *testing.T) {
	t.Parallel()

	rec := stampedMock("college fund")
	text := ShareText(rec)

	if !strings.Contains(text, "Asset Allocation: stocks: 60%, bonds: 25%, etfs: 10%") {
		t.Fatalf("expected top-3 allocations, got:\n%s", text)
	}
	if strings.Contains(text, "reits") {
		t.Fatalf("expected only top 3 classes in share text, got:\n%s", text)
	}
	if !strings.Contains(text, "Risk Profile: Moderate (6/10)") {
		t.Fatalf("expected risk profile line, got:\n%s", text)
	}
	if !strings.Contains(text, "Expected 5-Year Return: 41.7%") {
		t.Fatalf("expected 5-year return line, got:\n%s", text)
	}
}

func TestShareTextWithoutFiveYearProjection(t *testing.T) {
	t.Parallel()

	rec := stampedMock("college fund")
	delete(rec.Projections, "5year")
	text := ShareText(rec)
	if !strings.Contains(text, "Expected 5-Year Return: N/A") {
		t.Fatalf("expected N/A placeholder, got:\n%s", text)
	}
}

func TestExportJSONRoundTrip(t *testing.T) {
	t.Parallel()

	rec := stampedMock("round trip")
	rec.IsAI = true

	data, err := ExportJSON(rec)
	if err != nil {
		t.Fatalf("ExportJSON failed: %v", err)
	}

	var decoded Recommendation
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("decode exported JSON: %v", err)
	}
	if !reflect.DeepEqual(*rec, decoded) {
		t.Fatalf("round trip mismatch:\n%+v\nvs\n%+v", *rec, decoded)
	}
}

func TestRiskLevel(t *testing.T) {
	t.Parallel()

	for score, want := range map[float64]string{
		2: "Conservative", 3: "Conservative",
		5: "Moderate", 6: "Moderate",
		7: "Aggressive", 8: "Aggressive",
		9: "Very Aggressive", 10: "Very Aggressive",
	} {
		if got := RiskLevel(score); got != want {
			t.Fatalf("RiskLevel(%v) = %q, want %q", score, got, want)
		}
	}
}

func TestRiskReturnProfile(t *testing.T) {
	t.Parallel()

	tests := []struct {
		risk, ret float64
		want      string
	}{
		{3, 5, "Conservative Growth"},
		{5, 8, "Balanced Growth"},
		{7, 11, "Growth Focused"},
		{9, 15, "Aggressive Growth"},
	}
	for _, tt := range tests {
		if got := RiskReturnProfile(tt.risk, tt.ret); got != tt.want {
			t.Fatalf("RiskReturnProfile(%v, %v) = %q, want %q", tt.risk, tt.ret, got, tt.want)
		}
	}
}

func TestReviewPeriodMonths(t *testing.T) {
	t.Parallel()

	for risk, want := range map[float64]int{2: 12, 5: 6, 8: 3} {
		if got := ReviewPeriodMonths(risk); got != want {
			t.Fatalf("ReviewPeriodMonths(%v) = %d, want %d", risk, got, want)
		}
	}
}
