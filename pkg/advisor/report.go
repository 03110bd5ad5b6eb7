package advisor

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"
)

// RiskLevel labels a 1-10 risk score.
func RiskLevel(score float64) string {
	switch {
	case score <= 3:
		return "Conservative"
	case score <= 6:
		return "Moderate"
	case score <= 8:
		return "Aggressive"
	default:
		return "Very Aggressive"
	}
}

// DiversificationQuality grades a 1-10 diversification score for the
// report. Same scale as DiversificationLevel; the wording differs because
// the report reads as prose.
func DiversificationQuality(score float64) string {
	switch {
	case score >= 8:
		return "Excellent"
	case score >= 6:
		return "Good"
	case score >= 4:
		return "Fair"
	default:
		return "Needs Improvement"
	}
}

// RiskReturnProfile combines the risk score with the expected five-year
// return into a profile label.
func RiskReturnProfile(risk, expectedReturn float64) string {
	switch {
	case risk <= 4 && expectedReturn <= 6:
		return "Conservative Growth"
	case risk <= 6 && expectedReturn <= 9:
		return "Balanced Growth"
	case risk <= 8 && expectedReturn <= 12:
		return "Growth Focused"
	default:
		return "Aggressive Growth"
	}
}

// ReviewPeriodMonths suggests how often a portfolio at the given risk
// score should be reviewed.
func ReviewPeriodMonths(risk float64) int {
	switch {
	case risk <= 3:
		return 12
	case risk <= 6:
		return 6
	default:
		return 3
	}
}

type allocationEntry struct {
	class string
	value float64
}

// sortedAllocations returns the non-zero allocations in descending order.
func sortedAllocations(p Portfolio) []allocationEntry {
	entries := make([]allocationEntry, 0, len(AssetClasses))
	for _, class := range AssetClasses {
		if value := p.ByClass(class); value > 0 {
			entries = append(entries, allocationEntry{class: class, value: value})
		}
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].value > entries[j].value
	})
	return entries
}

// BuildReport renders the plain-text portfolio analysis report offered as
// a file download.
func BuildReport(rec *Recommendation, now time.Time) string {
	allocations := sortedAllocations(rec.Portfolio)

	analysisType := "Expert"
	if rec.IsAI {
		analysisType = "AI-Powered"
	}

	var sb strings.Builder
	sb.WriteString("INVESTMENT PORTFOLIO ANALYSIS REPORT\n")
	fmt.Fprintf(&sb, "Generated on: %s\n\n", now.Format("2006-01-02"))

	sb.WriteString("EXECUTIVE SUMMARY\n")
	sb.WriteString("═════════════════\n")
	fmt.Fprintf(&sb, "• Risk Score: %g/10 (%s)\n", rec.RiskScore, RiskLevel(rec.RiskScore))
	fmt.Fprintf(&sb, "• Diversification Score: %g/10\n", rec.DiversificationScore)
	fmt.Fprintf(&sb, "• Total Asset Classes: %d\n", len(allocations))
	fmt.Fprintf(&sb, "• Analysis Type: %s Recommendation\n\n", analysisType)

	sb.WriteString("PORTFOLIO ALLOCATION\n")
	sb.WriteString("════════════════════\n")
	for _, entry := range allocations {
		bars := strings.Repeat("█", int(entry.value/5+0.5))
		fmt.Fprintf(&sb, "%-12s %3g%% %s\n", strings.ToUpper(entry.class), entry.value, bars)
	}
	sb.WriteString("\n")

	sb.WriteString("RISK ASSESSMENT\n")
	sb.WriteString("═══════════════\n")
	fmt.Fprintf(&sb, "Market Volatility:     %s\n", rec.RiskAssessment.MarketVolatility)
	fmt.Fprintf(&sb, "Liquidity Risk:        %s\n", rec.RiskAssessment.LiquidityRisk)
	fmt.Fprintf(&sb, "Inflation Protection:  %s\n\n", rec.RiskAssessment.InflationProtection)

	sb.WriteString("RETURN PROJECTIONS\n")
	sb.WriteString("══════════════════\n")
	for _, point := range GrowthSeries(rec.Projections) {
		label := strings.Replace(point.Period, "year", " Year", 1)
		fmt.Fprintf(&sb, "%-10s Conservative: %g%%  Expected: %g%%  Optimistic: %g%%\n",
			label, point.Conservative, point.Expected, point.Optimistic)
	}
	sb.WriteString("\n")

	sb.WriteString("INVESTMENT RATIONALE\n")
	sb.WriteString("════════════════════\n")
	for _, class := range AssetClasses {
		reason, ok := rec.Rationale[class]
		if !ok {
			continue
		}
		fmt.Fprintf(&sb, "%s:\n  %s\n\n", strings.ToUpper(class), reason)
	}

	sb.WriteString("INVESTMENT GOALS\n")
	sb.WriteString("════════════════\n")
	fmt.Fprintf(&sb, "%q\n\n", rec.UserInput)

	expected5y := rec.Projections["5year"].Expected
	sb.WriteString("PORTFOLIO METRICS\n")
	sb.WriteString("═════════════════\n")
	fmt.Fprintf(&sb, "• Diversification Quality: %s\n", DiversificationQuality(rec.DiversificationScore))
	fmt.Fprintf(&sb, "• Risk-Return Profile: %s\n", RiskReturnProfile(rec.RiskScore, expected5y))
	fmt.Fprintf(&sb, "• Recommended Review Period: %d months\n\n", ReviewPeriodMonths(rec.RiskScore))

	fmt.Fprintf(&sb, "Generated: %s\n", rec.Timestamp)
	sb.WriteString("Powered by AI Investment Advisor Platform\n\n")
	sb.WriteString("DISCLAIMER: This analysis is for informational purposes only and should\n")
	sb.WriteString("not be considered as financial advice. Please consult with a qualified\n")
	sb.WriteString("financial advisor before making investment decisions.\n")

	return sb.String()
}

// ShareText renders the short summary copied to the clipboard or passed
// to a platform share sheet.
func ShareText(rec *Recommendation) string {
	allocations := sortedAllocations(rec.Portfolio)
	top := allocations
	if len(top) > 3 {
		top = top[:3]
	}
	parts := make([]string, 0, len(top))
	for _, entry := range top {
		parts = append(parts, fmt.Sprintf("%s: %g%%", entry.class, entry.value))
	}

	expected5y := "N/A"
	if proj, ok := rec.Projections["5year"]; ok {
		expected5y = fmt.Sprintf("%g%%", proj.Expected)
	}

	var sb strings.Builder
	sb.WriteString("My AI-Generated Investment Portfolio Analysis\n\n")
	fmt.Fprintf(&sb, "Asset Allocation: %s\n", strings.Join(parts, ", "))
	fmt.Fprintf(&sb, "Risk Profile: %s (%g/10)\n", RiskLevel(rec.RiskScore), rec.RiskScore)
	fmt.Fprintf(&sb, "Expected 5-Year Return: %s\n", expected5y)
	fmt.Fprintf(&sb, "Diversification Score: %g/10\n\n", rec.DiversificationScore)
	sb.WriteString("Key Insights:\n")
	fmt.Fprintf(&sb, "• %d asset classes for optimal diversification\n", len(allocations))
	fmt.Fprintf(&sb, "• %s market volatility exposure\n", rec.RiskAssessment.MarketVolatility)
	fmt.Fprintf(&sb, "• %s inflation protection\n\n", rec.RiskAssessment.InflationProtection)
	sb.WriteString("Generated with AI Investment Advisor")
	return sb.String()
}

// ExportJSON renders the raw JSON dump offered as a file download.
// Decoding the output yields a value deep-equal to the input.
func ExportJSON(rec *Recommendation) ([]byte, error) {
	return json.MarshalIndent(rec, "", "  ")
}
