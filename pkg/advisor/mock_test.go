package advisor

import (
	"reflect"
	"testing"
)

func TestMockRecommendationDeterministic(t *testing.T) {
	t.Parallel()

	first := MockRecommendation()
	second := MockRecommendation()
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("expected identical mock records, got %+v vs %+v", first, second)
	}
}

func TestMockRecommendationPortfolioSumsTo100(t *testing.T) {
	t.Parallel()

	rec := MockRecommendation()
	sum := 0.0
	for _, class := range AssetClasses {
		sum += rec.Portfolio.ByClass(class)
	}
	if sum != 100 {
		t.Fatalf("expected allocation sum 100, got %v", sum)
	}
}

func TestMockRecommendationShape(t *testing.T) {
	t.Parallel()

	rec := MockRecommendation()
	if rec.RiskScore != 6 || rec.DiversificationScore != 8 {
		t.Fatalf("unexpected scores: %+v", rec)
	}
	for _, horizon := range Horizons {
		proj, ok := rec.Projections[horizon]
		if !ok {
			t.Fatalf("missing projection horizon %q", horizon)
		}
		if !(proj.Conservative < proj.Expected && proj.Expected < proj.Optimistic) {
			t.Fatalf("projection band out of order for %q: %+v", horizon, proj)
		}
	}
	if rec.RiskAssessment.MarketVolatility == "" ||
		rec.RiskAssessment.LiquidityRisk == "" ||
		rec.RiskAssessment.InflationProtection == "" {
		t.Fatalf("expected complete risk assessment, got %+v", rec.RiskAssessment)
	}
	// Provenance fields are the service's to stamp.
	if rec.IsAI || rec.Timestamp != "" || rec.UserInput != "" {
		t.Fatalf("expected unstamped mock record, got %+v", rec)
	}
}
