package advisor

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"testing"
)

// aiResponseJSON is a well-formed model reply used across tests.
const aiResponseJSON = `{
	"portfolio": {"stocks": 40, "bonds": 30, "etfs": 15, "crypto": 5, "reits": 5, "commodities": 5},
	"rationale": {
		"stocks": "Growth engine for a long horizon",
		"bonds": "Income and stability",
		"etfs": "Broad diversified exposure",
		"crypto": "Small speculative sleeve",
		"reits": "Real asset income",
		"commodities": "Inflation hedge"
	},
	"riskScore": 5,
	"diversificationScore": 9,
	"projections": {
		"1year": {"conservative": 3.1, "expected": 6.2, "optimistic": 9.4},
		"3year": {"conservative": 10.5, "expected": 18.0, "optimistic": 25.5},
		"5year": {"conservative": 20.0, "expected": 33.0, "optimistic": 48.0},
		"10year": {"conservative": 50.0, "expected": 80.0, "optimistic": 110.0}
	},
	"riskAssessment": {
		"marketVolatility": "Moderate volatility expected",
		"liquidityRisk": "High liquidity across holdings",
		"inflationProtection": "Solid via real assets"
	}
}`

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// setupTestCore creates a Core with a temporary audit database.
func setupTestCore(t *testing.T, ai AIConfig) *Core {
	t.Helper()

	core, err := OpenWithOptions(Options{
		AI:          ai,
		AuditDBPath: filepath.Join(t.TempDir(), "test.db"),
		Logger:      testLogger(),
	})
	if err != nil {
		t.Fatalf("failed to open test core: %v", err)
	}
	t.Cleanup(func() { core.Close() })
	return core
}

// stubCompletion swaps the completion seam for the duration of the test.
func stubCompletion(t *testing.T, fn func(ctx context.Context, req aiCompletionRequest) (string, error)) {
	t.Helper()
	original := aiCompletion
	aiCompletion = fn
	t.Cleanup(func() { aiCompletion = original })
}
