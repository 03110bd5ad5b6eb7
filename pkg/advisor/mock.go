package advisor

// MockRecommendation returns the fixed fallback record used whenever the
// AI path is unavailable or fails. Deterministic so the product stays
// usable without a live model; the caller stamps timestamp, user input
// and the provenance flag.
func MockRecommendation() Recommendation {
	return Recommendation{
		Portfolio: Portfolio{
			Stocks:      60,
			Bonds:       25,
			ETFs:        10,
			REITs:       5,
			Crypto:      0,
			Commodities: 0,
		},
		Rationale: map[string]string{
			AssetStocks: "High allocation to equities for long-term growth potential suitable for younger investors",
			AssetBonds:  "Government and corporate bonds provide stability and regular income",
			AssetETFs:   "Diversified ETFs offer exposure to multiple sectors with lower fees",
			AssetREITs:  "Real Estate Investment Trusts add diversification and inflation protection",
		},
		RiskScore:            6,
		DiversificationScore: 8,
		Projections: map[string]Projection{
			"1year":  {Conservative: 5.2, Expected: 8.5, Optimistic: 12.8},
			"3year":  {Conservative: 15.8, Expected: 22.1, Optimistic: 28.9},
			"5year":  {Conservative: 28.3, Expected: 41.7, Optimistic: 55.2},
			"10year": {Conservative: 68.4, Expected: 95.8, Optimistic: 123.7},
		},
		RiskAssessment: RiskAssessment{
			MarketVolatility:    "Moderate to high volatility expected due to equity-heavy allocation",
			LiquidityRisk:       "High liquidity with ability to exit positions quickly",
			InflationProtection: "Good inflation protection through real assets and growth stocks",
		},
	}
}
