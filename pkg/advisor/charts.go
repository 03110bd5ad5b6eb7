package advisor

import "sort"

// Display metadata per asset class.
var assetLabels = map[string]string{
	AssetStocks:      "Stocks",
	AssetBonds:       "Bonds",
	AssetETFs:        "ETFs",
	AssetCrypto:      "Crypto",
	AssetREITs:       "REITs",
	AssetCommodities: "Commodities",
}

var assetColors = map[string]string{
	AssetStocks:      "#3B82F6",
	AssetBonds:       "#10B981",
	AssetETFs:        "#8B5CF6",
	AssetCrypto:      "#F59E0B",
	AssetREITs:       "#14B8A6",
	AssetCommodities: "#EF4444",
}

// AssetLabel returns the display name for an asset class key.
func AssetLabel(class string) string {
	if label, ok := assetLabels[class]; ok {
		return label
	}
	return class
}

// PieSegment is one slice of the allocation pie.
type PieSegment struct {
	Key   string  `json:"key"`
	Label string  `json:"label"`
	Value float64 `json:"value"`
	Color string  `json:"color"`
}

// PortfolioPieData filters out zero allocations and sorts the remaining
// segments by descending value.
func PortfolioPieData(p Portfolio) []PieSegment {
	segments := make([]PieSegment, 0, len(AssetClasses))
	for _, class := range AssetClasses {
		value := p.ByClass(class)
		if value <= 0 {
			continue
		}
		segments = append(segments, PieSegment{
			Key:   class,
			Label: AssetLabel(class),
			Value: value,
			Color: assetColors[class],
		})
	}
	sort.SliceStable(segments, func(i, j int) bool {
		return segments[i].Value > segments[j].Value
	})
	return segments
}

// GrowthPoint is one horizon of the projection series.
type GrowthPoint struct {
	Period       string  `json:"period"`
	Conservative float64 `json:"conservative"`
	Expected     float64 `json:"expected"`
	Optimistic   float64 `json:"optimistic"`
	Range        float64 `json:"range"`
}

// GrowthSeries orders the projections chronologically, skipping horizons
// the model omitted.
func GrowthSeries(projections map[string]Projection) []GrowthPoint {
	points := make([]GrowthPoint, 0, len(Horizons))
	for _, horizon := range Horizons {
		proj, ok := projections[horizon]
		if !ok {
			continue
		}
		points = append(points, GrowthPoint{
			Period:       horizon,
			Conservative: proj.Conservative,
			Expected:     proj.Expected,
			Optimistic:   proj.Optimistic,
			Range:        proj.Optimistic - proj.Conservative,
		})
	}
	return points
}

// RadarPoint is one axis of the diversification radar.
type RadarPoint struct {
	Asset    string  `json:"asset"`
	Value    float64 `json:"value"`
	FullMark float64 `json:"fullMark"`
}

// DiversificationRadarData covers all six asset classes, zero or not.
func DiversificationRadarData(p Portfolio) []RadarPoint {
	points := make([]RadarPoint, 0, len(AssetClasses))
	for _, class := range AssetClasses {
		points = append(points, RadarPoint{
			Asset:    AssetLabel(class),
			Value:    p.ByClass(class),
			FullMark: 100,
		})
	}
	return points
}

// RiskGauge describes the semicircular risk meter for a score.
type RiskGauge struct {
	Score       float64 `json:"score"`
	Angle       float64 `json:"angle"`
	Level       string  `json:"level"`
	Description string  `json:"description"`
}

// RiskGaugeData maps a 1-10 risk score onto the 180-degree gauge.
func RiskGaugeData(score float64) RiskGauge {
	normalized := score
	if normalized < 0 {
		normalized = 0
	}
	if normalized > 10 {
		normalized = 10
	}
	gauge := RiskGauge{
		Score: score,
		Angle: normalized / 10 * 180,
	}
	switch {
	case score <= 3:
		gauge.Level = "Low Risk"
		gauge.Description = "Capital preservation focused with minimal volatility"
	case score <= 6:
		gauge.Level = "Moderate Risk"
		gauge.Description = "Balanced growth with manageable volatility"
	default:
		gauge.Level = "High Risk"
		gauge.Description = "Maximum growth potential with higher volatility"
	}
	return gauge
}

// DiversificationLevel labels a 1-10 diversification score.
func DiversificationLevel(score float64) string {
	switch {
	case score >= 8:
		return "Excellent"
	case score >= 6:
		return "Good"
	case score >= 4:
		return "Fair"
	default:
		return "Poor"
	}
}
