package advisor

// Asset class keys used across portfolio, rationale and chart data.
const (
	AssetStocks      = "stocks"
	AssetBonds       = "bonds"
	AssetETFs        = "etfs"
	AssetCrypto      = "crypto"
	AssetREITs       = "reits"
	AssetCommodities = "commodities"
)

// AssetClasses lists the supported asset classes in display order.
var AssetClasses = []string{
	AssetStocks,
	AssetBonds,
	AssetETFs,
	AssetCrypto,
	AssetREITs,
	AssetCommodities,
}

// Horizons lists the projection periods in chronological order.
var Horizons = []string{"1year", "3year", "5year", "10year"}

// Portfolio holds the recommended allocation percentage per asset class.
// Stocks, bonds and ETFs are always present; the remaining classes decode
// to zero when the model omits them.
type Portfolio struct {
	Stocks      float64 `json:"stocks"`
	Bonds       float64 `json:"bonds"`
	ETFs        float64 `json:"etfs"`
	Crypto      float64 `json:"crypto"`
	REITs       float64 `json:"reits"`
	Commodities float64 `json:"commodities"`
}

// ByClass returns the allocation for the given asset class key.
func (p Portfolio) ByClass(class string) float64 {
	switch class {
	case AssetStocks:
		return p.Stocks
	case AssetBonds:
		return p.Bonds
	case AssetETFs:
		return p.ETFs
	case AssetCrypto:
		return p.Crypto
	case AssetREITs:
		return p.REITs
	case AssetCommodities:
		return p.Commodities
	default:
		return 0
	}
}

// Projection is one horizon's percentage-return band.
type Projection struct {
	Conservative float64 `json:"conservative"`
	Expected     float64 `json:"expected"`
	Optimistic   float64 `json:"optimistic"`
}

// RiskAssessment contains the model's qualitative risk explanations.
type RiskAssessment struct {
	MarketVolatility    string `json:"marketVolatility"`
	LiquidityRisk       string `json:"liquidityRisk"`
	InflationProtection string `json:"inflationProtection"`
}

// Recommendation is the complete portfolio-advice record produced per
// user request. Field names follow the wire format consumed by the
// dashboard. Timestamp, UserInput and IsAI are stamped by the service,
// never by the model.
type Recommendation struct {
	Portfolio            Portfolio             `json:"portfolio"`
	Rationale            map[string]string     `json:"rationale"`
	RiskScore            float64               `json:"riskScore"`
	DiversificationScore float64               `json:"diversificationScore"`
	Projections          map[string]Projection `json:"projections"`
	RiskAssessment       RiskAssessment        `json:"riskAssessment"`
	Timestamp            string                `json:"timestamp"`
	UserInput            string                `json:"userInput"`
	IsAI                 bool                  `json:"isAI"`
}
