package advisor

import "fmt"

// recommendationPromptTemplate fixes the instructional frame sent to the
// model. The user text is embedded verbatim; input length limits are the
// service's concern, not the builder's.
const recommendationPromptTemplate = `As a professional financial advisor, analyze this investment request and provide a comprehensive recommendation in the exact JSON format specified:

User Request: "%s"

Provide your response as a JSON object with this exact structure:
{
  "portfolio": {
    "stocks": number (percentage),
    "bonds": number (percentage),
    "etfs": number (percentage),
    "crypto": number (percentage 0-10),
    "reits": number (percentage 0-15),
    "commodities": number (percentage 0-10)
  },
  "rationale": {
    "stocks": "2-3 sentence explanation",
    "bonds": "2-3 sentence explanation",
    "etfs": "2-3 sentence explanation",
    "crypto": "2-3 sentence explanation",
    "reits": "2-3 sentence explanation",
    "commodities": "2-3 sentence explanation"
  },
  "riskScore": number (1-10),
  "diversificationScore": number (1-10),
  "projections": {
    "1year": {"conservative": number, "expected": number, "optimistic": number},
    "3year": {"conservative": number, "expected": number, "optimistic": number},
    "5year": {"conservative": number, "expected": number, "optimistic": number},
    "10year": {"conservative": number, "expected": number, "optimistic": number}
  },
  "riskAssessment": {
    "marketVolatility": "detailed explanation",
    "liquidityRisk": "detailed explanation",
    "inflationProtection": "detailed explanation"
  }
}

Important: Portfolio percentages must sum to 100. Base recommendations on user's age, risk tolerance, time horizon, and investment goals.`

// buildRecommendationPrompt renders the fixed template around the raw
// user text.
func buildRecommendationPrompt(userInput string) string {
	return fmt.Sprintf(recommendationPromptTemplate, userInput)
}
