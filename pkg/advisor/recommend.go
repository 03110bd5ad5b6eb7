package advisor

import (
	"context"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

const minUserInputLength = 10

// portfolioSumTolerance bounds how far the allocation may drift from 100
// before the advisory check logs a warning.
var portfolioSumTolerance = decimal.NewFromFloat(0.5)

// Recommend produces one portfolio recommendation for the given user text.
//
// Input shorter than 10 characters after trimming fails with a validation
// error before any provider work. Without a configured credential the
// fixed mock record is returned. Otherwise the prompt is built, the model
// called and its reply parsed; any failure along that path is logged and
// swallowed, falling back to the mock record, so the request still
// succeeds. In every branch the result is stamped with the current time
// and the verbatim user input before returning.
func (c *Core) Recommend(ctx context.Context, userInput string) (*Recommendation, error) {
	trimmed := strings.TrimSpace(userInput)
	if len(trimmed) < minUserInputLength {
		return nil, NewError(ErrCodeValidation,
			"Please provide a detailed investment request (at least 10 characters)")
	}

	logger := c.Logger()
	start := time.Now()

	var rec Recommendation
	if !c.ai.Enabled() {
		logger.Info("using mock recommendation; ai credential not configured")
		rec = MockRecommendation()
		rec.IsAI = false
		c.recordInference(SourceMock, "", len(userInput), time.Since(start), "")
	} else if aiRec, err := c.generateAIRecommendation(ctx, userInput); err != nil {
		logger.Warn("falling back to mock recommendation", "err", err)
		rec = MockRecommendation()
		rec.IsAI = false
		c.recordInference(SourceMock, c.ai.ModelOrDefault(), len(userInput), time.Since(start), err.Error())
	} else {
		rec = *aiRec
		rec.IsAI = true
		c.checkPortfolioSum(rec.Portfolio)
		c.recordInference(SourceAI, c.ai.ModelOrDefault(), len(userInput), time.Since(start), "")
	}

	rec.Timestamp = time.Now().UTC().Format(time.RFC3339)
	rec.UserInput = userInput
	return &rec, nil
}

func (c *Core) generateAIRecommendation(ctx context.Context, userInput string) (*Recommendation, error) {
	prompt := buildRecommendationPrompt(userInput)

	content, err := aiCompletion(ctx, aiCompletionRequest{
		Config: c.ai,
		Prompt: prompt,
		Logger: c.Logger(),
	})
	if err != nil {
		return nil, err
	}

	return parseRecommendationResponse(content)
}

// checkPortfolioSum logs a warning when the model's allocation does not
// sum to 100. Advisory only; the recommendation is neither rejected nor
// normalized.
func (c *Core) checkPortfolioSum(p Portfolio) {
	sum := decimal.Zero
	for _, class := range AssetClasses {
		sum = sum.Add(decimal.NewFromFloat(p.ByClass(class)))
	}
	drift := sum.Sub(decimal.NewFromInt(100)).Abs()
	if drift.GreaterThan(portfolioSumTolerance) {
		c.Logger().Warn("portfolio allocation does not sum to 100",
			"sum", sum.String(), "drift", drift.String())
	}
}
