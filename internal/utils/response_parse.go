package utils

import (
	"encoding/json"
	"fmt"
	"strings"
)

// CompanionOutput is the structured response from the companion model.
type CompanionOutput struct {
	Reply     string `json:"reply"`
	Sentiment string `json:"sentiment"`
}

// ParseCompanionOutput extracts and validates structured companion output.
func ParseCompanionOutput(raw string) (CompanionOutput, error) {
	clean := strings.TrimSpace(raw)
	start := strings.Index(clean, "{")
	end := strings.LastIndex(clean, "}")
	if start >= 0 && end > start {
		clean = clean[start : end+1]
	}

	var output CompanionOutput
	if err := json.Unmarshal([]byte(clean), &output); err != nil {
		return CompanionOutput{}, fmt.Errorf("failed to parse companion output: %w", err)
	}

	output.Reply = strings.TrimSpace(output.Reply)
	if output.Reply == "" {
		return CompanionOutput{}, fmt.Errorf("missing reply")
	}

	switch strings.ToLower(strings.TrimSpace(output.Sentiment)) {
	case "positive":
		output.Sentiment = "Positive"
	case "negative":
		output.Sentiment = "Negative"
	case "neutral":
		output.Sentiment = "Neutral"
	case "genuine":
		output.Sentiment = "Genuine"
	default:
		return CompanionOutput{}, fmt.Errorf("invalid sentiment label: %s", output.Sentiment)
	}

	return output, nil
}
