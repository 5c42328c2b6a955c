package emotion

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/upliftbot/uplift/internal/llm"
)

// Analyzer classifies the emotional content of user text.
type Analyzer struct {
	client llm.Client
}

// NewAnalyzer creates an analyzer backed by the given completion client.
func NewAnalyzer(client llm.Client) *Analyzer {
	return &Analyzer{client: client}
}

// Classify returns the emotion signal for text. The crisis keyword scan
// runs first and short-circuits without calling the classifier; any
// classifier or parse failure degrades to the neutral default. Classify
// never returns an error.
func (a *Analyzer) Classify(ctx context.Context, text string) Result {
	if containsCrisisKeyword(text) {
		slog.Warn("crisis keywords detected, skipping classification")
		return crisisResult()
	}

	prompt := fmt.Sprintf(classifyPrompt, text)
	response, err := a.client.Complete(ctx, classifySystemPrompt, prompt)
	if err != nil {
		slog.Error("emotion classification failed", "error", err)
		return neutralDefault()
	}

	result, err := parseClassification(response)
	if err != nil {
		slog.Error("unparseable classification response",
			"error", err, "response", response)
		return neutralDefault()
	}
	return result
}

// containsCrisisKeyword does a case-insensitive substring scan for
// self-harm indicators.
func containsCrisisKeyword(text string) bool {
	lower := strings.ToLower(text)
	for _, kw := range crisisKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

// parseClassification tolerates fenced code blocks and surrounding
// prose around the JSON object.
func parseClassification(response string) (Result, error) {
	jsonStr := extractJSON(response)
	if jsonStr == "" {
		return Result{}, fmt.Errorf("no JSON object in response")
	}

	var parsed struct {
		PrimaryEmotion    string   `json:"primary_emotion"`
		Intensity         float64  `json:"intensity"`
		SecondaryEmotions []string `json:"secondary_emotions"`
	}
	if err := json.Unmarshal([]byte(jsonStr), &parsed); err != nil {
		return Result{}, fmt.Errorf("parse classification: %w", err)
	}

	result := Result{
		PrimaryEmotion:    parsed.PrimaryEmotion,
		Intensity:         parsed.Intensity,
		SecondaryEmotions: parsed.SecondaryEmotions,
	}
	if result.PrimaryEmotion == "" {
		result.PrimaryEmotion = "neutral"
	}
	if result.SecondaryEmotions == nil {
		result.SecondaryEmotions = []string{}
	}
	return result, nil
}

// extractJSON finds the first balanced JSON object in text.
func extractJSON(text string) string {
	start := strings.Index(text, "{")
	if start == -1 {
		return ""
	}

	depth := 0
	for i := start; i < len(text); i++ {
		switch text[i] {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return text[start : i+1]
			}
		}
	}
	return ""
}
