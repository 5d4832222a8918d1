package suggester

import (
	"context"
	"encoding/json"
	"time"

	"emlak-press/config"

	"google.golang.org/genai"
)

// SuggestResult is the structured editorial suggestion returned by the model.
type SuggestResult struct {
	Intro           string   `json:"intro"`
	MetaDescription string   `json:"meta_description"`
	Keywords        []string `json:"keywords"`
	IsFailure       bool     `json:"is_failure"`
}

// SuggestLog captures the call metadata so callers can persist it.
type SuggestLog struct {
	ModelName   string
	DurationMs  int64
	RequestedAt time.Time
	CompletedAt time.Time
}

const SYSTEM_INSTRUCTION = `
You are an editorial assistant for a Turkish real-estate content site. Analyze the provided article text and produce editorial suggestions.
The response MUST be a valid JSON object with four keys:
1.  intro: An engaging opening paragraph for the article, between 100 and 200 characters.
2.  meta_description: A search snippet for the article, between 120 and 160 characters.
3.  keywords: An array of at most 10 lowercase keywords relevant to the article.
4.  is_failure: A boolean value. Set to true if the content is too short or unreadable to work with. Otherwise, set to false.
You MUST NOT wrap the JSON output in a markdown code block (e.g., ` + "```json ... ```" + `). The response should contain ONLY the raw JSON string.
If suggestion fails, set is_failure to true and provide empty strings and an empty array for the other keys.
All responses, including all string values within the JSON object, MUST be written in Turkish.
`

// SuggestEditorial asks the configured Gemini model for an intro, a meta
// description and keywords for the given article body.
func SuggestEditorial(text string) (*SuggestResult, *SuggestLog, error) {
	callLog := &SuggestLog{
		ModelName:   config.GetConfig().GeminiModel,
		RequestedAt: time.Now(),
	}

	ctx := context.Background()
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: config.GetConfig().GeminiApiKey,
	})
	if err != nil {
		return nil, callLog, err
	}

	result, err := client.Models.GenerateContent(
		ctx,
		config.GetConfig().GeminiModel,
		genai.Text(text),
		&genai.GenerateContentConfig{
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: SYSTEM_INSTRUCTION}}},
		},
	)
	callLog.CompletedAt = time.Now()
	callLog.DurationMs = callLog.CompletedAt.Sub(callLog.RequestedAt).Milliseconds()
	if err != nil {
		return nil, callLog, err
	}

	var suggestion SuggestResult
	if err := json.Unmarshal([]byte(result.Text()), &suggestion); err != nil {
		return nil, callLog, err
	}
	return &suggestion, callLog, nil
}
