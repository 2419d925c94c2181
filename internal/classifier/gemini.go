// Package classifier labels channel messages for extremist content.
package classifier

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/bytedance/sonic"
	"github.com/google/generative-ai-go/genai"
	"github.com/tdewolff/minify/v2"
	"github.com/tdewolff/minify/v2/json"
	"go.uber.org/zap"
	"golang.org/x/sync/semaphore"
)

const (
	// ApplicationJSON is the MIME type requested from the model.
	ApplicationJSON = "application/json"

	// SystemPrompt frames the model as a content moderator.
	SystemPrompt = `You are on a social media platform's moderation team.
You review content as if it were a public post and decide whether it contains harmful and/or extremist language.

Labels:
- "Propaganda": content promoting or glorifying an extremist group, ideology or attack
- "Radicalization": content pushing readers toward extremist beliefs or violence
- "Recruitment": content soliciting people to join, fund or support an extremist group
- "None": anything else, including news reporting, counter-speech and general profanity

Output format:
{"Label": "Propaganda" | "Radicalization" | "Recruitment" | "None", "Reason": "one sentence explanation"}`

	// AnalysisPrompt wraps the content under review.
	AnalysisPrompt = `Review the following content and label it.

Content to review:
%s`
)

var (
	// ErrModelResponse indicates the model returned no usable response.
	ErrModelResponse = errors.New("model response error")
	// ErrBlocked indicates the model refused the content on safety grounds.
	ErrBlocked = errors.New("content blocked by safety filters")
)

// Classifier labels a piece of text.
type Classifier interface {
	Classify(ctx context.Context, text string) (*Result, error)
}

// Gemini classifies content with a Gemini model.
type Gemini struct {
	model  *genai.GenerativeModel
	minify *minify.M
	sem    *semaphore.Weighted
	logger *zap.Logger
}

// NewGemini creates a classifier limited to maxConcurrent in-flight calls.
func NewGemini(client *genai.Client, modelName string, maxConcurrent int64, logger *zap.Logger) *Gemini {
	model := client.GenerativeModel(modelName)
	model.SystemInstruction = genai.NewUserContent(genai.Text(SystemPrompt))
	model.ResponseMIMEType = ApplicationJSON
	model.ResponseSchema = &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"Label": {
				Type:        genai.TypeString,
				Enum:        LabelStrings(),
				Description: "Category of harmful content, or None",
			},
			"Reason": {
				Type:        genai.TypeString,
				Description: "One sentence explaining the label",
			},
		},
		Required: []string{"Label", "Reason"},
	}
	model.SetTemperature(0.2)
	model.SetTopP(0.5)
	model.SetTopK(10)
	model.SetMaxOutputTokens(256)

	// The content under review is often hateful by nature
	model.SafetySettings = []*genai.SafetySetting{
		{Category: genai.HarmCategoryHarassment, Threshold: genai.HarmBlockNone},
		{Category: genai.HarmCategoryHateSpeech, Threshold: genai.HarmBlockNone},
		{Category: genai.HarmCategorySexuallyExplicit, Threshold: genai.HarmBlockNone},
		{Category: genai.HarmCategoryDangerousContent, Threshold: genai.HarmBlockNone},
	}

	m := minify.New()
	m.AddFunc(ApplicationJSON, json.Minify)

	return &Gemini{
		model:  model,
		minify: m,
		sem:    semaphore.NewWeighted(max(maxConcurrent, 1)),
		logger: logger.Named("classifier"),
	}
}

// Classify labels the text. Failures are not retried.
func (g *Gemini) Classify(ctx context.Context, text string) (*Result, error) {
	if err := g.sem.Acquire(ctx, 1); err != nil {
		return nil, fmt.Errorf("failed to acquire classifier semaphore: %w", err)
	}
	defer g.sem.Release(1)

	prompt, err := g.buildPrompt(text)
	if err != nil {
		return nil, err
	}

	resp, err := g.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		var blocked *genai.BlockedError
		if errors.As(err, &blocked) {
			return nil, fmt.Errorf("%w: %s", ErrBlocked, blocked.Error())
		}

		return nil, fmt.Errorf("classification failed: %w", err)
	}

	if resp.PromptFeedback != nil && resp.PromptFeedback.BlockReason != genai.BlockReasonUnspecified {
		return nil, fmt.Errorf("%w: %s", ErrBlocked, resp.PromptFeedback.BlockReason)
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return nil, fmt.Errorf("%w: no response from Gemini", ErrModelResponse)
	}

	responseText, ok := resp.Candidates[0].Content.Parts[0].(genai.Text)
	if !ok {
		return nil, fmt.Errorf("%w: unexpected response format from Gemini", ErrModelResponse)
	}

	result, err := ParseResponse(string(responseText))
	if err != nil {
		g.logger.Error("Failed to parse classifier response",
			zap.String("response", string(responseText)),
			zap.Error(err))

		return nil, err
	}

	g.logger.Debug("Classified content",
		zap.String("label", result.Label.String()),
		zap.String("reason", result.Reason))

	return result, nil
}

// buildPrompt embeds the content as minified JSON so quotes and newlines in
// the message cannot break out of the prompt.
func (g *Gemini) buildPrompt(text string) (string, error) {
	payload, err := sonic.Marshal(map[string]string{"content": text})
	if err != nil {
		return "", fmt.Errorf("failed to marshal content: %w", err)
	}

	minified, err := g.minify.Bytes(ApplicationJSON, payload)
	if err != nil {
		return "", fmt.Errorf("failed to minify content: %w", err)
	}

	return fmt.Sprintf(AnalysisPrompt, minified), nil
}

type response struct {
	Label  string `json:"Label"`
	Reason string `json:"Reason"`
}

// ParseResponse decodes the model's JSON answer, tolerating a surrounding
// markdown code fence.
func ParseResponse(text string) (*Result, error) {
	text = strings.TrimSpace(text)
	if strings.HasPrefix(text, "```") {
		text = strings.TrimPrefix(text, "```json")
		text = strings.TrimPrefix(text, "```")
		text = strings.TrimSuffix(strings.TrimSpace(text), "```")
	}

	var resp response
	if err := sonic.UnmarshalString(text, &resp); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrModelResponse, err)
	}

	label, err := LabelString(strings.TrimSpace(resp.Label))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrModelResponse, err)
	}

	return &Result{Label: label, Reason: strings.TrimSpace(resp.Reason)}, nil
}
