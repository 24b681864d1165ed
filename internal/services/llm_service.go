package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/googleai"
)

var ErrLLMDisabled = errors.New("LLM extraction is not configured")

// maxExtractionInput caps how much of a pasted page goes into the prompt.
const maxExtractionInput = 20000

type LLMService struct {
	Client llms.Model
}

// NewLLMService initializes the Gemini client. An empty key yields a
// disabled service rather than an error so the server can still start.
func NewLLMService(ctx context.Context, apiKey, model string) (*LLMService, error) {
	if apiKey == "" {
		return &LLMService{}, nil
	}
	llm, err := googleai.New(ctx,
		googleai.WithAPIKey(apiKey),
		googleai.WithDefaultModel(model),
	)
	if err != nil {
		return nil, fmt.Errorf("create Gemini client: %w", err)
	}
	return &LLMService{Client: llm}, nil
}

func (s *LLMService) Enabled() bool {
	return s != nil && s.Client != nil
}

const jobOpeningExtractionPrompt = `
You are an expert Job Data Extraction Agent for a university placement cell. Your task is to analyze the provided raw HTML/Text from a job posting and extract the fields of a campus job opening.

### INSTRUCTIONS:
1. **Analyze** the text to identify the core job details.
2. **Ignore** navigation menus, footers, "similar jobs" lists, and site advertisements.
3. **Extract** the following fields strictly.
4. **Format** the output as valid JSON only. Do not wrap the output in markdown code blocks.

### OUTPUT SCHEMA:
{
    "companyName": "Name of the company (e.g., Google, StartupInc)",
    "title": "Job title (e.g., Graduate Engineer Trainee)",
    "location": "Job location or 'Remote'",
    "description": "A clean summary of the role. Focus on Responsibilities. Remove HTML tags.",
    "eligibilityCriteria": "Degree, branch, CGPA or backlog requirements as one sentence",
    "salaryLPA": "Annual CTC in lakhs per annum as a number if explicitly mentioned, otherwise null",
    "applicationDeadline": "Last date to apply as YYYY-MM-DD if mentioned, otherwise null"
}

### CONSTRAINT:
If a piece of information is missing, set the value to null. Do not hallucinate or guess.

### RAW CONTENT:
%s
`

// ExtractJobOpening takes a pasted job posting and returns the opening
// fields as a JSON string for the create form to prefill.
func (s *LLMService) ExtractJobOpening(ctx context.Context, rawHTML string) (string, error) {
	if !s.Enabled() {
		return "", ErrLLMDisabled
	}
	if len(rawHTML) > maxExtractionInput {
		rawHTML = rawHTML[:maxExtractionInput]
	}
	prompt := fmt.Sprintf(jobOpeningExtractionPrompt, rawHTML)
	resp, err := llms.GenerateFromSinglePrompt(ctx, s.Client, prompt)
	if err != nil {
		return "", err
	}
	return stripCodeFence(resp), nil
}

// stripCodeFence removes a ```json fence the model sometimes adds anyway.
func stripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimPrefix(s, "json")
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}
