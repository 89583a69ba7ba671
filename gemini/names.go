// Package gemini implements proper name extraction using Google Gemini.
package gemini

import (
	"context"
	"strings"

	pdfextractor "github.com/D2X-Enterprises/pdf-extractor"
	"golang.org/x/time/rate"
	"google.golang.org/genai"
)

const model = "gemini-2.5-flash"

// Ensure NameExtractor implements pdfextractor.NameExtractor at compile time.
var _ pdfextractor.NameExtractor = (*NameExtractor)(nil)

// NameExtractor finds person names in OCR text using Gemini. Calls are rate
// limited with a token bucket so concurrent page aggregation stays within the
// API quota.
type NameExtractor struct {
	client  *genai.Client
	limiter *rate.Limiter
}

// NewNameExtractor creates a NameExtractor limited to rps requests per second
// with a burst of 1.
func NewNameExtractor(client *genai.Client, rps float64) *NameExtractor {
	return &NameExtractor{
		client:  client,
		limiter: rate.NewLimiter(rate.Limit(rps), 1),
	}
}

// ExtractNames returns every person name occurrence in text, in order of
// appearance, with repeats preserved so callers can count occurrences.
func (e *NameExtractor) ExtractNames(ctx context.Context, text string) ([]string, error) {
	if strings.TrimSpace(text) == "" {
		return nil, nil
	}

	if err := e.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	result, err := e.client.Models.GenerateContent(ctx, model,
		[]*genai.Content{{
			Parts: []*genai.Part{{Text: BuildUserPrompt(text)}},
		}},
		BuildConfig(),
	)
	if err != nil {
		return nil, err
	}
	if result == nil {
		return nil, pdfextractor.Errorf(pdfextractor.EINTERNAL, "gemini returned nil result")
	}

	return ParseNames(result.Text()), nil
}

// BuildConfig returns the GenerateContentConfig for Gemini API calls.
func BuildConfig() *genai.GenerateContentConfig {
	temp := float32(0.0)
	return &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{
				Text: "You identify names of people in text. Output one name per line, in order of appearance, repeating a name each time it occurs. Output names exactly as written, with no numbering, commentary, or other text. If the text contains no person names, output nothing.",
			}},
		},
		Temperature: &temp,
	}
}

// BuildUserPrompt builds the user prompt containing the page text.
func BuildUserPrompt(text string) string {
	var sb strings.Builder
	sb.WriteString("List every person name occurrence in the following text.\n\n")
	sb.WriteString("<text>\n")
	sb.WriteString(text)
	sb.WriteString("\n</text>")
	return sb.String()
}

// ParseNames splits a model response into individual names, one per line,
// dropping blank lines and surrounding whitespace.
func ParseNames(response string) []string {
	var names []string
	for _, line := range strings.Split(response, "\n") {
		name := strings.TrimSpace(line)
		if name == "" {
			continue
		}
		names = append(names, name)
	}
	return names
}
