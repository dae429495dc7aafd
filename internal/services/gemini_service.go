package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"sync"

	"google.golang.org/genai"

	"github.com/example/wanderlust/internal/models"
	"github.com/example/wanderlust/internal/retry"
)

// GeminiGenerator calls the Gemini API with Google Search grounding enabled.
type GeminiGenerator struct {
	apiKey string
	model  string

	once   sync.Once
	client *genai.Client
	err    error
}

// NewGeminiGenerator builds a generator. An empty apiKey is allowed; every
// Generate call then fails with ErrMissingAPIKey.
func NewGeminiGenerator(apiKey, model string) *GeminiGenerator {
	return &GeminiGenerator{apiKey: strings.TrimSpace(apiKey), model: model}
}

func (g *GeminiGenerator) Configured() bool {
	return g.apiKey != ""
}

// getClient builds the shared client once. It does not take the request
// context, so a cancelled first request cannot affect later ones.
func (g *GeminiGenerator) getClient() (*genai.Client, error) {
	g.once.Do(func() {
		g.client, g.err = genai.NewClient(context.Background(), &genai.ClientConfig{
			APIKey:  g.apiKey,
			Backend: genai.BackendGeminiAPI,
		})
	})
	return g.client, g.err
}

func (g *GeminiGenerator) Generate(ctx context.Context, req GenerateRequest) (*GenerateResult, error) {
	if !g.Configured() {
		return nil, ErrMissingAPIKey
	}
	client, err := g.getClient()
	if err != nil {
		return nil, retry.NewRemoteError(retry.KindTransport, fmt.Errorf("create gemini client: %w", err))
	}

	contents := make([]*genai.Content, 0, len(req.History)+1)
	for _, m := range req.History {
		role := genai.RoleUser
		if m.Role == models.RoleModel {
			role = genai.RoleModel
		}
		contents = append(contents, genai.NewContentFromText(m.Text, role))
	}
	contents = append(contents, genai.NewContentFromText(req.Prompt, genai.RoleUser))

	cfg := &genai.GenerateContentConfig{
		Temperature: genai.Ptr[float32](0.7),
		Tools:       []*genai.Tool{{GoogleSearch: &genai.GoogleSearch{}}},
	}
	if req.SystemInstruction != "" {
		cfg.SystemInstruction = genai.NewContentFromText(req.SystemInstruction, genai.RoleUser)
	}

	resp, err := client.Models.GenerateContent(ctx, g.model, contents, cfg)
	if err != nil {
		return nil, classifyGeminiError(err)
	}

	text := strings.TrimSpace(resp.Text())
	if text == "" {
		return nil, retry.NewRemoteError(retry.KindInvalidResponse, errors.New("gemini returned no text"))
	}
	return &GenerateResult{Text: text, Sources: groundingSources(resp)}, nil
}

// classifyGeminiError turns SDK errors into the retry taxonomy.
func classifyGeminiError(err error) error {
	var apiErr genai.APIError
	if !errors.As(err, &apiErr) {
		var apiErrPtr *genai.APIError
		if !errors.As(err, &apiErrPtr) || apiErrPtr == nil {
			return retry.NewRemoteError(retry.KindTransport, err)
		}
		apiErr = *apiErrPtr
	}

	switch {
	case apiErr.Code == http.StatusTooManyRequests || apiErr.Status == "RESOURCE_EXHAUSTED":
		return retry.NewRemoteError(retry.KindRateLimited, err)
	case apiErr.Code == http.StatusUnauthorized || apiErr.Code == http.StatusForbidden,
		apiErr.Code == http.StatusBadRequest && strings.Contains(strings.ToLower(apiErr.Message), "api key"):
		return fmt.Errorf("%w: %v", ErrInvalidAPIKey, err)
	default:
		return retry.NewRemoteError(retry.KindTransport, err)
	}
}

// groundingSources lists the web citations of the first candidate, once per URI.
func groundingSources(resp *genai.GenerateContentResponse) []models.Source {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0] == nil {
		return nil
	}
	meta := resp.Candidates[0].GroundingMetadata
	if meta == nil {
		return nil
	}

	seen := make(map[string]bool)
	var sources []models.Source
	for _, chunk := range meta.GroundingChunks {
		if chunk == nil || chunk.Web == nil || chunk.Web.URI == "" || seen[chunk.Web.URI] {
			continue
		}
		seen[chunk.Web.URI] = true
		title := chunk.Web.Title
		if title == "" {
			title = chunk.Web.URI
		}
		sources = append(sources, models.Source{URI: chunk.Web.URI, Title: title})
	}
	return sources
}
