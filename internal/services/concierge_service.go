package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/example/wanderlust/internal/models"
	"github.com/example/wanderlust/internal/retry"
)

// maxHistory caps how many earlier chat turns are sent with each question.
const maxHistory = 20

// SettingsSource supplies the current site settings.
type SettingsSource interface {
	Settings() models.SiteSettings
}

// Concierge answers free-form travel questions in a chat.
type Concierge struct {
	gen       Generator
	site      SettingsSource
	retryOpts []retry.Option
}

// NewConcierge creates a Concierge. retryOpts tune the rate limit backoff.
func NewConcierge(gen Generator, site SettingsSource, retryOpts ...retry.Option) *Concierge {
	return &Concierge{gen: gen, site: site, retryOpts: retryOpts}
}

// Ask sends text together with the earlier turns and returns the model's reply.
func (c *Concierge) Ask(ctx context.Context, history []models.ChatMessage, text string) (*models.ChatMessage, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, ErrEmptyPrompt
	}
	if !c.gen.Configured() {
		return nil, ErrMissingAPIKey
	}

	if len(history) > maxHistory {
		history = history[len(history)-maxHistory:]
	}
	req := GenerateRequest{
		SystemInstruction: conciergeInstruction(c.site.Settings().SiteName),
		History:           history,
		Prompt:            text,
	}

	res, err := retry.Do(ctx, func(ctx context.Context) (*GenerateResult, error) {
		return c.gen.Generate(ctx, req)
	}, c.retryOpts...)
	if err != nil {
		return nil, err
	}

	return &models.ChatMessage{Role: models.RoleModel, Text: res.Text, Sources: res.Sources}, nil
}

func conciergeInstruction(siteName string) string {
	if siteName == "" {
		siteName = "our travel site"
	}
	return fmt.Sprintf("You are the friendly travel concierge of %s. "+
		"Answer questions about destinations, flights, hotels, visas, weather and local tips. "+
		"Use Google Search for current prices and events. Keep answers short and practical, "+
		"and format them in Markdown.", siteName)
}

// PlanRequest describes a trip to plan.
type PlanRequest struct {
	Destination string `json:"destination"`
	Duration    int    `json:"duration"`
	Interests   string `json:"interests"`
	Budget      string `json:"budget"`
	Travelers   string `json:"travelers"`
}

// PlanResult is a generated itinerary ready to be saved.
type PlanResult struct {
	Prompt  string          `json:"prompt"`
	Content string          `json:"content"`
	Sources []models.Source `json:"sources,omitempty"`
}

// Planner writes day-by-day itineraries.
type Planner struct {
	gen       Generator
	retryOpts []retry.Option
}

// NewPlanner creates a Planner.
func NewPlanner(gen Generator, retryOpts ...retry.Option) *Planner {
	return &Planner{gen: gen, retryOpts: retryOpts}
}

// Plan generates an itinerary for req.
func (p *Planner) Plan(ctx context.Context, req PlanRequest) (*PlanResult, error) {
	prompt := req.Prompt()
	if prompt == "" {
		return nil, ErrEmptyPrompt
	}
	if !p.gen.Configured() {
		return nil, ErrMissingAPIKey
	}

	res, err := retry.Do(ctx, func(ctx context.Context) (*GenerateResult, error) {
		return p.gen.Generate(ctx, GenerateRequest{
			SystemInstruction: plannerInstruction,
			Prompt:            prompt,
		})
	}, p.retryOpts...)
	if err != nil {
		return nil, err
	}

	return &PlanResult{Prompt: prompt, Content: res.Text, Sources: res.Sources}, nil
}

const plannerInstruction = "You are an expert travel planner. Write a day-by-day itinerary in Markdown " +
	"with a heading per day, morning/afternoon/evening suggestions, estimated costs and practical tips. " +
	"Use Google Search for opening hours and current prices."

// Prompt renders the request as the user prompt. It is empty when no
// destination is given.
func (r PlanRequest) Prompt() string {
	dest := strings.TrimSpace(r.Destination)
	if dest == "" {
		return ""
	}

	days := r.Duration
	if days <= 0 {
		days = 3
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "Plan a %d-day trip to %s", days, dest)
	if v := strings.TrimSpace(r.Travelers); v != "" {
		fmt.Fprintf(&sb, " for %s", v)
	}
	if v := strings.TrimSpace(r.Budget); v != "" {
		fmt.Fprintf(&sb, " on a %s budget", v)
	}
	if v := strings.TrimSpace(r.Interests); v != "" {
		fmt.Fprintf(&sb, ", focusing on %s", v)
	}
	sb.WriteString(".")
	return sb.String()
}
