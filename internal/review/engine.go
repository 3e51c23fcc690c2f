package review

import (
	"context"
	"fmt"
	"time"

	"github.com/AnandvPrajapati/Mission-1-The-Empathetic-Code-Reviewer/internal/cache"
	"github.com/AnandvPrajapati/Mission-1-The-Empathetic-Code-Reviewer/internal/classify"
	"github.com/AnandvPrajapati/Mission-1-The-Empathetic-Code-Reviewer/internal/config"
	"github.com/AnandvPrajapati/Mission-1-The-Empathetic-Code-Reviewer/internal/logging"
	"github.com/AnandvPrajapati/Mission-1-The-Empathetic-Code-Reviewer/internal/providers"
	"github.com/AnandvPrajapati/Mission-1-The-Empathetic-Code-Reviewer/internal/redact"
	"github.com/AnandvPrajapati/Mission-1-The-Empathetic-Code-Reviewer/internal/tone"
)

// Run executes a review using the given request, provider, and configuration.
//
// Run never fails because of the provider: a completion error is absorbed
// into a fallback-body report with Success=false. Errors are returned only
// for local problems (tone pack unreadable, prompt assembly).
func Run(ctx context.Context, req Request, provider providers.Completer, cfg config.Config) (*Report, error) {
	start := time.Now()
	log := logging.Component("engine")

	lang := classify.DetectLanguage(req.CodeSnippet)
	annotations := classify.Annotate(req.ReviewComments)

	report := &Report{
		GeneratedAt:  time.Now(),
		Language:     lang,
		CommentCount: len(req.ReviewComments),
		Annotations:  annotations,
		Provider:     provider.Name(),
		Model:        cfg.Model,
	}

	// Nothing to transform: skip the provider call and assemble an empty
	// body. The header and footer still carry the full metadata.
	if len(req.ReviewComments) == 0 {
		report.Success = true
		report.Timing.TotalMs = time.Since(start).Milliseconds()
		return report, nil
	}

	snippet := req.CodeSnippet
	if cfg.Privacy.RedactSecrets {
		snippet = redact.Secrets(snippet)
	}

	pack, err := tone.Load(cfg.ToneFile)
	if err != nil {
		return nil, err
	}

	userPrompt, err := BuildUserPrompt(snippet, annotations, lang, pack)
	if err != nil {
		return nil, fmt.Errorf("building prompt: %w", err)
	}
	systemPrompt := SystemPrompt(lang)

	c, err := cache.New(cfg.Cache.Enabled, cfg.Cache.Dir, cfg.Cache.TTLSeconds)
	if err != nil {
		log.Warn().Err(err).Msg("cache unavailable, continuing without it")
		c, _ = cache.New(false, "", 0)
	}

	key := cache.BuildKey(provider.Name(), cfg.Model, snippet, req.ReviewComments)
	if body, ok := c.Get(key); ok {
		log.Info().Msg("cache hit, skipping provider call")
		report.Body = body
		report.Success = true
		report.FromCache = true
		report.Timing.TotalMs = time.Since(start).Milliseconds()
		return report, nil
	}

	log.Info().
		Int("comments", len(req.ReviewComments)).
		Str("language", string(lang)).
		Str("provider", provider.Name()).
		Msg("performing empathetic analysis")

	llmStart := time.Now()
	resp, err := provider.Complete(ctx, providers.CompletionRequest{
		SystemPrompt: systemPrompt,
		UserPrompt:   userPrompt,
		MaxTokens:    cfg.MaxTokens,
		Temperature:  cfg.Temperature,
		TopP:         cfg.TopP,
	})
	report.Timing.LLMMs = time.Since(llmStart).Milliseconds()

	if err != nil {
		log.Warn().Err(err).Msg("provider call failed, using fallback analysis")
		report.Body = FallbackBody(snippet, req.ReviewComments, lang)
		report.Success = false
	} else {
		report.Body = resp.Content
		report.Success = true
		report.TokensUsed = resp.TokensUsed
		if err := c.Put(key, resp.Content); err != nil {
			log.Warn().Err(err).Msg("caching response failed")
		}
	}

	report.Timing.TotalMs = time.Since(start).Milliseconds()
	return report, nil
}
