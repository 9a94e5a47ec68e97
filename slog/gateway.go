package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/jcharovsky/docs2skill"
)

// Ensure LoggingGateway implements docs2skill.Gateway.
var _ docs2skill.Gateway = (*LoggingGateway)(nil)

// LoggingGateway wraps a Gateway with logging. Prompts and credentials are
// never logged.
type LoggingGateway struct {
	next   docs2skill.Gateway
	logger *slog.Logger
}

// NewLoggingGateway creates a new LoggingGateway.
func NewLoggingGateway(next docs2skill.Gateway, logger *slog.Logger) *LoggingGateway {
	return &LoggingGateway{next: next, logger: logger}
}

// Generate delegates to the wrapped gateway and logs the call.
func (g *LoggingGateway) Generate(ctx context.Context, cfg docs2skill.ProviderConfig, system, user string) (text string, err error) {
	defer func(begin time.Time) {
		g.logger.Info("llm generate",
			"provider", cfg.Provider,
			"model", cfg.Model,
			"prompt_bytes", len(system)+len(user),
			"bytes", len(text),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return g.next.Generate(ctx, cfg, system, user)
}
