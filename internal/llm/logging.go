package llm

import (
	"context"
	"time"

	"github.com/iamtheretronerd/levelup/internal/logger"
)

// LoggingProvider is a decorator that logs every LLM request.
type LoggingProvider struct {
	inner Provider
	log   *logger.Logger
}

// WithLogging wraps a Provider with request logging.
func WithLogging(p Provider, log *logger.Logger) Provider {
	return &LoggingProvider{inner: p, log: log.With("component", "llm")}
}

func (l *LoggingProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()

	resp, err := l.inner.Generate(ctx, req)

	latency := time.Since(start)

	if err != nil {
		l.log.Warn("generation failed",
			"model", l.inner.ModelID(),
			"latency_ms", latency.Milliseconds(),
			"error", err,
		)
		return nil, err
	}

	l.log.Info("generation complete",
		"model", resp.Model,
		"latency_ms", latency.Milliseconds(),
		"input_tokens", resp.Usage.InputTokens,
		"output_tokens", resp.Usage.OutputTokens,
		"stop_reason", resp.StopReason,
	)

	return resp, nil
}

func (l *LoggingProvider) ModelID() string {
	return l.inner.ModelID()
}
