package service

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/jmallard/compass/internal/domain"
)

// UseCaseEvent is one completed coaching operation: a chat turn, an
// action completion, a session close.
type UseCaseEvent struct {
	Name      string
	UserID    string
	Intent    domain.IntentType // set for conversational turns only
	Duration  time.Duration
	Success   bool
	Err       error
	StartedAt time.Time
}

// UseCaseObserver receives coaching telemetry. The core never depends
// on an observer being present.
type UseCaseObserver interface {
	ObserveUseCase(ctx context.Context, event UseCaseEvent)
}

// NoopUseCaseObserver ignores all events.
type NoopUseCaseObserver struct{}

func (NoopUseCaseObserver) ObserveUseCase(context.Context, UseCaseEvent) {}

type logUseCaseObserver struct {
	logger *slog.Logger
}

// NewLogUseCaseObserver writes one slog line per coaching operation to
// the provided writer.
func NewLogUseCaseObserver(w io.Writer) UseCaseObserver {
	if w == nil {
		return NoopUseCaseObserver{}
	}
	return &logUseCaseObserver{
		logger: slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelInfo})),
	}
}

func (o *logUseCaseObserver) ObserveUseCase(ctx context.Context, event UseCaseEvent) {
	attrs := make([]any, 0, 12)
	attrs = append(attrs,
		"use_case", event.Name,
		"user_id", event.UserID,
		"duration_ms", event.Duration.Milliseconds(),
		"success", event.Success,
	)
	if event.Intent != "" {
		attrs = append(attrs, "intent", string(event.Intent))
	}
	if event.Err != nil {
		attrs = append(attrs, "error", event.Err.Error())
		o.logger.ErrorContext(ctx, "coach_use_case", attrs...)
		return
	}
	o.logger.InfoContext(ctx, "coach_use_case", attrs...)
}

func useCaseObserverOrNoop(observers []UseCaseObserver) UseCaseObserver {
	for _, obs := range observers {
		if obs != nil {
			return obs
		}
	}
	return NoopUseCaseObserver{}
}
