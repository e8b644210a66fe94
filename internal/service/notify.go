package service

import (
	"context"
	"time"

	"github.com/guttosm/carton-service/internal/domain/model"
	"github.com/guttosm/carton-service/internal/logger"
)

// Notifier is the fire-and-forget progress channel the cascade writes
// human-readable messages to. Implementations must never fail the caller;
// sink errors are swallowed.
type Notifier interface {
	Log(message string)
	Warn(message string)
}

// NotifierFactory builds the notifier for one cascade run, bound to its
// run id.
type NotifierFactory func(runID string) Notifier

// runNotifier writes messages to the structured logger and, best effort,
// persists them as run-log entries.
type runNotifier struct {
	runID        string
	logging      LoggingService
	writeTimeout time.Duration
}

// NewRunNotifier returns a NotifierFactory producing notifiers that log via
// zerolog and persist entries through the given logging service. A nil
// logging service disables persistence.
func NewRunNotifier(logging LoggingService) NotifierFactory {
	return func(runID string) Notifier {
		return &runNotifier{
			runID:        runID,
			logging:      logging,
			writeTimeout: 5 * time.Second,
		}
	}
}

// Log emits an informational progress message.
func (n *runNotifier) Log(message string) {
	l := logger.Logger()
	l.Info().Str("run_id", n.runID).Msg(message)
	n.persist("info", message)
}

// Warn emits a user-facing warning.
func (n *runNotifier) Warn(message string) {
	l := logger.Logger()
	l.Warn().Str("run_id", n.runID).Msg(message)
	n.persist("warn", message)
}

// persist stores the message as a run-log entry. Failures are swallowed so
// the sink can never abort record processing.
func (n *runNotifier) persist(level, message string) {
	if n.logging == nil {
		return
	}
	entry := &model.LogEntry{
		Timestamp: time.Now(),
		Level:     level,
		Message:   message,
		RunID:     n.runID,
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), n.writeTimeout)
		defer cancel()
		_ = n.logging.CreateLog(ctx, entry)
	}()
}
