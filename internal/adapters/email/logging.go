package email

import (
	"context"
	"log/slog"
)

// LoggingSender writes messages to the log instead of dispatching them.
// It backs local/dev runtimes where no SMTP host is configured, the same way
// the ephemeral JWT keypair unblocks startup without static keys.
type LoggingSender struct {
	logger *slog.Logger
}

// NewLoggingSender creates a log-only sender.
func NewLoggingSender(logger *slog.Logger) *LoggingSender {
	if logger == nil {
		logger = slog.Default()
	}
	return &LoggingSender{logger: logger}
}

func (s *LoggingSender) Send(ctx context.Context, to, subject, body string) error {
	s.logger.InfoContext(ctx, "email send skipped (logging sender)",
		"module", "email",
		"layer", "adapter",
		"operation", "send",
		"outcome", "success",
		"to", to,
		"subject", subject,
		"body_bytes", len(body),
	)
	return nil
}
