package ports

import "context"

// EmailSender dispatches one transactional message. No retries happen at
// this boundary; a failed send is surfaced to the caller as-is.
type EmailSender interface {
	Send(ctx context.Context, to, subject, body string) error
}
