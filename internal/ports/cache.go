package ports

import (
	"context"
	"time"
)

// OtpStore keeps at most one pending code per email with a native TTL.
// Put overwrites any prior code for the same email (last write wins);
// expiry is delegated entirely to the store, never polled here.
type OtpStore interface {
	Put(ctx context.Context, email, code string, ttl time.Duration) error
	// Get returns the pending code, or "" with a nil error when no code
	// is stored or it has already expired.
	Get(ctx context.Context, email string) (string, error)
	Delete(ctx context.Context, email string) error
}
