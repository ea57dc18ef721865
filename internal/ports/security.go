package ports

import "time"

type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) error
}

// AuthClaims is the identity context carried by a session token.
// It is derived once per request by the auth gate and never re-parsed
// downstream.
type AuthClaims struct {
	UserID    int64     `json:"user_id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	IssuedAt  time.Time `json:"issued_at"`
	ExpiresAt time.Time `json:"expires_at"`
	KeyID     string    `json:"kid"`
}

// TokenSigner issues and validates tamper-evident session tokens.
// ParseAndValidate must fail with domain.ErrTokenExpired when the token is
// structurally valid but past expiry and domain.ErrTokenMalformed otherwise.
type TokenSigner interface {
	Sign(claims AuthClaims) (string, error)
	ParseAndValidate(token string) (AuthClaims, error)
}
