package domain

import "errors"

var (
	// ErrNotFound is returned when the requested resource does not exist.
	// Keeping this sentinel in domain allows adapters to map it consistently to 404/NOT_FOUND.
	ErrNotFound = errors.New("resource not found")
	// ErrInvalidCredentials hides whether the username or the password failed.
	// The reason is to prevent account-enumeration side channels.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrAlreadyExists signals that the email or display name is already registered.
	// The storage layer raises it too, so races between pre-check and insert stay covered.
	ErrAlreadyExists = errors.New("already exists")
	// ErrInvalidOtp covers wrong, expired, and never-issued codes alike.
	ErrInvalidOtp = errors.New("invalid or expired otp")
	// ErrUnauthenticated is returned when a protected route is reached without a token.
	ErrUnauthenticated = errors.New("authentication required")
	// ErrTokenExpired marks a structurally valid token past its expiry.
	ErrTokenExpired = errors.New("token expired")
	// ErrTokenMalformed marks a token that cannot be parsed or whose signature fails.
	ErrTokenMalformed = errors.New("token malformed")
	// ErrOwnership signals that the authenticated user does not own the resource it mutates.
	ErrOwnership = errors.New("not the resource owner")
	// ErrDeliveryFailure marks a failed outbound email send. The stored OTP stays valid,
	// so the caller can retry verification once the code reaches them another way.
	ErrDeliveryFailure = errors.New("email delivery failed")
	ErrInvalidInput    = errors.New("invalid input")
)
