package application

import (
	"context"
	"crypto/rand"
	"crypto/subtle"
	"fmt"
	"log/slog"
	"math/big"
	"strings"

	"github.com/Rango-SAD/lost-and-found-project/internal/domain"
)

// RequestOtp generates a verification code, stores it under the email with a
// TTL, and mails it. The code is stored before sending so a slow mail relay
// cannot leave a delivered code unverifiable. A repeat request overwrites the
// previous code and restarts the TTL.
func (s *Service) RequestOtp(ctx context.Context, req SendOtpRequest) error {
	email := normalizeEmail(req.Email)
	if email == "" || !strings.Contains(email, "@") {
		return fmt.Errorf("%w: a valid email is required", domain.ErrInvalidInput)
	}

	code, err := generateOtp(s.cfg.OtpLength)
	if err != nil {
		return fmt.Errorf("generate otp: %w", err)
	}
	if err := s.otps.Put(ctx, email, code, s.cfg.OtpTTL); err != nil {
		return fmt.Errorf("store otp: %w", err)
	}

	subject := "Your OTP Code for Registration"
	body := fmt.Sprintf("Your verification code is %s. It expires in %d minutes.",
		code, int(s.cfg.OtpTTL.Minutes()))
	if err := s.mailer.Send(ctx, email, subject, body); err != nil {
		// The stored code stays valid; the client may retry the send.
		return fmt.Errorf("%w: %v", domain.ErrDeliveryFailure, err)
	}

	slog.Default().InfoContext(ctx, "otp sent",
		"module", "application",
		"layer", "application",
		"operation", "request_otp",
		"outcome", "success",
	)
	return nil
}

// VerifyOtp checks a submitted code against the stored one. A match consumes
// the code; a mismatch leaves it in place so a typo does not burn the code.
func (s *Service) VerifyOtp(ctx context.Context, email, code string) (bool, error) {
	email = normalizeEmail(email)
	code = strings.TrimSpace(code)
	if code == "" {
		return false, nil
	}

	stored, err := s.otps.Get(ctx, email)
	if err != nil {
		return false, fmt.Errorf("load otp: %w", err)
	}
	if stored == "" {
		return false, nil
	}
	if subtle.ConstantTimeCompare([]byte(stored), []byte(code)) != 1 {
		return false, nil
	}
	if err := s.otps.Delete(ctx, email); err != nil {
		return false, fmt.Errorf("consume otp: %w", err)
	}
	return true, nil
}

// generateOtp draws each digit independently so every code of the given
// length is equally likely.
func generateOtp(length int) (string, error) {
	var b strings.Builder
	b.Grow(length)
	for i := 0; i < length; i++ {
		n, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			return "", err
		}
		b.WriteByte(byte('0' + n.Int64()))
	}
	return b.String(), nil
}
