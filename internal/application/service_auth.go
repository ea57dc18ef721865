package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/Rango-SAD/lost-and-found-project/internal/domain"
	"github.com/Rango-SAD/lost-and-found-project/internal/ports"
)

// Register creates an account once the supplied OTP proves control of the
// email address. Checks run in a fixed order so the caller always learns the
// earliest failing precondition: code first, then email, then display name.
func (s *Service) Register(ctx context.Context, req RegisterRequest) (AuthResponse, error) {
	email := normalizeEmail(req.Email)
	name := strings.TrimSpace(req.Username)
	if email == "" || !strings.Contains(email, "@") {
		return AuthResponse{}, fmt.Errorf("%w: a valid email is required", domain.ErrInvalidInput)
	}
	if name == "" {
		return AuthResponse{}, fmt.Errorf("%w: username is required", domain.ErrInvalidInput)
	}
	if err := domain.ValidatePassword(req.Password); err != nil {
		return AuthResponse{}, err
	}

	ok, err := s.VerifyOtp(ctx, email, req.Otp)
	if err != nil {
		return AuthResponse{}, err
	}
	if !ok {
		return AuthResponse{}, domain.ErrInvalidOtp
	}

	taken, err := s.users.ExistsByEmail(ctx, email)
	if err != nil {
		return AuthResponse{}, fmt.Errorf("check email availability: %w", err)
	}
	if taken {
		return AuthResponse{}, fmt.Errorf("%w: email is already registered", domain.ErrAlreadyExists)
	}
	taken, err = s.users.ExistsByName(ctx, name)
	if err != nil {
		return AuthResponse{}, fmt.Errorf("check username availability: %w", err)
	}
	if taken {
		return AuthResponse{}, fmt.Errorf("%w: username is already registered", domain.ErrAlreadyExists)
	}

	hash, err := s.hasher.Hash(req.Password)
	if err != nil {
		return AuthResponse{}, fmt.Errorf("hash password: %w", err)
	}

	now := s.nowFn().UTC()
	user, err := s.users.Create(ctx, domain.User{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		// A concurrent registration can win the race between the
		// existence check and the insert; the unique index is the
		// final arbiter.
		if errors.Is(err, domain.ErrAlreadyExists) {
			return AuthResponse{}, fmt.Errorf("%w: account is already registered", domain.ErrAlreadyExists)
		}
		return AuthResponse{}, fmt.Errorf("create user: %w", err)
	}

	slog.Default().InfoContext(ctx, "user registered",
		"module", "application",
		"layer", "application",
		"operation", "register",
		"outcome", "success",
		"user_id", user.ID,
	)
	return s.issueToken(user)
}

// Login authenticates by display name. Unknown names and wrong passwords
// yield the same error so the response does not reveal which part failed.
func (s *Service) Login(ctx context.Context, req LoginRequest) (AuthResponse, error) {
	name := strings.TrimSpace(req.Username)
	if name == "" || req.Password == "" {
		return AuthResponse{}, domain.ErrInvalidCredentials
	}

	user, err := s.users.GetByName(ctx, name)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return AuthResponse{}, domain.ErrInvalidCredentials
		}
		return AuthResponse{}, fmt.Errorf("load user: %w", err)
	}
	if err := s.hasher.Compare(user.PasswordHash, req.Password); err != nil {
		return AuthResponse{}, domain.ErrInvalidCredentials
	}

	slog.Default().InfoContext(ctx, "user logged in",
		"module", "application",
		"layer", "application",
		"operation", "login",
		"outcome", "success",
		"user_id", user.ID,
	)
	return s.issueToken(user)
}

// ValidateToken parses and verifies a session token.
func (s *Service) ValidateToken(token string) (ports.AuthClaims, error) {
	if strings.TrimSpace(token) == "" {
		return ports.AuthClaims{}, domain.ErrUnauthenticated
	}
	return s.signer.ParseAndValidate(token)
}

// ExtractUserID validates a token and returns just the subject id. It runs
// the full validation; a token unfit for ValidateToken is unfit here too.
func (s *Service) ExtractUserID(token string) (int64, error) {
	claims, err := s.ValidateToken(token)
	if err != nil {
		return 0, err
	}
	return claims.UserID, nil
}

// CurrentUser resolves the authenticated account's profile.
func (s *Service) CurrentUser(ctx context.Context, userID int64) (MeResponse, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return MeResponse{}, err
	}
	return MeResponse{ID: user.ID, Name: user.Name, Email: user.Email}, nil
}

func (s *Service) issueToken(user domain.User) (AuthResponse, error) {
	now := s.nowFn()
	token, err := s.signer.Sign(ports.AuthClaims{
		UserID:    user.ID,
		Email:     user.Email,
		Name:      user.Name,
		IssuedAt:  now,
		ExpiresAt: now.Add(s.cfg.TokenTTL),
	})
	if err != nil {
		return AuthResponse{}, fmt.Errorf("sign token: %w", err)
	}
	return AuthResponse{
		Token:     token,
		ExpiresIn: int64(s.cfg.TokenTTL.Seconds()),
	}, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
