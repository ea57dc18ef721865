// Package application orchestrates registration, authentication, and item
// listing workflows over the domain ports. It owns the business sequencing;
// transport and storage concerns stay in the adapters.
package application

import (
	"time"

	"github.com/Rango-SAD/lost-and-found-project/internal/ports"
)

// Config carries the tunables the workflows need.
type Config struct {
	TokenTTL  time.Duration
	OtpTTL    time.Duration
	OtpLength int
}

// Dependencies lists the ports the service is wired with.
type Dependencies struct {
	Users  ports.UserRepository
	Items  ports.ItemRepository
	Otps   ports.OtpStore
	Mailer ports.EmailSender
	Hasher ports.PasswordHasher
	Signer ports.TokenSigner
}

// Service implements the account and item workflows.
type Service struct {
	cfg    Config
	users  ports.UserRepository
	items  ports.ItemRepository
	otps   ports.OtpStore
	mailer ports.EmailSender
	hasher ports.PasswordHasher
	signer ports.TokenSigner

	// nowFn enables deterministic time in tests.
	nowFn func() time.Time
}

func NewService(cfg Config, deps Dependencies) *Service {
	if cfg.TokenTTL <= 0 {
		cfg.TokenTTL = 24 * time.Hour
	}
	if cfg.OtpTTL <= 0 {
		cfg.OtpTTL = 5 * time.Minute
	}
	if cfg.OtpLength <= 0 {
		cfg.OtpLength = 6
	}
	return &Service{
		cfg:    cfg,
		users:  deps.Users,
		items:  deps.Items,
		otps:   deps.Otps,
		mailer: deps.Mailer,
		hasher: deps.Hasher,
		signer: deps.Signer,
		nowFn:  time.Now,
	}
}

// TokenTTL exposes the session lifetime so the transport layer can align
// cookie expiry with token expiry.
func (s *Service) TokenTTL() time.Duration { return s.cfg.TokenTTL }
