package application

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/Rango-SAD/lost-and-found-project/internal/domain"
	"github.com/Rango-SAD/lost-and-found-project/internal/ports"
)

type fixture struct {
	service *Service
	users   *fakeUsers
	items   *fakeItems
	otps    *fakeOtps
	mailer  *fakeMailer
	signer  *fakeSigner
	clock   *fakeClock
}

func defaultTestConfig() Config {
	return Config{
		TokenTTL:  time.Hour,
		OtpTTL:    5 * time.Minute,
		OtpLength: 6,
	}
}

func newFixture() *fixture {
	return newFixtureWithConfig(defaultTestConfig())
}

func newFixtureWithConfig(cfg Config) *fixture {
	users := &fakeUsers{byID: make(map[int64]domain.User)}
	items := &fakeItems{byID: make(map[int64]domain.Item)}
	otps := &fakeOtps{codes: make(map[string]string)}
	mailer := &fakeMailer{}
	signer := &fakeSigner{}
	clock := &fakeClock{now: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)}

	svc := NewService(cfg, Dependencies{
		Users:  users,
		Items:  items,
		Otps:   otps,
		Mailer: mailer,
		Hasher: fakeHasher{},
		Signer: signer,
	})
	svc.nowFn = clock.Now

	return &fixture{
		service: svc,
		users:   users,
		items:   items,
		otps:    otps,
		mailer:  mailer,
		signer:  signer,
		clock:   clock,
	}
}

// storeOtp plants a pending code the way RequestOtp would.
func (f *fixture) storeOtp(email, code string) {
	_ = f.otps.Put(context.Background(), email, code, 5*time.Minute)
}

// registeredUser seeds an account and returns it.
func (f *fixture) registeredUser(name, email, password string) domain.User {
	user, err := f.users.Create(context.Background(), domain.User{
		Name:         name,
		Email:        email,
		PasswordHash: "hashed:" + password,
		CreatedAt:    f.clock.Now(),
		UpdatedAt:    f.clock.Now(),
	})
	if err != nil {
		panic(err)
	}
	return user
}

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

type fakeUsers struct {
	mu     sync.Mutex
	nextID int64
	byID   map[int64]domain.User

	createErr error
}

func (f *fakeUsers) Create(_ context.Context, user domain.User) (domain.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.createErr != nil {
		return domain.User{}, f.createErr
	}
	for _, existing := range f.byID {
		if existing.Email == user.Email || existing.Name == user.Name {
			return domain.User{}, domain.ErrAlreadyExists
		}
	}
	f.nextID++
	user.ID = f.nextID
	f.byID[user.ID] = user
	return user, nil
}

func (f *fakeUsers) GetByID(_ context.Context, id int64) (domain.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	user, ok := f.byID[id]
	if !ok {
		return domain.User{}, domain.ErrNotFound
	}
	return user, nil
}

func (f *fakeUsers) GetByEmail(_ context.Context, email string) (domain.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, user := range f.byID {
		if user.Email == email {
			return user, nil
		}
	}
	return domain.User{}, domain.ErrNotFound
}

func (f *fakeUsers) GetByName(_ context.Context, name string) (domain.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, user := range f.byID {
		if user.Name == name {
			return user, nil
		}
	}
	return domain.User{}, domain.ErrNotFound
}

func (f *fakeUsers) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	_, err := f.GetByEmail(ctx, email)
	if errors.Is(err, domain.ErrNotFound) {
		return false, nil
	}
	return err == nil, err
}

func (f *fakeUsers) ExistsByName(ctx context.Context, name string) (bool, error) {
	_, err := f.GetByName(ctx, name)
	if errors.Is(err, domain.ErrNotFound) {
		return false, nil
	}
	return err == nil, err
}

type fakeItems struct {
	mu     sync.Mutex
	nextID int64
	byID   map[int64]domain.Item
}

func (f *fakeItems) Create(_ context.Context, item domain.Item) (domain.Item, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	item.ID = f.nextID
	f.byID[item.ID] = item
	return item, nil
}

func (f *fakeItems) GetByID(_ context.Context, id int64) (domain.Item, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	item, ok := f.byID[id]
	if !ok {
		return domain.Item{}, domain.ErrNotFound
	}
	return item, nil
}

func (f *fakeItems) Update(_ context.Context, item domain.Item) (domain.Item, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.byID[item.ID]; !ok {
		return domain.Item{}, domain.ErrNotFound
	}
	f.byID[item.ID] = item
	return item, nil
}

func (f *fakeItems) Delete(_ context.Context, id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.byID[id]; !ok {
		return domain.ErrNotFound
	}
	delete(f.byID, id)
	return nil
}

func (f *fakeItems) Filter(_ context.Context, filter domain.ItemFilter) (ports.ItemPage, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	filter = filter.Normalized()

	matched := make([]domain.Item, 0)
	for _, item := range f.byID {
		if filter.Matches(item) {
			matched = append(matched, item)
		}
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].ID > matched[j].ID })

	total := int64(len(matched))
	start := filter.Page * filter.PageSize
	if start > len(matched) {
		start = len(matched)
	}
	end := start + filter.PageSize
	if end > len(matched) {
		end = len(matched)
	}
	return ports.ItemPage{
		Items:      matched[start:end],
		TotalCount: total,
		Page:       filter.Page,
		PageSize:   filter.PageSize,
	}, nil
}

type fakeOtps struct {
	mu    sync.Mutex
	codes map[string]string

	putErr error
	getErr error
}

func (f *fakeOtps) Put(_ context.Context, email, code string, _ time.Duration) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.putErr != nil {
		return f.putErr
	}
	f.codes[email] = code
	return nil
}

func (f *fakeOtps) Get(_ context.Context, email string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.getErr != nil {
		return "", f.getErr
	}
	return f.codes[email], nil
}

func (f *fakeOtps) Delete(_ context.Context, email string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.codes, email)
	return nil
}

type sentMail struct {
	To      string
	Subject string
	Body    string
}

type fakeMailer struct {
	mu      sync.Mutex
	sent    []sentMail
	sendErr error
}

func (f *fakeMailer) Send(_ context.Context, to, subject, body string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.sendErr != nil {
		return f.sendErr
	}
	f.sent = append(f.sent, sentMail{To: to, Subject: subject, Body: body})
	return nil
}

func (f *fakeMailer) sentCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.sent)
}

func (f *fakeMailer) lastSent() (sentMail, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.sent) == 0 {
		return sentMail{}, false
	}
	return f.sent[len(f.sent)-1], true
}

// fakeHasher makes hashes deterministic so tests can seed users directly.
type fakeHasher struct{}

func (fakeHasher) Hash(password string) (string, error) {
	return "hashed:" + password, nil
}

func (fakeHasher) Compare(hash, password string) error {
	if hash != "hashed:"+password {
		return errors.New("password mismatch")
	}
	return nil
}

type fakeSigner struct {
	mu     sync.Mutex
	signed []ports.AuthClaims
}

func (f *fakeSigner) Sign(claims ports.AuthClaims) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.signed = append(f.signed, claims)
	return fmt.Sprintf("token-%d", claims.UserID), nil
}

func (f *fakeSigner) ParseAndValidate(token string) (ports.AuthClaims, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, claims := range f.signed {
		if token == fmt.Sprintf("token-%d", claims.UserID) {
			return claims, nil
		}
	}
	if strings.HasPrefix(token, "token-") {
		return ports.AuthClaims{}, domain.ErrTokenExpired
	}
	return ports.AuthClaims{}, domain.ErrTokenMalformed
}
