package ports

import (
	"context"

	"github.com/Rango-SAD/lost-and-found-project/internal/domain"
)

// UserRepository persists identity records. Create must surface
// domain.ErrAlreadyExists on an email/name unique violation so the
// orchestrator can treat the storage constraint as the race-free check.
type UserRepository interface {
	Create(ctx context.Context, user domain.User) (domain.User, error)
	GetByID(ctx context.Context, id int64) (domain.User, error)
	GetByEmail(ctx context.Context, email string) (domain.User, error)
	GetByName(ctx context.Context, name string) (domain.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	ExistsByName(ctx context.Context, name string) (bool, error)
}

// ItemPage is one window of filtered listings plus the unwindowed total.
type ItemPage struct {
	Items      []domain.Item
	TotalCount int64
	Page       int
	PageSize   int
}

// TotalPages derives the page count callers need for pagination controls.
func (p ItemPage) TotalPages() int {
	if p.PageSize <= 0 {
		return 0
	}
	return int((p.TotalCount + int64(p.PageSize) - 1) / int64(p.PageSize))
}

// ItemRepository persists listings and executes the dynamic filter.
// Filter applies the conjunctive constraint list, orders by id descending,
// and windows the result after filtering.
type ItemRepository interface {
	Create(ctx context.Context, item domain.Item) (domain.Item, error)
	GetByID(ctx context.Context, id int64) (domain.Item, error)
	Update(ctx context.Context, item domain.Item) (domain.Item, error)
	Delete(ctx context.Context, id int64) error
	Filter(ctx context.Context, filter domain.ItemFilter) (ItemPage, error)
}
