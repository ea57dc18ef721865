package postgres

import "gorm.io/gorm"

// Repositories bundles the Postgres-backed repositories behind one
// construction point so bootstrap wires storage in a single call.
type Repositories struct {
	Users *UserRepository
	Items *ItemRepository
}

func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		Users: NewUserRepository(db),
		Items: NewItemRepository(db),
	}
}
