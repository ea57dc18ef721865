package postgres

import "time"

// userModel is the persistence shape for domain.User.
type userModel struct {
	ID           int64     `gorm:"column:id;primaryKey;autoIncrement"`
	Name         string    `gorm:"column:name;uniqueIndex:idx_users_name"`
	Email        string    `gorm:"column:email;uniqueIndex:idx_users_email"`
	PasswordHash string    `gorm:"column:password_hash"`
	CreatedAt    time.Time `gorm:"column:created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at"`
}

func (userModel) TableName() string { return "users" }

// itemModel is the persistence shape for domain.Item. OwnerName is not a
// column; the filter query joins users and selects it into this field.
type itemModel struct {
	ID          int64     `gorm:"column:id;primaryKey;autoIncrement"`
	UserID      int64     `gorm:"column:user_id;index:idx_items_user_id"`
	Title       string    `gorm:"column:title"`
	Description string    `gorm:"column:description"`
	Location    string    `gorm:"column:location"`
	Status      string    `gorm:"column:status;index:idx_items_status"`
	Category    string    `gorm:"column:category;index:idx_items_category"`
	Tag         string    `gorm:"column:tag"`
	CreatedAt   time.Time `gorm:"column:created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at"`

	OwnerName string `gorm:"column:owner_name;->;-:migration"`
}

func (itemModel) TableName() string { return "items" }
