package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/Rango-SAD/lost-and-found-project/internal/domain"
	"github.com/Rango-SAD/lost-and-found-project/internal/ports"
)

// ItemRepository persists listings in the items table.
type ItemRepository struct {
	db *gorm.DB
}

func NewItemRepository(db *gorm.DB) *ItemRepository {
	return &ItemRepository{db: db}
}

func (r *ItemRepository) Create(ctx context.Context, item domain.Item) (domain.Item, error) {
	model := toItemModel(item)
	if err := r.db.WithContext(ctx).Create(&model).Error; err != nil {
		return domain.Item{}, fmt.Errorf("create item: %w", err)
	}
	model.OwnerName = item.OwnerName
	return toDomainItem(model), nil
}

func (r *ItemRepository) GetByID(ctx context.Context, id int64) (domain.Item, error) {
	var model itemModel
	err := r.db.WithContext(ctx).
		Table("items").
		Select("items.*, users.name AS owner_name").
		Joins("JOIN users ON users.id = items.user_id").
		Where("items.id = ?", id).
		Take(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Item{}, domain.ErrNotFound
		}
		return domain.Item{}, fmt.Errorf("get item by id: %w", err)
	}
	return toDomainItem(model), nil
}

func (r *ItemRepository) Update(ctx context.Context, item domain.Item) (domain.Item, error) {
	model := toItemModel(item)
	res := r.db.WithContext(ctx).Model(&itemModel{}).Where("id = ?", model.ID).Updates(map[string]any{
		"title":       model.Title,
		"description": model.Description,
		"location":    model.Location,
		"status":      model.Status,
		"category":    model.Category,
		"tag":         model.Tag,
		"updated_at":  model.UpdatedAt,
	})
	if res.Error != nil {
		return domain.Item{}, fmt.Errorf("update item: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.Item{}, domain.ErrNotFound
	}
	return r.GetByID(ctx, item.ID)
}

func (r *ItemRepository) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Delete(&itemModel{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("delete item: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Filter evaluates a conjunctive criteria set against the items table.
// Every present criterion becomes one WHERE clause; the keyword matches
// title or description case-insensitively.
func (r *ItemRepository) Filter(ctx context.Context, filter domain.ItemFilter) (ports.ItemPage, error) {
	filter = filter.Normalized()

	base := r.db.WithContext(ctx).
		Table("items").
		Joins("JOIN users ON users.id = items.user_id")
	for _, c := range filter.Constraints() {
		base = applyConstraint(base, c)
	}

	var total int64
	if err := base.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return ports.ItemPage{}, fmt.Errorf("count items: %w", err)
	}

	var models []itemModel
	err := base.Session(&gorm.Session{}).
		Select("items.*, users.name AS owner_name").
		Order("items.id DESC").
		Offset(filter.Page * filter.PageSize).
		Limit(filter.PageSize).
		Find(&models).Error
	if err != nil {
		return ports.ItemPage{}, fmt.Errorf("filter items: %w", err)
	}

	items := make([]domain.Item, 0, len(models))
	for _, m := range models {
		items = append(items, toDomainItem(m))
	}
	return ports.ItemPage{
		Items:      items,
		TotalCount: total,
		Page:       filter.Page,
		PageSize:   filter.PageSize,
	}, nil
}

func applyConstraint(tx *gorm.DB, c domain.Constraint) *gorm.DB {
	switch c.Field {
	case domain.FieldID:
		return tx.Where("items.id = ?", c.Value)
	case domain.FieldStatus:
		return tx.Where("items.status = ?", c.Value)
	case domain.FieldCategory:
		return tx.Where("items.category = ?", c.Value)
	case domain.FieldTag:
		return tx.Where("items.tag = ?", c.Value)
	case domain.FieldOwner:
		return tx.Where("items.user_id = ?", c.Value)
	case domain.FieldKeyword:
		keyword, _ := c.Value.(string)
		pattern := "%" + strings.ToLower(keyword) + "%"
		return tx.Where("(LOWER(items.title) LIKE ? OR LOWER(items.description) LIKE ?)", pattern, pattern)
	default:
		return tx
	}
}
