package postgres

import (
	"errors"

	"gorm.io/gorm"

	"github.com/Rango-SAD/lost-and-found-project/internal/domain"
)

func toUserModel(u domain.User) userModel {
	return userModel{
		ID:           u.ID,
		Name:         u.Name,
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
	}
}

func toDomainUser(m userModel) domain.User {
	return domain.User{
		ID:           m.ID,
		Name:         m.Name,
		Email:        m.Email,
		PasswordHash: m.PasswordHash,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

func toItemModel(i domain.Item) itemModel {
	return itemModel{
		ID:          i.ID,
		UserID:      i.OwnerID,
		Title:       i.Title,
		Description: i.Description,
		Location:    i.Location,
		Status:      string(i.Status),
		Category:    string(i.Category),
		Tag:         string(i.Tag),
		CreatedAt:   i.CreatedAt,
		UpdatedAt:   i.UpdatedAt,
	}
}

func toDomainItem(m itemModel) domain.Item {
	return domain.Item{
		ID:          m.ID,
		OwnerID:     m.UserID,
		OwnerName:   m.OwnerName,
		Title:       m.Title,
		Description: m.Description,
		Location:    m.Location,
		Status:      domain.ItemStatus(m.Status),
		Category:    domain.ItemCategory(m.Category),
		Tag:         domain.ItemTag(m.Tag),
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

// isUniqueViolation relies on gorm's TranslateError mapping of driver
// unique-constraint errors.
func isUniqueViolation(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey)
}
