package domain

import (
	"fmt"
	"strings"
	"time"
)

// ItemStatus tells whether the owner lost the item or a finder holds it.
type ItemStatus string

const (
	// StatusLost means the item was lost and the owner is looking for it.
	StatusLost ItemStatus = "LOST"
	// StatusFound means the item was found and the finder is looking for the owner.
	StatusFound ItemStatus = "FOUND"
)

// ItemCategory groups items for browsing and filtering.
type ItemCategory string

const (
	CategoryElectronics ItemCategory = "ELECTRONICS"
	CategoryDocuments   ItemCategory = "DOCUMENTS"
	CategoryWalletsCard ItemCategory = "WALLETS_CARDS"
	CategoryClothing    ItemCategory = "CLOTHING"
	CategoryAccessories ItemCategory = "ACCESSORIES"
	CategoryKeys        ItemCategory = "KEYS"
	CategoryBooks       ItemCategory = "BOOKS"
	CategoryOther       ItemCategory = "OTHER"
)

// ItemTag carries an urgency/value marker that is orthogonal to category.
type ItemTag string

const (
	TagUrgent      ItemTag = "URGENT"
	TagReward      ItemTag = "REWARD"
	TagHighValue   ItemTag = "HIGH_VALUE"
	TagSentimental ItemTag = "SENTIMENTAL"
	TagNone        ItemTag = "NONE"
)

const (
	maxTitleLength       = 255
	maxDescriptionLength = 2000
	maxLocationLength    = 255
)

// Item is a lost-or-found listing owned by exactly one user.
// OwnerName is denormalized read-side data resolved by the storage layer.
type Item struct {
	ID          int64
	Title       string
	Description string
	Status      ItemStatus
	Category    ItemCategory
	Tag         ItemTag
	Location    string
	OwnerID     int64
	OwnerName   string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ParseItemStatus validates and canonicalizes a status value.
func ParseItemStatus(raw string) (ItemStatus, error) {
	switch ItemStatus(strings.ToUpper(strings.TrimSpace(raw))) {
	case StatusLost:
		return StatusLost, nil
	case StatusFound:
		return StatusFound, nil
	default:
		return "", fmt.Errorf("%w: status must be LOST or FOUND", ErrInvalidInput)
	}
}

// ParseItemCategory validates and canonicalizes a category value.
func ParseItemCategory(raw string) (ItemCategory, error) {
	category := ItemCategory(strings.ToUpper(strings.TrimSpace(raw)))
	switch category {
	case CategoryElectronics, CategoryDocuments, CategoryWalletsCard, CategoryClothing,
		CategoryAccessories, CategoryKeys, CategoryBooks, CategoryOther:
		return category, nil
	default:
		return "", fmt.Errorf("%w: unknown category %q", ErrInvalidInput, raw)
	}
}

// ParseItemTag validates and canonicalizes a tag value.
func ParseItemTag(raw string) (ItemTag, error) {
	tag := ItemTag(strings.ToUpper(strings.TrimSpace(raw)))
	switch tag {
	case TagUrgent, TagReward, TagHighValue, TagSentimental, TagNone:
		return tag, nil
	default:
		return "", fmt.Errorf("%w: unknown tag %q", ErrInvalidInput, raw)
	}
}

// Validate enforces the listing field constraints shared by create and update.
func (i Item) Validate() error {
	title := strings.TrimSpace(i.Title)
	if title == "" {
		return fmt.Errorf("%w: title is required", ErrInvalidInput)
	}
	if len(title) > maxTitleLength {
		return fmt.Errorf("%w: title must not exceed %d characters", ErrInvalidInput, maxTitleLength)
	}
	description := strings.TrimSpace(i.Description)
	if description == "" {
		return fmt.Errorf("%w: description is required", ErrInvalidInput)
	}
	if len(description) > maxDescriptionLength {
		return fmt.Errorf("%w: description must not exceed %d characters", ErrInvalidInput, maxDescriptionLength)
	}
	if len(i.Location) > maxLocationLength {
		return fmt.Errorf("%w: location must not exceed %d characters", ErrInvalidInput, maxLocationLength)
	}
	if _, err := ParseItemStatus(string(i.Status)); err != nil {
		return err
	}
	if _, err := ParseItemCategory(string(i.Category)); err != nil {
		return err
	}
	if _, err := ParseItemTag(string(i.Tag)); err != nil {
		return err
	}
	return nil
}
