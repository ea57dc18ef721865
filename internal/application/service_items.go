package application

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/Rango-SAD/lost-and-found-project/internal/domain"
)

// CreateItem stores a new listing owned by the authenticated user.
func (s *Service) CreateItem(ctx context.Context, userID int64, req ItemRequest) (ItemResponse, error) {
	item, err := s.itemFromRequest(req)
	if err != nil {
		return ItemResponse{}, err
	}

	owner, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return ItemResponse{}, fmt.Errorf("load owner: %w", err)
	}

	now := s.nowFn().UTC()
	item.OwnerID = owner.ID
	item.OwnerName = owner.Name
	item.CreatedAt = now
	item.UpdatedAt = now

	created, err := s.items.Create(ctx, item)
	if err != nil {
		return ItemResponse{}, fmt.Errorf("create item: %w", err)
	}
	slog.Default().InfoContext(ctx, "item created",
		"module", "application",
		"layer", "application",
		"operation", "create_item",
		"outcome", "success",
		"item_id", created.ID,
		"user_id", userID,
	)
	return toItemResponse(created), nil
}

// GetItem loads one listing by id.
func (s *Service) GetItem(ctx context.Context, id int64) (ItemResponse, error) {
	item, err := s.items.GetByID(ctx, id)
	if err != nil {
		return ItemResponse{}, err
	}
	return toItemResponse(item), nil
}

// UpdateItem replaces a listing's mutable fields. Only the owner may update.
func (s *Service) UpdateItem(ctx context.Context, userID, itemID int64, req ItemRequest) (ItemResponse, error) {
	updated, err := s.itemFromRequest(req)
	if err != nil {
		return ItemResponse{}, err
	}

	existing, err := s.items.GetByID(ctx, itemID)
	if err != nil {
		return ItemResponse{}, err
	}
	if existing.OwnerID != userID {
		return ItemResponse{}, domain.ErrOwnership
	}

	updated.ID = existing.ID
	updated.OwnerID = existing.OwnerID
	updated.OwnerName = existing.OwnerName
	updated.CreatedAt = existing.CreatedAt
	updated.UpdatedAt = s.nowFn().UTC()

	saved, err := s.items.Update(ctx, updated)
	if err != nil {
		return ItemResponse{}, fmt.Errorf("update item: %w", err)
	}
	slog.Default().InfoContext(ctx, "item updated",
		"module", "application",
		"layer", "application",
		"operation", "update_item",
		"outcome", "success",
		"item_id", itemID,
		"user_id", userID,
	)
	return toItemResponse(saved), nil
}

// DeleteItem removes a listing. Only the owner may delete.
func (s *Service) DeleteItem(ctx context.Context, userID, itemID int64) error {
	existing, err := s.items.GetByID(ctx, itemID)
	if err != nil {
		return err
	}
	if existing.OwnerID != userID {
		return domain.ErrOwnership
	}
	if err := s.items.Delete(ctx, itemID); err != nil {
		return fmt.Errorf("delete item: %w", err)
	}
	slog.Default().InfoContext(ctx, "item deleted",
		"module", "application",
		"layer", "application",
		"operation", "delete_item",
		"outcome", "success",
		"item_id", itemID,
		"user_id", userID,
	)
	return nil
}

// FilterItems returns one page of listings matching every present criterion.
func (s *Service) FilterItems(ctx context.Context, filter domain.ItemFilter) (ItemPageResponse, error) {
	page, err := s.items.Filter(ctx, filter)
	if err != nil {
		return ItemPageResponse{}, fmt.Errorf("filter items: %w", err)
	}
	return toItemPageResponse(page), nil
}

func (s *Service) itemFromRequest(req ItemRequest) (domain.Item, error) {
	status, err := domain.ParseItemStatus(req.Status)
	if err != nil {
		return domain.Item{}, err
	}
	category, err := domain.ParseItemCategory(req.Category)
	if err != nil {
		return domain.Item{}, err
	}
	tag := domain.TagNone
	if strings.TrimSpace(req.Tag) != "" {
		tag, err = domain.ParseItemTag(req.Tag)
		if err != nil {
			return domain.Item{}, err
		}
	}

	item := domain.Item{
		Title:       strings.TrimSpace(req.Title),
		Description: strings.TrimSpace(req.Description),
		Location:    strings.TrimSpace(req.Location),
		Status:      status,
		Category:    category,
		Tag:         tag,
	}
	if err := item.Validate(); err != nil {
		return domain.Item{}, err
	}
	return item, nil
}
