package application

import (
	"time"

	"github.com/Rango-SAD/lost-and-found-project/internal/domain"
	"github.com/Rango-SAD/lost-and-found-project/internal/ports"
)

// SendOtpRequest asks for a verification code to be mailed.
type SendOtpRequest struct {
	Email string `json:"email"`
}

// RegisterRequest creates an account after OTP verification.
type RegisterRequest struct {
	Email    string `json:"email"`
	Username string `json:"username"`
	Password string `json:"password"`
	Otp      string `json:"otp"`
}

// LoginRequest authenticates by display name.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// AuthResponse carries a freshly issued session token.
type AuthResponse struct {
	Token     string `json:"token"`
	ExpiresIn int64  `json:"expiresIn"`
}

// MeResponse describes the authenticated account.
type MeResponse struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// ItemRequest is the create/update payload for a listing.
type ItemRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Location    string `json:"location"`
	Status      string `json:"status"`
	Category    string `json:"category"`
	Tag         string `json:"tag"`
}

// ItemResponse is the transport shape of a listing.
type ItemResponse struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Location    string `json:"location"`
	Status      string `json:"status"`
	Category    string `json:"category"`
	Tag         string `json:"tag"`
	OwnerID     int64  `json:"ownerId"`
	OwnerName   string `json:"ownerName"`
	CreatedAt   string `json:"createdAt"`
	UpdatedAt   string `json:"updatedAt"`
}

// ItemPageResponse is one page of filtered listings.
type ItemPageResponse struct {
	Items      []ItemResponse `json:"items"`
	TotalCount int64          `json:"totalCount"`
	TotalPages int            `json:"totalPages"`
	Page       int            `json:"page"`
	PageSize   int            `json:"pageSize"`
}

func toItemResponse(item domain.Item) ItemResponse {
	return ItemResponse{
		ID:          item.ID,
		Title:       item.Title,
		Description: item.Description,
		Location:    item.Location,
		Status:      string(item.Status),
		Category:    string(item.Category),
		Tag:         string(item.Tag),
		OwnerID:     item.OwnerID,
		OwnerName:   item.OwnerName,
		CreatedAt:   item.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:   item.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

func toItemPageResponse(page ports.ItemPage) ItemPageResponse {
	items := make([]ItemResponse, 0, len(page.Items))
	for _, item := range page.Items {
		items = append(items, toItemResponse(item))
	}
	return ItemPageResponse{
		Items:      items,
		TotalCount: page.TotalCount,
		TotalPages: page.TotalPages(),
		Page:       page.Page,
		PageSize:   page.PageSize,
	}
}
