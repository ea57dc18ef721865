package http

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/Rango-SAD/lost-and-found-project/internal/application"
	"github.com/Rango-SAD/lost-and-found-project/internal/domain"
)

func (h *Handler) createItem(w http.ResponseWriter, r *http.Request) {
	claims, ok := claimsFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "UNAUTHENTICATED", "authentication required")
		return
	}

	var req application.ItemRequest
	if err := decodeBody(r, &req); err != nil {
		writeValidationError(r.Context(), w, "create_item", err)
		return
	}

	res, err := h.service.CreateItem(r.Context(), claims.UserID, req)
	if err != nil {
		writeMappedError(r.Context(), w, "create_item", err)
		return
	}
	writeSuccess(w, http.StatusCreated, res)
}

func (h *Handler) getItem(w http.ResponseWriter, r *http.Request) {
	id, err := itemIDFromURL(r)
	if err != nil {
		writeValidationError(r.Context(), w, "get_item", err)
		return
	}

	res, err := h.service.GetItem(r.Context(), id)
	if err != nil {
		writeMappedError(r.Context(), w, "get_item", err)
		return
	}
	writeSuccess(w, http.StatusOK, res)
}

func (h *Handler) updateItem(w http.ResponseWriter, r *http.Request) {
	claims, ok := claimsFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "UNAUTHENTICATED", "authentication required")
		return
	}
	id, err := itemIDFromURL(r)
	if err != nil {
		writeValidationError(r.Context(), w, "update_item", err)
		return
	}

	var req application.ItemRequest
	if err := decodeBody(r, &req); err != nil {
		writeValidationError(r.Context(), w, "update_item", err)
		return
	}

	res, err := h.service.UpdateItem(r.Context(), claims.UserID, id, req)
	if err != nil {
		writeMappedError(r.Context(), w, "update_item", err)
		return
	}
	writeSuccess(w, http.StatusOK, res)
}

func (h *Handler) deleteItem(w http.ResponseWriter, r *http.Request) {
	claims, ok := claimsFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "UNAUTHENTICATED", "authentication required")
		return
	}
	id, err := itemIDFromURL(r)
	if err != nil {
		writeValidationError(r.Context(), w, "delete_item", err)
		return
	}

	if err := h.service.DeleteItem(r.Context(), claims.UserID, id); err != nil {
		writeMappedError(r.Context(), w, "delete_item", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// listItems translates the query string into a filter. Every recognized
// parameter is optional; present parameters combine conjunctively.
func (h *Handler) listItems(w http.ResponseWriter, r *http.Request) {
	filter, err := h.filterFromQuery(r)
	if err != nil {
		writeValidationError(r.Context(), w, "list_items", err)
		return
	}

	res, err := h.service.FilterItems(r.Context(), filter)
	if err != nil {
		writeMappedError(r.Context(), w, "list_items", err)
		return
	}
	writeSuccess(w, http.StatusOK, res)
}

func (h *Handler) filterFromQuery(r *http.Request) (domain.ItemFilter, error) {
	q := r.URL.Query()
	var filter domain.ItemFilter

	if raw := strings.TrimSpace(q.Get("id")); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return domain.ItemFilter{}, fmt.Errorf("%w: id must be an integer", domain.ErrInvalidInput)
		}
		filter.ID = &id
	}
	if raw := strings.TrimSpace(q.Get("status")); raw != "" {
		status, err := domain.ParseItemStatus(raw)
		if err != nil {
			return domain.ItemFilter{}, err
		}
		filter.Status = &status
	}
	if raw := strings.TrimSpace(q.Get("category")); raw != "" {
		category, err := domain.ParseItemCategory(raw)
		if err != nil {
			return domain.ItemFilter{}, err
		}
		filter.Category = &category
	}
	if raw := strings.TrimSpace(q.Get("tag")); raw != "" {
		tag, err := domain.ParseItemTag(raw)
		if err != nil {
			return domain.ItemFilter{}, err
		}
		filter.Tag = &tag
	}
	if raw := strings.TrimSpace(q.Get("userId")); raw != "" {
		ownerID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return domain.ItemFilter{}, fmt.Errorf("%w: userId must be an integer", domain.ErrInvalidInput)
		}
		filter.OwnerID = &ownerID
	}
	// myItems=true pins the owner to the caller, overriding any userId.
	if strings.EqualFold(strings.TrimSpace(q.Get("myItems")), "true") {
		claims, ok := claimsFromContext(r.Context())
		if !ok {
			return domain.ItemFilter{}, domain.ErrUnauthenticated
		}
		ownerID := claims.UserID
		filter.OwnerID = &ownerID
	}

	filter.Keyword = q.Get("keyword")
	filter.Page = parseIntDefault(q.Get("page"), 0)
	filter.PageSize = parseIntDefault(q.Get("size"), domain.DefaultPageSize)
	return filter, nil
}

func itemIDFromURL(r *http.Request) (int64, error) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: item id must be a positive integer", domain.ErrInvalidInput)
	}
	return id, nil
}
