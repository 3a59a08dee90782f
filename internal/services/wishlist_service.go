package services

import (
	"context"
	"strings"

	apperrors "financeflow/internal/errors"
	"financeflow/internal/models"
	"financeflow/internal/store"
)

// wishlistService handles wishlist items.
type wishlistService struct {
	store store.WishlistStore
}

// NewWishlistService creates a new WishlistServicer.
func NewWishlistService(s store.WishlistStore) WishlistServicer {
	return &wishlistService{store: s}
}

func validateWishlistItem(item *models.WishlistItem) error {
	if strings.TrimSpace(item.Description) == "" {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "description is required")
	}
	if item.Price <= 0 {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "price must be greater than zero")
	}
	if item.Price > models.MaxAmount {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "price is too large")
	}
	if !item.Priority.IsValid() {
		return apperrors.ErrInvalidPriority
	}
	return nil
}

// ListItems returns the user's wishlist in insertion order.
func (s *wishlistService) ListItems(ctx context.Context, userID string) ([]models.WishlistItem, error) {
	return s.store.ListWishlist(ctx, userID)
}

// CreateItem adds an item to the wishlist.
func (s *wishlistService) CreateItem(ctx context.Context, userID, description string, price int64, priority models.Priority) (*models.WishlistItem, error) {
	item := &models.WishlistItem{
		Description: strings.TrimSpace(description),
		Price:       price,
		Priority:    priority,
	}
	if err := validateWishlistItem(item); err != nil {
		return nil, err
	}
	if err := s.store.InsertWishlistItem(ctx, userID, item); err != nil {
		return nil, err
	}
	return item, nil
}

// UpdateItem applies patch to a stored item.
func (s *wishlistService) UpdateItem(ctx context.Context, userID, id string, patch WishlistPatch) (*models.WishlistItem, error) {
	item, err := s.store.GetWishlistItem(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	if patch.Description != nil {
		item.Description = strings.TrimSpace(*patch.Description)
	}
	if patch.Price != nil {
		item.Price = *patch.Price
	}
	if patch.Priority != nil {
		item.Priority = *patch.Priority
	}
	if err := validateWishlistItem(item); err != nil {
		return nil, err
	}
	if err := s.store.UpdateWishlistItem(ctx, userID, item); err != nil {
		return nil, err
	}
	return item, nil
}

// DeleteItem removes an item from the wishlist.
func (s *wishlistService) DeleteItem(ctx context.Context, userID, id string) error {
	return s.store.DeleteWishlistItem(ctx, userID, id)
}
