// Package store defines the persistence contracts used by the services.
// Every call is scoped by the owning user's id; a record that belongs to
// another user is reported as not found.
//
// Implementations return *errors.AppError values: the resource's not-found
// sentinel when a record is missing and ErrInternalServer (wrapping the
// driver error) for everything else.
package store

import (
	"context"
	"time"

	"financeflow/internal/models"
	"financeflow/internal/pagination"
)

// TransactionFilter narrows a transaction listing. Nil fields are ignored.
type TransactionFilter struct {
	FromDate *time.Time
	ToDate   *time.Time
	Type     *models.TransactionType
	Category *models.Category
	Bank     *models.Bank
	// Paid filters on the effective paid state evaluated at AsOf.
	Paid *bool
	AsOf time.Time
}

// TransactionStore persists transactions.
type TransactionStore interface {
	// ListTransactions returns every transaction of the user, newest date first.
	ListTransactions(ctx context.Context, userID string) ([]models.Transaction, error)
	ListTransactionsPage(ctx context.Context, userID string, page pagination.PageRequest, filter TransactionFilter) (*pagination.PageResponse[models.Transaction], error)
	GetTransaction(ctx context.Context, userID, id string) (*models.Transaction, error)
	// InsertTransactions stores all records or none and returns them with
	// ids assigned.
	InsertTransactions(ctx context.Context, userID string, records []models.Transaction) ([]models.Transaction, error)
	// UpdateTransaction replaces every user-editable field of tx.
	UpdateTransaction(ctx context.Context, userID string, tx *models.Transaction) error
	DeleteTransaction(ctx context.Context, userID, id string) error
}

// SavingsStore persists the per-user savings goal.
type SavingsStore interface {
	// GetSavingsGoal returns ErrNotFound when the user never saved a goal.
	GetSavingsGoal(ctx context.Context, userID string) (*models.SavingsGoal, error)
	UpsertSavingsGoal(ctx context.Context, userID string, current, target int64) (*models.SavingsGoal, error)
}

// WishlistStore persists wishlist items.
type WishlistStore interface {
	// ListWishlist returns items in insertion order.
	ListWishlist(ctx context.Context, userID string) ([]models.WishlistItem, error)
	GetWishlistItem(ctx context.Context, userID, id string) (*models.WishlistItem, error)
	InsertWishlistItem(ctx context.Context, userID string, item *models.WishlistItem) error
	UpdateWishlistItem(ctx context.Context, userID string, item *models.WishlistItem) error
	DeleteWishlistItem(ctx context.Context, userID, id string) error
}

// Store bundles every contract. Both sqlstore and mongostore implement it.
type Store interface {
	TransactionStore
	SavingsStore
	WishlistStore
}
