// Package sqlstore implements the store contracts on gorm. It runs against
// PostgreSQL in production and SQLite for local use and tests.
package sqlstore

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	apperrors "financeflow/internal/errors"
	"financeflow/internal/models"
	"financeflow/internal/pagination"
	"financeflow/internal/store"
)

// Store is a gorm-backed store.Store.
type Store struct {
	db *gorm.DB
}

var _ store.Store = (*Store)(nil)

// New creates a Store on an open, migrated database.
func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

// ListTransactions returns every transaction of the user, newest date first.
func (s *Store) ListTransactions(ctx context.Context, userID string) ([]models.Transaction, error) {
	var txs []models.Transaction
	if err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("date DESC").Order("created_at DESC").
		Find(&txs).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return txs, nil
}

// ListTransactionsPage returns one filtered page of the user's transactions.
func (s *Store) ListTransactionsPage(ctx context.Context, userID string, page pagination.PageRequest, filter store.TransactionFilter) (*pagination.PageResponse[models.Transaction], error) {
	page.Defaults()

	base := s.db.WithContext(ctx).Model(&models.Transaction{}).Where("user_id = ?", userID)
	base = applyTransactionFilters(base, filter)

	var totalItems int64
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var txs []models.Transaction
	if err := base.Scopes(pagination.Paginate(page)).
		Order("date DESC").Order("created_at DESC").
		Find(&txs).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(txs, page.Page, page.PageSize, totalItems)
	return &result, nil
}

func applyTransactionFilters(q *gorm.DB, f store.TransactionFilter) *gorm.DB {
	if f.FromDate != nil {
		q = q.Where("date >= ?", *f.FromDate)
	}
	if f.ToDate != nil {
		q = q.Where("date <= ?", *f.ToDate)
	}
	if f.Type != nil {
		q = q.Where("type = ?", *f.Type)
	}
	if f.Category != nil {
		q = q.Where("category = ?", *f.Category)
	}
	if f.Bank != nil {
		q = q.Where("bank = ?", *f.Bank)
	}
	if f.Paid != nil {
		// An unset flag falls back to comparing the date with AsOf.
		if *f.Paid {
			q = q.Where("(paid = ? OR (paid IS NULL AND date <= ?))", true, f.AsOf)
		} else {
			q = q.Where("(paid = ? OR (paid IS NULL AND date > ?))", false, f.AsOf)
		}
	}
	return q
}

// GetTransaction retrieves a transaction owned by the user.
func (s *Store) GetTransaction(ctx context.Context, userID, id string) (*models.Transaction, error) {
	var tx models.Transaction
	if err := s.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).First(&tx).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTransactionNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &tx, nil
}

// InsertTransactions stores all records in one database transaction.
func (s *Store) InsertTransactions(ctx context.Context, userID string, records []models.Transaction) ([]models.Transaction, error) {
	if len(records) == 0 {
		return []models.Transaction{}, nil
	}
	out := make([]models.Transaction, len(records))
	copy(out, records)
	for i := range out {
		out[i].ID = ""
		out[i].UserID = userID
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(&out).Error
	})
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return out, nil
}

var transactionColumns = []string{"description", "amount", "type", "category", "bank", "date", "paid", "updated_at"}

// UpdateTransaction writes every editable column of tx, including a nil Paid.
func (s *Store) UpdateTransaction(ctx context.Context, userID string, tx *models.Transaction) error {
	tx.UpdatedAt = time.Now()
	result := s.db.WithContext(ctx).Model(&models.Transaction{}).
		Where("id = ? AND user_id = ?", tx.ID, userID).
		Select(transactionColumns).
		Updates(tx)
	if result.Error != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrTransactionNotFound
	}
	return nil
}

// DeleteTransaction soft-deletes a transaction owned by the user.
func (s *Store) DeleteTransaction(ctx context.Context, userID, id string) error {
	result := s.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).Delete(&models.Transaction{})
	if result.Error != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrTransactionNotFound
	}
	return nil
}

// GetSavingsGoal returns the user's goal or ErrNotFound.
func (s *Store) GetSavingsGoal(ctx context.Context, userID string) (*models.SavingsGoal, error) {
	var goal models.SavingsGoal
	if err := s.db.WithContext(ctx).Where("user_id = ?", userID).First(&goal).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &goal, nil
}

// UpsertSavingsGoal creates or overwrites the user's goal.
func (s *Store) UpsertSavingsGoal(ctx context.Context, userID string, current, target int64) (*models.SavingsGoal, error) {
	goal := models.SavingsGoal{UserID: userID, CurrentAmount: current, TargetAmount: target}
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"current_amount", "target_amount", "updated_at"}),
	}).Create(&goal).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	// On conflict the generated id was discarded; read back the stored row.
	return s.GetSavingsGoal(ctx, userID)
}

// ListWishlist returns the user's items in insertion order.
func (s *Store) ListWishlist(ctx context.Context, userID string) ([]models.WishlistItem, error) {
	var items []models.WishlistItem
	if err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC").Order("id ASC").
		Find(&items).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return items, nil
}

// GetWishlistItem retrieves an item owned by the user.
func (s *Store) GetWishlistItem(ctx context.Context, userID, id string) (*models.WishlistItem, error) {
	var item models.WishlistItem
	if err := s.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).First(&item).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrWishlistItemNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &item, nil
}

// InsertWishlistItem stores a new item and assigns its id.
func (s *Store) InsertWishlistItem(ctx context.Context, userID string, item *models.WishlistItem) error {
	item.ID = ""
	item.UserID = userID
	if err := s.db.WithContext(ctx).Create(item).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

// UpdateWishlistItem overwrites description, price and priority.
func (s *Store) UpdateWishlistItem(ctx context.Context, userID string, item *models.WishlistItem) error {
	item.UpdatedAt = time.Now()
	result := s.db.WithContext(ctx).Model(&models.WishlistItem{}).
		Where("id = ? AND user_id = ?", item.ID, userID).
		Select("description", "price", "priority", "updated_at").
		Updates(item)
	if result.Error != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrWishlistItemNotFound
	}
	return nil
}

// DeleteWishlistItem soft-deletes an item owned by the user.
func (s *Store) DeleteWishlistItem(ctx context.Context, userID, id string) error {
	result := s.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).Delete(&models.WishlistItem{})
	if result.Error != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrWishlistItemNotFound
	}
	return nil
}
