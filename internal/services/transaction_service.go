package services

import (
	"context"
	"strings"

	"financeflow/internal/calendar"
	"financeflow/internal/logger"
	"financeflow/internal/models"
	"financeflow/internal/pagination"
	"financeflow/internal/recurrence"
	"financeflow/internal/store"
)

// transactionService handles transaction-related business logic.
type transactionService struct {
	store store.TransactionStore
}

// NewTransactionService creates a new TransactionServicer.
func NewTransactionService(s store.TransactionStore) TransactionServicer {
	return &transactionService{store: s}
}

// CreateTransactions validates and expands the intent, then stores every
// resulting record at once.
func (s *transactionService) CreateTransactions(ctx context.Context, userID string, intent recurrence.Intent) ([]models.Transaction, error) {
	records, err := recurrence.Expand(intent)
	if err != nil {
		return nil, err
	}

	created, err := s.store.InsertTransactions(ctx, userID, records)
	if err != nil {
		logger.FromContext(ctx).Errorw("failed to insert transactions", "error", err, "user_id", userID, "count", len(records))
		return nil, err
	}
	return created, nil
}

// ListTransactions returns one page of the user's transactions.
func (s *transactionService) ListTransactions(ctx context.Context, userID string, page pagination.PageRequest, filter store.TransactionFilter) (*pagination.PageResponse[models.Transaction], error) {
	if filter.Paid != nil && filter.AsOf.IsZero() {
		filter.AsOf = calendar.Today()
	}
	return s.store.ListTransactionsPage(ctx, userID, page, filter)
}

// GetTransaction retrieves a transaction by ID for a specific user
func (s *transactionService) GetTransaction(ctx context.Context, userID, id string) (*models.Transaction, error) {
	return s.store.GetTransaction(ctx, userID, id)
}

// UpdateTransaction applies patch to the stored record. The merged record
// must still satisfy the same rules as a new single transaction.
func (s *transactionService) UpdateTransaction(ctx context.Context, userID, id string, patch TransactionPatch) (*models.Transaction, error) {
	tx, err := s.store.GetTransaction(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	if patch.Description != nil {
		tx.Description = strings.TrimSpace(*patch.Description)
	}
	if patch.Amount != nil {
		tx.Amount = *patch.Amount
	}
	if patch.Type != nil {
		tx.Type = *patch.Type
	}
	if patch.Category != nil {
		tx.Category = *patch.Category
	}
	if patch.Bank != nil {
		tx.Bank = *patch.Bank
	}
	if patch.Date != nil {
		tx.Date = calendar.Day(*patch.Date)
	}
	switch {
	case patch.ClearPaid:
		tx.Paid = nil
	case patch.Paid != nil:
		paid := *patch.Paid
		tx.Paid = &paid
	}

	check := recurrence.Intent{
		Description: tx.Description,
		Amount:      tx.Amount,
		Type:        tx.Type,
		Category:    tx.Category,
		Bank:        tx.Bank,
		Date:        tx.Date,
		Frequency:   recurrence.FrequencySingle,
	}
	if err := check.Validate(); err != nil {
		return nil, err
	}

	if err := s.store.UpdateTransaction(ctx, userID, tx); err != nil {
		return nil, err
	}
	return tx, nil
}

// SetPaid sets or clears the explicit paid flag.
func (s *transactionService) SetPaid(ctx context.Context, userID, id string, paid *bool) (*models.Transaction, error) {
	return s.UpdateTransaction(ctx, userID, id, TransactionPatch{Paid: paid, ClearPaid: paid == nil})
}

// DeleteTransaction deletes a transaction owned by the user.
func (s *transactionService) DeleteTransaction(ctx context.Context, userID, id string) error {
	return s.store.DeleteTransaction(ctx, userID, id)
}
