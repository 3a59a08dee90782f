package testutil

import (
	"errors"
	"testing"

	"gorm.io/gorm"

	apperrors "financeflow/internal/errors"
	"financeflow/internal/models"
	"financeflow/internal/money"
)

// AssertAppError checks that err is an *AppError with the expected error code.
func AssertAppError(t *testing.T, err error, expectedCode string) {
	t.Helper()

	if err == nil {
		t.Fatalf("expected AppError with code %q, got nil", expectedCode)
	}

	var appErr *apperrors.AppError
	if !errors.As(err, &appErr) {
		t.Fatalf("expected *AppError, got %T: %v", err, err)
	}

	if appErr.Code != expectedCode {
		t.Errorf("expected error code %q, got %q (message: %s)", expectedCode, appErr.Code, appErr.Message)
	}
}

// AssertNoError fails the test if err is not nil.
func AssertNoError(t *testing.T, err error) {
	t.Helper()

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

// AssertAmount compares two minor-unit amounts and reports them in major
// units, e.g. "expected monthly expense 2500.00, got 1200.00".
func AssertAmount(t *testing.T, what string, got, want int64) {
	t.Helper()

	if got != want {
		t.Errorf("expected %s %s, got %s", what, money.Format(want), money.Format(got))
	}
}

// AssertDescriptions checks the descriptions of txs in order, which is how
// installment and monthly expansions are told apart.
func AssertDescriptions(t *testing.T, txs []models.Transaction, want ...string) {
	t.Helper()

	if len(txs) != len(want) {
		t.Fatalf("expected %d transactions, got %d", len(want), len(txs))
	}
	for i, tx := range txs {
		if tx.Description != want[i] {
			t.Errorf("transaction %d: expected description %q, got %q", i, want[i], tx.Description)
		}
	}
}

// AssertStoredTransactions checks how many transaction rows userID owns.
// An empty userID counts every row.
func AssertStoredTransactions(t *testing.T, db *gorm.DB, userID string, want int64) {
	t.Helper()

	q := db.Model(&models.Transaction{})
	if userID != "" {
		q = q.Where("user_id = ?", userID)
	}
	var count int64
	if err := q.Count(&count).Error; err != nil {
		t.Fatalf("failed to count transactions: %v", err)
	}
	if count != want {
		t.Errorf("expected %d stored transactions, got %d", want, count)
	}
}
