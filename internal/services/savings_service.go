package services

import (
	"context"
	"errors"

	apperrors "financeflow/internal/errors"
	"financeflow/internal/models"
	"financeflow/internal/store"
)

// savingsService handles the savings goal.
type savingsService struct {
	store         store.SavingsStore
	defaultTarget int64
}

// NewSavingsService creates a new SavingsServicer. Users who never saved a
// goal get {0, defaultTarget}.
func NewSavingsService(s store.SavingsStore, defaultTarget int64) SavingsServicer {
	return &savingsService{store: s, defaultTarget: defaultTarget}
}

// GetSavingsGoal returns the stored goal or the default one.
func (s *savingsService) GetSavingsGoal(ctx context.Context, userID string) (*models.SavingsGoal, error) {
	goal, err := s.store.GetSavingsGoal(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return &models.SavingsGoal{UserID: userID, TargetAmount: s.defaultTarget}, nil
		}
		return nil, err
	}
	return goal, nil
}

// UpdateSavingsGoal overwrites both amounts.
func (s *savingsService) UpdateSavingsGoal(ctx context.Context, userID string, current, target int64) (*models.SavingsGoal, error) {
	if current < 0 || target < 0 || current > models.MaxAmount || target > models.MaxAmount {
		return nil, apperrors.ErrInvalidSavingsGoal
	}
	return s.store.UpsertSavingsGoal(ctx, userID, current, target)
}
