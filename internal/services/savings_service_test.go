package services

import (
	"context"
	"testing"

	"financeflow/internal/models"
	"financeflow/internal/store/sqlstore"
	"financeflow/internal/testutil"
)

func TestSavingsGoal(t *testing.T) {
	ctx := context.Background()

	t.Run("default_when_unset", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewSavingsService(sqlstore.New(db), 100000)
		user := testutil.CreateTestUser(t, db)

		goal, err := svc.GetSavingsGoal(ctx, user.ID)
		testutil.AssertNoError(t, err)
		if goal.CurrentAmount != 0 || goal.TargetAmount != 100000 {
			t.Errorf("expected default goal {0, 100000}, got %+v", goal)
		}
	})

	t.Run("update_then_get", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewSavingsService(sqlstore.New(db), 100000)
		user := testutil.CreateTestUser(t, db)

		_, err := svc.UpdateSavingsGoal(ctx, user.ID, 25000, 300000)
		testutil.AssertNoError(t, err)

		goal, err := svc.GetSavingsGoal(ctx, user.ID)
		testutil.AssertNoError(t, err)
		if goal.CurrentAmount != 25000 || goal.TargetAmount != 300000 {
			t.Errorf("unexpected goal %+v", goal)
		}
	})

	t.Run("negative_amounts", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewSavingsService(sqlstore.New(db), 100000)
		user := testutil.CreateTestUser(t, db)

		_, err := svc.UpdateSavingsGoal(ctx, user.ID, -1, 1000)
		testutil.AssertAppError(t, err, "INVALID_SAVINGS_GOAL")
		_, err = svc.UpdateSavingsGoal(ctx, user.ID, 0, -1)
		testutil.AssertAppError(t, err, "INVALID_SAVINGS_GOAL")
	})

	t.Run("amounts_above_ceiling", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewSavingsService(sqlstore.New(db), 100000)
		user := testutil.CreateTestUser(t, db)

		_, err := svc.UpdateSavingsGoal(ctx, user.ID, 0, models.MaxAmount+1)
		testutil.AssertAppError(t, err, "INVALID_SAVINGS_GOAL")
	})
}
