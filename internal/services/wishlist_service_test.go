package services

import (
	"context"
	"testing"

	"financeflow/internal/models"
	"financeflow/internal/store/sqlstore"
	"financeflow/internal/testutil"
)

func TestWishlistService(t *testing.T) {
	ctx := context.Background()

	t.Run("create_and_list", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewWishlistService(sqlstore.New(db))
		user := testutil.CreateTestUser(t, db)

		item, err := svc.CreateItem(ctx, user.ID, "  Headphones ", 40000, models.PriorityHigh)
		testutil.AssertNoError(t, err)
		if item.ID == "" || item.Description != "Headphones" {
			t.Errorf("unexpected item %+v", item)
		}

		items, err := svc.ListItems(ctx, user.ID)
		testutil.AssertNoError(t, err)
		if len(items) != 1 {
			t.Errorf("expected 1 item, got %d", len(items))
		}
	})

	t.Run("validation", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewWishlistService(sqlstore.New(db))
		user := testutil.CreateTestUser(t, db)

		_, err := svc.CreateItem(ctx, user.ID, "", 100, models.PriorityLow)
		testutil.AssertAppError(t, err, "INVALID_INPUT")
		_, err = svc.CreateItem(ctx, user.ID, "Chair", 0, models.PriorityLow)
		testutil.AssertAppError(t, err, "INVALID_INPUT")
		_, err = svc.CreateItem(ctx, user.ID, "Chair", models.MaxAmount+1, models.PriorityLow)
		testutil.AssertAppError(t, err, "INVALID_INPUT")
		_, err = svc.CreateItem(ctx, user.ID, "Chair", 100, "Urgent")
		testutil.AssertAppError(t, err, "INVALID_PRIORITY")
	})

	t.Run("update", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewWishlistService(sqlstore.New(db))
		user := testutil.CreateTestUser(t, db)
		existing := testutil.CreateTestWishlistItem(t, db, user.ID, 9000, models.PriorityLow)

		price := int64(7500)
		prio := models.PriorityMedium
		item, err := svc.UpdateItem(ctx, user.ID, existing.ID, WishlistPatch{Price: &price, Priority: &prio})
		testutil.AssertNoError(t, err)
		if item.Price != 7500 || item.Priority != models.PriorityMedium || item.Description != existing.Description {
			t.Errorf("unexpected item %+v", item)
		}

		bad := int64(-5)
		_, err = svc.UpdateItem(ctx, user.ID, existing.ID, WishlistPatch{Price: &bad})
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})

	t.Run("delete_missing", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewWishlistService(sqlstore.New(db))
		user := testutil.CreateTestUser(t, db)

		testutil.AssertAppError(t, svc.DeleteItem(ctx, user.ID, "missing"), "WISHLIST_ITEM_NOT_FOUND")
	})
}
