package sqlstore

import (
	"context"
	"testing"
	"time"

	"financeflow/internal/calendar"
	"financeflow/internal/models"
	"financeflow/internal/pagination"
	"financeflow/internal/store"
	"financeflow/internal/testutil"
)

func boolPtr(b bool) *bool { return &b }

func TestInsertAndListTransactions(t *testing.T) {
	ctx := context.Background()
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	s := New(db)
	user := testutil.CreateTestUser(t, db)
	other := testutil.CreateTestUser(t, db)

	records := []models.Transaction{
		{Description: "Phone (1/3)", Amount: 100, Type: models.TransactionTypeExpense, Category: models.CategoryShopping, Date: calendar.Date(2024, 1, 15), Paid: boolPtr(true)},
		{Description: "Phone (2/3)", Amount: 100, Type: models.TransactionTypeExpense, Category: models.CategoryShopping, Date: calendar.Date(2024, 2, 15), Paid: boolPtr(false)},
		{Description: "Phone (3/3)", Amount: 100, Type: models.TransactionTypeExpense, Category: models.CategoryShopping, Date: calendar.Date(2024, 3, 15), Paid: boolPtr(false)},
	}
	out, err := s.InsertTransactions(ctx, user.ID, records)
	testutil.AssertNoError(t, err)
	for i, tx := range out {
		if tx.ID == "" || tx.UserID != user.ID {
			t.Errorf("record %d: expected id and user, got %+v", i, tx)
		}
	}
	testutil.CreateTestTransaction(t, db, other.ID, models.TransactionTypeIncome, models.CategorySalary, 999, calendar.Date(2024, 4, 1))

	txs, err := s.ListTransactions(ctx, user.ID)
	testutil.AssertNoError(t, err)
	if len(txs) != 3 {
		t.Fatalf("expected 3 transactions, got %d", len(txs))
	}
	if txs[0].Description != "Phone (3/3)" {
		t.Errorf("expected newest first, got %q", txs[0].Description)
	}
	if !txs[2].Date.Equal(calendar.Date(2024, 1, 15)) {
		t.Errorf("expected date to round-trip, got %s", txs[2].Date)
	}
	if txs[2].Paid == nil || !*txs[2].Paid {
		t.Error("expected paid flag to round-trip")
	}

	t.Run("empty_insert", func(t *testing.T) {
		out, err := s.InsertTransactions(ctx, user.ID, nil)
		testutil.AssertNoError(t, err)
		if len(out) != 0 {
			t.Errorf("expected no records, got %d", len(out))
		}
	})
}

func TestListTransactionsPage(t *testing.T) {
	ctx := context.Background()
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	s := New(db)
	user := testutil.CreateTestUser(t, db)

	testutil.CreateTestTransaction(t, db, user.ID, models.TransactionTypeIncome, models.CategorySalary, 500000, calendar.Date(2024, 3, 1))
	testutil.CreateTestTransaction(t, db, user.ID, models.TransactionTypeExpense, models.CategoryFood, 3000, calendar.Date(2024, 3, 10))
	testutil.CreateTestTransaction(t, db, user.ID, models.TransactionTypeExpense, models.CategoryFood, 4000, calendar.Date(2024, 3, 20))
	testutil.CreateTestTransaction(t, db, user.ID, models.TransactionTypeExpense, models.CategoryHousing, 150000, calendar.Date(2024, 4, 5))

	t.Run("pagination", func(t *testing.T) {
		page, err := s.ListTransactionsPage(ctx, user.ID, pagination.PageRequest{Page: 2, PageSize: 3}, store.TransactionFilter{})
		testutil.AssertNoError(t, err)
		if page.TotalItems != 4 || page.TotalPages != 2 || len(page.Data) != 1 {
			t.Errorf("unexpected page %+v", page)
		}
	})

	t.Run("type_and_category", func(t *testing.T) {
		typ := models.TransactionTypeExpense
		cat := models.CategoryFood
		page, err := s.ListTransactionsPage(ctx, user.ID, pagination.PageRequest{}, store.TransactionFilter{Type: &typ, Category: &cat})
		testutil.AssertNoError(t, err)
		if page.TotalItems != 2 {
			t.Errorf("expected 2 food expenses, got %d", page.TotalItems)
		}
	})

	t.Run("month_range", func(t *testing.T) {
		from := calendar.Date(2024, 3, 1)
		to := calendar.Date(2024, 3, 31)
		page, err := s.ListTransactionsPage(ctx, user.ID, pagination.PageRequest{}, store.TransactionFilter{FromDate: &from, ToDate: &to})
		testutil.AssertNoError(t, err)
		if page.TotalItems != 3 {
			t.Errorf("expected 3 March transactions, got %d", page.TotalItems)
		}
	})

	t.Run("effective_paid", func(t *testing.T) {
		asOf := calendar.Date(2024, 3, 15)
		paid, err := s.ListTransactionsPage(ctx, user.ID, pagination.PageRequest{}, store.TransactionFilter{Paid: boolPtr(true), AsOf: asOf})
		testutil.AssertNoError(t, err)
		if paid.TotalItems != 2 {
			t.Errorf("expected 2 realized transactions, got %d", paid.TotalItems)
		}
		unpaid, err := s.ListTransactionsPage(ctx, user.ID, pagination.PageRequest{}, store.TransactionFilter{Paid: boolPtr(false), AsOf: asOf})
		testutil.AssertNoError(t, err)
		if unpaid.TotalItems != 2 {
			t.Errorf("expected 2 pending transactions, got %d", unpaid.TotalItems)
		}
	})
}

func TestGetUpdateDeleteTransaction(t *testing.T) {
	ctx := context.Background()
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	s := New(db)
	user := testutil.CreateTestUser(t, db)
	other := testutil.CreateTestUser(t, db)
	tx := testutil.CreateTestTransaction(t, db, user.ID, models.TransactionTypeExpense, models.CategoryFood, 2500, calendar.Date(2024, 3, 1))

	t.Run("other_user_sees_not_found", func(t *testing.T) {
		_, err := s.GetTransaction(ctx, other.ID, tx.ID)
		testutil.AssertAppError(t, err, "TRANSACTION_NOT_FOUND")
		testutil.AssertAppError(t, s.DeleteTransaction(ctx, other.ID, tx.ID), "TRANSACTION_NOT_FOUND")
	})

	t.Run("update_all_fields", func(t *testing.T) {
		got, err := s.GetTransaction(ctx, user.ID, tx.ID)
		testutil.AssertNoError(t, err)
		got.Description = "Groceries"
		got.Amount = 4200
		got.Bank = models.BankInter
		got.Paid = boolPtr(true)
		got.Date = calendar.Date(2024, 3, 2)
		testutil.AssertNoError(t, s.UpdateTransaction(ctx, user.ID, got))

		reread, err := s.GetTransaction(ctx, user.ID, tx.ID)
		testutil.AssertNoError(t, err)
		if reread.Description != "Groceries" || reread.Amount != 4200 || reread.Bank != models.BankInter {
			t.Errorf("unexpected record %+v", reread)
		}
		if reread.Paid == nil || !*reread.Paid {
			t.Error("expected paid flag to be set")
		}
	})

	t.Run("update_clears_paid", func(t *testing.T) {
		got, err := s.GetTransaction(ctx, user.ID, tx.ID)
		testutil.AssertNoError(t, err)
		got.Paid = nil
		testutil.AssertNoError(t, s.UpdateTransaction(ctx, user.ID, got))

		reread, err := s.GetTransaction(ctx, user.ID, tx.ID)
		testutil.AssertNoError(t, err)
		if reread.Paid != nil {
			t.Errorf("expected paid flag cleared, got %v", *reread.Paid)
		}
	})

	t.Run("update_other_user", func(t *testing.T) {
		got, err := s.GetTransaction(ctx, user.ID, tx.ID)
		testutil.AssertNoError(t, err)
		testutil.AssertAppError(t, s.UpdateTransaction(ctx, other.ID, got), "TRANSACTION_NOT_FOUND")
	})

	t.Run("delete", func(t *testing.T) {
		testutil.AssertNoError(t, s.DeleteTransaction(ctx, user.ID, tx.ID))
		_, err := s.GetTransaction(ctx, user.ID, tx.ID)
		testutil.AssertAppError(t, err, "TRANSACTION_NOT_FOUND")
		testutil.AssertAppError(t, s.DeleteTransaction(ctx, user.ID, tx.ID), "TRANSACTION_NOT_FOUND")
	})
}

func TestSavingsGoal(t *testing.T) {
	ctx := context.Background()
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	s := New(db)
	user := testutil.CreateTestUser(t, db)

	_, err := s.GetSavingsGoal(ctx, user.ID)
	testutil.AssertAppError(t, err, "NOT_FOUND")

	goal, err := s.UpsertSavingsGoal(ctx, user.ID, 1000, 50000)
	testutil.AssertNoError(t, err)
	if goal.CurrentAmount != 1000 || goal.TargetAmount != 50000 {
		t.Errorf("unexpected goal %+v", goal)
	}

	updated, err := s.UpsertSavingsGoal(ctx, user.ID, 2500, 60000)
	testutil.AssertNoError(t, err)
	if updated.ID != goal.ID {
		t.Errorf("expected the same row, got ids %s and %s", goal.ID, updated.ID)
	}
	if updated.CurrentAmount != 2500 || updated.TargetAmount != 60000 {
		t.Errorf("unexpected goal %+v", updated)
	}

	var count int64
	db.Model(&models.SavingsGoal{}).Where("user_id = ?", user.ID).Count(&count)
	if count != 1 {
		t.Errorf("expected one goal row, got %d", count)
	}
}

func TestWishlist(t *testing.T) {
	ctx := context.Background()
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	s := New(db)
	user := testutil.CreateTestUser(t, db)
	other := testutil.CreateTestUser(t, db)

	first := &models.WishlistItem{Description: "Bike", Price: 90000, Priority: models.PriorityLow}
	testutil.AssertNoError(t, s.InsertWishlistItem(ctx, user.ID, first))
	time.Sleep(2 * time.Millisecond)
	second := &models.WishlistItem{Description: "Book", Price: 5000, Priority: models.PriorityHigh}
	testutil.AssertNoError(t, s.InsertWishlistItem(ctx, user.ID, second))

	items, err := s.ListWishlist(ctx, user.ID)
	testutil.AssertNoError(t, err)
	if len(items) != 2 || items[0].ID != first.ID || items[1].ID != second.ID {
		t.Fatalf("expected insertion order, got %+v", items)
	}

	second.Price = 4500
	second.Priority = models.PriorityMedium
	testutil.AssertNoError(t, s.UpdateWishlistItem(ctx, user.ID, second))
	got, err := s.GetWishlistItem(ctx, user.ID, second.ID)
	testutil.AssertNoError(t, err)
	if got.Price != 4500 || got.Priority != models.PriorityMedium {
		t.Errorf("unexpected item %+v", got)
	}

	testutil.AssertAppError(t, s.UpdateWishlistItem(ctx, other.ID, second), "WISHLIST_ITEM_NOT_FOUND")
	testutil.AssertAppError(t, s.DeleteWishlistItem(ctx, other.ID, first.ID), "WISHLIST_ITEM_NOT_FOUND")
	testutil.AssertNoError(t, s.DeleteWishlistItem(ctx, user.ID, first.ID))
	_, err = s.GetWishlistItem(ctx, user.ID, first.ID)
	testutil.AssertAppError(t, err, "WISHLIST_ITEM_NOT_FOUND")
}
