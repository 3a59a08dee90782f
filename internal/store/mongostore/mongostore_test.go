package mongostore

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"financeflow/internal/calendar"
	"financeflow/internal/models"
	"financeflow/internal/pagination"
	"financeflow/internal/store"
	"financeflow/internal/testutil"
)

// mockCollection implements Collection with overridable function fields.
type mockCollection struct {
	findFn       func(ctx context.Context, filter interface{}, opts ...*options.FindOptions) (*mongo.Cursor, error)
	findOneFn    func(ctx context.Context, filter interface{}, opts ...*options.FindOneOptions) *mongo.SingleResult
	countFn      func(ctx context.Context, filter interface{}, opts ...*options.CountOptions) (int64, error)
	insertOneFn  func(ctx context.Context, document interface{}, opts ...*options.InsertOneOptions) (*mongo.InsertOneResult, error)
	insertManyFn func(ctx context.Context, documents []interface{}, opts ...*options.InsertManyOptions) (*mongo.InsertManyResult, error)
	replaceOneFn func(ctx context.Context, filter interface{}, replacement interface{}, opts ...*options.ReplaceOptions) (*mongo.UpdateResult, error)
	updateOneFn  func(ctx context.Context, filter interface{}, update interface{}, opts ...*options.UpdateOptions) (*mongo.UpdateResult, error)
	deleteOneFn  func(ctx context.Context, filter interface{}, opts ...*options.DeleteOptions) (*mongo.DeleteResult, error)
}

func (m *mockCollection) Find(ctx context.Context, filter interface{}, opts ...*options.FindOptions) (*mongo.Cursor, error) {
	if m.findFn != nil {
		return m.findFn(ctx, filter, opts...)
	}
	return mongo.NewCursorFromDocuments(nil, nil, nil)
}

func (m *mockCollection) FindOne(ctx context.Context, filter interface{}, opts ...*options.FindOneOptions) *mongo.SingleResult {
	if m.findOneFn != nil {
		return m.findOneFn(ctx, filter, opts...)
	}
	return mongo.NewSingleResultFromDocument(bson.M{}, mongo.ErrNoDocuments, nil)
}

func (m *mockCollection) CountDocuments(ctx context.Context, filter interface{}, opts ...*options.CountOptions) (int64, error) {
	if m.countFn != nil {
		return m.countFn(ctx, filter, opts...)
	}
	return 0, nil
}

func (m *mockCollection) InsertOne(ctx context.Context, document interface{}, opts ...*options.InsertOneOptions) (*mongo.InsertOneResult, error) {
	if m.insertOneFn != nil {
		return m.insertOneFn(ctx, document, opts...)
	}
	return &mongo.InsertOneResult{}, nil
}

func (m *mockCollection) InsertMany(ctx context.Context, documents []interface{}, opts ...*options.InsertManyOptions) (*mongo.InsertManyResult, error) {
	if m.insertManyFn != nil {
		return m.insertManyFn(ctx, documents, opts...)
	}
	return &mongo.InsertManyResult{}, nil
}

func (m *mockCollection) ReplaceOne(ctx context.Context, filter interface{}, replacement interface{}, opts ...*options.ReplaceOptions) (*mongo.UpdateResult, error) {
	if m.replaceOneFn != nil {
		return m.replaceOneFn(ctx, filter, replacement, opts...)
	}
	return &mongo.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil
}

func (m *mockCollection) UpdateOne(ctx context.Context, filter interface{}, update interface{}, opts ...*options.UpdateOptions) (*mongo.UpdateResult, error) {
	if m.updateOneFn != nil {
		return m.updateOneFn(ctx, filter, update, opts...)
	}
	return &mongo.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil
}

func (m *mockCollection) DeleteOne(ctx context.Context, filter interface{}, opts ...*options.DeleteOptions) (*mongo.DeleteResult, error) {
	if m.deleteOneFn != nil {
		return m.deleteOneFn(ctx, filter, opts...)
	}
	return &mongo.DeleteResult{DeletedCount: 1}, nil
}

// mockProvider returns the collection registered under each name.
type mockProvider struct {
	collections map[string]*mockCollection
}

func (p *mockProvider) Collection(name string) Collection {
	if c, ok := p.collections[name]; ok {
		return c
	}
	return &mockCollection{}
}

func newTestStore(collections map[string]*mockCollection) *Store {
	s := New(&mockProvider{collections: collections})
	s.now = func() time.Time { return time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC) }
	return s
}

func boolPtr(b bool) *bool { return &b }

func TestListTransactions(t *testing.T) {
	ctx := context.Background()
	docs := []interface{}{
		transactionDoc{ID: "t2", UserID: "u1", Description: "Rent", Amount: 150000, Type: "expense", Category: "housing", Date: calendar.Date(2024, 3, 5)},
		transactionDoc{ID: "t1", UserID: "u1", Description: "Salary", Amount: 500000, Type: "income", Category: "salary", Bank: "Nubank", Date: calendar.Date(2024, 3, 1), Paid: boolPtr(true)},
	}
	coll := &mockCollection{
		findFn: func(ctx context.Context, filter interface{}, opts ...*options.FindOptions) (*mongo.Cursor, error) {
			f, ok := filter.(bson.M)
			if !ok || f["user_id"] != "u1" {
				t.Errorf("expected user filter, got %v", filter)
			}
			return mongo.NewCursorFromDocuments(docs, nil, nil)
		},
	}
	s := newTestStore(map[string]*mockCollection{transactionsCollection: coll})

	txs, err := s.ListTransactions(ctx, "u1")
	testutil.AssertNoError(t, err)
	if len(txs) != 2 {
		t.Fatalf("expected 2 transactions, got %d", len(txs))
	}
	if txs[1].Bank != models.BankNubank || txs[1].Paid == nil || !*txs[1].Paid {
		t.Errorf("unexpected decoded transaction %+v", txs[1])
	}
	if txs[0].Paid != nil {
		t.Error("expected missing paid flag to decode as nil")
	}
	if !txs[0].Date.Equal(calendar.Date(2024, 3, 5)) {
		t.Errorf("unexpected date %s", txs[0].Date)
	}

	t.Run("find_error", func(t *testing.T) {
		coll := &mockCollection{
			findFn: func(ctx context.Context, filter interface{}, opts ...*options.FindOptions) (*mongo.Cursor, error) {
				return nil, errors.New("connection reset")
			},
		}
		s := newTestStore(map[string]*mockCollection{transactionsCollection: coll})
		_, err := s.ListTransactions(ctx, "u1")
		testutil.AssertAppError(t, err, "INTERNAL_ERROR")
	})
}

func TestListTransactionsPage(t *testing.T) {
	ctx := context.Background()
	var gotFilter bson.M
	var gotOpts *options.FindOptions
	coll := &mockCollection{
		countFn: func(ctx context.Context, filter interface{}, opts ...*options.CountOptions) (int64, error) {
			return 45, nil
		},
		findFn: func(ctx context.Context, filter interface{}, opts ...*options.FindOptions) (*mongo.Cursor, error) {
			gotFilter = filter.(bson.M)
			gotOpts = opts[0]
			return mongo.NewCursorFromDocuments([]interface{}{
				transactionDoc{ID: "t1", UserID: "u1", Amount: 100, Type: "expense", Category: "food"},
			}, nil, nil)
		},
	}
	s := newTestStore(map[string]*mockCollection{transactionsCollection: coll})

	typ := models.TransactionTypeExpense
	from := calendar.Date(2024, 3, 1)
	asOf := calendar.Date(2024, 3, 15)
	page, err := s.ListTransactionsPage(ctx, "u1",
		pagination.PageRequest{Page: 3, PageSize: 20},
		store.TransactionFilter{Type: &typ, FromDate: &from, Paid: boolPtr(false), AsOf: asOf})
	testutil.AssertNoError(t, err)

	if page.TotalItems != 45 || page.TotalPages != 3 || len(page.Data) != 1 {
		t.Errorf("unexpected page %+v", page)
	}
	if gotFilter["type"] != "expense" {
		t.Errorf("expected type filter, got %v", gotFilter["type"])
	}
	if _, ok := gotFilter["$or"]; !ok {
		t.Error("expected paid filter")
	}
	if gotOpts.Skip == nil || *gotOpts.Skip != 40 {
		t.Errorf("expected skip 40, got %v", gotOpts.Skip)
	}
	if gotOpts.Limit == nil || *gotOpts.Limit != 20 {
		t.Errorf("expected limit 20, got %v", gotOpts.Limit)
	}
}

func TestGetTransaction(t *testing.T) {
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		coll := &mockCollection{
			findOneFn: func(ctx context.Context, filter interface{}, opts ...*options.FindOneOptions) *mongo.SingleResult {
				f := filter.(bson.M)
				if f["_id"] != "t1" || f["user_id"] != "u1" {
					t.Errorf("expected owned filter, got %v", f)
				}
				return mongo.NewSingleResultFromDocument(transactionDoc{ID: "t1", UserID: "u1", Amount: 700, Type: "income", Category: "salary"}, nil, nil)
			},
		}
		s := newTestStore(map[string]*mockCollection{transactionsCollection: coll})
		tx, err := s.GetTransaction(ctx, "u1", "t1")
		testutil.AssertNoError(t, err)
		if tx.ID != "t1" || tx.Amount != 700 {
			t.Errorf("unexpected transaction %+v", tx)
		}
	})

	t.Run("not_found", func(t *testing.T) {
		s := newTestStore(nil)
		_, err := s.GetTransaction(ctx, "u1", "missing")
		testutil.AssertAppError(t, err, "TRANSACTION_NOT_FOUND")
	})
}

func TestInsertTransactions(t *testing.T) {
	ctx := context.Background()
	var inserted []interface{}
	coll := &mockCollection{
		insertManyFn: func(ctx context.Context, documents []interface{}, opts ...*options.InsertManyOptions) (*mongo.InsertManyResult, error) {
			inserted = documents
			return &mongo.InsertManyResult{}, nil
		},
	}
	s := newTestStore(map[string]*mockCollection{transactionsCollection: coll})

	records := []models.Transaction{
		{Description: "Phone (1/2)", Amount: 100, Type: models.TransactionTypeExpense, Category: models.CategoryShopping, Date: calendar.Date(2024, 1, 15)},
		{Description: "Phone (2/2)", Amount: 100, Type: models.TransactionTypeExpense, Category: models.CategoryShopping, Date: calendar.Date(2024, 2, 15), Paid: boolPtr(false)},
	}
	out, err := s.InsertTransactions(ctx, "u1", records)
	testutil.AssertNoError(t, err)

	if len(inserted) != 2 {
		t.Fatalf("expected one InsertMany with 2 documents, got %d", len(inserted))
	}
	for i, tx := range out {
		if tx.ID == "" || tx.UserID != "u1" {
			t.Errorf("record %d: expected id and user, got %+v", i, tx)
		}
		doc := inserted[i].(transactionDoc)
		if doc.ID != tx.ID {
			t.Errorf("record %d: document id %s differs from returned id %s", i, doc.ID, tx.ID)
		}
	}
	if records[0].ID != "" {
		t.Error("input records must not be mutated")
	}

	t.Run("failure", func(t *testing.T) {
		coll := &mockCollection{
			insertManyFn: func(ctx context.Context, documents []interface{}, opts ...*options.InsertManyOptions) (*mongo.InsertManyResult, error) {
				return nil, errors.New("write concern")
			},
		}
		s := newTestStore(map[string]*mockCollection{transactionsCollection: coll})
		_, err := s.InsertTransactions(ctx, "u1", records)
		testutil.AssertAppError(t, err, "INTERNAL_ERROR")
	})
}

func TestUpdateAndDeleteTransaction(t *testing.T) {
	ctx := context.Background()

	t.Run("update_replaces_document", func(t *testing.T) {
		var replacement transactionDoc
		coll := &mockCollection{
			replaceOneFn: func(ctx context.Context, filter interface{}, r interface{}, opts ...*options.ReplaceOptions) (*mongo.UpdateResult, error) {
				replacement = r.(transactionDoc)
				return &mongo.UpdateResult{MatchedCount: 1}, nil
			},
		}
		s := newTestStore(map[string]*mockCollection{transactionsCollection: coll})
		tx := &models.Transaction{Description: "Gym", Amount: 9000, Type: models.TransactionTypeExpense, Category: models.CategoryHealth}
		tx.ID = "t1"
		testutil.AssertNoError(t, s.UpdateTransaction(ctx, "u1", tx))
		if replacement.ID != "t1" || replacement.UserID != "u1" || replacement.Paid != nil {
			t.Errorf("unexpected replacement %+v", replacement)
		}
	})

	t.Run("update_not_found", func(t *testing.T) {
		coll := &mockCollection{
			replaceOneFn: func(ctx context.Context, filter interface{}, r interface{}, opts ...*options.ReplaceOptions) (*mongo.UpdateResult, error) {
				return &mongo.UpdateResult{}, nil
			},
		}
		s := newTestStore(map[string]*mockCollection{transactionsCollection: coll})
		tx := &models.Transaction{}
		tx.ID = "other"
		testutil.AssertAppError(t, s.UpdateTransaction(ctx, "u1", tx), "TRANSACTION_NOT_FOUND")
	})

	t.Run("delete_not_found", func(t *testing.T) {
		coll := &mockCollection{
			deleteOneFn: func(ctx context.Context, filter interface{}, opts ...*options.DeleteOptions) (*mongo.DeleteResult, error) {
				return &mongo.DeleteResult{}, nil
			},
		}
		s := newTestStore(map[string]*mockCollection{transactionsCollection: coll})
		testutil.AssertAppError(t, s.DeleteTransaction(ctx, "u1", "t1"), "TRANSACTION_NOT_FOUND")
	})

	t.Run("delete", func(t *testing.T) {
		s := newTestStore(nil)
		testutil.AssertNoError(t, s.DeleteTransaction(ctx, "u1", "t1"))
	})
}

func TestSavingsGoal(t *testing.T) {
	ctx := context.Background()

	t.Run("missing_is_not_found", func(t *testing.T) {
		s := newTestStore(nil)
		_, err := s.GetSavingsGoal(ctx, "u1")
		testutil.AssertAppError(t, err, "NOT_FOUND")
	})

	t.Run("upsert", func(t *testing.T) {
		var upsert bool
		coll := &mockCollection{
			updateOneFn: func(ctx context.Context, filter interface{}, update interface{}, opts ...*options.UpdateOptions) (*mongo.UpdateResult, error) {
				upsert = opts[0].Upsert != nil && *opts[0].Upsert
				return &mongo.UpdateResult{UpsertedCount: 1}, nil
			},
			findOneFn: func(ctx context.Context, filter interface{}, opts ...*options.FindOneOptions) *mongo.SingleResult {
				return mongo.NewSingleResultFromDocument(savingsDoc{ID: "g1", UserID: "u1", CurrentAmount: 500, TargetAmount: 2000}, nil, nil)
			},
		}
		s := newTestStore(map[string]*mockCollection{savingsCollection: coll})
		goal, err := s.UpsertSavingsGoal(ctx, "u1", 500, 2000)
		testutil.AssertNoError(t, err)
		if !upsert {
			t.Error("expected upsert option")
		}
		if goal.CurrentAmount != 500 || goal.TargetAmount != 2000 {
			t.Errorf("unexpected goal %+v", goal)
		}
	})
}

func TestWishlist(t *testing.T) {
	ctx := context.Background()

	t.Run("list", func(t *testing.T) {
		coll := &mockCollection{
			findFn: func(ctx context.Context, filter interface{}, opts ...*options.FindOptions) (*mongo.Cursor, error) {
				return mongo.NewCursorFromDocuments([]interface{}{
					wishlistDoc{ID: "w1", UserID: "u1", Description: "Bike", Price: 90000, Priority: "High"},
					wishlistDoc{ID: "w2", UserID: "u1", Description: "Book", Price: 5000, Priority: "Low"},
				}, nil, nil)
			},
		}
		s := newTestStore(map[string]*mockCollection{wishlistCollection: coll})
		items, err := s.ListWishlist(ctx, "u1")
		testutil.AssertNoError(t, err)
		if len(items) != 2 || items[0].Priority != models.PriorityHigh {
			t.Errorf("unexpected items %+v", items)
		}
	})

	t.Run("insert_assigns_id", func(t *testing.T) {
		s := newTestStore(nil)
		item := &models.WishlistItem{Description: "Bike", Price: 90000, Priority: models.PriorityHigh}
		testutil.AssertNoError(t, s.InsertWishlistItem(ctx, "u1", item))
		if item.ID == "" || item.UserID != "u1" {
			t.Errorf("unexpected item %+v", item)
		}
	})

	t.Run("update_not_found", func(t *testing.T) {
		coll := &mockCollection{
			updateOneFn: func(ctx context.Context, filter interface{}, update interface{}, opts ...*options.UpdateOptions) (*mongo.UpdateResult, error) {
				return &mongo.UpdateResult{}, nil
			},
		}
		s := newTestStore(map[string]*mockCollection{wishlistCollection: coll})
		item := &models.WishlistItem{}
		item.ID = "w9"
		testutil.AssertAppError(t, s.UpdateWishlistItem(ctx, "u1", item), "WISHLIST_ITEM_NOT_FOUND")
	})

	t.Run("get_not_found", func(t *testing.T) {
		s := newTestStore(nil)
		_, err := s.GetWishlistItem(ctx, "u1", "w9")
		testutil.AssertAppError(t, err, "WISHLIST_ITEM_NOT_FOUND")
	})
}
