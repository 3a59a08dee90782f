// Package mongostore implements the store contracts on MongoDB. Each user
// document carries a user_id field and every query filters on it.
package mongostore

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	apperrors "financeflow/internal/errors"
	"financeflow/internal/models"
	"financeflow/internal/pagination"
	"financeflow/internal/store"
)

// Store is a MongoDB-backed store.Store.
type Store struct {
	provider CollectionProvider
	now      func() time.Time
}

var _ store.Store = (*Store)(nil)

// New creates a Store reading collections from provider.
func New(provider CollectionProvider) *Store {
	return &Store{provider: provider, now: time.Now}
}

var newestFirst = bson.D{{Key: "date", Value: -1}, {Key: "created_at", Value: -1}}

func owned(userID, id string) bson.M {
	return bson.M{"_id": id, "user_id": userID}
}

func decodeTransactions(ctx context.Context, cur *mongo.Cursor) ([]models.Transaction, error) {
	defer cur.Close(ctx)
	var docs []transactionDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	txs := make([]models.Transaction, len(docs))
	for i, d := range docs {
		txs[i] = d.model()
	}
	return txs, nil
}

// ListTransactions returns every transaction of the user, newest date first.
func (s *Store) ListTransactions(ctx context.Context, userID string) ([]models.Transaction, error) {
	cur, err := s.provider.Collection(transactionsCollection).
		Find(ctx, bson.M{"user_id": userID}, options.Find().SetSort(newestFirst))
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return decodeTransactions(ctx, cur)
}

// ListTransactionsPage returns one filtered page of the user's transactions.
func (s *Store) ListTransactionsPage(ctx context.Context, userID string, page pagination.PageRequest, filter store.TransactionFilter) (*pagination.PageResponse[models.Transaction], error) {
	page.Defaults()
	coll := s.provider.Collection(transactionsCollection)
	query := transactionQuery(userID, filter)

	total, err := coll.CountDocuments(ctx, query)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	skip, limit := page.Window()
	opts := options.Find().
		SetSort(newestFirst).
		SetSkip(skip).
		SetLimit(limit)
	cur, err := coll.Find(ctx, query, opts)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	txs, err := decodeTransactions(ctx, cur)
	if err != nil {
		return nil, err
	}

	result := pagination.NewPageResponse(txs, page.Page, page.PageSize, total)
	return &result, nil
}

func transactionQuery(userID string, f store.TransactionFilter) bson.M {
	q := bson.M{"user_id": userID}
	date := bson.M{}
	if f.FromDate != nil {
		date["$gte"] = f.FromDate.UTC()
	}
	if f.ToDate != nil {
		date["$lte"] = f.ToDate.UTC()
	}
	if len(date) > 0 {
		q["date"] = date
	}
	if f.Type != nil {
		q["type"] = string(*f.Type)
	}
	if f.Category != nil {
		q["category"] = string(*f.Category)
	}
	if f.Bank != nil {
		q["bank"] = string(*f.Bank)
	}
	if f.Paid != nil {
		// An unset flag falls back to comparing the date with AsOf.
		cmp := "$lte"
		if !*f.Paid {
			cmp = "$gt"
		}
		q["$or"] = bson.A{
			bson.M{"paid": *f.Paid},
			bson.M{"paid": bson.M{"$exists": false}, "date": bson.M{cmp: f.AsOf.UTC()}},
		}
	}
	return q
}

// GetTransaction retrieves a transaction owned by the user.
func (s *Store) GetTransaction(ctx context.Context, userID, id string) (*models.Transaction, error) {
	var doc transactionDoc
	err := s.provider.Collection(transactionsCollection).FindOne(ctx, owned(userID, id)).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrTransactionNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	tx := doc.model()
	return &tx, nil
}

// InsertTransactions stores every record with a single InsertMany.
func (s *Store) InsertTransactions(ctx context.Context, userID string, records []models.Transaction) ([]models.Transaction, error) {
	if len(records) == 0 {
		return []models.Transaction{}, nil
	}
	now := s.now().UTC()
	out := make([]models.Transaction, len(records))
	docs := make([]interface{}, len(records))
	for i, r := range records {
		r.ID = models.NewID()
		r.UserID = userID
		r.CreatedAt = now
		r.UpdatedAt = now
		out[i] = r
		docs[i] = newTransactionDoc(&out[i])
	}

	if _, err := s.provider.Collection(transactionsCollection).
		InsertMany(ctx, docs, options.InsertMany().SetOrdered(true)); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return out, nil
}

// UpdateTransaction replaces the stored document, so a nil Paid removes the flag.
func (s *Store) UpdateTransaction(ctx context.Context, userID string, tx *models.Transaction) error {
	tx.UserID = userID
	tx.UpdatedAt = s.now().UTC()
	res, err := s.provider.Collection(transactionsCollection).
		ReplaceOne(ctx, owned(userID, tx.ID), newTransactionDoc(tx))
	if err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if res.MatchedCount == 0 {
		return apperrors.ErrTransactionNotFound
	}
	return nil
}

// DeleteTransaction removes a transaction owned by the user.
func (s *Store) DeleteTransaction(ctx context.Context, userID, id string) error {
	res, err := s.provider.Collection(transactionsCollection).DeleteOne(ctx, owned(userID, id))
	if err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if res.DeletedCount == 0 {
		return apperrors.ErrTransactionNotFound
	}
	return nil
}

// GetSavingsGoal returns the user's goal or ErrNotFound.
func (s *Store) GetSavingsGoal(ctx context.Context, userID string) (*models.SavingsGoal, error) {
	var doc savingsDoc
	err := s.provider.Collection(savingsCollection).FindOne(ctx, bson.M{"user_id": userID}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	goal := doc.model()
	return &goal, nil
}

// UpsertSavingsGoal creates or overwrites the user's goal.
func (s *Store) UpsertSavingsGoal(ctx context.Context, userID string, current, target int64) (*models.SavingsGoal, error) {
	now := s.now().UTC()
	update := bson.M{
		"$set": bson.M{
			"current_amount": current,
			"target_amount":  target,
			"updated_at":     now,
		},
		"$setOnInsert": bson.M{
			"_id":        models.NewID(),
			"created_at": now,
		},
	}
	_, err := s.provider.Collection(savingsCollection).
		UpdateOne(ctx, bson.M{"user_id": userID}, update, options.Update().SetUpsert(true))
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return s.GetSavingsGoal(ctx, userID)
}

// ListWishlist returns the user's items in insertion order.
func (s *Store) ListWishlist(ctx context.Context, userID string) ([]models.WishlistItem, error) {
	cur, err := s.provider.Collection(wishlistCollection).Find(ctx, bson.M{"user_id": userID},
		options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}, {Key: "_id", Value: 1}}))
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	defer cur.Close(ctx)

	var docs []wishlistDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	items := make([]models.WishlistItem, len(docs))
	for i, d := range docs {
		items[i] = d.model()
	}
	return items, nil
}

// GetWishlistItem retrieves an item owned by the user.
func (s *Store) GetWishlistItem(ctx context.Context, userID, id string) (*models.WishlistItem, error) {
	var doc wishlistDoc
	err := s.provider.Collection(wishlistCollection).FindOne(ctx, owned(userID, id)).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrWishlistItemNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	item := doc.model()
	return &item, nil
}

// InsertWishlistItem stores a new item and assigns its id.
func (s *Store) InsertWishlistItem(ctx context.Context, userID string, item *models.WishlistItem) error {
	now := s.now().UTC()
	item.ID = models.NewID()
	item.UserID = userID
	item.CreatedAt = now
	item.UpdatedAt = now
	if _, err := s.provider.Collection(wishlistCollection).InsertOne(ctx, newWishlistDoc(item)); err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

// UpdateWishlistItem overwrites description, price and priority.
func (s *Store) UpdateWishlistItem(ctx context.Context, userID string, item *models.WishlistItem) error {
	item.UpdatedAt = s.now().UTC()
	update := bson.M{"$set": bson.M{
		"description": item.Description,
		"price":       item.Price,
		"priority":    string(item.Priority),
		"updated_at":  item.UpdatedAt,
	}}
	res, err := s.provider.Collection(wishlistCollection).UpdateOne(ctx, owned(userID, item.ID), update)
	if err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if res.MatchedCount == 0 {
		return apperrors.ErrWishlistItemNotFound
	}
	return nil
}

// DeleteWishlistItem removes an item owned by the user.
func (s *Store) DeleteWishlistItem(ctx context.Context, userID, id string) error {
	res, err := s.provider.Collection(wishlistCollection).DeleteOne(ctx, owned(userID, id))
	if err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if res.DeletedCount == 0 {
		return apperrors.ErrWishlistItemNotFound
	}
	return nil
}
