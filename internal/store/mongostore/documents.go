package mongostore

import (
	"time"

	"financeflow/internal/models"
)

// Documents keep the bson layout independent from the gorm models.

type transactionDoc struct {
	ID          string    `bson:"_id"`
	UserID      string    `bson:"user_id"`
	Description string    `bson:"description"`
	Amount      int64     `bson:"amount"`
	Type        string    `bson:"type"`
	Category    string    `bson:"category"`
	Bank        string    `bson:"bank,omitempty"`
	Date        time.Time `bson:"date"`
	Paid        *bool     `bson:"paid,omitempty"`
	CreatedAt   time.Time `bson:"created_at"`
	UpdatedAt   time.Time `bson:"updated_at"`
}

func newTransactionDoc(tx *models.Transaction) transactionDoc {
	return transactionDoc{
		ID:          tx.ID,
		UserID:      tx.UserID,
		Description: tx.Description,
		Amount:      tx.Amount,
		Type:        string(tx.Type),
		Category:    string(tx.Category),
		Bank:        string(tx.Bank),
		Date:        tx.Date.UTC(),
		Paid:        tx.Paid,
		CreatedAt:   tx.CreatedAt.UTC(),
		UpdatedAt:   tx.UpdatedAt.UTC(),
	}
}

func (d transactionDoc) model() models.Transaction {
	tx := models.Transaction{
		UserID:      d.UserID,
		Description: d.Description,
		Amount:      d.Amount,
		Type:        models.TransactionType(d.Type),
		Category:    models.Category(d.Category),
		Bank:        models.Bank(d.Bank),
		Date:        d.Date.UTC(),
		Paid:        d.Paid,
	}
	tx.ID = d.ID
	tx.CreatedAt = d.CreatedAt
	tx.UpdatedAt = d.UpdatedAt
	return tx
}

type savingsDoc struct {
	ID            string    `bson:"_id"`
	UserID        string    `bson:"user_id"`
	CurrentAmount int64     `bson:"current_amount"`
	TargetAmount  int64     `bson:"target_amount"`
	CreatedAt     time.Time `bson:"created_at"`
	UpdatedAt     time.Time `bson:"updated_at"`
}

func (d savingsDoc) model() models.SavingsGoal {
	g := models.SavingsGoal{
		UserID:        d.UserID,
		CurrentAmount: d.CurrentAmount,
		TargetAmount:  d.TargetAmount,
	}
	g.ID = d.ID
	g.CreatedAt = d.CreatedAt
	g.UpdatedAt = d.UpdatedAt
	return g
}

type wishlistDoc struct {
	ID          string    `bson:"_id"`
	UserID      string    `bson:"user_id"`
	Description string    `bson:"description"`
	Price       int64     `bson:"price"`
	Priority    string    `bson:"priority"`
	CreatedAt   time.Time `bson:"created_at"`
	UpdatedAt   time.Time `bson:"updated_at"`
}

func newWishlistDoc(item *models.WishlistItem) wishlistDoc {
	return wishlistDoc{
		ID:          item.ID,
		UserID:      item.UserID,
		Description: item.Description,
		Price:       item.Price,
		Priority:    string(item.Priority),
		CreatedAt:   item.CreatedAt.UTC(),
		UpdatedAt:   item.UpdatedAt.UTC(),
	}
}

func (d wishlistDoc) model() models.WishlistItem {
	item := models.WishlistItem{
		UserID:      d.UserID,
		Description: d.Description,
		Price:       d.Price,
		Priority:    models.Priority(d.Priority),
	}
	item.ID = d.ID
	item.CreatedAt = d.CreatedAt
	item.UpdatedAt = d.UpdatedAt
	return item
}
