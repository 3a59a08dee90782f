package models

import "time"

// TransactionType represents the type of transaction
type TransactionType string

const (
	TransactionTypeIncome  TransactionType = "income"
	TransactionTypeExpense TransactionType = "expense"
)

// IsValid reports whether t is income or expense.
func (t TransactionType) IsValid() bool {
	return t == TransactionTypeIncome || t == TransactionTypeExpense
}

// Transaction is a single income or expense record.
//
// Amount is in minor units and always positive; Type carries the sign.
// Date is a calendar day at midnight UTC. Paid is optional: when nil the
// transaction counts as paid once its date is reached.
type Transaction struct {
	Base
	UserID      string          `gorm:"type:uuid;not null;index" json:"user_id"`
	Description string          `gorm:"not null" json:"description"`
	Amount      int64           `gorm:"type:bigint;not null" json:"amount"`
	Type        TransactionType `gorm:"not null" json:"type"`
	Category    Category        `gorm:"not null" json:"category"`
	Bank        Bank            `json:"bank,omitempty"`
	Date        time.Time       `gorm:"not null;index" json:"date"`
	Paid        *bool           `json:"paid,omitempty"`
}

// MaxAmount caps every stored amount (minor units). Request bindings repeat
// it as lte=1000000000000.
const MaxAmount int64 = 1_000_000_000_000

// Signed returns the amount with income positive and expense negative.
func (t *Transaction) Signed() int64 {
	if t.Type == TransactionTypeExpense {
		return -t.Amount
	}
	return t.Amount
}
