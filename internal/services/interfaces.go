package services

import (
	"context"
	"time"

	"financeflow/internal/aggregate"
	"financeflow/internal/insights"
	"financeflow/internal/models"
	"financeflow/internal/pagination"
	"financeflow/internal/recurrence"
	"financeflow/internal/store"
)

// UserServicer defines the contract for user-related business logic.
type UserServicer interface {
	CreateUser(ctx context.Context, email, password, firstName, lastName string) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	GetUserByID(ctx context.Context, id string) (*models.User, error)
	VerifyPassword(user *models.User, password string) bool
	AttemptLogin(ctx context.Context, email, password string) (*models.User, error)
}

// TransactionPatch carries the fields of a partial transaction update.
// Nil fields keep their stored value. ClearPaid removes the paid flag so the
// transaction falls back to its date.
type TransactionPatch struct {
	Description *string
	Amount      *int64
	Type        *models.TransactionType
	Category    *models.Category
	Bank        *models.Bank
	Date        *time.Time
	Paid        *bool
	ClearPaid   bool
}

// TransactionServicer defines the contract for transaction-related business logic.
type TransactionServicer interface {
	// CreateTransactions expands intent into one or more records and stores them.
	CreateTransactions(ctx context.Context, userID string, intent recurrence.Intent) ([]models.Transaction, error)
	ListTransactions(ctx context.Context, userID string, page pagination.PageRequest, filter store.TransactionFilter) (*pagination.PageResponse[models.Transaction], error)
	GetTransaction(ctx context.Context, userID, id string) (*models.Transaction, error)
	UpdateTransaction(ctx context.Context, userID, id string, patch TransactionPatch) (*models.Transaction, error)
	// SetPaid sets or, with a nil paid, clears the explicit paid flag.
	SetPaid(ctx context.Context, userID, id string, paid *bool) (*models.Transaction, error)
	DeleteTransaction(ctx context.Context, userID, id string) error
}

// SavingsServicer defines the contract for the savings goal.
type SavingsServicer interface {
	GetSavingsGoal(ctx context.Context, userID string) (*models.SavingsGoal, error)
	UpdateSavingsGoal(ctx context.Context, userID string, current, target int64) (*models.SavingsGoal, error)
}

// WishlistPatch carries the fields of a partial wishlist update.
type WishlistPatch struct {
	Description *string
	Price       *int64
	Priority    *models.Priority
}

// WishlistServicer defines the contract for wishlist items.
type WishlistServicer interface {
	ListItems(ctx context.Context, userID string) ([]models.WishlistItem, error)
	CreateItem(ctx context.Context, userID, description string, price int64, priority models.Priority) (*models.WishlistItem, error)
	UpdateItem(ctx context.Context, userID, id string, patch WishlistPatch) (*models.WishlistItem, error)
	DeleteItem(ctx context.Context, userID, id string) error
}

// InsightScope selects which figures the insight rules analyze.
type InsightScope string

const (
	// ScopeMonth analyzes the selected month, paid or not.
	ScopeMonth InsightScope = "month"
	// ScopeLifetime analyzes realized totals across all months.
	ScopeLifetime InsightScope = "lifetime"
)

// IsValid reports whether s is a known scope.
func (s InsightScope) IsValid() bool {
	return s == ScopeMonth || s == ScopeLifetime
}

// Summary is the dashboard overview for one month.
type Summary struct {
	Year             int                    `json:"year"`
	Month            time.Month             `json:"month" swaggertype:"integer"`
	TransactionCount int                    `json:"transaction_count"`
	Realized         aggregate.Totals       `json:"realized"`
	Monthly          aggregate.Totals       `json:"monthly"`
	ExpenseChart     []aggregate.ChartPoint `json:"expense_chart"`
	Savings          models.SavingsGoal     `json:"savings"`
	SavingsProgress  string                 `json:"savings_progress"`
}

// DashboardServicer exposes the aggregation and insight engines.
type DashboardServicer interface {
	GetSummary(ctx context.Context, userID string, year int, month time.Month) (*Summary, error)
	GetInsights(ctx context.Context, userID string, year int, month time.Month, scope InsightScope) ([]insights.Insight, error)
	GetBankBalances(ctx context.Context, userID string) (*aggregate.BankReport, error)
	GetAnnualSeries(ctx context.Context, userID string, year int) ([]aggregate.MonthPoint, error)
}

// AuditServicer defines the contract for audit logging.
type AuditServicer interface {
	Log(ctx context.Context, userID, action, resourceType, resourceID, ipAddress string, changes map[string]interface{})
}
