package services

import (
	"context"
	"time"

	"financeflow/internal/aggregate"
	"financeflow/internal/calendar"
	apperrors "financeflow/internal/errors"
	"financeflow/internal/insights"
	"financeflow/internal/logger"
	"financeflow/internal/models"
	"financeflow/internal/money"
	"financeflow/internal/store"
)

// dashboardService reads the store on every call and recomputes all figures.
type dashboardService struct {
	transactions store.TransactionStore
	wishlist     store.WishlistStore
	savings      SavingsServicer
	now          func() time.Time
}

// NewDashboardService creates a new DashboardServicer.
func NewDashboardService(transactions store.TransactionStore, wishlist store.WishlistStore, savings SavingsServicer) DashboardServicer {
	return &dashboardService{
		transactions: transactions,
		wishlist:     wishlist,
		savings:      savings,
		now:          time.Now,
	}
}

func (s *dashboardService) asOf() time.Time {
	return calendar.Day(s.now())
}

func (s *dashboardService) load(ctx context.Context, userID string) ([]models.Transaction, error) {
	txs, err := s.transactions.ListTransactions(ctx, userID)
	if err != nil {
		logger.FromContext(ctx).Errorw("failed to load transactions for dashboard", "error", err, "user_id", userID)
		return nil, err
	}
	return txs, nil
}

func validateMonth(year int, month time.Month) error {
	if year < 1 || month < time.January || month > time.December {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "year and month (1-12) are required")
	}
	return nil
}

// GetSummary returns realized and monthly totals, the expense chart of the
// month and the savings goal.
func (s *dashboardService) GetSummary(ctx context.Context, userID string, year int, month time.Month) (*Summary, error) {
	if err := validateMonth(year, month); err != nil {
		return nil, err
	}
	txs, err := s.load(ctx, userID)
	if err != nil {
		return nil, err
	}
	goal, err := s.savings.GetSavingsGoal(ctx, userID)
	if err != nil {
		return nil, err
	}

	slice := aggregate.MonthlySlice(txs, year, month)
	return &Summary{
		Year:             year,
		Month:            month,
		TransactionCount: len(slice),
		Realized:         aggregate.TotalsByPaidStatus(txs, s.asOf()),
		Monthly:          aggregate.MonthlyTotals(slice),
		ExpenseChart:     aggregate.ChartSeries(aggregate.ExpensesByCategory(slice)),
		Savings:          *goal,
		SavingsProgress:  money.Percent(goal.CurrentAmount, goal.TargetAmount, 1).String(),
	}, nil
}

// GetInsights runs the insight rules. The month scope analyzes the
// selected month; the lifetime scope analyzes realized figures. Savings
// projections always use the selected month.
func (s *dashboardService) GetInsights(ctx context.Context, userID string, year int, month time.Month, scope InsightScope) ([]insights.Insight, error) {
	if err := validateMonth(year, month); err != nil {
		return nil, err
	}
	if scope == "" {
		scope = ScopeMonth
	}
	if !scope.IsValid() {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "scope must be month or lifetime")
	}

	txs, err := s.load(ctx, userID)
	if err != nil {
		return nil, err
	}
	items, err := s.wishlist.ListWishlist(ctx, userID)
	if err != nil {
		return nil, err
	}
	goal, err := s.savings.GetSavingsGoal(ctx, userID)
	if err != nil {
		return nil, err
	}

	asOf := s.asOf()
	slice := aggregate.MonthlySlice(txs, year, month)
	monthly := aggregate.MonthlyTotals(slice)
	realized := aggregate.TotalsByPaidStatus(txs, asOf)

	facts := insights.Facts{
		MonthIncome:   monthly.Income,
		MonthExpenses: monthly.Expense,
		Balance:       realized.Balance,
		Wishlist:      items,
		Savings:       *goal,
		AsOf:          asOf,
	}
	switch scope {
	case ScopeLifetime:
		facts.TransactionCount = len(txs)
		facts.Income = realized.Income
		facts.Expenses = realized.Expense
		facts.ExpensesByCategory = aggregate.RealizedExpensesByCategory(txs, asOf)
	default:
		facts.TransactionCount = len(slice)
		facts.Income = monthly.Income
		facts.Expenses = monthly.Expense
		facts.ExpensesByCategory = aggregate.ExpensesByCategory(slice)
	}

	return insights.Generate(facts), nil
}

// GetBankBalances returns realized balances per bank.
func (s *dashboardService) GetBankBalances(ctx context.Context, userID string) (*aggregate.BankReport, error) {
	txs, err := s.load(ctx, userID)
	if err != nil {
		return nil, err
	}
	report := aggregate.BankBalances(txs, s.asOf())
	return &report, nil
}

// GetAnnualSeries returns twelve monthly income/expense points for year.
func (s *dashboardService) GetAnnualSeries(ctx context.Context, userID string, year int) ([]aggregate.MonthPoint, error) {
	if year < 1 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "year is required")
	}
	txs, err := s.load(ctx, userID)
	if err != nil {
		return nil, err
	}
	return aggregate.AnnualSeries(txs, year), nil
}
