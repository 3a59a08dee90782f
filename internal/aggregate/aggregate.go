// Package aggregate derives totals, monthly slices, category breakdowns and
// bank balances from a list of transactions. Functions never mutate their
// input and do all arithmetic in int64 minor units.
package aggregate

import (
	"sort"
	"time"

	"financeflow/internal/calendar"
	"financeflow/internal/models"
)

// Totals sums income and expense. Balance is always Income - Expense.
type Totals struct {
	Income  int64 `json:"income"`
	Expense int64 `json:"expense"`
	Balance int64 `json:"balance"`
}

func (t *Totals) add(tx *models.Transaction) {
	switch tx.Type {
	case models.TransactionTypeIncome:
		t.Income += tx.Amount
	case models.TransactionTypeExpense:
		t.Expense += tx.Amount
	default:
		return
	}
	t.Balance += tx.Signed()
}

// EffectivePaid reports whether tx counts as realized on asOf: the explicit
// Paid flag when set, otherwise whether its date has been reached.
func EffectivePaid(tx *models.Transaction, asOf time.Time) bool {
	if tx.Paid != nil {
		return *tx.Paid
	}
	return !calendar.Day(tx.Date).After(calendar.Day(asOf))
}

// TotalsByPaidStatus sums every effectively paid transaction regardless of
// month. This is the realized lifetime balance.
func TotalsByPaidStatus(txs []models.Transaction, asOf time.Time) Totals {
	var t Totals
	for i := range txs {
		if EffectivePaid(&txs[i], asOf) {
			t.add(&txs[i])
		}
	}
	return t
}

// MonthlySlice returns the transactions dated in the given month, paid or
// not, in input order.
func MonthlySlice(txs []models.Transaction, year int, month time.Month) []models.Transaction {
	slice := make([]models.Transaction, 0)
	for _, tx := range txs {
		if calendar.InMonth(tx.Date, year, month) {
			slice = append(slice, tx)
		}
	}
	return slice
}

// MonthlyTotals sums a monthly slice by type without any paid filtering.
func MonthlyTotals(slice []models.Transaction) Totals {
	var t Totals
	for i := range slice {
		t.add(&slice[i])
	}
	return t
}

// ExpensesByCategory sums expenses per category. Categories without
// expenses are absent from the result.
func ExpensesByCategory(slice []models.Transaction) map[models.Category]int64 {
	out := make(map[models.Category]int64)
	for _, tx := range slice {
		if tx.Type == models.TransactionTypeExpense {
			out[tx.Category] += tx.Amount
		}
	}
	return out
}

// RealizedExpensesByCategory is ExpensesByCategory restricted to
// effectively paid transactions.
func RealizedExpensesByCategory(txs []models.Transaction, asOf time.Time) map[models.Category]int64 {
	out := make(map[models.Category]int64)
	for i := range txs {
		tx := &txs[i]
		if tx.Type == models.TransactionTypeExpense && EffectivePaid(tx, asOf) {
			out[tx.Category] += tx.Amount
		}
	}
	return out
}

// SortedCategories returns the keys of byCategory ordered by amount
// descending, ties broken by category enumeration order.
func SortedCategories(byCategory map[models.Category]int64) []models.Category {
	cats := make([]models.Category, 0, len(byCategory))
	for c := range byCategory {
		cats = append(cats, c)
	}
	sort.Slice(cats, func(i, j int) bool {
		ai, aj := byCategory[cats[i]], byCategory[cats[j]]
		if ai != aj {
			return ai > aj
		}
		return cats[i].Order() < cats[j].Order()
	})
	return cats
}
