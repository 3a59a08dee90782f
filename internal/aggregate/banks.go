package aggregate

import (
	"sort"
	"time"

	"financeflow/internal/models"
)

// BankBalance is the realized activity of a single bank.
type BankBalance struct {
	Bank    models.Bank `json:"bank"`
	Income  int64       `json:"income"`
	Expense int64       `json:"expense"`
	Balance int64       `json:"balance"`
}

// BankReport lists banks with activity. Empty is set when no bank has any,
// so callers can tell "no activity" apart from an error.
type BankReport struct {
	Banks []BankBalance `json:"banks"`
	Total int64         `json:"total"`
	Empty bool          `json:"empty"`
}

// BankBalances accumulates effectively paid transactions per bank.
// Transactions without a bank are skipped. Banks are ordered by balance
// descending, then by name.
func BankBalances(txs []models.Transaction, asOf time.Time) BankReport {
	byBank := make(map[models.Bank]*BankBalance)
	for i := range txs {
		tx := &txs[i]
		if tx.Bank == models.BankNone || !EffectivePaid(tx, asOf) {
			continue
		}
		b, ok := byBank[tx.Bank]
		if !ok {
			b = &BankBalance{Bank: tx.Bank}
			byBank[tx.Bank] = b
		}
		switch tx.Type {
		case models.TransactionTypeIncome:
			b.Income += tx.Amount
		case models.TransactionTypeExpense:
			b.Expense += tx.Amount
		default:
			continue
		}
		b.Balance += tx.Signed()
	}

	report := BankReport{Banks: make([]BankBalance, 0, len(byBank))}
	for _, b := range byBank {
		if b.Income == 0 && b.Expense == 0 && b.Balance == 0 {
			continue
		}
		report.Banks = append(report.Banks, *b)
		report.Total += b.Balance
	}
	sort.Slice(report.Banks, func(i, j int) bool {
		bi, bj := report.Banks[i], report.Banks[j]
		if bi.Balance != bj.Balance {
			return bi.Balance > bj.Balance
		}
		return bi.Bank < bj.Bank
	})
	report.Empty = len(report.Banks) == 0
	return report
}
