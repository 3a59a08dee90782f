// Package recurrence expands a single transaction intent into the dated
// records that get stored: one for a single transaction, N for an
// installment plan and twelve for a monthly recurring entry.
package recurrence

import (
	"fmt"
	"strings"
	"time"

	"financeflow/internal/calendar"
	apperrors "financeflow/internal/errors"
	"financeflow/internal/models"
)

// Frequency selects how an intent is expanded.
type Frequency string

const (
	FrequencySingle      Frequency = "single"
	FrequencyMonthly     Frequency = "monthly"
	FrequencyInstallment Frequency = "installment"
)

const (
	// MinInstallments and MaxInstallments bound an installment plan.
	MinInstallments = 2
	MaxInstallments = 48
	// MonthlyHorizon is how many records a monthly entry produces.
	MonthlyHorizon = 12

	MaxDescriptionLength = 200

	recurringSuffix = " (Recurring)"
)

// IsValid reports whether f is a known frequency. The empty frequency is
// treated as single by Expand but is not valid on its own.
func (f Frequency) IsValid() bool {
	switch f {
	case FrequencySingle, FrequencyMonthly, FrequencyInstallment:
		return true
	}
	return false
}

// Intent is what the user asked to record.
type Intent struct {
	Description  string
	Amount       int64
	Type         models.TransactionType
	Category     models.Category
	Bank         models.Bank
	Date         time.Time
	Paid         *bool
	Frequency    Frequency
	Installments int
}

// Validate checks the intent before expansion.
func (in Intent) Validate() error {
	desc := strings.TrimSpace(in.Description)
	if desc == "" {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "description is required")
	}
	if len(desc) > MaxDescriptionLength {
		return apperrors.WithMessage(apperrors.ErrInvalidInput,
			fmt.Sprintf("description must be at most %d characters", MaxDescriptionLength))
	}
	if in.Amount <= 0 {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "amount must be positive")
	}
	if in.Amount > models.MaxAmount {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "amount is too large")
	}
	if !in.Type.IsValid() {
		return apperrors.ErrInvalidTransactionType
	}
	if !in.Category.ValidFor(in.Type) {
		return apperrors.ErrInvalidCategory
	}
	if !in.Bank.IsValid() {
		return apperrors.ErrInvalidBank
	}
	if in.Date.IsZero() {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "date is required")
	}
	switch in.frequency() {
	case FrequencySingle, FrequencyMonthly:
	case FrequencyInstallment:
		if in.Installments < MinInstallments || in.Installments > MaxInstallments {
			return apperrors.ErrInvalidInstallments
		}
	default:
		return apperrors.ErrInvalidFrequency
	}
	return nil
}

func (in Intent) frequency() Frequency {
	if in.Frequency == "" {
		return FrequencySingle
	}
	return in.Frequency
}

// Expand validates the intent and returns the records to store, in date
// order. Records carry no id or user; the store assigns both.
//
// Later records are dated AddMonths(base, i), so a day that does not exist
// in a target month is clamped to that month's last day and the next month
// goes back to the base day.
func Expand(in Intent) ([]models.Transaction, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	base := calendar.Day(in.Date)
	desc := strings.TrimSpace(in.Description)

	var n int
	var describe func(i int) string
	switch in.frequency() {
	case FrequencyInstallment:
		n = in.Installments
		describe = func(i int) string { return fmt.Sprintf("%s (%d/%d)", desc, i+1, n) }
	case FrequencyMonthly:
		n = MonthlyHorizon
		describe = func(i int) string {
			if i == 0 {
				return desc
			}
			return desc + recurringSuffix
		}
	default:
		n = 1
		describe = func(int) string { return desc }
	}

	records := make([]models.Transaction, n)
	for i := range records {
		records[i] = models.Transaction{
			Description: describe(i),
			Amount:      in.Amount,
			Type:        in.Type,
			Category:    in.Category,
			Bank:        in.Bank,
			Date:        calendar.AddMonths(base, i),
			Paid:        paidFor(i, in.Paid),
		}
	}
	return records, nil
}

// Only the first occurrence inherits the user's choice; future ones start
// unpaid.
func paidFor(i int, paid *bool) *bool {
	if i == 0 {
		if paid == nil {
			return nil
		}
		v := *paid
		return &v
	}
	v := false
	return &v
}
