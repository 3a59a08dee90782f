package validator

import (
	"testing"

	"github.com/go-playground/validator/v10"
)

type sample struct {
	Type      string `validate:"omitempty,transaction_type"`
	Category  string `validate:"omitempty,category"`
	Bank      string `validate:"bank"`
	Frequency string `validate:"omitempty,frequency"`
	Priority  string `validate:"omitempty,priority"`
	Date      string `validate:"omitempty,calendar_date"`
}

func newValidate(t *testing.T) *validator.Validate {
	t.Helper()
	v := validator.New()
	for tag, fn := range map[string]validator.Func{
		"transaction_type": validateTransactionType,
		"category":         validateCategory,
		"bank":             validateBank,
		"frequency":        validateFrequency,
		"priority":         validatePriority,
		"calendar_date":    validateCalendarDate,
	} {
		if err := v.RegisterValidation(tag, fn); err != nil {
			t.Fatalf("register %s: %v", tag, err)
		}
	}
	return v
}

func TestCustomValidators(t *testing.T) {
	v := newValidate(t)

	tests := []struct {
		name  string
		in    sample
		valid bool
	}{
		{"all_valid", sample{Type: "expense", Category: "food", Bank: "Nubank", Frequency: "installment", Priority: "High", Date: "2024-01-15"}, true},
		{"empty_bank_allowed", sample{Bank: ""}, true},
		{"rfc3339_date", sample{Date: "2024-01-15T10:00:00-03:00"}, true},
		{"bad_type", sample{Type: "transfer"}, false},
		{"bad_category", sample{Category: "groceries"}, false},
		{"bad_bank", sample{Bank: "Monzo"}, false},
		{"bad_frequency", sample{Frequency: "weekly"}, false},
		{"bad_priority", sample{Priority: "urgent"}, false},
		{"bad_date", sample{Date: "15/01/2024"}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Struct(tt.in)
			if tt.valid && err != nil {
				t.Errorf("expected valid, got %v", err)
			}
			if !tt.valid && err == nil {
				t.Error("expected validation error")
			}
		})
	}
}
