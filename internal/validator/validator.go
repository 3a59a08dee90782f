// Package validator provides custom validation functions for Gin's binding engine.
package validator

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"financeflow/internal/calendar"
	"financeflow/internal/models"
	"financeflow/internal/recurrence"
)

// Register registers all custom validators with the Gin binding engine.
func Register() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("transaction_type", validateTransactionType)
		_ = v.RegisterValidation("category", validateCategory)
		_ = v.RegisterValidation("bank", validateBank)
		_ = v.RegisterValidation("frequency", validateFrequency)
		_ = v.RegisterValidation("priority", validatePriority)
		_ = v.RegisterValidation("calendar_date", validateCalendarDate)
	}
}

func validateTransactionType(fl validator.FieldLevel) bool {
	return models.TransactionType(fl.Field().String()).IsValid()
}

// validateCategory only checks the category exists; whether it suits the
// transaction type is decided by the recurrence expander.
func validateCategory(fl validator.FieldLevel) bool {
	return models.Category(fl.Field().String()).IsValid()
}

func validateBank(fl validator.FieldLevel) bool {
	return models.Bank(fl.Field().String()).IsValid()
}

func validateFrequency(fl validator.FieldLevel) bool {
	return recurrence.Frequency(fl.Field().String()).IsValid()
}

func validatePriority(fl validator.FieldLevel) bool {
	return models.Priority(fl.Field().String()).IsValid()
}

func validateCalendarDate(fl validator.FieldLevel) bool {
	_, err := calendar.Parse(fl.Field().String())
	return err == nil
}
