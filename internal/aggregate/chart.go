package aggregate

import (
	"time"

	"github.com/shopspring/decimal"

	"financeflow/internal/calendar"
	"financeflow/internal/models"
	"financeflow/internal/money"
)

// ChartPoint is one slice of the expenses-by-category chart.
type ChartPoint struct {
	Category models.Category `json:"category"`
	Name     string          `json:"name"`
	Icon     string          `json:"icon"`
	Color    string          `json:"color"`
	Amount   int64           `json:"amount"`
	Percent  decimal.Decimal `json:"percent" swaggertype:"string" example:"16.7"`
}

// ChartSeries turns a category map into chart points sorted by amount
// descending (ties by category order). Percent is the share of the total
// with one decimal place; the shares never add up to more than 100.
func ChartSeries(byCategory map[models.Category]int64) []ChartPoint {
	cats := SortedCategories(byCategory)
	amounts := make([]int64, len(cats))
	for i, c := range cats {
		amounts[i] = byCategory[c]
	}
	shares := money.Shares(amounts, 1)

	points := make([]ChartPoint, 0, len(cats))
	for i, c := range cats {
		info := c.Info()
		points = append(points, ChartPoint{
			Category: c,
			Name:     info.Name,
			Icon:     info.Icon,
			Color:    info.Color,
			Amount:   amounts[i],
			Percent:  shares[i],
		})
	}
	return points
}

// MonthPoint holds one month of the annual income/expense series.
type MonthPoint struct {
	Month   time.Month `json:"month" swaggertype:"integer"`
	Income  int64      `json:"income"`
	Expense int64      `json:"expense"`
}

// AnnualSeries returns twelve points, January to December, with the
// planned (not paid-filtered) income and expense of each month of year.
func AnnualSeries(txs []models.Transaction, year int) []MonthPoint {
	points := make([]MonthPoint, 12)
	for i := range points {
		points[i].Month = time.Month(i + 1)
	}
	for _, tx := range txs {
		if tx.Date.Year() != year {
			continue
		}
		p := &points[calendar.Day(tx.Date).Month()-1]
		switch tx.Type {
		case models.TransactionTypeIncome:
			p.Income += tx.Amount
		case models.TransactionTypeExpense:
			p.Expense += tx.Amount
		}
	}
	return points
}
