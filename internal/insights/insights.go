// Package insights turns aggregated figures into a short list of advisory
// messages. Rules run in a fixed order over an accumulator; each rule emits
// at most one insight and may look at what earlier rules emitted.
package insights

import (
	"fmt"
	"sort"
	"time"

	"financeflow/internal/aggregate"
	"financeflow/internal/calendar"
	"financeflow/internal/models"
	"financeflow/internal/money"
)

// Kind is the severity of an insight.
type Kind string

const (
	KindWarning Kind = "warning"
	KindTip     Kind = "tip"
	KindSuccess Kind = "success"
	KindInfo    Kind = "info"
)

// Rule names the rule that produced an insight.
type Rule string

const (
	RuleOnboarding       Rule = "onboarding"
	RuleWishlist         Rule = "wishlist"
	RuleOverspend        Rule = "overspend"
	RulePurchaseTiming   Rule = "purchase_timing"
	RuleCreditUsage      Rule = "credit_usage"
	RuleSavingsRate      Rule = "savings_rate"
	RuleDominantCategory Rule = "dominant_category"
	RuleMissingIncome    Rule = "missing_income"
	RuleFoodSpending     Rule = "food_spending"
	RuleLeisureSpending  Rule = "leisure_spending"
	RuleHealthy          Rule = "healthy"
)

// Insight is one advisory message.
type Insight struct {
	Rule           Rule       `json:"rule"`
	Kind           Kind       `json:"kind"`
	Title          string     `json:"title"`
	Description    string     `json:"description"`
	ProjectedMonth *time.Time `json:"projected_month,omitempty"`
}

// Facts is the read-only snapshot the rules evaluate.
//
// Income, Expenses and ExpensesByCategory are the figures under analysis
// (a month or the realized lifetime, chosen by the caller). MonthIncome and
// MonthExpenses always describe the month being viewed and drive the
// savings projections. Balance is the realized balance.
type Facts struct {
	TransactionCount   int
	Income             int64
	Expenses           int64
	ExpensesByCategory map[models.Category]int64
	MonthIncome        int64
	MonthExpenses      int64
	Balance            int64
	Wishlist           []models.WishlistItem
	Savings            models.SavingsGoal
	AsOf               time.Time
}

// MonthlySavings is what is left of the viewed month's income.
func (f *Facts) MonthlySavings() int64 {
	return f.MonthIncome - f.MonthExpenses
}

// Accumulator collects emitted insights in display order.
type Accumulator struct {
	insights []Insight
}

func newAccumulator() *Accumulator {
	return &Accumulator{insights: make([]Insight, 0, 4)}
}

func (a *Accumulator) add(in Insight) {
	a.insights = append(a.insights, in)
}

// Len returns the number of insights emitted so far.
func (a *Accumulator) Len() int {
	return len(a.insights)
}

type rule struct {
	name Rule
	// final stops evaluation once this rule has emitted.
	final bool
	eval  func(f *Facts, acc *Accumulator) (Insight, bool)
}

var rules = []rule{
	{name: RuleOnboarding, final: true, eval: onboarding},
	{name: RuleWishlist, eval: wishlist},
	{name: RuleOverspend, eval: overspend},
	{name: RulePurchaseTiming, eval: purchaseTiming},
	{name: RuleCreditUsage, eval: creditUsage},
	{name: RuleSavingsRate, eval: savingsRate},
	{name: RuleDominantCategory, eval: dominantCategory},
	{name: RuleMissingIncome, eval: missingIncome},
	{name: RuleFoodSpending, eval: categoryShare(models.CategoryFood, 15,
		"🍔 Cut food costs", "Cooking at home can cut food spending by up to half.")},
	{name: RuleLeisureSpending, eval: categoryShare(models.CategoryLeisure, 10,
		"🎮 Trim leisure spending", "Look for free alternatives and set a fixed monthly budget for fun.")},
	{name: RuleHealthy, eval: healthy},
}

// Generate evaluates every rule against f and returns the insights in the
// order they should be displayed. The result is never empty.
func Generate(f Facts) []Insight {
	if f.ExpensesByCategory == nil {
		f.ExpensesByCategory = map[models.Category]int64{}
	}
	acc := newAccumulator()
	for _, r := range rules {
		in, ok := r.eval(&f, acc)
		if !ok {
			continue
		}
		in.Rule = r.name
		acc.add(in)
		if r.final {
			break
		}
	}
	return acc.insights
}

func onboarding(f *Facts, _ *Accumulator) (Insight, bool) {
	if f.TransactionCount > 0 {
		return Insight{}, false
	}
	return Insight{
		Kind:        KindInfo,
		Title:       "Start your journey",
		Description: "Add your transactions to receive personalized insights and tips.",
	}, true
}

// Pick returns the wishlist item to plan for: highest priority, then lowest
// price, then earliest in the list.
func Pick(items []models.WishlistItem) (models.WishlistItem, bool) {
	if len(items) == 0 {
		return models.WishlistItem{}, false
	}
	sorted := make([]models.WishlistItem, len(items))
	copy(sorted, items)
	sort.SliceStable(sorted, func(i, j int) bool {
		ri, rj := sorted[i].Priority.Rank(), sorted[j].Priority.Rank()
		if ri != rj {
			return ri > rj
		}
		return sorted[i].Price < sorted[j].Price
	})
	return sorted[0], true
}

func wishlist(f *Facts, _ *Accumulator) (Insight, bool) {
	item, ok := Pick(f.Wishlist)
	if !ok {
		return Insight{}, false
	}
	if f.Balance >= item.Price {
		return Insight{
			Kind:  KindSuccess,
			Title: "You can afford it",
			Description: fmt.Sprintf("Your balance of %s already covers %q (%s).",
				money.Format(f.Balance), item.Description, money.Format(item.Price)),
		}, true
	}

	remaining := item.Price - f.Balance
	savings := f.MonthlySavings()
	if savings <= 0 {
		return Insight{
			Kind:  KindWarning,
			Title: "Wishlist out of reach",
			Description: fmt.Sprintf("You need %s more for %q, but this month leaves nothing to save.",
				money.Format(remaining), item.Description),
		}, true
	}

	months := money.CeilDiv(remaining, savings)
	projected := calendar.MonthStart(calendar.AddMonths(calendar.Day(f.AsOf), int(months)))
	return Insight{
		Kind:  KindTip,
		Title: "Plan your purchase",
		Description: fmt.Sprintf("Saving %s a month, you can buy %q in %d month(s), around %s.",
			money.Format(savings), item.Description, months, projected.Format("January 2006")),
		ProjectedMonth: &projected,
	}, true
}

func overspend(f *Facts, _ *Accumulator) (Insight, bool) {
	if f.Expenses <= f.Income {
		return Insight{}, false
	}
	return Insight{
		Kind:        KindWarning,
		Title:       "Warning: spending too much",
		Description: "You are spending more than you earn. Review your expenses urgently.",
	}, true
}

func purchaseTiming(f *Facts, acc *Accumulator) (Insight, bool) {
	if acc.Len() > 0 {
		return Insight{}, false
	}
	savings := f.MonthlySavings()
	if money.ExceedsPercent(savings, f.MonthIncome, 30) {
		return Insight{
			Kind:        KindSuccess,
			Title:       "Good time to buy",
			Description: fmt.Sprintf("You are keeping %s this month, more than 30%% of your income.", money.Format(savings)),
		}, true
	}
	if f.MonthIncome > 0 && money.ComparePercent(savings, f.MonthIncome, 10) < 0 {
		return Insight{
			Kind:        KindWarning,
			Title:       "Hold off on big purchases",
			Description: "Less than 10% of this month's income is left over. Wait before spending more.",
		}, true
	}
	return Insight{}, false
}

// creditUsage fires alongside overspend; with no income any expense counts.
func creditUsage(f *Facts, _ *Accumulator) (Insight, bool) {
	if !money.ExceedsPercent(f.Expenses, f.Income, 80) {
		return Insight{}, false
	}
	return Insight{
		Kind:        KindWarning,
		Title:       "Watch your card",
		Description: "Expenses are above 80% of income. Avoid new installments until the balance recovers.",
	}, true
}

func savingsRate(f *Facts, _ *Accumulator) (Insight, bool) {
	if f.Income <= 0 {
		return Insight{}, false
	}
	saved := f.Income - f.Expenses
	switch {
	case saved < 0:
		return Insight{}, false
	case money.ComparePercent(saved, f.Income, 10) < 0:
		return Insight{
			Kind:        KindTip,
			Title:       "Room to save",
			Description: "Try to save at least 20% of your income. Small cuts make a big difference.",
		}, true
	case money.ComparePercent(saved, f.Income, 20) >= 0:
		return Insight{
			Kind:        KindSuccess,
			Title:       "Great job!",
			Description: fmt.Sprintf("You are saving %s%% of your income. Keep it up!", money.Percent(saved, f.Income, 0)),
		}, true
	}
	return Insight{}, false
}

func dominantCategory(f *Facts, _ *Accumulator) (Insight, bool) {
	cats := aggregate.SortedCategories(f.ExpensesByCategory)
	if len(cats) == 0 || f.Expenses <= 0 {
		return Insight{}, false
	}
	top := cats[0]
	pct := money.Percent(f.ExpensesByCategory[top], f.Expenses, 0)
	if pct.IntPart() <= 40 {
		return Insight{}, false
	}
	info := top.Info()
	return Insight{
		Kind:        KindWarning,
		Title:       fmt.Sprintf("%s High spending on %s", info.Icon, info.Name),
		Description: fmt.Sprintf("%s%% of your expenses go to %s. Set a monthly limit.", pct, info.Name),
	}, true
}

func missingIncome(f *Facts, _ *Accumulator) (Insight, bool) {
	if f.Income != 0 {
		return Insight{}, false
	}
	return Insight{
		Kind:        KindTip,
		Title:       "Record your income",
		Description: "Add your income to get a complete view of your financial health.",
	}, true
}

// categoryShare tips when spending on c exceeds pct% of income.
func categoryShare(c models.Category, pct int64, title, desc string) func(*Facts, *Accumulator) (Insight, bool) {
	return func(f *Facts, _ *Accumulator) (Insight, bool) {
		spent := f.ExpensesByCategory[c]
		if spent <= 0 || !money.ExceedsPercent(spent, f.Income, pct) {
			return Insight{}, false
		}
		return Insight{Kind: KindTip, Title: title, Description: desc}, true
	}
}

func healthy(_ *Facts, acc *Accumulator) (Insight, bool) {
	if acc.Len() > 0 {
		return Insight{}, false
	}
	return Insight{
		Kind:        KindInfo,
		Title:       "Healthy finances",
		Description: "Your spending is balanced. Keep monitoring to stay in control.",
	}, true
}
