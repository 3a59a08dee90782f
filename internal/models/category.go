package models

// Category is a fixed transaction category. The set of valid categories
// depends on the transaction type; CategoryOther is shared by both.
type Category string

const (
	CategoryFood        Category = "food"
	CategoryTransport   Category = "transport"
	CategoryHousing     Category = "housing"
	CategoryLeisure     Category = "leisure"
	CategoryHealth      Category = "health"
	CategoryEducation   Category = "education"
	CategoryShopping    Category = "shopping"
	CategoryServices    Category = "services"
	CategorySalary      Category = "salary"
	CategoryInvestments Category = "investments"
	CategorySavingsBox  Category = "savings_box"
	CategoryOther       Category = "other"
)

// CategoryInfo holds display metadata for a category.
type CategoryInfo struct {
	Category Category `json:"category"`
	Name     string   `json:"name"`
	Icon     string   `json:"icon"`
	Color    string   `json:"color"`
}

// Categories lists every category in enumeration order. Chart ties and
// dominant-category ties are broken by this order.
var Categories = []CategoryInfo{
	{CategoryFood, "Food", "🍔", "hsl(24, 95%, 53%)"},
	{CategoryTransport, "Transport", "🚗", "hsl(221, 83%, 53%)"},
	{CategoryHousing, "Housing", "🏠", "hsl(262, 83%, 58%)"},
	{CategoryLeisure, "Leisure", "🎮", "hsl(339, 90%, 51%)"},
	{CategoryHealth, "Health", "💊", "hsl(142, 76%, 36%)"},
	{CategoryEducation, "Education", "📚", "hsl(199, 89%, 48%)"},
	{CategoryShopping, "Shopping", "🛒", "hsl(280, 87%, 65%)"},
	{CategoryServices, "Services", "⚡", "hsl(38, 92%, 50%)"},
	{CategorySalary, "Salary", "💰", "hsl(158, 64%, 40%)"},
	{CategoryInvestments, "Investments", "📈", "hsl(173, 80%, 40%)"},
	{CategorySavingsBox, "Savings Box", "🐷", "hsl(326, 100%, 74%)"},
	{CategoryOther, "Other", "📦", "hsl(215, 14%, 45%)"},
}

// ExpenseCategories are the categories an expense may use.
var ExpenseCategories = []Category{
	CategoryFood,
	CategoryTransport,
	CategoryHousing,
	CategoryLeisure,
	CategoryHealth,
	CategoryEducation,
	CategoryShopping,
	CategoryServices,
	CategorySavingsBox,
	CategoryOther,
}

// IncomeCategories are the categories an income may use.
var IncomeCategories = []Category{
	CategorySalary,
	CategoryInvestments,
	CategoryOther,
}

var categoryIndex = func() map[Category]int {
	idx := make(map[Category]int, len(Categories))
	for i, c := range Categories {
		idx[c.Category] = i
	}
	return idx
}()

// Info returns the display metadata of c. Unknown categories get their raw
// value as name.
func (c Category) Info() CategoryInfo {
	if i, ok := categoryIndex[c]; ok {
		return Categories[i]
	}
	return CategoryInfo{Category: c, Name: string(c)}
}

// Order returns the enumeration position of c; unknown categories sort last.
func (c Category) Order() int {
	if i, ok := categoryIndex[c]; ok {
		return i
	}
	return len(Categories)
}

// IsValid reports whether c is a known category.
func (c Category) IsValid() bool {
	_, ok := categoryIndex[c]
	return ok
}

// ValidFor reports whether c may be used with the given transaction type.
func (c Category) ValidFor(t TransactionType) bool {
	for _, allowed := range CategoriesFor(t) {
		if allowed == c {
			return true
		}
	}
	return false
}

// CategoriesFor returns the categories allowed for t, or nil for an unknown type.
func CategoriesFor(t TransactionType) []Category {
	switch t {
	case TransactionTypeExpense:
		return ExpenseCategories
	case TransactionTypeIncome:
		return IncomeCategories
	}
	return nil
}
