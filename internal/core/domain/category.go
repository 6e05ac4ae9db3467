package domain

// CategoryType splits categories into the income and expense sides.
type CategoryType string

const (
	CategoryIncome  CategoryType = "income"
	CategoryExpense CategoryType = "expense"
)

// IsValid reports whether the category type is one of the known values.
func (t CategoryType) IsValid() bool {
	return t == CategoryIncome || t == CategoryExpense
}

// Category is a named income/expense bucket. Preset categories
// (IsCustom == false) are seeded by migrations and cannot be modified or
// deleted; user-created ones can.
type Category struct {
	ID       int64        `json:"id"`
	Name     string       `json:"name"`
	Type     CategoryType `json:"type"`
	IsCustom bool         `json:"isCustom"`
	Icon     string       `json:"icon"`
	Color    string       `json:"color"`
	Timestamps
}
