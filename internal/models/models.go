package models

// SavingType enumerates the supported kinds of savings.
type SavingType string

const (
	SavingTypeMoney  SavingType = "money"  // plain cash amount
	SavingTypeGold   SavingType = "gold"   // quantity in grams
	SavingTypeCrypto SavingType = "crypto" // quantity of a ticker
	SavingTypeStock  SavingType = "stock"  // quantity of shares
)

// IncomeSource is a single income line for a month.
type IncomeSource struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Amount int64  `json:"amount"`
}

// Saving is a savings position for a month.
//
// For SavingTypeMoney, Amount is the entered value. For every other type
// Amount is Quantity × PricePerUnit, computed once when the saving is added
// and never recomputed afterwards (there is no edit operation for savings).
type Saving struct {
	ID           string     `json:"id"`
	Name         string     `json:"name"`
	Type         SavingType `json:"type"`
	Amount       float64    `json:"amount"`
	Quantity     float64    `json:"quantity,omitempty"`
	PricePerUnit float64    `json:"pricePerUnit,omitempty"`
	Unit         string     `json:"unit,omitempty"`
	Ticker       string     `json:"ticker,omitempty"`
}

// BudgetItem is one budget line: planned allocation vs realized spending.
// Realization is not bounded above Allocation.
type BudgetItem struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Allocation  int64  `json:"allocation"`
	Realization int64  `json:"realization"`
	Category    string `json:"category"`
}

// MonthData holds everything tracked for one "YYYY-MM" period.
type MonthData struct {
	IncomeSources []IncomeSource `json:"incomeSources"`
	SavingList    []Saving       `json:"savingList"`
	BudgetingList []BudgetItem   `json:"budgetingList"`
}

// Empty reports whether the month has no entries at all.
func (m *MonthData) Empty() bool {
	return len(m.IncomeSources) == 0 && len(m.SavingList) == 0 && len(m.BudgetingList) == 0
}

// Clone returns a deep copy of the month data. The returned lists never
// share backing arrays with the receiver.
func (m *MonthData) Clone() *MonthData {
	out := &MonthData{
		IncomeSources: make([]IncomeSource, len(m.IncomeSources)),
		SavingList:    make([]Saving, len(m.SavingList)),
		BudgetingList: make([]BudgetItem, len(m.BudgetingList)),
	}
	copy(out.IncomeSources, m.IncomeSources)
	copy(out.SavingList, m.SavingList)
	copy(out.BudgetingList, m.BudgetingList)
	return out
}

// DashboardColors maps the four dashboard panels to a color-shade token
// such as "green-100". The tokens are opaque data here; turning them into
// actual styling is a presentation concern.
type DashboardColors struct {
	Income           string `json:"income"`
	BudgetedExpenses string `json:"budgeted_expenses"`
	Spending         string `json:"spending"`
	Savings          string `json:"savings"`
}

// GlobalSettings is the per-user settings object, stored wholesale.
type GlobalSettings struct {
	CurrentYear  int             `json:"currentYear"`
	CurrentMonth string          `json:"currentMonth"`
	Categories   []string        `json:"categories"`
	Colors       DashboardColors `json:"colors"`
	Lang         string          `json:"lang"`
}

// UserProfile is the per-user display name and avatar URL.
type UserProfile struct {
	Name   string `json:"name"`
	Avatar string `json:"avatar"`
}

// Credentials maps username to password hash. Stored under a single global
// key, not per-user-prefixed.
type Credentials map[string]string
