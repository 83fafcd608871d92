package budget

import (
	"context"

	"github.com/jankerzone/tagihan-serampangan-v2/internal/i18n"
	"github.com/jankerzone/tagihan-serampangan-v2/internal/models"
)

// Single-item month operations. Each one is a read-modify-write of the
// month under monthKey.

// AddIncome appends an income source and returns it.
func (s *Store) AddIncome(ctx context.Context, monthKey, name string, amount int64) (models.IncomeSource, error) {
	income := models.IncomeSource{
		ID:     NewID(),
		Name:   name,
		Amount: amount,
	}

	month := s.LoadMonthData(ctx, monthKey)
	month.IncomeSources = append(month.IncomeSources, income)
	if err := s.SaveMonthData(ctx, monthKey, month); err != nil {
		return models.IncomeSource{}, err
	}
	return income, nil
}

// NewMoneySaving builds a cash saving: the amount is the entered value.
func NewMoneySaving(name string, amount float64) models.Saving {
	return models.Saving{
		ID:     NewID(),
		Name:   name,
		Type:   models.SavingTypeMoney,
		Amount: amount,
	}
}

// NewAssetSaving builds a gold, crypto, or stock saving. The amount is
// quantity × pricePerUnit, computed here once and never recomputed. A blank
// unit defaults per type: grams for gold, shares for stock, the ticker
// otherwise, localized for lang.
func NewAssetSaving(name string, savingType models.SavingType, quantity, pricePerUnit float64, unit, ticker, lang string) models.Saving {
	if unit == "" {
		switch savingType {
		case models.SavingTypeGold:
			unit = i18n.T(lang, "grams", nil)
		case models.SavingTypeStock:
			unit = i18n.T(lang, "shares", nil)
		default:
			unit = ticker
		}
	}

	return models.Saving{
		ID:           NewID(),
		Name:         name,
		Type:         savingType,
		Amount:       quantity * pricePerUnit,
		Quantity:     quantity,
		PricePerUnit: pricePerUnit,
		Unit:         unit,
		Ticker:       ticker,
	}
}

// AddSaving appends a saving built by NewMoneySaving or NewAssetSaving.
func (s *Store) AddSaving(ctx context.Context, monthKey string, saving models.Saving) error {
	month := s.LoadMonthData(ctx, monthKey)
	month.SavingList = append(month.SavingList, saving)
	return s.SaveMonthData(ctx, monthKey, month)
}

// AddBudgetItem appends a budget line with realization 0 and returns it.
func (s *Store) AddBudgetItem(ctx context.Context, monthKey, name string, allocation int64, category string) (models.BudgetItem, error) {
	item := models.BudgetItem{
		ID:          NewID(),
		Name:        name,
		Allocation:  allocation,
		Realization: 0,
		Category:    category,
	}

	month := s.LoadMonthData(ctx, monthKey)
	month.BudgetingList = append(month.BudgetingList, item)
	if err := s.SaveMonthData(ctx, monthKey, month); err != nil {
		return models.BudgetItem{}, err
	}
	return item, nil
}

// AppendBudgetItems appends already-built items (bulk add).
func (s *Store) AppendBudgetItems(ctx context.Context, monthKey string, items []models.BudgetItem) error {
	if len(items) == 0 {
		return nil
	}
	month := s.LoadMonthData(ctx, monthKey)
	month.BudgetingList = append(month.BudgetingList, items...)
	return s.SaveMonthData(ctx, monthKey, month)
}

// DeleteIncome removes the income source with the given id. Unknown ids
// are ignored.
func (s *Store) DeleteIncome(ctx context.Context, monthKey, id string) error {
	month := s.LoadMonthData(ctx, monthKey)
	kept := month.IncomeSources[:0]
	for _, item := range month.IncomeSources {
		if item.ID != id {
			kept = append(kept, item)
		}
	}
	month.IncomeSources = kept
	return s.SaveMonthData(ctx, monthKey, month)
}

// DeleteSaving removes the saving with the given id. Unknown ids are
// ignored.
func (s *Store) DeleteSaving(ctx context.Context, monthKey, id string) error {
	month := s.LoadMonthData(ctx, monthKey)
	kept := month.SavingList[:0]
	for _, item := range month.SavingList {
		if item.ID != id {
			kept = append(kept, item)
		}
	}
	month.SavingList = kept
	return s.SaveMonthData(ctx, monthKey, month)
}

// DeleteBudgetItem removes the budget line with the given id. Unknown ids
// are ignored.
func (s *Store) DeleteBudgetItem(ctx context.Context, monthKey, id string) error {
	month := s.LoadMonthData(ctx, monthKey)
	kept := month.BudgetingList[:0]
	for _, item := range month.BudgetingList {
		if item.ID != id {
			kept = append(kept, item)
		}
	}
	month.BudgetingList = kept
	return s.SaveMonthData(ctx, monthKey, month)
}

// SetRealization updates the realization of one budget line.
func (s *Store) SetRealization(ctx context.Context, monthKey, id string, realization int64) error {
	month := s.LoadMonthData(ctx, monthKey)
	for i := range month.BudgetingList {
		if month.BudgetingList[i].ID == id {
			month.BudgetingList[i].Realization = realization
		}
	}
	return s.SaveMonthData(ctx, monthKey, month)
}

// SetItemCategory moves one budget line to another category.
func (s *Store) SetItemCategory(ctx context.Context, monthKey, id, category string) error {
	month := s.LoadMonthData(ctx, monthKey)
	for i := range month.BudgetingList {
		if month.BudgetingList[i].ID == id {
			month.BudgetingList[i].Category = category
		}
	}
	return s.SaveMonthData(ctx, monthKey, month)
}

// SetAllRealizations sets every budget line's realization to the given
// percentage of its allocation.
func (s *Store) SetAllRealizations(ctx context.Context, monthKey string, percentage float64) error {
	month := s.LoadMonthData(ctx, monthKey)
	month.BudgetingList = ApplyRealizationPercentage(month.BudgetingList, percentage)
	return s.SaveMonthData(ctx, monthKey, month)
}
