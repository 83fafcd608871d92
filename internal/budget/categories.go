package budget

import (
	"context"
	"strings"
)

// AddCategory appends a new category to settings. Blank names and
// duplicates are rejected.
func (s *Store) AddCategory(ctx context.Context, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrCategoryNotFound
	}

	settings := s.LoadSettings(ctx)
	for _, cat := range settings.Categories {
		if cat == name {
			return ErrCategoryExists
		}
	}

	settings.Categories = append(settings.Categories, name)
	return s.SaveSettings(ctx, settings)
}

// RenameCategory rewrites every occurrence of oldName in the settings
// category list and cascades the rename into every BudgetItem.category
// across all stored months.
//
// The cascade is a deliberate behavior change: earlier versions renamed
// only the settings entry and left budget items pointing at the old name.
func (s *Store) RenameCategory(ctx context.Context, oldName, newName string) error {
	newName = strings.TrimSpace(newName)
	if newName == "" {
		return ErrCategoryNotFound
	}

	settings := s.LoadSettings(ctx)
	found := false
	for i, cat := range settings.Categories {
		if cat == oldName {
			settings.Categories[i] = newName
			found = true
		}
	}
	if !found {
		return ErrCategoryNotFound
	}

	if err := s.SaveSettings(ctx, settings); err != nil {
		return err
	}

	all := s.loadAllMonths(ctx)
	changed := false
	for _, month := range all {
		if month == nil {
			continue
		}
		for i := range month.BudgetingList {
			if month.BudgetingList[i].Category == oldName {
				month.BudgetingList[i].Category = newName
				changed = true
			}
		}
	}
	if !changed {
		return nil
	}

	// Write months back through the same wholesale path as SaveMonthData.
	for key, month := range all {
		if err := s.SaveMonthData(ctx, key, month); err != nil {
			return err
		}
	}
	return nil
}

// DeleteCategory removes the category from settings. Budget items keeping
// the deleted name are left as-is; the store does not enforce referential
// integrity between settings and month data.
func (s *Store) DeleteCategory(ctx context.Context, name string) error {
	settings := s.LoadSettings(ctx)

	kept := settings.Categories[:0]
	found := false
	for _, cat := range settings.Categories {
		if cat == name {
			found = true
			continue
		}
		kept = append(kept, cat)
	}
	if !found {
		return ErrCategoryNotFound
	}

	settings.Categories = kept
	return s.SaveSettings(ctx, settings)
}
