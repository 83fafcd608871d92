package budget

import (
	"encoding/json"
	"fmt"

	"github.com/jankerzone/tagihan-serampangan-v2/internal/models"
)

// MaxImportSize is the upper bound on an import file's byte size.
const MaxImportSize = 1024 * 1024

// ExportDocument is the on-disk export format.
type ExportDocument struct {
	Month string            `json:"month"`
	Data  *models.MonthData `json:"data"`
}

// ExportFilename returns the download filename for a month key.
func ExportFilename(monthKey string) string {
	return "tagihan-" + monthKey + ".json"
}

// ExportMonth serializes one month's data as a two-space-indented export
// document.
func ExportMonth(monthKey string, month *models.MonthData) ([]byte, error) {
	doc := ExportDocument{Month: monthKey, Data: month}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal export document: %w", err)
	}
	return data, nil
}

// ParseImport parses an export document. Files over MaxImportSize are
// rejected outright with ErrImportTooLarge. Any of the three lists missing
// from the document defaults to empty. The embedded month field is ignored:
// imports always target the caller's currently selected month.
func ParseImport(data []byte) (*models.MonthData, error) {
	if len(data) > MaxImportSize {
		return nil, ErrImportTooLarge
	}

	var doc ExportDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse import document: %w", err)
	}

	month := doc.Data
	if month == nil {
		month = &models.MonthData{}
	}
	if month.IncomeSources == nil {
		month.IncomeSources = []models.IncomeSource{}
	}
	if month.SavingList == nil {
		month.SavingList = []models.Saving{}
	}
	if month.BudgetingList == nil {
		month.BudgetingList = []models.BudgetItem{}
	}
	return month, nil
}
