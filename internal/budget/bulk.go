package budget

import (
	"math"
	"strconv"
	"strings"

	"github.com/jankerzone/tagihan-serampangan-v2/internal/i18n"
	"github.com/jankerzone/tagihan-serampangan-v2/internal/models"
)

// ParseBudgetLines parses pasted tab-separated budget lines, one item per
// line: name, allocation, optional category. Blank lines are skipped
// silently. A line with fewer than two fields yields a format error and no
// item; a non-integer allocation yields an allocation error and no item. An
// explicit category not present in knownCategories yields a warning and the
// item is created under defaultCategory; a line without a category field
// takes defaultCategory silently.
//
// Returned messages are localized for lang and preserve input line order.
func ParseBudgetLines(text string, knownCategories []string, defaultCategory, lang string) ([]models.BudgetItem, []string) {
	var items []models.BudgetItem
	var messages []string

	known := make(map[string]struct{}, len(knownCategories))
	for _, cat := range knownCategories {
		known[cat] = struct{}{}
	}

	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}

		parts := strings.Split(line, "\t")
		for i := range parts {
			parts[i] = strings.TrimSpace(parts[i])
		}

		if len(parts) < 2 {
			messages = append(messages, i18n.T(lang, "invalidRowFormat", map[string]string{"row": line}))
			continue
		}

		name := parts[0]

		allocation, err := strconv.ParseInt(parts[1], 10, 64)
		if err != nil {
			messages = append(messages, i18n.T(lang, "invalidAllocation", map[string]string{"name": name}))
			continue
		}

		category := defaultCategory
		if len(parts) > 2 && parts[2] != "" {
			category = parts[2]
			if _, ok := known[category]; !ok {
				messages = append(messages, i18n.T(lang, "categoryNotFound", map[string]string{
					"category": category,
					"name":     name,
				}))
				category = defaultCategory
			}
		}

		items = append(items, models.BudgetItem{
			ID:          NewBulkID(),
			Name:        name,
			Allocation:  allocation,
			Realization: 0,
			Category:    category,
		})
	}

	return items, messages
}

// ApplyRealizationPercentage returns a copy of items with every realization
// set to round(allocation × percentage / 100), rounding half away from
// zero. Callers validate that percentage is within [0,100]; the operation
// itself does not clamp.
func ApplyRealizationPercentage(items []models.BudgetItem, percentage float64) []models.BudgetItem {
	out := make([]models.BudgetItem, len(items))
	copy(out, items)
	for i := range out {
		out[i].Realization = int64(math.Round(float64(out[i].Allocation) * percentage / 100))
	}
	return out
}
