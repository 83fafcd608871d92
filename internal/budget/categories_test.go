package budget

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jankerzone/tagihan-serampangan-v2/internal/models"
)

func TestAddCategory(t *testing.T) {
	store := NewStore(newMemoryKV(), "budi")
	ctx := context.Background()

	require.NoError(t, store.AddCategory(ctx, "Transportasi"))
	assert.Contains(t, store.LoadSettings(ctx).Categories, "Transportasi")

	assert.ErrorIs(t, store.AddCategory(ctx, "Transportasi"), ErrCategoryExists)
	assert.Error(t, store.AddCategory(ctx, "   "))
}

func TestRenameCategory_CascadesIntoBudgetItems(t *testing.T) {
	store := NewStore(newMemoryKV(), "budi")
	ctx := context.Background()

	require.NoError(t, store.SaveSettings(ctx, DefaultSettings(time.Now())))
	require.NoError(t, store.SaveMonthData(ctx, "2025-01", &models.MonthData{
		BudgetingList: []models.BudgetItem{
			{ID: "1", Name: "Sewa", Allocation: 1500000, Category: "Rumah"},
			{ID: "2", Name: "Zakat", Allocation: 125000, Category: "Zakat"},
		},
	}))
	require.NoError(t, store.SaveMonthData(ctx, "2025-02", &models.MonthData{
		BudgetingList: []models.BudgetItem{
			{ID: "3", Name: "Listrik", Allocation: 300000, Category: "Rumah"},
		},
	}))

	require.NoError(t, store.RenameCategory(ctx, "Rumah", "Hunian"))

	categories := store.LoadSettings(ctx).Categories
	assert.Contains(t, categories, "Hunian")
	assert.NotContains(t, categories, "Rumah")

	jan := store.LoadMonthData(ctx, "2025-01")
	assert.Equal(t, "Hunian", jan.BudgetingList[0].Category)
	assert.Equal(t, "Zakat", jan.BudgetingList[1].Category)

	feb := store.LoadMonthData(ctx, "2025-02")
	assert.Equal(t, "Hunian", feb.BudgetingList[0].Category)
}

func TestRenameCategory_Unknown(t *testing.T) {
	store := NewStore(newMemoryKV(), "budi")
	ctx := context.Background()

	require.NoError(t, store.SaveSettings(ctx, DefaultSettings(time.Now())))
	assert.ErrorIs(t, store.RenameCategory(ctx, "Tidak Ada", "Baru"), ErrCategoryNotFound)
}

func TestDeleteCategory_LeavesOrphanedReferences(t *testing.T) {
	store := NewStore(newMemoryKV(), "budi")
	ctx := context.Background()

	require.NoError(t, store.SaveSettings(ctx, DefaultSettings(time.Now())))
	require.NoError(t, store.SaveMonthData(ctx, "2025-01", &models.MonthData{
		BudgetingList: []models.BudgetItem{
			{ID: "1", Name: "Sewa", Allocation: 1500000, Category: "Rumah"},
		},
	}))

	require.NoError(t, store.DeleteCategory(ctx, "Rumah"))
	assert.NotContains(t, store.LoadSettings(ctx).Categories, "Rumah")

	// The budget item keeps the deleted category name.
	jan := store.LoadMonthData(ctx, "2025-01")
	assert.Equal(t, "Rumah", jan.BudgetingList[0].Category)
}

func TestDeleteCategory_Unknown(t *testing.T) {
	store := NewStore(newMemoryKV(), "budi")
	ctx := context.Background()

	require.NoError(t, store.SaveSettings(ctx, DefaultSettings(time.Now())))
	assert.ErrorIs(t, store.DeleteCategory(ctx, "Tidak Ada"), ErrCategoryNotFound)
}
