package budget

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jankerzone/tagihan-serampangan-v2/internal/models"
)

func TestAddIncome(t *testing.T) {
	store := NewStore(newMemoryKV(), "budi")
	ctx := context.Background()

	income, err := store.AddIncome(ctx, "2025-09", "Gaji", 5000000)
	require.NoError(t, err)
	assert.NotEmpty(t, income.ID)

	month := store.LoadMonthData(ctx, "2025-09")
	require.Len(t, month.IncomeSources, 1)
	assert.Equal(t, "Gaji", month.IncomeSources[0].Name)
	assert.Equal(t, int64(5000000), month.IncomeSources[0].Amount)
}

func TestNewMoneySaving(t *testing.T) {
	saving := NewMoneySaving("Dana darurat", 2500000)

	assert.Equal(t, models.SavingTypeMoney, saving.Type)
	assert.Equal(t, 2500000.0, saving.Amount)
	assert.Zero(t, saving.Quantity)
	assert.Empty(t, saving.Unit)
}

func TestNewAssetSaving_AmountComputedOnce(t *testing.T) {
	saving := NewAssetSaving("Emas Antam", models.SavingTypeGold, 2.5, 1000000, "", "", "en")

	assert.Equal(t, 2500000.0, saving.Amount)
	assert.Equal(t, 2.5, saving.Quantity)
	assert.Equal(t, 1000000.0, saving.PricePerUnit)
	assert.Equal(t, "gram", saving.Unit)
}

func TestNewAssetSaving_UnitDefaults(t *testing.T) {
	stock := NewAssetSaving("BBCA", models.SavingTypeStock, 100, 9000, "", "BBCA", "id")
	assert.Equal(t, "lembar", stock.Unit)

	crypto := NewAssetSaving("Bitcoin", models.SavingTypeCrypto, 0.01, 150000000, "", "BTC", "en")
	assert.Equal(t, "BTC", crypto.Unit)

	explicit := NewAssetSaving("Emas", models.SavingTypeGold, 1, 1000000, "oz", "", "en")
	assert.Equal(t, "oz", explicit.Unit)
}

func TestDeleteItems(t *testing.T) {
	store := NewStore(newMemoryKV(), "budi")
	ctx := context.Background()

	income, err := store.AddIncome(ctx, "2025-09", "Gaji", 100)
	require.NoError(t, err)
	require.NoError(t, store.AddSaving(ctx, "2025-09", NewMoneySaving("Kas", 50)))
	item, err := store.AddBudgetItem(ctx, "2025-09", "Sewa", 1500, "Rumah")
	require.NoError(t, err)

	require.NoError(t, store.DeleteIncome(ctx, "2025-09", income.ID))
	require.NoError(t, store.DeleteBudgetItem(ctx, "2025-09", item.ID))

	month := store.LoadMonthData(ctx, "2025-09")
	assert.Empty(t, month.IncomeSources)
	assert.Empty(t, month.BudgetingList)
	assert.Len(t, month.SavingList, 1)

	// Unknown ids are ignored.
	require.NoError(t, store.DeleteSaving(ctx, "2025-09", "no-such-id"))
	assert.Len(t, store.LoadMonthData(ctx, "2025-09").SavingList, 1)
}

func TestSetRealizationAndCategory(t *testing.T) {
	store := NewStore(newMemoryKV(), "budi")
	ctx := context.Background()

	item, err := store.AddBudgetItem(ctx, "2025-09", "Sewa", 1500000, "Rumah")
	require.NoError(t, err)

	require.NoError(t, store.SetRealization(ctx, "2025-09", item.ID, 1600000))
	require.NoError(t, store.SetItemCategory(ctx, "2025-09", item.ID, "Lainnya"))

	month := store.LoadMonthData(ctx, "2025-09")
	require.Len(t, month.BudgetingList, 1)
	// Realization may exceed allocation.
	assert.Equal(t, int64(1600000), month.BudgetingList[0].Realization)
	assert.Equal(t, "Lainnya", month.BudgetingList[0].Category)
}

func TestSetAllRealizations(t *testing.T) {
	store := NewStore(newMemoryKV(), "budi")
	ctx := context.Background()

	_, err := store.AddBudgetItem(ctx, "2025-09", "Sewa", 1000, "Rumah")
	require.NoError(t, err)
	_, err = store.AddBudgetItem(ctx, "2025-09", "Zakat", 100, "Zakat")
	require.NoError(t, err)

	require.NoError(t, store.SetAllRealizations(ctx, "2025-09", 50))

	month := store.LoadMonthData(ctx, "2025-09")
	assert.Equal(t, int64(500), month.BudgetingList[0].Realization)
	assert.Equal(t, int64(50), month.BudgetingList[1].Realization)
}

func TestAppendBudgetItems(t *testing.T) {
	store := NewStore(newMemoryKV(), "budi")
	ctx := context.Background()

	items, messages := ParseBudgetLines("Sewa\t1500000\nListrik\t300000", nil, "Lainnya", "en")
	require.Empty(t, messages)
	require.NoError(t, store.AppendBudgetItems(ctx, "2025-09", items))

	month := store.LoadMonthData(ctx, "2025-09")
	assert.Len(t, month.BudgetingList, 2)

	// Empty append is a no-op.
	require.NoError(t, store.AppendBudgetItems(ctx, "2025-09", nil))
	assert.Len(t, store.LoadMonthData(ctx, "2025-09").BudgetingList, 2)
}
