package cli

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunMonth_Set(t *testing.T) {
	ctx := context.Background()
	c, fio := newTestCli(t)

	require.NoError(t, c.runMonth(ctx, []string{"set", "March", "2025"}))
	assert.Contains(t, fio.output(), "2025-03")

	uc, err := c.requireUser(ctx)
	require.NoError(t, err)
	assert.Equal(t, "March", uc.settings.CurrentMonth)
	assert.Equal(t, 2025, uc.settings.CurrentYear)
	assert.Equal(t, "2025-03", uc.monthKey)
}

func TestRunMonth_SetKeepsYearWhenOmitted(t *testing.T) {
	ctx := context.Background()
	c, _ := newTestCli(t)

	require.NoError(t, c.runMonth(ctx, []string{"set", "December", "2024"}))
	require.NoError(t, c.runMonth(ctx, []string{"set", "July"}))

	uc, err := c.requireUser(ctx)
	require.NoError(t, err)
	assert.Equal(t, "2024-07", uc.monthKey)
}

func TestRunMonth_SetRejectsUnknownMonth(t *testing.T) {
	ctx := context.Background()
	c, _ := newTestCli(t)

	err := c.runMonth(ctx, []string{"set", "Maret"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown month")
}

func TestRunMonth_CopyPrev(t *testing.T) {
	ctx := context.Background()
	c, _ := newTestCli(t)

	require.NoError(t, c.runMonth(ctx, []string{"set", "March", "2025"}))
	require.NoError(t, c.runBudget(ctx, []string{"add", "Sewa", "1500000"}))

	require.NoError(t, c.runMonth(ctx, []string{"set", "April", "2025"}))
	require.NoError(t, c.runMonth(ctx, []string{"copy-prev"}))

	uc, err := c.requireUser(ctx)
	require.NoError(t, err)
	list := uc.store.LoadMonthData(ctx, "2025-04").BudgetingList
	require.Len(t, list, 1)
	assert.Equal(t, "Sewa", list[0].Name)
	assert.Zero(t, list[0].Realization)
}

func TestRunMonth_CopyPrevEmptyPrevious(t *testing.T) {
	ctx := context.Background()
	c, _ := newTestCli(t)

	require.NoError(t, c.runMonth(ctx, []string{"set", "April", "2025"}))
	err := c.runMonth(ctx, []string{"copy-prev"})
	require.Error(t, err)
	assert.Equal(t, "Previous month has no data to copy", err.Error())
}
