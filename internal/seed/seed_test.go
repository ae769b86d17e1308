package seed

import (
	"context"
	"testing"

	"github.com/ndhoang/moneymind/internal/categorize"
	"github.com/ndhoang/moneymind/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSeededStore(t *testing.T) *storage.SQLiteStorage {
	t.Helper()

	store, err := storage.NewSQLiteStorage(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	ctx := context.Background()
	require.NoError(t, store.Migrate(ctx))
	require.NoError(t, Apply(ctx, store, "VN", nil))

	return store
}

func TestApplyIsIdempotent(t *testing.T) {
	store := newSeededStore(t)
	ctx := context.Background()

	require.NoError(t, Apply(ctx, store, "VN", nil))

	rules, err := store.ListActiveMerchantRules(ctx, "VN")
	require.NoError(t, err)
	assert.Len(t, rules, len(MerchantRules))

	keywords, err := store.ListActiveKeywords(ctx)
	require.NoError(t, err)
	assert.Len(t, keywords, len(Keywords))
}

func TestApplyReportsProgress(t *testing.T) {
	store, err := storage.NewSQLiteStorage(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	ctx := context.Background()
	require.NoError(t, store.Migrate(ctx))

	var ticks int
	require.NoError(t, Apply(ctx, store, "VN", func() { ticks++ }))
	assert.Equal(t, Total(), ticks)
}

func TestSeededDataCategorizes(t *testing.T) {
	store := newSeededStore(t)
	ctx := context.Background()

	c := categorize.New(store, store, store, categorize.WithRegion("VN"))
	require.NoError(t, c.LoadCache(ctx))

	tests := []struct {
		description  string
		wantCategory string
		wantReason   string
	}{
		{description: "HIGHLANDS COFFEE PMH", wantCategory: "Food & Drink", wantReason: "Merchant"},
		{description: "GrabBike chuyến đi quận 1", wantCategory: "Transport", wantReason: "Merchant"},
		{description: "thanh toán tiền điện tháng 8", wantCategory: "Utilities", wantReason: "Keyword"},
		{description: "mua cà phê sáng", wantCategory: "Food & Drink", wantReason: "Keyword"},
	}

	categories, err := store.GetCategories(ctx)
	require.NoError(t, err)
	names := make(map[int64]string, len(categories))
	for _, cat := range categories {
		names[cat.ID] = cat.Name
	}

	for _, tt := range tests {
		got, err := c.SuggestCategory(ctx, 1, tt.description)
		require.NoError(t, err, tt.description)
		require.NotNil(t, got, tt.description)
		assert.Equal(t, tt.wantCategory, names[got.CategoryID], tt.description)
		assert.Contains(t, got.Reason, tt.wantReason, tt.description)
	}
}
