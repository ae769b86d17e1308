package storage

import (
	"context"
	"errors"
	"testing"

	"github.com/ndhoang/moneymind/internal/common"
	"github.com/ndhoang/moneymind/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRule(pattern string, matchType model.MatchType, confidence int) *model.MerchantCategoryRule {
	return &model.MerchantCategoryRule{
		MerchantPattern: pattern,
		MatchType:       matchType,
		CategoryID:      1,
		Confidence:      confidence,
		IsActive:        true,
		Region:          "VN",
	}
}

func TestCreateAndListMerchantRules(t *testing.T) {
	store := newTestStorage(t)
	ctx := context.Background()

	low := testRule("circle k", model.MatchContains, 90)
	high := testRule("Highlands Coffee", model.MatchContains, 100)
	require.NoError(t, store.CreateMerchantRule(ctx, low))
	require.NoError(t, store.CreateMerchantRule(ctx, high))

	rules, err := store.ListActiveMerchantRules(ctx, "VN")
	require.NoError(t, err)
	require.Len(t, rules, 2)

	// Most confident first.
	assert.Equal(t, "Highlands Coffee", rules[0].MerchantPattern)
	assert.Equal(t, "circle k", rules[1].MerchantPattern)
}

func TestListActiveMerchantRulesFiltersRegionAndActive(t *testing.T) {
	store := newTestStorage(t)
	ctx := context.Background()

	vn := testRule("Highlands Coffee", model.MatchContains, 100)
	require.NoError(t, store.CreateMerchantRule(ctx, vn))

	us := testRule("Walmart", model.MatchContains, 100)
	us.Region = "US"
	require.NoError(t, store.CreateMerchantRule(ctx, us))

	inactive := testRule("Old Brand", model.MatchContains, 100)
	require.NoError(t, store.CreateMerchantRule(ctx, inactive))
	require.NoError(t, store.SetMerchantRuleActive(ctx, inactive.ID, false))

	rules, err := store.ListActiveMerchantRules(ctx, "VN")
	require.NoError(t, err)
	require.Len(t, rules, 1)
	assert.Equal(t, "Highlands Coffee", rules[0].MerchantPattern)

	// The deactivated rule is retained for audit, just not listed.
	got, err := store.GetMerchantRule(ctx, inactive.ID)
	require.NoError(t, err)
	assert.False(t, got.IsActive)
}

func TestIncrementRuleUseCount(t *testing.T) {
	store := newTestStorage(t)
	ctx := context.Background()

	rule := testRule("Highlands Coffee", model.MatchContains, 100)
	require.NoError(t, store.CreateMerchantRule(ctx, rule))

	require.NoError(t, store.IncrementRuleUseCount(ctx, rule.ID))
	require.NoError(t, store.IncrementRuleUseCount(ctx, rule.ID))

	got, err := store.GetMerchantRule(ctx, rule.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, got.UseCount)
}

func TestIncrementRuleUseCountNotFound(t *testing.T) {
	store := newTestStorage(t)

	err := store.IncrementRuleUseCount(context.Background(), 9999)
	assert.True(t, errors.Is(err, common.ErrNotFound))
}

func TestCreateMerchantRuleRejectsInvalid(t *testing.T) {
	store := newTestStorage(t)
	ctx := context.Background()

	bad := testRule("Highlands Coffee", "glob", 100)
	assert.Error(t, store.CreateMerchantRule(ctx, bad))

	bad = testRule("", model.MatchContains, 100)
	assert.Error(t, store.CreateMerchantRule(ctx, bad))

	bad = testRule("Highlands Coffee", model.MatchContains, 150)
	assert.Error(t, store.CreateMerchantRule(ctx, bad))
}
