package storage

import (
	"context"
	"testing"

	"github.com/ndhoang/moneymind/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testKeyword(keyword string, language model.Language, confidence int) *model.CategoryKeyword {
	return &model.CategoryKeyword{
		CategoryID: 1,
		Keyword:    keyword,
		Language:   language,
		Confidence: confidence,
		IsActive:   true,
	}
}

func TestCreateAndListKeywords(t *testing.T) {
	store := newTestStorage(t)
	ctx := context.Background()

	require.NoError(t, store.CreateKeyword(ctx, testKeyword("coffee", model.LanguageEnglish, 80)))
	require.NoError(t, store.CreateKeyword(ctx, testKeyword("cà phê", model.LanguageVietnamese, 85)))

	keywords, err := store.ListActiveKeywords(ctx)
	require.NoError(t, err)
	require.Len(t, keywords, 2)

	// Highest confidence first.
	assert.Equal(t, "cà phê", keywords[0].Keyword)
	assert.Equal(t, model.LanguageVietnamese, keywords[0].Language)
	assert.Equal(t, "coffee", keywords[1].Keyword)
}

func TestCreateKeywordUpsertsDuplicate(t *testing.T) {
	store := newTestStorage(t)
	ctx := context.Background()

	require.NoError(t, store.CreateKeyword(ctx, testKeyword("coffee", model.LanguageEnglish, 80)))
	require.NoError(t, store.CreateKeyword(ctx, testKeyword("coffee", model.LanguageEnglish, 82)))

	keywords, err := store.ListActiveKeywords(ctx)
	require.NoError(t, err)
	require.Len(t, keywords, 1)
	assert.Equal(t, 82, keywords[0].Confidence)
}

func TestListActiveKeywordsExcludesInactive(t *testing.T) {
	store := newTestStorage(t)
	ctx := context.Background()

	inactive := testKeyword("legacy", model.LanguageEnglish, 70)
	inactive.IsActive = false
	require.NoError(t, store.CreateKeyword(ctx, inactive))

	keywords, err := store.ListActiveKeywords(ctx)
	require.NoError(t, err)
	assert.Empty(t, keywords)
}
