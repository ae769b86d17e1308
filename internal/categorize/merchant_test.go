package categorize

import (
	"log/slog"
	"testing"

	"github.com/ndhoang/moneymind/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRule(id int64, pattern string, matchType model.MatchType, categoryID int64, confidence int) model.MerchantCategoryRule {
	return model.MerchantCategoryRule{
		ID:              id,
		MerchantPattern: pattern,
		MatchType:       matchType,
		CategoryID:      categoryID,
		Confidence:      confidence,
		IsActive:        true,
		Region:          "VN",
	}
}

func TestMatchMerchant(t *testing.T) {
	tests := []struct {
		name           string
		description    string
		rules          []model.MerchantCategoryRule
		wantCategoryID int64
		wantConfidence int
		wantNone       bool
	}{
		{
			name:        "exact match",
			description: "highlands coffee",
			rules: []model.MerchantCategoryRule{
				newRule(1, "Highlands Coffee", model.MatchExact, 1, 100),
			},
			wantCategoryID: 1,
			wantConfidence: 100,
		},
		{
			name:        "exact does not match longer description",
			description: "highlands coffee phu my hung",
			rules: []model.MerchantCategoryRule{
				newRule(1, "Highlands Coffee", model.MatchExact, 1, 100),
			},
			wantNone: true,
		},
		{
			name:        "prefix match",
			description: "grab ride 4km",
			rules: []model.MerchantCategoryRule{
				newRule(1, "Grab", model.MatchPrefix, 2, 100),
			},
			wantCategoryID: 2,
			wantConfidence: 100,
		},
		{
			name:        "suffix match",
			description: "thanh toan vinmart",
			rules: []model.MerchantCategoryRule{
				newRule(1, "VinMart", model.MatchSuffix, 3, 100),
			},
			wantCategoryID: 3,
			wantConfidence: 100,
		},
		{
			name:        "contains match with location suffix",
			description: "highlands coffee phu my hung",
			rules: []model.MerchantCategoryRule{
				newRule(1, "Highlands Coffee", model.MatchContains, 1, 100),
			},
			wantCategoryID: 1,
			wantConfidence: 100,
		},
		{
			name:        "contains match is case and accent insensitive via normalization",
			description: Normalize("HIGHLANDS   COFFEE Phú Mỹ Hưng"),
			rules: []model.MerchantCategoryRule{
				newRule(1, "Highlands Coffee", model.MatchContains, 1, 100),
			},
			wantCategoryID: 1,
			wantConfidence: 100,
		},
		{
			name:        "regex match",
			description: "circle k #4521 district 1",
			rules: []model.MerchantCategoryRule{
				newRule(1, `circle k #\d+`, model.MatchRegex, 4, 90),
			},
			wantCategoryID: 4,
			wantConfidence: 90,
		},
		{
			name:        "malformed regex never matches and never aborts",
			description: "circle k #4521",
			rules: []model.MerchantCategoryRule{
				newRule(1, `circle k #[`, model.MatchRegex, 4, 90),
				newRule(2, "circle k", model.MatchContains, 5, 100),
			},
			wantCategoryID: 5,
			wantConfidence: 100,
		},
		{
			name:        "first matching rule wins",
			description: "highlands coffee",
			rules: []model.MerchantCategoryRule{
				newRule(1, "highlands", model.MatchContains, 7, 100),
				newRule(2, "coffee", model.MatchContains, 8, 100),
			},
			wantCategoryID: 7,
			wantConfidence: 100,
		},
		{
			name:        "no rules",
			description: "anything",
			wantNone:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			snap := buildSnapshot(tt.rules, nil, slog.Default())
			got, rule := matchMerchant(tt.description, snap.rules)

			if tt.wantNone {
				assert.Nil(t, got)
				assert.Nil(t, rule)
				return
			}

			require.NotNil(t, got)
			assert.Equal(t, tt.wantCategoryID, got.CategoryID)
			assert.Equal(t, tt.wantConfidence, got.Confidence)
			assert.Contains(t, got.Reason, "Merchant:")
			require.NotNil(t, rule)
		})
	}
}

func TestBuildSnapshotSkipsInactiveRules(t *testing.T) {
	inactive := newRule(1, "Highlands Coffee", model.MatchContains, 1, 100)
	inactive.IsActive = false

	snap := buildSnapshot([]model.MerchantCategoryRule{inactive}, nil, slog.Default())
	assert.Empty(t, snap.rules)
}
