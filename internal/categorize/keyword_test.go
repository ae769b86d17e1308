package categorize

import (
	"log/slog"
	"testing"

	"github.com/ndhoang/moneymind/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newKeyword(id int64, keyword string, language model.Language, categoryID int64, confidence int) model.CategoryKeyword {
	return model.CategoryKeyword{
		ID:         id,
		Keyword:    keyword,
		Language:   language,
		CategoryID: categoryID,
		Confidence: confidence,
		IsActive:   true,
	}
}

func TestMatchKeywords(t *testing.T) {
	tests := []struct {
		name           string
		description    string
		keywords       []model.CategoryKeyword
		wantCategoryID int64
		wantConfidence int
		wantReason     string
		wantNone       bool
	}{
		{
			name:        "single keyword hit",
			description: "morning coffee run",
			keywords: []model.CategoryKeyword{
				newKeyword(1, "coffee", model.LanguageEnglish, 10, 80),
			},
			wantCategoryID: 10,
			wantConfidence: 80,
			wantReason:     "Keyword: coffee",
		},
		{
			name:        "highest confidence wins over earlier lower hit",
			description: "coffee shop downtown",
			keywords: []model.CategoryKeyword{
				newKeyword(1, "shop", model.LanguageEnglish, 20, 70),
				newKeyword(2, "coffee", model.LanguageEnglish, 10, 80),
			},
			wantCategoryID: 10,
			wantConfidence: 80,
		},
		{
			name:        "highest confidence wins regardless of order",
			description: "coffee shop downtown",
			keywords: []model.CategoryKeyword{
				newKeyword(1, "coffee", model.LanguageEnglish, 10, 80),
				newKeyword(2, "shop", model.LanguageEnglish, 20, 70),
			},
			wantCategoryID: 10,
			wantConfidence: 80,
		},
		{
			name:        "vietnamese keyword outranks english on same text",
			description: Normalize("Mua cà phê sáng"),
			keywords: []model.CategoryKeyword{
				newKeyword(1, "coffee", model.LanguageEnglish, 10, 80),
				newKeyword(2, "cà phê", model.LanguageVietnamese, 10, 85),
			},
			wantCategoryID: 10,
			wantConfidence: 85,
			wantReason:     "Keyword: cà phê",
		},
		{
			name:        "tie goes to first seen",
			description: "bus ticket to the airport",
			keywords: []model.CategoryKeyword{
				newKeyword(1, "bus", model.LanguageEnglish, 30, 75),
				newKeyword(2, "airport", model.LanguageEnglish, 40, 75),
			},
			wantCategoryID: 30,
			wantConfidence: 75,
		},
		{
			name:        "no hits",
			description: "unrecognized payee",
			keywords: []model.CategoryKeyword{
				newKeyword(1, "coffee", model.LanguageEnglish, 10, 80),
			},
			wantNone: true,
		},
		{
			name:        "empty keyword list",
			description: "anything",
			wantNone:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			snap := buildSnapshot(nil, tt.keywords, slog.Default())
			got := matchKeywords(tt.description, snap.keywords)

			if tt.wantNone {
				assert.Nil(t, got)
				return
			}

			require.NotNil(t, got)
			assert.Equal(t, tt.wantCategoryID, got.CategoryID)
			assert.Equal(t, tt.wantConfidence, got.Confidence)
			if tt.wantReason != "" {
				assert.Equal(t, tt.wantReason, got.Reason)
			}
		})
	}
}

func TestBuildSnapshotSkipsInactiveKeywords(t *testing.T) {
	inactive := newKeyword(1, "coffee", model.LanguageEnglish, 10, 80)
	inactive.IsActive = false

	snap := buildSnapshot(nil, []model.CategoryKeyword{inactive}, slog.Default())
	assert.Empty(t, snap.keywords)
}
