package categorize

import (
	"fmt"
	"strings"

	"github.com/ndhoang/moneymind/internal/model"
)

// matchKeywords evaluates every keyword against the normalized
// description and keeps the single highest-confidence hit. Unlike
// merchant rules this is deliberately not first-match-wins: a
// description may contain several generic keywords ("coffee" and
// "shop") and the more confident one should win even if seen later.
// Ties go to the keyword seen first.
func matchKeywords(description string, keywords []cachedKeyword) *model.CategorySuggestion {
	var best *cachedKeyword

	for i := range keywords {
		if keywords[i].text == "" || !strings.Contains(description, keywords[i].text) {
			continue
		}
		if best == nil || keywords[i].keyword.Confidence > best.keyword.Confidence {
			best = &keywords[i]
		}
	}

	if best == nil {
		return nil
	}

	return &model.CategorySuggestion{
		CategoryID: best.keyword.CategoryID,
		Confidence: best.keyword.Confidence,
		Reason:     fmt.Sprintf("Keyword: %s", best.keyword.Keyword),
	}
}
