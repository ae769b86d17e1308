package categorize

import (
	"log/slog"
	"regexp"

	"github.com/ndhoang/moneymind/internal/model"
)

// cachedRule is a merchant rule prepared for matching: its pattern is
// pre-normalized and, for regex rules, pre-compiled.
type cachedRule struct {
	re      *regexp.Regexp
	pattern string
	rule    model.MerchantCategoryRule
}

// cachedKeyword is a keyword with its normalized form.
type cachedKeyword struct {
	keyword model.CategoryKeyword
	text    string
}

// snapshot is an immutable view of the merchant rules and keywords the
// matchers scan. A snapshot is built once and published atomically;
// readers never mutate it.
type snapshot struct {
	rules    []cachedRule
	keywords []cachedKeyword
}

// buildSnapshot prepares rules and keywords for in-memory matching.
// A regex rule whose pattern fails to compile is kept but never
// matches; it is logged once here for administrative correction.
func buildSnapshot(rules []model.MerchantCategoryRule, keywords []model.CategoryKeyword, logger *slog.Logger) *snapshot {
	s := &snapshot{
		rules:    make([]cachedRule, 0, len(rules)),
		keywords: make([]cachedKeyword, 0, len(keywords)),
	}

	for _, rule := range rules {
		if !rule.IsActive {
			continue
		}

		cached := cachedRule{
			rule:    rule,
			pattern: Normalize(rule.MerchantPattern),
		}
		if rule.MatchType == model.MatchRegex {
			// Descriptions are lowercased before matching, so regex
			// rules compile case-insensitively. Accented literals in a
			// regex will not match the diacritic-stripped description;
			// regex rules should be written in plain ASCII.
			re, err := regexp.Compile("(?i)" + rule.MerchantPattern)
			if err != nil {
				logger.Warn("merchant rule has malformed regex, rule will never match",
					"rule_id", rule.ID, "pattern", rule.MerchantPattern, "error", err)
			}
			cached.re = re
		}
		s.rules = append(s.rules, cached)
	}

	for _, kw := range keywords {
		if !kw.IsActive {
			continue
		}
		s.keywords = append(s.keywords, cachedKeyword{
			keyword: kw,
			text:    Normalize(kw.Keyword),
		})
	}

	return s
}
