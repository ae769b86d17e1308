package categorize

import (
	"fmt"
	"strings"

	"github.com/ndhoang/moneymind/internal/model"
)

// matchMerchant scans rules in the order supplied and returns a
// suggestion for the first one whose pattern matches the normalized
// description, or nil if none do.
func matchMerchant(description string, rules []cachedRule) (*model.CategorySuggestion, *model.MerchantCategoryRule) {
	for i := range rules {
		if !ruleMatches(description, &rules[i]) {
			continue
		}

		rule := rules[i].rule
		return &model.CategorySuggestion{
			CategoryID: rule.CategoryID,
			Confidence: rule.Confidence,
			Reason:     fmt.Sprintf("Merchant: %s", rule.MerchantPattern),
		}, &rules[i].rule
	}

	return nil, nil
}

func ruleMatches(description string, rule *cachedRule) bool {
	switch rule.rule.MatchType {
	case model.MatchExact:
		return description == rule.pattern
	case model.MatchPrefix:
		return strings.HasPrefix(description, rule.pattern)
	case model.MatchSuffix:
		return strings.HasSuffix(description, rule.pattern)
	case model.MatchContains:
		return strings.Contains(description, rule.pattern)
	case model.MatchRegex:
		// A malformed regex compiles to nil and never matches.
		return rule.re != nil && rule.re.MatchString(description)
	}
	return false
}
