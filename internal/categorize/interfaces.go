// Package categorize decides which category a transaction description
// most likely belongs to. It layers three strategies in strict priority
// order: the user's own learned corrections, curated merchant rules,
// and generic language-tagged keywords.
package categorize

import (
	"context"

	"github.com/ndhoang/moneymind/internal/model"
)

// MerchantRuleRepository provides access to curated merchant rules.
type MerchantRuleRepository interface {
	// ListActiveMerchantRules returns all active rules for a region,
	// most confident and most used first.
	ListActiveMerchantRules(ctx context.Context, region string) ([]model.MerchantCategoryRule, error)
	// IncrementRuleUseCount bumps a rule's usage counter.
	IncrementRuleUseCount(ctx context.Context, id int64) error
}

// KeywordRepository provides access to category keywords.
type KeywordRepository interface {
	// ListActiveKeywords returns all active keywords across languages.
	ListActiveKeywords(ctx context.Context) ([]model.CategoryKeyword, error)
}

// UserMappingRepository provides access to per-user learned mappings.
type UserMappingRepository interface {
	// ListUserMappings returns a user's mappings, most recently used first.
	ListUserMappings(ctx context.Context, userID int64) ([]model.UserCategoryMapping, error)
	// GetUserMappingByPattern returns the mapping for an exact
	// (user, pattern) pair, or common.ErrNotFound.
	GetUserMappingByPattern(ctx context.Context, userID int64, pattern string) (*model.UserCategoryMapping, error)
	// UpsertUserMapping creates or replaces a mapping.
	UpsertUserMapping(ctx context.Context, mapping *model.UserCategoryMapping) error
	// TouchUserMapping refreshes a mapping's last-used timestamp and use count.
	TouchUserMapping(ctx context.Context, id int64) error
}

// Suggester is the surface the engine exposes to callers.
type Suggester interface {
	// SuggestCategory returns the best suggestion for a description, or
	// nil when no strategy matches.
	SuggestCategory(ctx context.Context, userID int64, description string) (*model.CategorySuggestion, error)
	// LearnFromCorrection records a user's manual recategorization so
	// future suggestions for similar descriptions follow it.
	LearnFromCorrection(ctx context.Context, userID int64, description string, categoryID int64) error
}
