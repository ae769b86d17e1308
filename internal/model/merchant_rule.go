// Package model defines the core data structures for the moneymind application.
package model

import (
	"fmt"
	"time"
)

// MatchType determines how a merchant pattern is compared against a
// transaction description.
type MatchType string

const (
	// MatchExact requires the description to equal the pattern.
	MatchExact MatchType = "exact"
	// MatchPrefix requires the description to start with the pattern.
	MatchPrefix MatchType = "prefix"
	// MatchSuffix requires the description to end with the pattern.
	MatchSuffix MatchType = "suffix"
	// MatchContains requires the description to contain the pattern.
	MatchContains MatchType = "contains"
	// MatchRegex treats the pattern as a regular expression.
	MatchRegex MatchType = "regex"
)

// Valid reports whether the match type is one of the known values.
func (m MatchType) Valid() bool {
	switch m {
	case MatchExact, MatchPrefix, MatchSuffix, MatchContains, MatchRegex:
		return true
	}
	return false
}

// MerchantCategoryRule is a curated, region-scoped mapping from a
// merchant pattern to a category. Rules are maintained by
// administrators and read-only to the categorization engine.
type MerchantCategoryRule struct {
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
	MerchantPattern string    `json:"merchant_pattern"`
	MatchType       MatchType `json:"match_type"`
	Region          string    `json:"region"`
	ID              int64     `json:"id"`
	CategoryID      int64     `json:"category_id"`
	Confidence      int       `json:"confidence"`
	UseCount        int       `json:"use_count"`
	IsActive        bool      `json:"is_active"`
}

// Validate ensures the rule has usable data.
func (r *MerchantCategoryRule) Validate() error {
	if r.MerchantPattern == "" {
		return fmt.Errorf("merchant pattern is required")
	}
	if !r.MatchType.Valid() {
		return fmt.Errorf("invalid match type: %s", r.MatchType)
	}
	if r.CategoryID <= 0 {
		return fmt.Errorf("category id is required")
	}
	if r.Confidence < 0 || r.Confidence > 100 {
		return fmt.Errorf("confidence must be between 0 and 100")
	}
	if r.Region == "" {
		return fmt.Errorf("region is required")
	}
	return nil
}
