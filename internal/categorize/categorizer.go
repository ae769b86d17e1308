package categorize

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/ndhoang/moneymind/internal/common"
	"github.com/ndhoang/moneymind/internal/model"
)

// DefaultRegion scopes merchant rules when no region is configured.
const DefaultRegion = "VN"

// Categorizer suggests categories for transaction descriptions and
// learns from user corrections. It holds an atomically swappable
// snapshot of merchant rules and keywords; user mappings are always
// read through the store so fresh corrections take effect immediately.
type Categorizer struct {
	rules    MerchantRuleRepository
	keywords KeywordRepository
	mappings UserMappingRepository
	logger   *slog.Logger
	region   string
	cache    atomic.Pointer[snapshot]
}

// Ensure Categorizer implements the Suggester interface.
var _ Suggester = (*Categorizer)(nil)

// Option configures a Categorizer.
type Option func(*Categorizer)

// WithRegion scopes merchant rule lookups to a region code (e.g. "VN").
func WithRegion(region string) Option {
	return func(c *Categorizer) {
		c.region = region
	}
}

// WithLogger sets the logger used for swallowed telemetry failures.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Categorizer) {
		c.logger = logger
	}
}

// New creates a Categorizer wired to the three stores. Call LoadCache
// before serving traffic; until then every suggestion falls back to
// per-call store queries.
func New(rules MerchantRuleRepository, keywords KeywordRepository, mappings UserMappingRepository, opts ...Option) *Categorizer {
	c := &Categorizer{
		rules:    rules,
		keywords: keywords,
		mappings: mappings,
		region:   DefaultRegion,
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// LoadCache bulk-fetches active merchant rules and keywords and
// publishes them as a fresh in-memory snapshot. It is safe to call
// again to refresh: the new snapshot replaces the old one atomically,
// and a failed load leaves the previous snapshot untouched.
func (c *Categorizer) LoadCache(ctx context.Context) error {
	rules, err := c.rules.ListActiveMerchantRules(ctx, c.region)
	if err != nil {
		return fmt.Errorf("failed to load merchant rules: %w", err)
	}

	keywords, err := c.keywords.ListActiveKeywords(ctx)
	if err != nil {
		return fmt.Errorf("failed to load keywords: %w", err)
	}

	snap := buildSnapshot(rules, keywords, c.logger)
	c.cache.Store(snap)

	c.logger.Debug("categorization cache loaded",
		"region", c.region, "rules", len(snap.rules), "keywords", len(snap.keywords))
	return nil
}

// SuggestCategory normalizes the description once and evaluates the
// three strategies strictly in priority order, returning on the first
// match:
//
//  1. user learning (confidence 95, always wins when present)
//  2. merchant rules (confidence up to 100)
//  3. keywords (confidence 70-85)
//
// A nil suggestion with a nil error means no strategy matched.
func (c *Categorizer) SuggestCategory(ctx context.Context, userID int64, description string) (*model.CategorySuggestion, error) {
	normalized := Normalize(description)
	if normalized == "" {
		return nil, nil
	}

	if suggestion := c.matchUserLearning(ctx, userID, normalized); suggestion != nil {
		return suggestion, nil
	}

	snap := c.cache.Load()
	if snap == nil {
		// Cold path: no snapshot published yet, query the stores
		// directly for this call.
		snap = c.loadUncached(ctx)
	}

	if suggestion, rule := matchMerchant(normalized, snap.rules); suggestion != nil {
		c.bumpRuleUsage(ctx, rule.ID)
		return suggestion, nil
	}

	return matchKeywords(normalized, snap.keywords), nil
}

// loadUncached builds a throwaway snapshot from direct store queries.
// A store failure here degrades that strategy to "found nothing"
// rather than failing the whole call.
func (c *Categorizer) loadUncached(ctx context.Context) *snapshot {
	rules, err := c.rules.ListActiveMerchantRules(ctx, c.region)
	if err != nil {
		c.logger.Warn("uncached merchant rule lookup failed", "region", c.region, "error", err)
		rules = nil
	}

	keywords, err := c.keywords.ListActiveKeywords(ctx)
	if err != nil {
		c.logger.Warn("uncached keyword lookup failed", "error", err)
		keywords = nil
	}

	return buildSnapshot(rules, keywords, c.logger)
}

// LearnFromCorrection persists a user's manual recategorization. A
// correction for a pattern the user already has updates the existing
// mapping in place (new category, use count incremented, last-used
// refreshed); otherwise a new mapping is created. Unlike the
// fire-and-forget usage bumps, a failure here propagates: silently
// losing a correction would degrade future suggestions with no signal.
func (c *Categorizer) LearnFromCorrection(ctx context.Context, userID int64, description string, categoryID int64) error {
	normalized := Normalize(description)
	if normalized == "" {
		return fmt.Errorf("description is empty after normalization")
	}

	existing, err := c.mappings.GetUserMappingByPattern(ctx, userID, normalized)
	switch {
	case err == nil:
		existing.CategoryID = categoryID
		existing.Confidence = model.UserMappingConfidence
		existing.UseCount++
		existing.LastUsedAt = time.Now()
		if err := c.mappings.UpsertUserMapping(ctx, existing); err != nil {
			return fmt.Errorf("failed to update user mapping: %w", err)
		}
	case errors.Is(err, common.ErrNotFound):
		mapping := &model.UserCategoryMapping{
			UserID:             userID,
			DescriptionPattern: normalized,
			CategoryID:         categoryID,
			Confidence:         model.UserMappingConfidence,
			UseCount:           1,
			LastUsedAt:         time.Now(),
		}
		if err := c.mappings.UpsertUserMapping(ctx, mapping); err != nil {
			return fmt.Errorf("failed to create user mapping: %w", err)
		}
	default:
		return fmt.Errorf("failed to look up user mapping: %w", err)
	}

	return nil
}

// bumpRuleUsage records a merchant rule hit without blocking the
// caller. Usage counts are telemetry, not correctness-critical state;
// failures are logged and dropped.
func (c *Categorizer) bumpRuleUsage(ctx context.Context, id int64) {
	ctx = context.WithoutCancel(ctx)
	go func() {
		if err := c.rules.IncrementRuleUseCount(ctx, id); err != nil {
			c.logger.Warn("failed to record rule usage", "rule_id", id, "error", err)
		}
	}()
}
