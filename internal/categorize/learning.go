package categorize

import (
	"context"
	"strings"

	"github.com/ndhoang/moneymind/internal/model"
)

// matchUserLearning replays the user's past corrections. Mappings are
// scanned in store order (most recently used first) and the first one
// whose pattern is a substring of the normalized description wins.
// Learned mappings always report UserMappingConfidence regardless of
// the stored confidence field: a user's explicit correction is ground
// truth for that user and must outrank even a 100-confidence merchant
// rule.
func (c *Categorizer) matchUserLearning(ctx context.Context, userID int64, description string) *model.CategorySuggestion {
	mappings, err := c.mappings.ListUserMappings(ctx, userID)
	if err != nil {
		// A mapping-store outage degrades to "no user history" so the
		// remaining strategies can still produce a suggestion.
		c.logger.Warn("failed to load user mappings", "user_id", userID, "error", err)
		return nil
	}

	for i := range mappings {
		if mappings[i].DescriptionPattern == "" {
			continue
		}
		if !strings.Contains(description, mappings[i].DescriptionPattern) {
			continue
		}

		c.touchMapping(ctx, mappings[i].ID)

		return &model.CategorySuggestion{
			CategoryID: mappings[i].CategoryID,
			Confidence: model.UserMappingConfidence,
			Reason:     "User history",
		}
	}

	return nil
}

// touchMapping refreshes a mapping's usage telemetry without blocking
// the caller. Failures are logged and dropped.
func (c *Categorizer) touchMapping(ctx context.Context, id int64) {
	ctx = context.WithoutCancel(ctx)
	go func() {
		if err := c.mappings.TouchUserMapping(ctx, id); err != nil {
			c.logger.Warn("failed to record mapping usage", "mapping_id", id, "error", err)
		}
	}()
}
