package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/ndhoang/moneymind/internal/common"
	"github.com/ndhoang/moneymind/internal/model"
)

// ListActiveMerchantRules returns all active rules for a region, most
// confident and most used first. This is the cache-load ordering the
// merchant matcher iterates in.
func (s *SQLiteStorage) ListActiveMerchantRules(ctx context.Context, region string) ([]model.MerchantCategoryRule, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(region, "region"); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, merchant_pattern, match_type, category_id, confidence,
			is_active, region, use_count, created_at, updated_at
		FROM merchant_category_rules
		WHERE region = ? AND is_active = 1
		ORDER BY confidence DESC, use_count DESC, id
	`, region)
	if err != nil {
		return nil, fmt.Errorf("failed to query merchant rules: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var rules []model.MerchantCategoryRule
	for rows.Next() {
		var rule model.MerchantCategoryRule
		err := rows.Scan(
			&rule.ID, &rule.MerchantPattern, &rule.MatchType, &rule.CategoryID,
			&rule.Confidence, &rule.IsActive, &rule.Region, &rule.UseCount,
			&rule.CreatedAt, &rule.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan merchant rule: %w", err)
		}
		rules = append(rules, rule)
	}

	return rules, rows.Err()
}

// IncrementRuleUseCount bumps a rule's usage counter.
func (s *SQLiteStorage) IncrementRuleUseCount(ctx context.Context, id int64) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateID(id, "id"); err != nil {
		return err
	}

	result, err := s.db.ExecContext(ctx, `
		UPDATE merchant_category_rules
		SET use_count = use_count + 1, updated_at = CURRENT_TIMESTAMP
		WHERE id = ?
	`, id)
	if err != nil {
		return fmt.Errorf("failed to increment rule use count: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if affected == 0 {
		return common.ErrNotFound
	}

	return nil
}

// CreateMerchantRule inserts a new merchant rule and sets its ID.
func (s *SQLiteStorage) CreateMerchantRule(ctx context.Context, rule *model.MerchantCategoryRule) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if rule == nil {
		return fmt.Errorf("%w: rule", ErrNilParameter)
	}
	if err := rule.Validate(); err != nil {
		return fmt.Errorf("invalid merchant rule: %w", err)
	}

	result, err := s.db.ExecContext(ctx, `
		INSERT INTO merchant_category_rules
			(merchant_pattern, match_type, category_id, confidence, is_active, region)
		VALUES (?, ?, ?, ?, ?, ?)
	`, rule.MerchantPattern, rule.MatchType, rule.CategoryID, rule.Confidence, rule.IsActive, rule.Region)
	if err != nil {
		return fmt.Errorf("failed to create merchant rule: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert id: %w", err)
	}

	rule.ID = id
	slog.Debug("created merchant rule", "id", id, "pattern", rule.MerchantPattern)
	return nil
}

// GetMerchantRule retrieves a rule by ID.
func (s *SQLiteStorage) GetMerchantRule(ctx context.Context, id int64) (*model.MerchantCategoryRule, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateID(id, "id"); err != nil {
		return nil, err
	}

	var rule model.MerchantCategoryRule
	err := s.db.QueryRowContext(ctx, `
		SELECT id, merchant_pattern, match_type, category_id, confidence,
			is_active, region, use_count, created_at, updated_at
		FROM merchant_category_rules
		WHERE id = ?
	`, id).Scan(
		&rule.ID, &rule.MerchantPattern, &rule.MatchType, &rule.CategoryID,
		&rule.Confidence, &rule.IsActive, &rule.Region, &rule.UseCount,
		&rule.CreatedAt, &rule.UpdatedAt,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, common.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query merchant rule: %w", err)
	}

	return &rule, nil
}

// SetMerchantRuleActive activates or deactivates a rule. Deactivated
// rules are excluded from matching but retained for audit.
func (s *SQLiteStorage) SetMerchantRuleActive(ctx context.Context, id int64, active bool) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateID(id, "id"); err != nil {
		return err
	}

	result, err := s.db.ExecContext(ctx, `
		UPDATE merchant_category_rules
		SET is_active = ?, updated_at = CURRENT_TIMESTAMP
		WHERE id = ?
	`, active, id)
	if err != nil {
		return fmt.Errorf("failed to update merchant rule: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if affected == 0 {
		return common.ErrNotFound
	}

	return nil
}
