package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/ndhoang/moneymind/internal/common"
	"github.com/ndhoang/moneymind/internal/model"
)

// ListUserMappings returns a user's learned mappings, most recently
// used and most used first. The learning matcher scans them in this
// order and takes the first substring hit.
func (s *SQLiteStorage) ListUserMappings(ctx context.Context, userID int64) ([]model.UserCategoryMapping, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateID(userID, "userID"); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, user_id, description_pattern, category_id, confidence, use_count, last_used_at
		FROM user_category_mappings
		WHERE user_id = ?
		ORDER BY last_used_at DESC, use_count DESC
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query user mappings: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var mappings []model.UserCategoryMapping
	for rows.Next() {
		var m model.UserCategoryMapping
		err := rows.Scan(
			&m.ID, &m.UserID, &m.DescriptionPattern, &m.CategoryID,
			&m.Confidence, &m.UseCount, &m.LastUsedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan user mapping: %w", err)
		}
		mappings = append(mappings, m)
	}

	return mappings, rows.Err()
}

// GetUserMappingByPattern returns the mapping for an exact
// (user, pattern) pair, or common.ErrNotFound.
func (s *SQLiteStorage) GetUserMappingByPattern(ctx context.Context, userID int64, pattern string) (*model.UserCategoryMapping, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateID(userID, "userID"); err != nil {
		return nil, err
	}
	if err := validateString(pattern, "pattern"); err != nil {
		return nil, err
	}

	var m model.UserCategoryMapping
	err := s.db.QueryRowContext(ctx, `
		SELECT id, user_id, description_pattern, category_id, confidence, use_count, last_used_at
		FROM user_category_mappings
		WHERE user_id = ? AND description_pattern = ?
	`, userID, pattern).Scan(
		&m.ID, &m.UserID, &m.DescriptionPattern, &m.CategoryID,
		&m.Confidence, &m.UseCount, &m.LastUsedAt,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, common.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query user mapping: %w", err)
	}

	return &m, nil
}

// UpsertUserMapping creates or replaces a mapping. The unique index on
// (user_id, description_pattern) guarantees at most one row per pair,
// so two racing corrections resolve to last-write-wins instead of a
// duplicate.
func (s *SQLiteStorage) UpsertUserMapping(ctx context.Context, mapping *model.UserCategoryMapping) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if mapping == nil {
		return fmt.Errorf("%w: mapping", ErrNilParameter)
	}
	if err := mapping.Validate(); err != nil {
		return fmt.Errorf("invalid user mapping: %w", err)
	}

	if mapping.LastUsedAt.IsZero() {
		mapping.LastUsedAt = time.Now()
	}

	result, err := s.db.ExecContext(ctx, `
		INSERT INTO user_category_mappings
			(user_id, description_pattern, category_id, confidence, use_count, last_used_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(user_id, description_pattern) DO UPDATE SET
			category_id = excluded.category_id,
			confidence = excluded.confidence,
			use_count = excluded.use_count,
			last_used_at = excluded.last_used_at
	`, mapping.UserID, mapping.DescriptionPattern, mapping.CategoryID,
		mapping.Confidence, mapping.UseCount, mapping.LastUsedAt)
	if err != nil {
		return fmt.Errorf("failed to upsert user mapping: %w", err)
	}

	if mapping.ID == 0 {
		id, err := result.LastInsertId()
		if err != nil {
			return fmt.Errorf("failed to get last insert id: %w", err)
		}
		mapping.ID = id
	}

	return nil
}

// TouchUserMapping refreshes a mapping's last-used timestamp and bumps
// its use count.
func (s *SQLiteStorage) TouchUserMapping(ctx context.Context, id int64) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateID(id, "id"); err != nil {
		return err
	}

	result, err := s.db.ExecContext(ctx, `
		UPDATE user_category_mappings
		SET use_count = use_count + 1, last_used_at = CURRENT_TIMESTAMP
		WHERE id = ?
	`, id)
	if err != nil {
		return fmt.Errorf("failed to touch user mapping: %w", err)
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
