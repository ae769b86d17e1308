package storage

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ndhoang/moneymind/internal/model"
)

// ListActiveKeywords returns all active keywords across languages,
// highest confidence first.
func (s *SQLiteStorage) ListActiveKeywords(ctx context.Context) ([]model.CategoryKeyword, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, category_id, keyword, language, confidence, is_active
		FROM category_keywords
		WHERE is_active = 1
		ORDER BY confidence DESC, id
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query keywords: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var keywords []model.CategoryKeyword
	for rows.Next() {
		var kw model.CategoryKeyword
		err := rows.Scan(
			&kw.ID, &kw.CategoryID, &kw.Keyword, &kw.Language,
			&kw.Confidence, &kw.IsActive,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan keyword: %w", err)
		}
		keywords = append(keywords, kw)
	}

	return keywords, rows.Err()
}

// CreateKeyword inserts a new keyword and sets its ID. Inserting the
// same (category, keyword, language) triple again is a no-op.
func (s *SQLiteStorage) CreateKeyword(ctx context.Context, kw *model.CategoryKeyword) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if kw == nil {
		return fmt.Errorf("%w: keyword", ErrNilParameter)
	}
	if err := kw.Validate(); err != nil {
		return fmt.Errorf("invalid keyword: %w", err)
	}

	result, err := s.db.ExecContext(ctx, `
		INSERT INTO category_keywords (category_id, keyword, language, confidence, is_active)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(category_id, keyword, language) DO UPDATE SET
			confidence = excluded.confidence,
			is_active = excluded.is_active
	`, kw.CategoryID, kw.Keyword, kw.Language, kw.Confidence, kw.IsActive)
	if err != nil {
		return fmt.Errorf("failed to create keyword: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert id: %w", err)
	}

	kw.ID = id
	slog.Debug("created keyword", "id", id, "keyword", kw.Keyword, "language", kw.Language)
	return nil
}
