package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/ndhoang/moneymind/internal/categorize"
	"github.com/ndhoang/moneymind/internal/common"
	"github.com/ndhoang/moneymind/internal/model"
	"github.com/ndhoang/moneymind/internal/storage"
)

// databasePath resolves the database location from config, falling
// back to the XDG data directory.
func databasePath() (string, error) {
	if path := viper.GetString("database.path"); path != "" {
		return path, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".local", "share", "moneymind", "moneymind.db"), nil
}

// openStorage opens the configured database and runs pending migrations.
func openStorage(ctx context.Context) (*storage.SQLiteStorage, error) {
	path, err := databasePath()
	if err != nil {
		return nil, err
	}

	store, err := storage.NewSQLiteStorage(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open storage: %w", err)
	}

	if err := store.Migrate(ctx); err != nil {
		_ = store.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return store, nil
}

// newCategorizer wires a Categorizer to the store for the configured region.
func newCategorizer(store *storage.SQLiteStorage) *categorize.Categorizer {
	return categorize.New(store, store, store,
		categorize.WithRegion(viper.GetString("categorization.region")))
}

// categoryName resolves a category ID to its display name, falling
// back to the raw ID when the category is unknown.
func categoryName(ctx context.Context, store *storage.SQLiteStorage, id int64) string {
	categories, err := store.GetCategories(ctx)
	if err != nil {
		return fmt.Sprintf("category #%d", id)
	}
	for _, cat := range categories {
		if cat.ID == id {
			return cat.Name
		}
	}
	return fmt.Sprintf("category #%d", id)
}

// resolveCategory accepts either a numeric ID or a category name.
func resolveCategory(ctx context.Context, store *storage.SQLiteStorage, arg string) (*model.Category, error) {
	categories, err := store.GetCategories(ctx)
	if err != nil {
		return nil, err
	}

	for _, cat := range categories {
		if cat.Name == arg || fmt.Sprintf("%d", cat.ID) == arg {
			found := cat
			return &found, nil
		}
	}
	return nil, common.NewUserError(
		fmt.Sprintf("unknown category %q (try 'moneymind categories list')", arg), common.ErrNotFound)
}
