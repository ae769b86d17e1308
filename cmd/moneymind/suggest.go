package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ndhoang/moneymind/internal/cli"
)

func suggestCmd() *cobra.Command {
	var userID int64

	cmd := &cobra.Command{
		Use:   "suggest <description>",
		Short: "Suggest a category for a transaction description",
		Example: `  moneymind suggest "HIGHLANDS COFFEE PMH Q7"
  moneymind suggest --user 2 "GrabBike chuyến đi quận 1"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			store, err := openStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			categorizer := newCategorizer(store)
			if err := categorizer.LoadCache(ctx); err != nil {
				return fmt.Errorf("failed to load categorization cache: %w", err)
			}

			suggestion, err := categorizer.SuggestCategory(ctx, userID, args[0])
			if err != nil {
				return fmt.Errorf("failed to suggest category: %w", err)
			}

			if suggestion == nil {
				fmt.Println(cli.FormatSuggestion("", nil))
				return nil
			}

			name := categoryName(ctx, store, suggestion.CategoryID)
			fmt.Println(cli.FormatSuggestion(name, suggestion))
			return nil
		},
	}

	cmd.Flags().Int64Var(&userID, "user", 1, "user ID whose learned corrections apply")

	return cmd
}
