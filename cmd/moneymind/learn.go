package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ndhoang/moneymind/internal/cli"
)

func learnCmd() *cobra.Command {
	var (
		userID   int64
		category string
	)

	cmd := &cobra.Command{
		Use:   "learn <description>",
		Short: "Record a manual categorization so future suggestions follow it",
		Long: `Learn records that a transaction description belongs to a category.
The normalized description becomes a per-user pattern that outranks
merchant rules and keywords on later suggestions.`,
		Example: `  moneymind learn --category "Food & Drink" "Trà sữa Gong Cha"
  moneymind learn --user 2 --category 5 "CLB cầu lông quận 7"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			store, err := openStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			cat, err := resolveCategory(ctx, store, category)
			if err != nil {
				return err
			}

			categorizer := newCategorizer(store)
			if err := categorizer.LearnFromCorrection(ctx, userID, args[0], cat.ID); err != nil {
				return fmt.Errorf("failed to learn correction: %w", err)
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Learned: %q → %s", args[0], cat.Name)))
			return nil
		},
	}

	cmd.Flags().Int64Var(&userID, "user", 1, "user ID to learn the correction for")
	cmd.Flags().StringVar(&category, "category", "", "target category name or ID (required)")
	_ = cmd.MarkFlagRequired("category")

	return cmd
}
