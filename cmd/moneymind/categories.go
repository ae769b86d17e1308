package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ndhoang/moneymind/internal/cli"
	"github.com/ndhoang/moneymind/internal/model"
)

func categoriesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "categories",
		Short: "Manage spending and income categories",
	}

	cmd.AddCommand(categoriesListCmd())
	cmd.AddCommand(categoriesAddCmd())

	return cmd
}

func categoriesListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List active categories",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, err := openStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			categories, err := store.GetCategories(ctx)
			if err != nil {
				return fmt.Errorf("failed to list categories: %w", err)
			}

			fmt.Println(cli.FormatTitle("Categories"))
			if len(categories) == 0 {
				fmt.Println(cli.SubtleStyle.Render("No categories. Run 'moneymind seed' to install the starter set."))
				return nil
			}

			for _, cat := range categories {
				fmt.Printf("  %4d  %-25s %s\n", cat.ID, cat.Name, cli.SubtleStyle.Render(string(cat.Type)))
			}
			return nil
		},
	}
}

func categoriesAddCmd() *cobra.Command {
	var categoryType string

	cmd := &cobra.Command{
		Use:     "add <name>",
		Short:   "Add a category",
		Example: `  moneymind categories add --type expense "Pets"`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			ct := model.CategoryType(categoryType)
			switch ct {
			case model.CategoryTypeIncome, model.CategoryTypeExpense, model.CategoryTypeSystem:
			default:
				return fmt.Errorf("invalid category type %q (income, expense, system)", categoryType)
			}

			store, err := openStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			cat, err := store.CreateCategory(ctx, args[0], ct)
			if err != nil {
				return fmt.Errorf("failed to create category: %w", err)
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Category #%d: %s (%s)", cat.ID, cat.Name, cat.Type)))
			return nil
		},
	}

	cmd.Flags().StringVar(&categoryType, "type", "expense", "category type (income, expense, system)")

	return cmd
}
