package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ndhoang/moneymind/internal/cli"
	"github.com/ndhoang/moneymind/internal/model"
)

func keywordsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "keywords",
		Short: "Manage category keywords",
	}

	cmd.AddCommand(keywordsListCmd())
	cmd.AddCommand(keywordsAddCmd())

	return cmd
}

func keywordsListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List active keywords",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, err := openStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			keywords, err := store.ListActiveKeywords(ctx)
			if err != nil {
				return fmt.Errorf("failed to list keywords: %w", err)
			}

			fmt.Println(cli.FormatTitle("Keywords"))
			if len(keywords) == 0 {
				fmt.Println(cli.SubtleStyle.Render("No keywords. Run 'moneymind seed' to install the starter set."))
				return nil
			}

			for _, kw := range keywords {
				fmt.Printf("  %4d  [%s] %-25s → %-20s %3d%%\n",
					kw.ID, kw.Language, kw.Keyword,
					categoryName(ctx, store, kw.CategoryID), kw.Confidence)
			}
			return nil
		},
	}
}

func keywordsAddCmd() *cobra.Command {
	var (
		language   string
		category   string
		confidence int
	)

	cmd := &cobra.Command{
		Use:   "add <keyword>",
		Short: "Add a category keyword",
		Example: `  moneymind keywords add --category "Food & Drink" --language vi "bánh mì"
  moneymind keywords add --category Transport "toll"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			lang := model.Language(language)
			if !lang.Valid() {
				return fmt.Errorf("invalid language %q (en, vi)", language)
			}

			store, err := openStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			cat, err := resolveCategory(ctx, store, category)
			if err != nil {
				return err
			}

			kw := &model.CategoryKeyword{
				CategoryID: cat.ID,
				Keyword:    args[0],
				Language:   lang,
				Confidence: confidence,
				IsActive:   true,
			}
			if err := store.CreateKeyword(ctx, kw); err != nil {
				return fmt.Errorf("failed to create keyword: %w", err)
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Added keyword %q [%s] → %s", kw.Keyword, kw.Language, cat.Name)))
			return nil
		},
	}

	cmd.Flags().StringVar(&language, "language", "en", "keyword language (en, vi)")
	cmd.Flags().StringVar(&category, "category", "", "target category name or ID (required)")
	cmd.Flags().IntVar(&confidence, "confidence", 75, "keyword confidence (0-100)")
	_ = cmd.MarkFlagRequired("category")

	return cmd
}
