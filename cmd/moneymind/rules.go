package main

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ndhoang/moneymind/internal/cli"
	"github.com/ndhoang/moneymind/internal/model"
)

func rulesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rules",
		Short: "Manage merchant categorization rules",
	}

	cmd.AddCommand(rulesListCmd())
	cmd.AddCommand(rulesAddCmd())
	cmd.AddCommand(rulesDeactivateCmd())

	return cmd
}

func rulesListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List active merchant rules for the configured region",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, err := openStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			region := viper.GetString("categorization.region")
			rules, err := store.ListActiveMerchantRules(ctx, region)
			if err != nil {
				return fmt.Errorf("failed to list merchant rules: %w", err)
			}

			fmt.Println(cli.FormatTitle(fmt.Sprintf("Merchant rules (%s)", region)))
			if len(rules) == 0 {
				fmt.Println(cli.SubtleStyle.Render("No rules. Run 'moneymind seed' to install the starter set."))
				return nil
			}

			for _, rule := range rules {
				fmt.Printf("  %4d  %-10s %-40s → %-20s %3d%%  (used %d×)\n",
					rule.ID, rule.MatchType, rule.MerchantPattern,
					categoryName(ctx, store, rule.CategoryID), rule.Confidence, rule.UseCount)
			}
			return nil
		},
	}
}

func rulesAddCmd() *cobra.Command {
	var (
		matchType  string
		category   string
		confidence int
	)

	cmd := &cobra.Command{
		Use:   "add <pattern>",
		Short: "Add a merchant rule",
		Example: `  moneymind rules add --category "Food & Drink" "Katinat"
  moneymind rules add --match prefix --category Transport "Xanh SM"
  moneymind rules add --match regex --category Utilities "^EVN(HCMC|HANOI)"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			mt := model.MatchType(matchType)
			if !mt.Valid() {
				return fmt.Errorf("invalid match type %q (exact, prefix, suffix, contains, regex)", matchType)
			}
			if mt == model.MatchRegex {
				if _, err := regexp.Compile(args[0]); err != nil {
					return fmt.Errorf("invalid regex pattern: %w", err)
				}
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

			rule := &model.MerchantCategoryRule{
				MerchantPattern: args[0],
				MatchType:       mt,
				CategoryID:      cat.ID,
				Confidence:      confidence,
				IsActive:        true,
				Region:          viper.GetString("categorization.region"),
			}
			if err := store.CreateMerchantRule(ctx, rule); err != nil {
				return fmt.Errorf("failed to create merchant rule: %w", err)
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Added rule #%d: %s %q → %s", rule.ID, rule.MatchType, rule.MerchantPattern, cat.Name)))
			return nil
		},
	}

	cmd.Flags().StringVar(&matchType, "match", "contains", "match type (exact, prefix, suffix, contains, regex)")
	cmd.Flags().StringVar(&category, "category", "", "target category name or ID (required)")
	cmd.Flags().IntVar(&confidence, "confidence", 100, "rule confidence (0-100)")
	_ = cmd.MarkFlagRequired("category")

	return cmd
}

func rulesDeactivateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "deactivate <id>",
		Short: "Deactivate a merchant rule without deleting it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid rule ID %q: %w", args[0], err)
			}

			store, err := openStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			if err := store.SetMerchantRuleActive(ctx, id, false); err != nil {
				return fmt.Errorf("failed to deactivate rule %d: %w", id, err)
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Deactivated rule #%d", id)))
			return nil
		},
	}
}
