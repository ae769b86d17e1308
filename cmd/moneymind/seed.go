package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ndhoang/moneymind/internal/cli"
	"github.com/ndhoang/moneymind/internal/seed"
)

func seedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Install the starter categories, merchant rules, and keywords",
		Long: `Seed writes the built-in Vietnamese-market starter data: default
categories, curated merchant rules, and bilingual keywords. Running it
again is safe; existing records are kept.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, err := openStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			bar := progressbar.NewOptions(seed.Total(),
				progressbar.OptionSetWriter(os.Stderr),
				progressbar.OptionEnableColorCodes(true),
				progressbar.OptionShowCount(),
				progressbar.OptionSetWidth(40),
				progressbar.OptionSetDescription("[cyan]Seeding starter data...[reset]"),
				progressbar.OptionOnCompletion(func() {
					fmt.Fprintln(os.Stderr)
				}),
			)

			region := viper.GetString("categorization.region")
			err = seed.Apply(ctx, store, region, func() {
				if err := bar.Add(1); err != nil {
					slog.Debug("failed to advance progress bar", "error", err)
				}
			})
			if err != nil {
				return fmt.Errorf("failed to seed data: %w", err)
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Seeded %d categories, %d merchant rules, %d keywords for %s",
				len(seed.Categories), len(seed.MerchantRules), len(seed.Keywords), region)))
			return nil
		},
	}
}
