// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/patent-report/internal/present"
)

var reportsCmd = &cobra.Command{
	Use:   "reports [listing-url]",
	Short: "List report PDFs published on the regulator's listing page",
	Long: `Reports fetches the listing page and prints one row per report with its
title and absolute PDF link, in page order. Entries without a title or a PDF
link are skipped. The URL defaults to scrape.listing_url from the config.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runReports,
}

func init() {
	reportsCmd.Flags().String("filter", "", "keep reports whose title contains this text (case-insensitive)")
	reportsCmd.Flags().String("format", "table", "output format: table, json, yaml")

	rootCmd.AddCommand(reportsCmd)
}

func runReports(cmd *cobra.Command, args []string) error {
	listingURL := viper.GetString("scrape.listing_url")
	if len(args) == 1 {
		listingURL = args[0]
	}
	if listingURL == "" {
		return fmt.Errorf("provide a listing URL or set scrape.listing_url")
	}

	formatFlag, _ := cmd.Flags().GetString("format")
	format, err := present.ParseFormat(formatFlag)
	if err != nil {
		return err
	}
	filter, _ := cmd.Flags().GetString("filter")

	ctx := cmd.Context()
	store, closeStore := openStore(ctx)
	defer closeStore()

	records := newScraper(store).ExtractReports(ctx, listingURL)
	return present.Reports(cmd.OutOrStdout(), present.FilterReports(records, filter), format)
}
