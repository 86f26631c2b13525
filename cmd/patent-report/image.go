// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"github.com/spf13/cobra"

	"github.com/pdiddy/patent-report/internal/present"
)

var imageCmd = &cobra.Command{
	Use:   "image <page-url>...",
	Short: "Resolve a representative image for each page",
	Long: `Image prints "page<TAB>image" for every page. The og:image meta tag wins;
otherwise the first img with an absolute src is used. Pages that cannot be
fetched or have no image print an empty second column.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		workers, _ := cmd.Flags().GetInt("workers")
		if workers <= 0 {
			workers = cfg.Scrape.Workers
		}

		ctx := cmd.Context()
		store, closeStore := openStore(ctx)
		defer closeStore()

		images := newScraper(store).ResolveImages(ctx, args, workers)
		return present.Images(cmd.OutOrStdout(), args, images)
	},
}

func init() {
	imageCmd.Flags().Int("workers", 0, "concurrent page fetches (default scrape.workers)")

	rootCmd.AddCommand(imageCmd)
}
