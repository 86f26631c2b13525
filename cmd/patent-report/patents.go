// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/pdiddy/patent-report/internal/dataset"
	"github.com/pdiddy/patent-report/internal/present"
	"github.com/pdiddy/patent-report/pkg/types"
)

var patentsCmd = &cobra.Command{
	Use:   "patents",
	Short: "Browse the patent dataset",
	Long: `Patents loads the patent export (an .xlsx workbook or a delimited file),
strips parenthesized text from titles and translates titles and abstracts.
Use "patents list" for the card grid and "patents show <index>" for one patent.`,
}

var patentsListCmd = &cobra.Command{
	Use:   "list",
	Short: "Show every patent as a card",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		patents, err := loadPatents(cmd.Context())
		if err != nil {
			return err
		}
		present.Cards(cmd.OutOrStdout(), patents)
		return nil
	},
}

var patentsShowCmd = &cobra.Command{
	Use:   "show <index>",
	Short: "Show the detail view of one patent",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		patents, err := loadPatents(cmd.Context())
		if err != nil {
			return err
		}
		p, err := present.SelectPatent(patents, args[0])
		if err != nil {
			fmt.Fprintln(cmd.OutOrStdout(), present.IndexMessage(err))
			return err
		}
		return present.Detail(cmd.OutOrStdout(), p)
	},
}

func init() {
	pf := patentsCmd.PersistentFlags()
	pf.String("dataset", "", "patent export (.xlsx or CSV); default dataset.path")
	pf.Int("header-row", dataset.DefaultHeaderRow, "zero-based row holding the column names")
	pf.String("delimiter", "", "field delimiter (default \",\")")
	pf.String("sheet", "", "workbook sheet (default the first sheet)")
	pf.Bool("translate", true, "translate titles and abstracts")

	viper.BindPFlag("dataset.path", pf.Lookup("dataset"))
	viper.BindPFlag("dataset.header_row", pf.Lookup("header-row"))
	viper.BindPFlag("dataset.delimiter", pf.Lookup("delimiter"))
	viper.BindPFlag("dataset.sheet", pf.Lookup("sheet"))
	viper.BindPFlag("translation.enabled", pf.Lookup("translate"))

	patentsCmd.AddCommand(patentsListCmd, patentsShowCmd)
	rootCmd.AddCommand(patentsCmd)
}

func loadPatents(ctx context.Context) ([]types.Patent, error) {
	patents, err := dataset.Load(cfg.Dataset.Path, cfg.Dataset)
	if err != nil {
		return nil, err
	}
	log.Info("dataset loaded", zap.String("path", cfg.Dataset.Path), zap.Int("patents", len(patents)))

	store, closeStore := openStore(ctx)
	defer closeStore()

	return dataset.Prepare(ctx, patents, newTranslation(store)), nil
}
