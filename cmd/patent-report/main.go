// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the patent-report CLI.
// Subcommands browse the patent dataset (patents list, patents show), list
// the regulator's report PDFs (reports) and resolve page images (image).
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/pdiddy/patent-report/internal/logger"
	"github.com/pdiddy/patent-report/internal/metrics"
	"github.com/pdiddy/patent-report/internal/secrets"
	"github.com/pdiddy/patent-report/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// Process-wide state built in PersistentPreRunE.
var (
	cfg           types.Config
	log           = zap.NewNop()
	registry      = prometheus.NewRegistry()
	scrapeMetrics *metrics.Scrape
)

// rootCmd is the base command for the patent-report CLI.
var rootCmd = &cobra.Command{
	Use:   "patent-report",
	Short: "Browse a patent dataset and the regulator's published reports",
	Long: `patent-report loads a patent export, translates titles and abstracts, and
shows them as cards or a detail view. It also lists the report PDFs published
on the regulator's listing page and resolves representative images for pages.

Network failures never abort a listing: an unreachable page shows as "No
reports found." and the reason is logged to stderr.`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		defer log.Sync()

		path := viper.GetString("metrics_file")
		if path == "" {
			return nil
		}
		if err := prometheus.WriteToTextfile(path, registry); err != nil {
			return fmt.Errorf("writing metrics: %w", err)
		}
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	pf := rootCmd.PersistentFlags()
	pf.String("config", "", "config file (default: ./patent-report.yaml or ~/.config/patent-report/patent-report.yaml)")
	pf.String("log-level", "", "log level: debug, info, warn, error (default warn)")
	pf.String("log-format", "", "log format: console, json, text (default console)")
	pf.String("cache", "", "result cache: none, memory, redis (default memory)")
	pf.String("metrics-file", "", "write Prometheus metrics to this file on exit")
	pf.String("secrets-dir", secrets.DefaultDir, "directory of secret files")

	viper.BindPFlag("log.level", pf.Lookup("log-level"))
	viper.BindPFlag("log.format", pf.Lookup("log-format"))
	viper.BindPFlag("cache.backend", pf.Lookup("cache"))
	viper.BindPFlag("metrics_file", pf.Lookup("metrics-file"))
	viper.BindPFlag("secrets_dir", pf.Lookup("secrets-dir"))

	setDefaults(viper.GetViper())
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("patent-report")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "patent-report"))
		}
	}

	viper.SetEnvPrefix("PATENT_REPORT")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// setup decodes the configuration, loads secrets and builds the logger and
// metrics shared by every subcommand.
func setup(cmd *cobra.Command, args []string) error {
	c, err := decodeConfig(viper.GetViper())
	if err != nil {
		return err
	}

	l, err := logger.New(c.Log, os.Stderr)
	if err != nil {
		return err
	}

	s, err := secrets.Load(viper.GetString("secrets_dir"), l)
	if err != nil {
		return err
	}
	secrets.Apply(&c, s)
	if len(s) > 0 {
		keys := make([]string, 0, len(s))
		for k := range s {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		l.Info("loaded secrets", zap.Strings("keys", keys))
	}

	cfg = c
	log = l
	if scrapeMetrics == nil {
		scrapeMetrics = metrics.NewScrape(registry)
	}
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
