package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"studio-site/internal/config"
)

var cfgFile string
var appConfig config.Config

var rootCmd = &cobra.Command{
	Use:   "sitectl",
	Short: "Studio site backend: content API, chat proxy and admin tools",
	Long: `sitectl runs the studio site backend locally or against AWS.

Configuration is read from ./sitectl.yaml (or --config), then from SITE_*
environment variables; a .env file in the working directory is loaded first.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return err
		}
		appConfig = cfg
		slog.SetDefault(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: cfg.SlogLevel()})))
		return nil
	},
}

func Execute() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		slog.Error("command failed", "err", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./sitectl.yaml)")
}
