package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Bitlatte/developmental/internal/config"
	"github.com/Bitlatte/developmental/internal/logging"
)

var (
	cfgFile   string
	verbose   bool
	appConfig config.Config
	logger    *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "developmental",
	Short: "developmental - a static blog generator",
	Long: `developmental turns a directory of Markdown posts into a static blog:
one page per post linked to its older and newer neighbours, an index of
every post, a 404 page, an RSS feed and a web app manifest.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initialize()
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func Execute() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

func initialize() error {
	var err error
	logger, err = logging.New(verbose)
	if err != nil {
		return err
	}

	cfg, used, err := config.Load(cfgFile)
	if err != nil {
		return err
	}
	if used != "" {
		logger.Info("using config file", zap.String("path", used))
	} else {
		logger.Info("no config file found, using defaults and environment")
	}
	appConfig = cfg
	return nil
}
