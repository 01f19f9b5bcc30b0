package main

import (
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

type globalOptions struct {
	server       string
	pollInterval time.Duration
	pollCeiling  time.Duration
	output       string
	verbose      bool
}

func newRootCommand() *cobra.Command {
	opts := &globalOptions{}

	rootCmd := &cobra.Command{
		Use:           "viductl",
		Short:         "Submit and track Vidu video-generation jobs",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			_ = godotenv.Load()
			if opts.server == "" {
				opts.server = envOr("VIDU_SERVER_URL", "http://localhost:8080")
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	rootCmd.PersistentFlags().StringVar(&opts.server, "server", "", "Proxy base URL (default $VIDU_SERVER_URL or http://localhost:8080)")
	rootCmd.PersistentFlags().DurationVar(&opts.pollInterval, "poll-interval", 5*time.Second, "Interval between status checks")
	rootCmd.PersistentFlags().DurationVar(&opts.pollCeiling, "poll-timeout", 600*time.Second, "Overall polling ceiling")
	rootCmd.PersistentFlags().StringVarP(&opts.output, "output", "o", "", "Directory to download finished videos into")
	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Log every lifecycle transition")

	rootCmd.AddCommand(newGenerateCommand(opts))
	rootCmd.AddCommand(newAnimateCommand(opts))
	rootCmd.AddCommand(newStatusCommand(opts))

	return rootCmd
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
