// Package cli implements the textchunk command line interface.
package cli

import (
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/compozy/textchunk/pkg/logger"
)

func RootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "textchunk",
		Short:         "Locale-aware text chunking",
		Long:          "Split text into bounded chunks along sentence boundaries, by word, character, or line count.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// A missing .env file is fine; explicit config errors are not.
			_ = godotenv.Load()
			logLevel, logJSON, logSource, err := logger.GetLoggerConfig(cmd)
			if err != nil {
				return err
			}
			logger.SetupLogger(logLevel, logJSON, logSource)
			return nil
		},
	}

	root.PersistentFlags().String("log-level", "info", "Log level (debug, info, warn, error, disabled)")
	root.PersistentFlags().Bool("log-json", false, "Log in JSON format")
	root.PersistentFlags().Bool("log-source", false, "Report source locations in logs")
	root.PersistentFlags().String("config", "", "Path to a YAML config file")
	root.PersistentFlags().String("locale", "", "BCP-47 locale for sentence segmentation")

	root.AddCommand(
		WordsCmd(),
		CharsCmd(),
		LinesCmd(),
		StatsCmd(),
	)

	return root
}
