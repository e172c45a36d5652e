package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func main() {
	// .env is optional; the real environment wins.
	_ = godotenv.Load()

	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:           "evalreport",
		Short:         "Score evaluation exports into per-project reports",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.load(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if opts.logger != nil {
				_ = opts.logger.Sync()
			}
		},
	}

	rootCmd.PersistentFlags().StringVar(&opts.schemaFile, "schema", "", "YAML file overriding the schema preset (default $SCHEMA_FILE)")
	rootCmd.PersistentFlags().StringVar(&opts.preset, "preset", "", "schema preset: en or pt (default $SCHEMA_PRESET)")

	rootCmd.AddCommand(
		newReportCmd(opts),
		newServeCmd(opts),
		newSchemaCmd(opts),
	)
	return rootCmd
}
