package main

import (
	"github.com/spf13/cobra"

	"evalreport/internal/config"
)

func newSchemaCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "schema",
		Short: "Print the effective evaluation schema as YAML",
		Long: `Print the schema after applying --preset and --schema. The output is a
valid --schema file and a starting point for custom exports.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := config.MarshalSchema(opts.schema)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
}
