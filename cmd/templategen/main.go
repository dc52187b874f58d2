package main

import (
	"fmt"
	"os"

	"github.com/garagehub/vehicle-service/internal/spreadsheet"

	"github.com/spf13/cobra"
)

func main() {
	var output string

	root := &cobra.Command{
		Use:   "templategen",
		Short: "Generate the vehicle bulk-import spreadsheet",
		Long: "Builds the .xlsx workbook garages fill in to import their " +
			"inventory: a Vehicles sheet with droplist validations and an " +
			"example row, plus an Instructions sheet.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := spreadsheet.WriteImportTemplate(output); err != nil {
				return fmt.Errorf("write template: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Template written to %s\n", output)
			return nil
		},
	}
	root.Flags().StringVarP(&output, "output", "o", "vehicle-import-template.xlsx", "output file path")

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}
