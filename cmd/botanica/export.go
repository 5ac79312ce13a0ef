// Export command for the botanica CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	exportPlant  string
	exportOutput string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export watering data as JSON",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp()
		if err != nil {
			fmt.Fprintln(os.Stderr, "export:", err)
			os.Exit(exitSysError)
		}
		defer a.Close()

		data, err := a.ExportWateringData(exportPlant)
		if err != nil {
			fmt.Fprintln(os.Stderr, "export:", err)
			os.Exit(exitUserError)
		}

		if exportOutput == "" {
			fmt.Println(string(data))
			return nil
		}
		if err := os.WriteFile(exportOutput, data, 0o644); err != nil {
			fmt.Fprintln(os.Stderr, "export:", err)
			os.Exit(exitSysError)
		}
		fmt.Println("Exported to", exportOutput)
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVar(&exportPlant, "plant", "", "export a single plant (default: all)")
	exportCmd.Flags().StringVar(&exportOutput, "out", "", "write to file instead of stdout")
}
