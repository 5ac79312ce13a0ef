// Version command for the botanica CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/botanica-home/botanica/pkg/botanica"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the botanica version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("botanica", botanica.Version)
	},
}
