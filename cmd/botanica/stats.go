// Stats command for the botanica CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show collection statistics",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp()
		if err != nil {
			fmt.Fprintln(os.Stderr, "stats:", err)
			os.Exit(exitSysError)
		}
		defer a.Close()

		stats := a.Plants.Stats()

		if flagJSON {
			return printJSON(stats)
		}

		fmt.Println("Plants:     ", stats.Total)
		fmt.Println("Needs water:", stats.NeedsWater)
		fmt.Println("Low light:  ", stats.LowLight)
		fmt.Println("Wishlist:   ", len(a.Wishlist.Wishes()))
		fmt.Println("Due today:  ", len(a.Scheduler.DueReminders()))
		return nil
	},
}
