// Calendar command for the botanica CLI.
package main

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
)

var (
	calendarYear  int
	calendarMonth int
)

var calendarCmd = &cobra.Command{
	Use:   "calendar",
	Short: "Show the month grid of care reminders",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		now := time.Now()
		year := calendarYear
		if year == 0 {
			year = now.Year()
		}
		month := time.Month(calendarMonth)
		if calendarMonth == 0 {
			month = now.Month()
		}
		if calendarMonth < 0 || calendarMonth > 12 {
			fmt.Fprintf(os.Stderr, "invalid month %d (expected 1-12)\n", calendarMonth)
			os.Exit(exitUserError)
		}

		a, err := openApp()
		if err != nil {
			fmt.Fprintln(os.Stderr, "calendar:", err)
			os.Exit(exitSysError)
		}
		defer a.Close()

		grid := a.Scheduler.MonthGrid(year, month)

		if flagJSON {
			return printJSON(grid)
		}

		fmt.Printf("%s %d\n\n", month, year)
		w := tabwriter.NewWriter(os.Stdout, 4, 4, 1, ' ', 0)
		fmt.Fprintln(w, "Su\tMo\tTu\tWe\tTh\tFr\tSa")
		for _, week := range grid {
			for col, cell := range week {
				if col > 0 {
					fmt.Fprint(w, "\t")
				}
				if cell == nil {
					continue
				}
				// Reminder count is marked with asterisks after the day.
				mark := ""
				for range cell.Reminders {
					mark += "*"
				}
				fmt.Fprintf(w, "%d%s", cell.Day, mark)
			}
			fmt.Fprintln(w)
		}
		if err := w.Flush(); err != nil {
			return err
		}

		// Legend: the reminders behind the marks, in day order.
		for _, week := range grid {
			for _, cell := range week {
				if cell == nil || len(cell.Reminders) == 0 {
					continue
				}
				for _, r := range cell.Reminders {
					name := r.PlantID
					if n, ok := a.Scheduler.PlantName(r.PlantID); ok {
						name = n
					}
					fmt.Printf("  %2d: %s %s\n", cell.Day, name, r.TaskType)
				}
			}
		}
		return nil
	},
}

func init() {
	calendarCmd.Flags().IntVar(&calendarYear, "year", 0, "year (default: current)")
	calendarCmd.Flags().IntVar(&calendarMonth, "month", 0, "month 1-12 (default: current)")
}
