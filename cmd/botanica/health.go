// Health log commands for the botanica CLI.
package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/botanica-home/botanica/internal/plants"
)

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Manage plant health logs",
}

var (
	healthAddType    string
	healthAddNotes   string
	healthAddDetails string
	healthAddStatus  string
)

var healthAddCmd = &cobra.Command{
	Use:   "add <plant-id>",
	Short: "Add a health log entry to a plant",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp()
		if err != nil {
			fmt.Fprintln(os.Stderr, "health add:", err)
			os.Exit(exitSysError)
		}
		defer a.Close()

		log, err := a.Plants.AddHealthLog(args[0], plants.HealthLogInput{
			Type:    healthAddType,
			Notes:   healthAddNotes,
			Details: healthAddDetails,
			Status:  healthAddStatus,
		})
		if err != nil {
			fmt.Fprintln(os.Stderr, "health add:", err)
			os.Exit(exitUserError)
		}

		if flagJSON {
			return printJSON(log)
		}
		fmt.Printf("Added %s log: %s\n", log.Type, log.ID)
		return nil
	},
}

var healthListCmd = &cobra.Command{
	Use:   "list <plant-id>",
	Short: "List a plant's health logs",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp()
		if err != nil {
			fmt.Fprintln(os.Stderr, "health list:", err)
			os.Exit(exitSysError)
		}
		defer a.Close()

		plant, ok := a.Plants.PlantByID(args[0])
		if !ok {
			fmt.Fprintf(os.Stderr, "plant %q not found\n", args[0])
			os.Exit(exitUserError)
		}

		if flagJSON {
			return printJSON(plant.HealthLogs)
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tTYPE\tDATE\tSTATUS\tNOTES")
		for _, h := range plant.HealthLogs {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
				h.ID, h.Type, formatDate(h.Date), h.Status, h.Notes)
		}
		return w.Flush()
	},
}

var healthDeleteCmd = &cobra.Command{
	Use:   "delete <plant-id> <log-id>",
	Short: "Delete a health log entry",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp()
		if err != nil {
			fmt.Fprintln(os.Stderr, "health delete:", err)
			os.Exit(exitSysError)
		}
		defer a.Close()

		if !a.Plants.DeleteHealthLog(args[0], args[1]) {
			fmt.Fprintf(os.Stderr, "health log %q not found on plant %q\n", args[1], args[0])
			os.Exit(exitUserError)
		}
		fmt.Println("Deleted health log:", args[1])
		return nil
	},
}

func init() {
	healthAddCmd.Flags().StringVar(&healthAddType, "type", "", "log type: watering, fertilizer, growth, pest, general (required)")
	healthAddCmd.Flags().StringVar(&healthAddNotes, "notes", "", "log notes")
	healthAddCmd.Flags().StringVar(&healthAddDetails, "details", "", "extra details")
	healthAddCmd.Flags().StringVar(&healthAddStatus, "status", "", "plant condition: thriving, healthy, struggling, concern")
	healthAddCmd.MarkFlagRequired("type")

	healthCmd.AddCommand(healthAddCmd)
	healthCmd.AddCommand(healthListCmd)
	healthCmd.AddCommand(healthDeleteCmd)
}
