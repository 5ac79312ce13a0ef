// Plant commands for the botanica CLI.
package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/botanica-home/botanica/internal/plants"
	"github.com/botanica-home/botanica/pkg/types"
)

var plantCmd = &cobra.Command{
	Use:   "plant",
	Short: "Manage tracked plants",
}

var (
	plantAddName    string
	plantAddSpecies string
	plantAddType    string
	plantAddLight   string
	plantAddNotes   string
)

var plantAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a plant to the collection",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if plantAddLight != "" && !types.ValidLight(plantAddLight) {
			fmt.Fprintf(os.Stderr, "invalid light %q (valid: low, medium, bright)\n", plantAddLight)
			os.Exit(exitUserError)
		}

		a, err := openApp()
		if err != nil {
			fmt.Fprintln(os.Stderr, "plant add:", err)
			os.Exit(exitSysError)
		}
		defer a.Close()

		plant, err := a.Plants.AddPlant(types.Plant{
			Name:    plantAddName,
			Species: plantAddSpecies,
			Type:    plantAddType,
			Light:   plantAddLight,
			Notes:   plantAddNotes,
		})
		if err != nil {
			fmt.Fprintln(os.Stderr, "plant add:", err)
			os.Exit(exitUserError)
		}

		if flagJSON {
			return printJSON(plant)
		}
		fmt.Printf("Added plant: %s (%s)\n", plant.Name, plant.ID)
		return nil
	},
}

var (
	plantListFilter string
	plantListSearch string
	plantListRecent int
)

var plantListCmd = &cobra.Command{
	Use:   "list",
	Short: "List plants with optional filter and search",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp()
		if err != nil {
			fmt.Fprintln(os.Stderr, "plant list:", err)
			os.Exit(exitSysError)
		}
		defer a.Close()

		var list []types.Plant
		if plantListRecent > 0 {
			list = a.Plants.Recent(plantListRecent)
		} else {
			list = a.Plants.Plants(plantListFilter, plantListSearch)
		}

		if flagJSON {
			return printJSON(list)
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tNAME\tTYPE\tLIGHT\tNEXT WATERING")
		for i := range list {
			next := "-"
			if status, ok := a.Plants.WateringStatus(list[i].ID); ok {
				next = status.Label
			}
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
				list[i].ID, list[i].Name, list[i].Type, list[i].Light, next)
		}
		return w.Flush()
	},
}

var plantShowCmd = &cobra.Command{
	Use:   "show <plant-id>",
	Short: "Show one plant in full",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp()
		if err != nil {
			fmt.Fprintln(os.Stderr, "plant show:", err)
			os.Exit(exitSysError)
		}
		defer a.Close()

		plant, ok := a.Plants.PlantByID(args[0])
		if !ok {
			fmt.Fprintf(os.Stderr, "plant %q not found\n", args[0])
			os.Exit(exitUserError)
		}

		if flagJSON {
			return printJSON(plant)
		}

		fmt.Println("ID:     ", plant.ID)
		fmt.Println("Name:   ", plant.Name)
		fmt.Println("Species:", plant.Species)
		fmt.Println("Type:   ", plant.Type)
		fmt.Println("Light:  ", plant.Light)
		if plant.Notes != "" {
			fmt.Println("Notes:  ", plant.Notes)
		}
		fmt.Println("Added:  ", formatDate(plant.CreatedAt))
		if plant.WateringSchedule != nil {
			fmt.Printf("Watering: every %d days at %s, last %s\n",
				plant.WateringSchedule.FrequencyDays,
				plant.WateringSchedule.ReminderTime,
				formatDate(plant.WateringSchedule.LastWatered))
		}
		fmt.Printf("Journal entries: %d, health logs: %d\n",
			len(plant.Journal), len(plant.HealthLogs))
		return nil
	},
}

var plantDeleteCmd = &cobra.Command{
	Use:   "delete <plant-id>",
	Short: "Delete a plant and its reminders and history",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp()
		if err != nil {
			fmt.Fprintln(os.Stderr, "plant delete:", err)
			os.Exit(exitSysError)
		}
		defer a.Close()

		if !a.Plants.DeletePlant(args[0]) {
			fmt.Fprintf(os.Stderr, "plant %q not found\n", args[0])
			os.Exit(exitUserError)
		}
		fmt.Println("Deleted plant:", args[0])
		return nil
	},
}

var (
	plantUpdateName    string
	plantUpdateSpecies string
	plantUpdateType    string
	plantUpdateLight   string
	plantUpdateNotes   string
)

var plantUpdateCmd = &cobra.Command{
	Use:   "update <plant-id>",
	Short: "Update plant fields",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp()
		if err != nil {
			fmt.Fprintln(os.Stderr, "plant update:", err)
			os.Exit(exitSysError)
		}
		defer a.Close()

		// Only flags the user set become part of the patch.
		var patch types.PlantPatch
		if cmd.Flags().Changed("name") {
			patch.Name = &plantUpdateName
		}
		if cmd.Flags().Changed("species") {
			patch.Species = &plantUpdateSpecies
		}
		if cmd.Flags().Changed("type") {
			patch.Type = &plantUpdateType
		}
		if cmd.Flags().Changed("light") {
			patch.Light = &plantUpdateLight
		}
		if cmd.Flags().Changed("notes") {
			patch.Notes = &plantUpdateNotes
		}

		plant, err := a.Plants.UpdatePlant(args[0], patch)
		if err != nil {
			fmt.Fprintln(os.Stderr, "plant update:", err)
			os.Exit(exitUserError)
		}

		if flagJSON {
			return printJSON(plant)
		}
		fmt.Printf("Updated plant: %s (%s)\n", plant.Name, plant.ID)
		return nil
	},
}

var waterNotes string

var plantWaterCmd = &cobra.Command{
	Use:   "water <plant-id>",
	Short: "Mark a plant as watered now",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp()
		if err != nil {
			fmt.Fprintln(os.Stderr, "plant water:", err)
			os.Exit(exitSysError)
		}
		defer a.Close()

		if err := a.Plants.MarkWatered(args[0], waterNotes); err != nil {
			fmt.Fprintln(os.Stderr, "plant water:", err)
			os.Exit(exitUserError)
		}

		if status, ok := a.Plants.WateringStatus(args[0]); ok {
			fmt.Println("Watered. Next:", status.Label)
		} else {
			fmt.Println("Watered.")
		}
		return nil
	},
}

var (
	scheduleFrequency int
	scheduleTime      string
	scheduleNotes     string
)

var plantScheduleCmd = &cobra.Command{
	Use:   "schedule <plant-id>",
	Short: "Attach or replace a watering schedule",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp()
		if err != nil {
			fmt.Fprintln(os.Stderr, "plant schedule:", err)
			os.Exit(exitSysError)
		}
		defer a.Close()

		err = a.Plants.SetWateringSchedule(args[0], types.WateringSchedule{
			FrequencyDays: scheduleFrequency,
			ReminderTime:  scheduleTime,
			Notes:         scheduleNotes,
		})
		if err != nil {
			fmt.Fprintln(os.Stderr, "plant schedule:", err)
			os.Exit(exitUserError)
		}

		status, _ := a.Plants.WateringStatus(args[0])
		fmt.Println("Schedule set. Next:", status.Label)
		return nil
	},
}

var snoozeDays int

var plantSnoozeCmd = &cobra.Command{
	Use:   "snooze <plant-id>",
	Short: "Push the next watering back by a number of days",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp()
		if err != nil {
			fmt.Fprintln(os.Stderr, "plant snooze:", err)
			os.Exit(exitSysError)
		}
		defer a.Close()

		if err := a.Plants.Snooze(args[0], snoozeDays); err != nil {
			fmt.Fprintln(os.Stderr, "plant snooze:", err)
			os.Exit(exitUserError)
		}

		status, _ := a.Plants.WateringStatus(args[0])
		fmt.Printf("Snoozed %d day(s). Next: %s\n", snoozeDays, status.Label)
		return nil
	},
}

var historyLimit int

var plantHistoryCmd = &cobra.Command{
	Use:   "history <plant-id>",
	Short: "Show a plant's watering history and stats",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp()
		if err != nil {
			fmt.Fprintln(os.Stderr, "plant history:", err)
			os.Exit(exitSysError)
		}
		defer a.Close()

		if _, ok := a.Plants.PlantByID(args[0]); !ok {
			fmt.Fprintf(os.Stderr, "plant %q not found\n", args[0])
			os.Exit(exitUserError)
		}

		events := a.Plants.History(args[0], historyLimit)
		stats, hasStats := a.Plants.Watering(args[0])

		if flagJSON {
			out := struct {
				History []types.WateringEvent `json:"history"`
				Stats   *plants.WateringStats `json:"stats,omitempty"`
			}{History: events}
			if hasStats {
				out.Stats = stats
			}
			return printJSON(out)
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "DATE\tACTION\tNOTES")
		for _, e := range events {
			fmt.Fprintf(w, "%s\t%s\t%s\n", formatDateTime(e.Date), e.Action, e.Notes)
		}
		if err := w.Flush(); err != nil {
			return err
		}
		if hasStats {
			fmt.Printf("\nWaterings: %d, average interval: %d day(s), consistency: %d%%\n",
				stats.TotalWaterings, stats.AverageInterval, stats.Consistency)
		}
		return nil
	},
}

func init() {
	plantAddCmd.Flags().StringVar(&plantAddName, "name", "", "plant name (required)")
	plantAddCmd.Flags().StringVar(&plantAddSpecies, "species", "", "botanical species")
	plantAddCmd.Flags().StringVar(&plantAddType, "type", "", "plant type (e.g. succulent, fern)")
	plantAddCmd.Flags().StringVar(&plantAddLight, "light", "", "light requirement (low, medium, bright)")
	plantAddCmd.Flags().StringVar(&plantAddNotes, "notes", "", "free-form notes")
	plantAddCmd.MarkFlagRequired("name")

	plantListCmd.Flags().StringVar(&plantListFilter, "filter", plants.FilterAll, "filter by plant type")
	plantListCmd.Flags().StringVar(&plantListSearch, "search", "", "search name, species, and notes")
	plantListCmd.Flags().IntVar(&plantListRecent, "recent", 0, "show only the N most recently added")

	plantUpdateCmd.Flags().StringVar(&plantUpdateName, "name", "", "plant name")
	plantUpdateCmd.Flags().StringVar(&plantUpdateSpecies, "species", "", "botanical species")
	plantUpdateCmd.Flags().StringVar(&plantUpdateType, "type", "", "plant type")
	plantUpdateCmd.Flags().StringVar(&plantUpdateLight, "light", "", "light requirement (low, medium, bright)")
	plantUpdateCmd.Flags().StringVar(&plantUpdateNotes, "notes", "", "free-form notes")

	plantWaterCmd.Flags().StringVar(&waterNotes, "notes", "", "notes on this watering")

	plantScheduleCmd.Flags().IntVar(&scheduleFrequency, "every", 0, "watering frequency in days (default 7)")
	plantScheduleCmd.Flags().StringVar(&scheduleTime, "at", "", "reminder time HH:MM (default 09:00)")
	plantScheduleCmd.Flags().StringVar(&scheduleNotes, "notes", "", "schedule notes")

	plantSnoozeCmd.Flags().IntVar(&snoozeDays, "days", 1, "days to push the next watering back")

	plantHistoryCmd.Flags().IntVar(&historyLimit, "limit", 0, "most recent N events (0 for all)")

	plantCmd.AddCommand(plantAddCmd)
	plantCmd.AddCommand(plantListCmd)
	plantCmd.AddCommand(plantShowCmd)
	plantCmd.AddCommand(plantDeleteCmd)
	plantCmd.AddCommand(plantUpdateCmd)
	plantCmd.AddCommand(plantWaterCmd)
	plantCmd.AddCommand(plantScheduleCmd)
	plantCmd.AddCommand(plantSnoozeCmd)
	plantCmd.AddCommand(plantHistoryCmd)
}
