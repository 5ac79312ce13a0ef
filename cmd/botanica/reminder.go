// Reminder commands for the botanica CLI.
package main

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/botanica-home/botanica/pkg/types"
)

// dueDateLayout is the accepted format for --due values.
const dueDateLayout = "2006-01-02"

var reminderCmd = &cobra.Command{
	Use:   "reminder",
	Short: "Manage care reminders",
}

var (
	reminderAddTask      string
	reminderAddDue       string
	reminderAddFrequency string
)

var reminderAddCmd = &cobra.Command{
	Use:   "add <plant-id>",
	Short: "Add a care reminder for a plant",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		due, err := time.ParseInLocation(dueDateLayout, reminderAddDue, time.Local)
		if err != nil {
			fmt.Fprintf(os.Stderr, "invalid due date %q (expected YYYY-MM-DD)\n", reminderAddDue)
			os.Exit(exitUserError)
		}

		a, err := openApp()
		if err != nil {
			fmt.Fprintln(os.Stderr, "reminder add:", err)
			os.Exit(exitSysError)
		}
		defer a.Close()

		reminder, err := a.Scheduler.AddReminder(args[0], reminderAddTask, due, reminderAddFrequency)
		if err != nil {
			fmt.Fprintln(os.Stderr, "reminder add:", err)
			os.Exit(exitUserError)
		}

		if flagJSON {
			return printJSON(reminder)
		}
		fmt.Printf("Added %s reminder: %s (due %s)\n",
			reminder.TaskType, reminder.ID, formatDate(reminder.DueDate))
		return nil
	},
}

var (
	reminderListPlant string
	reminderListDue   bool
	reminderListAll   bool
)

var reminderListCmd = &cobra.Command{
	Use:   "list",
	Short: "List reminders (upcoming by default)",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp()
		if err != nil {
			fmt.Fprintln(os.Stderr, "reminder list:", err)
			os.Exit(exitSysError)
		}
		defer a.Close()

		var list []types.Reminder
		switch {
		case reminderListPlant != "":
			list = a.Scheduler.RemindersForPlant(reminderListPlant)
		case reminderListDue:
			list = a.Scheduler.DueReminders()
		case reminderListAll:
			list = a.Scheduler.Reminders()
		default:
			list = a.Scheduler.UpcomingReminders()
		}

		if flagJSON {
			return printJSON(list)
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tPLANT\tTASK\tDUE\tFREQUENCY\tDONE")
		for _, r := range list {
			name := r.PlantID
			if n, ok := a.Scheduler.PlantName(r.PlantID); ok {
				name = n
			}
			freq := r.Frequency
			if freq == "" {
				freq = "once"
			}
			done := ""
			if r.Completed {
				done = "yes"
			}
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
				r.ID, name, r.TaskType, formatDate(r.DueDate), freq, done)
		}
		return w.Flush()
	},
}

var reminderCompleteCmd = &cobra.Command{
	Use:   "complete <reminder-id>",
	Short: "Mark a reminder done, scheduling the next occurrence if recurring",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp()
		if err != nil {
			fmt.Fprintln(os.Stderr, "reminder complete:", err)
			os.Exit(exitSysError)
		}
		defer a.Close()

		next, err := a.Scheduler.CompleteReminder(args[0])
		if err != nil {
			fmt.Fprintln(os.Stderr, "reminder complete:", err)
			os.Exit(exitUserError)
		}

		if flagJSON && next != nil {
			return printJSON(next)
		}
		if next != nil {
			fmt.Printf("Completed. Next %s due %s (%s)\n",
				next.TaskType, formatDate(next.DueDate), next.ID)
		} else {
			fmt.Println("Completed:", args[0])
		}
		return nil
	},
}

var reminderDeleteCmd = &cobra.Command{
	Use:   "delete <reminder-id>",
	Short: "Delete a reminder",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp()
		if err != nil {
			fmt.Fprintln(os.Stderr, "reminder delete:", err)
			os.Exit(exitSysError)
		}
		defer a.Close()

		if !a.Scheduler.DeleteReminder(args[0]) {
			fmt.Fprintf(os.Stderr, "reminder %q not found\n", args[0])
			os.Exit(exitUserError)
		}
		fmt.Println("Deleted reminder:", args[0])
		return nil
	},
}

func init() {
	reminderAddCmd.Flags().StringVar(&reminderAddTask, "task", types.TaskWatering, "task type (watering, fertilizing, pruning, repotting)")
	reminderAddCmd.Flags().StringVar(&reminderAddDue, "due", "", "due date YYYY-MM-DD (required)")
	reminderAddCmd.Flags().StringVar(&reminderAddFrequency, "frequency", "", "recurrence: daily, weekly, biweekly, monthly (omit for one-shot)")
	reminderAddCmd.MarkFlagRequired("due")

	reminderListCmd.Flags().StringVar(&reminderListPlant, "plant", "", "only reminders for this plant")
	reminderListCmd.Flags().BoolVar(&reminderListDue, "due", false, "only reminders due today or earlier")
	reminderListCmd.Flags().BoolVar(&reminderListAll, "all", false, "include completed reminders")

	reminderCmd.AddCommand(reminderAddCmd)
	reminderCmd.AddCommand(reminderListCmd)
	reminderCmd.AddCommand(reminderCompleteCmd)
	reminderCmd.AddCommand(reminderDeleteCmd)
}
