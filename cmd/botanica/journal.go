// Journal commands for the botanica CLI.
package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var journalCmd = &cobra.Command{
	Use:   "journal",
	Short: "Manage plant journal entries",
}

var journalAddNote string

var journalAddCmd = &cobra.Command{
	Use:   "add <plant-id>",
	Short: "Add a journal entry to a plant",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp()
		if err != nil {
			fmt.Fprintln(os.Stderr, "journal add:", err)
			os.Exit(exitSysError)
		}
		defer a.Close()

		entry, err := a.Plants.AddJournalEntry(args[0], journalAddNote, "")
		if err != nil {
			fmt.Fprintln(os.Stderr, "journal add:", err)
			os.Exit(exitUserError)
		}

		if flagJSON {
			return printJSON(entry)
		}
		fmt.Println("Added journal entry:", entry.ID)
		return nil
	},
}

var journalListCmd = &cobra.Command{
	Use:   "list <plant-id>",
	Short: "List a plant's journal entries",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp()
		if err != nil {
			fmt.Fprintln(os.Stderr, "journal list:", err)
			os.Exit(exitSysError)
		}
		defer a.Close()

		plant, ok := a.Plants.PlantByID(args[0])
		if !ok {
			fmt.Fprintf(os.Stderr, "plant %q not found\n", args[0])
			os.Exit(exitUserError)
		}

		if flagJSON {
			return printJSON(plant.Journal)
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tDATE\tNOTE")
		for _, e := range plant.Journal {
			fmt.Fprintf(w, "%s\t%s\t%s\n", e.ID, formatDate(e.Date), e.Note)
		}
		return w.Flush()
	},
}

var journalDeleteCmd = &cobra.Command{
	Use:   "delete <plant-id> <entry-id>",
	Short: "Delete a journal entry",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp()
		if err != nil {
			fmt.Fprintln(os.Stderr, "journal delete:", err)
			os.Exit(exitSysError)
		}
		defer a.Close()

		if !a.Plants.DeleteJournalEntry(args[0], args[1]) {
			fmt.Fprintf(os.Stderr, "journal entry %q not found on plant %q\n", args[1], args[0])
			os.Exit(exitUserError)
		}
		fmt.Println("Deleted journal entry:", args[1])
		return nil
	},
}

func init() {
	journalAddCmd.Flags().StringVar(&journalAddNote, "note", "", "entry text (required)")
	journalAddCmd.MarkFlagRequired("note")

	journalCmd.AddCommand(journalAddCmd)
	journalCmd.AddCommand(journalListCmd)
	journalCmd.AddCommand(journalDeleteCmd)
}
