// Wishlist commands for the botanica CLI.
package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/botanica-home/botanica/pkg/types"
)

var wishCmd = &cobra.Command{
	Use:   "wish",
	Short: "Manage the plant wishlist",
}

var (
	wishAddName string
	wishAddNote string
	wishAddLink string
)

var wishAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a plant to the wishlist",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp()
		if err != nil {
			fmt.Fprintln(os.Stderr, "wish add:", err)
			os.Exit(exitSysError)
		}
		defer a.Close()

		wish := a.Wishlist.AddWish(types.WishItem{
			Name: wishAddName,
			Note: wishAddNote,
			Link: wishAddLink,
		})

		if flagJSON {
			return printJSON(wish)
		}
		fmt.Printf("Added wish: %s (%s)\n", wish.Name, wish.ID)
		return nil
	},
}

var wishListCmd = &cobra.Command{
	Use:   "list",
	Short: "List wishlist items, newest first",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp()
		if err != nil {
			fmt.Fprintln(os.Stderr, "wish list:", err)
			os.Exit(exitSysError)
		}
		defer a.Close()

		wishes := a.Wishlist.Wishes()

		if flagJSON {
			return printJSON(wishes)
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tNAME\tNOTE\tADDED")
		for _, item := range wishes {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
				item.ID, item.Name, item.Note, formatDate(item.CreatedAt))
		}
		return w.Flush()
	},
}

var wishShowCmd = &cobra.Command{
	Use:   "show <wish-id>",
	Short: "Show one wishlist item",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp()
		if err != nil {
			fmt.Fprintln(os.Stderr, "wish show:", err)
			os.Exit(exitSysError)
		}
		defer a.Close()

		wish, ok := a.Wishlist.WishByID(args[0])
		if !ok {
			fmt.Fprintf(os.Stderr, "wish %q not found\n", args[0])
			os.Exit(exitUserError)
		}

		if flagJSON {
			return printJSON(wish)
		}

		fmt.Println("ID:   ", wish.ID)
		fmt.Println("Name: ", wish.Name)
		if wish.Note != "" {
			fmt.Println("Note: ", wish.Note)
		}
		if wish.Link != "" {
			fmt.Println("Link: ", wish.Link)
		}
		fmt.Println("Added:", formatDate(wish.CreatedAt))
		return nil
	},
}

var wishDeleteCmd = &cobra.Command{
	Use:   "delete <wish-id>",
	Short: "Delete a wishlist item",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp()
		if err != nil {
			fmt.Fprintln(os.Stderr, "wish delete:", err)
			os.Exit(exitSysError)
		}
		defer a.Close()

		if !a.Wishlist.DeleteWish(args[0]) {
			fmt.Fprintf(os.Stderr, "wish %q not found\n", args[0])
			os.Exit(exitUserError)
		}
		fmt.Println("Deleted wish:", args[0])
		return nil
	},
}

func init() {
	wishAddCmd.Flags().StringVar(&wishAddName, "name", "", "plant name (required)")
	wishAddCmd.Flags().StringVar(&wishAddNote, "note", "", "note about the plant")
	wishAddCmd.Flags().StringVar(&wishAddLink, "link", "", "link to a listing or care guide")
	wishAddCmd.MarkFlagRequired("name")

	wishCmd.AddCommand(wishAddCmd)
	wishCmd.AddCommand(wishListCmd)
	wishCmd.AddCommand(wishShowCmd)
	wishCmd.AddCommand(wishDeleteCmd)
}
