package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var (
	apiFlag string
	keyFlag string
	rootCmd = &cobra.Command{
		Use:   "trovectl",
		Short: "CLI client for the trove REST API",
	}
)

func main() {
	rootCmd.PersistentFlags().StringVarP(&apiFlag, "api", "a", "http://localhost:8080", "Trove service base URL")
	rootCmd.PersistentFlags().StringVarP(&keyFlag, "key", "k", os.Getenv("TROVE_API_KEY"), "API key (defaults to TROVE_API_KEY)")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List items, optionally filtered by type and tags",
		RunE: func(cmd *cobra.Command, args []string) error {
			typ, _ := cmd.Flags().GetString("type")
			tags, _ := cmd.Flags().GetStringSlice("tags")
			return runList(newClient(), typ, tags, os.Stdout)
		},
	}
	listCmd.Flags().StringP("type", "t", "", "Only items of this type")
	listCmd.Flags().StringSlice("tags", nil, "Only items carrying every listed tag")
	rootCmd.AddCommand(listCmd)

	getCmd := &cobra.Command{
		Use:   "get <id>",
		Short: "Fetch one item by id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGet(newClient(), args[0], os.Stdout)
		},
	}
	rootCmd.AddCommand(getCmd)

	createCmd := &cobra.Command{
		Use:   "create",
		Short: "Create an item from flags",
		RunE: func(cmd *cobra.Command, args []string) error {
			typ, _ := cmd.Flags().GetString("type")
			title, _ := cmd.Flags().GetString("title")
			content, _ := cmd.Flags().GetString("content")
			tags, _ := cmd.Flags().GetStringSlice("tags")
			if typ == "" || title == "" {
				return fmt.Errorf("--type and --title required")
			}
			return runCreate(newClient(), typ, title, content, tags, os.Stdout)
		},
	}
	createCmd.Flags().StringP("type", "t", "note", "Item type (note, task, event, ...)")
	createCmd.Flags().String("title", "", "Item title (required)")
	createCmd.Flags().String("content", "", "Item content")
	createCmd.Flags().StringSlice("tags", nil, "Item tags")
	rootCmd.AddCommand(createCmd)

	captureCmd := &cobra.Command{
		Use:   "capture [text]",
		Short: "Quick-capture free text into a structured item",
		Long:  "Parses the first line for #tags and a title; remaining lines become content. Reads stdin when no argument is given.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var text string
			if len(args) == 1 {
				text = args[0]
			} else {
				b, err := readAllStdin()
				if err != nil {
					return err
				}
				text = string(b)
			}
			if strings.TrimSpace(text) == "" {
				return fmt.Errorf("nothing to capture")
			}
			return runCapture(newClient(), text, os.Stdout)
		},
	}
	rootCmd.AddCommand(captureCmd)

	rmCmd := &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete an item by id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDelete(newClient(), args[0], os.Stdout)
		},
	}
	rootCmd.AddCommand(rmCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
