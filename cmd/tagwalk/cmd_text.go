package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dhamidi/tagwalk/extract"
)

func newTextCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "text [file]",
		Short: "Print the document text, stripped of markup",
		Long: `Print the text of the whole document with all markup removed.

Script and style bodies are skipped; whitespace is collapsed to single
spaces. Reads from a file argument, or from stdin when the argument is
missing or "-".`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			nav, cleanup, err := openNavigator(args, cfg)
			if err != nil {
				return err
			}
			defer cleanup()

			text, err := extract.Text(nav)
			if err != nil {
				return err
			}
			fmt.Println(text)
			return nil
		},
	}

	return cmd
}
