package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dhamidi/tagwalk/extract"
)

func newOutlineCmd() *cobra.Command {
	var withPositions bool

	cmd := &cobra.Command{
		Use:   "outline [file]",
		Short: "Print the heading outline of a document",
		Args:  cobra.MaximumNArgs(1),
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

			headings, err := extract.Outline(nav)
			if err != nil {
				return err
			}
			for _, h := range headings {
				indent := strings.Repeat("  ", h.Level-1)
				if withPositions {
					fmt.Printf("%s%s (%s)\n", indent, h.Text, h.Position)
				} else {
					fmt.Printf("%s%s\n", indent, h.Text)
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&withPositions, "positions", "p", false, "append each heading's position")

	return cmd
}
