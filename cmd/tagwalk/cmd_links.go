package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dhamidi/tagwalk/extract"
)

func newLinksCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "links [file]",
		Short: "List every anchor with its target and text",
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

			links, err := extract.Links(nav)
			if err != nil {
				return err
			}
			for _, link := range links {
				fmt.Printf("%s\t%s\n", link.Href, link.Text)
			}
			return nil
		},
	}

	return cmd
}
