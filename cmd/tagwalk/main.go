package main

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"

	_ "github.com/tliron/commonlog/simple"
)

var (
	rootVerbose    int
	rootConfigPath string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "tagwalk",
		Short: "Walk and extract from HTML-like markup",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			commonlog.Configure(rootVerbose, nil)
		},
	}

	rootCmd.PersistentFlags().CountVarP(&rootVerbose, "verbose", "v", "increase log verbosity")
	rootCmd.PersistentFlags().StringVar(&rootConfigPath, "config", "", "path to the config file")

	rootCmd.AddCommand(newFindCmd())
	rootCmd.AddCommand(newTextCmd())
	rootCmd.AddCommand(newLinksCmd())
	rootCmd.AddCommand(newOutlineCmd())
	rootCmd.AddCommand(newFetchCmd())
	rootCmd.AddCommand(newWatchCmd())
	rootCmd.AddCommand(newConfigCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
