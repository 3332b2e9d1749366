package main

import (
	"fmt"
	"os"

	"github.com/dhamidi/tagwalk/config"
	"github.com/dhamidi/tagwalk/markup"
)

// loadConfig resolves the effective configuration for this invocation,
// honoring the --config flag.
func loadConfig() (*config.Config, error) {
	cfg, err := config.LoadOrDefault(rootConfigPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}

// openNavigator builds a navigator over the file named by args, or over
// stdin when args is empty or names "-". The returned cleanup function
// releases the input.
func openNavigator(args []string, cfg *config.Config) (*markup.Navigator, func(), error) {
	opts := cfg.NavigatorOptions()

	if len(args) == 0 || args[0] == "-" {
		opts = append(opts, markup.WithFilename("<stdin>"))
		return markup.NewFromReader(os.Stdin, opts...), func() {}, nil
	}

	path := args[0]
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("open %s: %w", path, err)
	}
	opts = append(opts, markup.WithFilename(path))
	return markup.NewFromReader(f, opts...), func() { f.Close() }, nil
}
