package main

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"

	"github.com/dhamidi/tagwalk/config"
	"github.com/dhamidi/tagwalk/extract"
)

var watchLog = commonlog.GetLogger("tagwalk.watch")

func newWatchCmd() *cobra.Command {
	var mode string

	cmd := &cobra.Command{
		Use:   "watch <file>",
		Short: "Re-run an extraction whenever a file changes",
		Long: `Watch a local file and re-run an extraction each time it changes.

The mode selects the extraction: text, links, or outline. Runs until
interrupted.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			runner, err := extractionRunner(mode)
			if err != nil {
				return err
			}
			path := args[0]

			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			watcher, err := fsnotify.NewWatcher()
			if err != nil {
				return fmt.Errorf("start watcher: %w", err)
			}
			defer watcher.Close()

			// watch the directory, not the file: editors often
			// replace files on save, which drops a file-level watch
			dir := filepath.Dir(path)
			if err := watcher.Add(dir); err != nil {
				return fmt.Errorf("watch %s: %w", dir, err)
			}

			target, err := filepath.Abs(path)
			if err != nil {
				return fmt.Errorf("resolve %s: %w", path, err)
			}

			if err := runner(path, cfg); err != nil {
				fmt.Printf("error: %v\n", err)
			}

			var debounce <-chan time.Time
			for {
				select {
				case <-cmd.Context().Done():
					return nil
				case event, ok := <-watcher.Events:
					if !ok {
						return nil
					}
					changed, _ := filepath.Abs(event.Name)
					if changed != target {
						continue
					}
					if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
						continue
					}
					watchLog.Debugf("change: %s", event)
					debounce = time.After(100 * time.Millisecond)
				case err, ok := <-watcher.Errors:
					if !ok {
						return nil
					}
					watchLog.Errorf("watch: %v", err)
				case <-debounce:
					debounce = nil
					fmt.Printf("--- %s @ %s ---\n", path, time.Now().Format(time.TimeOnly))
					if err := runner(path, cfg); err != nil {
						fmt.Printf("error: %v\n", err)
					}
				}
			}
		},
	}

	cmd.Flags().StringVarP(&mode, "mode", "m", "text", "extraction to run: text, links, or outline")

	return cmd
}

func extractionRunner(mode string) (func(path string, cfg *config.Config) error, error) {
	switch mode {
	case "text":
		return func(path string, cfg *config.Config) error {
			nav, cleanup, err := openNavigator([]string{path}, cfg)
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
		}, nil
	case "links":
		return func(path string, cfg *config.Config) error {
			nav, cleanup, err := openNavigator([]string{path}, cfg)
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
		}, nil
	case "outline":
		return func(path string, cfg *config.Config) error {
			nav, cleanup, err := openNavigator([]string{path}, cfg)
			if err != nil {
				return err
			}
			defer cleanup()
			headings, err := extract.Outline(nav)
			if err != nil {
				return err
			}
			for _, h := range headings {
				fmt.Printf("%s%s\n", strings.Repeat("  ", h.Level-1), h.Text)
			}
			return nil
		}, nil
	default:
		return nil, fmt.Errorf("unknown mode %q: want text, links, or outline", mode)
	}
}
