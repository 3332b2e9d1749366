package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dhamidi/tagwalk/config"
	"github.com/dhamidi/tagwalk/extract"
	"github.com/dhamidi/tagwalk/fetch"
	"github.com/dhamidi/tagwalk/markup"
)

func newFetchCmd() *cobra.Command {
	var (
		save       bool
		outDir     string
		asText     bool
		asOutline  bool
		concurrent int
	)

	cmd := &cobra.Command{
		Use:   "fetch <url>...",
		Short: "Fetch one or more URLs and print or save their contents",
		Long: `Fetch every given URL. A single URL prints its body to stdout;
several URLs print a status summary. --save writes each body to a file
instead; --text and --outline run the extraction on each fetched page.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if outDir == "" {
				outDir = cfg.Output.Dir
			}

			fetcher := fetch.NewFetcher(cfg.FetcherOptions()...)
			results := fetchAll(cmd.Context(), fetcher, args, concurrent)

			var failed int
			for _, res := range results {
				if res.Err != nil {
					failed++
					fmt.Fprintf(os.Stderr, "error: %v\n", res.Err)
					continue
				}
				if err := handleResource(res.Resource, cfg, save, outDir, asText, asOutline, len(args) > 1); err != nil {
					failed++
					fmt.Fprintf(os.Stderr, "error: %v\n", err)
				}
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d fetches failed", failed, len(args))
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&save, "save", "s", false, "save each body to a file")
	cmd.Flags().StringVarP(&outDir, "out", "o", "", "directory for saved files (default from config)")
	cmd.Flags().BoolVar(&asText, "text", false, "print each page's text instead of its body")
	cmd.Flags().BoolVar(&asOutline, "outline", false, "print each page's heading outline")
	cmd.Flags().IntVar(&concurrent, "concurrency", 4, "parallel fetches for multi-URL batches")

	return cmd
}

func fetchAll(ctx context.Context, fetcher *fetch.Fetcher, urls []string, concurrent int) []fetch.Result {
	if len(urls) == 1 {
		res, err := fetcher.Fetch(ctx, urls[0])
		return []fetch.Result{{URL: urls[0], Resource: res, Err: err}}
	}
	return fetch.NewPool(fetcher, concurrent).FetchAll(ctx, urls)
}

func handleResource(res *fetch.Resource, cfg *config.Config, save bool, outDir string, asText, asOutline, summarize bool) error {
	switch {
	case save:
		path, err := fetch.NewWriter(outDir).Save(res)
		if err != nil {
			return err
		}
		fmt.Printf("%s\t%s\n", res.URL, path)
	case asText:
		nav := navigatorFor(res, cfg)
		text, err := extract.Text(nav)
		if err != nil {
			return err
		}
		fmt.Println(text)
	case asOutline:
		nav := navigatorFor(res, cfg)
		headings, err := extract.Outline(nav)
		if err != nil {
			return err
		}
		for _, h := range headings {
			fmt.Printf("%s%s\n", strings.Repeat("  ", h.Level-1), h.Text)
		}
	case summarize:
		fmt.Printf("%s\t%d bytes\t%s\n", res.URL, len(res.Body), res.ContentType)
	default:
		os.Stdout.Write(res.Body)
	}
	return nil
}

func navigatorFor(res *fetch.Resource, cfg *config.Config) *markup.Navigator {
	opts := append(cfg.NavigatorOptions(), markup.WithFilename(res.URL))
	return markup.New(res.Source(), opts...)
}
