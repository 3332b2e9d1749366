package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dhamidi/tagwalk/extract"
	"github.com/dhamidi/tagwalk/markup"
)

type foundTag struct {
	Name     string            `json:"name"`
	Classes  []string          `json:"classes,omitempty"`
	Attrs    map[string]string `json:"attrs,omitempty"`
	Depth    int               `json:"depth"`
	Position string            `json:"position"`
	Text     string            `json:"text,omitempty"`
}

func newFindCmd() *cobra.Command {
	var (
		names     []string
		classes   []string
		attrs     []string
		showAttrs bool
		showText  bool
		asJSON    bool
	)

	cmd := &cobra.Command{
		Use:   "find [file]",
		Short: "Stream tags matching a name, class, or attribute filter",
		Long: `Stream every tag matching the given filters, in document order.

Reads from a file argument, or from stdin when the argument is missing
or "-". Filters combine with AND; repeated flags of the same kind match
any of their values.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pred, err := buildPredicate(names, classes, attrs)
			if err != nil {
				return err
			}

			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			nav, cleanup, err := openNavigator(args, cfg)
			if err != nil {
				return err
			}
			defer cleanup()

			enc := json.NewEncoder(os.Stdout)
			return extract.Each(nav, pred, func(tag *markup.Tag) error {
				found := foundTag{
					Name:     tag.Name(),
					Classes:  tag.Classes(),
					Depth:    tag.Depth(),
					Position: tag.Position().String(),
				}
				if showAttrs || asJSON {
					found.Attrs = make(map[string]string)
					for _, a := range tag.Attributes() {
						found.Attrs[a.Name] = a.Value
					}
				}
				if showText {
					text, err := leadingText(nav, tag)
					if err != nil {
						return err
					}
					found.Text = text
				}
				if asJSON {
					return enc.Encode(found)
				}
				printFound(found, tag.Attributes(), showAttrs, showText)
				return nil
			})
		},
	}

	cmd.Flags().StringArrayVarP(&names, "name", "n", nil, "match tags with this name")
	cmd.Flags().StringArrayVarP(&classes, "class", "c", nil, "match tags with this class")
	cmd.Flags().StringArrayVarP(&attrs, "attr", "a", nil, "match tags with this attribute (k or k=v)")
	cmd.Flags().BoolVar(&showAttrs, "attrs", false, "print each match's attributes")
	cmd.Flags().BoolVar(&showText, "text", false, "print each match's leading text")
	cmd.Flags().BoolVar(&asJSON, "json", false, "emit one JSON object per match")

	return cmd
}

func buildPredicate(names, classes, attrs []string) (extract.Predicate, error) {
	var preds []extract.Predicate
	if len(names) > 0 {
		preds = append(preds, extract.ByName(names...))
	}
	for _, class := range classes {
		preds = append(preds, extract.HasClass(class))
	}
	for _, attr := range attrs {
		name, value, _ := strings.Cut(attr, "=")
		if name == "" {
			return nil, fmt.Errorf("invalid attribute filter %q", attr)
		}
		preds = append(preds, extract.WithAttr(name, value))
	}
	if len(preds) == 0 {
		return nil, fmt.Errorf("at least one of --name, --class, or --attr is required")
	}
	return extract.And(preds...), nil
}

func printFound(found foundTag, attrs []markup.Attribute, showAttrs, showText bool) {
	line := fmt.Sprintf("%s\t<%s>", found.Position, found.Name)
	if len(found.Classes) > 0 {
		line += " ." + strings.Join(found.Classes, " .")
	}
	if showAttrs {
		for _, a := range attrs {
			line += fmt.Sprintf(" %s=%q", a.Name, a.Value)
		}
	}
	if showText && found.Text != "" {
		line += "\t" + found.Text
	}
	fmt.Println(line)
}

// leadingText reads the text immediately inside a just-opened tag, then
// skips past the rest of its subtree.
func leadingText(nav *markup.Navigator, tag *markup.Tag) (string, error) {
	if tag.Closed() {
		return "", nil
	}
	if _, err := nav.Descend(); err != nil {
		return "", err
	}
	text := strings.TrimSpace(nav.Content())
	if err := nav.Close(tag); err != nil {
		return "", err
	}
	return text, nil
}
