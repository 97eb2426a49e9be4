package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/avadakedavra-wp/fazrepo/internal/config"
	"github.com/avadakedavra-wp/fazrepo/internal/templates"
)

var (
	templatesJSON     bool
	templatesCategory string
)

var templatesCmd = &cobra.Command{
	Use:   "templates",
	Short: "List available project templates",
	Args:  cobra.NoArgs,
	RunE:  runTemplates,
}

func init() {
	templatesCmd.Flags().BoolVar(&templatesJSON, "json", false, "Output in JSON format")
	templatesCmd.Flags().StringVar(&templatesCategory, "category", "", "Only show templates in this category (e.g. full-stack, backend, library)")
	rootCmd.AddCommand(templatesCmd)
}

func runTemplates(cmd *cobra.Command, args []string) error {
	list := templates.List()

	if templatesCategory != "" {
		category, ok := templates.ParseCategory(templatesCategory)
		if !ok {
			return fmt.Errorf("unknown category %q", templatesCategory)
		}
		filtered := list[:0]
		for _, t := range list {
			if t.Category == category {
				filtered = append(filtered, t)
			}
		}
		list = filtered
	}

	format, err := outputFormat("", templatesJSON)
	if err != nil {
		return err
	}
	if format != config.FormatText {
		return writeStructured(cmd.OutOrStdout(), format, list)
	}

	if len(list) == 0 {
		fmt.Fprintf(cmd.OutOrStdout(), "No templates in category %q.\n", strings.ToLower(templatesCategory))
		return nil
	}
	newPrinter(cmd.OutOrStdout(), colorEnabled(cmd.OutOrStdout())).templateList(list)
	return nil
}
