package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/avadakedavra-wp/fazrepo/internal/config"
	"github.com/avadakedavra-wp/fazrepo/internal/probe"
)

var listJSON bool

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all supported package managers",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func init() {
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Output in JSON format")
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	managers := probe.New(probe.WithLogger(logger)).Supported()

	format, err := outputFormat("", listJSON)
	if err != nil {
		return err
	}
	if format != config.FormatText {
		return writeStructured(cmd.OutOrStdout(), format, managers)
	}

	p := newPrinter(cmd.OutOrStdout(), colorEnabled(cmd.OutOrStdout()))
	p.header("📦 Supported package managers:")
	p.println()

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tDISPLAY NAME\tCOMMAND\tDESCRIPTION")
	for _, pm := range managers {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", pm.Name, pm.DisplayName, pm.Command, pm.Description)
	}
	return w.Flush()
}
