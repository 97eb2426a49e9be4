package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/avadakedavra-wp/fazrepo/internal/config"
	"github.com/avadakedavra-wp/fazrepo/internal/probe"
)

var (
	checkDetailed bool
	checkOnly     string
	checkRequire  []string
	checkJSON     bool
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Check versions of all package managers",
	Long: `Look up npm, yarn, pnpm, and bun on PATH and report their versions.

Examples:
  fazrepo check --detailed
  fazrepo check --only npm,pnpm
  fazrepo check --require "npm:>=9" --require "pnpm:^8"`,
	Args: cobra.NoArgs,
	RunE: runCheck,
}

func init() {
	addCheckFlags(checkCmd)
	rootCmd.AddCommand(checkCmd)
}

// addCheckFlags registers the check flags on cmd. The root command shares
// them because running fazrepo without a command performs a check.
func addCheckFlags(cmd *cobra.Command) {
	cmd.Flags().BoolVarP(&checkDetailed, "detailed", "d", false, "Show paths and error details")
	cmd.Flags().StringVarP(&checkOnly, "only", "o", "", "Only check these package managers (comma-separated: npm,yarn,pnpm,bun)")
	cmd.Flags().StringArrayVar(&checkRequire, "require", nil, "Fail unless a manager satisfies a version constraint (name:constraint)")
	cmd.Flags().BoolVar(&checkJSON, "json", false, "Output results as JSON")
}

func runCheck(cmd *cobra.Command, args []string) error {
	reqs := make([]probe.Requirement, 0, len(checkRequire))
	for _, s := range checkRequire {
		req, err := probe.ParseRequirement(s)
		if err != nil {
			return err
		}
		reqs = append(reqs, req)
	}

	selection := probe.ParseSelection(checkOnly)
	prober := probe.New(probe.WithLogger(logger))
	if len(probe.Select(prober.Supported(), selection)) == 0 {
		return fmt.Errorf("no valid package managers specified (supported: %s)", strings.Join(probe.Names(), ", "))
	}

	results := prober.CheckAll(cmd.Context(), selection)

	format, err := outputFormat("", checkJSON)
	if err != nil {
		return err
	}
	if format == config.FormatText {
		detailed := checkDetailed || appConfig.Settings.DetailedOutput
		newPrinter(cmd.OutOrStdout(), colorEnabled(cmd.OutOrStdout())).checkResults(results, detailed)
	} else if err := writeStructured(cmd.OutOrStdout(), format, results); err != nil {
		return err
	}

	unmet := probe.Unmet(results, reqs)
	if len(unmet) == 0 {
		return nil
	}
	p := newPrinter(cmd.ErrOrStderr(), colorEnabled(cmd.ErrOrStderr()))
	for _, msg := range unmet {
		p.errorLine("requirement not met: " + msg)
	}
	return errors.Join(errReported, fmt.Errorf("%d requirement(s) not met", len(unmet)))
}
