package cli

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/avadakedavra-wp/fazrepo/internal/branding"
	"github.com/avadakedavra-wp/fazrepo/internal/config"
	"github.com/avadakedavra-wp/fazrepo/internal/manifest"
	"github.com/avadakedavra-wp/fazrepo/internal/scaffold"
	"github.com/avadakedavra-wp/fazrepo/internal/templates"
)

var (
	createTemplate    string
	createDescription string
	createAuthor      string
	createVersion     string
	createLicense     string
	createOutput      string
	createDir         string
)

var createCmd = &cobra.Command{
	Use:   "create <name>",
	Short: "Create a new project from a template",
	Long: `Create a new project directory from one of the built-in templates.

Examples:
  fazrepo create my-app
  fazrepo create my-api --template api-express --author "Ada Lovelace"
  fazrepo create my-lib -t library-typescript --version 1.0.0 --output json`,
	Args: cobra.ExactArgs(1),
	RunE: runCreate,
}

func init() {
	createCmd.Flags().StringVarP(&createTemplate, "template", "t", "", "Template to use (default from settings.default_template)")
	createCmd.Flags().StringVar(&createDescription, "description", scaffold.DefaultDescription, "Project description")
	createCmd.Flags().StringVar(&createAuthor, "author", scaffold.DefaultAuthor, "Project author")
	createCmd.Flags().StringVar(&createVersion, "version", scaffold.DefaultVersion, "Initial project version")
	createCmd.Flags().StringVar(&createLicense, "license", scaffold.DefaultLicense, "Project license")
	createCmd.Flags().StringVar(&createOutput, "output", "", "Output format: text, json, or yaml (default from settings.output_format)")
	createCmd.Flags().StringVar(&createDir, "dir", "", "Directory to create the project in (default from settings.project_directory)")
	_ = createCmd.RegisterFlagCompletionFunc("template", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return templates.Names(), cobra.ShellCompDirectiveNoFileComp
	})
	rootCmd.AddCommand(createCmd)
}

func runCreate(cmd *cobra.Command, args []string) error {
	format, err := outputFormat(createOutput, false)
	if err != nil {
		return err
	}

	tmpl := createTemplate
	if tmpl == "" {
		tmpl = appConfig.Settings.DefaultTemplate
	}
	baseDir := createDir
	if baseDir == "" {
		baseDir = appConfig.Settings.ProjectDirectory
	}

	cfg := scaffold.NewProjectConfig(args[0], tmpl)
	cfg.Description = createDescription
	cfg.Author = createAuthor
	cfg.Version = createVersion
	cfg.License = createLicense

	gen := scaffold.NewGenerator(
		scaffold.WithBaseDir(baseDir),
		scaffold.WithLogger(logger),
	)
	res := gen.Generate(cmd.Context(), cfg)

	if format != config.FormatText {
		if err := writeStructured(cmd.OutOrStdout(), format, res); err != nil {
			return err
		}
	} else {
		p := newPrinter(cmd.OutOrStdout(), colorEnabled(cmd.OutOrStdout()))
		p.generation(res)
		if res.Success {
			printNextSteps(p, res.ProjectPath)
		} else if hint := nameHint(cfg.Name); hint != "" {
			p.println()
			p.println(hint)
		}
	}

	if !res.Success {
		return errors.Join(errReported, fmt.Errorf("creating project %q failed", cfg.Name))
	}
	return nil
}

// nameHint suggests a valid spelling for a rejected project name.
func nameHint(name string) string {
	if err := scaffold.ValidateName(name); err == nil || name == "" {
		return ""
	}
	return fmt.Sprintf("Try: %s create %s", branding.CLIName(), scaffold.SanitizeName(name))
}

// printNextSteps suggests the first of the dev, build, and test scripts the
// generated package.json defines.
func printNextSteps(p *printer, path string) {
	p.println()
	p.println("Next steps:")
	p.printf("  cd %s\n", path)
	p.println("  npm install")

	m, err := manifest.ParseFile(filepath.Join(path, manifest.FileName))
	if err != nil {
		logger.Debug("skipping script hint", "error", err)
		return
	}
	for _, script := range []string{"dev", "build", "test"} {
		if _, ok := m.Scripts[script]; ok {
			p.printf("  npm run %s\n", script)
			return
		}
	}
}
