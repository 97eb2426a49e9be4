package cli

import (
	"github.com/spf13/cobra"

	"github.com/avadakedavra-wp/fazrepo/internal/branding"
	"github.com/avadakedavra-wp/fazrepo/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize " + branding.CLIName() + " in the current directory",
	Long:  `Write a ` + branding.ConfigFile() + ` settings file listing the built-in templates.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Init(workDir, buildVersion)
		if err != nil {
			return err
		}
		logger.Debug("config initialized", "path", config.FilePath(workDir), "templates", len(cfg.Templates))

		p := newPrinter(cmd.OutOrStdout(), colorEnabled(cmd.OutOrStdout()))
		p.println(p.paint(styleSuccess.Bold(true), "🚀 "+branding.DisplayName()+" initialized successfully!"))
		p.printf("You can now run %s to check package manager versions or %s to create projects.\n",
			p.paint(styleAccent, branding.CLIName()+" check"),
			p.paint(styleAccent, branding.CLIName()+" create"))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
