package cli

import (
	"context"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/mcaddon-labs/mcaddon/internal/branding"
	"github.com/mcaddon-labs/mcaddon/internal/config"
	"github.com/mcaddon-labs/mcaddon/internal/prompt"
	"github.com/spf13/cobra"
)

var (
	buildVersion = "dev"
	buildCommit  = "unknown"
	buildDate    = "unknown"
)

// newPrompter builds the prompter used by interactive commands.
var newPrompter = func() prompt.Prompter {
	return prompt.New(os.Stdin, os.Stdout)
}

func newRootCmd(logOut io.Writer) *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:   branding.CLIName(),
		Short: branding.Description(),
		Long: branding.DisplayName() + ` scaffolds Minecraft Bedrock add-on projects: behavior and resource
packs, script sources, and build configuration, with @minecraft/* script module
versions picked from the npm registry.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			config.Load()

			level := log.InfoLevel
			if verbose {
				level = log.DebugLevel
			}
			cmd.SetContext(withLogger(cmd.Context(), newLogger(logOut, level)))
		},
	}

	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	root.AddCommand(newInitCmd())
	root.AddCommand(newSwitchCmd())
	root.AddCommand(newVersionsCmd())
	root.AddCommand(newValidateCmd())
	root.AddCommand(newConfigCmd())
	root.AddCommand(newVersionCmd())

	return root
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date

	root := newRootCmd(os.Stderr)
	if err := root.ExecuteContext(context.Background()); err != nil {
		printError(os.Stderr, "%v", err)
		return err
	}
	return nil
}
