package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/mcaddon-labs/mcaddon/internal/branding"
	"github.com/mcaddon-labs/mcaddon/internal/config"
	"github.com/mcaddon-labs/mcaddon/internal/project"
	"github.com/mcaddon-labs/mcaddon/internal/prompt"
	"github.com/mcaddon-labs/mcaddon/internal/registry"
	"github.com/mcaddon-labs/mcaddon/internal/scaffold"
	"github.com/mcaddon-labs/mcaddon/internal/wizard"
	"github.com/spf13/cobra"
)

type projectOptions struct {
	dir   string
	yes   bool
	force bool
}

func newInitCmd() *cobra.Command {
	var opts projectOptions

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create a new add-on project",
		Long: `Create a new add-on project in the target directory.

The project name defaults to the directory name. Script module versions are
fetched from the npm registry and offered by release channel. With --yes every
question takes its default and the newest channel and version are used.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInit(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.dir, "dir", "C", "", "Project directory (default: current directory)")
	cmd.Flags().BoolVarP(&opts.yes, "yes", "y", false, "Accept defaults without prompting")
	cmd.Flags().BoolVar(&opts.force, "force", false, "Overwrite an existing project")
	return cmd
}

func newSwitchCmd() *cobra.Command {
	var opts projectOptions

	cmd := &cobra.Command{
		Use:   "switch",
		Short: "Change the script module versions of an existing project",
		Long: `Reconfigure the script module dependencies of a project created by init.

The saved project settings are kept; only the required modules and their
versions are asked again. Pack UUIDs and the script entry file are preserved.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSwitch(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.dir, "dir", "C", "", "Project directory (default: current directory)")
	cmd.Flags().BoolVarP(&opts.yes, "yes", "y", false, "Keep the required modules and use the newest versions")
	return cmd
}

func runInit(cmd *cobra.Command, opts projectOptions) error {
	dir, err := projectDir(opts.dir)
	if err != nil {
		return err
	}
	if project.Exists(dir) && !opts.force {
		return fmt.Errorf("%w: %s (use --force to overwrite, or run '%s switch')",
			scaffold.ErrProjectExists, project.ConfigPath(dir), branding.CLIName())
	}

	info := project.Defaults(dir)
	info.Language = config.Language()
	info.Auto = opts.yes

	return runProject(cmd, dir, info, scaffold.Options{Force: opts.force, Generator: buildVersion})
}

func runSwitch(cmd *cobra.Command, opts projectOptions) error {
	dir, err := projectDir(opts.dir)
	if err != nil {
		return err
	}

	info, err := project.Load(dir)
	if err != nil {
		if errors.Is(err, project.ErrNotInitialized) {
			return fmt.Errorf("%w; run '%s init' first", err, branding.CLIName())
		}
		return err
	}
	info.Auto = opts.yes

	return runProject(cmd, dir, info, scaffold.Options{Generator: buildVersion})
}

func runProject(cmd *cobra.Command, dir string, info project.Info, opts scaffold.Options) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)
	out := cmd.OutOrStdout()

	client, err := newRegistryClient(logger)
	if err != nil {
		return err
	}
	logger.Debug("using registry", "url", client.BaseURL(), "mode", info.Mode, "auto", info.Auto)

	wiz := &wizard.Wizard{
		Prompter: newPrompter(),
		Versions: client,
		Logger:   logger,
		Out:      out,
	}
	info, err = wiz.Run(ctx, info)
	if errors.Is(err, prompt.ErrAborted) {
		printWarning(out, "Aborted, nothing was written")
		return nil
	}
	if err != nil {
		return err
	}

	w := scaffold.NewWriter(dir, out, logger)
	result, err := scaffold.Generate(w, info, opts)
	if err != nil {
		return err
	}

	printSummary(out, dir, result)
	return nil
}

func printSummary(out io.Writer, dir string, result *scaffold.Result) {
	info := result.Info
	fmt.Fprintln(out)
	if info.Mode == project.ModeSwitch {
		printSuccess(out, "Updated %s", styleTitle.Render(info.Name))
	} else {
		printSuccess(out, "Created %s in %s", styleTitle.Render(info.Name), dir)
	}
	for _, dep := range info.RequiredDependencies() {
		printDetail(out, "%s  manifest %s, npm %s", dep.Package, dep.Manifest, dep.Npm)
	}

	fmt.Fprintln(out)
	printInfo(out, "Next steps:")
	printNextStep(out, "npm install")
	printNextStep(out, "npm run build")
}

func projectDir(flag string) (string, error) {
	dir := flag
	if dir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("getting current directory: %w", err)
		}
		dir = cwd
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("resolving %s: %w", dir, err)
	}
	return abs, nil
}

// newRegistryClient builds a registry client from the user settings.
func newRegistryClient(logger *log.Logger) (*registry.Client, error) {
	timeout, err := config.Timeout()
	if err != nil {
		return nil, err
	}
	return registry.NewClient(
		registry.WithBaseURL(config.Registry()),
		registry.WithHTTPClient(&http.Client{Timeout: timeout}),
		registry.WithUserAgent(branding.CLIName()+"/"+buildVersion),
		registry.WithLogger(logger),
	), nil
}

// classify is shared by commands that only need a version table.
func classify(ctx context.Context, pkg string) (registry.VersionTable, error) {
	client, err := newRegistryClient(loggerFromContext(ctx))
	if err != nil {
		return nil, err
	}
	return client.ClassifyVersions(ctx, pkg)
}
