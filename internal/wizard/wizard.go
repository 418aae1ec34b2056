// Package wizard walks the user through the questions that describe an
// add-on project. Every step takes a project.Info and returns an updated
// copy; nothing is shared between steps except that value.
package wizard

import (
	"context"
	"errors"
	"fmt"
	"io"
	"slices"

	"github.com/charmbracelet/log"
	"github.com/mcaddon-labs/mcaddon/internal/project"
	"github.com/mcaddon-labs/mcaddon/internal/prompt"
	"github.com/mcaddon-labs/mcaddon/internal/registry"
)

// ServerPackage is the script module every project depends on.
const ServerPackage = "@minecraft/server"

// OptionalPackages are script modules the user may opt into.
var OptionalPackages = []string{
	"@minecraft/server-ui",
	"@minecraft/server-gametest",
	"@minecraft/server-net",
	"@minecraft/server-admin",
}

// Languages offered for the script entry point.
var Languages = []string{project.LanguageTS, project.LanguageJS}

// ErrNoVersions is returned when a required package has nothing to select.
var ErrNoVersions = errors.New("no versions available")

// VersionSource classifies a package's published versions into channels.
type VersionSource interface {
	ClassifyVersions(ctx context.Context, pkg string) (registry.VersionTable, error)
}

// Wizard asks the project questions.
type Wizard struct {
	Prompter prompt.Prompter
	Versions VersionSource
	Logger   *log.Logger
	Out      io.Writer
}

func (w *Wizard) logger() *log.Logger {
	if w.Logger == nil {
		return log.Default()
	}
	return w.Logger
}

func (w *Wizard) out() io.Writer {
	if w.Out == nil {
		return io.Discard
	}
	return w.Out
}

// Run executes the steps for info's mode. In init mode the project questions
// are asked unless info.Auto is set; dependency versions are chosen in both
// modes, resolving to the newest channel and version when info.Auto is set.
func (w *Wizard) Run(ctx context.Context, info project.Info) (project.Info, error) {
	var err error
	if info.Mode == project.ModeInit && !info.Auto {
		info, err = w.AskProjectInfo(info)
		if err != nil {
			return info, err
		}
	}
	return w.AskDependencies(ctx, info)
}

// AskProjectInfo asks for name, version, description, resource pack, eval
// permission, and language.
func (w *Wizard) AskProjectInfo(info project.Info) (project.Info, error) {
	fmt.Fprintln(w.out(), "This utility will walk you through creating a project.")
	fmt.Fprintln(w.out(), "Press ^C at any time to quit.")

	name, err := w.Prompter.Input("Project name", info.Name)
	if err != nil {
		return info, err
	}
	if name == "" {
		return info, fmt.Errorf("project name must not be empty")
	}

	version, err := w.Prompter.Input("Version", info.Version)
	if err != nil {
		return info, err
	}
	next, err := info.WithVersion(version)
	if err != nil {
		return info, err
	}

	description, err := w.Prompter.Input("Description", info.Description)
	if err != nil {
		return info, err
	}

	res, err := w.Prompter.Confirm("Create resource_packs?", info.Res)
	if err != nil {
		return info, err
	}

	allowEval, err := w.Prompter.Confirm("Allow eval and new Function?", info.AllowEval)
	if err != nil {
		return info, err
	}

	language, err := w.Prompter.Select("Language:", languageOptions(info.Language))
	if err != nil {
		return info, err
	}

	next.Name = name
	next.Description = description
	next.Res = res
	next.AllowEval = allowEval
	next.Language = language
	next.Auto = false
	next.Mode = project.ModeInit
	return next, nil
}

// languageOptions lists Languages with current first, so accepting the
// first option keeps the configured default.
func languageOptions(current string) []string {
	if !slices.Contains(Languages, current) {
		return Languages
	}
	out := []string{current}
	for _, l := range Languages {
		if l != current {
			out = append(out, l)
		}
	}
	return out
}

// AskDependencies decides which script modules the project requires and
// which versions of each to use.
func (w *Wizard) AskDependencies(ctx context.Context, info project.Info) (project.Info, error) {
	packages := append([]string{ServerPackage}, OptionalPackages...)

	for _, pkg := range packages {
		prev, _ := info.Dependency(pkg)

		required := pkg == ServerPackage || prev.Required
		if pkg != ServerPackage && !info.Auto {
			var err error
			required, err = w.Prompter.Confirm(fmt.Sprintf("Require %s?", pkg), prev.Required)
			if err != nil {
				return info, err
			}
		}
		if !required {
			info = info.WithDependency(project.Dependency{Package: pkg})
			continue
		}

		w.logger().Info("Getting the latest dependency versions", "package", pkg)
		table, err := w.Versions.ClassifyVersions(ctx, pkg)
		if err != nil {
			return info, fmt.Errorf("fetching versions of %s: %w", pkg, err)
		}

		var channel, version string
		if info.Auto {
			var ok bool
			channel, version, ok = registry.Latest(table)
			if !ok {
				return info, fmt.Errorf("%w for %s", ErrNoVersions, pkg)
			}
		} else {
			channel, version, err = w.SelectDependency(pkg, table)
			if err != nil {
				return info, err
			}
		}

		w.logger().Debug("selected dependency", "package", pkg, "manifest", channel, "npm", version)
		info = info.WithDependency(project.Dependency{
			Package:  pkg,
			Required: true,
			Manifest: channel,
			Npm:      version,
		})
	}

	return info, nil
}

// SelectDependency asks for a channel and then for a version within it.
func (w *Wizard) SelectDependency(pkg string, table registry.VersionTable) (channel, version string, err error) {
	channels := registry.Channels(table)
	if len(channels) == 0 {
		return "", "", fmt.Errorf("%w for %s", ErrNoVersions, pkg)
	}

	channel, err = w.Prompter.Select(fmt.Sprintf("Select your %s version in manifest", pkg), channels)
	if err != nil {
		return "", "", err
	}

	versions, err := registry.Versions(table, channel)
	if err != nil {
		return "", "", err
	}

	version, err = w.Prompter.Select(fmt.Sprintf("Select your %s version in npm", pkg), versions)
	if err != nil {
		return "", "", err
	}
	return channel, version, nil
}
