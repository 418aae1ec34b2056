package wizard

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/mcaddon-labs/mcaddon/internal/project"
	"github.com/mcaddon-labs/mcaddon/internal/prompt"
	"github.com/mcaddon-labs/mcaddon/internal/registry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSource struct {
	tables map[string]registry.VersionTable
	err    error
	calls  []string
}

func (f *fakeSource) ClassifyVersions(_ context.Context, pkg string) (registry.VersionTable, error) {
	f.calls = append(f.calls, pkg)
	if f.err != nil {
		return nil, f.err
	}
	return f.tables[pkg], nil
}

func newSource() *fakeSource {
	return &fakeSource{tables: map[string]registry.VersionTable{
		ServerPackage: {
			"1.1.0-beta": {"1.1.0-beta.1", "1.1.0-beta.2"},
			"1.0.0":      {"1.0.0"},
		},
		"@minecraft/server-ui": {
			"2.0.0-beta": {"2.0.0-beta.1"},
			"1.3.0":      {"1.3.0"},
		},
	}}
}

func newWizard(input string, src VersionSource) (*Wizard, *bytes.Buffer) {
	var out bytes.Buffer
	return &Wizard{
		Prompter: prompt.NewLine(strings.NewReader(input), &out),
		Versions: src,
		Logger:   log.New(io.Discard),
		Out:      &out,
	}, &out
}

func TestRun_InitInteractive(t *testing.T) {
	input := strings.Join([]string{
		"",        // name: default
		"2.0.0",   // version
		"My pack", // description
		"n",       // resource pack
		"y",       // allow eval
		"1",       // language: js, the default, listed first
		"1",       // server channel: 1.1.0-beta
		"1",       // server version: 1.1.0-beta.2
		"y",       // require server-ui
		"2",       // ui channel: 1.3.0
		"1",       // ui version
		"n",       // gametest
		"",        // net (default no)
		"",        // admin (default no)
	}, "\n") + "\n"

	src := newSource()
	w, out := newWizard(input, src)

	start := project.Defaults("/work/cool-addon")
	start.Auto = false

	info, err := w.Run(context.Background(), start)
	require.NoError(t, err)

	assert.Equal(t, "cool-addon", info.Name)
	assert.Equal(t, "2.0.0", info.Version)
	assert.Equal(t, [3]int{2, 0, 0}, info.VersionArray)
	assert.Equal(t, "My pack", info.Description)
	assert.False(t, info.Res)
	assert.True(t, info.AllowEval)
	assert.Equal(t, project.LanguageJS, info.Language)
	assert.False(t, info.Auto)

	server, ok := info.Dependency(ServerPackage)
	require.True(t, ok)
	assert.Equal(t, project.Dependency{Package: ServerPackage, Required: true, Manifest: "1.1.0-beta", Npm: "1.1.0-beta.2"}, server)

	ui, _ := info.Dependency("@minecraft/server-ui")
	assert.Equal(t, "1.3.0", ui.Manifest)
	assert.Equal(t, "1.3.0", ui.Npm)

	gametest, ok := info.Dependency("@minecraft/server-gametest")
	require.True(t, ok)
	assert.False(t, gametest.Required)

	assert.Equal(t, []string{ServerPackage, "@minecraft/server-ui"}, src.calls)
	assert.Contains(t, out.String(), "This utility will walk you through creating a project.")
	assert.Contains(t, out.String(), "Select your @minecraft/server version in manifest")
}

func TestRun_InitAuto(t *testing.T) {
	src := newSource()
	w, out := newWizard("", src)

	info, err := w.Run(context.Background(), project.Defaults("/work/auto"))
	require.NoError(t, err)

	assert.Equal(t, "auto", info.Name)
	server, _ := info.Dependency(ServerPackage)
	assert.Equal(t, "1.1.0-beta", server.Manifest)
	assert.Equal(t, "1.1.0-beta.2", server.Npm)
	assert.Len(t, info.RequiredDependencies(), 1)
	assert.Equal(t, []string{ServerPackage}, src.calls)
	assert.NotContains(t, out.String(), "walk you through")
}

func TestRun_SwitchKeepsProjectFields(t *testing.T) {
	start := project.Defaults("/work/existing")
	start.Mode = project.ModeSwitch
	start.Auto = false
	start.Description = "kept"
	start = start.WithDependency(project.Dependency{Package: "@minecraft/server-ui", Required: true, Manifest: "1.3.0", Npm: "1.3.0"})

	// server: channel 2 (1.0.0), version 1; ui: keep required (default yes), channel 1, version 1;
	// remaining optional packages default to no.
	input := "2\n1\n\n1\n1\n\n\n\n"
	w, _ := newWizard(input, newSource())

	info, err := w.Run(context.Background(), start)
	require.NoError(t, err)

	assert.Equal(t, "kept", info.Description)
	server, _ := info.Dependency(ServerPackage)
	assert.Equal(t, "1.0.0", server.Manifest)
	ui, _ := info.Dependency("@minecraft/server-ui")
	assert.True(t, ui.Required)
	assert.Equal(t, "2.0.0-beta", ui.Manifest)
	assert.Equal(t, "2.0.0-beta.1", ui.Npm)
}

func TestRun_FetchFailure(t *testing.T) {
	src := &fakeSource{err: registry.ErrNetwork}
	w, _ := newWizard("", src)

	_, err := w.Run(context.Background(), project.Defaults("/work/x"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, registry.ErrNetwork))
}

func TestRun_NoVersions(t *testing.T) {
	src := &fakeSource{tables: map[string]registry.VersionTable{ServerPackage: {}}}
	w, _ := newWizard("", src)

	_, err := w.Run(context.Background(), project.Defaults("/work/x"))
	assert.True(t, errors.Is(err, ErrNoVersions))
}

func TestAskProjectInfo_InvalidVersion(t *testing.T) {
	w, _ := newWizard("\n1.0\n", newSource())

	_, err := w.AskProjectInfo(project.Defaults("/work/x"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid version")
}

func TestSelectDependency(t *testing.T) {
	w, _ := newWizard("1\n2\n", newSource())

	channel, version, err := w.SelectDependency(ServerPackage, newSource().tables[ServerPackage])
	require.NoError(t, err)
	assert.Equal(t, "1.1.0-beta", channel)
	assert.Equal(t, "1.1.0-beta.1", version)
}

func TestSelectDependency_EmptyTable(t *testing.T) {
	w, _ := newWizard("", newSource())

	_, _, err := w.SelectDependency("pkg", registry.VersionTable{})
	assert.True(t, errors.Is(err, ErrNoVersions))
}

func TestAskProjectInfo_LanguageDefaultFirst(t *testing.T) {
	start := project.Defaults("/work/x")
	start.Language = project.LanguageTS

	// Every answer empty: defaults for text and yes/no, first option for language.
	w, out := newWizard("\n\n\n\n\n\n", newSource())
	info, err := w.AskProjectInfo(start)
	require.NoError(t, err)

	assert.Equal(t, project.LanguageTS, info.Language)
	assert.Contains(t, out.String(), "  1) ts\n  2) js")
}

func TestLanguageOptions(t *testing.T) {
	assert.Equal(t, []string{"js", "ts"}, languageOptions(project.LanguageJS))
	assert.Equal(t, []string{"ts", "js"}, languageOptions(project.LanguageTS))
	assert.Equal(t, Languages, languageOptions("lua"))
}
