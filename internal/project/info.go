package project

import (
	"fmt"
	"path/filepath"
	"slices"

	"github.com/Masterminds/semver/v3"
)

// Mode selects between creating a project and reconfiguring an existing one.
type Mode string

const (
	ModeInit   Mode = "init"
	ModeSwitch Mode = "switch"
)

// Script languages accepted for the behavior pack entry point.
const (
	LanguageTS = "ts"
	LanguageJS = "js"
)

// Default project layout, relative to the project root.
const (
	DefaultBehaviorPath = "behavior_packs/"
	DefaultResourcePath = "resource_packs/"
	DefaultScriptsPath  = "scripts/"
	DefaultVersion      = "1.0.0"
)

// Dependency records whether a script module is required and which versions
// were chosen for it.
type Dependency struct {
	Package  string `yaml:"package"`
	Required bool   `yaml:"required"`
	// Manifest is the channel key written into the pack manifest.
	Manifest string `yaml:"manifest,omitempty"`
	// Npm is the concrete version written into package.json.
	Npm string `yaml:"npm,omitempty"`
}

// UUIDs keeps pack and module identities stable across regenerations.
type UUIDs struct {
	BehaviorHeader string `yaml:"behavior_header,omitempty"`
	BehaviorData   string `yaml:"behavior_data,omitempty"`
	BehaviorScript string `yaml:"behavior_script,omitempty"`
	ResourceHeader string `yaml:"resource_header,omitempty"`
	ResourceModule string `yaml:"resource_module,omitempty"`
}

// Info describes an add-on project.
type Info struct {
	Name         string       `yaml:"name"`
	Description  string       `yaml:"description"`
	Version      string       `yaml:"version"`
	VersionArray [3]int       `yaml:"version_array,flow"`
	AllowEval    bool         `yaml:"allow_eval"`
	Res          bool         `yaml:"res"`
	Language     string       `yaml:"language"`
	BehPath      string       `yaml:"beh_path"`
	ResPath      string       `yaml:"res_path"`
	ScriptsPath  string       `yaml:"scripts_path"`
	Dependencies []Dependency `yaml:"dependencies,omitempty"`
	UUIDs        UUIDs        `yaml:"uuids"`

	// Mode and Auto describe the current run and are never persisted.
	Mode Mode `yaml:"-"`
	Auto bool `yaml:"-"`
}

// Defaults returns the init-mode starting point for a project in dir. The
// project name defaults to the directory's base name.
func Defaults(dir string) Info {
	return Info{
		Name:         filepath.Base(dir),
		Description:  "",
		Version:      DefaultVersion,
		VersionArray: [3]int{1, 0, 0},
		AllowEval:    false,
		Res:          true,
		Language:     LanguageJS,
		BehPath:      DefaultBehaviorPath,
		ResPath:      DefaultResourcePath,
		ScriptsPath:  DefaultScriptsPath,
		Mode:         ModeInit,
		Auto:         true,
	}
}

// ScriptExt returns the file extension of the script entry point.
func (i Info) ScriptExt() string {
	if i.Language == LanguageJS {
		return "js"
	}
	return "ts"
}

// Dependency looks up the recorded choice for pkg.
func (i Info) Dependency(pkg string) (Dependency, bool) {
	for _, d := range i.Dependencies {
		if d.Package == pkg {
			return d, true
		}
	}
	return Dependency{}, false
}

// RequiredDependencies returns the dependencies marked as required.
func (i Info) RequiredDependencies() []Dependency {
	var out []Dependency
	for _, d := range i.Dependencies {
		if d.Required {
			out = append(out, d)
		}
	}
	return out
}

// WithDependency returns a copy of i with dep added, replacing any existing
// entry for the same package.
func (i Info) WithDependency(dep Dependency) Info {
	deps := slices.Clone(i.Dependencies)
	idx := slices.IndexFunc(deps, func(d Dependency) bool { return d.Package == dep.Package })
	if idx >= 0 {
		deps[idx] = dep
	} else {
		deps = append(deps, dep)
	}
	i.Dependencies = deps
	return i
}

// WithVersion returns a copy of i with Version and VersionArray set from v.
func (i Info) WithVersion(v string) (Info, error) {
	arr, err := ParseVersion(v)
	if err != nil {
		return i, err
	}
	i.Version = v
	i.VersionArray = arr
	return i, nil
}

// ParseVersion validates a MAJOR.MINOR.PATCH project version and returns its
// numeric parts. Pre-release and build suffixes are rejected because pack
// manifests only carry three integers.
func ParseVersion(v string) ([3]int, error) {
	sv, err := semver.StrictNewVersion(v)
	if err != nil {
		return [3]int{}, fmt.Errorf("invalid version %q: %w", v, err)
	}
	if sv.Prerelease() != "" || sv.Metadata() != "" {
		return [3]int{}, fmt.Errorf("invalid version %q: expected MAJOR.MINOR.PATCH", v)
	}
	return [3]int{int(sv.Major()), int(sv.Minor()), int(sv.Patch())}, nil
}
