package scaffold

import (
	"bytes"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"path"
	"strings"
	"text/template"

	"github.com/mcaddon-labs/mcaddon/internal/manifest"
	"github.com/mcaddon-labs/mcaddon/internal/project"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

// ErrProjectExists is returned when init would overwrite a saved project.
var ErrProjectExists = errors.New("project already initialized")

// Options control Generate.
type Options struct {
	// Force allows init over an existing project config.
	Force bool
	// Generator is the tool version recorded in manifest metadata.
	Generator string
}

// Result describes what Generate wrote.
type Result struct {
	Info  project.Info
	Dirs  []string
	Files []string
}

// ManifestError reports a generated manifest that failed schema validation.
type ManifestError struct {
	File   string
	Issues []manifest.ValidationIssue
}

func (e *ManifestError) Error() string {
	msgs := make([]string, 0, len(e.Issues))
	for _, issue := range e.Issues {
		if issue.Path != "" {
			msgs = append(msgs, issue.Path+": "+issue.Message)
		} else {
			msgs = append(msgs, issue.Message)
		}
	}
	return fmt.Sprintf("invalid manifest %s: %s", e.File, strings.Join(msgs, "; "))
}

// templateData holds the variables available to the project templates.
type templateData struct {
	Info         project.Info
	PackageName  string
	Dependencies []project.Dependency
	TypeScript   bool
	SourceDir    string
	OutDir       string
	Include      string
	Greeting     string
}

// outputFile maps an embedded template to its destination.
type outputFile struct {
	template string
	dest     string
	// keep leaves an existing file untouched in switch mode.
	keep bool
}

// Generate writes the project described by info below w.Root. Pack UUIDs
// missing from info are assigned, and the returned Result carries the
// completed Info that was saved.
func Generate(w *Writer, info project.Info, opts Options) (*Result, error) {
	if info.Mode == project.ModeInit && project.Exists(w.Root) && !opts.Force {
		return nil, fmt.Errorf("%w: %s (use --force to overwrite)", ErrProjectExists, project.ConfigPath(w.Root))
	}

	info = manifest.AssignUUIDs(info)
	result := &Result{Info: info}

	bp := manifest.BehaviorPack(info, opts.Generator)
	bpFile := path.Join(info.BehPath, "manifest.json")
	if err := checkManifest(bpFile, bp); err != nil {
		return nil, err
	}
	var rp *manifest.Manifest
	rpFile := path.Join(info.ResPath, "manifest.json")
	if info.Res {
		rp = manifest.ResourcePack(info, opts.Generator)
		if err := checkManifest(rpFile, rp); err != nil {
			return nil, err
		}
	}

	dirs := []string{info.BehPath, info.ScriptsPath}
	if info.Res {
		dirs = append(dirs, info.ResPath)
	}
	created, err := w.Mkdir(dirs...)
	if err != nil {
		return nil, err
	}
	result.Dirs = created

	if err := w.WriteJSON(bpFile, bp); err != nil {
		return nil, err
	}
	result.Files = append(result.Files, bpFile)
	if rp != nil {
		if err := w.WriteJSON(rpFile, rp); err != nil {
			return nil, err
		}
		result.Files = append(result.Files, rpFile)
	}

	data := newTemplateData(info)
	for _, f := range outputFiles(info) {
		if f.keep && info.Mode == project.ModeSwitch && w.Exists(f.dest) {
			w.Logger.Debug("keeping existing file", "path", f.dest)
			continue
		}
		text, err := render(f.template, data)
		if err != nil {
			return nil, err
		}
		if err := w.WriteText(f.dest, text); err != nil {
			return nil, err
		}
		result.Files = append(result.Files, f.dest)
	}

	if err := project.Save(w.Root, info); err != nil {
		return nil, err
	}
	w.Logger.Debug("saved project config", "path", project.ConfigPath(w.Root))

	return result, nil
}

func outputFiles(info project.Info) []outputFile {
	return []outputFile{
		{template: "package.json.tmpl", dest: "package.json"},
		{template: "tsconfig.json.tmpl", dest: "tsconfig.json"},
		{template: "gitignore.tmpl", dest: ".gitignore", keep: true},
		{template: "main.tmpl", dest: path.Join(info.ScriptsPath, "main."+info.ScriptExt()), keep: true},
	}
}

func newTemplateData(info project.Info) templateData {
	source := strings.TrimSuffix(info.ScriptsPath, "/")
	return templateData{
		Info:         info,
		PackageName:  packageName(info.Name),
		Dependencies: info.RequiredDependencies(),
		TypeScript:   info.Language != project.LanguageJS,
		SourceDir:    source,
		OutDir:       path.Join(info.BehPath, path.Dir(manifest.ScriptEntry())),
		Include:      source + "/**/*",
		Greeting:     info.Name + " loaded",
	}
}

// maxPackageName is npm's limit on package name length.
const maxPackageName = 214

// packageName turns a project name into a valid unscoped npm package name:
// lowercase, with each run of other characters collapsed to "-" and no
// leading "." or "_".
func packageName(name string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(name) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '.', r == '_', r == '~':
			b.WriteRune(r)
			dash = false
		case !dash && b.Len() > 0:
			b.WriteByte('-')
			dash = true
		}
	}

	out := strings.TrimLeft(strings.TrimRight(b.String(), "-"), "._-")
	if len(out) > maxPackageName {
		out = strings.TrimRight(out[:maxPackageName], "-")
	}
	if out == "" {
		return "addon"
	}
	return out
}

func checkManifest(file string, m *manifest.Manifest) error {
	res, err := manifest.ValidateManifest(m)
	if err != nil {
		return fmt.Errorf("validating %s: %w", file, err)
	}
	if !res.Valid {
		return &ManifestError{File: file, Issues: res.Issues}
	}
	return nil
}

var funcs = template.FuncMap{
	"json": func(v any) (string, error) {
		b, err := json.Marshal(v)
		return string(b), err
	},
}

func render(name string, data templateData) (string, error) {
	tmplBytes, err := templateFS.ReadFile("templates/" + name)
	if err != nil {
		return "", fmt.Errorf("reading template %s: %w", name, err)
	}

	tmpl, err := template.New(name).Funcs(funcs).Parse(string(tmplBytes))
	if err != nil {
		return "", fmt.Errorf("parsing template %s: %w", name, err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("executing template %s: %w", name, err)
	}
	return buf.String(), nil
}
