package manifest

import (
	"fmt"
	"strconv"
	"strings"
)

// FormatVersion is the manifest schema version written for every pack.
const FormatVersion = 2

// DefaultMinEngineVersion is the oldest game version the generated packs target.
var DefaultMinEngineVersion = [3]int{1, 21, 0}

// Module types used by generated packs.
const (
	ModuleData      = "data"
	ModuleResources = "resources"
	ModuleScript    = "script"
)

// CapabilityScriptEval permits eval and new Function in pack scripts.
const CapabilityScriptEval = "script_eval"

// Manifest is a pack manifest.json.
type Manifest struct {
	FormatVersion int          `json:"format_version"`
	Header        Header       `json:"header"`
	Modules       []Module     `json:"modules"`
	Dependencies  []Dependency `json:"dependencies,omitempty"`
	Capabilities  []string     `json:"capabilities,omitempty"`
	Metadata      *Metadata    `json:"metadata,omitempty"`
}

// Header identifies the pack.
type Header struct {
	Name             string  `json:"name"`
	Description      string  `json:"description"`
	UUID             string  `json:"uuid"`
	Version          [3]int  `json:"version"`
	MinEngineVersion *[3]int `json:"min_engine_version,omitempty"`
}

// Module is one content module of a pack.
type Module struct {
	Type     string `json:"type"`
	UUID     string `json:"uuid"`
	Version  [3]int `json:"version"`
	Language string `json:"language,omitempty"`
	Entry    string `json:"entry,omitempty"`
}

// Dependency references either a script module by name (Version is a string
// such as "1.11.0-beta") or another pack by UUID (Version is a three-number
// array).
type Dependency struct {
	UUID       string `json:"uuid,omitempty"`
	ModuleName string `json:"module_name,omitempty"`
	Version    any    `json:"version"`
}

// VersionString renders the dependency version for display.
func (d Dependency) VersionString() string {
	switch v := d.Version.(type) {
	case string:
		return v
	case [3]int:
		return fmt.Sprintf("%d.%d.%d", v[0], v[1], v[2])
	case []any:
		parts := make([]string, len(v))
		for i, p := range v {
			if f, ok := p.(float64); ok {
				parts[i] = strconv.FormatFloat(f, 'f', -1, 64)
			} else {
				parts[i] = fmt.Sprint(p)
			}
		}
		return strings.Join(parts, ".")
	}
	return fmt.Sprint(d.Version)
}

// Metadata records which tool produced the manifest.
type Metadata struct {
	Authors       []string            `json:"authors,omitempty"`
	GeneratedWith map[string][]string `json:"generated_with,omitempty"`
}
