package manifest

import (
	"path"

	"github.com/google/uuid"
	"github.com/mcaddon-labs/mcaddon/internal/branding"
	"github.com/mcaddon-labs/mcaddon/internal/project"
)

// AssignUUIDs returns a copy of info with every missing pack and module UUID
// generated. Existing UUIDs are kept so a regenerated pack keeps its identity.
func AssignUUIDs(info project.Info) project.Info {
	fill := func(s *string) {
		if *s == "" {
			*s = uuid.NewString()
		}
	}
	u := info.UUIDs
	fill(&u.BehaviorHeader)
	fill(&u.BehaviorData)
	fill(&u.BehaviorScript)
	if info.Res {
		fill(&u.ResourceHeader)
		fill(&u.ResourceModule)
	}
	info.UUIDs = u
	return info
}

// ScriptEntry returns the script module entry path inside the behavior pack.
// TypeScript sources compile to JavaScript, so the entry is always .js.
func ScriptEntry() string {
	return path.Join("scripts", "main.js")
}

// BehaviorPack builds the behavior pack manifest for info. Call AssignUUIDs
// first. generator is the tool version recorded in metadata; empty omits it.
func BehaviorPack(info project.Info, generator string) *Manifest {
	minEngine := DefaultMinEngineVersion
	m := &Manifest{
		FormatVersion: FormatVersion,
		Header: Header{
			Name:             info.Name,
			Description:      info.Description,
			UUID:             info.UUIDs.BehaviorHeader,
			Version:          info.VersionArray,
			MinEngineVersion: &minEngine,
		},
		Modules: []Module{
			{Type: ModuleData, UUID: info.UUIDs.BehaviorData, Version: info.VersionArray},
			{
				Type:     ModuleScript,
				UUID:     info.UUIDs.BehaviorScript,
				Version:  info.VersionArray,
				Language: "javascript",
				Entry:    ScriptEntry(),
			},
		},
		Metadata: metadata(generator),
	}

	for _, dep := range info.RequiredDependencies() {
		m.Dependencies = append(m.Dependencies, Dependency{ModuleName: dep.Package, Version: dep.Manifest})
	}
	if info.Res {
		m.Dependencies = append(m.Dependencies, Dependency{UUID: info.UUIDs.ResourceHeader, Version: info.VersionArray})
	}
	if info.AllowEval {
		m.Capabilities = []string{CapabilityScriptEval}
	}
	return m
}

// ResourcePack builds the resource pack manifest for info.
func ResourcePack(info project.Info, generator string) *Manifest {
	minEngine := DefaultMinEngineVersion
	return &Manifest{
		FormatVersion: FormatVersion,
		Header: Header{
			Name:             info.Name,
			Description:      info.Description,
			UUID:             info.UUIDs.ResourceHeader,
			Version:          info.VersionArray,
			MinEngineVersion: &minEngine,
		},
		Modules: []Module{
			{Type: ModuleResources, UUID: info.UUIDs.ResourceModule, Version: info.VersionArray},
		},
		Metadata: metadata(generator),
	}
}

func metadata(generator string) *Metadata {
	if generator == "" {
		return nil
	}
	return &Metadata{GeneratedWith: map[string][]string{branding.CLIName(): {generator}}}
}
