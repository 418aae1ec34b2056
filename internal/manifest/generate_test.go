package manifest

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/mcaddon-labs/mcaddon/internal/project"
)

func testInfo() project.Info {
	info := project.Defaults("/work/sample-addon")
	info.Description = "Sample add-on"
	info = info.WithDependency(project.Dependency{Package: "@minecraft/server", Required: true, Manifest: "1.11.0-beta", Npm: "1.11.0-beta.1.21.10-stable"})
	info = info.WithDependency(project.Dependency{Package: "@minecraft/server-ui"})
	return AssignUUIDs(info)
}

func TestAssignUUIDs(t *testing.T) {
	info := testInfo()
	u := info.UUIDs
	for name, v := range map[string]string{
		"behavior header": u.BehaviorHeader,
		"behavior data":   u.BehaviorData,
		"behavior script": u.BehaviorScript,
		"resource header": u.ResourceHeader,
		"resource module": u.ResourceModule,
	} {
		if v == "" {
			t.Errorf("%s uuid not assigned", name)
		}
	}

	again := AssignUUIDs(info)
	if again.UUIDs != info.UUIDs {
		t.Errorf("existing uuids should be kept: %+v vs %+v", again.UUIDs, info.UUIDs)
	}
}

func TestAssignUUIDs_NoResourcePack(t *testing.T) {
	info := project.Defaults("/work/x")
	info.Res = false
	info = AssignUUIDs(info)
	if info.UUIDs.ResourceHeader != "" || info.UUIDs.ResourceModule != "" {
		t.Errorf("resource uuids should stay empty: %+v", info.UUIDs)
	}
}

func TestBehaviorPack(t *testing.T) {
	info := testInfo()
	m := BehaviorPack(info, "1.0.0")

	if m.Header.Name != "sample-addon" || m.Header.UUID != info.UUIDs.BehaviorHeader {
		t.Errorf("unexpected header: %+v", m.Header)
	}
	if len(m.Modules) != 2 || m.Modules[1].Type != ModuleScript || m.Modules[1].Entry != "scripts/main.js" {
		t.Errorf("unexpected modules: %+v", m.Modules)
	}
	if len(m.Dependencies) != 2 {
		t.Fatalf("expected server + resource pack dependencies, got %+v", m.Dependencies)
	}
	if m.Dependencies[0].ModuleName != "@minecraft/server" || m.Dependencies[0].VersionString() != "1.11.0-beta" {
		t.Errorf("unexpected module dependency: %+v", m.Dependencies[0])
	}
	if m.Dependencies[1].UUID != info.UUIDs.ResourceHeader || m.Dependencies[1].VersionString() != "1.0.0" {
		t.Errorf("unexpected pack dependency: %+v", m.Dependencies[1])
	}
	if len(m.Capabilities) != 0 {
		t.Errorf("capabilities should be empty without allow_eval: %v", m.Capabilities)
	}
	if m.Metadata == nil || m.Metadata.GeneratedWith["mcaddon"][0] != "1.0.0" {
		t.Errorf("unexpected metadata: %+v", m.Metadata)
	}

	assertValid(t, m)
}

func TestBehaviorPack_AllowEval(t *testing.T) {
	info := testInfo()
	info.AllowEval = true
	info.Res = false

	m := BehaviorPack(info, "")
	if len(m.Capabilities) != 1 || m.Capabilities[0] != CapabilityScriptEval {
		t.Errorf("Capabilities = %v, want [script_eval]", m.Capabilities)
	}
	if len(m.Dependencies) != 1 {
		t.Errorf("no resource pack dependency expected: %+v", m.Dependencies)
	}
	if m.Metadata != nil {
		t.Errorf("metadata should be omitted: %+v", m.Metadata)
	}
	assertValid(t, m)
}

func TestResourcePack(t *testing.T) {
	info := testInfo()
	m := ResourcePack(info, "1.0.0")

	if m.Header.UUID != info.UUIDs.ResourceHeader {
		t.Errorf("header uuid = %q", m.Header.UUID)
	}
	if len(m.Modules) != 1 || m.Modules[0].Type != ModuleResources {
		t.Errorf("unexpected modules: %+v", m.Modules)
	}
	assertValid(t, m)
}

func TestMarshalParseRoundTrip(t *testing.T) {
	m := BehaviorPack(testInfo(), "1.0.0")
	data, err := Marshal(m)
	if err != nil {
		t.Fatalf("Marshal error: %v", err)
	}

	path := filepath.Join(t.TempDir(), "manifest.json")
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}

	parsed, err := ParseFile(path)
	if err != nil {
		t.Fatalf("ParseFile error: %v", err)
	}
	if parsed.Header.UUID != m.Header.UUID {
		t.Errorf("uuid mismatch: %q vs %q", parsed.Header.UUID, m.Header.UUID)
	}
	if got := parsed.Dependencies[1].VersionString(); got != "1.0.0" {
		t.Errorf("parsed pack dependency version = %q, want 1.0.0", got)
	}
}

func assertValid(t *testing.T, m *Manifest) {
	t.Helper()
	result, err := ValidateManifest(m)
	if err != nil {
		t.Fatalf("ValidateManifest error: %v", err)
	}
	if !result.Valid {
		for _, issue := range result.Issues {
			t.Errorf("  path=%s keyword=%s message=%s", issue.Path, issue.Keyword, issue.Message)
		}
		t.Fatal("expected generated manifest to be valid")
	}
}
