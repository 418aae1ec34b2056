package manifest

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const validManifest = `{
	"format_version": 2,
	"header": {
		"name": "demo",
		"description": "",
		"uuid": "0c7c8f9e-5b7e-4b8a-9c1d-2f3e4a5b6c7d",
		"version": [1, 0, 0],
		"min_engine_version": [1, 21, 0]
	},
	"modules": [
		{"type": "script", "uuid": "1c7c8f9e-5b7e-4b8a-9c1d-2f3e4a5b6c7d", "version": [1, 0, 0], "language": "javascript", "entry": "scripts/main.js"}
	],
	"dependencies": [
		{"module_name": "@minecraft/server", "version": "1.11.0-beta"}
	]
}`

func TestValidate_Valid(t *testing.T) {
	result, err := Validate([]byte(validManifest))
	if err != nil {
		t.Fatalf("Validate error: %v", err)
	}
	if !result.Valid {
		t.Errorf("expected valid, got %d issues: %+v", len(result.Issues), result.Issues)
	}
}

func TestValidate_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(string) string
		wantKey string
	}{
		{
			name:    "bad uuid",
			mutate:  func(s string) string { return strings.Replace(s, "0c7c8f9e-5b7e-4b8a-9c1d-2f3e4a5b6c7d", "not-a-uuid", 1) },
			wantKey: "pattern",
		},
		{
			name:    "missing name",
			mutate:  func(s string) string { return strings.Replace(s, `"name": "demo",`, "", 1) },
			wantKey: "required",
		},
		{
			name:    "script module without entry",
			mutate:  func(s string) string { return strings.Replace(s, `, "entry": "scripts/main.js"`, "", 1) },
			wantKey: "required",
		},
		{
			name:    "short version array",
			mutate:  func(s string) string { return strings.Replace(s, `"version": [1, 0, 0],`+"\n\t\t\"min", `"version": [1, 0],`+"\n\t\t\"min", 1) },
			wantKey: "minItems",
		},
		{
			name:    "wrong format version",
			mutate:  func(s string) string { return strings.Replace(s, `"format_version": 2`, `"format_version": 1`, 1) },
			wantKey: "const",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Validate([]byte(tt.mutate(validManifest)))
			if err != nil {
				t.Fatalf("Validate error: %v", err)
			}
			if result.Valid {
				t.Fatal("expected invalid manifest")
			}
			found := false
			for _, issue := range result.Issues {
				if issue.Keyword == tt.wantKey {
					found = true
				}
			}
			if !found {
				t.Errorf("expected a %q issue, got %+v", tt.wantKey, result.Issues)
			}
		})
	}
}

func TestValidate_InvalidJSON(t *testing.T) {
	if _, err := Validate([]byte("{not json")); err == nil {
		t.Error("expected error for malformed JSON")
	}
}

func TestValidateFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "manifest.json")
	if err := os.WriteFile(path, []byte(validManifest), 0644); err != nil {
		t.Fatal(err)
	}
	result, err := ValidateFile(path)
	if err != nil {
		t.Fatalf("ValidateFile error: %v", err)
	}
	if !result.Valid {
		t.Errorf("expected valid: %+v", result.Issues)
	}

	if _, err := ValidateFile(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("expected error for missing file")
	}
}
