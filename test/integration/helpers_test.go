//go:build integration

package integration_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
)

// testEnv holds the isolated directories and fake registry for one test.
type testEnv struct {
	HomeDir    string // HOME - user settings live in .mcaddon/ below it
	ProjectDir string // the add-on project being generated
	Registry   *fakeRegistry
}

// setupTestEnv sandboxes HOME and starts a fake npm registry serving the
// given packages. The env vars are restored after the test.
func setupTestEnv(t *testing.T, packages map[string][]string) *testEnv {
	t.Helper()

	env := &testEnv{
		HomeDir:    t.TempDir(),
		ProjectDir: filepath.Join(t.TempDir(), "my-addon"),
		Registry:   newFakeRegistry(t, packages),
	}
	t.Setenv("HOME", env.HomeDir)
	t.Setenv("MCADDON_REGISTRY", env.Registry.URL())
	return env
}

// fakeRegistry serves npm package documents and records every request.
type fakeRegistry struct {
	server   *httptest.Server
	mu       sync.Mutex
	requests []string
}

func newFakeRegistry(t *testing.T, packages map[string][]string) *fakeRegistry {
	t.Helper()
	r := &fakeRegistry{}
	r.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		name := strings.TrimPrefix(req.URL.Path, "/")
		r.mu.Lock()
		r.requests = append(r.requests, name)
		r.mu.Unlock()

		versions, ok := packages[name]
		if !ok {
			http.NotFound(w, req)
			return
		}
		doc := map[string]any{"name": name, "versions": map[string]any{}}
		for _, v := range versions {
			doc["versions"].(map[string]any)[v] = map[string]string{"version": v}
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(doc)
	}))
	t.Cleanup(r.server.Close)
	return r
}

func (r *fakeRegistry) URL() string { return r.server.URL }

func (r *fakeRegistry) Requests() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.requests...)
}

// --- Assertions ---

func assertFileExists(t *testing.T, path string) {
	t.Helper()
	info, err := os.Stat(path)
	if err != nil {
		t.Errorf("expected file to exist: %s", path)
		return
	}
	if info.IsDir() {
		t.Errorf("expected file but got directory: %s", path)
	}
}

func assertDirExists(t *testing.T, path string) {
	t.Helper()
	info, err := os.Stat(path)
	if err != nil {
		t.Errorf("expected directory to exist: %s", path)
		return
	}
	if !info.IsDir() {
		t.Errorf("expected directory but got file: %s", path)
	}
}

func assertNotExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Errorf("expected %s to not exist", path)
	}
}

func assertFileContains(t *testing.T, path, substr string) {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Errorf("reading %s: %v", path, err)
		return
	}
	if !strings.Contains(string(data), substr) {
		t.Errorf("%s does not contain %q", path, substr)
	}
}

// answers joins prompt answers into line-based input.
func answers(lines ...string) string {
	return strings.Join(lines, "\n") + "\n"
}

func readJSON(t *testing.T, path string, v any) {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading %s: %v", path, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		t.Fatalf("parsing %s: %v", path, err)
	}
}

func mustf(t *testing.T, err error, format string, args ...any) {
	t.Helper()
	if err != nil {
		t.Fatalf("%s: %v", fmt.Sprintf(format, args...), err)
	}
}
