package project

import (
	"os"
	"path/filepath"
	"testing"
)

func writeManifest(t *testing.T, dir, body string) string {
	t.Helper()
	path := filepath.Join(dir, "aoc.toml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("failed to write manifest: %v", err)
	}
	return path
}

func TestLoadDefaultsOutputToPackageName(t *testing.T) {
	dir := t.TempDir()
	writeManifest(t, dir, "[package]\nname = \"hello\"\nentry = \"main.a1\"\n")

	m, ok, err := Load(dir)
	if err != nil || !ok {
		t.Fatalf("Load() = %v, %v, %v", m, ok, err)
	}
	if m.Build.Output != "hello" {
		t.Fatalf("Build.Output = %q, want %q", m.Build.Output, "hello")
	}
	if want := filepath.Join(dir, "main.a1"); m.EntryPath() != want {
		t.Fatalf("EntryPath() = %q, want %q", m.EntryPath(), want)
	}
}

func TestLoadHonorsExplicitBuildTable(t *testing.T) {
	dir := t.TempDir()
	writeManifest(t, dir, "[package]\nname = \"hello\"\nentry = \"main.a1\"\n\n"+
		"[build]\noutput = \"custom\"\ntarget = \"wasm32-unknown-wasi\"\noptimize = true\n")

	m, ok, err := Load(dir)
	if err != nil || !ok {
		t.Fatalf("Load() = %v, %v, %v", m, ok, err)
	}
	if m.Build.Output != "custom" || m.Build.Target != "wasm32-unknown-wasi" || !m.Build.Optimize {
		t.Fatalf("Build = %+v", m.Build)
	}
}

func TestLoadMissingManifestReturnsNotOk(t *testing.T) {
	dir := t.TempDir()
	_, ok, err := Load(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok {
		t.Fatal("expected ok=false with no aoc.toml present")
	}
}

func TestLoadRequiresEntry(t *testing.T) {
	dir := t.TempDir()
	writeManifest(t, dir, "[package]\nname = \"hello\"\n")

	_, _, err := Load(dir)
	if err == nil {
		t.Fatal("expected an error for a missing [package].entry")
	}
}

func TestFindManifestWalksUpParentDirectories(t *testing.T) {
	root := t.TempDir()
	writeManifest(t, root, "[package]\nname = \"hello\"\nentry = \"main.a1\"\n")
	nested := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(nested, 0o750); err != nil {
		t.Fatalf("failed to create nested dir: %v", err)
	}

	path, ok, err := FindManifest(nested)
	if err != nil || !ok {
		t.Fatalf("FindManifest() = %q, %v, %v", path, ok, err)
	}
	want, _ := filepath.Abs(filepath.Join(root, "aoc.toml"))
	if path != want {
		t.Fatalf("FindManifest() = %q, want %q", path, want)
	}
}
