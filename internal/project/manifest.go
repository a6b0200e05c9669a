// Package project loads aoc.toml, the single-file project manifest
// cmd/aoc reads for default build settings. Unlike the teacher's own
// internal/project (a multi-module dependency DAG with per-module content
// hashing), this spec describes one compilation unit per manifest, so the
// DAG/hashing machinery has no counterpart here — only the manifest
// lookup-and-decode half survives, adapted to a flatter schema.
package project

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// Manifest is the decoded contents of aoc.toml.
type Manifest struct {
	Path string // absolute path to the manifest file itself
	Root string // directory containing it

	Package PackageConfig `toml:"package"`
	Build   BuildConfig   `toml:"build"`
}

// PackageConfig is the manifest's [package] table.
type PackageConfig struct {
	Name  string `toml:"name"`
	Entry string `toml:"entry"` // path to the entry .a1 file, relative to Root
}

// BuildConfig is the manifest's [build] table.
type BuildConfig struct {
	Output   string `toml:"output"`   // output binary name; defaults to Package.Name
	Target   string `toml:"target"`   // target triple override; empty selects link.HostTriple/link.TripleWASI
	Optimize bool   `toml:"optimize"` // whether the backend should run its optimization passes
}

// FindManifest walks up from startDir looking for aoc.toml, the way the
// teacher's FindSurgeToml walks up for surge.toml.
func FindManifest(startDir string) (path string, ok bool, err error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, "aoc.toml")
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

// Load finds and decodes aoc.toml starting from startDir. ok is false (with
// a nil error) when no manifest exists anywhere above startDir.
func Load(startDir string) (*Manifest, bool, error) {
	manifestPath, ok, err := FindManifest(startDir)
	if err != nil || !ok {
		return nil, ok, err
	}
	var m Manifest
	meta, err := toml.DecodeFile(manifestPath, &m)
	if err != nil {
		return nil, true, fmt.Errorf("%s: failed to parse TOML: %w", manifestPath, err)
	}
	if !meta.IsDefined("package") {
		return nil, true, fmt.Errorf("%s: missing [package]", manifestPath)
	}
	if !meta.IsDefined("package", "name") || strings.TrimSpace(m.Package.Name) == "" {
		return nil, true, fmt.Errorf("%s: missing [package].name", manifestPath)
	}
	if !meta.IsDefined("package", "entry") || strings.TrimSpace(m.Package.Entry) == "" {
		return nil, true, fmt.Errorf("%s: missing [package].entry", manifestPath)
	}
	m.Path = manifestPath
	m.Root = filepath.Dir(manifestPath)
	if m.Build.Output == "" {
		m.Build.Output = m.Package.Name
	}
	return &m, true, nil
}

// EntryPath resolves the manifest's [package].entry relative to Root.
func (m *Manifest) EntryPath() string {
	return filepath.Join(m.Root, filepath.FromSlash(m.Package.Entry))
}
