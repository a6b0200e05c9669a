package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"aoc/internal/cache"
	"aoc/internal/codegen"
	"aoc/internal/diag"
	"aoc/internal/diagfmt"
	"aoc/internal/lexer"
	"aoc/internal/link"
	"aoc/internal/lower"
	"aoc/internal/parser"
	"aoc/internal/project"
	"aoc/internal/source"
	"aoc/internal/trace"
)

var buildCmd = &cobra.Command{
	Use:   "build [file.a1]",
	Short: "Build a contract module, reading aoc.toml when present",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runBuild,
}

func init() {
	buildCmd.Flags().Bool("release", false, "run backend optimization passes")
	buildCmd.Flags().String("output", "", "output file name (defaults to aoc.toml's [build].output)")
}

func runBuild(cmd *cobra.Command, args []string) error {
	tr := trace.FromContext(cmd.Context())
	driverSpan := trace.Begin(tr, trace.ScopeDriver, "build", 0)
	buildOK := false
	defer func() {
		if buildOK {
			driverSpan.End("ok")
		} else {
			driverSpan.End("failed")
		}
	}()

	release, err := cmd.Flags().GetBool("release")
	if err != nil {
		return err
	}
	outputFlag, err := cmd.Flags().GetString("output")
	if err != nil {
		return err
	}

	manifest, manifestFound, err := project.Load(".")
	if err != nil {
		return err
	}

	var entryPath, outputName string
	switch {
	case manifestFound:
		entryPath = manifest.EntryPath()
		outputName = manifest.Build.Output
		release = release || manifest.Build.Optimize
	case len(args) == 1:
		entryPath = args[0]
		outputName = strings.TrimSuffix(filepath.Base(entryPath), filepath.Ext(entryPath))
	default:
		return fmt.Errorf("no aoc.toml found and no file given")
	}
	if outputFlag != "" {
		outputName = outputFlag
	}
	if outputName == "" {
		outputName = "a.out"
	}

	diskCache, cacheErr := cache.OpenDiskCache("aoc")
	if cacheErr != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "aoc: cache unavailable: %v\n", cacheErr)
	}

	result, err := compileModule(cmd, entryPath, release, diskCache)
	if err != nil {
		return err
	}

	if len(result.ctx.ImportedModules) > 0 {
		if ierr := compileImportsConcurrently(cmd, entryPath, result.ctx.ImportedModules, release, diskCache); ierr != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "aoc: %v\n", ierr)
		}
	}

	artifact := link.NewArtifact(result.moduleText, release, result.ctx.ImportedModules)
	if manifestFound && manifest.Build.Target != "" {
		artifact.Target = manifest.Build.Target
	}

	if werr := os.WriteFile(outputName, []byte(artifact.ModuleText), 0o644); werr != nil {
		return fmt.Errorf("failed to write %s: %w", outputName, werr)
	}

	if diskCache != nil {
		summary := cache.Build(result.ctx.Symbols, result.ctx.Interner)
		if perr := diskCache.Put(result.digest, summary); perr != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "aoc: cache write failed: %v\n", perr)
		}
	}

	driverSpan.WithExtra("target", artifact.Target).
		WithExtra("imports", strconv.Itoa(len(result.ctx.ImportedModules))).
		WithExtra("output", outputName)
	buildOK = true

	fmt.Fprintf(cmd.OutOrStdout(), "built %s (target %s)\n", outputName, artifact.Target)
	return nil
}

// buildOutcome carries a single compiled module's emitted text alongside
// the lowering context, so the caller can both write the artifact and
// derive a cache.Summary from the same Context/Interner pair.
type buildOutcome struct {
	moduleText string
	ctx        *lower.Context
	digest     cache.Digest
}

// compileModule runs the full stream -> lexer -> parser -> lowering
// pipeline over a single file, the per-module unit of work §5's
// concurrency model requires each imported module get its own freshly
// constructed single-threaded pipeline.
func compileModule(cmd *cobra.Command, path string, production bool, diskCache *cache.DiskCache) (*buildOutcome, error) {
	tr := trace.FromContext(cmd.Context())
	span := trace.Begin(tr, trace.ScopePass, "compile:"+path, 0).WithExtra("file", path)

	content, err := os.ReadFile(path)
	if err != nil {
		span.End("read failed")
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	digest := cache.Hash(content)
	span.WithExtra("bytes", strconv.Itoa(len(content)))

	fs := source.NewFileSet()
	fileID := fs.Add(path, content, 0)

	it := lexer.NewTokenIterator(source.NewStream(fs.Get(fileID)))
	root, err := parser.Parse(it)
	if err != nil {
		span.End("parse failed")
		if cerr, ok := err.(*diag.CompileError); ok {
			diagfmt.Pretty(os.Stderr, cerr, fs, diagfmt.Options{Color: useColor(cmd, os.Stderr), Context: 2})
		}
		return nil, fmt.Errorf("parsing %s failed", path)
	}

	emitter := codegen.NewTextEmitter()
	ctx := lower.NewContext(emitter)
	if err := lower.LowerModule(ctx, root, production); err != nil {
		span.End("lower failed")
		if cerr, ok := err.(*diag.CompileError); ok {
			diagfmt.Pretty(os.Stderr, cerr, fs, diagfmt.Options{Color: useColor(cmd, os.Stderr), Context: 2})
		}
		return nil, fmt.Errorf("lowering %s failed", path)
	}

	span.WithExtra("imports", strconv.Itoa(len(ctx.ImportedModules))).End("ok")
	return &buildOutcome{moduleText: emitter.String(), ctx: ctx, digest: digest}, nil
}

// compileImportsConcurrently is the §5 [FULL] concurrency note: the driver
// may compile multiple imported modules' declarations concurrently via
// errgroup, while each one still gets its own freshly constructed
// single-threaded core pipeline — concurrency lives here, never inside a
// single compileModule call. A cache hit for an import's content digest
// skips re-lowering it entirely.
func compileImportsConcurrently(cmd *cobra.Command, entryPath string, imports []string, production bool, diskCache *cache.DiskCache) error {
	tr := trace.FromContext(cmd.Context())
	baseDir := filepath.Dir(entryPath)
	var g errgroup.Group
	for _, dotted := range imports {
		dotted := dotted
		g.Go(func() error {
			moduleSpan := trace.Begin(tr, trace.ScopeModule, "import:"+dotted, 0)

			importPath := filepath.Join(baseDir, filepath.FromSlash(strings.ReplaceAll(dotted, ".", "/"))+".a1")
			content, err := os.ReadFile(importPath)
			if err != nil {
				moduleSpan.End("read failed")
				return fmt.Errorf("import %q: %w", dotted, err)
			}
			digest := cache.Hash(content)
			if diskCache != nil {
				if _, hit, _ := diskCache.Get(digest); hit {
					moduleSpan.End("cache hit")
					return nil
				}
			}
			outcome, err := compileModule(cmd, importPath, production, diskCache)
			if err != nil {
				moduleSpan.End("compile failed")
				return err
			}
			if diskCache != nil {
				summary := cache.Build(outcome.ctx.Symbols, outcome.ctx.Interner)
				_ = diskCache.Put(outcome.digest, summary)
			}
			moduleSpan.End("cache miss")
			return nil
		})
	}
	return g.Wait()
}
