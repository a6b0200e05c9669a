// Package link defines the handoff contract between the compiler core and
// an external linker driver. spec.md's "Linker collaborator" section is
// explicit that the core only prepares this handoff — it never invokes a
// system compiler, assembler, or archiver itself (original_source's
// Compiler.cpp does that work in-process via the LLVM/clang driver APIs;
// this module has no equivalent and deliberately stops one layer short of
// it, per the spec's stated division of responsibility).
package link

import "runtime"

// TripleWASI is the production target triple: wasm32 under WASI, matching
// original_source/.../Compiler.cpp's literal "wasm32-unknown-wasi".
const TripleWASI = "wasm32-unknown-wasi"

// hostTriples maps the Go runtime's (GOOS, GOARCH) pairs the module is
// realistically built on to the triple a system compiler expects for a
// test build's "host default" target, mirroring what
// llvm::sys::getDefaultTargetTriple() resolves to on those same hosts —
// without shelling out to clang/llvm-config to ask.
var hostTriples = map[string]string{
	"linux/amd64":   "x86_64-unknown-linux-gnu",
	"linux/arm64":   "aarch64-unknown-linux-gnu",
	"darwin/amd64":  "x86_64-apple-darwin",
	"darwin/arm64":  "aarch64-apple-darwin",
	"windows/amd64": "x86_64-pc-windows-msvc",
}

// HostTriple returns the best-effort host default triple for a test build.
// An unrecognized (GOOS, GOARCH) pair falls back to TripleWASI, since that
// is always a valid triple for the linker driver to target.
func HostTriple() string {
	if t, ok := hostTriples[runtime.GOOS+"/"+runtime.GOARCH]; ok {
		return t
	}
	return TripleWASI
}

// Artifact is everything the core hands to an external linker driver after
// lowering: the finished module text, the target triple to compile it for,
// and the dotted names of every module the source imported (spec.md §4.10
// property 15) so the driver can resolve their object files. The driver is
// responsible for locating a sysroot, a runtime-library path, and each
// import's object file and invoking the system compiler — none of which
// this package does.
type Artifact struct {
	ModuleText      string
	Target          string
	ImportedModules []string
}

// NewArtifact builds the handoff artifact for one compiled module.
// production selects the target triple: wasm32-unknown-wasi for a
// production build, the detected host triple for a test build (spec.md's
// "Linker collaborator" paragraph).
func NewArtifact(moduleText string, production bool, importedModules []string) Artifact {
	target := HostTriple()
	if production {
		target = TripleWASI
	}
	imports := make([]string, len(importedModules))
	copy(imports, importedModules)
	return Artifact{
		ModuleText:      moduleText,
		Target:          target,
		ImportedModules: imports,
	}
}
