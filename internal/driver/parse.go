package driver

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"fsdc/internal/definition"
	"fsdc/internal/diag"
	"fsdc/internal/fsd"
	"fsdc/internal/observ"
	"fsdc/internal/source"
	"fsdc/internal/trace"
)

// Ext is the extension of definition files.
const Ext = ".fsd"

// Options configures ParseFile and CheckFiles.
type Options struct {
	// Jobs bounds the number of files parsed at once; <= 0 means GOMAXPROCS.
	Jobs int
	// MaxDiagnostics caps the errors kept per file; <= 0 keeps all.
	MaxDiagnostics int
	// PathMode selects how file names appear in diagnostics:
	// "relative" (to BaseDir), "absolute", "basename" or "" for the path as given.
	PathMode string
	BaseDir  string
	// Cache is consulted by CheckFiles only; nil disables caching.
	Cache    *DiskCache
	Progress ProgressSink
	// Parser defaults to one tracing into the context's tracer.
	Parser *fsd.Parser
}

// FileResult is the outcome of checking one file.
type FileResult struct {
	// Path as given by the caller (or found by directory expansion).
	Path string
	// Name is the display name used in diagnostics.
	Name string
	// File holds the normalized content; nil when the file could not be read.
	File *source.File
	// Service is nil when parsing failed or the result came from the cache.
	Service *definition.ServiceInfo
	Errors  []*diag.DefinitionError
	Cached  bool
	Timing  observ.Report
}

// Failed reports whether the file has any error.
func (r *FileResult) Failed() bool {
	return len(r.Errors) != 0
}

// ParseFile reads and parses one definition file. Definition problems are
// reported in the result; the error is for files that cannot be read.
func ParseFile(ctx context.Context, path string, opts Options) (*FileResult, error) {
	fileSet := source.NewFileSetWithBase(opts.BaseDir)
	id, err := fileSet.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return parseLoaded(ctx, path, fileSet, id, opts), nil
}

func parseLoaded(ctx context.Context, path string, fileSet *source.FileSet, id source.FileID, opts Options) *FileResult {
	ctx, span := trace.Enter(ctx, trace.ScopeModule, path)

	timer := observ.NewTimer()
	text := fileSet.NamedText(id, opts.PathMode)
	res := &FileResult{Path: path, Name: text.Name, File: fileSet.Get(id)}

	parser := opts.Parser
	if parser == nil {
		parser = fsd.NewParser(fsd.WithTracer(trace.FromContext(ctx)))
	}
	idx := timer.Begin("parse")
	parsed := parser.TryParseDefinitionContext(ctx, text)
	timer.End(idx, strconv.Itoa(len(parsed.Errors))+" errors")

	res.Service = parsed.Service
	res.Errors = limit(parsed.Errors, opts.MaxDiagnostics)
	res.Timing = timer.Report()
	span.WithExtra("errors", strconv.Itoa(len(res.Errors))).End("")
	return res
}

func limit(errs []*diag.DefinitionError, max int) []*diag.DefinitionError {
	bag := diag.NewBag(max)
	bag.Extend(errs)
	return bag.Items()
}

// ExpandPaths turns files and directories into a sorted, duplicate-free list
// of files. Directories contribute every *.fsd file below them; files named
// explicitly are kept whatever their extension.
func ExpandPaths(paths []string) ([]string, error) {
	seen := make(map[string]struct{})
	var files []string
	add := func(p string) {
		clean := filepath.Clean(p)
		if _, ok := seen[clean]; ok {
			return
		}
		seen[clean] = struct{}{}
		files = append(files, clean)
	}

	for _, p := range paths {
		info, err := os.Stat(p)
		if err != nil {
			return nil, err
		}
		if !info.IsDir() {
			add(p)
			continue
		}
		err = filepath.WalkDir(p, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if !d.IsDir() && strings.HasSuffix(path, Ext) {
				add(path)
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
	}

	// Сортируем для детерминированного порядка
	sort.Strings(files)
	return files, nil
}
