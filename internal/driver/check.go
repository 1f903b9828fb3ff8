package driver

import (
	"context"
	"fmt"
	"runtime"
	"strconv"
	"time"

	"golang.org/x/sync/errgroup"

	"fsdc/internal/diag"
	"fsdc/internal/logger"
	"fsdc/internal/observ"
	"fsdc/internal/source"
	"fsdc/internal/trace"
)

// CheckResult holds the per-file results in the order of the expanded paths.
type CheckResult struct {
	Files []*FileResult
}

// Failed reports whether any file has errors.
func (r *CheckResult) Failed() bool {
	for _, f := range r.Files {
		if f.Failed() {
			return true
		}
	}
	return false
}

// ErrorCount returns the number of errors across all files.
func (r *CheckResult) ErrorCount() int {
	n := 0
	for _, f := range r.Files {
		n += len(f.Errors)
	}
	return n
}

// Timing sums the timings of all files.
func (r *CheckResult) Timing() observ.Report {
	reports := make([]observ.Report, len(r.Files))
	for i, f := range r.Files {
		reports[i] = f.Timing
	}
	return observ.Aggregate(reports...)
}

// CheckFiles parses every definition found in paths in parallel. Results keep
// the sorted order of the files whatever order the workers finish in.
// Unreadable files are reported as errors of their own result; the returned
// error is reserved for bad paths and cancellation.
func CheckFiles(ctx context.Context, paths []string, opts Options) (*CheckResult, error) {
	files, err := ExpandPaths(paths)
	if err != nil {
		return nil, err
	}
	log := logger.Component("driver")

	ctx, span := trace.Enter(ctx, trace.ScopeDriver, "check")
	defer func() { span.WithExtra("files", strconv.Itoa(len(files))).End("") }()

	for _, path := range files {
		emit(opts.Progress, Event{File: path, Stage: StageLoad, Status: StatusQueued})
	}

	// FileSet не потокобезопасен: загружаем всё заранее
	fileSet := source.NewFileSetWithBase(opts.BaseDir)
	ids := make([]source.FileID, len(files))
	loadErrs := make([]error, len(files))
	for i, path := range files {
		ids[i], loadErrs[i] = fileSet.Load(path)
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	// индексы уникальны для каждой горутины, мьютекс не нужен
	results := make([]*FileResult, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(1, min(jobs, len(files))))

	for i, path := range files {
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}
			started := time.Now()
			if loadErrs[i] != nil {
				results[i] = loadFailure(path, loadErrs[i])
				emit(opts.Progress, Event{File: path, Stage: StageLoad, Status: StatusError, Err: loadErrs[i], Elapsed: time.Since(started)})
				return nil
			}
			results[i] = checkOne(gctx, path, fileSet, ids[i], opts)
			status := StatusDone
			if results[i].Failed() {
				status = StatusError
			}
			emit(opts.Progress, Event{File: path, Stage: StageParse, Status: status, Elapsed: time.Since(started)})
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	res := &CheckResult{Files: results}
	log.Debug("check finished", "files", len(files), "errors", res.ErrorCount())
	return res, nil
}

func checkOne(ctx context.Context, path string, fileSet *source.FileSet, id source.FileID, opts Options) *FileResult {
	log := logger.Component("driver")
	file := fileSet.Get(id)
	name := fileSet.NamedText(id, opts.PathMode).Name

	if opts.Cache != nil {
		timer := observ.NewTimer()
		idx := timer.Begin("cache")
		var payload CachePayload
		hit, err := opts.Cache.Get(ContentKey(name, file.Content), &payload)
		timer.End(idx, "")
		if err != nil {
			log.Warn("cache read failed", "file", name, "error", err)
		}
		if hit {
			log.Debug("cache hit", "file", name)
			trace.Point(trace.FromContext(ctx), trace.ScopeModule, "cache hit", trace.CurrentSpan(ctx).SpanID, name)
			return &FileResult{
				Path:   path,
				Name:   name,
				File:   file,
				Errors: fromPayload(&payload),
				Cached: true,
				Timing: timer.Report(),
			}
		}
	}

	emit(opts.Progress, Event{File: path, Stage: StageParse, Status: StatusWorking})
	res := parseLoaded(ctx, path, fileSet, id, opts)

	if opts.Cache != nil {
		if err := opts.Cache.Put(ContentKey(name, file.Content), toPayload(res)); err != nil {
			log.Warn("cache write failed", "file", name, "error", err)
		}
	}
	return res
}

func loadFailure(path string, err error) *FileResult {
	return &FileResult{
		Path: path,
		Name: path,
		Errors: []*diag.DefinitionError{
			diag.New(diag.IOLoadFileError, source.Position{}, fmt.Sprintf("%s: %v", path, err)).WithCause(err),
		},
	}
}
