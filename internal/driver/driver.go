// Package driver runs the reflow engine over every source a target resolves
// to and aggregates the outcome into a single exit status.
package driver

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/harrison/reflow/internal/filelock"
	"github.com/harrison/reflow/internal/models"
	"github.com/harrison/reflow/internal/reflow"
	"github.com/harrison/reflow/internal/source"
)

// LockName is the lock file created inside a directory while it is being
// re-flowed. It is hidden, so it is never picked up as a source.
const LockName = ".reflow.lock"

// Logger is the subset of the console logger the driver reports through.
type Logger interface {
	LogDebug(message string)
	LogInfo(message string)
	LogWarn(message string)
	LogError(message string)
	LogFileResult(result models.FileResult)
}

// Options configures a Driver.
type Options struct {
	Width      int
	ChunkSize  int         // read chunk size; 0 uses the engine default
	FileMode   os.FileMode // permissions of files written in directory mode
	Lock       bool        // take LockName before touching a directory
	Extensions []string    // restrict directory mode to these extensions
}

// Driver invokes the engine once per source, strictly sequentially.
type Driver struct {
	opts   Options
	engine *reflow.Engine
	logger Logger
	stdin  io.Reader
	stdout io.Writer
}

// New creates a Driver. stdin and stdout back the standard-stream modes.
func New(opts Options, logger Logger, stdin io.Reader, stdout io.Writer) (*Driver, error) {
	engine, err := reflow.New(opts.Width, reflow.WithChunkSize(opts.ChunkSize))
	if err != nil {
		return nil, err
	}
	if opts.FileMode == 0 {
		opts.FileMode = 0644
	}
	return &Driver{
		opts:   opts,
		engine: engine,
		logger: logger,
		stdin:  stdin,
		stdout: stdout,
	}, nil
}

// Run processes target: standard input when target is empty, a single file
// to standard output, or every eligible entry of a directory into sibling
// wrap.<name> files. Per-source failures are recorded and never stop the run.
func (d *Driver) Run(target string) *models.Summary {
	start := time.Now()
	summary := &models.Summary{
		RunID:  uuid.NewString(),
		Target: target,
	}

	kind, err := source.Resolve(target)
	if err != nil {
		d.record(summary, models.FileResult{Source: target, Status: models.StatusFailed, Error: err})
		summary.Duration = time.Since(start)
		return summary
	}

	d.logger.LogDebug(fmt.Sprintf("run %s: %s mode, width %d", summary.RunID, kind, d.opts.Width))

	switch kind {
	case source.KindStdin:
		d.record(summary, d.RunStdin())
	case source.KindFile:
		d.record(summary, d.RunFile(target))
	case source.KindDir:
		summary.Dir = true
		d.runDir(target, summary)
	}

	summary.Duration = time.Since(start)
	return summary
}

// RunStdin re-flows standard input to standard output.
func (d *Driver) RunStdin() models.FileResult {
	return d.reflow("", "", d.stdin, d.stdout)
}

// RunFile re-flows one file to standard output.
func (d *Driver) RunFile(path string) models.FileResult {
	in, err := os.Open(path)
	if err != nil {
		return models.FileResult{
			Source: path,
			Status: models.StatusFailed,
			Error:  source.NewPathError("open", path, err),
		}
	}
	defer in.Close()

	return d.reflow(path, "", in, d.stdout)
}

// RunPair re-flows one directory entry into its output file. The output only
// replaces an existing file once the pass has produced it; an empty source or
// an I/O failure leaves no output behind.
func (d *Driver) RunPair(pair source.Pair) models.FileResult {
	in, err := os.Open(pair.Source)
	if err != nil {
		return models.FileResult{
			Source: pair.Source,
			Output: pair.Output,
			Status: models.StatusFailed,
			Error:  source.NewPathError("open", pair.Source, err),
		}
	}
	defer in.Close()

	out, err := filelock.CreateAtomic(pair.Output, d.opts.FileMode)
	if err != nil {
		return models.FileResult{
			Source: pair.Source,
			Output: pair.Output,
			Status: models.StatusFailed,
			Error:  source.NewPathError("create", pair.Output, err),
		}
	}

	result := d.reflow(pair.Source, pair.Output, in, out)
	switch result.Status {
	case models.StatusSucceeded, models.StatusWordTooLong:
		// Overlong words do not corrupt the output, so it is kept
		if err := out.Commit(); err != nil {
			result.Status = models.StatusFailed
			result.Error = source.NewPathError("commit", pair.Output, err)
		}
	default:
		out.Abort()
		if _, err := os.Stat(pair.Output); err == nil {
			d.logger.LogWarn(fmt.Sprintf("%s was not updated and still holds output from an earlier run", pair.Output))
		}
	}
	return result
}

func (d *Driver) runDir(dir string, summary *models.Summary) {
	if d.opts.Lock {
		lock, err := d.lockDir(dir)
		if err != nil {
			d.record(summary, models.FileResult{Source: dir, Status: models.StatusFailed, Error: err})
			return
		}
		defer lock.Unlock()
	}

	listing, err := source.List(dir, d.opts.Extensions)
	if err != nil {
		d.record(summary, models.FileResult{Source: dir, Status: models.StatusFailed, Error: err})
		return
	}

	for _, name := range listing.Skipped {
		d.logger.LogDebug(fmt.Sprintf("skipping %s: not a regular file", filepath.Join(dir, name)))
	}
	for _, err := range listing.Errors {
		d.record(summary, models.FileResult{Source: dir, Status: models.StatusFailed, Error: err})
	}
	if len(listing.Pairs) == 0 {
		d.logger.LogWarn(fmt.Sprintf("no eligible files in %s", dir))
	}

	for _, pair := range listing.Pairs {
		d.record(summary, d.RunPair(pair))
	}
}

// lockDir takes the directory lock, waiting for another run to finish if
// necessary.
func (d *Driver) lockDir(dir string) (*filelock.FileLock, error) {
	lock := filelock.NewFileLock(filepath.Join(dir, LockName))

	acquired, err := lock.TryLock()
	if err != nil {
		return nil, source.NewPathError("lock", dir, err)
	}
	if !acquired {
		d.logger.LogWarn(fmt.Sprintf("%s is being re-flowed by another process, waiting", dir))
		if err := lock.Lock(); err != nil {
			return nil, source.NewPathError("lock", dir, err)
		}
	}
	return lock, nil
}

// reflow runs one engine pass and classifies the outcome.
func (d *Driver) reflow(src, dst string, in io.Reader, out io.Writer) models.FileResult {
	start := time.Now()
	stats, err := d.engine.Run(in, out)

	return models.FileResult{
		Source:   src,
		Output:   dst,
		Status:   models.ClassifyError(err),
		Stats:    stats,
		Error:    err,
		Duration: time.Since(start),
	}
}

func (d *Driver) record(summary *models.Summary, result models.FileResult) {
	summary.Add(result)
	d.logger.LogFileResult(result)
}
