// Package source resolves a command-line target into the byte sources and
// sinks handed to the reflow engine.
package source

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/harrison/reflow/internal/fileutil"
)

// OutputPrefix is prepended to a source's base name to form its output name
// in directory mode.
const OutputPrefix = "wrap."

// ErrUnsupportedType is wrapped by a PathError for targets that are neither
// regular files nor directories.
var ErrUnsupportedType = errors.New("neither a regular file nor a directory")

// Kind identifies how a target is processed.
type Kind int

const (
	// KindStdin reads standard input and writes standard output.
	KindStdin Kind = iota
	// KindFile reads one regular file and writes standard output.
	KindFile
	// KindDir writes a wrap.<name> sibling for every eligible entry.
	KindDir
)

// String returns the string representation of Kind.
func (k Kind) String() string {
	switch k {
	case KindStdin:
		return "stdin"
	case KindFile:
		return "file"
	case KindDir:
		return "directory"
	default:
		return "unknown"
	}
}

// PathError records a target that could not be statted, opened or created.
type PathError struct {
	Op   string // "stat", "open", "create", "scan", "lock", "commit"
	Path string
	Err  error
}

// Error implements the error interface for PathError.
func (e *PathError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

// Unwrap returns the underlying error.
func (e *PathError) Unwrap() error {
	return e.Err
}

// NewPathError wraps err for path. An *os.PathError is unwrapped first so the
// path is not repeated in the message.
func NewPathError(op, path string, err error) *PathError {
	var pe *os.PathError
	if errors.As(err, &pe) {
		err = pe.Err
	}
	return &PathError{Op: op, Path: path, Err: err}
}

// Pair is one source to re-flow and where its output goes.
type Pair struct {
	Source string
	Output string
}

// Eligible reports whether a directory entry should be re-flowed. Hidden
// entries and previous output are skipped.
func Eligible(name string) bool {
	return !strings.HasPrefix(name, ".") && !strings.HasPrefix(name, OutputPrefix)
}

// OutputName returns the output file name for a source path.
func OutputName(path string) string {
	return OutputPrefix + filepath.Base(path)
}

// Resolve decides how target is processed. An empty target means standard
// input.
func Resolve(target string) (Kind, error) {
	if target == "" {
		return KindStdin, nil
	}

	info, err := os.Stat(target)
	if err != nil {
		return 0, NewPathError("stat", target, err)
	}

	switch {
	case info.IsDir():
		return KindDir, nil
	case info.Mode().IsRegular():
		return KindFile, nil
	default:
		return 0, &PathError{Op: "stat", Path: target, Err: ErrUnsupportedType}
	}
}

// Listing is the result of enumerating a directory.
type Listing struct {
	Pairs   []Pair   // eligible regular files, in name order
	Skipped []string // eligible entries that are not regular files
	Errors  []error  // entries that could not be inspected
}

// List enumerates the eligible regular files directly inside dir and pairs
// each with its sibling output path. An empty extensions list accepts any
// file.
func List(dir string, extensions []string) (*Listing, error) {
	result, err := fileutil.ScanDirectory(dir, fileutil.ScanOptions{
		Include:    Eligible,
		Extensions: extensions,
	})
	if err != nil {
		return nil, NewPathError("scan", dir, err)
	}

	listing := &Listing{
		Pairs:   make([]Pair, 0, len(result.Files)),
		Skipped: result.Skipped,
		Errors:  result.Errors,
	}
	for _, file := range result.Files {
		listing.Pairs = append(listing.Pairs, Pair{
			Source: file,
			Output: filepath.Join(filepath.Dir(file), OutputName(file)),
		})
	}
	return listing, nil
}
