package fileutil

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ScanOptions configures the directory scanning behavior
type ScanOptions struct {
	// Include reports whether an entry name should be considered at all.
	// Nil includes every entry.
	Include func(name string) bool
	// Extensions is a list of file extensions to include (e.g., ".txt", "md").
	// Empty means any extension.
	Extensions []string
}

// ScanResult contains the results of a directory scan
type ScanResult struct {
	// Files contains the absolute paths of all matched regular files
	Files []string
	// Skipped contains included entry names that are not regular files
	Skipped []string
	// Errors contains any errors encountered during scanning
	Errors []error
}

// ScanDirectory lists the immediate entries of dir that pass the options.
// Symlinks are followed; anything that does not resolve to a regular file is
// reported in Skipped. Files are returned sorted by name.
func ScanDirectory(dir string, opts ScanOptions) (*ScanResult, error) {
	// Validate directory exists
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to access directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("path is not a directory: %s", dir)
	}

	absDir, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve directory %s: %w", dir, err)
	}

	// ReadDir returns entries sorted by filename
	entries, err := os.ReadDir(absDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory: %w", err)
	}

	// Create extension map for fast lookup
	extMap := make(map[string]bool)
	for _, ext := range opts.Extensions {
		// Ensure extensions start with a dot
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		extMap[strings.ToLower(ext)] = true
	}

	result := &ScanResult{
		Files:   make([]string, 0, len(entries)),
		Skipped: make([]string, 0),
		Errors:  make([]error, 0),
	}

	for _, entry := range entries {
		name := entry.Name()

		if opts.Include != nil && !opts.Include(name) {
			continue
		}

		// Check extension if specified
		if len(extMap) > 0 {
			ext := strings.ToLower(filepath.Ext(name))
			if !extMap[ext] {
				continue
			}
		}

		path := filepath.Join(absDir, name)
		mode := entry.Type()

		if mode&os.ModeSymlink != 0 {
			target, err := os.Stat(path)
			if err != nil {
				result.Errors = append(result.Errors, fmt.Errorf("error accessing %s: %w", path, err))
				continue
			}
			mode = target.Mode()
		}

		if !mode.IsRegular() {
			result.Skipped = append(result.Skipped, name)
			continue
		}

		result.Files = append(result.Files, path)
	}

	return result, nil
}
