// Package fileutil provides the directory listing used by directory mode.
//
// ScanDirectory lists the immediate entries of a directory (it never
// recurses), applies a name predicate and an optional extension filter, and
// separates regular files from everything else:
//
//	result, err := fileutil.ScanDirectory("/path/to/notes", fileutil.ScanOptions{
//	    Include:    func(name string) bool { return !strings.HasPrefix(name, ".") },
//	    Extensions: []string{".txt", ".md"},
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, file := range result.Files {
//	    fmt.Println(file)
//	}
//
// Matched files are returned as absolute paths in name order. Subdirectories,
// devices and sockets that pass the filters are returned by name in Skipped.
// Symlinks are followed; a dangling symlink is recorded in Errors and the scan
// continues.
//
// Extension matching is case-insensitive and accepts extensions with or
// without the leading dot.
package fileutil
