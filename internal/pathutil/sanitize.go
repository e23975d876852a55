package pathutil

import (
	"fmt"
	"os"
	"path/filepath"
)

// SanitizeOutputPath validates and cleans an output file path.
// It resolves ".." components via filepath.Clean + filepath.Abs and
// rejects paths that resolve to symlinks. New files in existing
// directories are accepted. Returns the cleaned absolute path.
func SanitizeOutputPath(path string) (string, error) {
	abs, info, err := lstatAbs(path)
	if err != nil {
		return "", err
	}
	if info != nil && info.Mode()&os.ModeSymlink != 0 {
		return "", fmt.Errorf("pathutil: refusing to write to symlink: %s", abs)
	}
	return abs, nil
}

// SanitizeOutputDir is SanitizeOutputPath for a directory that generated
// files are written into. An existing path must be a directory; a missing
// one is accepted and created later by the writer.
func SanitizeOutputDir(dir string) (string, error) {
	abs, err := SanitizeOutputPath(dir)
	if err != nil {
		return "", err
	}
	info, err := os.Stat(abs)
	switch {
	case err == nil:
		if !info.IsDir() {
			return "", fmt.Errorf("pathutil: output path is not a directory: %s", abs)
		}
	case os.IsNotExist(err):
	default:
		return "", fmt.Errorf("pathutil: cannot stat path: %w", err)
	}
	return abs, nil
}

func lstatAbs(path string) (string, os.FileInfo, error) {
	abs, err := filepath.Abs(filepath.Clean(path))
	if err != nil {
		return "", nil, fmt.Errorf("pathutil: cannot resolve absolute path: %w", err)
	}

	info, err := os.Lstat(abs)
	switch {
	case err == nil:
		return abs, info, nil
	case os.IsNotExist(err):
		// New file or directory.
		return abs, nil, nil
	default:
		return "", nil, fmt.Errorf("pathutil: cannot stat path: %w", err)
	}
}
