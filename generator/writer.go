package generator

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/erraggy/oasts/internal/fileutil"
	"github.com/erraggy/oasts/internal/pathutil"
)

// WriteFiles writes all generated files to the specified output directory.
// The directory is created if it doesn't exist.
func (r *GenerateResult) WriteFiles(outputDir string) error {
	dir, err := pathutil.SanitizeOutputDir(outputDir)
	if err != nil {
		return fmt.Errorf("generator: %w", err)
	}
	if err := os.MkdirAll(dir, fileutil.DirReadableByAll); err != nil {
		return fmt.Errorf("generator: failed to create output directory: %w", err)
	}

	for _, file := range r.Files {
		safeName := filepath.Base(file.Name)
		if safeName != file.Name {
			return fmt.Errorf("generator: invalid file name %q: must not contain path separators", file.Name)
		}
		if err := file.WriteFile(filepath.Join(dir, safeName)); err != nil {
			return err
		}
	}

	return nil
}

// WriteFile writes a single generated file to the specified path.
func (f *GeneratedFile) WriteFile(path string) error {
	target, err := pathutil.SanitizeOutputPath(path)
	if err != nil {
		return fmt.Errorf("generator: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(target), fileutil.DirReadableByAll); err != nil {
		return fmt.Errorf("generator: failed to create directory: %w", err)
	}

	if err := os.WriteFile(target, f.Content, fileutil.ReadableByAll); err != nil {
		return fmt.Errorf("generator: failed to write file %s: %w", f.Name, err)
	}

	return nil
}
