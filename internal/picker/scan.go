package picker

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jask/filetally/internal/selection"
)

// ScanOptions narrows which directory entries become picker items.
type ScanOptions struct {
	ShowHidden bool
	// Extensions keeps only files with one of these suffixes (case-insensitive).
	// Empty keeps everything.
	Extensions []string
}

// Scan lists the regular files in dir, sorted by name.
func Scan(dir string, opts ScanOptions) ([]selection.FileDescriptor, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read dir: %w", err)
	}
	exts := normalizeExtensions(opts.Extensions)
	var out []selection.FileDescriptor
	for _, entry := range entries {
		if entry.IsDir() || !entry.Type().IsRegular() {
			continue
		}
		name := entry.Name()
		if !opts.ShowHidden && strings.HasPrefix(name, ".") {
			continue
		}
		if len(exts) > 0 && !hasExtension(name, exts) {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			// removed between ReadDir and Info
			continue
		}
		out = append(out, selection.FileDescriptor{Name: name, Size: info.Size()})
	}
	return out, nil
}

// Stat resolves each path to a descriptor named by its base name. The first
// missing path fails with a hint naming the closest file in its directory.
func Stat(paths []string) (selection.Snapshot, error) {
	snap := make(selection.Snapshot, 0, len(paths))
	for _, p := range paths {
		info, err := os.Stat(p)
		if err != nil {
			if os.IsNotExist(err) {
				return nil, missingFileError(p, err)
			}
			return nil, fmt.Errorf("stat %s: %w", p, err)
		}
		if info.IsDir() {
			return nil, fmt.Errorf("%s: is a directory", p)
		}
		snap = append(snap, selection.FileDescriptor{Name: filepath.Base(p), Size: info.Size()})
	}
	return snap, nil
}

func missingFileError(path string, err error) error {
	dir := filepath.Dir(path)
	files, scanErr := Scan(dir, ScanOptions{ShowHidden: true})
	if scanErr != nil {
		return fmt.Errorf("stat %s: %w", path, err)
	}
	names := make([]string, 0, len(files))
	for _, f := range files {
		names = append(names, f.Name)
	}
	if hint, ok := Suggest(filepath.Base(path), names); ok {
		return fmt.Errorf("stat %s: %w (did you mean %q?)", path, err, filepath.Join(dir, hint))
	}
	return fmt.Errorf("stat %s: %w", path, err)
}

func normalizeExtensions(exts []string) []string {
	out := make([]string, 0, len(exts))
	for _, e := range exts {
		e = strings.ToLower(strings.TrimSpace(e))
		if e == "" {
			continue
		}
		if !strings.HasPrefix(e, ".") {
			e = "." + e
		}
		out = append(out, e)
	}
	return out
}

func hasExtension(name string, exts []string) bool {
	lower := strings.ToLower(name)
	for _, e := range exts {
		if strings.HasSuffix(lower, e) {
			return true
		}
	}
	return false
}
