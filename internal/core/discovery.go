package core

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/EmundoT/solbench/internal/types"
)

// DiscoverTargets walks root recursively and returns every file whose name
// ends with ext, in walk order. A missing or unreadable root yields no
// targets and no error, as does a root that is not a directory; unreadable
// subdirectories are skipped.
func DiscoverTargets(root, ext string) []types.TargetFile {
	if info, err := os.Stat(root); err != nil || !info.IsDir() {
		return nil
	}

	var targets []types.TargetFile
	_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if d != nil && d.IsDir() && path != root {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() || !strings.HasSuffix(d.Name(), ext) {
			return nil
		}
		targets = append(targets, NewTargetFile(path, len(targets)))
		return nil
	})

	return targets
}

// NewTargetFile builds a TargetFile for path.
func NewTargetFile(path string, index int) types.TargetFile {
	name := filepath.Base(path)
	return types.TargetFile{
		Path:     path,
		Name:     name,
		Category: CategoryOf(name),
		Index:    index,
	}
}

// CategoryOf returns the first CategoryLen characters of a filename, or the
// whole name when it is shorter.
func CategoryOf(name string) string {
	r := []rune(name)
	if len(r) <= CategoryLen {
		return name
	}
	return string(r[:CategoryLen])
}
