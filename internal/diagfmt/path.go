package diagfmt

import (
	"path/filepath"
	"strings"

	"glassful/internal/source"
)

const autoPathLimit = 40

func displayPath(fs *source.FileSet, id source.FileID, mode PathMode) string {
	if fs == nil || !fs.HasFile(id) {
		return "<unknown>"
	}
	path := fs.Get(id).Path
	switch mode {
	case PathModeAbsolute:
		if abs, err := filepath.Abs(path); err == nil {
			return filepath.ToSlash(abs)
		}
	case PathModeRelative:
		if rel, err := filepath.Rel(fs.BaseDir(), path); err == nil && !strings.HasPrefix(rel, "..") {
			return filepath.ToSlash(rel)
		}
	case PathModeBasename:
		return filepath.Base(path)
	case PathModeAuto:
		if filepath.IsAbs(path) && len(path) > autoPathLimit {
			return filepath.Base(path)
		}
	}
	return path
}
