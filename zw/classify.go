package zw

import (
	"path/filepath"
	"slices"
	"strings"
)

// ShouldRebuild reports whether path is a reload target not yet accepted in
// this batch. Paths compare as plain strings; a file removed before the
// batch is classified is skipped.
func ShouldRebuild(path, ext string, accepted []string) bool {
	// a dotfile such as ".zig" has no extension
	e := filepath.Ext(path)
	if e == "" || len(e) >= len(filepath.Base(path)) || strings.TrimPrefix(e, ".") != ext {
		return false
	}
	return !slices.Contains(accepted, path) && exists(path)
}

// Distinct returns the paths of b's content changes that should be rebuilt,
// in the order they were first seen.
func Distinct(b Batch, ext string) []string {
	var paths []string
	for _, c := range b.Changes {
		if c.Op != OpChanged {
			continue
		}
		if ShouldRebuild(c.Path, ext, paths) {
			paths = append(paths, c.Path)
		}
	}
	return paths
}
