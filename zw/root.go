package zw

import (
	"os"
	"path/filepath"
)

// ResolveRoot canonicalizes raw and returns the exercises directory under
// it. The returned path is watched non-recursively.
func ResolveRoot(raw, exercises string) (string, error) {
	root, err := filepath.Abs(raw)
	if err != nil {
		return "", mark(ErrInvalidPath, err, "targeting %s", raw)
	}
	root, err = filepath.EvalSymlinks(root)
	if err != nil {
		return "", mark(ErrInvalidPath, err, "targeting %s", raw)
	}
	dir := filepath.Join(root, exercises)
	if !exists(dir) {
		return "", mark(ErrMissingExercisesDir, nil, "cannot find exercises directory %s", dir)
	}
	return dir, nil
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
