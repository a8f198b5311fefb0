package zw

import (
	"path/filepath"
	"strconv"
	"strings"
)

// Target is one exercise build: the exercise number and the directory
// holding build.zig.
type Target struct {
	Exercise int
	Dir      string
}

// BuildFile is the build script passed to the build tool.
func (t Target) BuildFile() string {
	return filepath.Join(t.Dir, "build.zig")
}

// ResolveTarget derives the exercise number from a "<number>_<name>.<ext>"
// file name. The working directory is two levels above the file:
// <root>/exercises/<file> builds in <root>.
func ResolveTarget(path string) (Target, error) {
	name := filepath.Base(path)
	if path == "" || name == "." || name == ".." || name == string(filepath.Separator) {
		return Target{}, mark(ErrInvalidFileName, nil, "invalid file name for path %q", path)
	}
	number, _, _ := strings.Cut(name, "_")
	n, err := strconv.ParseUint(strings.TrimPrefix(number, "+"), 10, strconv.IntSize-1)
	if err != nil {
		return Target{}, mark(ErrInvalidExerciseNumber, err, "convert exercise number of %s", name)
	}
	return Target{
		Exercise: int(n),
		Dir:      filepath.Dir(filepath.Dir(path)),
	}, nil
}
