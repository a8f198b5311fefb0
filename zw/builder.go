package zw

import (
	"io"
	"log/slog"
	"os"
	"os/exec"
	"strconv"
)

// Builder starts a build for a target without waiting for it to finish.
type Builder interface {
	Build(t Target) error
}

// ZigBuilder runs `<Tool> build --build-file <dir>/build.zig <exercise>`.
type ZigBuilder struct {
	Tool   string
	Stdout io.Writer
	Stderr io.Writer
}

func NewZigBuilder(tool string) *ZigBuilder {
	if tool == "" {
		tool = DefaultTool
	}
	return &ZigBuilder{
		Tool:   tool,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
}

func (b *ZigBuilder) Args(t Target) []string {
	return []string{"build", "--build-file", t.BuildFile(), strconv.Itoa(t.Exercise)}
}

func (b *ZigBuilder) Build(t Target) error {
	cmd := exec.Command(b.Tool, b.Args(t)...)
	cmd.Stdout = b.Stdout
	cmd.Stderr = b.Stderr
	if err := cmd.Start(); err != nil {
		return mark(ErrBuildLaunch, err, "start %s", b.Tool)
	}
	// reap only, the result is never reported
	go func() {
		err := cmd.Wait()
		slog.Debug("build exited", slog.Int("exercise", t.Exercise), slog.Any("err", err))
	}()
	return nil
}
