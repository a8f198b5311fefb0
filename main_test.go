package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	"zwatch/zw"
)

func TestRunVersion(t *testing.T) {
	var out, errOut bytes.Buffer
	require.Equal(t, exitOK, run([]string{"-version"}, &out, &errOut))
	require.Equal(t, "zwatch 0.1.0\n", out.String())
}

func TestRunHelp(t *testing.T) {
	var out, errOut bytes.Buffer
	require.Equal(t, exitOK, run([]string{"-h"}, &out, &errOut))
	require.Contains(t, errOut.String(), "usage: zwatch")
}

func TestRunRequiresPath(t *testing.T) {
	var out, errOut bytes.Buffer
	require.Equal(t, exitFatal, run(nil, &out, &errOut))
	require.Contains(t, errOut.String(), "expected exactly one path argument")
}

func TestRunMissingExercisesDir(t *testing.T) {
	root := t.TempDir()
	canonical, err := filepath.EvalSymlinks(root)
	require.NoError(t, err)

	var out, errOut bytes.Buffer
	require.Equal(t, exitFatal, run([]string{root}, &out, &errOut))
	require.Contains(t, errOut.String(), filepath.Join(canonical, "exercises"))
	require.Empty(t, out.String())
}

func TestRunInvalidPath(t *testing.T) {
	raw := filepath.Join(t.TempDir(), "missing")

	var out, errOut bytes.Buffer
	require.Equal(t, exitFatal, run([]string{raw}, &out, &errOut))
	require.Contains(t, errOut.String(), raw)
}

func TestRunBadConfig(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(root, "exercises"), 0o755))
	config := filepath.Join(root, "zwatch.yaml")
	require.NoError(t, os.WriteFile(config, []byte("bogus: 1\n"), 0o644))

	var out, errOut bytes.Buffer
	require.Equal(t, exitFatal, run([]string{"-config", config, root}, &out, &errOut))
}

func TestExitCode(t *testing.T) {
	var errOut bytes.Buffer
	require.Equal(t, exitOK, exitCode(nil, &errOut))
	require.Empty(t, errOut.String())

	errOut.Reset()
	launch := errors.Wrap(zw.ErrBuildLaunch, "start zig: executable file not found in $PATH")
	require.Equal(t, exitFatal, exitCode(launch, &errOut))
	require.Contains(t, errOut.String(), "Do you have zig installed? - ")
	require.Contains(t, errOut.String(), "executable file not found")

	errOut.Reset()
	initErr := errors.Wrap(zw.ErrWatcherInit, "watch /nowhere")
	require.Equal(t, exitFatal, exitCode(initErr, &errOut))
	require.Contains(t, errOut.String(), "watch /nowhere")
	require.NotContains(t, errOut.String(), "Do you have zig installed?")
}

func TestWatchReturnsNilWhenSourceCloses(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(root, "exercises"), 0o755))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out, errOut bytes.Buffer
	err := watch(ctx, root, zw.DefaultConfig(), &out, &errOut)
	require.NoError(t, err)
	require.Equal(t, exitOK, exitCode(err, &errOut))
	require.Contains(t, out.String(), "Watching for file changes in ")
}

func TestParseLevel(t *testing.T) {
	require.Equal(t, "DEBUG", parseLevel("debug").String())
	require.Equal(t, "WARN", parseLevel(" Warning ").String())
	require.Equal(t, "ERROR", parseLevel("error").String())
	require.Equal(t, "INFO", parseLevel("whatever").String())
}
