package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/pkg/errors"

	"zwatch/zw"
)

const version = "0.1.0"

const (
	exitOK    = 0
	exitFatal = 1
)

type options struct {
	path        string
	config      string
	logLevel    string
	showVersion bool
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, out, errOut io.Writer) int {
	opts, err := parseArgs(args, errOut)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		fmt.Fprintln(errOut, err)
		return exitFatal
	}
	if opts.showVersion {
		fmt.Fprintf(out, "zwatch %s\n", version)
		return exitOK
	}

	cfg, err := zw.LoadConfig(opts.config)
	if err != nil {
		fmt.Fprintln(errOut, err)
		return exitFatal
	}
	if opts.logLevel != "" {
		cfg.LogLevel = opts.logLevel
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(errOut, &slog.HandlerOptions{Level: parseLevel(cfg.LogLevel)})))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return exitCode(watch(ctx, opts.path, cfg, out, errOut), errOut)
}

func parseArgs(args []string, errOut io.Writer) (options, error) {
	var opts options
	fs := flag.NewFlagSet("zwatch", flag.ContinueOnError)
	fs.SetOutput(errOut)
	fs.Usage = func() {
		fmt.Fprintln(errOut, "zwatch - a ziglings hot reloader")
		fmt.Fprintln(errOut, "usage: zwatch [flags] <path to ziglings directory>")
		fs.PrintDefaults()
	}
	fs.StringVar(&opts.config, "config", "", "optional YAML config file")
	fs.StringVar(&opts.logLevel, "log-level", "", "debug, info, warn or error")
	fs.BoolVar(&opts.showVersion, "version", false, "print version and exit")
	if err := fs.Parse(args); err != nil {
		return opts, err
	}
	if opts.showVersion {
		return opts, nil
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return opts, errors.New("expected exactly one path argument")
	}
	opts.path = fs.Arg(0)
	return opts, nil
}

func watch(ctx context.Context, path string, cfg zw.Config, out, errOut io.Writer) error {
	dir, err := zw.ResolveRoot(path, cfg.Exercises)
	if err != nil {
		return err
	}
	source, err := zw.NewFsSource(dir, cfg.Debounce)
	if err != nil {
		return err
	}
	defer source.Close()
	go func() {
		<-ctx.Done()
		source.Close()
	}()

	fmt.Fprintf(out, "Watching for file changes in %s\n", dir)
	slog.Info("watch", slog.String("path", dir), slog.Duration("debounce", cfg.Debounce))

	reloader := zw.NewReloader(source, zw.NewZigBuilder(cfg.Tool), cfg.Extension)
	reloader.SetErrorOutput(errOut)
	return reloader.Run()
}

func exitCode(err error, errOut io.Writer) int {
	if err == nil {
		return exitOK
	}
	if errors.Is(err, zw.ErrBuildLaunch) {
		fmt.Fprintf(errOut, "Do you have zig installed? - %v\n", err)
		return exitFatal
	}
	fmt.Fprintln(errOut, err)
	return exitFatal
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
