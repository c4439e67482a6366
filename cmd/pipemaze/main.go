// Command pipemaze reads a pipe grid and prints the distance from the start
// cell to the farthest loop cell and the number of cells the loop encloses.
//
// Usage:
//
//	pipemaze [-m max-steps] [-l debug|info|warn|error] [input.txt | -]
//
// The input defaults to input.txt; "-" reads standard input.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"git.sr.ht/~sircmpwn/getopt"

	"github.com/katalvlaran/pipemaze"
	"github.com/katalvlaran/pipemaze/loop"
	"github.com/katalvlaran/pipemaze/pipegrid"
)

const defaultInput = "input.txt"

// config is the parsed command line.
type config struct {
	path     string
	maxSteps int
	level    slog.Level
}

func parseArgs(argv []string) (config, error) {
	cfg := config{path: defaultInput, level: slog.LevelInfo}
	opts, optind, err := getopt.Getopts(argv, "m:l:")
	if err != nil {
		return cfg, err
	}
	for _, opt := range opts {
		switch opt.Option {
		case 'm':
			n, err := strconv.Atoi(opt.Value)
			if err != nil || n < 0 {
				return cfg, fmt.Errorf("invalid -m %q: want a non-negative step count", opt.Value)
			}
			cfg.maxSteps = n
		case 'l':
			switch strings.ToLower(opt.Value) {
			case "debug":
				cfg.level = slog.LevelDebug
			case "info":
				cfg.level = slog.LevelInfo
			case "warn":
				cfg.level = slog.LevelWarn
			case "error":
				cfg.level = slog.LevelError
			default:
				return cfg, fmt.Errorf("invalid -l %q: want debug|info|warn|error", opt.Value)
			}
		}
	}
	if rest := argv[optind:]; len(rest) > 0 {
		cfg.path = rest[0]
	}
	return cfg, nil
}

func readInput(path string, stdin io.Reader) (string, error) {
	if path == "-" {
		b, err := io.ReadAll(stdin)
		return string(b), err
	}
	b, err := os.ReadFile(path)
	return string(b), err
}

// run executes one invocation and writes the answers to out.
func run(argv []string, stdin io.Reader, out io.Writer, logger *slog.Logger) error {
	cfg, err := parseArgs(argv)
	if err != nil {
		return err
	}
	text, err := readInput(cfg.path, stdin)
	if err != nil {
		return err
	}
	g, err := pipegrid.Parse(text)
	if err != nil {
		return fmt.Errorf("%s: %w", cfg.path, err)
	}
	logger.Debug("grid loaded", "path", cfg.path, "width", g.Width(), "height", g.Height(), "start", g.Start().String())

	ans, err := pipemaze.Solve(g, loop.WithMaxSteps(cfg.maxSteps))
	if err != nil {
		return fmt.Errorf("%s: %w", cfg.path, err)
	}
	logger.Debug("loop traced", "length", ans.Length)
	logger.Info("solved", "farthest", ans.Farthest, "enclosed", ans.Enclosed)

	_, err = fmt.Fprintf(out, "Farthest: %d\nEnclosed: %d\n", ans.Farthest, ans.Enclosed)
	return err
}

func main() {
	level := new(slog.LevelVar)
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	if cfg, err := parseArgs(os.Args); err == nil {
		level.Set(cfg.level)
	}

	if err := run(os.Args, os.Stdin, os.Stdout, logger); err != nil {
		logger.Error("pipemaze failed", "err", err)
		os.Exit(1)
	}
}
