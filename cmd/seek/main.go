package main

import (
	"errors"
	"fmt"
	"log"
	"log/slog"
	"os"
	"slices"
	"strings"

	"github.com/urfave/cli/v2"

	"seek/search"
)

// demoValues is the sequence printed when seek runs without a subcommand.
var demoValues = []int{1, 2, 3, 4, 5, 6, 7, 8}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		if errors.Is(err, ErrNotFound) {
			os.Exit(1)
		}
		log.Fatal(err)
	}
}

func newApp() *cli.App {
	valuesFlag := func() cli.Flag {
		return &cli.IntSliceFlag{
			Name:     "values",
			Usage:    "Comma-separated integers to search",
			EnvVars:  []string{"SEEK_VALUES"},
			Required: true,
		}
	}
	targetFlag := func() cli.Flag {
		return &cli.IntFlag{
			Name:     "target",
			Aliases:  []string{"t"},
			Usage:    "Value to look for",
			EnvVars:  []string{"SEEK_TARGET"},
			Required: true,
		}
	}

	return &cli.App{
		Name:  "seek",
		Usage: "Find integers with linear or binary search",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "warn",
				EnvVars: []string{"SEEK_LOG_LEVEL"},
			},
		},
		Before: setupLogger,
		Action: demoCommand,
		Commands: []*cli.Command{
			{
				Name:   "contains",
				Usage:  "Report whether the target occurs anywhere in the values",
				Action: containsCommand,
				Flags:  []cli.Flag{valuesFlag(), targetFlag()},
			},
			{
				Name:   "index",
				Usage:  "Binary search ascending values and print the target's index",
				Action: indexCommand,
				Flags: []cli.Flag{
					valuesFlag(),
					targetFlag(),
					&cli.BoolFlag{
						Name:  "strict",
						Usage: "Fail instead of searching when values are not sorted",
					},
				},
			},
		},
	}
}

func demoCommand(c *cli.Context) error {
	fmt.Fprintln(c.App.Writer, search.Contains(demoValues, 10))

	i, found := search.BinarySearch(demoValues, 5)
	if !found {
		return fmt.Errorf("demo: 5 missing from %v: %w", demoValues, ErrNotFound)
	}
	fmt.Fprintln(c.App.Writer, i)
	return nil
}

func containsCommand(c *cli.Context) error {
	values, target := c.IntSlice("values"), c.Int("target")
	slog.Debug("linear search", "values", len(values), "target", target)

	fmt.Fprintln(c.App.Writer, search.Contains(values, target))
	return nil
}

func indexCommand(c *cli.Context) error {
	values, target := c.IntSlice("values"), c.Int("target")
	slog.Debug("binary search", "values", len(values), "target", target)

	if !slices.IsSorted(values) {
		if c.Bool("strict") {
			return fmt.Errorf("index %v: %w", values, ErrUnsorted)
		}
		slog.Warn("values are not sorted, result is unreliable", "values", values)
	}

	i, found := search.BinarySearch(values, target)
	if !found {
		fmt.Fprintln(c.App.Writer, "not found")
		return ErrNotFound
	}
	fmt.Fprintln(c.App.Writer, i)
	return nil
}

func setupLogger(c *cli.Context) error {
	levelStr := strings.ToLower(c.String("log-level"))

	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return fmt.Errorf("invalid log level %q: must be one of debug, info, warn, error", levelStr)
	}

	// Logs stay off stdout so results can be piped.
	logger := slog.New(slog.NewTextHandler(c.App.ErrWriter, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	return nil
}
