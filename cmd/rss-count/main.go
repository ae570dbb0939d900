// Command rss-count maintains the skyline of a fixed-size sliding window of
// the last N tuples read from a stream.
package main

import (
	"log/slog"
	"os"

	"github.com/skyline-sdi/sdi-rss/internal/cli"
	"github.com/skyline-sdi/sdi-rss/internal/skyline"
)

func main() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	args, ok := cli.ParseArgs(os.Args[1:])
	if !ok {
		cli.PrintUsage(os.Stderr, os.Args[0])
		os.Exit(0)
	}

	if args.Dims <= 0 || args.Window <= 0 {
		// Unparseable dimensionality/window yields a zero-sized window, not
		// a setup error: the program produces a single empty run.
		cli.NewFormatter(os.Stdout, false).Footer(0)
		return
	}

	stream := os.Stdin
	if args.Stream != "" {
		f, err := os.Open(args.Stream)
		if err != nil {
			slog.Error("rss-count: opening stream", "path", args.Stream, "error", err)
			os.Exit(1)
		}
		defer f.Close()
		stream = f
	}

	engine, err := skyline.NewCountWindow(args.Dims, args.Window)
	if err != nil {
		slog.Error("rss-count: constructing engine", "error", err)
		os.Exit(1)
	}

	reader := cli.NewLineReader(stream, 0)
	out := cli.NewFormatter(os.Stdout, false)

	for !engine.Done() {
		line, ok := reader.Next()
		if !ok {
			break
		}
		values, err := cli.ParseLine(line, args.Dims)
		if err != nil {
			break
		}
		res, err := engine.Arrive(values)
		if err != nil {
			slog.Error("rss-count: processing arrival", "error", err)
			break
		}
		out.Line(res)
	}

	out.Footer(engine.MeanProcessingTime())
}
