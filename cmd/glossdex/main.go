package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/tmcgee/glossdex/internal/config"
	"github.com/tmcgee/glossdex/internal/glossary"
	"github.com/tmcgee/glossdex/internal/pdftext"
	"github.com/tmcgee/glossdex/internal/render"
)

func main() {
	var (
		format  = flag.String("format", "markdown", "output format: markdown, json or html")
		outPath = flag.String("o", "", "write output to file instead of stdout")
		verbose = flag.Bool("v", false, "enable debug logging")
	)
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: glossdex [flags] file.pdf\n\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	if err := run(flag.Arg(0), *format, *outPath, log); err != nil {
		log.Error("extraction failed", "error", err)
		os.Exit(1)
	}
}

func run(path, format, outPath string, log *slog.Logger) error {
	cfg := config.Load()

	src, err := pdftext.Open(path)
	if err != nil {
		return err
	}
	defer src.Close()

	entries, err := glossary.Extract(context.Background(), pdftext.NewPrefetcher(src), cfg.Styles, log)
	if err != nil {
		return err
	}
	log.Info("glossary extracted", "pages", src.NumPages(), "terms", len(entries))

	var out []byte
	switch format {
	case "markdown":
		out = []byte(render.Markdown(entries))
	case "json":
		out, err = render.JSON(entries)
	case "html":
		out, err = render.HTML(entries)
	default:
		return fmt.Errorf("unknown format %q", format)
	}
	if err != nil {
		return err
	}

	if outPath == "" {
		_, err = os.Stdout.Write(out)
		return err
	}
	return os.WriteFile(outPath, out, 0o644)
}
