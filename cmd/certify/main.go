package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"time"

	flag "github.com/spf13/pflag"
	"github.com/sunthewhat/certifypro-api/internal/collector"
)

type cliFlags struct {
	server   string
	snapshot string
	out      string
	timeout  time.Duration
	verbose  bool
}

func parseFlags(args []string) (*cliFlags, error) {
	f := &cliFlags{}
	fs := flag.NewFlagSet("certify", flag.ContinueOnError)
	fs.StringVarP(&f.server, "server", "s", "http://localhost:4000", "render service base URL")
	fs.StringVarP(&f.snapshot, "snapshot", "i", "", "editor snapshot YAML file (empty renders the defaults)")
	fs.StringVarP(&f.out, "out", "o", ".", "directory to save the PDF into")
	fs.DurationVar(&f.timeout, "timeout", 30*time.Second, "request timeout")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "log request details")

	if err := fs.Parse(args[1:]); err != nil {
		return nil, err
	}
	return f, nil
}

func main() {
	flags, err := parseFlags(os.Args)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	level := slog.LevelWarn
	if flags.verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	path, err := run(ctx, flags)
	if err != nil {
		slog.Error("Certificate download failed", "server", flags.server, "error", err)
		fmt.Fprintln(os.Stderr, userMessage(err))
		os.Exit(1)
	}
	fmt.Println(path)
}

func run(ctx context.Context, flags *cliFlags) (string, error) {
	snapshot := &collector.Snapshot{}
	if flags.snapshot != "" {
		loaded, err := collector.LoadSnapshot(flags.snapshot)
		if err != nil {
			return "", err
		}
		snapshot = loaded
	}

	client := collector.NewClient(flags.server, &http.Client{Timeout: flags.timeout})
	return client.Download(ctx, collector.Collect(*snapshot), flags.out)
}

func userMessage(err error) string {
	switch {
	case errors.Is(err, collector.ErrServerStatus):
		return "PDF generation failed on the server (run with --verbose for details)."
	case errors.Is(err, collector.ErrTransport):
		return "Could not reach the certificate service."
	default:
		return "PDF generation failed: " + err.Error()
	}
}
