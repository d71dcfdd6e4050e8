package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	flag "github.com/spf13/pflag"

	"github.com/five82/gutter/internal/app"
)

func main() {
	os.Exit(run())
}

func run() int {
	flags := flag.NewFlagSet("gutter", flag.ContinueOnError)
	configPath := flags.StringP("config", "c", "", "override config path (optional)")
	base := flags.StringP("base", "b", "", "image base directory or http(s) URL (overrides image_base)")
	logLevel := flags.String("log-level", "", "log level: debug, info, warn or error")
	flags.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: gutter [flags] <comic>\n\n")
		fmt.Fprintf(os.Stderr, "<comic> is an id (demo), a path (demo/#7) or a URL (https://host/read/?id=demo#7).\n\n")
		flags.PrintDefaults()
	}
	if err := flags.Parse(os.Args[1:]); err != nil {
		if err == flag.ErrHelp {
			return 0
		}
		return 2
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	opts := app.Options{
		ConfigPath: *configPath,
		Locator:    flags.Arg(0),
		ImageBase:  *base,
		LogLevel:   *logLevel,
	}

	if err := app.Run(ctx, opts); err != nil {
		fmt.Fprintf(os.Stderr, "gutter: %v\n", err)
		return 1
	}
	return 0
}
