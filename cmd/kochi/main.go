package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/pflag"

	"github.com/five82/kochi/internal/app"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	flags := pflag.NewFlagSet("kochi", pflag.ContinueOnError)
	configPath := flags.String("config", "", "config file path (default ~/.config/kochi/config.toml)")
	prefsPath := flags.String("prefs", "", "preferences file path (default ~/.config/kochi/prefs.toml)")
	trains := flags.Int("trains", 0, "number of trains in the fleet (overrides config)")
	seed := flags.Uint64("seed", 0, "seed for the initial random statuses")
	summary := flags.Bool("summary", false, "print status counts and exit")
	logFile := flags.String("log-file", "", "write JSON log records to this file")
	logLevel := flags.String("log-level", "", "log level: debug, info, warn, error")

	if err := flags.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return 0
		}
		fmt.Fprintf(os.Stderr, "kochi: %v\n", err)
		return 2
	}
	if rest := flags.Args(); len(rest) > 0 {
		fmt.Fprintf(os.Stderr, "kochi: unexpected argument %q\n", rest[0])
		return 2
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	opts := app.Options{
		ConfigPath: *configPath,
		PrefsPath:  *prefsPath,
		Trains:     *trains,
		Seed:       *seed,
		HasSeed:    flags.Changed("seed"),
		LogFile:    *logFile,
		LogLevel:   *logLevel,
		Summary:    *summary,
		Out:        os.Stdout,
	}

	if err := app.Run(ctx, opts); err != nil {
		fmt.Fprintf(os.Stderr, "kochi: %v\n", err)
		return 1
	}
	return 0
}
