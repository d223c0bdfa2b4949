// Package main implements the ktra CLI tool.
package main

import (
	"context"
	"errors"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/amonks/ktra/internal/kv"
	"github.com/amonks/ktra/internal/validation"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		var exitErr interface{ ExitCode() int }
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.ExitCode())
		}
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:          "ktra",
	Short:        "ktra - a point-based task tracker",
	SilenceUsage: true,
}

var (
	rootConfigPath string
	rootBackend    string
	rootVerbose    bool
)

func init() {
	addGlobalFlags(rootCmd.PersistentFlags())
}

// addGlobalFlags registers the flags every subcommand inherits.
func addGlobalFlags(flags *pflag.FlagSet) {
	flags.StringVar(&rootConfigPath, "config", "", "Path to the global config file (default ~/.config/ktra/config.toml)")
	flags.StringVar(&rootBackend, "backend", "", "Storage backend override ("+validation.FormatValidValues(kv.ValidBackends())+")")
	flags.BoolVarP(&rootVerbose, "verbose", "v", false, "Log debug output to stderr")
}
