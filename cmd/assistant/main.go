// Command assistant runs the conversation engine from a terminal.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"immo-assistant/internal/logging"
)

type rootOptions struct {
	logLevel      string
	templatesPath string
	seed          int64
	language      string
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:          "assistant",
		Short:        "Rule-based real-estate chat assistant",
		SilenceUsage: true,
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&opts.logLevel, "log-level", "warn", "log level (debug, info, warn, error)")
	flags.StringVar(&opts.templatesPath, "templates", "", "reply templates file (defaults to the embedded set)")
	flags.Int64Var(&opts.seed, "seed", 0, "seed for reply variant selection (0 uses the clock)")
	flags.StringVar(&opts.language, "language", "fr", "language recorded in new sessions")

	cmd.AddCommand(newChatCmd(opts), newParseCmd(opts))
	return cmd
}

func (o *rootOptions) logger() *zap.Logger {
	logger, err := logging.New(o.logLevel, logging.FormatConsole)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		return zap.NewNop()
	}
	return logger
}
