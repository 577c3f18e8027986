package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/vibinremote/internal/logging"
	"github.com/aretw0/vibinremote/pkg/capture"
)

// cli holds state shared by every command of one invocation.
type cli struct {
	logLevel  string
	logFormat string
	logger    *slog.Logger
}

func newRootCmd(c *cli) *cobra.Command {
	opts := &runOptions{}

	rootCmd := &cobra.Command{
		Use:   "vibinremote",
		Short: "Control the Vibin music streamer server with keyboard key presses.",
		Long: `vibinremote listens for global key releases and sends the HTTP command
configured for each key to a Vibin server.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return c.setupLogger(cmd.ErrOrStderr())
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runRemote(cmd, opts)
		},
	}

	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().StringVar(&c.logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&c.logFormat, "log-format", "text", "Log format (text, json)")

	// 'run' is the default when no command is provided.
	addRunFlags(rootCmd, opts)

	rootCmd.AddCommand(
		newRunCmd(c),
		newValidateCmd(c),
		newKeysCmd(),
		newVersionCmd(),
	)

	return rootCmd
}

func (c *cli) setupLogger(w io.Writer) error {
	level, err := logging.ParseLevel(c.logLevel)
	if err != nil {
		return err
	}
	format, err := logging.ParseFormat(c.logFormat)
	if err != nil {
		return err
	}
	c.logger = logging.New(w, level, format)
	return nil
}

// reportError writes the single fatal message for a failed invocation.
// Capture failures were already logged by the capture loop.
func (c *cli) reportError(w io.Writer, err error) {
	if errors.Is(err, capture.ErrCaptureTerminated) {
		return
	}
	if c.logger != nil {
		c.logger.Error(err.Error())
		return
	}
	fmt.Fprintf(w, "Error: %v\n", err)
}

func execute(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	c := &cli{}
	rootCmd := newRootCmd(c)
	rootCmd.SetArgs(args)
	rootCmd.SetIn(stdin)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		c.reportError(stderr, err)
		return err
	}
	return nil
}

// Execute runs the command line and exits non-zero on failure.
func Execute() {
	if err := execute(context.Background(), os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		os.Exit(1)
	}
}
