package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"

	"github.com/aretw0/vibinremote"
	"github.com/aretw0/vibinremote/internal/adapters/gohook"
	httpAdapter "github.com/aretw0/vibinremote/internal/adapters/http"
	"github.com/aretw0/vibinremote/internal/presentation/tui"
	"github.com/aretw0/vibinremote/pkg/capture"
	"github.com/aretw0/vibinremote/pkg/config"
	"github.com/aretw0/vibinremote/pkg/observability"
)

type runOptions struct {
	configPath  string
	metricsAddr string
	eventsPath  string
	noBanner    bool
}

func addRunFlags(cmd *cobra.Command, opts *runOptions) {
	cmd.Flags().StringVarP(&opts.configPath, "config", "c", "", "Configuration filename (JSON or YAML)")
	cmd.Flags().StringVar(&opts.metricsAddr, "metrics-addr", "", "Serve /metrics, /healthz and /keys on this address (e.g. :9090)")
	cmd.Flags().StringVar(&opts.eventsPath, "events", "", "Replay key events from a script file ('-' for stdin) instead of the global hook")
	cmd.Flags().BoolVar(&opts.noBanner, "no-banner", false, "Do not print the startup banner")
	_ = cmd.MarkFlagRequired("config")
}

func newRunCmd(c *cli) *cobra.Command {
	opts := &runOptions{}
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Listen for key presses and send the configured commands",
		Long:  `Loads the configuration, then blocks listening for key releases until interrupted.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runRemote(cmd, opts)
		},
	}
	addRunFlags(cmd, opts)
	return cmd
}

func (c *cli) runRemote(cmd *cobra.Command, opts *runOptions) error {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return err
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	remote, err := vibinremote.New(cfg,
		vibinremote.WithLogger(c.logger),
		vibinremote.WithMetrics(observability.NewMetrics(reg)),
	)
	if err != nil {
		return err
	}

	source, closeSource, err := c.openSource(cmd, opts.eventsPath)
	if err != nil {
		return err
	}
	defer closeSource()

	// Channel to listen for interrupt or terminate signals.
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if opts.metricsAddr != "" {
		srv := &http.Server{
			Addr:    opts.metricsAddr,
			Handler: httpAdapter.NewHandler(remote.Table(), remote.BaseURL(), reg),
		}
		go func() {
			c.logger.Info("Serving status endpoint", "addr", srv.Addr)
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				c.logger.Error("Status endpoint failed", "error", err)
			}
		}()
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := srv.Shutdown(shutdownCtx); err != nil {
				c.logger.Warn("Status endpoint shutdown incomplete", "error", err)
			}
		}()
	}

	if !opts.noBanner && tui.IsTerminal(cmd.ErrOrStderr()) {
		tui.PrintBanner(cmd.ErrOrStderr(), strings.TrimSpace(vibinremote.Version))
	}

	return remote.Run(ctx, source)
}

// openSource selects the global hook, or a key script when --events is set.
func (c *cli) openSource(cmd *cobra.Command, eventsPath string) (capture.Source, func(), error) {
	switch eventsPath {
	case "":
		return gohook.New(gohook.WithLogger(c.logger)), func() {}, nil
	case "-":
		return capture.NewScriptSource(cmd.InOrStdin()), func() {}, nil
	default:
		f, err := os.Open(eventsPath)
		if err != nil {
			return nil, nil, fmt.Errorf("could not open key script: %w", err)
		}
		return capture.NewScriptSource(f), func() { f.Close() }, nil
	}
}
