package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aretw0/vibinremote"
	"github.com/aretw0/vibinremote/internal/presentation/tui"
	"github.com/aretw0/vibinremote/pkg/config"
)

func newValidateCmd(c *cli) *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check a configuration file and list its key bindings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}

			remote, err := vibinremote.New(cfg, vibinremote.WithLogger(c.logger))
			if err != nil {
				return err
			}

			var sb strings.Builder
			fmt.Fprintf(&sb, "# %s\n\n", configPath)
			fmt.Fprintf(&sb, "Vibin at `%s` (http timeout: %s)\n\n", cfg.Vibin, cfg.Timeout())
			sb.WriteString("| Key | URL |\n|---|---|\n")
			table := remote.Table()
			for _, k := range table.Keys() {
				action, _ := table.Lookup(k)
				fmt.Fprintf(&sb, "| %s | %s%s |\n", k, remote.BaseURL(), action.URL)
			}

			out, err := tui.NewRenderer(cmd.OutOrStdout())(sb.String())
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), out)

			c.logger.Info("Configuration is valid", "keys", table.Len())
			return nil
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Configuration filename (JSON or YAML)")
	_ = cmd.MarkFlagRequired("config")
	return cmd
}
