package main

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aretw0/vibinremote/internal/presentation/tui"
	"github.com/aretw0/vibinremote/pkg/keys"
)

func newKeysCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "keys",
		Short: "List the key names accepted in the keymap",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var sb strings.Builder
			sb.WriteString("# Key names\n\n")
			for _, name := range keys.Names() {
				fmt.Fprintf(&sb, "- %s\n", name)
			}

			aliases := keys.Aliases()
			sb.WriteString("\n# Common spellings\n\nThese are not accepted; use the key name instead.\n\n| Written as | Key name |\n|---|---|\n")
			for _, alias := range slices.Sorted(maps.Keys(aliases)) {
				fmt.Fprintf(&sb, "| %s | %s |\n", alias, aliases[alias])
			}

			out, err := tui.NewRenderer(cmd.OutOrStdout())(sb.String())
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), out)
			return nil
		},
	}
}
