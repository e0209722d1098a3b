package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/kcaldas/lineedit/pkg/keymap"
	"github.com/spf13/cobra"
)

func newKeysCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "keys",
		Short: "List key bindings",
		Long:  `List the key bindings in effect after applying the bindings section of the config file.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			keys, err := keymap.New(opts.settings.Bindings)
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for _, b := range keys.Bindings() {
				fmt.Fprintf(w, "%s\t%s\n", b.Action, b.Key)
			}
			return w.Flush()
		},
	}
}
