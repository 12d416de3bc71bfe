package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/younwookim/edge/internal/application/input"
	"github.com/younwookim/edge/internal/infrastructure/platform"
)

func newKeysCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "keys [button]",
		Short: "List the key bindings",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			buttons := make([]input.Button, 0, input.ButtonCount)
			if len(args) == 1 {
				b, err := input.ParseButton(args[0])
				if err != nil {
					return err
				}
				buttons = append(buttons, b)
			} else {
				for b := input.Button(0); b < input.ButtonCount; b++ {
					buttons = append(buttons, b)
				}
			}

			cfg, _, _, err := opts.load(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			km, err := platform.NewKeymap(cfg.Keys)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			for _, b := range buttons {
				names := make([]string, len(km[b]))
				for i, k := range km[b] {
					names[i] = k.String()
				}
				fmt.Fprintf(w, "%-17s %s\n", b, strings.Join(names, ", "))
			}
			if len(args) == 0 {
				fmt.Fprintf(w, "%-17s %s\n", "pointer", "mouse or touch; tap confirms, hold steers")
			}
			return nil
		},
	}
}
