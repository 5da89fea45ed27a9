package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/smazurov/vibelight/internal/effect"
)

// CreateEffectCmd creates the effect command.
func CreateEffectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "effect",
		Short: "List and resolve lighting effect tokens",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List every effect and its id",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			for _, e := range effect.All() {
				fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\n", int(e), e)
			}
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "parse <token>",
		Short: "Resolve a token; unknown tokens resolve to none",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			e := effect.Parse(args[0])
			if !effect.Known(args[0]) {
				fmt.Fprintf(cmd.ErrOrStderr(), "unknown effect %q, using %s\n", args[0], e)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\n", int(e), e)
		},
	})

	return cmd
}
