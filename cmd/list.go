package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newListCmd(a *app, dir *string) *cobra.Command {
	var full bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print branches and tags without starting the picker",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			refs, _, err := a.loadRefs(cmd.Context(), *dir)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, ref := range refs {
				name := ref.Name
				if full {
					name = ref.FullName()
				}
				if _, err := fmt.Fprintln(out, name); err != nil {
					return err
				}
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&full, "full", false, "print fully qualified ref names")
	return cmd
}
