package main

import (
	"fmt"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
)

func newVerifyCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "verify <file>",
		Short: "Recompute every certificate and check it independently",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := a.engine(args[0])
			if err != nil {
				return err
			}
			standings, err := e.EliminateAll(cmd.Context())
			if err != nil {
				return err
			}

			eliminated := 0
			for _, st := range standings {
				if err := e.Verify(st.Team.Name, st.Result); err != nil {
					return eris.Wrapf(err, "verify %q", st.Team.Name)
				}
				if st.Result.IsEliminated() {
					eliminated++
				}
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d teams, %d eliminated, all certificates verified\n",
				len(standings), eliminated)
			return nil
		},
	}
}
