package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/pennant/elimination"
)

func newEliminateCmd(a *app) *cobra.Command {
	var teams []string

	cmd := &cobra.Command{
		Use:   "eliminate <file>",
		Short: "Print every team's elimination status and certificate",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := a.engine(args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			if len(teams) > 0 {
				for _, team := range teams {
					res, err := e.Result(cmd.Context(), team)
					if err != nil {
						return err
					}
					printResult(out, team, res)
				}
				return nil
			}

			standings, err := e.EliminateAll(cmd.Context())
			if err != nil {
				return err
			}
			for _, st := range standings {
				printResult(out, st.Team.Name, st.Result)
			}
			return nil
		},
	}
	cmd.Flags().StringArrayVar(&teams, "team", nil, "only decide this team (repeatable)")

	return cmd
}

func printResult(w io.Writer, team string, res elimination.Result) {
	if res.IsEliminated() {
		fmt.Fprintf(w, "%s is eliminated by the subset R = { %s }\n", team, strings.Join(res.Certificate, " "))
		return
	}
	fmt.Fprintf(w, "%s is not eliminated\n", team)
}
