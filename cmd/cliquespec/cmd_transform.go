package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/cliquespec/core"
	"github.com/katalvlaran/cliquespec/graphio"
	"github.com/katalvlaran/cliquespec/transform"
)

// writeResult saves g to out, or prints its YAML document when out is empty.
func writeResult(a *app, out string, g *core.Graph) error {
	if out == "" {
		return graphio.Encode(a.out, g)
	}

	return saveGraph(a, out, g)
}

func newTransformCmd(a *app, use, short string, fn func(*core.Graph) (*core.Graph, error)) *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   use + " FILE",
		Short: short,
		Args:  exactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			g, err := graphio.Load(args[0])
			if err != nil {
				return err
			}
			res, err := fn(g)
			if err != nil {
				return err
			}
			return writeResult(a, out, res)
		},
	}
	cmd.Flags().StringVarP(&out, "output", "o", "", "output file (default: stdout)")

	return cmd
}

func newBlowupCmd(a *app) *cobra.Command {
	return newTransformCmd(a, "blowup", "Add a mirror for every vertex and the edges between them", transform.Blowup)
}

func newUnblowupCmd(a *app) *cobra.Command {
	return newTransformCmd(a, "unblowup", "Drop every mirror vertex", transform.Unblowup)
}

func newStarCmd(a *app) *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "star FILE VERTEX",
		Short: "Extract the subgraph induced by the neighbours of VERTEX",
		Args:  exactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			v, err := core.ParseVertexID(args[1])
			if err != nil {
				return usageError("%v", err)
			}
			g, err := graphio.Load(args[0])
			if err != nil {
				return err
			}
			st, err := transform.Star(g, v)
			if err != nil {
				return err
			}
			return writeResult(a, out, st)
		},
	}
	cmd.Flags().StringVarP(&out, "output", "o", "", "output file (default: stdout)")

	return cmd
}

func newJoinCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "join FILE",
		Short: "Report whether the graph is a join of two non-empty graphs",
		Args:  exactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			g, err := graphio.Load(args[0])
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(a.out, transform.IsJoin(g))
			return err
		},
	}
}
