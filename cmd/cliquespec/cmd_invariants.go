package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/cliquespec/clique"
	"github.com/katalvlaran/cliquespec/graphio"
	"github.com/katalvlaran/cliquespec/invariant"
	"github.com/katalvlaran/cliquespec/matrix"
	"github.com/katalvlaran/cliquespec/search"
)

func newInvariantsCmd(a *app) *cobra.Command {
	var (
		inspect bool
		asYAML  bool
	)
	cmd := &cobra.Command{
		Use:   "invariants FILE",
		Short: "Compute λ, μ1 and μ2",
		Args:  exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := graphio.Load(args[0])
			if err != nil {
				return err
			}
			engine := invariant.NewEngine(
				invariant.WithLogger(a.logger),
				invariant.WithCatalogLimit(a.cfg.Engine.CatalogLimit),
			)

			if inspect {
				in, err := engine.Inspect(g)
				if err != nil {
					return err
				}
				fmt.Fprintf(a.out, "blow-up: %d vertices, %d edges\n", in.Blown.VertexCount(), in.Blown.EdgeCount())
				fmt.Fprintf(a.out, "valid cliques (%d):\n", in.Catalog.Len())
				for i, c := range in.Catalog.Cliques() {
					fmt.Fprintf(a.out, "  %3d %s\n", i, c)
				}
				moves, err := matrix.NonZero(in.Matrix)
				if err != nil {
					return err
				}
				fmt.Fprintf(a.out, "transition matrix (%d moves):\n%s", moves, in.Matrix)
				fmt.Fprintf(a.out, "dominant eigenvalue: %v\n", in.Dominant)
			}

			inv, err := engine.Compute(cmd.Context(), g)
			if err != nil {
				return err
			}
			if asYAML {
				enc := yaml.NewEncoder(a.out)
				defer enc.Close()
				return enc.Encode(inv)
			}
			_, err = fmt.Fprintf(a.out, "lambda: %.9f\nmu1:    %.9f\nmu2:    %.9f\n", inv.Lambda, inv.Mu1, inv.Mu2)
			return err
		},
	}
	cmd.Flags().BoolVar(&inspect, "inspect", false, "also print the blow-up catalog, matrix and dominant eigenvalue")
	cmd.Flags().BoolVar(&asYAML, "yaml", false, "print the invariants as YAML")

	return cmd
}

func newCliquesCmd(a *app) *cobra.Command {
	var all bool
	cmd := &cobra.Command{
		Use:   "cliques FILE",
		Short: "List maximal cliques, or every clique with its transition spectral radius",
		Args:  exactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			g, err := graphio.Load(args[0])
			if err != nil {
				return err
			}
			if !all {
				maximal, err := clique.Maximal(g)
				if err != nil {
					return err
				}
				fmt.Fprintf(a.out, "maximal cliques (%d):\n", len(maximal))
				for _, c := range maximal {
					fmt.Fprintf(a.out, "  %s\n", c)
				}
				return nil
			}

			ev, err := search.CliqueSpectralRadius(g)
			if err != nil {
				return err
			}
			fmt.Fprintf(a.out, "cliques (%d):\n", ev.Cliques.Len())
			for _, c := range ev.Cliques.Cliques() {
				fmt.Fprintf(a.out, "  %s\n", c)
			}
			_, err = fmt.Fprintf(a.out, "spectral radius: %.9f\n", ev.Radius)
			return err
		},
	}
	cmd.Flags().BoolVar(&all, "all", false, "enumerate every clique and report the clique spectral radius")

	return cmd
}
