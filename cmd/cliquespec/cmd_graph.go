package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/cliquespec/builder"
	"github.com/katalvlaran/cliquespec/core"
	"github.com/katalvlaran/cliquespec/graphio"
)

func newGraphCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "graph",
		Short: "Create and edit graph files",
	}
	cmd.AddCommand(
		newGraphNewCmd(a),
		newGraphExtendCmd(a),
		newGraphAddNodeCmd(a),
		newGraphAddEdgeCmd(a),
		newGraphRemoveNodeCmd(a),
		newGraphClearCmd(a),
		newGraphShowCmd(a),
	)

	return cmd
}

// topologyFlags are the builder knobs shared by "graph new" and "graph extend".
type topologyFlags struct {
	topology  string
	ids       string
	seed      int64
	partition string
}

func (tf *topologyFlags) register(cmd *cobra.Command) {
	f := cmd.Flags()
	f.StringVar(&tf.topology, "topology", "",
		"generate path:N, cycle:N, complete:N, star:N, wheel:N, kbip:A,B or gnp:N,P")
	f.StringVar(&tf.ids, "ids", "decimal", "vertex labels: decimal, symbol, excel or prefix:P")
	f.Int64Var(&tf.seed, "seed", 0, "random seed for gnp (default: time)")
	f.StringVar(&tf.partition, "partition", "", "kbip side prefixes as LEFT,RIGHT (default L,R)")
}

// resolve turns the flags into a constructor and its builder options.
func (tf *topologyFlags) resolve(cmd *cobra.Command) (builder.Constructor, []builder.BuilderOption, error) {
	ctor, err := builder.ParseTopology(tf.topology)
	if err != nil {
		return nil, nil, usageError("%v", err)
	}
	idOpt, err := builder.ParseIDScheme(tf.ids)
	if err != nil {
		return nil, nil, usageError("%v", err)
	}

	seed := tf.seed
	if !cmd.Flags().Changed("seed") {
		seed = time.Now().UnixNano()
	}
	opts := []builder.BuilderOption{idOpt, builder.WithSeed(seed)}
	if tf.partition != "" {
		left, right, ok := strings.Cut(tf.partition, ",")
		if !ok {
			return nil, nil, usageError("--partition %q: want LEFT,RIGHT", tf.partition)
		}
		opts = append(opts, builder.WithPartitionPrefix(left, right))
	}

	return ctor, opts, nil
}

func newGraphNewCmd(a *app) *cobra.Command {
	var (
		force bool
		tf    topologyFlags
	)
	cmd := &cobra.Command{
		Use:   "new FILE",
		Short: "Create a graph file, empty or generated from --topology",
		Args:  exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := os.Stat(args[0]); err == nil && !force {
				return usageError("%s already exists (use --force to overwrite)", args[0])
			}
			if tf.topology == "" {
				return saveGraph(a, args[0], core.NewGraph())
			}
			ctor, opts, err := tf.resolve(cmd)
			if err != nil {
				return err
			}
			g, err := builder.BuildGraph(nil, opts, ctor)
			if err != nil {
				return err
			}
			return saveGraph(a, args[0], g)
		},
	}
	cmd.Flags().BoolVarP(&force, "force", "f", false, "overwrite an existing file")
	tf.register(cmd)

	return cmd
}

func newGraphExtendCmd(a *app) *cobra.Command {
	var tf topologyFlags
	cmd := &cobra.Command{
		Use:   "extend FILE --topology T",
		Short: "Add a generated topology to an existing graph as a disjoint part",
		Args:  exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if tf.topology == "" {
				return usageError("%s: --topology is required", cmd.CommandPath())
			}
			ctor, opts, err := tf.resolve(cmd)
			if err != nil {
				return err
			}
			return editGraph(a, args[0], func(g *core.Graph) error {
				return builder.Apply(g, opts, ctor)
			})
		},
	}
	tf.register(cmd)

	return cmd
}

func newGraphAddNodeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "add-node FILE LABEL...",
		Short: "Add vertices; a leading '-' names a mirror vertex",
		Args:  minArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			return editGraph(a, args[0], func(g *core.Graph) error {
				for _, s := range args[1:] {
					v, err := core.ParseVertexID(s)
					if err != nil {
						return err
					}
					if err = g.AddVertex(v); err != nil {
						return err
					}
				}
				return nil
			})
		},
	}
}

func newGraphAddEdgeCmd(a *app) *cobra.Command {
	var ensure bool
	cmd := &cobra.Command{
		Use:   "add-edge FILE U V",
		Short: "Add the undirected edge {U,V}",
		Args:  exactArgs(3),
		RunE: func(_ *cobra.Command, args []string) error {
			u, err := core.ParseVertexID(args[1])
			if err != nil {
				return usageError("%v", err)
			}
			v, err := core.ParseVertexID(args[2])
			if err != nil {
				return usageError("%v", err)
			}
			return editGraph(a, args[0], func(g *core.Graph) error {
				if ensure {
					if err := g.EnsureVertex(u); err != nil {
						return err
					}
					if err := g.EnsureVertex(v); err != nil {
						return err
					}
				}
				return g.AddEdge(u, v)
			})
		},
	}
	cmd.Flags().BoolVar(&ensure, "ensure", false, "add missing endpoints first")

	return cmd
}

func newGraphRemoveNodeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "remove-node FILE LABEL",
		Short: "Remove a vertex and its incident edges",
		Args:  exactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			v, err := core.ParseVertexID(args[1])
			if err != nil {
				return usageError("%v", err)
			}
			return editGraph(a, args[0], func(g *core.Graph) error { return g.RemoveVertex(v) })
		},
	}
}

func newGraphClearCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "clear FILE",
		Short: "Remove every vertex and edge",
		Args:  exactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return editGraph(a, args[0], func(g *core.Graph) error {
				g.Clear()
				return nil
			})
		},
	}
}

func newGraphShowCmd(a *app) *cobra.Command {
	var asYAML bool
	cmd := &cobra.Command{
		Use:   "show FILE",
		Short: "Print a graph",
		Args:  exactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			g, err := graphio.Load(args[0])
			if err != nil {
				return err
			}
			if asYAML {
				return graphio.Encode(a.out, g)
			}
			return describeGraph(a.out, g)
		},
	}
	cmd.Flags().BoolVar(&asYAML, "yaml", false, "print the YAML document")

	return cmd
}

// editGraph loads path, applies fn and saves the result. Nothing is written when fn fails.
func editGraph(a *app, path string, fn func(g *core.Graph) error) error {
	g, err := graphio.Load(path)
	if err != nil {
		return err
	}
	if err = fn(g); err != nil {
		if errors.Is(err, core.ErrEmptyLabel) {
			return usageError("%v", err)
		}
		return err
	}

	return saveGraph(a, path, g)
}

func saveGraph(a *app, path string, g *core.Graph) error {
	if err := graphio.Save(path, g); err != nil {
		return err
	}
	st := g.Stats()
	a.logger.Debug("graph saved", "path", path, "vertices", st.VertexCount, "edges", st.EdgeCount)

	return nil
}

func describeGraph(w io.Writer, g *core.Graph) error {
	st := g.Stats()
	vs := g.Vertices()
	labels := make([]string, len(vs))
	for i, v := range vs {
		labels[i] = v.String()
	}
	es := g.Edges()
	edges := make([]string, len(es))
	for i, e := range es {
		edges[i] = e.String()
	}

	var b strings.Builder
	fmt.Fprintf(&b, "vertices (%d, %d mirrors, %d isolated): %s\nedges (%d): %s\nadjacency:\n",
		st.VertexCount, st.MirrorCount, st.Isolated, strings.Join(labels, " "),
		st.EdgeCount, strings.Join(edges, " "))

	adj := g.AdjacencyList()
	for _, v := range vs {
		deg, err := g.Degree(v)
		if err != nil {
			return err
		}
		nbrs := make([]string, len(adj[v]))
		for i, u := range adj[v] {
			nbrs[i] = u.String()
		}
		fmt.Fprintf(&b, "  %s (%d): %s\n", v, deg, strings.Join(nbrs, " "))
	}

	_, err := io.WriteString(w, b.String())
	return err
}
