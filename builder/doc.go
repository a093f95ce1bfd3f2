// Package builder assembles core.Graph fixtures and random graphs.
//
// A Constructor is a closure that mutates a graph under a resolved,
// immutable builderConfig. BuildGraph creates the graph, resolves options and
// runs constructors in order, so composite fixtures are deterministic:
// same constructors, same options, same seed ⇒ same graph.
//
// Topologies: Path, Cycle, Complete, Star, Wheel, CompleteBipartite and the
// Erdős–Rényi sampler RandomGNP used by the counterexample search.
// Vertex labels come from an IDFn (decimal "0","1",... by default).
// ParseTopology and ParseIDScheme read the textual forms used by the
// "graph new --topology" and "graph extend" commands.
package builder
