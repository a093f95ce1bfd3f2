// SPDX-License-Identifier: MIT
// Package: cliquespec/search
//
// report.go — human-readable counterexample report and archive records.

package search

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/katalvlaran/cliquespec/archive"
	"github.com/katalvlaran/cliquespec/core"
	"github.com/katalvlaran/cliquespec/graphio"
	"github.com/katalvlaran/cliquespec/matrix"
)

// ErrNoCounterexample is returned when a report is requested for a result
// that holds none.
var ErrNoCounterexample = errors.New("search: result has no counterexample")

// Reporter publishes a found counterexample.
type Reporter interface {
	Report(res *Result) error
}

// Archiver persists a found counterexample; *archive.Store satisfies it.
type Archiver interface {
	Put(rec archive.Record) (archive.Record, error)
}

// TextReporter writes the report as plain text.
type TextReporter struct {
	W io.Writer
	// SortRows additionally prints each matrix with rows ordered by row sum.
	SortRows bool
}

// Report writes both graphs, their clique counts, matrices and radii.
func (r TextReporter) Report(res *Result) error {
	if res == nil || res.Counterexample == nil {
		return ErrNoCounterexample
	}
	o := res.Counterexample

	var b strings.Builder
	fmt.Fprintf(&b, "counterexample found: ρ1 < ρ2 with more cliques in G1\n")
	fmt.Fprintf(&b, "run %s, trial #%s (worker %d), after %s trials in %s\n",
		res.RunID, humanize.Comma(o.Seq), o.Worker, humanize.Comma(res.Trials), res.Elapsed.Round(time.Millisecond))
	writeSide(&b, "G1", o.G1, o.P1, o.Cliques1.Len(), o.M1, o.Rho1, r.SortRows)
	writeSide(&b, "G2", o.G2, o.P2, o.Cliques2.Len(), o.M2, o.Rho2, r.SortRows)
	fmt.Fprintf(&b, "ρ1 - ρ2 = %.6g\n", o.Rho1-o.Rho2)

	_, err := io.WriteString(r.W, b.String())
	return err
}

func writeSide(b *strings.Builder, name string, g *core.Graph, p float64, cliques int, m *matrix.Dense, rho float64, sorted bool) {
	fmt.Fprintf(b, "\n%s: order %d, %d edges (p=%.3f), %s cliques, ρ = %.9f\n",
		name, g.VertexCount(), g.EdgeCount(), p, humanize.Comma(int64(cliques)), rho)
	edges := g.Edges()
	parts := make([]string, len(edges))
	for i, e := range edges {
		parts[i] = e.String()
	}
	fmt.Fprintf(b, "edges: [%s]\n", strings.Join(parts, " "))
	if m == nil {
		return
	}
	fmt.Fprintf(b, "transition matrix (%dx%d):\n%s", m.Rows(), m.Cols(), m.String())
	if sorted {
		fmt.Fprintf(b, "rows sorted by sum:\n%s", matrix.SortRowsBySum(m).String())
	}
}

// NewRecord converts the counterexample of res into an archive record.
func NewRecord(res *Result, seed int64) (archive.Record, error) {
	if res == nil || res.Counterexample == nil {
		return archive.Record{}, ErrNoCounterexample
	}
	o := res.Counterexample

	d1, err := graphio.ToDocument(o.G1)
	if err != nil {
		return archive.Record{}, fmt.Errorf("NewRecord: %w", err)
	}
	d2, err := graphio.ToDocument(o.G2)
	if err != nil {
		return archive.Record{}, fmt.Errorf("NewRecord: %w", err)
	}

	return archive.Record{
		RunID:    res.RunID,
		Seed:     seed,
		Trial:    o.Seq,
		Graph1:   d1,
		Graph2:   d2,
		Cliques1: o.Cliques1.Len(),
		Cliques2: o.Cliques2.Len(),
		Matrix1:  o.M1.ToRows(),
		Matrix2:  o.M2.ToRows(),
		Rho1:     o.Rho1,
		Rho2:     o.Rho2,
	}, nil
}
