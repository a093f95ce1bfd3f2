// SPDX-License-Identifier: MIT
// Package: cliquespec/clique
//
// types.go — Clique, Catalog and sentinel errors.

package clique

import (
	"errors"
	"strconv"
	"strings"

	"github.com/katalvlaran/cliquespec/core"
)

const (
	// MaxSubsetOrder bounds the size of a maximal clique whose power set is expanded.
	MaxSubsetOrder = 20

	// MaxPowersetOrder bounds the vertex count accepted by All.
	MaxPowersetOrder = 24
)

// ErrTooLarge is returned when an enumeration would exceed MaxSubsetOrder or MaxPowersetOrder.
var ErrTooLarge = errors.New("clique: graph too large for exhaustive enumeration")

// Clique is a duplicate-free vertex set kept in canonical (core.VertexID.Less) order.
type Clique []core.VertexID

// New returns the canonical Clique over vs; duplicates are collapsed.
func New(vs ...core.VertexID) Clique {
	c := make(Clique, len(vs))
	copy(c, vs)
	core.SortVertices(c)

	out := c[:0]
	for i, v := range c {
		if i > 0 && v == c[i-1] {
			continue
		}
		out = append(out, v)
	}

	return out
}

// Contains reports whether v is a member of c.
func (c Clique) Contains(v core.VertexID) bool {
	for _, u := range c {
		if u == v {
			return true
		}
	}
	return false
}

// Set returns c as a membership set.
func (c Clique) Set() map[core.VertexID]struct{} {
	s := make(map[core.VertexID]struct{}, len(c))
	for _, v := range c {
		s[v] = struct{}{}
	}
	return s
}

// Key is the canonical identity of c: two cliques with the same vertex set
// have the same Key. The encoding is length-prefixed, so labels may hold any byte.
func (c Clique) Key() string {
	var sb strings.Builder
	for _, v := range c {
		if v.Mirror {
			sb.WriteByte('m')
		} else {
			sb.WriteByte('o')
		}
		sb.WriteString(strconv.Itoa(len(v.Label)))
		sb.WriteByte(':')
		sb.WriteString(v.Label)
	}
	return sb.String()
}

// String renders c as "{a,b,-a}".
func (c Clique) String() string {
	parts := make([]string, len(c))
	for i, v := range c {
		parts[i] = v.String()
	}
	return "{" + strings.Join(parts, ",") + "}"
}

// HasInverse reports whether c contains some vertex together with its mirror partner.
func HasInverse(c Clique) bool {
	set := c.Set()
	for _, v := range c {
		if _, ok := set[v.Partner()]; ok {
			return true
		}
	}
	return false
}

// Less orders cliques by size, then element-wise by core.VertexID.Less.
func Less(a, b Clique) bool {
	if len(a) != len(b) {
		return len(a) < len(b)
	}
	for i := range a {
		if a[i] != b[i] {
			return a[i].Less(b[i])
		}
	}
	return false
}

// Catalog is an insertion-ordered set of cliques addressed by dense index.
type Catalog struct {
	cliques []Clique
	index   map[string]int
}

// NewCatalog returns an empty Catalog.
func NewCatalog() *Catalog {
	return &Catalog{index: make(map[string]int)}
}

// Add inserts c (canonicalised) unless an equal vertex set is already present.
// It returns the index of c and whether it was newly added.
func (cat *Catalog) Add(c Clique) (int, bool) {
	c = New(c...)
	key := c.Key()
	if i, ok := cat.index[key]; ok {
		return i, false
	}
	cat.index[key] = len(cat.cliques)
	cat.cliques = append(cat.cliques, c)

	return len(cat.cliques) - 1, true
}

// Len returns the number of distinct cliques.
func (cat *Catalog) Len() int { return len(cat.cliques) }

// At returns the clique at index i. It panics if i is out of range, like a slice.
func (cat *Catalog) At(i int) Clique { return cat.cliques[i] }

// Index returns the index of the clique with c's vertex set.
func (cat *Catalog) Index(c Clique) (int, bool) {
	i, ok := cat.index[New(c...).Key()]
	return i, ok
}

// Cliques returns a copy of the catalog entries in index order.
func (cat *Catalog) Cliques() []Clique {
	out := make([]Clique, len(cat.cliques))
	copy(out, cat.cliques)
	return out
}
