// SPDX-License-Identifier: MIT
// Package: cliquespec/builder
//
// topology.go — textual topology names, e.g. "cycle:5", "kbip:2,3", "gnp:8,0.4".

package builder

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseTopology resolves one topology name into its Constructor:
//
//	path:N  cycle:N  complete:N  star:N  wheel:N  kbip:A,B  gnp:N,P
//
// Size checks stay with the constructors; ParseTopology only rejects names it
// cannot read (ErrUnknownScheme).
func ParseTopology(s string) (Constructor, error) {
	kind, args, _ := strings.Cut(strings.TrimSpace(s), ":")
	fields := strings.Split(args, ",")
	bad := func() (Constructor, error) {
		return nil, fmt.Errorf("ParseTopology(%q): %w", s, ErrUnknownScheme)
	}

	ints := func(want int) ([]int, bool) {
		if len(fields) != want {
			return nil, false
		}
		out := make([]int, want)
		for i, f := range fields {
			n, err := strconv.Atoi(strings.TrimSpace(f))
			if err != nil {
				return nil, false
			}
			out[i] = n
		}
		return out, true
	}

	switch kind {
	case "path", "cycle", "complete", "star", "wheel":
		n, ok := ints(1)
		if !ok {
			return bad()
		}
		return map[string]func(int) Constructor{
			"path":     Path,
			"cycle":    Cycle,
			"complete": Complete,
			"star":     Star,
			"wheel":    Wheel,
		}[kind](n[0]), nil
	case "kbip":
		n, ok := ints(2)
		if !ok {
			return bad()
		}
		return CompleteBipartite(n[0], n[1]), nil
	case "gnp":
		if len(fields) != 2 {
			return bad()
		}
		n, err := strconv.Atoi(strings.TrimSpace(fields[0]))
		if err != nil {
			return bad()
		}
		p, err := strconv.ParseFloat(strings.TrimSpace(fields[1]), 64)
		if err != nil {
			return bad()
		}
		return RandomGNP(n, p), nil
	}

	return bad()
}
