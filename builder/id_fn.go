// SPDX-License-Identifier: MIT
// Package: cliquespec/builder
//
// id_fn.go — vertex label schemes and their names.
//
// Labels never start with core.MirrorMarker, so generated graphs can always
// be blown up and saved by graphio.

package builder

import (
	"fmt"
	"strconv"
	"strings"
)

// IDFn maps a zero-based vertex index to its label. It must be pure.
type IDFn func(idx int) string

// DefaultIDFn labels vertices "0", "1", "2", ...
func DefaultIDFn(idx int) string {
	return strconv.Itoa(idx)
}

// SymbolIDFn labels vertices "a".."z", then "a1".."z1", "a2", ...
// Panics on a negative index.
func SymbolIDFn(idx int) string {
	if idx < 0 {
		panic(fmt.Sprintf("SymbolIDFn: negative index %d", idx))
	}
	letter := string(rune('a' + idx%26))
	if round := idx / 26; round > 0 {
		return letter + strconv.Itoa(round)
	}

	return letter
}

// ExcelColumnIDFn labels vertices like spreadsheet columns: "A".."Z", "AA", "AB", ...
// Panics on a negative index.
func ExcelColumnIDFn(idx int) string {
	if idx < 0 {
		panic(fmt.Sprintf("ExcelColumnIDFn: negative index %d", idx))
	}
	var b []byte
	for n := idx + 1; n > 0; n = (n - 1) / 26 {
		b = append([]byte{byte('A' + (n-1)%26)}, b...)
	}

	return string(b)
}

// SymbolNumberIDFn labels vertices prefix+"0", prefix+"1", ...
func SymbolNumberIDFn(prefix string) IDFn {
	return func(idx int) string {
		if idx < 0 {
			panic(fmt.Sprintf("SymbolNumberIDFn: negative index %d", idx))
		}
		return prefix + strconv.Itoa(idx)
	}
}

// WithSymbNumb labels vertices with SymbolNumberIDFn(prefix).
func WithSymbNumb(prefix string) BuilderOption {
	return WithIDScheme(SymbolNumberIDFn(prefix))
}

// WithSymbolIDs labels vertices with SymbolIDFn.
func WithSymbolIDs() BuilderOption {
	return WithIDScheme(SymbolIDFn)
}

// WithExcelColumnIDs labels vertices with ExcelColumnIDFn.
func WithExcelColumnIDs() BuilderOption {
	return WithIDScheme(ExcelColumnIDFn)
}

// ParseIDScheme resolves a scheme name: "decimal", "symbol", "excel" or
// "prefix:P". Unknown names and prefixes starting with the mirror marker
// are ErrUnknownScheme.
func ParseIDScheme(name string) (BuilderOption, error) {
	switch name {
	case "", "decimal":
		return WithIDScheme(DefaultIDFn), nil
	case "symbol":
		return WithSymbolIDs(), nil
	case "excel":
		return WithExcelColumnIDs(), nil
	}
	if prefix, ok := strings.CutPrefix(name, "prefix:"); ok && prefix != "" && !strings.HasPrefix(prefix, "-") {
		return WithSymbNumb(prefix), nil
	}

	return nil, fmt.Errorf("ParseIDScheme(%q): %w", name, ErrUnknownScheme)
}
