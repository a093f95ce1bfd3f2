// Package archive keeps counterexamples found by the search in a BadgerDB
// key-value store, so a long run's findings survive the process.
//
// Records are JSON values under the key prefix "cx/" and are identified by
// a UUID assigned on Put. The in-memory mode backs the tests.
package archive
