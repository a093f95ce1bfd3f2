// Package config loads the cliquespec runtime configuration.
//
// Values resolve as defaults, then a YAML file, then CLIQUESPEC_* environment
// variables; the CLI applies its flags last. Validate runs on the merged
// result.
package config
