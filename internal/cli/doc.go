// Package cli implements the bili command line interface on top of cobra.
//
// Each subcommand maps to one sanitizer operation. Inputs come from the
// positional arguments or, when there are none, from stdin line by line.
// Defaults for --digits and --max-length come from Config, which is read from
// BILI_* environment variables.
package cli
