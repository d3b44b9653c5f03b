// Package actions provides high-level business logic for CLI commands.
//
// Each action corresponds to a trail command (evolve, impact, describe)
// and orchestrates the git, evolve and impact packages.
//
// Key patterns:
//   - Actions accept runtime.Context which provides the repository, Splog and settings
//   - Actions take an Options struct and write results to the given writer
//   - Nothing is changed in the repository until the whole operation has been validated
package actions
