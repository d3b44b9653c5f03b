// Package config manages trail configuration.
//
// Settings live in trail.yml inside the repository's git directory and can be
// overridden with TRAIL_* environment variables.
package config
