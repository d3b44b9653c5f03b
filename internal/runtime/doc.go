// Package runtime provides the execution context for trail commands.
//
// It encapsulates shared dependencies needed by commands, such as the
// repository handle, logger, and effective configuration.
package runtime
