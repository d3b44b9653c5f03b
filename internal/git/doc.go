// Package git provides the repository adapter used by trail.
//
// It wraps git command execution and go-git object access behind a single
// Repository handle that answers:
//   - Revision resolution (rev-parse, short hashes, name-rev)
//   - Branch queries (branches pointing at or containing a commit)
//   - History enumeration (topologically ordered commit ranges with parents)
//   - Commit details (subject, touched files, patch-id, trailers)
//   - Interactive rewrites (git rebase -i with a custom sequence editor)
//
// This package should be the only place where direct git commands are executed.
package git
