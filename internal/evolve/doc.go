// Package evolve plans the replay of a branch stack onto a new base.
//
// Given the commit a stack used to sit on (base) and the commit it should move
// to (onto), the Planner emits a todo list for `git rebase -i` that picks every
// commit above base exactly once, labels each picked commit so later commits can
// reset back to it, and force-moves every affected branch as soon as its tip has
// been replayed. Forks inside the stack are handled with a reset to the fork
// point before the second lineage is replayed.
package evolve
