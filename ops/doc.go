// Package ops implements the seven Corblivar layout mutation operators
// (swap within die, move across dies, swap across dies, rotate, reshape by
// random aspect ratio, flip direction, change T-junction count) along with
// exact, data-driven reversal via OpRecord.
//
// Every operator function returns (OpRecord, true) on success or
// (OpRecord{}, false) when no valid candidate exists (e.g. a CBL too
// short to swap within); a failed attempt is never counted as an inner SA
// step, and the caller should simply try another operator. Revert(rec)
// restores exactly the state captured in rec, never by re-deriving and
// applying an inverse operation, per Design Notes §9.
package ops
