// Package construction implements the interactive construction-mode
// state machine: a user picks an ObjectType, then supplies
// arguments one at a time by clicking existing objects or empty
// canvas space, with the partial selection re-checked against the
// type's argspec.Spec after every click.
//
// Speculative argument testing needs no rollback: at any point the
// current mouse position is tried as one more candidate Imp (a
// PointImp at the cursor, snapped to grid if requested) purely by
// re-running argspec.Check against [accepted... , hypothesis] — since
// Check/MatchingArgs are pure functions over their input slice, a
// rejected hypothesis leaves no trace to undo. Only once the user
// actually clicks does the hypothesis get appended to the accepted
// list for real.
package construction
