// Package core defines the static, read-only data model shared by the
// siminf solver: compressed-column matrix views, model callback
// signatures, and the size bundle (Dims) threaded through every call.
//
// What
//
//   - Pattern: a non-owning column-pointer/row-index pair (no payload),
//     used for matrices that select rows without carrying numbers (G, E).
//   - CSC / CSCInt: a Pattern plus a float64 or int payload, used for
//     matrices that also carry values (N, S, S_shift).
//   - PropensityFunc / PostStepFunc: the two callback shapes a model
//     supplies; Model bundles Dims, the matrices, and the callbacks
//     into the one argument the solver needs.
//
// Why
//
//   - The solver never mutates these types; keeping them in a separate
//     package makes that contract explicit at the type level (core has
//     no dependency on solver or event).
//   - A compressed-column view is read many times (once per transition
//     fired, once per node) and built once; Pattern/CSC/CSCInt are
//     validated eagerly at construction so the hot path never re-checks
//     bounds.
//
// Complexity
//
//	Column/row lookups are O(1) for the pointer, O(k) to scan a column
//	of k entries. Validation at construction is O(nnz).
package core
