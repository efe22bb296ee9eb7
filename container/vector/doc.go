// Package vector provides Vector, a generic growable sequence with explicit
// storage management. A Vector tracks its logical size separately from the
// capacity of its backing block, which it owns through a single
// arrayptr.ArrayPtr. Copies are explicit (Clone, Assign) and produce an
// independent block; moves (Move, MoveFrom) transfer the block and empty the
// source.
//
// Unchecked accessors (Get, Set, Ref) trust the caller to stay below Len.
// Checked accessors (At, RefAt, SetAt) return an *IndexError wrapping
// ErrOutOfRange instead. Position-based Insert and Erase panic when given a
// position outside the live range.
package vector
