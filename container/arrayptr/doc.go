// Package arrayptr provides ArrayPtr, a single-owner handle to one
// contiguous backing block. Ownership moves only through explicit transfer
// calls (MoveFrom, Release, Swap); an ArrayPtr must not be copied by value,
// which go vet's copylocks check reports.
package arrayptr
