// Package demo holds the walkthrough catalog: the fixed list of array
// operations and the generators that produce their before/after snapshots.
//
//   - [Value]: immutable scalar or nested list
//   - [Snapshot]: labelled before/after values plus code text
//   - [Entry]: one operation with its generator
//   - [Catalog]: ordered, read-only set of entries
//
// Generators rebuild their input arrays on every call, so calling
// [Entry.Generate] twice yields equal snapshots.
package demo
