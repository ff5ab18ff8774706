// Package vertex names graph vertices that live on a 2D integer grid.
//
// A Name is an opaque, comparable identifier. Search code treats it as a
// plain map key; only heuristics and renderers decode it back into a
// Position.
//
// Encoding:
//
//	Position{X: 3, Y: -1}  ⇄  Name("3,-1")
//
// The comma separator keeps negative coordinates lossless, so
// Decode(Encode(p)) == p holds for every pair of ints.
//
// Errors:
//
//	ErrMalformedName – the name is not of the form "<int>,<int>".
package vertex
