package vertex

import (
	"cmp"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrMalformedName indicates a Name that was not produced by Encode.
var ErrMalformedName = errors.New("vertex: malformed name")

// separator splits the X and Y components of a Name.
const separator = ","

// Name uniquely identifies a vertex. Treat it as opaque outside this package.
type Name string

// Position is an integer grid coordinate. X grows to the right, Y grows down.
type Position struct {
	X, Y int
}

// String renders p as "(x,y)".
func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Encode returns the canonical Name of p.
// Complexity: O(1).
func Encode(p Position) Name {
	return Name(strconv.Itoa(p.X) + separator + strconv.Itoa(p.Y))
}

// At is shorthand for Encode(Position{X: x, Y: y}).
func At(x, y int) Name {
	return Encode(Position{X: x, Y: y})
}

// Decode returns the Position encoded in n.
// Returns ErrMalformedName (wrapped with n) if n is not "<int>,<int>".
// Complexity: O(len(n)).
func Decode(n Name) (Position, error) {
	xs, ys, ok := strings.Cut(string(n), separator)
	if !ok {
		return Position{}, fmt.Errorf("%w: %q", ErrMalformedName, string(n))
	}
	x, err := strconv.Atoi(xs)
	if err != nil {
		return Position{}, fmt.Errorf("%w: %q", ErrMalformedName, string(n))
	}
	y, err := strconv.Atoi(ys)
	if err != nil {
		return Position{}, fmt.Errorf("%w: %q", ErrMalformedName, string(n))
	}

	return Position{X: x, Y: y}, nil
}

// MustDecode is like Decode but panics on a malformed name.
// Use it only on names built by Encode or At.
func MustDecode(n Name) Position {
	p, err := Decode(n)
	if err != nil {
		panic(err)
	}

	return p
}

// Position returns the decoded coordinate of n, panicking if n is malformed.
func (n Name) Position() Position {
	return MustDecode(n)
}

// Compare orders names row-major: by Y, then by X. gridgraph sorts
// region members with it.
// Names that do not decode sort after all decodable names, lexically among themselves.
func Compare(a, b Name) int {
	pa, errA := Decode(a)
	pb, errB := Decode(b)
	switch {
	case errA != nil && errB != nil:
		return cmp.Compare(a, b)
	case errA != nil:
		return 1
	case errB != nil:
		return -1
	}
	if c := cmp.Compare(pa.Y, pb.Y); c != 0 {
		return c
	}

	return cmp.Compare(pa.X, pb.X)
}
