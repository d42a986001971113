// Package frames holds the built-in detection frame table.
//
// A frame is four opaque 32-bit words. The table is fixed at compile time and
// never changes, so every function here is safe for concurrent use.
package frames

import (
	"errors"
	"fmt"
	"iter"
)

// Words is the number of 32-bit words in a single frame.
const Words = 4

// Frame is one detection pattern. The word layout is not interpreted.
type Frame [Words]uint32

// Entry pairs a frame with its position and symbolic name.
type Entry struct {
	Index int
	Name  string
	Frame Frame
}

// ErrOutOfRange is returned when an index falls outside [0, Count()).
var ErrOutOfRange = errors.New("frame index out of range")

var (
	person  = Frame{0xa0148120, 0x09c1c801, 0x409402c0, 0x00000002}
	person2 = Frame{0x804a0048, 0x39004e05, 0x002900d0, 0x00000009}
)

// The array length is the table length; there is no separate counter.
var table = [...]struct {
	name  string
	frame Frame
}{
	{"Person", person},
	{"Person2", person2},
}

// Count returns the number of frames in the table.
func Count() int {
	return len(table)
}

// Get returns a copy of the frame at index.
func Get(index int) (Frame, error) {
	if index < 0 || index >= len(table) {
		return Frame{}, fmt.Errorf("%w: %d not in [0, %d)", ErrOutOfRange, index, len(table))
	}
	return table[index].frame, nil
}

// Name returns the symbolic name of the frame at index.
func Name(index int) (string, error) {
	if index < 0 || index >= len(table) {
		return "", fmt.Errorf("%w: %d not in [0, %d)", ErrOutOfRange, index, len(table))
	}
	return table[index].name, nil
}

// IndexOf returns the index of the frame with the exact name.
func IndexOf(name string) (int, bool) {
	for i, e := range table {
		if e.name == name {
			return i, true
		}
	}
	return -1, false
}

// All yields (index, frame) pairs in table order. Each call starts over.
func All() iter.Seq2[int, Frame] {
	return func(yield func(int, Frame) bool) {
		for i, e := range table {
			if !yield(i, e.frame) {
				return
			}
		}
	}
}

// Entries is like All but includes each frame's name.
func Entries() iter.Seq[Entry] {
	return func(yield func(Entry) bool) {
		for i, e := range table {
			if !yield(Entry{Index: i, Name: e.name, Frame: e.frame}) {
				return
			}
		}
	}
}
