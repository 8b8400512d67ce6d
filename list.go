// Package selectlist provides an immutable ordered sequence with at most one
// selected item. Unselected items have type A, the selected item has its own
// type B, so the selected item can carry richer state than the rest (for
// example an in-place editor for the focused row of a list, while every other
// row stays a plain display value). When A and B coincide the structure is an
// ordinary sequence with a movable cursor.
//
// Every operation returns a new List; values are never mutated in place and
// are safe to share between readers.
package selectlist

import (
	"errors"
	"fmt"
)

// ErrIndexOutOfRange is returned by Select when the index does not fall
// inside [0, Len).
var ErrIndexOutOfRange = errors.New("index out of range")

// List is an ordered sequence of unselected items of type A with at most one
// selected item of type B. The logical order is the prefix, then the
// selection if present, then the suffix; indices handed to Select and
// reported by IndexedMap refer to that flattened order.
//
// The zero value is an empty list with no selection.
type List[A, B any] struct {
	before      []A
	selected    B
	hasSelected bool
	after       []A
}

// Empty returns a list with no items and no selection.
func Empty[A, B any]() List[A, B] {
	return List[A, B]{}
}

// Singleton returns a list whose only item is the selection v.
func Singleton[A, B any](v B) List[A, B] {
	return List[A, B]{selected: v, hasSelected: true}
}

// FromSlice returns a list holding items in order with nothing selected.
// The input slice is copied.
func FromSlice[A, B any](items []A) List[A, B] {
	if len(items) == 0 {
		return List[A, B]{}
	}
	before := make([]A, len(items))
	copy(before, items)
	return List[A, B]{before: before}
}

// Selected returns the selected item and whether one is present.
func (l List[A, B]) Selected() (B, bool) {
	return l.selected, l.hasSelected
}

// Len returns the total number of items, counting the selection.
func (l List[A, B]) Len() int {
	n := len(l.before) + len(l.after)
	if l.hasSelected {
		n++
	}
	return n
}

// Select makes the item at index the selection and returns the new list.
// Any existing selection is first demoted back to an unselected item through
// reconstruct, so the whole list is in the homogeneous order before the
// split; the item at index is then promoted through project. Everything
// before index becomes the prefix, everything after it the suffix, and the
// item count never changes.
//
// An index outside [0, Len) returns the list unchanged along with an error
// wrapping ErrIndexOutOfRange. Selecting out of range is reported rather
// than ignored so a caller bug cannot silently leave the list unselected.
func (l List[A, B]) Select(reconstruct func(B) A, project func(A) B, index int) (List[A, B], error) {
	if index < 0 || index >= l.Len() {
		return l, fmt.Errorf("select index %d with %d items: %w", index, l.Len(), ErrIndexOutOfRange)
	}
	flat := l.demote(reconstruct)
	return List[A, B]{
		before:      flat[:index:index],
		selected:    project(flat[index]),
		hasSelected: true,
		after:       flat[index+1:],
	}, nil
}

// Unselect demotes the selection through reconstruct and reinserts it as the
// first item of the suffix, keeping its logical position. Without a
// selection the list is returned unchanged, so Unselect is idempotent.
func (l List[A, B]) Unselect(reconstruct func(B) A) List[A, B] {
	if !l.hasSelected {
		return l
	}
	after := make([]A, 0, len(l.after)+1)
	after = append(after, reconstruct(l.selected))
	after = append(after, l.after...)
	return List[A, B]{before: l.before, after: after}
}

// demote rebuilds the homogeneous item order, converting the selection back
// through reconstruct. The returned slice is freshly allocated.
func (l List[A, B]) demote(reconstruct func(B) A) []A {
	flat := make([]A, 0, l.Len())
	flat = append(flat, l.before...)
	if l.hasSelected {
		flat = append(flat, reconstruct(l.selected))
	}
	flat = append(flat, l.after...)
	return flat
}
