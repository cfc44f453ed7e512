// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"cmp"
	"fmt"
	"slices"
)

// Queue accumulates the primitives of one frame.
//
// Primitives may only be enqueued while the queue is open. Drain hands out
// the whole frame sorted by Z and closes the queue in the same step, so a
// frame is never partially drained.
//
// The zero value is a closed, empty queue.
type Queue struct {
	items []Primitive
	open  bool
}

// Open starts a new frame. It fails with ErrInvalidState if a frame is
// already open.
func (q *Queue) Open() error {
	if q.open {
		return fmt.Errorf("%w: frame already open", ErrInvalidState)
	}
	q.open = true
	q.items = q.items[:0]
	return nil
}

// IsOpen reports whether a frame is open.
func (q *Queue) IsOpen() bool {
	return q.open
}

// Enqueue appends p to the open frame.
func (q *Queue) Enqueue(p Primitive) error {
	if !q.open {
		return fmt.Errorf("%w: enqueue %s outside a frame", ErrInvalidState, p.Kind)
	}
	if err := p.Validate(); err != nil {
		return err
	}
	q.items = append(q.items, p)
	return nil
}

// Len returns the number of primitives in the open frame.
func (q *Queue) Len() int {
	return len(q.items)
}

// Drain closes the frame and returns its primitives in paint order.
// The returned slice belongs to the caller.
func (q *Queue) Drain() ([]Primitive, error) {
	if !q.open {
		return nil, fmt.Errorf("%w: drain without an open frame", ErrInvalidState)
	}
	out := slices.Clone(q.items)
	SortByZ(out)
	q.reset()
	return out, nil
}

// Discard drops the open frame, if any.
func (q *Queue) Discard() {
	q.reset()
}

func (q *Queue) reset() {
	clear(q.items)
	q.items = q.items[:0]
	q.open = false
}

// SortByZ orders prims by ascending Z. Equal Z values keep their relative
// order. NaN sorts before every number.
func SortByZ(prims []Primitive) {
	slices.SortStableFunc(prims, func(a, b Primitive) int {
		return cmp.Compare(a.Z, b.Z)
	})
}
