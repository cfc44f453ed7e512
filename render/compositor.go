// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"errors"
	"fmt"

	"github.com/gogpu/gfx/internal/logging"
)

// Stats counts compositor activity.
type Stats struct {
	// Frames is the number of frames presented.
	Frames uint64

	// Skipped is the number of Begin calls refused because the device was
	// unavailable.
	Skipped uint64

	// Abandoned is the number of frames dropped by a device failure during
	// End, or discarded with Abandon.
	Abandoned uint64

	// Primitives is the total number of primitives drawn.
	Primitives uint64

	// LastFrame is the number of primitives drawn by the latest presented
	// frame.
	LastFrame int
}

// Compositor turns a frame's primitives into backend draw calls.
//
// It enforces the frame lifecycle: Submit is valid only between a
// successful Begin and End, and End only after a successful Begin.
type Compositor struct {
	backend Backend
	queue   Queue
	stats   Stats
}

// NewCompositor returns a compositor drawing into b.
func NewCompositor(b Backend) *Compositor {
	return &Compositor{backend: b}
}

// Backend returns the backend the compositor draws into.
func (c *Compositor) Backend() Backend {
	return c.backend
}

// Begin opens a frame and clears the surface to clear.
//
// It returns an error wrapping ErrDeviceUnavailable when the backend is not
// ready or the clear fails; the frame stays closed and the caller should
// skip drawing until the next tick. Begin on an open frame returns
// ErrInvalidState.
func (c *Compositor) Begin(clear Color) error {
	if c.queue.IsOpen() {
		return fmt.Errorf("%w: begin while a frame is open", ErrInvalidState)
	}
	if c.backend == nil || !c.backend.Ready() {
		c.stats.Skipped++
		logging.Logger().Debug("render: frame skipped, device not ready")
		return ErrDeviceUnavailable
	}
	if err := c.backend.Clear(clear); err != nil {
		c.stats.Skipped++
		logging.Logger().Warn("render: clear failed", "err", err)
		return fmt.Errorf("%w: clear: %w", ErrDeviceUnavailable, err)
	}
	return c.queue.Open()
}

// Submit queues p for the open frame.
func (c *Compositor) Submit(p Primitive) error {
	return c.queue.Enqueue(p)
}

// Open reports whether a frame is open.
func (c *Compositor) Open() bool {
	return c.queue.IsOpen()
}

// Pending returns the number of primitives queued in the open frame.
func (c *Compositor) Pending() int {
	return c.queue.Len()
}

// End flushes the open frame. Primitives are drawn in ascending Z, equal Z
// in submission order, each vertex mapped through t. The frame is then
// presented.
//
// If the backend fails part way, the rest of the frame is abandoned and the
// error returned. The queue is empty and closed afterwards in every case.
func (c *Compositor) End(t Affine) error {
	prims, err := c.queue.Drain()
	if err != nil {
		return err
	}

	for i := range prims {
		p := prims[i].Transform(t)
		if err := c.backend.DrawPrimitive(&p); err != nil {
			c.abandon(err)
			return fmt.Errorf("render: draw %s %d of %d: %w", p.Kind, i+1, len(prims), err)
		}
	}

	if err := c.backend.Present(); err != nil {
		c.abandon(err)
		return fmt.Errorf("render: present: %w", err)
	}

	c.stats.Frames++
	c.stats.LastFrame = len(prims)
	c.stats.Primitives += uint64(len(prims))
	logging.Logger().Debug("render: frame presented", "primitives", len(prims))
	return nil
}

// Abandon discards the open frame without drawing it. It is a no-op when no
// frame is open.
func (c *Compositor) Abandon() {
	if !c.queue.IsOpen() {
		return
	}
	c.queue.Discard()
	c.abandon(errors.New("abandoned by caller"))
}

func (c *Compositor) abandon(cause error) {
	c.stats.Abandoned++
	logging.Logger().Warn("render: frame abandoned", "err", cause)
}

// Stats returns the activity counters.
func (c *Compositor) Stats() Stats {
	return c.stats
}
