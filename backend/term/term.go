// Package term presents frames of the software backend on a terminal.
//
// Every terminal cell shows two vertically stacked pixels with the upper
// half block rune: the foreground is the upper pixel, the background the
// lower one. Frames larger than the screen are sampled down to fit.
//
// Importing the package registers it as backend.NameTerminal:
//
//	import _ "github.com/gogpu/gfx/backend/term"
//
//	b, err := backend.Get(backend.NameTerminal)
package term

import (
	"fmt"
	"image"

	"github.com/gdamore/tcell/v2"

	"github.com/gogpu/gfx/backend"
	"github.com/gogpu/gfx/internal/logging"
	"github.com/gogpu/gfx/render"
)

// halfBlock is the upper half block. Its foreground paints the top half of
// the cell.
const halfBlock = '▀'

func init() {
	backend.Register(backend.NameTerminal, func() render.Backend {
		return New(nil)
	})
}

// Backend renders with backend.Software and presents to a tcell.Screen.
type Backend struct {
	*backend.Software

	screen tcell.Screen
	owned  bool
}

var _ render.Backend = (*Backend)(nil)

// New returns a terminal backend drawing to screen. With a nil screen, Init
// opens the controlling terminal and Close restores it.
//
// A screen passed in must already be initialized; the caller keeps
// ownership of it.
func New(screen tcell.Screen) *Backend {
	return &Backend{
		Software: backend.NewSoftware(),
		screen:   screen,
	}
}

// Screen returns the screen frames are presented to, or nil before Init
// when the backend opens its own.
func (b *Backend) Screen() tcell.Screen {
	return b.screen
}

// Init allocates the framebuffer and, if needed, opens the terminal. The
// size is checked before the terminal is touched, so a failed Init leaves
// it as it was.
func (b *Backend) Init(width, height int) error {
	if err := b.Software.Init(width, height); err != nil {
		return err
	}
	if b.screen == nil {
		s, err := tcell.NewScreen()
		if err != nil {
			return fmt.Errorf("term: open screen: %w", err)
		}
		if err := s.Init(); err != nil {
			return fmt.Errorf("term: init screen: %w", err)
		}
		s.HideCursor()
		b.screen = s
		b.owned = true
	}
	b.Software.PresentFunc = b.present
	cols, rows := b.screen.Size()
	logging.Logger().Info("term: presenting to terminal", "cols", cols, "rows", rows)
	return nil
}

// Ready reports whether a frame can be drawn and presented.
func (b *Backend) Ready() bool {
	return b.screen != nil && b.Software.Ready()
}

// Suspend hands the terminal back to the shell. Frames are refused until
// Resume.
func (b *Backend) Suspend() error {
	b.SetLost(true)
	if b.screen == nil {
		return nil
	}
	return b.screen.Suspend()
}

// Resume retakes the terminal after Suspend.
func (b *Backend) Resume() error {
	if b.screen != nil {
		if err := b.screen.Resume(); err != nil {
			return err
		}
	}
	b.SetLost(false)
	return nil
}

// Close releases the framebuffer and restores a terminal opened by Init.
func (b *Backend) Close() error {
	err := b.Software.Close()
	if b.owned && b.screen != nil {
		b.screen.Fini()
		b.screen = nil
		b.owned = false
	}
	return err
}

func (b *Backend) present(frame *image.NRGBA) error {
	cols, rows := b.screen.Size()
	w, h := frame.Rect.Dx(), frame.Rect.Dy()
	if cols <= 0 || rows <= 0 || w == 0 || h == 0 {
		return nil
	}

	// One pixel column per cell and two pixel rows per cell, shrunk to fit.
	cols = min(cols, w)
	rows = min(rows, (h+1)/2)

	for cy := 0; cy < rows; cy++ {
		top := (2 * cy) * h / (2 * rows)
		bottom := min((2*cy+1)*h/(2*rows), h-1)
		for cx := 0; cx < cols; cx++ {
			x := cx * w / cols
			style := tcell.StyleDefault.
				Foreground(cellColor(frame, x, top)).
				Background(cellColor(frame, x, bottom))
			b.screen.SetContent(cx, cy, halfBlock, nil, style)
		}
	}
	b.screen.Show()
	return nil
}

// cellColor returns the pixel at (x, y) composited over black.
func cellColor(frame *image.NRGBA, x, y int) tcell.Color {
	c := frame.NRGBAAt(frame.Rect.Min.X+x, frame.Rect.Min.Y+y)
	a := int32(c.A)
	return tcell.NewRGBColor(
		(int32(c.R)*a+127)/255,
		(int32(c.G)*a+127)/255,
		(int32(c.B)*a+127)/255,
	)
}
