package term

import (
	"errors"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/gogpu/gfx/backend"
	"github.com/gogpu/gfx/render"
)

func newSimScreen(t *testing.T, cols, rows int) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	screen.SetSize(cols, rows)
	t.Cleanup(screen.Fini)
	return screen
}

func TestPresentHalfBlocks(t *testing.T) {
	screen := newSimScreen(t, 4, 2)
	b := New(screen)
	if err := b.Init(4, 4); err != nil {
		t.Fatal(err)
	}

	c := render.NewCompositor(b)
	if err := c.Begin(render.Red); err != nil {
		t.Fatal(err)
	}
	// Blue over pixel rows 1 and 2.
	blue := render.NewQuad(
		render.Vertex{X: 0, Y: 1, Color: render.Blue},
		render.Vertex{X: 4, Y: 1, Color: render.Blue},
		render.Vertex{X: 4, Y: 3, Color: render.Blue},
		render.Vertex{X: 0, Y: 3, Color: render.Blue},
		0, render.AlphaDefault,
	)
	if err := c.Submit(blue); err != nil {
		t.Fatal(err)
	}
	if err := c.End(render.Identity()); err != nil {
		t.Fatal(err)
	}

	cells, w, _ := screen.GetContents()
	red := tcell.NewRGBColor(255, 0, 0)
	blueC := tcell.NewRGBColor(0, 0, 255)

	tests := []struct {
		row    int
		fg, bg tcell.Color
	}{
		{0, red, blueC},
		{1, blueC, red},
	}
	for _, tt := range tests {
		for col := 0; col < 4; col++ {
			cell := cells[tt.row*w+col]
			if len(cell.Runes) == 0 || cell.Runes[0] != halfBlock {
				t.Errorf("cell (%d,%d) runes = %q, want %q", col, tt.row, cell.Runes, halfBlock)
			}
			fg, bg, _ := cell.Style.Decompose()
			if fg != tt.fg || bg != tt.bg {
				t.Errorf("cell (%d,%d) fg/bg = %v/%v, want %v/%v", col, tt.row, fg, bg, tt.fg, tt.bg)
			}
		}
	}
}

func TestPresentShrinksToScreen(t *testing.T) {
	screen := newSimScreen(t, 2, 1)
	b := New(screen)
	if err := b.Init(8, 8); err != nil {
		t.Fatal(err)
	}
	if err := b.Clear(render.Green); err != nil {
		t.Fatal(err)
	}
	if err := b.Present(); err != nil {
		t.Fatal(err)
	}

	cells, w, h := screen.GetContents()
	if w != 2 || h != 1 {
		t.Fatalf("screen = %dx%d, want 2x1", w, h)
	}
	green := tcell.NewRGBColor(0, 255, 0)
	for i, cell := range cells {
		if fg, bg, _ := cell.Style.Decompose(); fg != green || bg != green {
			t.Errorf("cell %d fg/bg = %v/%v, want green", i, fg, bg)
		}
	}
}

func TestSuspendMarksLost(t *testing.T) {
	screen := newSimScreen(t, 4, 2)
	b := New(screen)
	if err := b.Init(4, 4); err != nil {
		t.Fatal(err)
	}

	if err := b.Suspend(); err != nil {
		t.Fatal(err)
	}
	if b.Ready() {
		t.Error("Ready() = true while suspended")
	}

	c := render.NewCompositor(b)
	if err := c.Begin(render.Black); err == nil {
		t.Error("Begin() succeeded while suspended")
	}

	if err := b.Resume(); err != nil {
		t.Fatal(err)
	}
	if !b.Ready() {
		t.Error("Ready() = false after Resume")
	}
}

func TestSuspendDuringFrameAbandonsIt(t *testing.T) {
	screen := newSimScreen(t, 4, 2)
	b := New(screen)
	if err := b.Init(4, 4); err != nil {
		t.Fatal(err)
	}

	c := render.NewCompositor(b)
	if err := c.Begin(render.Red); err != nil {
		t.Fatal(err)
	}
	fill := render.NewQuad(
		render.Vertex{X: 0, Y: 0, Color: render.Blue},
		render.Vertex{X: 4, Y: 0, Color: render.Blue},
		render.Vertex{X: 4, Y: 4, Color: render.Blue},
		render.Vertex{X: 0, Y: 4, Color: render.Blue},
		0, render.AlphaDefault,
	)
	if err := c.Submit(fill); err != nil {
		t.Fatal(err)
	}
	if err := b.Suspend(); err != nil {
		t.Fatal(err)
	}

	if err := c.End(render.Identity()); !errors.Is(err, render.ErrDeviceUnavailable) {
		t.Errorf("End() error = %v, want ErrDeviceUnavailable", err)
	}
	if got := c.Stats(); got.Frames != 0 || got.Abandoned != 1 {
		t.Errorf("Stats() = %+v, want 0 frames and 1 abandoned", got)
	}
	if b.Frames() != 0 {
		t.Errorf("Frames() = %d, want 0", b.Frames())
	}
	cells, _, _ := screen.GetContents()
	for i, cell := range cells {
		if len(cell.Runes) > 0 && cell.Runes[0] == halfBlock {
			t.Errorf("cell %d was drawn while suspended", i)
		}
	}
}

func TestInitInvalidSizeLeavesTerminalAlone(t *testing.T) {
	b := New(nil)
	if err := b.Init(0, 4); !errors.Is(err, backend.ErrInvalidSize) {
		t.Errorf("Init(0, 4) error = %v, want ErrInvalidSize", err)
	}
	if b.Screen() != nil {
		t.Error("Init opened a terminal for an invalid size")
	}
	if b.Ready() {
		t.Error("Ready() = true after a failed Init")
	}
	if err := b.Close(); err != nil {
		t.Errorf("Close() error = %v", err)
	}
}

func TestTerminalRegistered(t *testing.T) {
	if !backend.IsRegistered(backend.NameTerminal) {
		t.Fatalf("%q not registered", backend.NameTerminal)
	}
	if got := backend.DefaultName(); got != backend.NameSoftware {
		t.Errorf("DefaultName() = %q, want %q", got, backend.NameSoftware)
	}
}

func TestCloseKeepsBorrowedScreen(t *testing.T) {
	screen := newSimScreen(t, 4, 2)
	b := New(screen)
	if err := b.Init(4, 4); err != nil {
		t.Fatal(err)
	}
	if err := b.Close(); err != nil {
		t.Fatal(err)
	}
	if b.Screen() != screen {
		t.Error("Close dropped a screen it does not own")
	}
}
