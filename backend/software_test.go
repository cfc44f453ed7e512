package backend

import (
	"errors"
	"image"
	"testing"

	"github.com/gogpu/gfx/render"
)

func newSoftware(t *testing.T, w, h int) *Software {
	t.Helper()
	s := NewSoftware()
	if err := s.Init(w, h); err != nil {
		t.Fatalf("Init(%d, %d) error = %v", w, h, err)
	}
	return s
}

func quad(x0, y0, x1, y1 float64, c render.Color, z render.ZPos) render.Primitive {
	return render.NewQuad(
		render.Vertex{X: x0, Y: y0, Color: c},
		render.Vertex{X: x1, Y: y0, Color: c},
		render.Vertex{X: x1, Y: y1, Color: c},
		render.Vertex{X: x0, Y: y1, Color: c},
		z, render.AlphaDefault,
	)
}

func TestSoftwareLifecycle(t *testing.T) {
	s := NewSoftware()
	if s.Ready() {
		t.Error("Ready() = true before Init")
	}
	if err := s.Clear(render.Black); !errors.Is(err, ErrNotInitialized) {
		t.Errorf("Clear before Init error = %v, want ErrNotInitialized", err)
	}
	if err := s.Init(0, 10); !errors.Is(err, ErrInvalidSize) {
		t.Errorf("Init(0, 10) error = %v, want ErrInvalidSize", err)
	}
	if err := s.Init(8, 4); err != nil {
		t.Fatal(err)
	}
	if s.Width() != 8 || s.Height() != 4 {
		t.Errorf("size = %dx%d, want 8x4", s.Width(), s.Height())
	}

	s.SetLost(true)
	if s.Ready() {
		t.Error("Ready() = true while lost")
	}
	s.SetLost(false)

	if err := s.Close(); err != nil {
		t.Fatal(err)
	}
	if s.Ready() {
		t.Error("Ready() = true after Close")
	}
	if err := s.Present(); !errors.Is(err, ErrClosed) {
		t.Errorf("Present after Close error = %v, want ErrClosed", err)
	}
	if err := s.Close(); err != nil {
		t.Errorf("second Close() error = %v", err)
	}
}

func TestSoftwareLostSurfaceRefusesWork(t *testing.T) {
	s := newSoftware(t, 4, 4)
	if err := s.Clear(render.Black); err != nil {
		t.Fatal(err)
	}
	s.SetLost(true)

	p := quad(0, 0, 4, 4, render.White, 0)
	tests := []struct {
		name string
		call func() error
	}{
		{"Clear", func() error { return s.Clear(render.Red) }},
		{"DrawPrimitive", func() error { return s.DrawPrimitive(&p) }},
		{"Present", s.Present},
	}
	for _, tt := range tests {
		err := tt.call()
		if !errors.Is(err, ErrSurfaceLost) || !errors.Is(err, render.ErrDeviceUnavailable) {
			t.Errorf("%s while lost error = %v, want ErrSurfaceLost wrapping ErrDeviceUnavailable", tt.name, err)
		}
	}
	if got := s.At(1, 1); got != render.Black {
		t.Errorf("At(1, 1) = %v after refused draws, want %v", got, render.Black)
	}
	if s.Frames() != 0 {
		t.Errorf("Frames() = %d, want 0", s.Frames())
	}

	s.SetLost(false)
	if err := s.DrawPrimitive(&p); err != nil {
		t.Errorf("DrawPrimitive after restore error = %v", err)
	}
}

func TestSoftwareClear(t *testing.T) {
	s := newSoftware(t, 3, 2)
	if err := s.Clear(render.Fuchsia); err != nil {
		t.Fatal(err)
	}
	for y := 0; y < 2; y++ {
		for x := 0; x < 3; x++ {
			if got := s.At(x, y); got != render.Fuchsia {
				t.Errorf("At(%d,%d) = %v, want %v", x, y, got, render.Fuchsia)
			}
		}
	}
}

// Red opaque quad at z=0 under a 50% blue quad at z=1, on a black 640x480
// surface.
func TestScenarioAlphaOver(t *testing.T) {
	s := newSoftware(t, 640, 480)
	c := render.NewCompositor(s)

	if err := c.Begin(render.Black); err != nil {
		t.Fatal(err)
	}
	// Submit the top quad first: z, not submission order, decides.
	if err := c.Submit(quad(100, 100, 300, 300, render.ARGB(128, 0, 0, 255), 1)); err != nil {
		t.Fatal(err)
	}
	if err := c.Submit(quad(100, 100, 300, 300, render.Red, 0)); err != nil {
		t.Fatal(err)
	}
	if err := c.End(render.Identity()); err != nil {
		t.Fatal(err)
	}

	want := render.ARGB(255, 127, 0, 128)
	for _, p := range []image.Point{{100, 100}, {200, 200}, {299, 299}, {150, 250}} {
		if got := s.At(p.X, p.Y); got != want {
			t.Errorf("At(%v) = %v, want %v", p, got, want)
		}
	}
	if got := s.At(50, 50); got != render.Black {
		t.Errorf("uncovered pixel = %v, want black", got)
	}
	if got := s.At(300, 300); got != render.Black {
		t.Errorf("pixel past the quad edge = %v, want black", got)
	}
	if s.Frames() != 1 {
		t.Errorf("Frames() = %d, want 1", s.Frames())
	}
}

// Green then red triangle at the same z: red must end on top.
func TestScenarioEqualZSubmissionOrder(t *testing.T) {
	s := newSoftware(t, 64, 64)
	c := render.NewCompositor(s)

	tri := func(col render.Color) render.Primitive {
		return render.NewTriangle(
			render.Vertex{X: 0, Y: 0, Color: col},
			render.Vertex{X: 60, Y: 0, Color: col},
			render.Vertex{X: 0, Y: 60, Color: col},
			5, render.AlphaDefault,
		)
	}

	if err := c.Begin(render.Black); err != nil {
		t.Fatal(err)
	}
	if err := c.Submit(tri(render.Green)); err != nil {
		t.Fatal(err)
	}
	if err := c.Submit(tri(render.Red)); err != nil {
		t.Fatal(err)
	}
	if err := c.End(render.Identity()); err != nil {
		t.Fatal(err)
	}

	if got := s.At(10, 10); got != render.Red {
		t.Errorf("overlap = %v, want %v", got, render.Red)
	}
}

func TestTranslucentQuadHasNoSeam(t *testing.T) {
	s := newSoftware(t, 32, 32)
	if err := s.Clear(render.Black); err != nil {
		t.Fatal(err)
	}

	// A skewed quad whose diagonal crosses many pixel centres.
	p := render.NewQuad(
		render.Vertex{X: 2, Y: 2, Color: render.White.WithAlpha(128)},
		render.Vertex{X: 30, Y: 4, Color: render.White.WithAlpha(128)},
		render.Vertex{X: 28, Y: 30, Color: render.White.WithAlpha(128)},
		render.Vertex{X: 3, Y: 27, Color: render.White.WithAlpha(128)},
		0, render.AlphaDefault,
	)
	if err := s.DrawPrimitive(&p); err != nil {
		t.Fatal(err)
	}

	want := render.ARGB(255, 128, 128, 128)
	for y := 0; y < 32; y++ {
		for x := 0; x < 32; x++ {
			got := s.At(x, y)
			if got != render.Black && got != want {
				t.Fatalf("At(%d,%d) = %v, want %v or black", x, y, got, want)
			}
		}
	}
	if got := s.At(15, 15); got != want {
		t.Errorf("interior = %v, want %v", got, want)
	}
}

func TestSoftwareAdditiveAndMultiply(t *testing.T) {
	s := newSoftware(t, 4, 4)
	if err := s.Clear(render.RGB(100, 100, 100)); err != nil {
		t.Fatal(err)
	}

	add := quad(0, 0, 2, 4, render.RGB(100, 200, 0), 0)
	add.Mode = render.AlphaAdditive
	mul := quad(2, 0, 4, 4, render.RGB(255, 128, 0), 0)
	mul.Mode = render.AlphaMultiply

	for _, p := range []render.Primitive{add, mul} {
		if err := s.DrawPrimitive(&p); err != nil {
			t.Fatal(err)
		}
	}

	if got, want := s.At(0, 0), render.RGB(200, 255, 100); got != want {
		t.Errorf("additive = %v, want %v", got, want)
	}
	if got, want := s.At(3, 0), render.RGB(100, 50, 0); got != want {
		t.Errorf("multiply = %v, want %v", got, want)
	}
}

func TestSoftwareLine(t *testing.T) {
	s := newSoftware(t, 8, 8)
	if err := s.Clear(render.Black); err != nil {
		t.Fatal(err)
	}
	p := render.NewLine(
		render.Vertex{X: 0.5, Y: 3.5, Color: render.White},
		render.Vertex{X: 8.5, Y: 3.5, Color: render.White},
		0, render.AlphaDefault,
	)
	if err := s.DrawPrimitive(&p); err != nil {
		t.Fatal(err)
	}

	for x := 0; x < 8; x++ {
		if got := s.At(x, 3); got != render.White {
			t.Errorf("At(%d,3) = %v, want white", x, got)
		}
		if got := s.At(x, 4); got != render.Black {
			t.Errorf("At(%d,4) = %v, want black", x, got)
		}
	}
}

func TestSoftwareDegenerateDrawsNothing(t *testing.T) {
	s := newSoftware(t, 8, 8)
	if err := s.Clear(render.Black); err != nil {
		t.Fatal(err)
	}
	v := render.Vertex{X: 4, Y: 4, Color: render.White}
	for _, p := range []render.Primitive{
		render.NewTriangle(v, v, v, 0, render.AlphaDefault),
		render.NewQuad(v, v, v, v, 0, render.AlphaDefault),
	} {
		if err := s.DrawPrimitive(&p); err != nil {
			t.Fatal(err)
		}
	}
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			if got := s.At(x, y); got != render.Black {
				t.Fatalf("At(%d,%d) = %v, want black", x, y, got)
			}
		}
	}
}

func TestSoftwarePresentFunc(t *testing.T) {
	s := newSoftware(t, 2, 2)
	var got *image.NRGBA
	s.PresentFunc = func(frame *image.NRGBA) error {
		got = frame
		return nil
	}
	if err := s.Present(); err != nil {
		t.Fatal(err)
	}
	if got != s.Image() {
		t.Error("PresentFunc did not receive the framebuffer")
	}

	want := errors.New("vsync lost")
	s.PresentFunc = func(*image.NRGBA) error { return want }
	if err := s.Present(); !errors.Is(err, want) {
		t.Errorf("Present() error = %v, want %v", err, want)
	}
}
