// Command gfxdemo renders a gfx demo scene to a PNG file or to the terminal.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"log"
	"log/slog"
	"math"
	"os"

	"github.com/gdamore/tcell/v2"

	"github.com/gogpu/gfx"
	"github.com/gogpu/gfx/backend"
	"github.com/gogpu/gfx/backend/term"
	"github.com/gogpu/gfx/display"
)

func main() {
	var (
		width      = flag.Int("width", 640, "requested display width")
		height     = flag.Int("height", 480, "requested display height")
		fullscreen = flag.Bool("fullscreen", false, "request a fullscreen mode")
		catalog    = flag.String("catalog", "", "display mode catalog (.yaml or .toml); built-in modes if empty")
		virtual    = flag.Float64("virtual", 0, "virtual width; height follows the display aspect (0 = device size)")
		output     = flag.String("output", "demo.png", "output file")
		onTerm     = flag.Bool("term", false, "present on the terminal instead of writing a PNG")
		verbose    = flag.Bool("v", false, "log to stderr")
	)
	flag.Parse()

	if *verbose {
		gfx.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	modes := display.DefaultCatalog()
	if *catalog != "" {
		c, err := display.LoadCatalogFile(*catalog)
		if err != nil {
			log.Fatalf("Failed to load catalog: %v", err)
		}
		modes = c
	}
	mode, ok := modes.Find(*width, *height, *fullscreen)
	if !ok {
		log.Fatalf("No display mode fits %dx%d (fullscreen=%t)", *width, *height, *fullscreen)
	}

	var opts []gfx.Option
	if *virtual > 0 {
		opts = append(opts, gfx.WithVirtualResolution(*virtual, *virtual*float64(mode.Height)/float64(mode.Width)))
	}

	if *onTerm {
		if err := runTerminal(mode, opts); err != nil {
			log.Fatal(err)
		}
		return
	}

	sw := backend.NewSoftware()
	g, err := gfx.New(mode, append(opts, gfx.WithBackend(sw))...)
	if err != nil {
		log.Fatalf("Failed to create graphics: %v", err)
	}
	defer g.Close()

	if err := drawFrame(g); err != nil {
		log.Fatalf("Failed to draw: %v", err)
	}
	if err := savePNG(*output, sw.Image()); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}

	log.Printf("Demo saved to %s (%s)\n", *output, mode)
}

// runTerminal presents the scene until a key is pressed, redrawing when the
// terminal is resized.
func runTerminal(mode display.Mode, opts []gfx.Option) error {
	tb := term.New(nil)
	g, err := gfx.New(mode, append(opts, gfx.WithBackend(tb))...)
	if err != nil {
		return fmt.Errorf("create graphics: %w", err)
	}
	defer g.Close()

	for {
		if err := drawFrame(g); err != nil {
			return err
		}
		switch tb.Screen().PollEvent().(type) {
		case *tcell.EventKey, nil:
			return nil
		case *tcell.EventResize:
			tb.Screen().Sync()
		}
	}
}

func drawFrame(g *gfx.Graphics) error {
	if !g.Begin(gfx.Black) {
		return nil
	}

	soft, err := checkerboard(g, gfx.BorderSoft)
	if err != nil {
		return err
	}
	defer soft.Release()
	hard, err := checkerboard(g, gfx.BorderHard)
	if err != nil {
		return err
	}
	defer hard.Release()

	draws := []func() error{
		func() error { return drawAlphaOver(g) },
		func() error { return drawEqualZ(g) },
		func() error { return drawFan(g) },
		func() error { return drawImages(g, soft, hard) },
	}
	for _, draw := range draws {
		if err := draw(); err != nil {
			return err
		}
	}
	return g.End()
}

// drawAlphaOver draws a translucent blue square over a red one. The blue
// square is submitted first; its higher Z puts it on top.
func drawAlphaOver(g *gfx.Graphics) error {
	if err := rect(g, 60, 60, 160, 160, gfx.ARGB(128, 0, 0, 255), 1); err != nil {
		return err
	}
	return rect(g, 10, 10, 110, 110, gfx.Red, 0)
}

// drawEqualZ draws a green and a red triangle at the same Z. The red one is
// submitted last and covers the green one.
func drawEqualZ(g *gfx.Graphics) error {
	if err := g.DrawTriangle(200, 20, gfx.Green, 300, 20, gfx.Green, 250, 120, gfx.Green, 2, gfx.AlphaDefault); err != nil {
		return err
	}
	return g.DrawTriangle(210, 30, gfx.Red, 290, 30, gfx.Red, 250, 110, gfx.Red, 2, gfx.AlphaDefault)
}

// drawFan draws gradient lines and an additive glow.
func drawFan(g *gfx.Graphics) error {
	const cx, cy, r = 420.0, 90.0, 70.0
	for i := range 24 {
		a := float64(i) * math.Pi / 12
		if err := g.DrawLine(cx, cy, gfx.White, cx+r*math.Cos(a), cy+r*math.Sin(a), gfx.Fuchsia, 3, gfx.AlphaDefault); err != nil {
			return err
		}
	}
	glow := gfx.ARGB(96, 255, 160, 0)
	return g.DrawQuad(cx-40, cy-40, glow, cx+40, cy-40, glow, cx+40, cy+40, glow, cx-40, cy+40, glow, 4, gfx.AlphaAdditive)
}

// drawImages draws the same tile with soft and with hard edges, scaled up,
// and a tinted copy multiplied over a gradient.
func drawImages(g *gfx.Graphics, soft, hard *gfx.Image) error {
	if err := g.DrawImage(soft, 20, 200, 0, 4, 4, gfx.White, gfx.AlphaDefault); err != nil {
		return err
	}
	if err := g.DrawImage(hard, 100, 200, 0, 4, 4, gfx.White, gfx.AlphaDefault); err != nil {
		return err
	}
	if err := g.DrawQuad(200, 200, gfx.Yellow, 330, 200, gfx.Aqua, 330, 330, gfx.Fuchsia, 200, 330, gfx.White, 0, gfx.AlphaDefault); err != nil {
		return err
	}
	return g.DrawImage(soft, 200, 200, 1, 8, 8, gfx.White, gfx.AlphaMultiply)
}

// checkerboard carves a 16x16 black and white checkerboard.
func checkerboard(g *gfx.Graphics, flags gfx.BorderFlags) (*gfx.Image, error) {
	bmp := image.NewNRGBA(image.Rect(0, 0, 16, 16))
	for y := range 16 {
		for x := range 16 {
			c := color.NRGBA{A: 255}
			if (x/4+y/4)%2 == 0 {
				c = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
			}
			bmp.SetNRGBA(x, y, c)
		}
	}
	return g.CreateImage(bmp, 0, 0, 16, 16, flags)
}

func rect(g *gfx.Graphics, x0, y0, x1, y1 float64, c gfx.Color, z gfx.ZPos) error {
	return g.DrawQuad(x0, y0, c, x1, y0, c, x1, y1, c, x0, y1, c, z, gfx.AlphaDefault)
}

func savePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
