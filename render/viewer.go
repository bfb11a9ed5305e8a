package render

import (
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	screenWidth  = 640
	screenHeight = 480
)

// Options configure the window.
type Options struct {
	Width       int
	Height      int
	StrokeWidth float32
	// Duration closes the window after the given time. Zero keeps it open
	// until Escape or Q is pressed or the window is closed.
	Duration   time.Duration
	Background color.Color
	Foreground color.Color
	// Filled draws shaded faces of scenes that have them, in FaceColor.
	Filled    bool
	FaceColor color.RGBA
}

func DefaultOptions() Options {
	return Options{
		Width:       screenWidth,
		Height:      screenHeight,
		StrokeWidth: 1,
		Background:  color.White,
		Foreground:  color.Black,
		FaceColor:   color.RGBA{R: 90, G: 140, B: 220, A: 255},
	}
}

func (o Options) withDefaults() Options {
	d := DefaultOptions()
	if o.Width <= 0 {
		o.Width = d.Width
	}
	if o.Height <= 0 {
		o.Height = d.Height
	}
	if o.StrokeWidth <= 0 {
		o.StrokeWidth = d.StrokeWidth
	}
	if o.Background == nil {
		o.Background = d.Background
	}
	if o.Foreground == nil {
		o.Foreground = d.Foreground
	}
	if o.FaceColor == (color.RGBA{}) {
		o.FaceColor = d.FaceColor
	}
	return o
}

// Page is one scene and the window title shown with it.
type Page struct {
	Title string
	Scene Scene
}

// Viewer is an ebiten.Game stepping through one or more pages. Space, Enter
// or the right arrow moves to the next page, wrapping around. With a
// Duration each page is shown that long and the window closes after the
// last one.
type Viewer struct {
	pages   []Page
	current int
	titled  int
	opts    Options
	started time.Time

	lastX, lastY int
	dragged      bool
}

func NewViewer(pages []Page, opts Options) *Viewer {
	return &Viewer{pages: pages, titled: -1, opts: opts.withDefaults()}
}

func (v *Viewer) page() Page {
	return v.pages[v.current]
}

// next moves to the following page and restarts the page timer.
func (v *Viewer) next() {
	v.current = (v.current + 1) % len(v.pages)
	v.started = time.Time{}
	v.dragged = false
}

func (v *Viewer) expired(now time.Time) bool {
	if v.opts.Duration <= 0 {
		return false
	}
	if v.started.IsZero() {
		v.started = now
		return false
	}
	return now.Sub(v.started) >= v.opts.Duration
}

// tick moves past a page whose time is up. It reports true once the last
// page has run out.
func (v *Viewer) tick(now time.Time) bool {
	if !v.expired(now) {
		return false
	}
	if v.current == len(v.pages)-1 {
		return true
	}
	v.next()
	v.started = now
	return false
}

func (v *Viewer) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	if v.tick(time.Now()) {
		return ebiten.Termination
	}
	if len(v.pages) > 1 && (inpututil.IsKeyJustPressed(ebiten.KeySpace) ||
		inpututil.IsKeyJustPressed(ebiten.KeyEnter) ||
		inpututil.IsKeyJustPressed(ebiten.KeyArrowRight)) {
		v.next()
	}
	if v.titled != v.current {
		ebiten.SetWindowTitle(v.page().Title)
		v.titled = v.current
	}

	orbiter, ok := v.page().Scene.(Orbiter)
	if !ok {
		return nil
	}
	x, y := ebiten.CursorPosition()
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		if v.dragged {
			orbiter.Orbit(float64(x-v.lastX), float64(y-v.lastY))
		}
		v.dragged = true
	} else {
		v.dragged = false
	}
	v.lastX, v.lastY = x, y
	return nil
}

func (v *Viewer) Draw(screen *ebiten.Image) {
	screen.Fill(v.opts.Background)
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	scene := v.page().Scene
	if filler, ok := scene.(Filler); ok && v.opts.Filled {
		for _, p := range filler.Polygons(w, h, v.opts.FaceColor) {
			p.draw(screen)
		}
	}
	for _, s := range scene.Segments(w, h) {
		vector.StrokeLine(screen, s.X1, s.Y1, s.X2, s.Y2, v.opts.StrokeWidth, v.opts.Foreground, true)
	}
}

func (v *Viewer) Layout(outsideWidth, outsideHeight int) (int, int) {
	return v.opts.Width, v.opts.Height
}

// Show opens one window for all pages and blocks until it is closed. The game
// loop can only run once per process, so callers collect every page first.
// With no pages it returns at once.
func Show(pages []Page, opts Options) error {
	if len(pages) == 0 {
		return nil
	}
	viewer := NewViewer(pages, opts)
	ebiten.SetWindowSize(viewer.opts.Width, viewer.opts.Height)
	ebiten.SetWindowTitle(pages[0].Title)
	viewer.titled = 0
	return ebiten.RunGame(viewer)
}
