package pocketui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/pocketui/pocketui/raster"
)

func newDefaultBackend() Backend { return &EbitenBackend{} }

// EbitenBackend presents frames in an OS window via ebiten and feeds
// mouse and touch events back as input. It is the default backend.
type EbitenBackend struct{}

// Run opens the window and blocks until it closes.
func (b *EbitenBackend) Run(title string, width, height int, frame FrameFunc, input InputFunc) error {
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowSize(width, height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetScreenClearedEveryFrame(false)

	g := &ebitenGame{frame: frame, input: input}
	if err := ebiten.RunGame(g); err != nil {
		return err
	}
	return nil
}

// ScreenSize reports the primary monitor size.
func (b *EbitenBackend) ScreenSize() (int, int) {
	return ebiten.Monitor().Size()
}

type ebitenGame struct {
	frame FrameFunc
	input InputFunc

	surface raster.Surface
	w, h    int

	mouseDown bool
	touchIDs  []ebiten.TouchID

	frameImage *ebiten.Image
}

func (g *ebitenGame) Update() error {
	if g.surface == nil {
		return nil
	}
	g.pumpMouse()
	g.pumpTouches()

	if !g.frame(g.surface) {
		return ebiten.Termination
	}
	return nil
}

// pumpMouse maps the left button to the single pointer touch.
func (g *ebitenGame) pumpMouse() {
	x, y := ebiten.CursorPosition()
	fx, fy := float64(x), float64(y)

	switch {
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft):
		g.mouseDown = true
		g.input(InputDown, fx, fy, MouseTouchID)
	case g.mouseDown && ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft):
		g.input(InputMove, fx, fy, MouseTouchID)
	case g.mouseDown && inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft):
		g.mouseDown = false
		g.input(InputUp, fx, fy, MouseTouchID)
	}
}

// pumpTouches forwards finger events with their backend ids, which are
// non-negative and so never collide with the pointer id.
func (g *ebitenGame) pumpTouches() {
	g.touchIDs = inpututil.AppendJustPressedTouchIDs(g.touchIDs[:0])
	for _, id := range g.touchIDs {
		x, y := ebiten.TouchPosition(id)
		g.input(InputDown, float64(x), float64(y), int(id))
	}

	g.touchIDs = ebiten.AppendTouchIDs(g.touchIDs[:0])
	for _, id := range g.touchIDs {
		if inpututil.TouchPressDuration(id) <= 1 {
			continue
		}
		x, y := ebiten.TouchPosition(id)
		g.input(InputMove, float64(x), float64(y), int(id))
	}

	g.touchIDs = inpututil.AppendJustReleasedTouchIDs(g.touchIDs[:0])
	for _, id := range g.touchIDs {
		x, y := inpututil.TouchPositionInPreviousTick(id)
		g.input(InputUp, float64(x), float64(y), int(id))
	}
}

func (g *ebitenGame) Draw(screen *ebiten.Image) {
	if g.surface == nil {
		return
	}
	if g.frameImage == nil {
		g.frameImage = ebiten.NewImage(g.w, g.h)
	}
	g.frameImage.WritePixels(g.surface.Pixels())
	screen.DrawImage(g.frameImage, nil)
}

// Layout tracks live resizes by reallocating the surface; the window
// loop picks the new size up on its next frame.
func (g *ebitenGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	outsideWidth = max(outsideWidth, 1)
	outsideHeight = max(outsideHeight, 1)
	if outsideWidth != g.w || outsideHeight != g.h {
		g.w, g.h = outsideWidth, outsideHeight
		g.surface = raster.New(g.w, g.h)
		g.surface.SetAntiAlias(antialias)
		g.frameImage = nil
	}
	return g.w, g.h
}
