// Package host is the reference presentation layer for the cabinet core:
// a pixelgl window blitting cabinet.ScreenBuffer() frames, and keyboard
// input translated into cabinet input-port bits. It owns no emulation
// semantics.
package host

import (
	"fmt"
	"image"
	"image/color"
	"log"

	"github.com/faiface/pixel"
	"github.com/faiface/pixel/pixelgl"
	"github.com/faiface/pixel/text"
	"golang.org/x/image/colornames"
	"golang.org/x/image/font/basicfont"
)

const (
	cabinetW float64 = 224
	cabinetH float64 = 256
	scale    float64 = 2

	hudW float64 = 260
)

// Display owns the pixelgl window and the image.RGBA the cabinet's
// screen buffer is copied into each frame.
type Display struct {
	gameRgba *image.RGBA
	window   *pixelgl.Window
	matrix   pixel.Matrix

	hudAtlas *text.Atlas
	hudText  *text.Text

	debug bool
}

// NewDisplay opens a window sized to the cabinet's 224x256 frame at the
// fixed render scale, with an optional HUD panel showing the cycle count
// and the next interrupt when debug is true.
func NewDisplay(debug bool) *Display {
	rect := image.Rect(0, 0, int(cabinetW), int(cabinetH))
	gameRgba := image.NewRGBA(rect)

	screenW := cabinetW * scale
	if debug {
		screenW += hudW
	}

	cfg := pixelgl.WindowConfig{
		Title:  "Space Invaders",
		Bounds: pixel.R(0, 0, screenW, cabinetH*scale),
		VSync:  true,
	}
	window, err := pixelgl.NewWindow(cfg)
	if err != nil {
		log.Fatal("unable to create pixelgl window\n", err)
	}

	pic := pixel.PictureDataFromImage(gameRgba)
	matrix := pixel.IM.Moved(pic.Bounds().Center().Scaled(scale))
	matrix = matrix.Scaled(pic.Bounds().Center().Scaled(scale), scale)

	hudAtlas := text.NewAtlas(basicfont.Face7x13, text.ASCII)
	hudText := text.New(pixel.V(cabinetW*scale+8, cabinetH*scale-40), hudAtlas)

	return &Display{
		gameRgba: gameRgba,
		window:   window,
		matrix:   matrix,
		hudAtlas: hudAtlas,
		hudText:  hudText,
		debug:    debug,
	}
}

// Closed reports whether the user closed the window.
func (d *Display) Closed() bool { return d.window.Closed() }

// Window exposes the underlying pixelgl window so Input can poll it.
func (d *Display) Window() *pixelgl.Window { return d.window }

// Draw copies buf into the backing image.RGBA and blits it, drawing the
// optional debug HUD alongside it.
func (d *Display) Draw(buf [256][224][3]byte, cycles uint64, nextInterrupt uint8) {
	d.window.Clear(colornames.Black)

	for y := 0; y < 256; y++ {
		for x := 0; x < 224; x++ {
			px := buf[y][x]
			// The cabinet's y grows downward from the top of the tube;
			// image.RGBA's origin is bottom-left, so flip vertically.
			d.gameRgba.SetRGBA(x, 255-y, color.RGBA{R: px[0], G: px[1], B: px[2], A: 0xFF})
		}
	}

	sprite := pixel.NewSprite(pixel.PictureDataFromImage(d.gameRgba), pixel.R(0, 0, cabinetW, cabinetH))
	sprite.Draw(d.window, d.matrix)

	if d.debug {
		d.hudText.Clear()
		fmt.Fprintf(d.hudText, "cycles: %d\nnext interrupt: RST %d\n", cycles, nextInterrupt)
		d.hudText.Draw(d.window, pixel.IM)
	}

	d.window.Update()
}
