package host

import "github.com/faiface/pixel/pixelgl"

// Available cabinet input-port bits and their keyboard binds, mirroring
// original_source/main.c's handle_input mapping (coin, start, shot,
// left/right) with the teacher's controllerKeys map-of-constants idiom
// instead of a chain of keysym comparisons.
const (
	keyCoin int = iota
	key2PStart
	key1PStart
	key1PShot
	key2PShot
	keyLeft
	keyRight
)

var inputKeys = map[int]pixelgl.Button{
	keyCoin:    pixelgl.KeyC,
	key2PStart: pixelgl.Key2,
	key1PStart: pixelgl.KeyEnter,
	key1PShot:  pixelgl.KeySpace,
	key2PShot:  pixelgl.KeySpace,
	keyLeft:    pixelgl.KeyLeft,
	keyRight:   pixelgl.KeyRight,
}

// portSetter is the subset of *cabinet.Cabinet this package depends on,
// so host stays a presentation-only package with no import of cabinet's
// emulation internals beyond the two port-bit setters it already exposes.
type portSetter interface {
	SetInPort1Bit(bit uint, v bool)
	SetInPort2Bit(bit uint, v bool)
}

// Input polls a pixelgl window each frame and latches the cabinet's two
// input ports accordingly. Unlike the teacher's Controller, which tracks
// its own button-state slice, this pushes state straight into the
// cabinet since the cabinet's input latches are themselves the state.
type Input struct{}

// Poll reads window's current key state and updates cabinet's input
// ports. Shot/left/right fan out to both 1P and 2P port bits, matching
// the reference host's single-keyboard two-player control scheme.
func (Input) Poll(window *pixelgl.Window, cabinet portSetter) {
	down := func(idx int) bool { return window.Pressed(inputKeys[idx]) }

	cabinet.SetInPort1Bit(0, down(keyCoin))
	cabinet.SetInPort1Bit(1, down(key2PStart))
	cabinet.SetInPort1Bit(2, down(key1PStart))
	cabinet.SetInPort1Bit(4, down(key1PShot))
	cabinet.SetInPort1Bit(5, down(keyLeft))
	cabinet.SetInPort1Bit(6, down(keyRight))

	cabinet.SetInPort2Bit(4, down(key2PShot))
	cabinet.SetInPort2Bit(5, down(keyLeft))
	cabinet.SetInPort2Bit(6, down(keyRight))
}
