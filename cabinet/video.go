package cabinet

const vramTopOfColumn0 = 0x241F

// UpdateScreenBuffer rotates the 7 KiB video-RAM region (0x2400-0x3FFF)
// into the displayed 256x224 RGB orientation. VRAM is column-major and
// rotated 90 degrees counter-clockwise relative to the display: each byte
// is an 8-pixel vertical strip, read MSB-first so bit 7 lands on the
// strip's topmost row and bit 0 on its bottom row, and successive bytes
// of a column run from bottom to top in memory. Output is
// monochrome, 0xFF or 0x00 on all three channels; the original cabinet's
// color overlay film is not modeled.
func (c *Cabinet) UpdateScreenBuffer() {
	for x := 0; x < 224; x++ {
		offset := uint16(vramTopOfColumn0 + x*0x20)
		for y := 0; y < 256; y += 8 {
			b := c.Memory.ReadByte(offset)
			for bit := 0; bit < 8; bit++ {
				on := (b<<uint(bit))&0x80 != 0
				var v byte
				if on {
					v = 0xFF
				}
				c.screenBuffer[y+bit][x][0] = v
				c.screenBuffer[y+bit][x][1] = v
				c.screenBuffer[y+bit][x][2] = v
			}
			offset--
		}
	}
}

// ScreenBuffer returns the most recent frame transcoded by
// UpdateScreenBuffer, row-major with y in [0,256) and x in [0,224).
func (c *Cabinet) ScreenBuffer() [256][224][3]byte {
	return c.screenBuffer
}
