// Package render turns binary cell buffers into pixels.
package render

import "image/color"

type rgba8 [4]byte

func toRGBA8(c color.Color) rgba8 {
	r, g, b, a := c.RGBA()
	return rgba8{uint8(r >> 8), uint8(g >> 8), uint8(b >> 8), uint8(a >> 8)}
}

// FillBinaryRGBA writes one RGBA pixel per cell into buf: on for non-zero
// cells, off otherwise. Cells that do not fit in buf are skipped.
func FillBinaryRGBA(buf []byte, cells []uint8, on, off color.Color) {
	onPx, offPx := toRGBA8(on), toRGBA8(off)
	n := min(len(cells), len(buf)/4)
	for i := 0; i < n; i++ {
		px := offPx
		if cells[i] != 0 {
			px = onPx
		}
		copy(buf[i*4:i*4+4], px[:])
	}
}
