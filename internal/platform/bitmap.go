package platform

// Bitmap is a monochrome image in XBM layout: rows padded to whole
// bytes, least significant bit first.
type Bitmap struct {
	Width  int
	Height int
	Bits   []byte
}

func (b Bitmap) stride() int {
	return (b.Width + 7) / 8
}

// At reports whether pixel (x, y) is set.
func (b Bitmap) At(x, y int) bool {
	if x < 0 || y < 0 || x >= b.Width || y >= b.Height {
		return false
	}
	i := y*b.stride() + x/8
	if i >= len(b.Bits) {
		return false
	}
	return b.Bits[i]&(1<<uint(x%8)) != 0
}

// Points returns the coordinates of all set pixels, row by row.
func (b Bitmap) Points() [][2]int {
	var pts [][2]int
	for y := 0; y < b.Height; y++ {
		for x := 0; x < b.Width; x++ {
			if b.At(x, y) {
				pts = append(pts, [2]int{x, y})
			}
		}
	}
	return pts
}
