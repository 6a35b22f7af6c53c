package render

import (
	"image"
	"image/color"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

type FrameBuffer struct {
	W      int
	H      int
	Pixels []uint8 // RGBA
}

func NewFrameBuffer(w, h int) *FrameBuffer {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &FrameBuffer{W: w, H: h, Pixels: make([]uint8, w*h*4)}
}

// Resize reallocates the pixel store when the size changes. Contents are not
// preserved.
func (fb *FrameBuffer) Resize(w, h int) {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	if w == fb.W && h == fb.H {
		return
	}
	fb.W, fb.H = w, h
	fb.Pixels = make([]uint8, w*h*4)
}

// Image exposes the pixels as an *image.RGBA sharing the same memory.
func (fb *FrameBuffer) Image() *image.RGBA {
	return &image.RGBA{Pix: fb.Pixels, Stride: fb.W * 4, Rect: image.Rect(0, 0, fb.W, fb.H)}
}

func (fb *FrameBuffer) Clear(c color.RGBA) {
	for i := 0; i < len(fb.Pixels); i += 4 {
		fb.Pixels[i+0] = c.R
		fb.Pixels[i+1] = c.G
		fb.Pixels[i+2] = c.B
		fb.Pixels[i+3] = c.A
	}
}

func (fb *FrameBuffer) set(x, y int, c color.RGBA) {
	idx := (y*fb.W + x) * 4
	fb.Pixels[idx+0] = c.R
	fb.Pixels[idx+1] = c.G
	fb.Pixels[idx+2] = c.B
	fb.Pixels[idx+3] = c.A
}

func (fb *FrameBuffer) At(x, y int) color.RGBA {
	if x < 0 || y < 0 || x >= fb.W || y >= fb.H {
		return color.RGBA{}
	}
	idx := (y*fb.W + x) * 4
	return color.RGBA{fb.Pixels[idx], fb.Pixels[idx+1], fb.Pixels[idx+2], fb.Pixels[idx+3]}
}

func (fb *FrameBuffer) FillRect(x, y, w, h int, c color.RGBA) {
	if w <= 0 || h <= 0 {
		return
	}
	if x < 0 {
		w += x
		x = 0
	}
	if y < 0 {
		h += y
		y = 0
	}
	if x+w > fb.W {
		w = fb.W - x
	}
	if y+h > fb.H {
		h = fb.H - y
	}
	if w <= 0 || h <= 0 {
		return
	}
	for row := 0; row < h; row++ {
		for col := 0; col < w; col++ {
			fb.set(x+col, y+row, c)
		}
	}
}

func (fb *FrameBuffer) StrokeRect(x, y, w, h, line int, c color.RGBA) {
	if line <= 0 {
		line = 1
	}
	fb.FillRect(x, y, w, line, c)
	fb.FillRect(x, y+h-line, w, line, c)
	fb.FillRect(x, y, line, h, c)
	fb.FillRect(x+w-line, y, line, h, c)
}

// Vertex is a triangle corner with its own colour.
type Vertex struct {
	X, Y float32
	C    color.RGBA
}

// FillTriangle rasterizes a triangle, interpolating vertex colours with
// barycentric weights. Pixels are sampled at their centres.
func (fb *FrameBuffer) FillTriangle(a, b, c Vertex) {
	area := edge(a, b, c.X, c.Y)
	if area == 0 {
		return
	}
	minX := clampInt(int(min(a.X, b.X, c.X)), 0, fb.W-1)
	maxX := clampInt(int(max(a.X, b.X, c.X))+1, 0, fb.W-1)
	minY := clampInt(int(min(a.Y, b.Y, c.Y)), 0, fb.H-1)
	maxY := clampInt(int(max(a.Y, b.Y, c.Y))+1, 0, fb.H-1)

	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			px, py := float32(x)+0.5, float32(y)+0.5
			w0 := edge(b, c, px, py) / area
			w1 := edge(c, a, px, py) / area
			w2 := edge(a, b, px, py) / area
			if w0 < 0 || w1 < 0 || w2 < 0 {
				continue
			}
			fb.set(x, y, color.RGBA{
				R: mix(a.C.R, b.C.R, c.C.R, w0, w1, w2),
				G: mix(a.C.G, b.C.G, c.C.G, w0, w1, w2),
				B: mix(a.C.B, b.C.B, c.C.B, w0, w1, w2),
				A: mix(a.C.A, b.C.A, c.C.A, w0, w1, w2),
			})
		}
	}
}

func edge(a, b Vertex, x, y float32) float32 {
	return (b.X-a.X)*(y-a.Y) - (b.Y-a.Y)*(x-a.X)
}

func mix(a, b, c uint8, w0, w1, w2 float32) uint8 {
	v := float32(a)*w0 + float32(b)*w1 + float32(c)*w2
	return uint8(min(max(v+0.5, 0), 255))
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// LineHeight is the advance between text lines drawn by DrawText.
func LineHeight() int {
	return basicfont.Face7x13.Metrics().Height.Ceil()
}

// DrawText draws s with its baseline at (x, y) in the fixed 7x13 face and
// returns the advance width in pixels.
func (fb *FrameBuffer) DrawText(x, y int, s string, c color.RGBA) int {
	d := font.Drawer{
		Dst:  fb.Image(),
		Src:  image.NewUniform(c),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(s)
	return (d.Dot.X - fixed.I(x)).Ceil()
}

// MeasureText returns the width of s in pixels.
func MeasureText(s string) int {
	return font.MeasureString(basicfont.Face7x13, s).Ceil()
}
