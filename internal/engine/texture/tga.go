package texture

import (
	"fmt"
	"image"
	"image/color"
)

// TGA image types accepted by DecodeTGA.
const (
	tgaTrueColor    = 2
	tgaTrueColorRLE = 10
)

const tgaHeaderSize = 18

// tgaReader walks the pixel section of a TGA file and writes into dst in
// file order, applying the origin flip.
type tgaReader struct {
	dst         *image.RGBA
	src         []byte
	pos         int
	bpp         int
	next        int
	topToBottom bool
}

func (r *tgaReader) done() bool {
	b := r.dst.Bounds()
	return r.next >= b.Dx()*b.Dy()
}

// pixel reads one BGR(A) value at the cursor.
func (r *tgaReader) pixel() (color.RGBA, bool) {
	if r.pos+r.bpp > len(r.src) {
		return color.RGBA{}, false
	}
	p := r.src[r.pos : r.pos+r.bpp]
	r.pos += r.bpp
	c := color.RGBA{R: p[2], G: p[1], B: p[0], A: 255}
	if r.bpp == 4 {
		c.A = p[3]
	}
	return c, true
}

func (r *tgaReader) put(c color.RGBA) {
	w := r.dst.Bounds().Dx()
	h := r.dst.Bounds().Dy()
	x, y := r.next%w, r.next/w
	if !r.topToBottom {
		y = h - 1 - y
	}
	r.dst.SetRGBA(x, y, c)
	r.next++
}

// DecodeTGA decodes uncompressed (type 2) and RLE (type 10) true-color TGA
// data with 24 or 32 bits per pixel.
func DecodeTGA(data []byte) (*image.RGBA, error) {
	if len(data) < tgaHeaderSize {
		return nil, fmt.Errorf("%w: tga header truncated", ErrCorrupt)
	}

	idLength := int(data[0])
	colorMapType := data[1]
	imageType := int(data[2])
	width := int(data[12]) | int(data[13])<<8
	height := int(data[14]) | int(data[15])<<8
	bpp := int(data[16])
	descriptor := data[17]

	if colorMapType != 0 {
		return nil, fmt.Errorf("%w: color-mapped tga", ErrUnsupportedFormat)
	}
	if imageType != tgaTrueColor && imageType != tgaTrueColorRLE {
		return nil, fmt.Errorf("%w: tga type %d", ErrUnsupportedFormat, imageType)
	}
	if bpp != 24 && bpp != 32 {
		return nil, fmt.Errorf("%w: tga depth %d", ErrUnsupportedFormat, bpp)
	}
	if width == 0 || height == 0 {
		return nil, fmt.Errorf("%w: tga size %dx%d", ErrCorrupt, width, height)
	}
	offset := tgaHeaderSize + idLength
	if offset > len(data) {
		return nil, fmt.Errorf("%w: tga id field truncated", ErrCorrupt)
	}

	r := &tgaReader{
		dst:         image.NewRGBA(image.Rect(0, 0, width, height)),
		src:         data[offset:],
		bpp:         bpp / 8,
		topToBottom: descriptor&0x20 != 0,
	}

	if imageType == tgaTrueColor {
		if len(r.src) < width*height*r.bpp {
			return nil, fmt.Errorf("%w: tga pixel data truncated", ErrCorrupt)
		}
		for !r.done() {
			c, _ := r.pixel()
			r.put(c)
		}
		return r.dst, nil
	}

	decodeRLE(r)
	return r.dst, nil
}

// decodeRLE fills as much of the image as the packets provide. A short
// stream leaves the remaining pixels transparent.
func decodeRLE(r *tgaReader) {
	for !r.done() && r.pos < len(r.src) {
		header := r.src[r.pos]
		r.pos++
		count := int(header&0x7F) + 1

		if header&0x80 != 0 {
			c, ok := r.pixel()
			if !ok {
				return
			}
			for i := 0; i < count && !r.done(); i++ {
				r.put(c)
			}
			continue
		}

		for i := 0; i < count && !r.done(); i++ {
			c, ok := r.pixel()
			if !ok {
				return
			}
			r.put(c)
		}
	}
}
