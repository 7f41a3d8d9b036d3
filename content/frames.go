package content

import (
	"errors"
	"fmt"
	"hash/fnv"
	"image"
	"image/color"
	_ "image/png"
	"io/fs"
	"path"

	"github.com/automoto/riftbrawl/config"
	"golang.org/x/image/draw"
)

// FrameSource supplies unscaled animation frames of the given size.
type FrameSource interface {
	Frames(character string, state config.StateID, count int, size image.Point) ([]image.Image, error)
}

// PlaceholderSource draws solid frames, one color per character and state,
// with a darker stripe that moves one pixel per frame.
type PlaceholderSource struct{}

func (PlaceholderSource) Frames(character string, state config.StateID, count int, size image.Point) ([]image.Image, error) {
	h := fnv.New32a()
	_, _ = h.Write([]byte(character))
	_, _ = h.Write([]byte(state))
	sum := h.Sum32()
	fill := color.NRGBA{R: uint8(sum), G: uint8(sum >> 8), B: uint8(sum >> 16), A: 255}
	stripe := color.NRGBA{R: fill.R / 2, G: fill.G / 2, B: fill.B / 2, A: 255}

	frames := make([]image.Image, count)
	for i := range frames {
		img := image.NewNRGBA(image.Rectangle{Max: size})
		draw.Draw(img, img.Bounds(), image.NewUniform(fill), image.Point{}, draw.Src)
		if size.X > 0 {
			x := i % size.X
			draw.Draw(img, image.Rect(x, 0, x+1, size.Y), image.NewUniform(stripe), image.Point{}, draw.Src)
		}
		frames[i] = img
	}
	return frames, nil
}

// SheetSource reads horizontal strips from <Dir>/<character>/<state>.png.
// Missing sheets fall back to Fallback when it is set.
type SheetSource struct {
	FS       fs.FS
	Dir      string
	Fallback FrameSource
}

func (s SheetSource) Frames(character string, state config.StateID, count int, size image.Point) ([]image.Image, error) {
	name := path.Join(s.Dir, character, string(state)+".png")
	f, err := s.FS.Open(name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) && s.Fallback != nil {
			return s.Fallback.Frames(character, state, count, size)
		}
		return nil, fmt.Errorf("content: open sheet %s: %w", name, err)
	}
	defer f.Close()

	sheet, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("content: decode sheet %s: %w", name, err)
	}

	b := sheet.Bounds()
	if b.Dx() < count*size.X || b.Dy() < size.Y {
		return nil, fmt.Errorf("content: sheet %s is %dx%d, need %d frames of %dx%d",
			name, b.Dx(), b.Dy(), count, size.X, size.Y)
	}

	frames := make([]image.Image, count)
	for i := range frames {
		src := image.Rect(b.Min.X+i*size.X, b.Min.Y, b.Min.X+(i+1)*size.X, b.Min.Y+size.Y)
		img := image.NewNRGBA(image.Rectangle{Max: size})
		draw.Draw(img, img.Bounds(), sheet, src.Min, draw.Src)
		frames[i] = img
	}
	return frames, nil
}

// scaleFrames resizes frames by scale with nearest neighbor sampling, which
// keeps pixel art crisp. A scale of 1 returns the frames unchanged.
func scaleFrames(frames []image.Image, scale float64) []image.Image {
	if scale == 1 {
		return frames
	}
	out := make([]image.Image, len(frames))
	for i, f := range frames {
		b := f.Bounds()
		w := max(1, int(float64(b.Dx())*scale))
		h := max(1, int(float64(b.Dy())*scale))
		dst := image.NewNRGBA(image.Rect(0, 0, w, h))
		draw.NearestNeighbor.Scale(dst, dst.Bounds(), f, b, draw.Src, nil)
		out[i] = dst
	}
	return out
}
