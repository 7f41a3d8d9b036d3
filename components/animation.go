package components

import (
	"image"

	"github.com/disintegration/imaging"
)

// Animation steps through a sequence of frames at a fixed rate. Mirrored
// frames for left facing characters are computed once at construction.
type Animation struct {
	frames        []image.Image
	mirrored      []image.Image
	frameDuration float64
	loop          bool

	frame    int
	elapsed  float64
	finished bool
}

// NewAnimation spreads totalTime seconds evenly over frames.
func NewAnimation(frames []image.Image, totalTime float64, loop bool) *Animation {
	mirrored := make([]image.Image, len(frames))
	for i, f := range frames {
		mirrored[i] = imaging.FlipH(f)
	}

	var frameDuration float64
	if len(frames) > 0 {
		frameDuration = totalTime / float64(len(frames))
	}

	return &Animation{
		frames:        frames,
		mirrored:      mirrored,
		frameDuration: frameDuration,
		loop:          loop,
	}
}

// Clone returns a stopped copy sharing the frame images.
func (a *Animation) Clone() *Animation {
	return &Animation{
		frames:        a.frames,
		mirrored:      a.mirrored,
		frameDuration: a.frameDuration,
		loop:          a.loop,
	}
}

// Update advances at most one frame per call. Reaching the last frame marks
// the animation finished, looping or not. Past the last frame a looping
// animation wraps to 0 and a non-looping one holds the last frame.
func (a *Animation) Update(dt float64) {
	if len(a.frames) == 0 {
		return
	}

	a.elapsed += dt
	if a.elapsed < a.frameDuration {
		return
	}
	a.elapsed = 0
	a.frame++

	if a.frame == len(a.frames) {
		if a.loop {
			a.frame = 0
		} else {
			a.frame--
		}
	}
	if a.frame == len(a.frames)-1 {
		a.finished = true
	}
}

// Frame returns the current image, mirrored when reversed is set.
func (a *Animation) Frame(reversed bool) image.Image {
	if len(a.frames) == 0 {
		return nil
	}
	if reversed {
		return a.mirrored[a.frame]
	}
	return a.frames[a.frame]
}

func (a *Animation) Reset() {
	a.frame = 0
	a.elapsed = 0
	a.finished = false
}

func (a *Animation) Finished() bool  { return a.finished }
func (a *Animation) FrameIndex() int { return a.frame }
func (a *Animation) FrameCount() int { return len(a.frames) }
func (a *Animation) Loop() bool      { return a.loop }

func (a *Animation) TotalTime() float64 {
	return a.frameDuration * float64(len(a.frames))
}
