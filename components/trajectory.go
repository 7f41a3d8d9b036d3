package components

// AttackFrame is one hitbox keyframe of an attack. Offset is measured from
// the owner's center toward the owner's facing.
type AttackFrame struct {
	TimeMs float64
	Offset Vector
	Size   Vector
}

// Rect returns the keyframe as a box positioned at its offset.
func (f AttackFrame) Rect() Box {
	return Box{X: f.Offset.X, Y: f.Offset.Y, Width: f.Size.X, Height: f.Size.Y}
}

// AttackTrajectory walks through the keyframes of an attack. Each frame is
// held for its TimeMs before moving to the next one.
type AttackTrajectory struct {
	frames   []AttackFrame
	elapsed  float64 // ms in the current segment
	segment  int
	current  Box
	finished bool
}

func NewAttackTrajectory(frames []AttackFrame) *AttackTrajectory {
	t := &AttackTrajectory{frames: frames}
	t.Reset()
	return t
}

func (t *AttackTrajectory) Update(dt float64) {
	if t.finished || len(t.frames) == 0 {
		t.finished = true
		return
	}

	t.elapsed += dt * 1000
	if t.elapsed < t.frames[t.segment].TimeMs {
		return
	}
	t.elapsed = 0
	t.segment++
	if t.segment < len(t.frames) {
		t.current = t.frames[t.segment].Rect()
	} else {
		t.finished = true
	}
}

func (t *AttackTrajectory) Reset() {
	t.elapsed = 0
	t.segment = 0
	t.finished = false
	t.current = Box{}
	if len(t.frames) > 0 {
		t.current = t.frames[0].Rect()
	}
}

// CurrentRect returns a copy of the active hitbox relative to the owner.
func (t *AttackTrajectory) CurrentRect() Box {
	return t.current
}

func (t *AttackTrajectory) Complete() bool { return t.finished }
func (t *AttackTrajectory) Segment() int   { return t.segment }

// TotalTimeMs is the sum of all keyframe durations.
func (t *AttackTrajectory) TotalTimeMs() float64 {
	var total float64
	for _, f := range t.frames {
		total += f.TimeMs
	}
	return total
}
