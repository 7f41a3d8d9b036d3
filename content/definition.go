// Package content loads character definitions and turns them into fresh
// per-character data for the simulation.
package content

import (
	"errors"
	"fmt"
	"io/fs"
	"slices"

	"github.com/automoto/riftbrawl/config"
	"gopkg.in/yaml.v3"
)

// ErrInvalidDefinition is wrapped by every validation failure.
var ErrInvalidDefinition = errors.New("invalid character definition")

type Vec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

type CharacterDef struct {
	Name       string        `yaml:"name"`
	Scale      float64       `yaml:"scale"`
	Stats      StatsDef      `yaml:"stats"`
	Animations AnimationsDef `yaml:"animations"`
	Attacks    AttacksDef    `yaml:"attacks"`
}

type StatsDef struct {
	HitboxSize Vec     `yaml:"hitbox_size"`
	Health     float64 `yaml:"health"`
	Speed      float64 `yaml:"speed"`
	JumpForce  float64 `yaml:"jump_force"`
}

// AnimationsDef lists the animations in priority order, lowest first.
type AnimationsDef struct {
	Size         Vec            `yaml:"size"`
	OffsetCenter Vec            `yaml:"offset_center"`
	List         []AnimationDef `yaml:"list"`
}

type AnimationDef struct {
	Type        config.StateID `yaml:"type"`
	Frames      int            `yaml:"frames"`
	TotalTimeMs float64        `yaml:"total_time_ms"`
	Loop        *bool          `yaml:"loop"` // Defaults to true
}

func (a AnimationDef) Looping() bool {
	return a.Loop == nil || *a.Loop
}

type AttacksDef struct {
	Primary   AttackDef `yaml:"primary_attack"`
	Secondary AttackDef `yaml:"secondary_attack"`
}

type AttackDef struct {
	Type       config.AttackType `yaml:"type"`
	Cooldown   float64           `yaml:"cooldown"`
	Health     float64           `yaml:"health"`
	Damage     float64           `yaml:"damage"`
	Trajectory TrajectoryDef     `yaml:"trajectory"`
}

type TrajectoryDef struct {
	FrameTimeMs           float64              `yaml:"frame_time_ms"`
	DefaultTimeMsFraction float64              `yaml:"default_time_ms_fraction"`
	Frames                []TrajectoryFrameDef `yaml:"frames"`
}

type TrajectoryFrameDef struct {
	Size           Vec      `yaml:"size"`
	OffsetCenter   Vec      `yaml:"offset_center"`
	TimeMsFraction *float64 `yaml:"time_ms_fraction"`
}

// TimeMs is the time the frame is held. Frames without their own fraction
// use the trajectory default.
func (t TrajectoryDef) TimeMs(frame TrajectoryFrameDef) float64 {
	fraction := t.DefaultTimeMsFraction
	if frame.TimeMsFraction != nil {
		fraction = *frame.TimeMsFraction
	}
	return fraction * t.FrameTimeMs
}

// ParseCharacter decodes and validates one YAML definition. A missing scale
// means 1.
func ParseCharacter(data []byte) (*CharacterDef, error) {
	var def CharacterDef
	if err := yaml.Unmarshal(data, &def); err != nil {
		return nil, fmt.Errorf("content: unmarshal: %w", err)
	}
	if def.Scale == 0 {
		def.Scale = 1
	}
	if err := def.Validate(); err != nil {
		return nil, err
	}
	return &def, nil
}

// LoadCharacter reads and parses name from fsys.
func LoadCharacter(fsys fs.FS, name string) (*CharacterDef, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("content: load %s: %w", name, err)
	}
	def, err := ParseCharacter(data)
	if err != nil {
		return nil, fmt.Errorf("content: %s: %w", name, err)
	}
	return def, nil
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidDefinition, fmt.Sprintf(format, args...))
}

// Validate reports the first problem found in the definition.
func (d *CharacterDef) Validate() error {
	if d.Name == "" {
		return invalid("name is required")
	}
	if d.Scale <= 0 {
		return invalid("%s: scale must be positive, got %g", d.Name, d.Scale)
	}

	s := d.Stats
	if s.HitboxSize.X <= 0 || s.HitboxSize.Y <= 0 {
		return invalid("%s: stats.hitbox_size must be positive, got %gx%g", d.Name, s.HitboxSize.X, s.HitboxSize.Y)
	}
	if s.Health <= 0 {
		return invalid("%s: stats.health must be positive, got %g", d.Name, s.Health)
	}
	if s.Speed < 0 || s.JumpForce < 0 {
		return invalid("%s: stats.speed and stats.jump_force must not be negative", d.Name)
	}

	if err := d.validateAnimations(); err != nil {
		return err
	}
	if err := d.Attacks.Primary.validate(d.Name, "primary_attack"); err != nil {
		return err
	}
	return d.Attacks.Secondary.validate(d.Name, "secondary_attack")
}

func (d *CharacterDef) validateAnimations() error {
	a := d.Animations
	if a.Size.X <= 0 || a.Size.Y <= 0 {
		return invalid("%s: animations.size must be positive, got %gx%g", d.Name, a.Size.X, a.Size.Y)
	}

	seen := make([]config.StateID, 0, len(a.List))
	for i, anim := range a.List {
		if !slices.Contains(config.States, anim.Type) {
			return invalid("%s: animations.list[%d]: unknown type %q", d.Name, i, anim.Type)
		}
		if slices.Contains(seen, anim.Type) {
			return invalid("%s: animations.list[%d]: duplicate type %q", d.Name, i, anim.Type)
		}
		seen = append(seen, anim.Type)

		if anim.Frames <= 0 {
			return invalid("%s: animation %s: frames must be positive", d.Name, anim.Type)
		}
		if anim.TotalTimeMs <= 0 {
			return invalid("%s: animation %s: total_time_ms must be positive", d.Name, anim.Type)
		}
	}

	for _, state := range config.States {
		if !slices.Contains(seen, state) {
			return invalid("%s: missing animation %s", d.Name, state)
		}
	}
	return nil
}

func (a AttackDef) validate(character, field string) error {
	if a.Type != config.AttackMelee {
		return invalid("%s: %s: unsupported attack type %q", character, field, a.Type)
	}
	if a.Cooldown < 0 {
		return invalid("%s: %s: cooldown must not be negative", character, field)
	}
	if a.Health <= 0 {
		return invalid("%s: %s: health must be positive", character, field)
	}
	if a.Damage < 0 {
		return invalid("%s: %s: damage must not be negative", character, field)
	}

	t := a.Trajectory
	if t.FrameTimeMs <= 0 {
		return invalid("%s: %s: trajectory.frame_time_ms must be positive", character, field)
	}
	if len(t.Frames) == 0 {
		return invalid("%s: %s: trajectory has no frames", character, field)
	}
	for i, f := range t.Frames {
		if f.Size.X <= 0 || f.Size.Y <= 0 {
			return invalid("%s: %s: trajectory.frames[%d]: size must be positive", character, field, i)
		}
		if t.TimeMs(f) <= 0 {
			return invalid("%s: %s: trajectory.frames[%d]: time must be positive", character, field, i)
		}
	}
	return nil
}
