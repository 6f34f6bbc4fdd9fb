// Package fx animates the visual feedback layered over the playfield:
// particle bursts from cleared cells and screen shake. Everything advances
// on the game's tick clock, so effects pause with the game loop.
package fx

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/blockfall/internal/core"
)

// Shake strength.
type Shake int

const (
	ShakeNone Shake = iota
	ShakeSmall
	ShakeBig
)

// Particle tuning, in board cells and seconds.
const (
	particlesPerCell = 6
	maxSpeed         = 6.0  // cells/s, either direction
	liftSpeed        = 4.8  // extra upward cells/s at spawn
	gravity          = 72.0 // cells/s²
	minDecay         = 1.2  // life lost per second
	maxDecay         = 3.0

	smallShakeFor = 150 * time.Millisecond
	bigShakeFor   = 300 * time.Millisecond
)

// Particle is one spark. X and Y are in board cells.
type Particle struct {
	X, Y   float64
	VX, VY float64
	Life   float64 // 1 at birth, removed at 0
	Decay  float64
	Color  core.Color
}

// System owns the live particles and the current shake.
type System struct {
	rng       *rand.Rand
	particles []Particle

	particlesOn bool
	shakeOn     bool

	shake     Shake
	shakeLeft time.Duration
	offX      int
	offY      int
}

// Options toggles the two effect kinds.
type Options struct {
	Particles bool
	Shake     bool
}

// New creates an effect system with its own random source.
func New(seed int64, opts Options) *System {
	return &System{
		rng:         rand.New(rand.NewSource(seed)),
		particlesOn: opts.Particles,
		shakeOn:     opts.Shake,
	}
}

// Explode spawns a burst of particles from the center of board cell (x, y).
func (s *System) Explode(x, y int, c core.Color) {
	if !s.particlesOn {
		return
	}
	for i := 0; i < particlesPerCell; i++ {
		s.particles = append(s.particles, Particle{
			X:     float64(x) + 0.5,
			Y:     float64(y) + 0.5,
			VX:    (s.rng.Float64() - 0.5) * 2 * maxSpeed,
			VY:    (s.rng.Float64()-0.5)*2*maxSpeed - liftSpeed,
			Life:  1,
			Decay: minDecay + s.rng.Float64()*(maxDecay-minDecay),
			Color: c,
		})
	}
}

// Shake starts a shake. A weaker shake never cuts a stronger one short.
func (s *System) Shake(strength Shake) {
	if !s.shakeOn || strength == ShakeNone {
		return
	}
	if s.shakeLeft > 0 && strength < s.shake {
		return
	}
	s.shake = strength
	s.shakeLeft = smallShakeFor
	if strength == ShakeBig {
		s.shakeLeft = bigShakeFor
	}
}

// Advance moves every particle by dt and ages the shake.
func (s *System) Advance(dt time.Duration) {
	sec := dt.Seconds()

	alive := s.particles[:0]
	for _, p := range s.particles {
		p.VY += gravity * sec
		p.X += p.VX * sec
		p.Y += p.VY * sec
		p.Life -= p.Decay * sec
		if p.Life > 0 {
			alive = append(alive, p)
		}
	}
	s.particles = alive

	if s.shakeLeft <= 0 {
		s.offX, s.offY = 0, 0
		return
	}
	s.shakeLeft -= dt
	if s.shakeLeft <= 0 {
		s.shake = ShakeNone
		s.offX, s.offY = 0, 0
		return
	}
	mag := int(s.shake)
	s.offX = s.rng.Intn(2*mag+1) - mag
	s.offY = s.rng.Intn(2*mag+1) - mag
}

// Offset returns the current shake displacement in characters.
func (s *System) Offset() (int, int) {
	return s.offX, s.offY
}

// Particles returns the live particles.
func (s *System) Particles() []Particle {
	return s.particles
}

// Reset drops all particles and stops any shake.
func (s *System) Reset() {
	s.particles = s.particles[:0]
	s.shake = ShakeNone
	s.shakeLeft = 0
	s.offX, s.offY = 0, 0
}

// Draw plots the particles onto dst. (originX, originY) is the screen
// position of board cell (0, 0) and cellW the width of a board cell in
// characters.
func (s *System) Draw(dst *core.Screen, originX, originY, cellW int) {
	for _, p := range s.particles {
		x := originX + int(p.X*float64(cellW))
		y := originY + int(p.Y)
		if p.X < 0 || p.Y < 0 {
			continue
		}
		dst.SetColored(x, y, glyph(p.Life), p.Color)
	}
}

func glyph(life float64) rune {
	switch {
	case life > 0.66:
		return '*'
	case life > 0.33:
		return '+'
	default:
		return '.'
	}
}
