// Package audio plays the game's sound cues. A cue is a short list of
// synthesized tones; tones with a delay are held by the Player and released
// as the game clock advances, so chained cues stay in step with the game
// and stop when it pauses.
package audio

import (
	"time"
)

// Wave is an oscillator shape.
type Wave int

const (
	WaveSquare Wave = iota
	WaveSaw
	WaveTriangle
	WaveSine
)

// Tone is a single synthesized note. Gain decays exponentially from Volume
// to near silence over Duration; a non-zero Slide glides the pitch to
// Freq+Slide over the same span.
type Tone struct {
	Freq     float64
	Wave     Wave
	Duration time.Duration
	Volume   float64
	Slide    float64
}

// Cue names a sound effect.
type Cue string

const (
	CueMove       Cue = "move"
	CueRotate     Cue = "rotate"
	CueDrop       Cue = "drop"
	CueLock       Cue = "lock"
	CueClear      Cue = "clear"
	CueMajorClear Cue = "majorClear"
	CueLevelUp    Cue = "levelUp"
	CueGameOver   Cue = "gameOver"
)

type step struct {
	at   time.Duration
	tone Tone
}

var cues = map[Cue][]step{
	CueMove:   {{0, Tone{Freq: 120, Wave: WaveSquare, Duration: 50 * time.Millisecond, Volume: 0.05}}},
	CueRotate: {{0, Tone{Freq: 200, Wave: WaveSquare, Duration: 50 * time.Millisecond, Volume: 0.05}}},
	CueDrop:   {{0, Tone{Freq: 80, Wave: WaveSaw, Duration: 100 * time.Millisecond, Volume: 0.1, Slide: -20}}},
	CueLock:   {{0, Tone{Freq: 150, Wave: WaveSquare, Duration: 50 * time.Millisecond, Volume: 0.1}}},
	CueClear: {
		{0, Tone{Freq: 400, Wave: WaveSquare, Duration: 100 * time.Millisecond, Volume: 0.1}},
		{80 * time.Millisecond, Tone{Freq: 600, Wave: WaveSquare, Duration: 100 * time.Millisecond, Volume: 0.1}},
	},
	CueMajorClear: {
		{0, Tone{Freq: 300, Wave: WaveSquare, Duration: 100 * time.Millisecond, Volume: 0.1}},
		{100 * time.Millisecond, Tone{Freq: 500, Wave: WaveSquare, Duration: 100 * time.Millisecond, Volume: 0.1}},
		{200 * time.Millisecond, Tone{Freq: 700, Wave: WaveSquare, Duration: 400 * time.Millisecond, Volume: 0.1}},
	},
	CueLevelUp: {
		{0, Tone{Freq: 600, Wave: WaveTriangle, Duration: 200 * time.Millisecond, Volume: 0.1}},
		{100 * time.Millisecond, Tone{Freq: 800, Wave: WaveTriangle, Duration: 400 * time.Millisecond, Volume: 0.1}},
	},
	CueGameOver: {{0, Tone{Freq: 300, Wave: WaveSaw, Duration: 500 * time.Millisecond, Volume: 0.2, Slide: -200}}},
}

// Sink plays tones. Play must not block.
type Sink interface {
	Play(t Tone)
}

// Discard is a Sink that drops every tone. It backs muted and remote
// sessions.
type Discard struct{}

func (Discard) Play(Tone) {}

type pending struct {
	due  time.Duration
	tone Tone
}

// Player schedules cues onto a Sink. It is driven from the game loop and is
// not safe for concurrent use.
type Player struct {
	sink    Sink
	volume  float64
	clock   time.Duration
	pending []pending
}

// NewPlayer creates a player. volume scales every tone and is clamped to
// [0, 1].
func NewPlayer(sink Sink, volume float64) *Player {
	if sink == nil {
		sink = Discard{}
	}
	return &Player{sink: sink, volume: min(max(volume, 0), 1)}
}

// Cue plays the first tone of a cue now and schedules the rest. Unknown
// cues are ignored.
func (p *Player) Cue(c Cue) {
	for _, s := range cues[c] {
		t := s.tone
		t.Volume *= p.volume
		if s.at <= 0 {
			p.sink.Play(t)
			continue
		}
		p.pending = append(p.pending, pending{due: p.clock + s.at, tone: t})
	}
}

// Advance moves the player's clock by dt and plays every tone that has come
// due, in schedule order.
func (p *Player) Advance(dt time.Duration) {
	p.clock += dt
	keep := p.pending[:0]
	for _, q := range p.pending {
		if q.due <= p.clock {
			p.sink.Play(q.tone)
			continue
		}
		keep = append(keep, q)
	}
	p.pending = keep
}

// Pending returns the number of scheduled tones not yet played.
func (p *Player) Pending() int {
	return len(p.pending)
}

// Flush drops all scheduled tones.
func (p *Player) Flush() {
	p.pending = p.pending[:0]
}
