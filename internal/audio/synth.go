package audio

import (
	"math"

	"github.com/gopxl/beep"
)

// silenceFloor is the gain a tone decays to by its end.
const silenceFloor = 0.01

// voice renders one Tone as a beep stream.
type voice struct {
	tone     Tone
	rate     beep.SampleRate
	total    int
	position int
	phase    float64
}

// NewVoice returns a stream that plays t once at the given sample rate.
func NewVoice(t Tone, rate beep.SampleRate) beep.Streamer {
	return &voice{
		tone:  t,
		rate:  rate,
		total: rate.N(t.Duration),
	}
}

func (v *voice) Stream(samples [][2]float64) (n int, ok bool) {
	if v.position >= v.total {
		return 0, false
	}
	for i := range samples {
		if v.position >= v.total {
			return i, true
		}
		progress := float64(v.position) / float64(v.total)

		val := sample(v.tone.Wave, v.phase) * v.gain(progress)
		samples[i][0] = val
		samples[i][1] = val

		v.phase += v.freq(progress) / float64(v.rate)
		v.phase -= math.Floor(v.phase)
		v.position++
	}
	return len(samples), true
}

func (v *voice) Err() error { return nil }

// gain follows an exponential ramp from the tone volume to silenceFloor.
func (v *voice) gain(progress float64) float64 {
	vol := v.tone.Volume
	if vol <= silenceFloor {
		return vol
	}
	return vol * math.Pow(silenceFloor/vol, progress)
}

// freq follows an exponential ramp from Freq to Freq+Slide.
func (v *voice) freq(progress float64) float64 {
	f0 := v.tone.Freq
	f1 := f0 + v.tone.Slide
	if v.tone.Slide == 0 || f0 <= 0 || f1 <= 0 {
		return f0
	}
	return f0 * math.Pow(f1/f0, progress)
}

// sample evaluates one period of a wave at phase in [0, 1).
func sample(w Wave, phase float64) float64 {
	switch w {
	case WaveSquare:
		if phase < 0.5 {
			return 1
		}
		return -1
	case WaveSaw:
		return 2*phase - 1
	case WaveTriangle:
		return 1 - 4*math.Abs(phase-0.5)
	default:
		return math.Sin(2 * math.Pi * phase)
	}
}
