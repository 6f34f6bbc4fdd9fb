package audio

import (
	"fmt"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// Speaker is a Sink that plays tones on the local sound device.
type Speaker struct {
	mixer *beep.Mixer
}

// NewSpeaker opens the default sound device. The speaker can be opened only
// once per process.
func NewSpeaker() (*Speaker, error) {
	if err := speaker.Init(sampleRate, sampleRate.N(50*time.Millisecond)); err != nil {
		return nil, fmt.Errorf("audio: init speaker: %w", err)
	}
	s := &Speaker{mixer: &beep.Mixer{}}
	speaker.Play(s.mixer)
	return s, nil
}

// Play mixes the tone into the output stream.
func (s *Speaker) Play(t Tone) {
	speaker.Lock()
	s.mixer.Add(NewVoice(t, sampleRate))
	speaker.Unlock()
}

// Close silences every playing tone.
func (s *Speaker) Close() {
	speaker.Lock()
	s.mixer.Clear()
	speaker.Unlock()
}
