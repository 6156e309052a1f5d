// Package audio is the "sound it" half of the sound timer: the core
// only ever counts SoundTimer down (see chip8.VM.DecrementTimers), never
// plays anything. This package polls that value from outside and
// triggers a beep, the same division of labor the teacher's VM.ManageAudio
// used, just moved out from under the core.
package audio

import (
	"fmt"
	"os"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/mp3"
	"github.com/faiface/beep/speaker"
)

// Player decodes a beep sound once and replays it each time Trigger is called.
type Player struct {
	streamer beep.StreamSeekCloser
	format   beep.Format
	ready    bool
}

// NewPlayer decodes the mp3 at path and initializes the speaker. If the
// asset is missing, Player degrades to a no-op rather than failing the
// whole emulator - audio is cosmetic, not core.
func NewPlayer(path string) (*Player, error) {
	f, err := os.Open(path)
	if err != nil {
		return &Player{}, nil
	}

	streamer, format, err := mp3.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("audio: decode %s: %w", path, err)
	}

	if err := speaker.Init(format.SampleRate, format.SampleRate.N(time.Second/10)); err != nil {
		return nil, fmt.Errorf("audio: init speaker: %w", err)
	}

	return &Player{streamer: streamer, format: format, ready: true}, nil
}

// Trigger plays the beep from the start. The windowed driver calls it
// each time a polled chip8.VM.SoundTimer() goes from zero to nonzero -
// the core itself never calls this.
func (p *Player) Trigger() {
	if !p.ready {
		return
	}
	if err := p.streamer.Seek(0); err != nil {
		return
	}
	speaker.Play(p.streamer)
}

// Close releases the decoded stream.
func (p *Player) Close() error {
	if !p.ready {
		return nil
	}
	return p.streamer.Close()
}
