// Package audio plays short synthesized cues through the speaker. Audio
// is strictly best-effort: a failed speaker init disables every cue and
// the game runs silent.
package audio

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// Player owns the speaker session. The zero value is a silent player.
type Player struct {
	ready bool
}

// NewPlayer initializes the speaker. The returned error is advisory;
// the player is usable (silently) either way.
func NewPlayer() (*Player, error) {
	err := speaker.Init(sampleRate, sampleRate.N(time.Second/10))
	return &Player{ready: err == nil}, err
}

// Close shuts the speaker down.
func (p *Player) Close() {
	if p.ready {
		speaker.Close()
	}
}

func (p *Player) tone(freq float64, d time.Duration) {
	if !p.ready {
		return
	}
	sine, err := generators.SineTone(sampleRate, freq)
	if err != nil {
		return
	}
	speaker.Play(beep.Take(sampleRate.N(d), sine))
}

// Pellet is the short nibble blip.
func (p *Player) Pellet() {
	p.tone(660, 30*time.Millisecond)
}

// Power marks a super pellet pickup.
func (p *Player) Power() {
	p.tone(440, 180*time.Millisecond)
}

// GhostEaten rises above the pellet blip to stand out mid-chase.
func (p *Player) GhostEaten() {
	p.tone(990, 120*time.Millisecond)
}

// Death is the low losing tone.
func (p *Player) Death() {
	p.tone(170, 400*time.Millisecond)
}

// LevelClear celebrates a cleared board.
func (p *Player) LevelClear() {
	p.tone(880, 250*time.Millisecond)
}
