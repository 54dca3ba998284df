// Package audio plays short synthesized beeps for gameplay events.
package audio

import (
	"bytes"
	"fmt"
	"log"
	"math"

	"go-alien-shooter/internal/event"

	"github.com/hajimehoshi/ebiten/v2/audio"
)

// tone describes one synthesized beep.
type tone struct {
	freq     float64 // Hz
	duration float64 // seconds
	volume   float64
}

var tones = map[event.EventType]tone{
	event.BulletFired:     {freq: 950, duration: 0.05, volume: 0.25},
	event.AlienDestroyed:  {freq: 240, duration: 0.10, volume: 0.35},
	event.PlayerHit:       {freq: 120, duration: 0.25, volume: 0.45},
	event.WaveCleared:     {freq: 660, duration: 0.30, volume: 0.30},
	event.FormationLanded: {freq: 90, duration: 0.40, volume: 0.45},
	event.GameOver:        {freq: 70, duration: 0.60, volume: 0.45},
}

// sound is the part of *audio.Player the effects need.
type sound interface {
	Rewind() error
	Play()
}

// Effects is an event.Listener that plays one beep per event type.
type Effects struct {
	players map[event.EventType]sound
}

// NewEffects synthesizes every beep up front.
func NewEffects(ctx *audio.Context) (*Effects, error) {
	e := &Effects{players: make(map[event.EventType]sound)}
	for t, tn := range tones {
		p, err := audio.NewPlayer(ctx, bytes.NewReader(pcm(ctx.SampleRate(), tn)))
		if err != nil {
			return nil, fmt.Errorf("failed to create player for %s: %w", t, err)
		}
		e.players[t] = p
	}
	return e, nil
}

// Subscribe registers the effects for every event they have a sound for.
func (e *Effects) Subscribe(d *event.Dispatcher) {
	for t := range e.players {
		d.Subscribe(t, e)
	}
}

func (e *Effects) OnEvent(ev event.Event) {
	p, ok := e.players[ev.Type]
	if !ok {
		return
	}
	if err := p.Rewind(); err != nil {
		log.Printf("failed to rewind %s sound: %v", ev.Type, err)
		return
	}
	p.Play()
}

// pcm renders a sine tone as 16-bit little-endian stereo samples with a
// linear fade-out.
func pcm(sampleRate int, t tone) []byte {
	n := int(float64(sampleRate) * t.duration)
	var buf bytes.Buffer
	buf.Grow(n * 4)
	for i := 0; i < n; i++ {
		fade := 1 - float64(i)/float64(n)
		v := math.Sin(2*math.Pi*t.freq*float64(i)/float64(sampleRate)) * t.volume * fade
		s := int16(v * math.MaxInt16)
		lo, hi := byte(s), byte(s>>8)
		buf.Write([]byte{lo, hi, lo, hi})
	}
	return buf.Bytes()
}
