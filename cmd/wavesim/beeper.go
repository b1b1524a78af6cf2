package main

import (
	"log"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const beepSampleRate = beep.SampleRate(44100)

// Cue tones, one per pacing event
const (
	toneWaveStart = 660.0
	toneBossWave  = 220.0
	toneBreather  = 440.0
	toneHelp      = 880.0
)

// beeper plays short sine cues for pacing events. Initialization failure or
// -mute turns every call into a no-op
type beeper struct {
	enabled bool
}

func newBeeper(mute bool) *beeper {
	b := &beeper{}
	if mute {
		return b
	}
	if err := speaker.Init(beepSampleRate, beepSampleRate.N(time.Second/10)); err != nil {
		log.Printf("audio unavailable: %v (continuing silent)", err)
		return b
	}
	b.enabled = true
	return b
}

func (b *beeper) cue(freq float64) {
	if !b.enabled {
		return
	}
	sine, err := generators.SineTone(beepSampleRate, freq)
	if err != nil {
		return
	}
	speaker.Play(beep.Take(beepSampleRate.N(60*time.Millisecond), sine))
}

func (b *beeper) close() {
	if b.enabled {
		speaker.Close()
	}
}
