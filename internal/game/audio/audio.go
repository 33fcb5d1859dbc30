// Package audio loops an mp3 ambience track under the investigation.
package audio

import (
	"fmt"
	"os"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/effects"
	"github.com/faiface/beep/mp3"
	"github.com/faiface/beep/speaker"
)

var ambienceCtrl *beep.Ctrl

var mixer = &beep.Mixer{}

func initSpeaker(sampleRate beep.SampleRate) error {
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return err
	}
	speaker.Play(mixer)
	return nil
}

// PlayAmbience loads an MP3 and plays it in a loop until the process exits.
func PlayAmbience(path string, volume float64) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open ambience file: %w", err)
	}

	streamer, format, err := mp3.Decode(f)
	if err != nil {
		f.Close()
		return fmt.Errorf("failed to decode ambience file: %w", err)
	}

	if err := initSpeaker(format.SampleRate); err != nil {
		streamer.Close()
		return fmt.Errorf("failed to open speaker: %w", err)
	}

	ambienceCtrl = &beep.Ctrl{Streamer: beep.Loop(-1, streamer)}

	vol := &effects.Volume{
		Streamer: ambienceCtrl,
		Base:     2,
		Volume:   volume,
	}

	speaker.Lock()
	mixer.Add(vol)
	speaker.Unlock()
	return nil
}

// Pause pauses or resumes the ambience.
func Pause(pause bool) {
	if ambienceCtrl == nil {
		return
	}
	speaker.Lock()
	ambienceCtrl.Paused = pause
	speaker.Unlock()
}
