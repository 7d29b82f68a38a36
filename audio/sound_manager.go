package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate = beep.SampleRate(48000)

	toggleDuration  = 60 * time.Millisecond
	blockedDuration = 150 * time.Millisecond
	victoryNoteGap  = 130 * time.Millisecond

	litFreq   = 880.0
	unlitFreq = 440.0
	buzzFreq  = 120.0
)

// Victory arpeggio, C major
var victoryNotes = []float64{523.25, 659.25, 783.99, 1046.50}

// SoundManager plays game feedback cues
// Every method is a no-op until Initialize succeeds, so the game runs without an audio device
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      *effects.Volume
	initialized bool
	muted       bool
}

// NewSoundManager creates a new sound manager
func NewSoundManager() *SoundManager {
	mixer := &beep.Mixer{}
	return &SoundManager{
		mixer: mixer,
		volume: &effects.Volume{
			Streamer: mixer,
			Base:     2,
		},
	}
}

// Initialize sets up the speaker
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return err
	}

	sm.volume.Silent = sm.muted
	speaker.Play(sm.volume)
	sm.initialized = true
	return nil
}

// Cleanup stops all sounds and closes the speaker
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()

	speaker.Clear()
	speaker.Close()
	sm.initialized = false
}

// SetMuted silences or restores output
func (sm *SoundManager) SetMuted(muted bool) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.setMutedLocked(muted)
}

// ToggleMute flips the mute state and returns the new value
func (sm *SoundManager) ToggleMute() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.setMutedLocked(!sm.muted)
	return sm.muted
}

// Muted reports the mute state
func (sm *SoundManager) Muted() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.muted
}

func (sm *SoundManager) setMutedLocked(muted bool) {
	sm.muted = muted
	if !sm.initialized {
		sm.volume.Silent = muted
		return
	}
	speaker.Lock()
	sm.volume.Silent = muted
	speaker.Unlock()
}

// PlayToggle plays a short tick, higher when the cell turned lit
func (sm *SoundManager) PlayToggle(lit bool) {
	freq := unlitFreq
	if lit {
		freq = litFreq
	}
	sm.play(beep.Take(sampleRate.N(toggleDuration), NewChimeGenerator(sampleRate, freq)))
}

// PlayBlocked plays a short low buzz for a move against the grid edge
func (sm *SoundManager) PlayBlocked() {
	sm.play(beep.Take(sampleRate.N(blockedDuration), NewBuzzGenerator(sampleRate, buzzFreq)))
}

// PlayVictory plays a rising arpeggio
func (sm *SoundManager) PlayVictory() {
	notes := make([]beep.Streamer, 0, len(victoryNotes))
	for _, f := range victoryNotes {
		notes = append(notes, beep.Take(sampleRate.N(victoryNoteGap), NewChimeGenerator(sampleRate, f)))
	}
	sm.play(beep.Seq(notes...))
}

func (sm *SoundManager) play(s beep.Streamer) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || sm.muted {
		return
	}

	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
}
