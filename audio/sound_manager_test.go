package audio

import (
	"math"
	"testing"
)

// TestSoundManagerGracefulDegradation verifies audio operations don't panic when not initialized
func TestSoundManagerGracefulDegradation(t *testing.T) {
	sm := NewSoundManager()

	defer func() {
		if r := recover(); r != nil {
			t.Errorf("Sound operations panicked without initialization: %v", r)
		}
	}()

	sm.PlayToggle(true)
	sm.PlayToggle(false)
	sm.PlayBlocked()
	sm.PlayVictory()
	sm.Cleanup()
}

// TestSoundManagerInitialization verifies sound manager can be initialized and cleaned up
func TestSoundManagerInitialization(t *testing.T) {
	sm := NewSoundManager()

	// Speaker initialization fails in CI without an audio device; the game runs without audio
	if err := sm.Initialize(); err != nil {
		t.Logf("Sound initialization failed (expected in test environment): %v", err)
		return
	}

	if err := sm.Initialize(); err != nil {
		t.Errorf("Second initialization should succeed as no-op, got error: %v", err)
	}

	sm.PlayToggle(true)
	sm.Cleanup()
}

func TestSoundManagerMuteWithoutInit(t *testing.T) {
	sm := NewSoundManager()

	if sm.Muted() {
		t.Fatal("Expected sound manager to start unmuted")
	}
	if !sm.ToggleMute() {
		t.Error("Expected ToggleMute to report muted")
	}
	if !sm.volume.Silent {
		t.Error("Expected volume stage silenced while muted")
	}

	sm.SetMuted(false)
	if sm.Muted() || sm.volume.Silent {
		t.Error("Expected SetMuted(false) to restore output")
	}
}

func TestGeneratorsStayInRange(t *testing.T) {
	gens := map[string]interface {
		Stream([][2]float64) (int, bool)
	}{
		"chime": NewChimeGenerator(sampleRate, litFreq),
		"buzz":  NewBuzzGenerator(sampleRate, buzzFreq),
	}

	for name, g := range gens {
		t.Run(name, func(t *testing.T) {
			buf := make([][2]float64, 4096)
			n, ok := g.Stream(buf)
			if !ok || n != len(buf) {
				t.Fatalf("Stream() = %d, %v; want %d, true", n, ok, len(buf))
			}

			peak := 0.0
			for _, s := range buf {
				if s[0] != s[1] {
					t.Fatal("Expected mono output on both channels")
				}
				peak = math.Max(peak, math.Abs(s[0]))
			}
			if peak == 0 || peak > 1 {
				t.Errorf("Peak amplitude %f outside (0, 1]", peak)
			}
		})
	}
}
