package session

import (
	"errors"
	"testing"

	"github.com/vovakirdan/tiny-planets/internal/storage"
	"github.com/vovakirdan/tiny-planets/internal/ui"
)

type fakeSurfaces struct {
	activated []string
}

func (f *fakeSurfaces) SetActive(name string, active bool) {
	if active {
		f.activated = append(f.activated, name)
	}
}

type failingPrefs struct{}

func (failingPrefs) GetInt(string, int) (int, error) { return 0, errors.New("locked") }
func (failingPrefs) SetInt(string, int) error        { return errors.New("locked") }

func newTestSession(prefs Prefs) (*Session, *fakeSurfaces) {
	surfaces := &fakeSurfaces{}
	return New(Options{Prefs: prefs, Surfaces: surfaces}), surfaces
}

func TestDisplayScoreRounds(t *testing.T) {
	s, _ := newTestSession(storage.NewMemoryPrefs())

	if s.DisplayScore() != "0" {
		t.Errorf("DisplayScore() = %q at start, expected \"0\"", s.DisplayScore())
	}

	s.Tick(3.4)
	if s.DisplayScore() != "3" {
		t.Errorf("DisplayScore() after 3.4s = %q, expected \"3\"", s.DisplayScore())
	}

	s.Tick(0.4)
	if s.DisplayScore() != "4" {
		t.Errorf("DisplayScore() after 3.8s = %q, expected \"4\"", s.DisplayScore())
	}
}

func TestScoreTiesRoundToEven(t *testing.T) {
	tests := []struct {
		elapsed  float64
		expected int
	}{
		{0.5, 0},
		{1.5, 2},
		{2.5, 2},
		{2.51, 3},
	}
	for _, tt := range tests {
		s, _ := newTestSession(storage.NewMemoryPrefs())
		s.Tick(tt.elapsed)
		if got := s.Score(); got != tt.expected {
			t.Errorf("Score() at %v = %d, expected %d", tt.elapsed, got, tt.expected)
		}
	}
}

func TestGameOverHighScore(t *testing.T) {
	tests := []struct {
		name     string
		stored   int
		elapsed  float64
		expected int
	}{
		{"lower score keeps record", 10, 7.6, 10},
		{"higher score replaces record", 10, 12.4, 12},
		{"equal score keeps record", 10, 10.2, 10},
		{"first run sets record", 0, 4.7, 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prefs := storage.NewMemoryPrefs()
			if tt.stored > 0 {
				prefs.SetInt(DefaultHighScoreKey, tt.stored) //nolint:errcheck
			}
			s, _ := newTestSession(prefs)
			s.Tick(tt.elapsed)

			if err := s.GameOver(); err != nil {
				t.Fatalf("GameOver() error = %v", err)
			}

			got, _ := prefs.GetInt(DefaultHighScoreKey, 0)
			if got != tt.expected {
				t.Errorf("high score = %d, expected %d", got, tt.expected)
			}
		})
	}
}

func TestHighScoreNeverWrittenWhenNotBeaten(t *testing.T) {
	prefs := storage.NewMemoryPrefs()
	prefs.SetInt(DefaultHighScoreKey, 10) //nolint:errcheck
	s, _ := newTestSession(prefs)
	s.Tick(7.6)
	s.GameOver() //nolint:errcheck

	if prefs.Writes() != 1 {
		t.Errorf("Writes() = %d, expected only the initial write", prefs.Writes())
	}
}

func TestHighScoreMonotonic(t *testing.T) {
	prefs := storage.NewMemoryPrefs()
	runs := []float64{5, 3, 9.4, 2, 9.6, 0.2}

	prev := 0
	for _, run := range runs {
		s, _ := newTestSession(prefs)
		s.Tick(run)
		s.GameOver() //nolint:errcheck

		got, _ := s.HighScore()
		if got < prev {
			t.Fatalf("high score dropped from %d to %d after a %.1fs run", prev, got, run)
		}
		prev = got
	}
	if prev != 10 {
		t.Errorf("final high score = %d, expected 10", prev)
	}
}

func TestGameOverResetsElapsed(t *testing.T) {
	s, _ := newTestSession(storage.NewMemoryPrefs())
	s.Tick(6.3)
	s.GameOver() //nolint:errcheck

	if s.Elapsed() != 0 {
		t.Errorf("Elapsed() = %v right after game over, expected 0", s.Elapsed())
	}
	if s.State() != StateGameOver {
		t.Errorf("State() = %v, expected GameOver", s.State())
	}
	if s.FinalScore() != 6 {
		t.Errorf("FinalScore() = %d, expected 6", s.FinalScore())
	}

	s.Tick(5)
	if s.Elapsed() != 0 {
		t.Errorf("Elapsed() = %v after ticking in game over, expected 0", s.Elapsed())
	}
}

func TestGameOverTwiceIsNoop(t *testing.T) {
	prefs := storage.NewMemoryPrefs()
	var recorded []int
	s := New(Options{
		Prefs:    prefs,
		Surfaces: &fakeSurfaces{},
		Recorder: RecorderFunc(func(score int) error {
			recorded = append(recorded, score)
			return nil
		}),
	})
	s.Tick(4)

	s.GameOver() //nolint:errcheck
	s.GameOver() //nolint:errcheck

	if len(recorded) != 1 || recorded[0] != 4 {
		t.Errorf("recorded runs = %v, expected [4]", recorded)
	}
}

func TestRestartSurfaceAfterDelay(t *testing.T) {
	s, surfaces := newTestSession(storage.NewMemoryPrefs())
	s.Tick(2)
	s.GameOver() //nolint:errcheck

	for range 14 {
		s.Tick(0.1)
	}
	if len(surfaces.activated) != 0 {
		t.Fatalf("restart surface shown after 1.4s")
	}

	s.Tick(0.1)
	if len(surfaces.activated) != 1 || surfaces.activated[0] != ui.SurfaceRestart {
		t.Fatalf("activated = %v, expected restart surface after 1.5s", surfaces.activated)
	}

	s.Tick(10)
	if len(surfaces.activated) != 1 {
		t.Errorf("restart surface activated %d times, expected once", len(surfaces.activated))
	}
}

func TestCloseCancelsRestart(t *testing.T) {
	s, surfaces := newTestSession(storage.NewMemoryPrefs())
	s.GameOver() //nolint:errcheck
	s.Tick(1)

	s.Close()
	s.Tick(5)

	if len(surfaces.activated) != 0 {
		t.Errorf("restart surface activated after Close: %v", surfaces.activated)
	}
	if s.RestartPending() {
		t.Error("RestartPending() = true after Close")
	}
}

func TestCustomRestartSurfaceAndDelay(t *testing.T) {
	surfaces := &fakeSurfaces{}
	s := New(Options{
		Prefs:          storage.NewMemoryPrefs(),
		Surfaces:       surfaces,
		RestartDelay:   0.5,
		RestartSurface: "buttons",
	})
	s.GameOver() //nolint:errcheck
	s.Tick(0.5)

	if len(surfaces.activated) != 1 || surfaces.activated[0] != "buttons" {
		t.Errorf("activated = %v, expected [buttons]", surfaces.activated)
	}
}

func TestGameOverPersistenceFailure(t *testing.T) {
	s, surfaces := newTestSession(failingPrefs{})
	s.Tick(3)

	if err := s.GameOver(); err == nil {
		t.Error("GameOver() expected error from failing prefs")
	}
	if s.State() != StateGameOver {
		t.Error("session should end even when prefs fail")
	}
	s.Tick(2)
	if len(surfaces.activated) != 1 {
		t.Error("restart surface should still be scheduled")
	}
	if _, err := s.HighScore(); err == nil {
		t.Error("HighScore() expected error from failing prefs")
	}
}
