// Package session tracks the score timer of one game run, records the high
// score when the run ends and schedules the restart panel.
package session

import (
	"errors"
	"fmt"
	"math"
	"strconv"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tiny-planets/internal/logging"
	"github.com/vovakirdan/tiny-planets/internal/ui"
)

// Defaults used when Options leave a field empty.
const (
	DefaultHighScoreKey = "Highscore"
	DefaultRestartDelay = 1.5
)

// deadlineEpsilon absorbs float drift when summing frame deltas.
const deadlineEpsilon = 1e-9

// Prefs is integer key-value persistence.
type Prefs interface {
	GetInt(key string, def int) (int, error)
	SetInt(key string, value int) error
}

// RunRecorder stores the score of every finished run.
type RunRecorder interface {
	RecordRun(score int) error
}

// RecorderFunc adapts a function to RunRecorder.
type RecorderFunc func(score int) error

// RecordRun calls f.
func (f RecorderFunc) RecordRun(score int) error {
	return f(score)
}

// SurfaceActivator shows UI surfaces.
type SurfaceActivator interface {
	SetActive(name string, active bool)
}

// State is the phase of a run.
type State int

const (
	StateRunning State = iota
	StateGameOver
)

// String returns a human-readable name for the state.
func (s State) String() string {
	switch s {
	case StateRunning:
		return "Running"
	case StateGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// Options configures a Session. Prefs and Surfaces are required.
type Options struct {
	Prefs          Prefs
	Surfaces       SurfaceActivator
	Recorder       RunRecorder // optional
	HighScoreKey   string
	RestartDelay   float64 // seconds
	RestartSurface string
	Logger         *log.Logger
}

// Session is one run of the game. It starts Running.
type Session struct {
	opts    Options
	state   State
	elapsed float64
	final   int

	restartIn float64
	armed     bool
	closed    bool
}

// New starts a session.
func New(opts Options) *Session {
	if opts.HighScoreKey == "" {
		opts.HighScoreKey = DefaultHighScoreKey
	}
	if opts.RestartDelay <= 0 {
		opts.RestartDelay = DefaultRestartDelay
	}
	if opts.RestartSurface == "" {
		opts.RestartSurface = ui.SurfaceRestart
	}
	opts.Logger = logging.OrDiscard(opts.Logger)
	return &Session{opts: opts}
}

// Tick advances the session by dt seconds. While running it accumulates
// the score timer; after game over it counts down the restart deadline.
func (s *Session) Tick(dt float64) {
	if s.closed {
		return
	}
	switch s.state {
	case StateRunning:
		s.elapsed += dt
	case StateGameOver:
		if !s.armed {
			return
		}
		s.restartIn -= dt
		if s.restartIn <= deadlineEpsilon {
			s.armed = false
			s.opts.Surfaces.SetActive(s.opts.RestartSurface, true)
		}
	}
}

// Score returns the elapsed time rounded to whole seconds, ties to even.
func (s *Session) Score() int {
	return int(math.RoundToEven(s.elapsed))
}

// DisplayScore returns the score as shown on the HUD.
func (s *Session) DisplayScore() string {
	return strconv.Itoa(s.Score())
}

// FinalScore returns the score the run ended with. Zero while running.
func (s *Session) FinalScore() int {
	return s.final
}

// GameOver ends the run: it stores a new high score, resets the timer and
// arms the restart deadline. Calls after the first are no-ops.
// Persistence errors are returned, but the session still ends.
func (s *Session) GameOver() error {
	if s.state != StateRunning || s.closed {
		return nil
	}

	score := s.Score()
	var errs []error

	best, err := s.opts.Prefs.GetInt(s.opts.HighScoreKey, 0)
	switch {
	case err != nil:
		errs = append(errs, fmt.Errorf("session: cannot read high score: %w", err))
	case score > best:
		if err := s.opts.Prefs.SetInt(s.opts.HighScoreKey, score); err != nil {
			errs = append(errs, fmt.Errorf("session: cannot save high score: %w", err))
		} else {
			s.opts.Logger.Info("new high score", "score", score, "previous", best)
		}
	}

	if s.opts.Recorder != nil {
		if err := s.opts.Recorder.RecordRun(score); err != nil {
			errs = append(errs, fmt.Errorf("session: cannot record run: %w", err))
		}
	}

	s.final = score
	s.elapsed = 0
	s.state = StateGameOver
	s.restartIn = s.opts.RestartDelay
	s.armed = true

	return errors.Join(errs...)
}

// Close cancels a pending restart deadline. The restart surface is never
// activated after Close.
func (s *Session) Close() {
	s.closed = true
	s.armed = false
}

// HighScore reads the persisted high score.
func (s *Session) HighScore() (int, error) {
	v, err := s.opts.Prefs.GetInt(s.opts.HighScoreKey, 0)
	if err != nil {
		return 0, fmt.Errorf("session: cannot read high score: %w", err)
	}
	return v, nil
}

// State returns the current phase.
func (s *Session) State() State {
	return s.state
}

// Elapsed returns the raw timer value in seconds.
func (s *Session) Elapsed() float64 {
	return s.elapsed
}

// RestartPending reports whether the restart deadline is still counting.
func (s *Session) RestartPending() bool {
	return s.armed
}
