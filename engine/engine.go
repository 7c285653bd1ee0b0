package engine

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"

	"github.com/d1nch8g/chime/config"
	"github.com/d1nch8g/chime/sound"
	"github.com/d1nch8g/chime/synth"
)

// Engine runs one playback session. It owns the oscillator and the output
// backend for the lifetime of the stream.
type Engine struct {
	config *config.Config
	osc    *synth.Oscillator
	player sound.Player

	isRunning    bool
	runningMutex sync.RWMutex
}

// New validates the configuration, builds the oscillator for the melody and
// selects the output backend.
func New(cfg *config.Config, melody synth.Melody) (*Engine, error) {
	if cfg.SampleRate <= 0 {
		return nil, fmt.Errorf("sample rate must be positive, got %v", cfg.SampleRate)
	}
	if cfg.Channels < 1 {
		return nil, fmt.Errorf("channel count must be at least 1, got %d", cfg.Channels)
	}
	if cfg.BPM < 1 {
		return nil, fmt.Errorf("bpm must be at least 1, got %d", cfg.BPM)
	}
	if cfg.Duration <= 0 {
		return nil, fmt.Errorf("duration must be positive, got %v", cfg.Duration)
	}

	mode, err := parseMode(cfg.OscMode)
	if err != nil {
		return nil, err
	}

	player, err := newPlayer(cfg)
	if err != nil {
		return nil, err
	}

	return &Engine{
		config: cfg,
		osc:    synth.NewOscillator(melody, cfg.SampleRate, cfg.Channels, cfg.BPM, mode),
		player: player,
	}, nil
}

func parseMode(s string) (synth.Mode, error) {
	switch s {
	case "", "wrap":
		return synth.ModeWrap, nil
	case "phase":
		return synth.ModePhase, nil
	}
	return 0, fmt.Errorf("unknown oscillator mode %q", s)
}

func newPlayer(cfg *config.Config) (sound.Player, error) {
	switch cfg.Backend {
	case "", "portaudio":
		pc := sound.GetDefaultConfig()
		if cfg.FramesPerBuffer > 0 {
			pc.FramesPerBuffer = cfg.FramesPerBuffer
		}
		return sound.NewPortaudioPlayer(pc), nil
	case "oto":
		return sound.NewOtoPlayer(int(cfg.SampleRate), cfg.Channels), nil
	case "wav":
		return sound.NewWavWriter(cfg.WavPath, cfg.Duration), nil
	}
	return nil, fmt.Errorf("unknown backend %q", cfg.Backend)
}

// Run plays the melody for the configured duration or until ctx is
// cancelled, whichever comes first.
func (e *Engine) Run(ctx context.Context) error {
	e.runningMutex.Lock()
	if e.isRunning {
		e.runningMutex.Unlock()
		return errors.New("engine is already running")
	}
	e.isRunning = true
	e.runningMutex.Unlock()

	defer func() {
		e.runningMutex.Lock()
		e.isRunning = false
		e.runningMutex.Unlock()
	}()

	if err := e.player.Initialize(); err != nil {
		return fmt.Errorf("failed to initialize audio output: %w", err)
	}
	defer e.player.Terminate()

	log.Printf("Playing for %v: %s backend, %.0f Hz, %d channels, %d bpm",
		e.config.Duration, e.config.Backend, e.config.SampleRate, e.config.Channels, e.config.BPM)

	playCtx, cancel := context.WithTimeout(ctx, e.config.Duration)
	defer cancel()

	if err := e.player.PlayStream(playCtx, e.osc); err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("playback failed: %w", err)
	}
	return nil
}

// IsRunning returns whether a playback session is in progress.
func (e *Engine) IsRunning() bool {
	e.runningMutex.RLock()
	defer e.runningMutex.RUnlock()
	return e.isRunning
}
