package config

import (
	"testing"
	"time"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.SampleRate != 44100 {
		t.Errorf("SampleRate = %v, want 44100", cfg.SampleRate)
	}
	if cfg.Channels != 2 {
		t.Errorf("Channels = %d, want 2", cfg.Channels)
	}
	if cfg.BPM != 2 {
		t.Errorf("BPM = %d, want 2", cfg.BPM)
	}
	if cfg.Duration != 3*time.Second {
		t.Errorf("Duration = %v, want 3s", cfg.Duration)
	}
	if cfg.Backend != "portaudio" {
		t.Errorf("Backend = %q, want portaudio", cfg.Backend)
	}
	if cfg.OscMode != "wrap" {
		t.Errorf("OscMode = %q, want wrap", cfg.OscMode)
	}
	if cfg.Tune != "default" {
		t.Errorf("Tune = %q, want default", cfg.Tune)
	}
	if cfg.FramesPerBuffer != 1024 {
		t.Errorf("FramesPerBuffer = %d, want 1024", cfg.FramesPerBuffer)
	}
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("SAMPLE_RATE", "48000")
	t.Setenv("CHANNELS", "1")
	t.Setenv("BPM", "120")
	t.Setenv("DURATION_MS", "500")
	t.Setenv("BACKEND", "wav")
	t.Setenv("OSC_MODE", "phase")
	t.Setenv("TUNE", "demo")
	t.Setenv("WAV_PATH", "melody.wav")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.SampleRate != 48000 {
		t.Errorf("SampleRate = %v, want 48000", cfg.SampleRate)
	}
	if cfg.Channels != 1 {
		t.Errorf("Channels = %d, want 1", cfg.Channels)
	}
	if cfg.BPM != 120 {
		t.Errorf("BPM = %d, want 120", cfg.BPM)
	}
	if cfg.Duration != 500*time.Millisecond {
		t.Errorf("Duration = %v, want 500ms", cfg.Duration)
	}
	if cfg.Backend != "wav" || cfg.OscMode != "phase" || cfg.Tune != "demo" {
		t.Errorf("unexpected backend/mode/tune: %q %q %q", cfg.Backend, cfg.OscMode, cfg.Tune)
	}
	if cfg.WavPath != "melody.wav" {
		t.Errorf("WavPath = %q, want melody.wav", cfg.WavPath)
	}
}

func TestLoadConfigInvalidNumber(t *testing.T) {
	t.Setenv("SAMPLE_RATE", "fast")
	if _, err := LoadConfig(); err == nil {
		t.Error("expected an error for a non-numeric SAMPLE_RATE")
	}

	t.Setenv("SAMPLE_RATE", "44100")
	t.Setenv("BPM", "andante")
	if _, err := LoadConfig(); err == nil {
		t.Error("expected an error for a non-numeric BPM")
	}
}
