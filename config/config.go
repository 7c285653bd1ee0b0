package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	SampleRate      float64
	Channels        int
	BPM             int
	Duration        time.Duration
	Backend         string
	OscMode         string
	Tune            string
	FramesPerBuffer int
	WavPath         string
}

// LoadConfig reads settings from a .env file if one exists, then from the
// environment, falling back to defaults for anything unset.
func LoadConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, err
	}

	cfg := &Config{
		Backend: envString("BACKEND", "portaudio"),
		OscMode: envString("OSC_MODE", "wrap"),
		Tune:    envString("TUNE", "default"),
		WavPath: envString("WAV_PATH", "out.wav"),
	}

	var err error
	if cfg.SampleRate, err = envFloat("SAMPLE_RATE", 44100); err != nil {
		return nil, err
	}
	if cfg.Channels, err = envInt("CHANNELS", 2); err != nil {
		return nil, err
	}
	if cfg.BPM, err = envInt("BPM", 2); err != nil {
		return nil, err
	}
	if cfg.FramesPerBuffer, err = envInt("FRAMES_PER_BUFFER", 1024); err != nil {
		return nil, err
	}
	durationMs, err := envInt("DURATION_MS", 3000)
	if err != nil {
		return nil, err
	}
	cfg.Duration = time.Duration(durationMs) * time.Millisecond

	return cfg, nil
}

func envString(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return n, nil
}

func envFloat(key string, fallback float64) (float64, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return f, nil
}
