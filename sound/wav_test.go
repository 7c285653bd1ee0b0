package sound

import (
	"context"
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"
	"time"
)

// constSource emits a fixed sample value, for exercising backends without an
// oscillator.
type constSource struct {
	rate     float64
	channels int
	value    float64
}

func (s *constSource) NextSample() float64 { return s.value }
func (s *constSource) SampleRate() float64 { return s.rate }
func (s *constSource) Channels() int       { return s.channels }

func TestWavWriterOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.wav")
	w := NewWavWriter(path, 100*time.Millisecond)

	src := &constSource{rate: 8000, channels: 1, value: 0.5}
	if err := w.PlayStream(context.Background(), src); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}

	const frames = 800 // 100 ms at 8000 Hz
	wantLen := 44 + frames*2
	if len(data) != wantLen {
		t.Fatalf("file length = %d, want %d", len(data), wantLen)
	}

	if string(data[0:4]) != "RIFF" || string(data[8:12]) != "WAVE" {
		t.Errorf("missing RIFF/WAVE markers: %q %q", data[0:4], data[8:12])
	}
	if format := binary.LittleEndian.Uint16(data[20:]); format != 1 {
		t.Errorf("wave format = %d, want 1 (PCM)", format)
	}
	if channels := binary.LittleEndian.Uint16(data[22:]); channels != 1 {
		t.Errorf("channel count = %d, want 1", channels)
	}
	if rate := binary.LittleEndian.Uint32(data[24:]); rate != 8000 {
		t.Errorf("sample rate = %d, want 8000", rate)
	}
	if size := binary.LittleEndian.Uint32(data[40:]); size != frames*2 {
		t.Errorf("data chunk size = %d, want %d", size, frames*2)
	}

	if sample := int16(binary.LittleEndian.Uint16(data[44:])); sample != 16383 {
		t.Errorf("first sample = %d, want 16383", sample)
	}
}

func TestWavWriterStereoDuplicatesChannels(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stereo.wav")
	w := NewWavWriter(path, 10*time.Millisecond)

	src := &constSource{rate: 8000, channels: 2, value: -0.25}
	if err := w.PlayStream(context.Background(), src); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}

	left := int16(binary.LittleEndian.Uint16(data[44:]))
	right := int16(binary.LittleEndian.Uint16(data[46:]))
	if left != right {
		t.Errorf("channels differ within a frame: %d != %d", left, right)
	}
}

func TestWavWriterCancelledContext(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cancelled.wav")
	w := NewWavWriter(path, time.Second)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	src := &constSource{rate: 8000, channels: 1}
	if err := w.PlayStream(ctx, src); err == nil {
		t.Error("expected an error for a cancelled context")
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("no file should be written for a cancelled context")
	}
}
