package sound

import (
	"bytes"
	"context"
	"encoding/binary"
	"fmt"
	"os"
	"time"
)

// WavWriter renders a sample source offline into a 16-bit PCM RIFF/WAV file
// instead of playing it live. It produces exactly the configured duration of
// audio regardless of wall-clock time.
type WavWriter struct {
	path     string
	duration time.Duration
}

func NewWavWriter(path string, duration time.Duration) *WavWriter {
	return &WavWriter{path: path, duration: duration}
}

func (w *WavWriter) Initialize() error { return nil }

func (w *WavWriter) Terminate() {}

func (w *WavWriter) PlayStream(ctx context.Context, src SampleSource) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	rate := src.SampleRate()
	channels := src.Channels()
	frames := int(rate * w.duration.Seconds())

	data := make([]int16, frames*channels)
	for i := 0; i < frames; i++ {
		v := pcm16(src.NextSample())
		for c := 0; c < channels; c++ {
			data[i*channels+c] = v
		}
	}

	buf := new(bytes.Buffer)
	wavHeader(buf, len(data), int(rate), channels)
	if err := binary.Write(buf, binary.LittleEndian, data); err != nil {
		return fmt.Errorf("failed to encode samples: %w", err)
	}

	if err := os.WriteFile(w.path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", w.path, err)
	}
	return nil
}

// wavHeader writes a RIFF header for 16-bit PCM audio. samples counts
// individual channel samples, not frames.
func wavHeader(buf *bytes.Buffer, samples, sampleRate, channels int) {
	const bytesPerSample = 2
	buf.WriteString("RIFF")
	binary.Write(buf, binary.LittleEndian, uint32(36+bytesPerSample*samples))
	buf.WriteString("WAVE")
	buf.WriteString("fmt ")
	binary.Write(buf, binary.LittleEndian, uint32(16))
	binary.Write(buf, binary.LittleEndian, uint16(1)) // PCM
	binary.Write(buf, binary.LittleEndian, uint16(channels))
	binary.Write(buf, binary.LittleEndian, uint32(sampleRate))
	binary.Write(buf, binary.LittleEndian, uint32(sampleRate*channels*bytesPerSample)) // avgBytesPerSec
	binary.Write(buf, binary.LittleEndian, uint16(channels*bytesPerSample))           // blockAlign
	binary.Write(buf, binary.LittleEndian, uint16(8*bytesPerSample))                  // bits per sample
	buf.WriteString("data")
	binary.Write(buf, binary.LittleEndian, uint32(bytesPerSample*samples))
}
